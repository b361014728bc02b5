package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/toratita/internal/service/reporting"
)

// ReportsHandler serves the aggregate report endpoints.
type ReportsHandler struct {
	reporting *reporting.Service
	logger    *zap.Logger
}

// NewReportsHandler constructs the reports HTTP adapter.
func NewReportsHandler(svc *reporting.Service, logger *zap.Logger) *ReportsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportsHandler{reporting: svc, logger: logger}
}

// Weekly returns income, expense and loss totals over the last seven days.
func (h *ReportsHandler) Weekly(c *gin.Context) {
	report, err := h.reporting.GenerateWeeklyReport(c.Request.Context(), time.Now())
	if err != nil {
		h.logger.Error("failed generating weekly report", zap.Error(err))
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
