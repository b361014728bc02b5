package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/toratita/internal/domain/models"
	"github.com/mamadbah2/toratita/internal/repository/mongodb"
)

// DistributionNotifier is told about freshly recorded distributions so the
// seller can be messaged. Implementations must not block.
type DistributionNotifier interface {
	DistributionRecorded(d *models.Distribution)
}

// RecordsHandler serves the create/list pairs for the six record
// collections.
type RecordsHandler struct {
	store    mongodb.Store
	notifier DistributionNotifier
	logger   *zap.Logger
}

// NewRecordsHandler constructs the records HTTP adapter. notifier may be
// nil when outbound messaging is disabled.
func NewRecordsHandler(store mongodb.Store, notifier DistributionNotifier, logger *zap.Logger) *RecordsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecordsHandler{store: store, notifier: notifier, logger: logger}
}

type createProductionRequest struct {
	PanGrandeQty  int    `json:"panGrandeQty"`
	PanPequenoQty int    `json:"panPequenoQty"`
	Notes         string `json:"notes"`
}

// CreateProduction records one day's baking output.
func (h *RecordsHandler) CreateProduction(c *gin.Context) {
	var req createProductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	prod := models.NewProduction(req.PanGrandeQty, req.PanPequenoQty, req.Notes)
	if err := h.store.CreateProduction(c.Request.Context(), prod); err != nil {
		h.logger.Error("failed saving production", zap.Error(err))
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusCreated, prod)
}

// ListProductions returns the latest production records, newest first.
func (h *RecordsHandler) ListProductions(c *gin.Context) {
	records, err := h.store.ListProductions(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing productions", zap.Error(err))
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

type createSellerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// CreateSeller registers a seller.
func (h *RecordsHandler) CreateSeller(c *gin.Context) {
	var req createSellerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	seller := models.NewSeller(req.Name, req.Phone)
	if err := h.store.CreateSeller(c.Request.Context(), seller); err != nil {
		h.logger.Error("failed saving seller", zap.Error(err))
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusCreated, seller)
}

// ListSellers returns the whole seller roster.
func (h *RecordsHandler) ListSellers(c *gin.Context) {
	sellers, err := h.store.ListSellers(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing sellers", zap.Error(err))
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, sellers)
}

type createDistributionRequest struct {
	SellerID       string  `json:"sellerId"`
	PanGrandeSent  int     `json:"panGrandeSent"`
	PanPequenoSent int     `json:"panPequenoSent"`
	TotalValue     float64 `json:"totalValue"`
}

// CreateDistribution records bread handed to a seller and, when messaging
// is configured, notifies the seller out of band.
func (h *RecordsHandler) CreateDistribution(c *gin.Context) {
	var req createDistributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	dist, err := models.NewDistribution(req.SellerID, req.PanGrandeSent, req.PanPequenoSent, req.TotalValue)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := h.store.CreateDistribution(c.Request.Context(), dist); err != nil {
		h.logger.Error("failed saving distribution", zap.Error(err))
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	if h.notifier != nil {
		h.notifier.DistributionRecorded(dist)
	}

	c.JSON(http.StatusCreated, dist)
}

// ListDistributions returns the latest distributions with sellers resolved.
func (h *RecordsHandler) ListDistributions(c *gin.Context) {
	records, err := h.store.ListDistributions(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing distributions", zap.Error(err))
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

type createPaymentRequest struct {
	SellerID       string  `json:"sellerId"`
	Amount         float64 `json:"amount"`
	PanGrandeSold  *int    `json:"panGrandeSold"`
	PanPequenoSold *int    `json:"panPequenoSold"`
	Notes          string  `json:"notes"`
}

// CreatePayment records money collected from a seller.
func (h *RecordsHandler) CreatePayment(c *gin.Context) {
	var req createPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	payment, err := models.NewPayment(req.SellerID, req.Amount, req.PanGrandeSold, req.PanPequenoSold, req.Notes)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := h.store.CreatePayment(c.Request.Context(), payment); err != nil {
		h.logger.Error("failed saving payment", zap.Error(err))
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusCreated, payment)
}

// ListPayments returns the latest payments with sellers resolved.
func (h *RecordsHandler) ListPayments(c *gin.Context) {
	records, err := h.store.ListPayments(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing payments", zap.Error(err))
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

type createExpenseRequest struct {
	ItemName string  `json:"itemName"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Notes    string  `json:"notes"`
}

// CreateExpense records a purchase or running cost.
func (h *RecordsHandler) CreateExpense(c *gin.Context) {
	var req createExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	expense := models.NewExpense(req.ItemName, req.Category, req.Amount, req.Notes)
	if err := h.store.CreateExpense(c.Request.Context(), expense); err != nil {
		h.logger.Error("failed saving expense", zap.Error(err))
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// ListExpenses returns the latest expenses, newest first.
func (h *RecordsHandler) ListExpenses(c *gin.Context) {
	records, err := h.store.ListExpenses(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing expenses", zap.Error(err))
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

type createLossRequest struct {
	Type           string  `json:"type"`
	Quantity       float64 `json:"quantity"`
	EstimatedValue float64 `json:"estimatedValue"`
	Notes          string  `json:"notes"`
}

// CreateLoss records spoiled or wasted goods.
func (h *RecordsHandler) CreateLoss(c *gin.Context) {
	var req createLossRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	loss := models.NewLoss(req.Type, req.Quantity, req.EstimatedValue, req.Notes)
	if err := h.store.CreateLoss(c.Request.Context(), loss); err != nil {
		h.logger.Error("failed saving loss", zap.Error(err))
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusCreated, loss)
}

// ListLosses returns the latest losses, newest first.
func (h *RecordsHandler) ListLosses(c *gin.Context) {
	records, err := h.store.ListLosses(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing losses", zap.Error(err))
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, records)
}
