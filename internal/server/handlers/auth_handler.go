package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/toratita/internal/repository/mongodb"
)

// invalidCredentialsMessage is the fixed user-facing login failure text.
const invalidCredentialsMessage = "Credenciales inválidas"

// AuthHandler serves the dashboard login check.
type AuthHandler struct {
	store  mongodb.Store
	logger *zap.Logger
}

// NewAuthHandler constructs the login HTTP adapter.
func NewAuthHandler(store mongodb.Store, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{store: store, logger: logger}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login matches the submitted credentials against the user collection. No
// session or token is issued; the client remembers the result.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	user, err := h.store.FindUserByCredentials(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			h.logger.Warn("rejected login", zap.String("username", req.Username))
			c.JSON(http.StatusUnauthorized, gin.H{"error": invalidCredentialsMessage})
			return
		}
		h.logger.Error("login lookup failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "name": user.Username})
}

// respondError writes the shared {error} body. The underlying message is
// surfaced raw, matching the existing API contract.
func respondError(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{"error": err.Error()})
}
