package handlers

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"soldy/models"
	"soldy/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

type account struct {
	user         models.User
	passwordHash []byte
}

// AuthHandler keeps an in-memory account registry. Accounts do not
// survive a restart; this backend exists so clients have a real HTTP
// endpoint honoring the auth contract, not to store anybody's data.
type AuthHandler struct {
	Logger *zap.Logger

	mu       sync.Mutex
	byEmail  map[string]*account
	byUserID map[string]*account
}

func NewAuthHandler(logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		Logger:   logger,
		byEmail:  make(map[string]*account),
		byUserID: make(map[string]*account),
	}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var data models.RegisterData
	if err := c.ShouldBindJSON(&data); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if data.Email == "" || data.Password == "" || data.Name == "" {
		respondError(c, http.StatusBadRequest, "name, email and password are required")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		h.Logger.Error("Register: failed to hash password", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "registration failed")
		return
	}

	role := data.Role
	if role == "" {
		role = models.RoleUser
	}
	user := models.User{
		ID:        uuid.NewString(),
		Email:     data.Email,
		Name:      data.Name,
		Role:      role,
		Phone:     data.Phone,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	h.mu.Lock()
	if _, exists := h.byEmail[data.Email]; exists {
		h.mu.Unlock()
		respondError(c, http.StatusConflict, "email already registered")
		return
	}
	acc := &account{user: user, passwordHash: hash}
	h.byEmail[data.Email] = acc
	h.byUserID[user.ID] = acc
	h.mu.Unlock()

	token, err := utils.GenerateToken(user.ID, user.Email, tokenTTL)
	if err != nil {
		h.Logger.Error("Register: failed to mint token", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "registration failed")
		return
	}

	respond(c, http.StatusCreated, models.AuthResponse{User: user, Token: token})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	h.mu.Lock()
	acc, ok := h.byEmail[body.Email]
	h.mu.Unlock()
	if !ok {
		respondError(c, http.StatusUnauthorized, "invalid email or password")
		return
	}
	if err := bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(body.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "invalid email or password")
		return
	}

	token, err := utils.GenerateToken(acc.user.ID, acc.user.Email, tokenTTL)
	if err != nil {
		h.Logger.Error("Login: failed to mint token", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "login failed")
		return
	}

	respond(c, http.StatusOK, models.AuthResponse{User: acc.user, Token: token})
}

// Me handles GET /api/auth/me. Requires the JWT middleware.
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString("userID")

	h.mu.Lock()
	acc, ok := h.byUserID[userID]
	h.mu.Unlock()
	if !ok {
		respondError(c, http.StatusUnauthorized, fmt.Sprintf("unknown user %s", userID))
		return
	}
	respond(c, http.StatusOK, acc.user)
}
