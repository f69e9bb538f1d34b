package handlers

import (
	"net/http"
	"sync"

	"soldy/api"
	"soldy/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CartHandler keeps a per-user remote cart in memory and serves the
// documented sync contract. Requires the JWT middleware.
type CartHandler struct {
	Mock   *api.Mock
	Logger *zap.Logger

	mu    sync.Mutex
	carts map[string][]models.CartResponseItem
}

func NewCartHandler(mock *api.Mock, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		Mock:   mock,
		Logger: logger,
		carts:  make(map[string][]models.CartResponseItem),
	}
}

// SyncCart handles POST /api/cart/sync: the pushed items replace the
// user's remote cart wholesale.
func (h *CartHandler) SyncCart(c *gin.Context) {
	userID := c.GetString("userID")

	var payload models.CartSyncPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	items := make([]models.CartResponseItem, 0, len(payload.Items))
	for _, item := range payload.Items {
		svc, ok := h.Mock.ServiceByID(item.ServiceID)
		if !ok {
			h.Logger.Warn("SyncCart: unknown service in payload",
				zap.String("serviceId", item.ServiceID), zap.String("userId", userID))
			continue
		}
		items = append(items, models.CartResponseItem{
			Service:         svc,
			Quantity:        item.Quantity,
			SelectedOptions: item.SelectedOptions,
		})
	}

	h.mu.Lock()
	h.carts[userID] = items
	h.mu.Unlock()

	respond(c, http.StatusOK, gin.H{"synced": len(items)})
}

// GetCart handles GET /api/cart.
func (h *CartHandler) GetCart(c *gin.Context) {
	userID := c.GetString("userID")

	h.mu.Lock()
	items := h.carts[userID]
	h.mu.Unlock()

	if items == nil {
		items = []models.CartResponseItem{}
	}
	respond(c, http.StatusOK, items)
}
