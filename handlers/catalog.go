package handlers

import (
	"net/http"
	"strconv"

	"soldy/api"
	"soldy/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the catalog endpoints off the seeded dataset.
type CatalogHandler struct {
	Client api.Client
	Logger *zap.Logger
}

func NewCatalogHandler(client api.Client, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Client: client, Logger: logger}
}

// parseCatalogQuery maps query-string parameters onto the catalog
// query contract. Invalid numbers are dropped; the engine applies
// defaults.
func parseCatalogQuery(c *gin.Context) models.CatalogQuery {
	q := models.CatalogQuery{
		Search:      c.Query("search"),
		Category:    c.QueryArray("category"),
		Brand:       c.QueryArray("brand"),
		Subcategory: c.QueryArray("subcategory"),
		SortBy:      c.Query("sortBy"),
		SortOrder:   c.Query("sortOrder"),
		BuyerID:     c.Query("buyerId"),
		CatalogType: c.Query("catalogType"),
	}
	if v, err := strconv.Atoi(c.Query("page")); err == nil {
		q.Page = v
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil {
		q.Limit = v
	}
	if v, err := strconv.ParseFloat(c.Query("minPrice"), 64); err == nil {
		q.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(c.Query("maxPrice"), 64); err == nil {
		q.MaxPrice = &v
	}
	return q
}

// GetServices handles GET /api/services.
func (h *CatalogHandler) GetServices(c *gin.Context) {
	page, err := h.Client.GetServices(c.Request.Context(), parseCatalogQuery(c))
	if err != nil {
		h.Logger.Error("GetServices: failed to query catalog", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to fetch services")
		return
	}
	respond(c, http.StatusOK, page)
}

// GetCategories handles GET /api/services/categories.
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	categories, err := h.Client.GetCategories(c.Request.Context())
	if err != nil {
		h.Logger.Error("GetCategories: failed to fetch categories", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to fetch categories")
		return
	}
	respond(c, http.StatusOK, categories)
}

// GetPriceRange handles GET /api/services/price-range.
func (h *CatalogHandler) GetPriceRange(c *gin.Context) {
	priceRange, err := h.Client.GetPriceRange(c.Request.Context())
	if err != nil {
		h.Logger.Error("GetPriceRange: failed to fetch price range", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to fetch price range")
		return
	}
	respond(c, http.StatusOK, priceRange)
}

// GetOffers handles GET /api/offers.
func (h *CatalogHandler) GetOffers(c *gin.Context) {
	listingID := c.Query("listingId")
	if listingID == "" {
		respondError(c, http.StatusBadRequest, "listingId is required")
		return
	}
	offers, err := h.Client.GetOffers(c.Request.Context(), listingID)
	if err != nil {
		h.Logger.Error("GetOffers: failed to fetch offers", zap.String("listingId", listingID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to fetch offers")
		return
	}
	if offers == nil {
		offers = []models.Offer{}
	}
	respond(c, http.StatusOK, offers)
}

// GetRequests handles GET /api/requests.
func (h *CatalogHandler) GetRequests(c *gin.Context) {
	requests, err := h.Client.GetRequests(c.Request.Context())
	if err != nil {
		h.Logger.Error("GetRequests: failed to fetch requests", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to fetch requests")
		return
	}
	respond(c, http.StatusOK, requests)
}
