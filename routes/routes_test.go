package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"soldy/api"
	"soldy/handlers"
	"soldy/models"
	"soldy/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()
	mock := api.NewMock(utils.RealClock{}, 1, 0)
	bundle := &handlers.HandlerBundle{
		Catalog: handlers.NewCatalogHandler(mock, logger),
		Cart:    handlers.NewCartHandler(mock, logger),
		Auth:    handlers.NewAuthHandler(logger),
	}

	r := gin.New()
	RegisterRoutes(r, bundle)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var envelope models.APIResponse[T]
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v (body %s)", err, w.Body.String())
	}
	if !envelope.Success {
		t.Fatalf("expected success envelope, got %s", w.Body.String())
	}
	return envelope.Data
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestGetServicesReturnsEnvelope(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/api/services?limit=5&page=2", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	page := decodeEnvelope[models.Page](t, w)
	if page.Total != 100 || page.Page != 2 || page.Limit != 5 || len(page.Items) != 5 {
		t.Fatalf("unexpected page: total=%d page=%d limit=%d items=%d",
			page.Total, page.Page, page.Limit, len(page.Items))
	}
}

func TestGetOffersRequiresListingID(t *testing.T) {
	r := newTestRouter(t)
	if w := doJSON(t, r, http.MethodGet, "/api/offers", "", nil); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without listingId, got %d", w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/api/offers?listingId=service-1", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	offers := decodeEnvelope[[]models.Offer](t, w)
	if len(offers) != 2 {
		t.Fatalf("expected 2 seeded offers, got %d", len(offers))
	}
}

func TestRegisterLoginMeFlow(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", models.RegisterData{
		Name:     "Ivan",
		Email:    "ivan@example.com",
		Password: "secret123",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	reg := decodeEnvelope[models.AuthResponse](t, w)
	if reg.Token == "" || reg.User.Email != "ivan@example.com" || reg.User.Role != models.RoleUser {
		t.Fatalf("unexpected register response: %#v", reg)
	}

	// Duplicate email is rejected.
	if w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", models.RegisterData{
		Name: "Ivan", Email: "ivan@example.com", Password: "secret123",
	}); w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "ivan@example.com", "password": "secret123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	login := decodeEnvelope[models.AuthResponse](t, w)

	if w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "ivan@example.com", "password": "wrong",
	}); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad password, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/auth/me", login.Token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("me: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	me := decodeEnvelope[models.User](t, w)
	if me.ID != reg.User.ID {
		t.Fatalf("expected same user, got %#v", me)
	}

	if w := doJSON(t, r, http.MethodGet, "/api/auth/me", "", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
}

func TestCartSyncFlow(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", models.RegisterData{
		Name: "Anna", Email: "anna@example.com", Password: "secret123",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", w.Code)
	}
	token := decodeEnvelope[models.AuthResponse](t, w).Token

	// Cart endpoints reject anonymous callers.
	if w := doJSON(t, r, http.MethodGet, "/api/cart", "", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}

	payload := models.CartSyncPayload{Items: []models.CartSyncItem{
		{ServiceID: "service-1", Quantity: 2},
		{ServiceID: "service-does-not-exist", Quantity: 1},
	}}
	w = doJSON(t, r, http.MethodPost, "/api/cart/sync", token, payload)
	if w.Code != http.StatusOK {
		t.Fatalf("sync: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	synced := decodeEnvelope[map[string]int](t, w)
	if synced["synced"] != 1 {
		t.Fatalf("expected one recognized item, got %v", synced)
	}

	w = doJSON(t, r, http.MethodGet, "/api/cart", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get cart: expected 200, got %d", w.Code)
	}
	items := decodeEnvelope[[]models.CartResponseItem](t, w)
	if len(items) != 1 || items[0].Service.ID != "service-1" || items[0].Quantity != 2 {
		t.Fatalf("unexpected cart: %#v", items)
	}
}
