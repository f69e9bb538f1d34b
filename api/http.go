package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"soldy/models"
	"soldy/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// HTTPClient speaks the documented wire contract against a real
// backend. Requests are paced by a client-side rate limiter so a
// misbehaving caller cannot hammer the API.
type HTTPClient struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter

	mu    sync.Mutex
	token string
}

// NewHTTPClient builds a client for the given base URL, e.g.
// "http://localhost:8080".
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
		limiter: rate.NewLimiter(rate.Every(time.Second/10), 10),
	}
}

func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *HTTPClient) bearer() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.bearer(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		utils.GetLogger().Warn("API request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%s %s returned status %d", method, path, resp.StatusCode)
	}
	return raw, nil
}

// decode unwraps the {data, message, success} envelope.
func decode[T any](raw []byte) (T, error) {
	var envelope models.APIResponse[T]
	if err := json.Unmarshal(raw, &envelope); err != nil {
		var zero T
		return zero, fmt.Errorf("failed to decode response: %w", err)
	}
	if !envelope.Success {
		var zero T
		return zero, fmt.Errorf("API error: %s", envelope.Message)
	}
	return envelope.Data, nil
}

func catalogValues(q models.CatalogQuery) url.Values {
	values := url.Values{}
	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	for _, c := range q.Category {
		values.Add("category", c)
	}
	for _, b := range q.Brand {
		values.Add("brand", b)
	}
	for _, s := range q.Subcategory {
		values.Add("subcategory", s)
	}
	if q.MinPrice != nil {
		values.Set("minPrice", strconv.FormatFloat(*q.MinPrice, 'f', -1, 64))
	}
	if q.MaxPrice != nil {
		values.Set("maxPrice", strconv.FormatFloat(*q.MaxPrice, 'f', -1, 64))
	}
	if q.SortBy != "" {
		values.Set("sortBy", q.SortBy)
	}
	if q.SortOrder != "" {
		values.Set("sortOrder", q.SortOrder)
	}
	if q.BuyerID != "" {
		values.Set("buyerId", q.BuyerID)
	}
	if q.CatalogType != "" {
		values.Set("catalogType", q.CatalogType)
	}
	return values
}

func (c *HTTPClient) GetServices(ctx context.Context, q models.CatalogQuery) (models.Page, error) {
	path := "/api/services"
	if encoded := catalogValues(q).Encode(); encoded != "" {
		path += "?" + encoded
	}
	raw, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return models.Page{}, err
	}
	return decode[models.Page](raw)
}

func (c *HTTPClient) GetCategories(ctx context.Context) ([]string, error) {
	raw, err := c.do(ctx, http.MethodGet, "/api/services/categories", nil)
	if err != nil {
		return nil, err
	}
	return decode[[]string](raw)
}

func (c *HTTPClient) GetPriceRange(ctx context.Context) (models.PriceRange, error) {
	raw, err := c.do(ctx, http.MethodGet, "/api/services/price-range", nil)
	if err != nil {
		return models.PriceRange{}, err
	}
	return decode[models.PriceRange](raw)
}

func (c *HTTPClient) SyncCart(ctx context.Context, payload models.CartSyncPayload) error {
	_, err := c.do(ctx, http.MethodPost, "/api/cart/sync", payload)
	return err
}

func (c *HTTPClient) GetCart(ctx context.Context) ([]models.CartResponseItem, error) {
	raw, err := c.do(ctx, http.MethodGet, "/api/cart", nil)
	if err != nil {
		return nil, err
	}
	return decode[[]models.CartResponseItem](raw)
}

func (c *HTTPClient) GetOffers(ctx context.Context, listingID string) ([]models.Offer, error) {
	path := "/api/offers?listingId=" + url.QueryEscape(listingID)
	raw, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return decode[[]models.Offer](raw)
}

func (c *HTTPClient) GetRequests(ctx context.Context) ([]models.Request, error) {
	raw, err := c.do(ctx, http.MethodGet, "/api/requests", nil)
	if err != nil {
		return nil, err
	}
	return decode[[]models.Request](raw)
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (models.AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}
	raw, err := c.do(ctx, http.MethodPost, "/api/auth/login", body)
	if err != nil {
		return models.AuthResponse{}, err
	}
	return decode[models.AuthResponse](raw)
}

func (c *HTTPClient) Register(ctx context.Context, data models.RegisterData) (models.AuthResponse, error) {
	raw, err := c.do(ctx, http.MethodPost, "/api/auth/register", data)
	if err != nil {
		return models.AuthResponse{}, err
	}
	return decode[models.AuthResponse](raw)
}

func (c *HTTPClient) Me(ctx context.Context) (models.User, error) {
	raw, err := c.do(ctx, http.MethodGet, "/api/auth/me", nil)
	if err != nil {
		return models.User{}, err
	}
	return decode[models.User](raw)
}
