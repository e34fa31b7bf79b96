package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"aurum-store/internal/models"
	"aurum-store/internal/seed"
	"aurum-store/internal/service"
	"aurum-store/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAccessKey = "test-key"

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	catalog := store.NewCatalog(seed.Products(), seed.Categories())
	areas := store.NewServiceAreas(seed.Pincodes())
	ledger := store.NewLedger(nil)

	gate := service.NewGateService(areas, time.Millisecond)
	cart := service.NewCartService(catalog)
	payment := service.NewPaymentService(time.Millisecond)
	checkout := service.NewCheckoutService(catalog, cart, ledger, payment)
	admin := service.NewAdminService(catalog, areas, ledger)

	router := gin.New()
	NewHandler(gate, cart, checkout, admin, catalog, testAccessKey).SetupRoutes(router)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGateVerifyEndpoint(t *testing.T) {
	router := testRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/gate/verify", gin.H{"pincode": "411001"}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Serviceable bool `json:"serviceable"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Serviceable)

	w = doJSON(t, router, http.MethodPost, "/api/v1/gate/verify", gin.H{"pincode": "400001"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Serviceable)
}

func TestCartAndCheckoutFlow(t *testing.T) {
	router := testRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", gin.H{"productId": 1}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/checkout", gin.H{
		"name":          "Vikram Rathore",
		"phone":         "9876543210",
		"address":       "Villa 45, Koregaon Park, Pune",
		"paymentMethod": "ONLINE",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, 12500, order.TotalAmount)
	assert.Equal(t, models.OrderStatusPending, order.Status)

	// Cart is empty afterwards; a second checkout is rejected.
	w = doJSON(t, router, http.MethodPost, "/api/v1/checkout", gin.H{
		"name":          "Vikram Rathore",
		"phone":         "9876543210",
		"address":       "Villa 45, Koregaon Park, Pune",
		"paymentMethod": "COD",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartStockCeilingConflict(t *testing.T) {
	router := testRouter()

	// Product 3 has stock 3
	for i := 0; i < 3; i++ {
		w := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", gin.H{"productId": 3}, nil)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", gin.H{"productId": 3}, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAdminRequiresAccessKey(t *testing.T) {
	router := testRouter()

	w := doJSON(t, router, http.MethodGet, "/api/v1/admin/orders", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/admin/orders", nil,
		map[string]string{"X-Access-Key": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/admin/orders", nil,
		map[string]string{"X-Access-Key": testAccessKey})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminCategoryDeleteConflict(t *testing.T) {
	router := testRouter()
	auth := map[string]string{"X-Access-Key": testAccessKey}

	// Category 1 ("Watches") is referenced by the seed catalog.
	w := doJSON(t, router, http.MethodDelete, "/api/v1/admin/categories/1", nil, auth)
	require.Equal(t, http.StatusConflict, w.Code)

	var resp struct {
		ProductCount int `json:"productCount"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.ProductCount)
}

func TestAdminPincodePolicy(t *testing.T) {
	router := testRouter()
	auth := map[string]string{"X-Access-Key": testAccessKey}

	w := doJSON(t, router, http.MethodPost, "/api/v1/admin/pincodes",
		gin.H{"region": "Pune", "pincode": "416002"}, auth)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/admin/pincodes",
		gin.H{"region": "Pune", "pincode": "411099"}, auth)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Added bool `json:"added"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Added)
}
