package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"aurum-store/internal/models"
	"aurum-store/internal/service"
	"aurum-store/internal/store"
	"aurum-store/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler contains the HTTP handlers for the storefront and admin surfaces
type Handler struct {
	gate     *service.GateService
	cart     *service.CartService
	checkout *service.CheckoutService
	admin    *service.AdminService
	catalog  *store.Catalog
	adminKey string
}

// NewHandler creates a new HTTP handler
func NewHandler(
	gate *service.GateService,
	cart *service.CartService,
	checkout *service.CheckoutService,
	admin *service.AdminService,
	catalog *store.Catalog,
	adminKey string,
) *Handler {
	return &Handler{
		gate:     gate,
		cart:     cart,
		checkout: checkout,
		admin:    admin,
		catalog:  catalog,
		adminKey: adminKey,
	}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())

	router.GET("/health", h.healthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/gate/verify", h.verifyPincode)
		v1.GET("/products", h.listProducts)
		v1.GET("/products/:id", h.getProduct)
		v1.GET("/categories", h.listCategories)

		v1.GET("/cart", h.getCart)
		v1.POST("/cart/items", h.addToCart)
		v1.PATCH("/cart/items/:id", h.updateCartQuantity)
		v1.DELETE("/cart", h.clearCart)

		v1.POST("/checkout", h.placeOrder)
	}

	admin := v1.Group("/admin", h.accessKeyMiddleware())
	{
		admin.POST("/products", h.adminAddProduct)
		admin.PUT("/products/:id", h.adminUpdateProduct)
		admin.DELETE("/products/:id", h.adminDeleteProduct)
		admin.POST("/products/:id/stock", h.adminAdjustStock)

		admin.POST("/categories", h.adminAddCategory)
		admin.PUT("/categories/:id", h.adminRenameCategory)
		admin.DELETE("/categories/:id", h.adminDeleteCategory)

		admin.GET("/pincodes", h.adminListPincodes)
		admin.POST("/pincodes", h.adminAddPincode)
		admin.DELETE("/pincodes/:code", h.adminRemovePincode)

		admin.GET("/orders", h.adminListOrders)
		admin.PATCH("/orders/:id/status", h.adminUpdateOrderStatus)

		admin.GET("/reports/summary", h.adminSummary)
	}
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// verifyPincode checks whether the store serves the given pincode
func (h *Handler) verifyPincode(c *gin.Context) {
	var req struct {
		Pincode string `json:"pincode" binding:"required,len=6"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	ok, err := h.gate.Verify(c.Request.Context(), req.Pincode)
	if err != nil {
		c.JSON(http.StatusRequestTimeout, gin.H{"error": "Verification aborted", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"pincode": req.Pincode, "serviceable": ok})
}

// listProducts returns the browsable catalog
func (h *Handler) listProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"products": h.catalog.Products()})
}

// getProduct returns a single product by id
func (h *Handler) getProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	product, err := h.catalog.Product(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// listCategories returns the category taxonomy
func (h *Handler) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.catalog.Categories()})
}

// getCart returns the cart lines with total and unit count
func (h *Handler) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"items": h.cart.Items(),
		"total": h.cart.Total(),
		"count": h.cart.Count(),
	})
}

// addToCart adds one unit of a product to the cart
func (h *Handler) addToCart(c *gin.Context) {
	var req struct {
		ProductID int `json:"productId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.cart.Add(req.ProductID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": h.cart.Items(), "total": h.cart.Total()})
}

// updateCartQuantity applies a quantity delta to a cart line
func (h *Handler) updateCartQuantity(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var req struct {
		Delta int `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.cart.UpdateQuantity(id, req.Delta); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": h.cart.Items(), "total": h.cart.Total()})
}

// clearCart empties the cart
func (h *Handler) clearCart(c *gin.Context) {
	h.cart.Clear()
	c.Status(http.StatusNoContent)
}

// placeOrder runs the checkout transaction
func (h *Handler) placeOrder(c *gin.Context) {
	var details service.CheckoutDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	order, err := h.checkout.PlaceOrder(c.Request.Context(), details)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// adminAddProduct creates a product through the guarded control plane
func (h *Handler) adminAddProduct(c *gin.Context) {
	var data models.ProductData
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	product, err := h.admin.AddProduct(data)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// adminUpdateProduct replaces a full product record
func (h *Handler) adminUpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	product.ID = id

	if err := h.admin.UpdateProduct(product); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// adminDeleteProduct removes a product
func (h *Handler) adminDeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	h.admin.DeleteProduct(id)
	c.Status(http.StatusNoContent)
}

// adminAdjustStock applies a stock delta for the dashboard +/- controls
func (h *Handler) adminAdjustStock(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var req struct {
		Delta int `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.admin.AdjustStock(id, req.Delta); err != nil {
		respondError(c, err)
		return
	}

	product, err := h.catalog.Product(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// adminAddCategory creates a category
func (h *Handler) adminAddCategory(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	category, err := h.admin.AddCategory(req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

// adminRenameCategory renames a category with product cascade
func (h *Handler) adminRenameCategory(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.admin.RenameCategory(c.Param("id"), req.Name); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// adminDeleteCategory removes a category unless referenced
func (h *Handler) adminDeleteCategory(c *gin.Context) {
	if err := h.admin.DeleteCategory(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// adminListPincodes lists pincodes, optionally filtered by region
func (h *Handler) adminListPincodes(c *gin.Context) {
	region := c.Query("region")
	if region == "" {
		c.JSON(http.StatusOK, gin.H{"pincodes": h.admin.Pincodes()})
		return
	}

	codes, err := h.admin.PincodesByRegion(region)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"region": region, "pincodes": codes})
}

// adminAddPincode registers a serviceable pincode under a region
func (h *Handler) adminAddPincode(c *gin.Context) {
	var req struct {
		Region  string `json:"region" binding:"required"`
		Pincode string `json:"pincode" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	added, err := h.admin.AddPincode(req.Region, req.Pincode)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pincode": req.Pincode, "added": added})
}

// adminRemovePincode stops serving a pincode
func (h *Handler) adminRemovePincode(c *gin.Context) {
	removed := h.admin.RemovePincode(c.Param("code"))
	c.JSON(http.StatusOK, gin.H{"pincode": c.Param("code"), "removed": removed})
}

// adminListOrders returns the ledger, most recent first
func (h *Handler) adminListOrders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"orders": h.admin.Orders()})
}

// adminUpdateOrderStatus assigns a new order status
func (h *Handler) adminUpdateOrderStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.admin.UpdateOrderStatus(c.Param("id"), req.Status); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// adminSummary returns the dashboard read models
func (h *Handler) adminSummary(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"totalRevenue": h.admin.TotalRevenue(),
		"customers":    h.admin.UniqueCustomers(),
	})
}

// accessKeyMiddleware gates the admin surface with the shared static
// credential. Equality check only; this is not a security boundary.
func (h *Handler) accessKeyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("X-Access-Key") != h.adminKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid access key"})
			return
		}
		c.Next()
	}
}

// respondError maps domain errors to HTTP statuses
func respondError(c *gin.Context, err error) {
	var (
		refErr    *store.ReferencedError
		stockErr  *service.InsufficientStockError
		regionErr *service.InvalidRegionError
		valErr    *service.ValidationError
	)

	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &refErr):
		c.JSON(http.StatusConflict, gin.H{"error": refErr.Error(), "productCount": refErr.ProductCount})
	case errors.As(err, &stockErr):
		c.JSON(http.StatusConflict, gin.H{"error": stockErr.Error(), "available": stockErr.Available})
	case errors.As(err, &regionErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": regionErr.Error()})
	case errors.As(err, &valErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": valErr.Error()})
	case errors.Is(err, service.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}
