package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront-service/internal/domain"
	"storefront-service/internal/services"
)

type Handler struct {
	catalog *services.CatalogService
	cart    *services.CartService
	orders  *services.OrderService
}

func NewHandler(catalog *services.CatalogService, cart *services.CartService, orders *services.OrderService) *Handler {
	return &Handler{catalog: catalog, cart: cart, orders: orders}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/products", h.ListProducts)
	r.GET("/categories", h.ListCategories)
	r.GET("/cart", h.GetCart)
	r.POST("/cart/items", h.AddCartItem)
	r.PATCH("/cart/items/:productId", h.UpdateCartItem)
	r.DELETE("/cart/items/:productId", h.RemoveCartItem)
	r.DELETE("/cart", h.ClearCart)
	r.POST("/checkout", h.Checkout)
	r.GET("/orders", h.ListOrders)
}

func (h *Handler) ListProducts(c *gin.Context) {
	q := domain.CatalogQuery{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Sort:     c.Query("sort"),
	}

	products, err := h.catalog.Browse(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.catalog.Categories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *Handler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, cartResponse(h.cart.Cart()))
}

func (h *Handler) AddCartItem(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Product.ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product id is required"})
		return
	}

	cart := h.cart.AddProduct(c.Request.Context(), req.Product)
	c.JSON(http.StatusOK, cartResponse(cart))
}

func (h *Handler) UpdateCartItem(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("productId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cart := h.cart.SetQuantity(c.Request.Context(), productID, *req.Quantity)
	c.JSON(http.StatusOK, cartResponse(cart))
}

func (h *Handler) RemoveCartItem(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("productId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	cart := h.cart.RemoveProduct(c.Request.Context(), productID)
	c.JSON(http.StatusOK, cartResponse(cart))
}

func (h *Handler) ClearCart(c *gin.Context) {
	h.cart.Clear(c.Request.Context())
	c.Status(http.StatusNoContent)
}

func (h *Handler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orders.Checkout(c.Request.Context(), domain.OrderDraft{
		CustomerEmail:   req.CustomerEmail,
		CustomerName:    req.CustomerName,
		ShippingAddress: req.ShippingAddress,
	})
	if err != nil {
		if errors.Is(err, services.ErrMissingCheckoutField) || errors.Is(err, services.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, order)
}

func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.orders.History(c.Request.Context(), c.Query("email"))
	if err != nil {
		if errors.Is(err, services.ErrEmailRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, orders)
}

func cartResponse(cart domain.Cart) CartResponse {
	lines := cart.Lines
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return CartResponse{
		Lines:      lines,
		TotalItems: cart.TotalItems(),
		TotalPrice: cart.TotalPrice(),
	}
}
