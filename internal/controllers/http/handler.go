package http

import (
	"errors"
	"net/http"
	"strconv"

	"food-ordering/internal/domain"
	"food-ordering/internal/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	orders   *services.OrderService
	menu     *services.MenuService
	business *services.BusinessService
}

func NewHandler(orders *services.OrderService, menu *services.MenuService, business *services.BusinessService) *Handler {
	return &Handler{orders: orders, menu: menu, business: business}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)

	r.GET("/business", h.GetBusiness)
	r.PUT("/business", h.PutBusiness)

	r.GET("/menu/catalog", h.GetCatalog)
	r.GET("/menu/categories", h.ListCategories)
	r.GET("/menu/categories/:id", h.GetCategory)
	r.POST("/menu/categories", h.CreateCategory)
	r.PUT("/menu/categories/:id", h.UpdateCategory)
	r.DELETE("/menu/categories/:id", h.DeleteCategory)

	r.GET("/menu/items", h.ListItems)
	r.GET("/menu/items/:id", h.GetItem)
	r.POST("/menu/items", h.CreateItem)
	r.PUT("/menu/items/:id", h.UpdateItem)
	r.DELETE("/menu/items/:id", h.DeleteItem)

	r.POST("/orders", h.CreateOrder)
	r.GET("/orders", h.ListOrders)
	r.GET("/orders/:id", h.GetOrder)
	r.GET("/orders/:id/status", h.GetOrderStatus)
	r.PUT("/orders/:id/status", h.UpdateOrderStatus)
	r.PUT("/orders/:id/cancel", h.CancelOrder)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Backend is running!"})
}

// writeError maps domain errors onto status codes in one place so every
// route reports the taxonomy the same way.
func writeError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrCategoryNotEmpty):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrCancelWindowClosed):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case domain.IsInvalidTransition(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func pathID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func (h *Handler) GetBusiness(c *gin.Context) {
	info, err := h.business.GetBusinessInfo(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

func (h *Handler) PutBusiness(c *gin.Context) {
	var req BusinessInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	info, err := h.business.UpdateBusinessInfo(c.Request.Context(), domain.BusinessInfo{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		Hours:   req.Hours,
		LogoURL: req.LogoURL,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// GetCatalog is the customer-facing menu read: visible items only.
func (h *Handler) GetCatalog(c *gin.Context) {
	cats, err := h.menu.ListCatalog(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cats)
}

func (h *Handler) ListCategories(c *gin.Context) {
	includeItems := c.Query("includeItems") == "true"
	cats, err := h.menu.ListCategories(c.Request.Context(), includeItems)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cats)
}

func (h *Handler) GetCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	cat, err := h.menu.GetCategory(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cat, err := h.menu.CreateCategory(c.Request.Context(), req.Name, req.SortOrder)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cat, err := h.menu.UpdateCategory(c.Request.Context(), id, req.Name, req.SortOrder)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.menu.DeleteCategory(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListItems(c *gin.Context) {
	var categoryID uint64
	if raw := c.Query("category"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category filter"})
			return
		}
		categoryID = parsed
	}
	visibleOnly := c.Query("visible") == "true"

	items, err := h.menu.ListItems(c.Request.Context(), categoryID, visibleOnly)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) GetItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	item, err := h.menu.GetItem(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) CreateItem(c *gin.Context) {
	var req ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := h.menu.CreateItem(c.Request.Context(), itemFromRequest(req))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *Handler) UpdateItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := h.menu.UpdateItem(c.Request.Context(), id, itemFromRequest(req))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) DeleteItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.menu.DeleteItem(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func itemFromRequest(req ItemRequest) domain.MenuItem {
	visible := true
	if req.Visible != nil {
		visible = *req.Visible
	}
	return domain.MenuItem{
		MenuCategoryID: req.MenuCategoryID,
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		ImageURL:       req.ImageURL,
		Visible:        visible,
		SortOrder:      req.SortOrder,
	}
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub := services.OrderSubmission{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		DeliveryAddress: req.DeliveryAddress,
		OrderType:       req.OrderType,
		PaymentMethod:   req.PaymentMethod,
		Notes:           req.Notes,
	}
	for _, line := range req.Items {
		sub.Lines = append(sub.Lines, services.OrderLine{
			MenuItemID: line.MenuItemID,
			Quantity:   line.Quantity,
		})
	}

	order, err := h.orders.CreateOrder(c.Request.Context(), sub)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, CreateOrderResponse{ID: order.ID, Status: order.Status, Total: order.Total})
}

func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.orders.ListOrders(c.Request.Context(), domain.OrderStatus(c.Query("status")))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	order, err := h.orders.GetOrderById(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) GetOrderStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.orders.GetOrderStatus(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := h.orders.TransitionOrder(c.Request.Context(), id, req.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) CancelOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	order, err := h.orders.CancelOrder(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
