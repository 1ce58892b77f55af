package handler

import (
	"errors"
	"net/http"

	"shopline/internal/app/shop/entity"
	"shopline/internal/app/shop/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CartHandler обрабатывает корзину, заказы и контакты
type CartHandler struct {
	cartService service.CartServiceInterface
	validator   *validator.Validate
}

// NewCartHandler создает новый обработчик корзины
func NewCartHandler(cartService service.CartServiceInterface) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		validator:   validator.New(),
	}
}

// === CART ===

// GetCart обрабатывает GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	order, err := h.cartService.GetCart(c.Request.Context(), principal.UserID)
	if err != nil {
		if errors.Is(err, service.ErrBasketNotFound) {
			respondError(c, http.StatusNotFound, "Basket not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to get cart")
		return
	}

	c.JSON(http.StatusOK, order)
}

// AddToCart обрабатывает POST /cart
func (h *CartHandler) AddToCart(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req entity.CartAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		respondError(c, http.StatusBadRequest, formatValidationError(err))
		return
	}

	order, err := h.cartService.AddItem(c.Request.Context(), principal.UserID, req.ProductInfoID, req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrOfferNotFound) {
			respondError(c, http.StatusNotFound, "Offer not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to add item to cart")
		return
	}

	c.JSON(http.StatusOK, order)
}

// RemoveFromCart обрабатывает DELETE /cart
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req entity.CartRemoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		respondError(c, http.StatusBadRequest, formatValidationError(err))
		return
	}

	order, err := h.cartService.RemoveItem(c.Request.Context(), principal.UserID, req.ProductInfoID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBasketNotFound):
			respondError(c, http.StatusNotFound, "Basket not found")
		case errors.Is(err, service.ErrItemNotFound):
			respondError(c, http.StatusNotFound, "Item not found")
		default:
			respondError(c, http.StatusInternalServerError, "Failed to remove item from cart")
		}
		return
	}

	c.JSON(http.StatusOK, order)
}

// === ORDERS ===

// ConfirmOrder обрабатывает POST /orders/confirm
func (h *CartHandler) ConfirmOrder(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req entity.ConfirmOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		respondError(c, http.StatusBadRequest, formatValidationError(err))
		return
	}

	order, emailStatus, err := h.cartService.ConfirmOrder(c.Request.Context(), principal.UserID, req.ContactID, principal.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrContactNotFound):
			respondError(c, http.StatusBadRequest, "Contact not found")
		case errors.Is(err, service.ErrBasketNotFound):
			respondError(c, http.StatusBadRequest, "Basket not found")
		default:
			respondError(c, http.StatusInternalServerError, "Failed to confirm order")
		}
		return
	}

	c.JSON(http.StatusOK, entity.ConfirmOrderResponse{
		Status:      "Order confirmed",
		OrderID:     order.ID,
		EmailStatus: emailStatus,
	})
}

// ListOrders обрабатывает GET /orders
func (h *CartHandler) ListOrders(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	orders, err := h.cartService.ListOrders(c.Request.Context(), principal.UserID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to get orders")
		return
	}

	c.JSON(http.StatusOK, entity.OrderListResponse{
		Orders: orders,
		Total:  len(orders),
	})
}

// === CONTACTS ===

// CreateContact обрабатывает POST /contacts
func (h *CartHandler) CreateContact(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req entity.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		respondError(c, http.StatusBadRequest, formatValidationError(err))
		return
	}

	contact, err := h.cartService.CreateContact(c.Request.Context(), principal.UserID, &req)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to create contact")
		return
	}

	c.JSON(http.StatusCreated, contact)
}

// ListContacts обрабатывает GET /contacts
func (h *CartHandler) ListContacts(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	contacts, err := h.cartService.ListContacts(c.Request.Context(), principal.UserID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to get contacts")
		return
	}

	c.JSON(http.StatusOK, entity.ContactListResponse{
		Contacts: contacts,
		Total:    len(contacts),
	})
}

// UpdateContact обрабатывает PUT /contacts/:id
func (h *CartHandler) UpdateContact(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid contact ID")
		return
	}

	var req entity.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		respondError(c, http.StatusBadRequest, formatValidationError(err))
		return
	}

	contact, err := h.cartService.UpdateContact(c.Request.Context(), principal.UserID, contactID, &req)
	if err != nil {
		if errors.Is(err, service.ErrContactNotFound) {
			respondError(c, http.StatusNotFound, "Contact not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to update contact")
		return
	}

	c.JSON(http.StatusOK, contact)
}

// DeleteContact обрабатывает DELETE /contacts/:id
func (h *CartHandler) DeleteContact(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid contact ID")
		return
	}

	if err := h.cartService.DeleteContact(c.Request.Context(), principal.UserID, contactID); err != nil {
		if errors.Is(err, service.ErrContactNotFound) {
			respondError(c, http.StatusNotFound, "Contact not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to delete contact")
		return
	}

	c.JSON(http.StatusOK, entity.SuccessResponse{
		Message: "Contact deleted successfully",
	})
}
