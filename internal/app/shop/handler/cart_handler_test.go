package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"shopline/internal/app/shop/entity"
	"shopline/internal/app/shop/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCartService мок для CartServiceInterface
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) GetCart(ctx context.Context, userID uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *MockCartService) AddItem(ctx context.Context, userID, productInfoID uuid.UUID, quantity int) (*entity.Order, error) {
	args := m.Called(ctx, userID, productInfoID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *MockCartService) RemoveItem(ctx context.Context, userID, productInfoID uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, userID, productInfoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *MockCartService) ConfirmOrder(ctx context.Context, userID, contactID uuid.UUID, email string) (*entity.Order, string, error) {
	args := m.Called(ctx, userID, contactID, email)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*entity.Order), args.String(1), args.Error(2)
}

func (m *MockCartService) ListOrders(ctx context.Context, userID uuid.UUID) ([]entity.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Order), args.Error(1)
}

func (m *MockCartService) CreateContact(ctx context.Context, userID uuid.UUID, req *entity.ContactRequest) (*entity.Contact, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Contact), args.Error(1)
}

func (m *MockCartService) ListContacts(ctx context.Context, userID uuid.UUID) ([]entity.Contact, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Contact), args.Error(1)
}

func (m *MockCartService) UpdateContact(ctx context.Context, userID, contactID uuid.UUID, req *entity.ContactRequest) (*entity.Contact, error) {
	args := m.Called(ctx, userID, contactID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Contact), args.Error(1)
}

func (m *MockCartService) DeleteContact(ctx context.Context, userID, contactID uuid.UUID) error {
	args := m.Called(ctx, userID, contactID)
	return args.Error(0)
}

func setupCartRouter(method, path string, userID uuid.UUID, handlerFunc gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Handle(method, path, func(c *gin.Context) {
		c.Set(principalKey, entity.Principal{UserID: userID, Email: "buyer@example.com", Type: entity.UserTypeBuyer})
		handlerFunc(c)
	})
	return router
}

func TestCartHandler_AddToCart_Success(t *testing.T) {
	// Arrange
	cartService := new(MockCartService)
	handler := NewCartHandler(cartService)

	userID := uuid.New()
	offerID := uuid.New()
	router := setupCartRouter(http.MethodPost, "/cart", userID, handler.AddToCart)

	basket := &entity.Order{ID: uuid.New(), UserID: userID, Status: entity.OrderStatusBasket}
	cartService.On("AddItem", mock.Anything, userID, offerID, 2).Return(basket, nil)

	payload := entity.CartAddRequest{ProductInfoID: offerID, Quantity: 2}

	// Act
	w := performJSONRequest(router, http.MethodPost, "/cart", payload)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	cartService.AssertExpectations(t)
}

func TestCartHandler_AddToCart_InvalidQuantity(t *testing.T) {
	cartService := new(MockCartService)
	handler := NewCartHandler(cartService)
	router := setupCartRouter(http.MethodPost, "/cart", uuid.New(), handler.AddToCart)

	payload := entity.CartAddRequest{ProductInfoID: uuid.New(), Quantity: 0}

	w := performJSONRequest(router, http.MethodPost, "/cart", payload)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	cartService.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCartHandler_AddToCart_OfferNotFound(t *testing.T) {
	cartService := new(MockCartService)
	handler := NewCartHandler(cartService)

	userID := uuid.New()
	offerID := uuid.New()
	router := setupCartRouter(http.MethodPost, "/cart", userID, handler.AddToCart)

	cartService.On("AddItem", mock.Anything, userID, offerID, 1).Return(nil, service.ErrOfferNotFound)

	payload := entity.CartAddRequest{ProductInfoID: offerID, Quantity: 1}

	w := performJSONRequest(router, http.MethodPost, "/cart", payload)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartHandler_GetCart_NotFound(t *testing.T) {
	cartService := new(MockCartService)
	handler := NewCartHandler(cartService)

	userID := uuid.New()
	router := setupCartRouter(http.MethodGet, "/cart", userID, handler.GetCart)

	cartService.On("GetCart", mock.Anything, userID).Return(nil, service.ErrBasketNotFound)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cart", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartHandler_ConfirmOrder_Success(t *testing.T) {
	cartService := new(MockCartService)
	handler := NewCartHandler(cartService)

	userID := uuid.New()
	contactID := uuid.New()
	router := setupCartRouter(http.MethodPost, "/orders/confirm", userID, handler.ConfirmOrder)

	order := &entity.Order{ID: uuid.New(), UserID: userID, Status: entity.OrderStatusConfirmed}
	cartService.On("ConfirmOrder", mock.Anything, userID, contactID, "buyer@example.com").
		Return(order, "Email sent successfully", nil)

	payload := entity.ConfirmOrderRequest{ContactID: contactID}

	// Act
	w := performJSONRequest(router, http.MethodPost, "/orders/confirm", payload)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)

	var response entity.ConfirmOrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, order.ID, response.OrderID)
	assert.Equal(t, "Email sent successfully", response.EmailStatus)
}

func TestCartHandler_ConfirmOrder_ContactNotFound(t *testing.T) {
	cartService := new(MockCartService)
	handler := NewCartHandler(cartService)

	userID := uuid.New()
	contactID := uuid.New()
	router := setupCartRouter(http.MethodPost, "/orders/confirm", userID, handler.ConfirmOrder)

	cartService.On("ConfirmOrder", mock.Anything, userID, contactID, "buyer@example.com").
		Return(nil, "", service.ErrContactNotFound)

	payload := entity.ConfirmOrderRequest{ContactID: contactID}

	w := performJSONRequest(router, http.MethodPost, "/orders/confirm", payload)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartHandler_ConfirmOrder_EmptyBasket(t *testing.T) {
	cartService := new(MockCartService)
	handler := NewCartHandler(cartService)

	userID := uuid.New()
	contactID := uuid.New()
	router := setupCartRouter(http.MethodPost, "/orders/confirm", userID, handler.ConfirmOrder)

	cartService.On("ConfirmOrder", mock.Anything, userID, contactID, "buyer@example.com").
		Return(nil, "", service.ErrBasketNotFound)

	payload := entity.ConfirmOrderRequest{ContactID: contactID}

	w := performJSONRequest(router, http.MethodPost, "/orders/confirm", payload)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartHandler_CreateContact_Success(t *testing.T) {
	cartService := new(MockCartService)
	handler := NewCartHandler(cartService)

	userID := uuid.New()
	router := setupCartRouter(http.MethodPost, "/contacts", userID, handler.CreateContact)

	contact := &entity.Contact{ID: uuid.New(), UserID: userID, City: "Moscow", Phone: "+79001234567"}
	cartService.On("CreateContact", mock.Anything, userID, mock.AnythingOfType("*entity.ContactRequest")).
		Return(contact, nil)

	payload := entity.ContactRequest{City: "Moscow", Street: "Tverskaya", House: "1", Phone: "+79001234567"}

	w := performJSONRequest(router, http.MethodPost, "/contacts", payload)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCartHandler_DeleteContact_InvalidID(t *testing.T) {
	cartService := new(MockCartService)
	handler := NewCartHandler(cartService)

	router := setupCartRouter(http.MethodDelete, "/contacts/:id", uuid.New(), handler.DeleteContact)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/contacts/not-a-uuid", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	cartService.AssertNotCalled(t, "DeleteContact", mock.Anything, mock.Anything, mock.Anything)
}
