package service

import (
	"context"
	"errors"
	"fmt"

	"shopline/internal/app/shop/entity"
	"shopline/internal/app/shop/repository"
	"shopline/internal/app/shop/util"
	"shopline/pkg/logger"
	"shopline/pkg/metrics"

	"github.com/google/uuid"
)

// CartService обрабатывает корзину, подтверждение заказов и контакты
type CartService struct {
	orderRepo   repository.OrderRepository
	catalogRepo repository.CatalogRepository
	contactRepo repository.ContactRepository
	mailer      util.Mailer
}

// NewCartService создает новый сервис корзины
func NewCartService(
	orderRepo repository.OrderRepository,
	catalogRepo repository.CatalogRepository,
	contactRepo repository.ContactRepository,
	mailer util.Mailer,
) *CartService {
	return &CartService{
		orderRepo:   orderRepo,
		catalogRepo: catalogRepo,
		contactRepo: contactRepo,
		mailer:      mailer,
	}
}

// GetCart получает корзину пользователя
func (s *CartService) GetCart(ctx context.Context, userID uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetBasket(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrBasketNotFound) {
			return nil, ErrBasketNotFound
		}
		return nil, fmt.Errorf("failed to get basket: %w", err)
	}

	return order, nil
}

// AddItem добавляет предложение в корзину.
// Если позиция для пары (заказ, предложение) уже существует,
// количество складывается, иначе создается новая позиция.
func (s *CartService) AddItem(ctx context.Context, userID, productInfoID uuid.UUID, quantity int) (*entity.Order, error) {
	if _, err := s.catalogRepo.GetOfferByID(ctx, productInfoID); err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, fmt.Errorf("failed to get offer: %w", err)
	}

	order, err := s.orderRepo.GetOrCreateBasket(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get basket: %w", err)
	}

	item, err := s.orderRepo.GetItem(ctx, order.ID, productInfoID)
	switch {
	case err == nil:
		if err := s.orderRepo.UpdateItemQuantity(ctx, item.ID, item.Quantity+quantity); err != nil {
			return nil, fmt.Errorf("failed to update item quantity: %w", err)
		}
	case errors.Is(err, repository.ErrOrderItemNotFound):
		newItem := &entity.OrderItem{
			ID:            uuid.New(),
			OrderID:       order.ID,
			ProductInfoID: productInfoID,
			Quantity:      quantity,
		}
		if err := s.orderRepo.CreateItem(ctx, newItem); err != nil {
			return nil, fmt.Errorf("failed to create item: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	metrics.CartOperations.WithLabelValues("add").Inc()

	return s.orderRepo.GetBasket(ctx, userID)
}

// RemoveItem удаляет позицию из корзины
func (s *CartService) RemoveItem(ctx context.Context, userID, productInfoID uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetBasket(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrBasketNotFound) {
			return nil, ErrBasketNotFound
		}
		return nil, fmt.Errorf("failed to get basket: %w", err)
	}

	item, err := s.orderRepo.GetItem(ctx, order.ID, productInfoID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderItemNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	if err := s.orderRepo.DeleteItem(ctx, item.ID); err != nil {
		return nil, fmt.Errorf("failed to delete item: %w", err)
	}

	metrics.CartOperations.WithLabelValues("remove").Inc()

	return s.orderRepo.GetBasket(ctx, userID)
}

// ConfirmOrder подтверждает корзину: записывает контакт и переводит
// статус basket -> confirmed. Письмо о подтверждении отправляется
// best-effort после смены статуса и никогда её не откатывает.
func (s *CartService) ConfirmOrder(ctx context.Context, userID, contactID uuid.UUID, email string) (*entity.Order, string, error) {
	contact, err := s.contactRepo.GetByIDAndUser(ctx, contactID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			return nil, "", ErrContactNotFound
		}
		return nil, "", fmt.Errorf("failed to get contact: %w", err)
	}

	order, err := s.orderRepo.GetBasket(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrBasketNotFound) {
			return nil, "", ErrBasketNotFound
		}
		return nil, "", fmt.Errorf("failed to get basket: %w", err)
	}

	order.Status = entity.OrderStatusConfirmed
	order.ContactID = &contact.ID

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, "", fmt.Errorf("failed to confirm order: %w", err)
	}

	metrics.OrdersConfirmed.Inc()

	emailStatus := "Email sent successfully"
	body := fmt.Sprintf("Your order #%s has been confirmed.", order.ID)
	if err := s.mailer.Send(ctx, "Order Confirmation", body, email); err != nil {
		metrics.EmailsSent.WithLabelValues("failed").Inc()
		logger.Warn().Err(err).Str("order_id", order.ID.String()).Msg("failed to send confirmation email")
		emailStatus = fmt.Sprintf("Order confirmed, but failed to send email: %v", err)
	} else {
		metrics.EmailsSent.WithLabelValues("sent").Inc()
	}

	return order, emailStatus, nil
}

// ListOrders получает заказы пользователя, исключая корзину
func (s *CartService) ListOrders(ctx context.Context, userID uuid.UUID) ([]entity.Order, error) {
	orders, err := s.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}

// === CONTACTS ===

// CreateContact создает контакт пользователя
func (s *CartService) CreateContact(ctx context.Context, userID uuid.UUID, req *entity.ContactRequest) (*entity.Contact, error) {
	contact := &entity.Contact{
		ID:     uuid.New(),
		UserID: userID,
		City:   req.City,
		Street: req.Street,
		House:  req.House,
		Phone:  req.Phone,
	}

	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	return contact, nil
}

// ListContacts получает все контакты пользователя
func (s *CartService) ListContacts(ctx context.Context, userID uuid.UUID) ([]entity.Contact, error) {
	contacts, err := s.contactRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	return contacts, nil
}

// UpdateContact обновляет контакт пользователя
func (s *CartService) UpdateContact(ctx context.Context, userID, contactID uuid.UUID, req *entity.ContactRequest) (*entity.Contact, error) {
	contact, err := s.contactRepo.GetByIDAndUser(ctx, contactID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}

	contact.City = req.City
	contact.Street = req.Street
	contact.House = req.House
	contact.Phone = req.Phone

	if err := s.contactRepo.Update(ctx, contact); err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}

	return contact, nil
}

// DeleteContact удаляет контакт пользователя
func (s *CartService) DeleteContact(ctx context.Context, userID, contactID uuid.UUID) error {
	if err := s.contactRepo.Delete(ctx, contactID, userID); err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			return ErrContactNotFound
		}
		return fmt.Errorf("failed to delete contact: %w", err)
	}

	return nil
}
