package repository

import (
	"context"
	"errors"

	"shopline/internal/app/shop/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository создает новый репозиторий контактов
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

// Create создает новый контакт
func (r *contactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

// GetByIDAndUser получает контакт по ID, принадлежащий пользователю
func (r *contactRepository) GetByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Contact, error) {
	var contact entity.Contact
	result := r.db.WithContext(ctx).First(&contact, "id = ? AND user_id = ?", id, userID)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, result.Error
	}

	return &contact, nil
}

// ListByUser получает все контакты пользователя
func (r *contactRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Contact, error) {
	var contacts []entity.Contact
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&contacts)

	if result.Error != nil {
		return nil, result.Error
	}

	return contacts, nil
}

// Update обновляет контакт
func (r *contactRepository) Update(ctx context.Context, contact *entity.Contact) error {
	result := r.db.WithContext(ctx).Model(contact).
		Where("id = ? AND user_id = ?", contact.ID, contact.UserID).
		Updates(map[string]interface{}{
			"city":   contact.City,
			"street": contact.Street,
			"house":  contact.House,
			"phone":  contact.Phone,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrContactNotFound
	}

	return nil
}

// Delete удаляет контакт пользователя
func (r *contactRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&entity.Contact{}, "id = ? AND user_id = ?", id, userID)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrContactNotFound
	}

	return nil
}
