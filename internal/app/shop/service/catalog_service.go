package service

import (
	"context"
	"fmt"
	"time"

	"shopline/internal/app/shop/entity"
	"shopline/internal/app/shop/repository"
	"shopline/pkg/logger"
)

// CatalogService обрабатывает просмотр каталога: предложения и категории
type CatalogService struct {
	catalogRepo repository.CatalogRepository
	cache       CategoryCache
}

// NewCatalogService создает новый сервис каталога
func NewCatalogService(catalogRepo repository.CatalogRepository, cache CategoryCache) *CatalogService {
	return &CatalogService{
		catalogRepo: catalogRepo,
		cache:       cache,
	}
}

// GetOffers получает предложения, опционально по имени категории
func (s *CatalogService) GetOffers(ctx context.Context, categoryName string) ([]entity.ProductInfo, error) {
	offers, err := s.catalogRepo.GetOffers(ctx, categoryName)
	if err != nil {
		return nil, fmt.Errorf("failed to get offers: %w", err)
	}

	return offers, nil
}

// GetCategories получает все категории с кешированием в Redis.
// Сначала проверяет кеш, при промахе загружает из БД и кеширует.
func (s *CatalogService) GetCategories(ctx context.Context) ([]entity.Category, error) {
	categories, err := s.cache.GetCategories(ctx)
	if err == nil && len(categories) > 0 {
		return categories, nil
	}
	if err != nil {
		// Проблемы с кешем не критичны, идём в БД
		logger.Warn().Err(err).Msg("failed to read categories cache")
	}

	categories, err = s.catalogRepo.GetCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	if err := s.cache.SetCategories(ctx, categories, time.Hour); err != nil {
		logger.Warn().Err(err).Msg("failed to cache categories")
	}

	return categories, nil
}
