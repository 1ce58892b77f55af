package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"shopline/internal/app/shop/entity"
	"shopline/internal/app/shop/importer"
	"shopline/internal/app/shop/repository"
	"shopline/pkg/logger"
	"shopline/pkg/metrics"

	"github.com/google/uuid"
)

// ImportService оркестрирует импорт каталога поставщика:
// авторизация, получение документа (URL или файл), разбор и согласование
// сущностей в одной транзакции
type ImportService struct {
	importRepo repository.ImportRepository
	logRepo    repository.ImportLogRepository
	fetcher    DocumentFetcher
	publisher  MessagePublisher
	cache      CategoryCache
}

// NewImportService создает новый сервис импорта каталога
func NewImportService(
	importRepo repository.ImportRepository,
	logRepo repository.ImportLogRepository,
	fetcher DocumentFetcher,
	publisher MessagePublisher,
	cache CategoryCache,
) *ImportService {
	return &ImportService{
		importRepo: importRepo,
		logRepo:    logRepo,
		fetcher:    fetcher,
		publisher:  publisher,
		cache:      cache,
	}
}

// Import выполняет полный цикл импорта каталога.
// Ровно один источник обязателен: url либо file. Ошибки согласования
// откатывают транзакцию целиком - частичных импортов не бывает.
func (s *ImportService) Import(ctx context.Context, principal entity.Principal, sourceURL string, file []byte) (*entity.ImportSummary, error) {
	started := time.Now()
	defer func() {
		metrics.ImportDuration.Observe(time.Since(started).Seconds())
	}()

	if !principal.CanImport() {
		metrics.ImportsTotal.WithLabelValues("forbidden").Inc()
		return nil, ErrForbidden
	}

	if sourceURL == "" && len(file) == 0 {
		metrics.ImportsTotal.WithLabelValues("bad_request").Inc()
		return nil, ErrSourceRequired
	}

	var raw []byte
	if sourceURL != "" {
		if err := validateURL(sourceURL); err != nil {
			metrics.ImportsTotal.WithLabelValues("bad_request").Inc()
			return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
		}

		fetched, err := s.fetcher.Fetch(ctx, sourceURL)
		if err != nil {
			metrics.ImportsTotal.WithLabelValues("bad_request").Inc()
			return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
		}
		raw = fetched
	} else {
		raw = file
	}

	doc, err := importer.Parse(raw)
	if err != nil {
		metrics.ImportsTotal.WithLabelValues("bad_request").Inc()
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	summary, err := s.reconcile(ctx, doc, principal.UserID, sourceURL)
	if err != nil {
		metrics.ImportsTotal.WithLabelValues("failed").Inc()
		s.appendLog(principal.UserID, doc.Shop, sourceURL, nil, err)
		return nil, fmt.Errorf("%w: %v", ErrImportFailed, err)
	}

	metrics.ImportsTotal.WithLabelValues("success").Inc()
	metrics.ImportedOffers.Add(float64(summary.Offers))

	logger.Info().
		Str("shop", summary.ShopName).
		Str("user_id", principal.UserID.String()).
		Ints("categories", doc.CategoryIDs()).
		Int("offers", summary.Offers).
		Msg("catalog imported")

	// Событие, журнал и сброс кеша - post-commit и best-effort:
	// их сбой не влияет на результат импорта
	s.publishImportEvent(principal.UserID, summary)
	s.appendLog(principal.UserID, summary.ShopName, sourceURL, summary, nil)
	s.invalidateCategoryCache()

	return summary, nil
}

// reconcile выполняет идемпотентный upsert всего графа документа
// в одной транзакции
func (s *ImportService) reconcile(ctx context.Context, doc *importer.CatalogDocument, userID uuid.UUID, sourceURL string) (*entity.ImportSummary, error) {
	var summary entity.ImportSummary

	err := s.importRepo.RunInTransaction(ctx, func(tx repository.ImportTx) error {
		if doc.Shop == "" {
			return errors.New("shop name is required")
		}

		shop, _, err := tx.GetOrCreateShop(doc.Shop, userID, sourceURL)
		if err != nil {
			return fmt.Errorf("failed to resolve shop: %w", err)
		}
		summary.ShopID = shop.ID
		summary.ShopName = shop.Name

		for _, record := range doc.Categories {
			if _, _, err := tx.GetOrCreateCategory(record.ID, record.Name); err != nil {
				return fmt.Errorf("failed to resolve category %d: %w", record.ID, err)
			}
			if err := tx.LinkCategoryShop(record.ID, shop.ID); err != nil {
				return fmt.Errorf("failed to link category %d to shop: %w", record.ID, err)
			}
			summary.Categories++
		}

		for _, good := range doc.Goods {
			if good.Name == "" {
				return errors.New("product name is required")
			}

			product, _, err := tx.GetOrCreateProduct(good.Name, good.Category)
			if err != nil {
				return fmt.Errorf("failed to resolve product %q: %w", good.Name, err)
			}
			summary.Products++

			info := &entity.ProductInfo{
				ID:        uuid.New(),
				ProductID: product.ID,
				ShopID:    shop.ID,
				Name:      good.Model,
				Quantity:  good.Quantity,
				Price:     good.Price,
				PriceRRC:  good.PriceRRC,
			}
			if err := tx.CreateProductInfo(info); err != nil {
				return fmt.Errorf("failed to create offer for %q: %w", good.Name, err)
			}
			summary.Offers++

			for paramName, paramValue := range good.Parameters {
				parameter, _, err := tx.GetOrCreateParameter(paramName)
				if err != nil {
					return fmt.Errorf("failed to resolve parameter %q: %w", paramName, err)
				}

				pp := &entity.ProductParameter{
					ID:            uuid.New(),
					ProductInfoID: info.ID,
					ParameterID:   parameter.ID,
					Value:         paramValue.String(),
				}
				if err := tx.CreateProductParameter(pp); err != nil {
					return fmt.Errorf("failed to create parameter value %q: %w", paramName, err)
				}
				summary.Parameters++
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return &summary, nil
}

// publishImportEvent отправляет событие CATALOG_IMPORTED в Kafka (best-effort)
func (s *ImportService) publishImportEvent(userID uuid.UUID, summary *entity.ImportSummary) {
	event := entity.ImportEvent{
		EventType: "CATALOG_IMPORTED",
		UserID:    userID,
		ShopID:    summary.ShopID,
		ShopName:  summary.ShopName,
		Offers:    summary.Offers,
		Timestamp: time.Now(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Error().Err(err).Msg("failed to marshal import event")
		return
	}

	// Отдельный контекст с таймаутом: транзакция уже закоммичена,
	// отмена исходного запроса не должна терять событие
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.publisher.PublishMessage(ctx, summary.ShopID.String(), data); err != nil {
		logger.Error().Err(err).Msg("failed to publish import event")
	}
}

// invalidateCategoryCache сбрасывает кеш списка категорий:
// импорт мог добавить новые категории
func (s *ImportService) invalidateCategoryCache() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.cache.DeleteCategories(ctx); err != nil {
		logger.Warn().Err(err).Msg("failed to invalidate categories cache")
	}
}

// appendLog добавляет запись в журнал импортов (best-effort)
func (s *ImportService) appendLog(userID uuid.UUID, shopName, sourceURL string, summary *entity.ImportSummary, importErr error) {
	log := &entity.ImportLog{
		UserID:    userID.String(),
		ShopName:  shopName,
		SourceURL: sourceURL,
		Success:   importErr == nil,
	}
	if importErr != nil {
		log.Error = importErr.Error()
	}
	if summary != nil {
		log.Categories = summary.Categories
		log.Products = summary.Products
		log.Offers = summary.Offers
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.logRepo.Append(ctx, log); err != nil {
		logger.Error().Err(err).Msg("failed to append import log")
	}
}

// validateURL проверяет, что строка является абсолютным http(s) URL
func validateURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return errors.New("missing host")
	}
	return nil
}
