package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/Gunvolt24/carb_validation/internal/domain"
	"github.com/Gunvolt24/carb_validation/internal/ports"
	"github.com/Gunvolt24/carb_validation/pkg/validate"
)

// ProductCatalogService: каталог соответствия вариантов (без знаний о транспорте).
type ProductCatalogService struct {
	repo      ports.ProductRepository // прямой доступ к хранилищу
	cache     ports.ProductCache      // прямой доступ к кэшу
	log       ports.Logger            // прямой доступ к логгеру
	validator ports.ProductValidator  // прямой доступ к валидатору
}

// NewProductCatalogService: DI-конструктор.
func NewProductCatalogService(
	repo ports.ProductRepository,
	cache ports.ProductCache,
	log ports.Logger,
	validator ports.ProductValidator,
) *ProductCatalogService {
	return &ProductCatalogService{
		repo:      repo,
		cache:     cache,
		log:       log,
		validator: validator,
	}
}

// GetVariant: получить запись по variant_id: сначала из кэша, при промахе: из БД с записью в кэш.
// Возвращает (*VariantCompliance, nil) или (nil, nil), если записи нет.
func (s *ProductCatalogService) GetVariant(ctx context.Context, variantID string) (*domain.VariantCompliance, error) {
	if v, found := s.cache.Get(ctx, variantID); found {
		return v, nil
	}

	start := time.Now()
	v, err := s.repo.GetByVariantID(ctx, variantID)
	if err != nil {
		s.log.Errorf(ctx, "repo.GetByVariantID failed variant_id=%s err=%v", variantID, err)
		return nil, err
	}

	if v != nil {
		if setErr := s.cache.Set(ctx, v); setErr != nil {
			s.log.Warnf(ctx, "cache.Set failed variant_id=%s err=%v", variantID, setErr)
		}
	}

	s.log.Infof(ctx, "db fetch variant_id=%s took=%s", variantID, time.Since(start))
	return v, nil
}

// LookupVariants: пакетный поиск: попадания берём из кэша, промахи: одним запросом в БД.
// Результат всегда не nil; не найденные варианты в нём отсутствуют.
func (s *ProductCatalogService) LookupVariants(ctx context.Context, variantIDs []string) (map[string]*domain.VariantCompliance, error) {
	found := make(map[string]*domain.VariantCompliance, len(variantIDs))
	misses := make([]string, 0, len(variantIDs))

	for _, id := range variantIDs {
		if v, ok := s.cache.Get(ctx, id); ok {
			found[id] = v
			continue
		}
		misses = append(misses, id)
	}
	if len(misses) == 0 {
		return found, nil
	}

	start := time.Now()
	fetched, err := s.repo.GetByVariantIDs(ctx, misses)
	if err != nil {
		s.log.Errorf(ctx, "repo.GetByVariantIDs failed n=%d err=%v", len(misses), err)
		return nil, fmt.Errorf("lookup variants: %w", err)
	}
	for id, v := range fetched {
		found[id] = v
		if setErr := s.cache.Set(ctx, v); setErr != nil {
			s.log.Warnf(ctx, "cache.Set failed variant_id=%s err=%v", id, setErr)
		}
	}

	s.log.Infof(ctx, "db lookup variants requested=%d found=%d took=%s", len(misses), len(fetched), time.Since(start))
	return found, nil
}

// SaveFromMessage: сохранить запись каталога, пришедшую из Kafka (raw JSON).
// Шаги:
//  1. строгий парсинг JSON (DisallowUnknownFields), битый JSON тоже считается ErrInvalidProduct;
//  2. валидация (вернёт validate.ErrInvalidProduct при проблемах);
//  3. upsert в БД;
//  4. обновление кэша.
func (s *ProductCatalogService) SaveFromMessage(ctx context.Context, raw []byte) error {
	var v domain.VariantCompliance
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		s.log.Warnf(ctx, "invalid json err=%v", err)
		return fmt.Errorf("%w: invalid json: %v", validate.ErrInvalidProduct, err)
	}

	if err := dec.Decode(new(struct{})); err != io.EOF {
		s.log.Warnf(ctx, "invalid json: trailing data")
		return fmt.Errorf("%w: invalid json: trailing data", validate.ErrInvalidProduct)
	}

	if err := s.validator.Validate(ctx, &v); err != nil {
		s.log.Warnf(ctx, "validation failed variant_id=%s err=%v", v.VariantID, err)
		return fmt.Errorf("validation failed: %w", err)
	}

	if v.UpdatedAt.IsZero() {
		v.UpdatedAt = time.Now().UTC()
	}

	if err := s.repo.Save(ctx, &v); err != nil {
		s.log.Errorf(ctx, "repo.Save failed variant_id=%s err=%v", v.VariantID, err)
		return fmt.Errorf("failed to save variant: %w", err)
	}

	if err := s.cache.Set(ctx, &v); err != nil {
		s.log.Warnf(ctx, "cache.Set failed variant_id=%s err=%v", v.VariantID, err)
	}

	s.log.Infof(ctx, "variant saved variant_id=%s tags=%d", v.VariantID, len(v.Tags))
	return nil
}

// RecentVariants: последние обновлённые записи каталога (без кэша).
func (s *ProductCatalogService) RecentVariants(ctx context.Context, limit int) ([]*domain.VariantCompliance, error) {
	list, err := s.repo.LastUpdated(ctx, limit)
	if err != nil {
		s.log.Errorf(ctx, "repo.LastUpdated failed limit=%d err=%v", limit, err)
		return nil, err
	}
	if list == nil {
		list = []*domain.VariantCompliance{}
	}
	return list, nil
}

// WarmUpCache: прогрев кэша последними N обновлёнными вариантами.
// Если n <= 0, прогрев не выполняется (но это не ошибка).
func (s *ProductCatalogService) WarmUpCache(ctx context.Context, n int) error {
	if n <= 0 {
		s.log.Warnf(ctx, "cache warm-up skipped: n <= 0 (n=%d)", n)
		return nil
	}

	start := time.Now()
	list, err := s.repo.LastUpdated(ctx, n)
	if err != nil {
		s.log.Errorf(ctx, "repo.LastUpdated failed n=%d err=%v", n, err)
		return err
	}
	if warmUpErr := s.cache.WarmUp(ctx, list); warmUpErr != nil {
		s.log.Warnf(ctx, "cache.WarmUp failed err=%v", warmUpErr)
	}
	s.log.Infof(ctx, "cache warmed with %d variants in %s", len(list), time.Since(start))
	return nil
}
