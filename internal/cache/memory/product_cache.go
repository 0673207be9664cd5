package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/carb_validation/internal/domain"
	"github.com/Gunvolt24/carb_validation/internal/ports"
	"github.com/Gunvolt24/carb_validation/pkg/metrics"
)

var _ ports.ProductCache = (*LRUCacheTTL)(nil)

// slot: элемент списка: копия записи и срок её жизни.
type slot struct {
	variant  *domain.VariantCompliance
	deadline time.Time // нулевое значение: без срока
}

// LRUCacheTTL: LRU по variant_id со скользящим TTL.
// Голова списка: самая свежая запись, хвост: кандидат на вытеснение.
// Set не заменяет запись с более поздним UpdatedAt (как и upsert в Postgres).
type LRUCacheTTL struct {
	mu    sync.Mutex
	order *list.List
	byID  map[string]*list.Element

	limit int
	ttl   time.Duration
	now   func() time.Time
}

// NewLRUCacheTTL: capacity <= 0 приводится к 1; ttl <= 0 отключает истечение.
func NewLRUCacheTTL(capacity int, ttl time.Duration) *LRUCacheTTL {
	return &LRUCacheTTL{
		order: list.New(),
		byID:  make(map[string]*list.Element, max(capacity, 1)),
		limit: max(capacity, 1),
		ttl:   ttl,
		now:   time.Now,
	}
}

func (c *LRUCacheTTL) Get(_ context.Context, variantID string) (*domain.VariantCompliance, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.byID[variantID]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}

	s := el.Value.(*slot)
	now := c.now()
	if c.expired(s, now) {
		c.drop(el, "expired")
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}

	s.deadline = c.deadlineFrom(now)
	c.order.MoveToFront(el)
	metrics.CacheOps.WithLabelValues("hit").Inc()
	return copyVariant(s.variant), true
}

// Set: пустой variant_id игнорируется, более старая версия записи отбрасывается.
func (c *LRUCacheTTL) Set(_ context.Context, v *domain.VariantCompliance) error {
	if v == nil || v.VariantID == "" {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if el, ok := c.byID[v.VariantID]; ok {
		s := el.Value.(*slot)
		if s.variant.UpdatedAt.After(v.UpdatedAt) {
			metrics.CacheOps.WithLabelValues("stale").Inc()
			return nil
		}
		s.variant = copyVariant(v)
		s.deadline = c.deadlineFrom(now)
		c.order.MoveToFront(el)
		return nil
	}

	c.sweep(now)
	c.byID[v.VariantID] = c.order.PushFront(&slot{
		variant:  copyVariant(v),
		deadline: c.deadlineFrom(now),
	})
	for c.order.Len() > c.limit {
		c.drop(c.order.Back(), "evicted")
	}
	metrics.CacheSize.Set(float64(c.order.Len()))
	return nil
}

// WarmUp: загрузка пачки записей; при отмене ctx остаток не загружается.
func (c *LRUCacheTTL) WarmUp(ctx context.Context, variants []*domain.VariantCompliance) error {
	for _, v := range variants {
		if err := ctx.Err(); err != nil {
			return err
		}
		_ = c.Set(ctx, v)
	}
	return nil
}

func (c *LRUCacheTTL) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// sweep снимает истёкшие записи с хвоста, пока не встретит живую.
func (c *LRUCacheTTL) sweep(now time.Time) {
	for el := c.order.Back(); el != nil; el = c.order.Back() {
		if !c.expired(el.Value.(*slot), now) {
			return
		}
		c.drop(el, "expired")
	}
}

// drop удаляет элемент и учитывает причину в метриках. Вызывается под mu.
func (c *LRUCacheTTL) drop(el *list.Element, reason string) {
	s := c.order.Remove(el).(*slot)
	delete(c.byID, s.variant.VariantID)
	metrics.CacheOps.WithLabelValues(reason).Inc()
	metrics.CacheSize.Set(float64(c.order.Len()))
}

func (c *LRUCacheTTL) expired(s *slot, now time.Time) bool {
	return !s.deadline.IsZero() && now.After(s.deadline)
}

func (c *LRUCacheTTL) deadlineFrom(now time.Time) time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(c.ttl)
}

func copyVariant(v *domain.VariantCompliance) *domain.VariantCompliance {
	out := *v
	out.Tags = append([]string(nil), v.Tags...)
	return &out
}
