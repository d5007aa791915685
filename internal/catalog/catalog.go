// Package catalog caches the backend's enabled payment methods so every
// checkout page load does not hit the network.
package catalog

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/Thomasrnd/tcg-pos-frontend/internal/domain"
)

var ErrUnknownMethod = errors.New("unknown payment method")

type methodsAPI interface {
	PaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error)
}

type Catalog struct {
	api methodsAPI
	ttl time.Duration
	sfg singleflight.Group // Prevents fetch stampede on an expired cache

	mu        sync.RWMutex
	methods   []domain.PaymentMethod
	fetchedAt time.Time
}

func New(api methodsAPI, ttl time.Duration) *Catalog {
	return &Catalog{api: api, ttl: ttl}
}

// Methods returns the enabled payment methods, refreshing from the backend
// when the cached copy is older than the TTL. Concurrent refreshes collapse
// into a single backend call.
func (c *Catalog) Methods(ctx context.Context) ([]domain.PaymentMethod, error) {
	c.mu.RLock()
	if c.methods != nil && time.Since(c.fetchedAt) < c.ttl {
		methods := c.methods
		c.mu.RUnlock()
		return methods, nil
	}
	c.mu.RUnlock()

	v, err, _ := c.sfg.Do("payment-methods", func() (interface{}, error) {
		methods, err := c.api.PaymentMethods(ctx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.methods = methods
		c.fetchedAt = time.Now()
		c.mu.Unlock()
		return methods, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.PaymentMethod), nil
}

// Find looks up a method by ID, refreshing the cache as needed. Selecting a
// method the backend no longer advertises yields ErrUnknownMethod.
func (c *Catalog) Find(ctx context.Context, id string) (domain.PaymentMethod, error) {
	methods, err := c.Methods(ctx)
	if err != nil {
		return domain.PaymentMethod{}, err
	}
	for _, m := range methods {
		if m.ID == id {
			return m, nil
		}
	}
	return domain.PaymentMethod{}, ErrUnknownMethod
}

// Invalidate drops the cached copy, forcing the next read to refetch.
func (c *Catalog) Invalidate() {
	c.mu.Lock()
	c.methods = nil
	c.mu.Unlock()
}
