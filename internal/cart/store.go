package cart

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"github.com/Thomasrnd/tcg-pos-frontend/internal/domain"
	"github.com/Thomasrnd/tcg-pos-frontend/internal/storage"
)

// Storage keys, one for the serialized line items and one for the plain
// customer name. The two are persisted and loaded independently.
const (
	cartKey         = "cart"
	customerNameKey = "customerName"
)

// Store is the single source of truth for the in-progress order selection.
// Every mutation persists the full state synchronously so a kiosk restart
// reconstructs the same cart.
type Store struct {
	mu        sync.Mutex
	items     []domain.CartItem
	customer  string
	storage   storage.Store
	listeners []func()
}

// NewStore builds a store backed by st and rehydrates any previously saved
// cart and customer name. Absent or unreadable saved state yields an empty
// store, never an error.
func NewStore(ctx context.Context, st storage.Store) *Store {
	s := &Store{storage: st}
	s.rehydrate(ctx)
	return s
}

func (s *Store) rehydrate(ctx context.Context) {
	raw, err := s.storage.Get(ctx, cartKey)
	switch {
	case err == nil:
		var items []domain.CartItem
		if errU := json.Unmarshal([]byte(raw), &items); errU != nil {
			log.Printf("discarding unreadable saved cart: %v", errU)
		} else {
			s.items = items
		}
	case !errors.Is(err, storage.ErrNotFound):
		log.Printf("saved cart load error: %v", err)
	}

	name, err := s.storage.Get(ctx, customerNameKey)
	switch {
	case err == nil:
		s.customer = name
	case !errors.Is(err, storage.ErrNotFound):
		log.Printf("saved customer name load error: %v", err)
	}
}

// Subscribe registers fn to run after every committed mutation.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// AddItem merges product into the cart: an existing line for the same
// product ID gets its quantity bumped and keeps its snapshotted price,
// otherwise a new line is appended.
func (s *Store) AddItem(ctx context.Context, product domain.Product, quantity int) {
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ProductID == product.ID {
			s.items[i].Quantity += quantity
			s.commit(ctx)
			return
		}
	}
	s.items = append(s.items, domain.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		ImageURL:  product.ImageURL,
		Quantity:  quantity,
	})
	s.commit(ctx)
}

// UpdateQuantity sets the line's quantity to max(1, quantity); quantity
// cannot be driven below one here, removal goes through RemoveItem. No-op
// when the product is not in the cart.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, quantity int) {
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ProductID == productID {
			if quantity < 1 {
				quantity = 1
			}
			s.items[i].Quantity = quantity
			s.commit(ctx)
			return
		}
	}
	s.mu.Unlock()
}

// RemoveItem deletes the matching line, if present.
func (s *Store) RemoveItem(ctx context.Context, productID string) {
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.commit(ctx)
			return
		}
	}
	s.mu.Unlock()
}

// Clear empties the line items. The customer name is left alone; it is reset
// only through an explicit SetCustomerName from the entry screen.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	s.items = nil
	s.commit(ctx)
}

// SetCustomerName overwrites the customer name unconditionally. Format
// validation belongs to the entry screen, not the store.
func (s *Store) SetCustomerName(ctx context.Context, name string) {
	s.mu.Lock()
	s.customer = name
	if err := s.storage.Set(ctx, customerNameKey, name); err != nil {
		log.Printf("persist customer name error: %v", err)
	}
	listeners := s.listeners
	s.mu.Unlock()
	for _, fn := range listeners {
		fn()
	}
}

// Items returns a copy of the current line items in insertion order.
func (s *Store) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]domain.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

func (s *Store) CustomerName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.customer
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Total returns the sum of price*quantity over all lines.
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, item := range s.items {
		total += item.Subtotal()
	}
	return total
}

// commit persists the line items and fires listeners. Persistence is
// best-effort: a storage failure is logged and the in-memory state stays
// authoritative. Callers must hold s.mu; commit releases it before invoking
// listeners.
func (s *Store) commit(ctx context.Context) {
	data, err := json.Marshal(s.items)
	if err != nil {
		log.Printf("marshal cart error: %v", err)
	} else if errSet := s.storage.Set(ctx, cartKey, string(data)); errSet != nil {
		log.Printf("persist cart error: %v", errSet)
	}
	listeners := s.listeners
	s.mu.Unlock()
	for _, fn := range listeners {
		fn()
	}
}
