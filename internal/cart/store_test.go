package cart

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Thomasrnd/tcg-pos-frontend/internal/domain"
	"github.com/Thomasrnd/tcg-pos-frontend/internal/storage"
)

// brokenStore fails every operation, to prove cart mutations survive a dead
// persistence layer.
type brokenStore struct{}

func (brokenStore) Get(context.Context, string) (string, error) {
	return "", fmt.Errorf("storage down")
}

func (brokenStore) Set(context.Context, string, string) error {
	return fmt.Errorf("storage down")
}

func (brokenStore) Delete(context.Context, string) error {
	return fmt.Errorf("storage down")
}

var (
	charizard = domain.Product{ID: "P1", Name: "Charizard ex", Price: 850000, ImageURL: "/uploads/charizard.jpg"}
	pikachu   = domain.Product{ID: "P2", Name: "Pikachu promo", Price: 50000}
)

func TestAddItem_MergesByProductID(t *testing.T) {
	sut := NewStore(context.Background(), storage.NewMemoryStore())
	ctx := context.Background()

	sut.AddItem(ctx, charizard, 1)
	sut.AddItem(ctx, pikachu, 2)
	sut.AddItem(ctx, charizard, 3)

	items := sut.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "P1", items[0].ProductID)
	assert.Equal(t, 4, items[0].Quantity)
	assert.Equal(t, "P2", items[1].ProductID)
	assert.Equal(t, 2, items[1].Quantity)
}

func TestAddItem_ReAddKeepsSnapshottedPrice(t *testing.T) {
	sut := NewStore(context.Background(), storage.NewMemoryStore())
	ctx := context.Background()

	sut.AddItem(ctx, charizard, 1)

	repriced := charizard
	repriced.Price = 999000
	sut.AddItem(ctx, repriced, 1)

	items := sut.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 850000.0, items[0].Price)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestUpdateQuantity_Floor(t *testing.T) {
	sut := NewStore(context.Background(), storage.NewMemoryStore())
	ctx := context.Background()
	sut.AddItem(ctx, charizard, 5)

	sut.UpdateQuantity(ctx, "P1", 3)
	assert.Equal(t, 3, sut.Items()[0].Quantity)

	sut.UpdateQuantity(ctx, "P1", 0)
	assert.Equal(t, 1, sut.Items()[0].Quantity)

	sut.UpdateQuantity(ctx, "P1", -5)
	assert.Equal(t, 1, sut.Items()[0].Quantity)
}

func TestUpdateQuantity_UnknownProductIsNoop(t *testing.T) {
	sut := NewStore(context.Background(), storage.NewMemoryStore())
	ctx := context.Background()
	sut.AddItem(ctx, charizard, 2)

	sut.UpdateQuantity(ctx, "nope", 7)

	items := sut.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestRemoveItem(t *testing.T) {
	sut := NewStore(context.Background(), storage.NewMemoryStore())
	ctx := context.Background()
	sut.AddItem(ctx, charizard, 1)
	sut.AddItem(ctx, pikachu, 1)

	sut.RemoveItem(ctx, "P1")
	items := sut.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "P2", items[0].ProductID)

	// Removing an absent product changes nothing
	sut.RemoveItem(ctx, "P1")
	assert.Len(t, sut.Items(), 1)
}

func TestTotal(t *testing.T) {
	sut := NewStore(context.Background(), storage.NewMemoryStore())
	ctx := context.Background()

	assert.Equal(t, 0.0, sut.Total())

	sut.AddItem(ctx, charizard, 2) // 1,700,000
	sut.AddItem(ctx, pikachu, 3)   // 150,000
	assert.Equal(t, 1850000.0, sut.Total())

	sut.RemoveItem(ctx, "P2")
	assert.Equal(t, 1700000.0, sut.Total())

	sut.Clear(ctx)
	assert.Equal(t, 0.0, sut.Total())
}

func TestClear_KeepsCustomerName(t *testing.T) {
	sut := NewStore(context.Background(), storage.NewMemoryStore())
	ctx := context.Background()
	sut.SetCustomerName(ctx, "Alice")
	sut.AddItem(ctx, charizard, 1)

	sut.Clear(ctx)

	assert.Empty(t, sut.Items())
	assert.Equal(t, "Alice", sut.CustomerName())
}

func TestPersistence_RoundTrip(t *testing.T) {
	st := storage.NewMemoryStore()
	ctx := context.Background()

	first := NewStore(ctx, st)
	first.SetCustomerName(ctx, "Budi")
	first.AddItem(ctx, charizard, 2)
	first.AddItem(ctx, pikachu, 1)
	first.UpdateQuantity(ctx, "P2", 4)

	// Simulate a kiosk restart: fresh store over the same storage.
	second := NewStore(ctx, st)
	assert.Equal(t, "Budi", second.CustomerName())
	assert.Equal(t, first.Items(), second.Items())
	assert.Equal(t, first.Total(), second.Total())
}

func TestRehydrate_CorruptCartYieldsEmptyState(t *testing.T) {
	st := storage.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, st.Set(ctx, "cart", "{not json"))

	sut := NewStore(ctx, st)
	assert.Empty(t, sut.Items())
	assert.Equal(t, 0.0, sut.Total())
}

func TestRehydrate_StorageErrorYieldsEmptyState(t *testing.T) {
	sut := NewStore(context.Background(), brokenStore{})
	assert.Empty(t, sut.Items())
	assert.Empty(t, sut.CustomerName())
}

func TestMutations_SurviveBrokenStorage(t *testing.T) {
	sut := NewStore(context.Background(), brokenStore{})
	ctx := context.Background()

	sut.AddItem(ctx, charizard, 1)
	sut.SetCustomerName(ctx, "Citra")

	assert.Len(t, sut.Items(), 1)
	assert.Equal(t, "Citra", sut.CustomerName())
}

func TestSubscribe_NotifiedOnEveryMutation(t *testing.T) {
	sut := NewStore(context.Background(), storage.NewMemoryStore())
	ctx := context.Background()

	var mu sync.Mutex
	calls := 0
	sut.Subscribe(func() {
		mu.Lock()
		calls++
		mu.Unlock()
	})

	sut.AddItem(ctx, charizard, 1)
	sut.UpdateQuantity(ctx, "P1", 2)
	sut.SetCustomerName(ctx, "Dewi")
	sut.RemoveItem(ctx, "P1")
	sut.Clear(ctx)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 5, calls)
}
