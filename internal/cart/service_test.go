package cart

import (
	"context"
	"errors"
	"testing"
	"time"

	"eshop-be/internal/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductLookup is a mock for the catalog lookup
type MockProductLookup struct {
	mock.Mock
}

func (m *MockProductLookup) FilteredByIDs(ctx context.Context, ids []int64) ([]*product.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

// failingStore lets tests inject store errors.
type failingStore struct {
	loadErr, saveErr, deleteErr error
}

func (f *failingStore) Load(context.Context, string) ([]Item, bool, error) {
	return nil, false, f.loadErr
}
func (f *failingStore) Save(context.Context, string, []Item) error { return f.saveErr }
func (f *failingStore) Delete(context.Context, string) error       { return f.deleteErr }

func newTestService() (Service, *MemoryStore, *MockProductLookup) {
	store := NewMemoryStore(30 * time.Minute)
	products := new(MockProductLookup)
	return NewService(store, products), store, products
}

func TestService_AddOrIncrement(t *testing.T) {
	ctx := context.Background()

	t.Run("TwiceOnEmptyCart", func(t *testing.T) {
		svc, _, _ := newTestService()

		require.NoError(t, svc.AddOrIncrement(ctx, "s1", 1, 100, "Phone"))
		require.NoError(t, svc.AddOrIncrement(ctx, "s1", 1, 100, "Phone"))

		items, err := svc.ReadAll(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, []Item{{ProductID: 1, ProductName: "Phone", Quantity: 2, AmountForOne: 100}}, items)
	})

	t.Run("KeepsFirstCapturedPrice", func(t *testing.T) {
		svc, _, _ := newTestService()

		require.NoError(t, svc.AddOrIncrement(ctx, "s1", 1, 100, "Phone"))
		require.NoError(t, svc.AddOrIncrement(ctx, "s1", 1, 150, "Phone v2"))

		items, _ := svc.ReadAll(ctx, "s1")
		assert.Equal(t, int64(100), items[0].AmountForOne)
		assert.Equal(t, "Phone", items[0].ProductName)
	})

	t.Run("SeparateLinesPerProduct", func(t *testing.T) {
		svc, _, _ := newTestService()

		require.NoError(t, svc.AddOrIncrement(ctx, "s1", 1, 100, "Phone"))
		require.NoError(t, svc.AddOrIncrement(ctx, "s1", 2, 10, "Case"))

		items, _ := svc.ReadAll(ctx, "s1")
		assert.Len(t, items, 2)
	})

	t.Run("MissingSession", func(t *testing.T) {
		svc, _, _ := newTestService()
		assert.ErrorIs(t, svc.AddOrIncrement(ctx, "", 1, 100, "Phone"), ErrMissingSession)
	})

	t.Run("StoreErrors", func(t *testing.T) {
		svc := NewService(&failingStore{loadErr: errors.New("load")}, nil)
		assert.EqualError(t, svc.AddOrIncrement(ctx, "s1", 1, 1, "x"), "load")

		svc = NewService(&failingStore{saveErr: errors.New("save")}, nil)
		assert.EqualError(t, svc.AddOrIncrement(ctx, "s1", 1, 1, "x"), "save")
	})
}

func TestService_DecrementOrRemove(t *testing.T) {
	ctx := context.Background()

	t.Run("AddThenRemoveEmptiesCart", func(t *testing.T) {
		svc, store, _ := newTestService()

		require.NoError(t, svc.AddOrIncrement(ctx, "s1", 1, 100, "Phone"))
		require.NoError(t, svc.DecrementOrRemove(ctx, "s1", 1))

		items, err := svc.ReadAll(ctx, "s1")
		require.NoError(t, err)
		assert.Empty(t, items)

		stored, found, _ := store.Load(ctx, "s1")
		assert.True(t, found)
		assert.Empty(t, stored)
	})

	t.Run("Decrements", func(t *testing.T) {
		svc, _, _ := newTestService()

		require.NoError(t, svc.AddOrIncrement(ctx, "s1", 1, 100, "Phone"))
		require.NoError(t, svc.AddOrIncrement(ctx, "s1", 1, 100, "Phone"))
		require.NoError(t, svc.AddOrIncrement(ctx, "s1", 2, 10, "Case"))
		require.NoError(t, svc.DecrementOrRemove(ctx, "s1", 1))

		items, _ := svc.ReadAll(ctx, "s1")
		require.Len(t, items, 2)
		assert.Equal(t, 1, items[0].Quantity)
		assert.Equal(t, int64(2), items[1].ProductID)
	})

	t.Run("NoCart", func(t *testing.T) {
		svc, _, _ := newTestService()
		assert.ErrorIs(t, svc.DecrementOrRemove(ctx, "s1", 1), ErrCartNotFound)
	})

	t.Run("ProductNotInCart", func(t *testing.T) {
		svc, _, _ := newTestService()
		require.NoError(t, svc.AddOrIncrement(ctx, "s1", 1, 100, "Phone"))

		assert.ErrorIs(t, svc.DecrementOrRemove(ctx, "s1", 2), ErrCartItemNotFound)
	})
}

func TestService_ReadAllAndClear(t *testing.T) {
	ctx := context.Background()

	t.Run("FiltersNonPositive", func(t *testing.T) {
		svc, store, _ := newTestService()
		require.NoError(t, store.Save(ctx, "s1", []Item{
			{ProductID: 1, Quantity: 0},
			{ProductID: 2, Quantity: 3},
			{ProductID: 3, Quantity: -1},
		}))

		items, err := svc.ReadAll(ctx, "s1")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, int64(2), items[0].ProductID)
	})

	t.Run("AbsentIsEmpty", func(t *testing.T) {
		svc, _, _ := newTestService()

		items, err := svc.ReadAll(ctx, "nobody")
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("Clear", func(t *testing.T) {
		svc, store, _ := newTestService()
		require.NoError(t, svc.AddOrIncrement(ctx, "s1", 1, 100, "Phone"))

		require.NoError(t, svc.Clear(ctx, "s1"))

		_, found, _ := store.Load(ctx, "s1")
		assert.False(t, found)
	})

	t.Run("ClearError", func(t *testing.T) {
		svc := NewService(&failingStore{deleteErr: errors.New("del")}, nil)
		assert.EqualError(t, svc.Clear(ctx, "s1"), "del")
	})
}

func TestService_Assemble(t *testing.T) {
	ctx := context.Background()

	t.Run("UsesCatalogPriceAndDropsMissing", func(t *testing.T) {
		svc, store, products := newTestService()
		require.NoError(t, store.Save(ctx, "s1", []Item{
			{ProductID: 5, ProductName: "Phone", Quantity: 3, AmountForOne: 100},
			{ProductID: 6, ProductName: "Gone", Quantity: 1, AmountForOne: 50},
		}))

		products.On("FilteredByIDs", ctx, []int64{5, 6}).Return([]*product.Product{
			{ID: 5, Name: "Phone", ShortDescription: "Good phone", Price: 120},
		}, nil)

		view, err := svc.Assemble(ctx, "s1")
		require.NoError(t, err)
		require.Len(t, view.Rows, 1)
		assert.Equal(t, Row{
			ProductID:        5,
			ProductName:      "Phone",
			ShortDescription: "Good phone",
			Quantity:         3,
			Price:            120,
			TotalPrice:       360,
		}, view.Rows[0])
		assert.Equal(t, int64(360), view.Total)
	})

	t.Run("EmptyCartSkipsCatalog", func(t *testing.T) {
		svc, _, products := newTestService()

		view, err := svc.Assemble(ctx, "s1")
		require.NoError(t, err)
		assert.Empty(t, view.Rows)
		products.AssertNotCalled(t, "FilteredByIDs", mock.Anything, mock.Anything)
	})

	t.Run("CatalogError", func(t *testing.T) {
		svc, store, products := newTestService()
		require.NoError(t, store.Save(ctx, "s1", []Item{{ProductID: 5, Quantity: 1}}))
		products.On("FilteredByIDs", ctx, []int64{5}).Return(nil, errors.New("db error"))

		_, err := svc.Assemble(ctx, "s1")
		assert.Error(t, err)
	})
}

func TestItemsTotal(t *testing.T) {
	assert.Equal(t, int64(0), ItemsTotal(nil))
	assert.Equal(t, int64(2*100+3*10), ItemsTotal([]Item{
		{Quantity: 2, AmountForOne: 100},
		{Quantity: 3, AmountForOne: 10},
	}))
}

func TestMapViewToGraphQL(t *testing.T) {
	out := MapViewToGraphQL(&View{Rows: []Row{{ProductID: 1, Quantity: 2, Price: 5, TotalPrice: 10}}, Total: 10})
	require.Len(t, out.Items, 1)
	assert.Equal(t, int64(10), out.Total)

	items := MapItemsToGraphQL([]Item{{ProductID: 1, Quantity: 2, AmountForOne: 7}})
	assert.Equal(t, int64(14), items[0].TotalPrice)
}
