package cart

import (
	"context"

	"eshop-be/internal/logger"
	"eshop-be/internal/metrics"
	"eshop-be/internal/product"

	"go.uber.org/zap"
)

// ProductLookup is the slice of the catalog the cart needs.
type ProductLookup interface {
	FilteredByIDs(ctx context.Context, ids []int64) ([]*product.Product, error)
}

// Service is the session cart. Carts live only in the Store; the catalog is
// consulted when the cart is shown.
type Service interface {
	AddOrIncrement(ctx context.Context, sessionID string, productID, unitPrice int64, productName string) error
	DecrementOrRemove(ctx context.Context, sessionID string, productID int64) error
	ReadAll(ctx context.Context, sessionID string) ([]Item, error)
	Clear(ctx context.Context, sessionID string) error
	Assemble(ctx context.Context, sessionID string) (*View, error)
}

type service struct {
	store    Store
	products ProductLookup
}

func NewService(store Store, products ProductLookup) Service {
	return &service{store: store, products: products}
}

func indexOf(items []Item, productID int64) int {
	for i, it := range items {
		if it.ProductID == productID {
			return i
		}
	}
	return -1
}

// AddOrIncrement bumps the quantity of productID by one. A product new to
// the cart is recorded with the given unit price and name; later adds keep
// the originally captured values.
func (s *service) AddOrIncrement(ctx context.Context, sessionID string, productID, unitPrice int64, productName string) error {
	if sessionID == "" {
		return ErrMissingSession
	}
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AddOrIncrement"),
		zap.Int64("product_id", productID),
	)

	items, _, err := s.store.Load(ctx, sessionID)
	if err != nil {
		log.Error("failed to load cart", zap.Error(err))
		return err
	}

	i := indexOf(items, productID)
	if i < 0 {
		items = append(items, Item{
			ProductID:    productID,
			ProductName:  productName,
			Quantity:     0,
			AmountForOne: unitPrice,
		})
		i = len(items) - 1
	}
	items[i].Quantity++

	if err := s.store.Save(ctx, sessionID, items); err != nil {
		log.Error("failed to save cart", zap.Error(err))
		return err
	}

	metrics.CartMutations.WithLabelValues("add").Inc()
	log.Info("cart item added", zap.Int("quantity", items[i].Quantity))
	return nil
}

func (s *service) DecrementOrRemove(ctx context.Context, sessionID string, productID int64) error {
	if sessionID == "" {
		return ErrMissingSession
	}
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "DecrementOrRemove"),
		zap.Int64("product_id", productID),
	)

	items, found, err := s.store.Load(ctx, sessionID)
	if err != nil {
		log.Error("failed to load cart", zap.Error(err))
		return err
	}
	if !found {
		return ErrCartNotFound
	}

	i := indexOf(items, productID)
	if i < 0 {
		return ErrCartItemNotFound
	}

	items[i].Quantity--
	if items[i].Quantity <= 0 {
		items = append(items[:i], items[i+1:]...)
	}

	if err := s.store.Save(ctx, sessionID, items); err != nil {
		log.Error("failed to save cart", zap.Error(err))
		return err
	}

	metrics.CartMutations.WithLabelValues("remove").Inc()
	return nil
}

// ReadAll returns the lines with a positive quantity; an absent cart reads
// as empty.
func (s *service) ReadAll(ctx context.Context, sessionID string) ([]Item, error) {
	if sessionID == "" {
		return []Item{}, nil
	}

	items, _, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it.Quantity > 0 {
			out = append(out, it)
		}
	}
	return out, nil
}

func (s *service) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return err
	}
	metrics.CartMutations.WithLabelValues("clear").Inc()
	return nil
}

// Assemble joins the cart with the catalog. Lines whose product no longer
// exists are dropped; prices come from the catalog, not the cart.
func (s *service) Assemble(ctx context.Context, sessionID string) (*View, error) {
	items, err := s.ReadAll(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	view := &View{Rows: []Row{}}
	if len(items) == 0 {
		return view, nil
	}

	ids := make([]int64, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}

	products, err := s.products.FilteredByIDs(ctx, ids)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to load cart products",
			zap.String("layer", "service"),
			zap.String("method", "Assemble"),
			zap.Error(err),
		)
		return nil, err
	}

	byID := make(map[int64]*product.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	for _, it := range items {
		p, ok := byID[it.ProductID]
		if !ok {
			continue
		}
		row := Row{
			ProductID:        p.ID,
			ProductName:      p.Name,
			ShortDescription: p.ShortDescription,
			Quantity:         it.Quantity,
			Price:            p.Price,
			TotalPrice:       p.Price * int64(it.Quantity),
		}
		view.Rows = append(view.Rows, row)
		view.Total += row.TotalPrice
	}

	return view, nil
}
