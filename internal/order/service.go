package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"eshop-be/internal/cart"
	"eshop-be/internal/logger"
	"eshop-be/internal/metrics"
	"eshop-be/internal/utils"
	"eshop-be/internal/validation"

	"go.uber.org/zap"
)

// CartReader is the part of the session cart an order is built from.
type CartReader interface {
	ReadAll(ctx context.Context, sessionID string) ([]cart.Item, error)
	Clear(ctx context.Context, sessionID string) error
}

// Preview is the checkout summary shown before an order is placed.
type Preview struct {
	Items []cart.Item
	Total int64
}

type Service interface {
	Checkout(ctx context.Context, sessionID string) (*Preview, error)
	PlaceOrder(ctx context.Context, userID, sessionID string, form ShippingForm) (int64, error)
	EditOrder(ctx context.Context, in EditInput) error
	DeleteOrder(ctx context.Context, id int64) error
	GetOrder(ctx context.Context, id int64, includeItems bool) (*Order, error)
	ListOrdersForUser(ctx context.Context, userID string, loadAll bool) ([]*Order, error)
	ListOrders(ctx context.Context, loadAll bool) ([]*Order, error)
}

type service struct {
	repo  Repository
	carts CartReader
	opts  Options
	now   func() time.Time
}

func NewService(repo Repository, carts CartReader, opts Options) Service {
	return &service{
		repo:  repo,
		carts: carts,
		opts:  opts,
		now:   time.Now,
	}
}

func (s *service) Checkout(ctx context.Context, sessionID string) (*Preview, error) {
	items, err := s.carts.ReadAll(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &Preview{Items: items, Total: cart.ItemsTotal(items)}, nil
}

// PlaceOrder turns the session cart into an Accepted order and empties the
// cart. An empty cart is reported before the form is looked at.
func (s *service) PlaceOrder(ctx context.Context, userID, sessionID string, form ShippingForm) (int64, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "PlaceOrder"),
	)

	items, err := s.carts.ReadAll(ctx, sessionID)
	if err != nil {
		log.Error("failed to read cart", zap.Error(err))
		return 0, err
	}
	if len(items) == 0 {
		return 0, ErrNoItems
	}

	form.Address = strings.TrimSpace(form.Address)
	form.PhoneNumber = strings.TrimSpace(form.PhoneNumber)
	form.Comment = utils.NilIfBlank(utils.PtrString(form.Comment))
	if err := validation.Struct(form, ErrInvalidOrderInput); err != nil {
		log.Warn("invalid shipping form", zap.Error(err))
		return 0, err
	}
	if userID == "" {
		return 0, ErrUserNotAuthenticated
	}

	o := Order{
		UserID:      userID,
		CreatedAt:   s.now().UTC(),
		Status:      StatusAccepted,
		Address:     form.Address,
		PhoneNumber: form.PhoneNumber,
		Comment:     form.Comment,
		Items:       make([]Item, 0, len(items)),
	}
	for _, it := range items {
		o.Items = append(o.Items, Item{
			ProductID:    it.ProductID,
			ProductName:  it.ProductName,
			Quantity:     it.Quantity,
			AmountForOne: it.AmountForOne,
		})
	}

	if err := validation.Var(o.Items, "dive", ErrInvalidOrderInput); err != nil {
		log.Warn("cart line out of range", zap.Error(err))
		return 0, err
	}

	id, err := s.repo.Create(ctx, o)
	if err != nil {
		log.Error("failed to create order", zap.Error(err))
		return 0, err
	}
	metrics.OrdersPlaced.Inc()

	// The order is already committed; a stale cart is only an annoyance.
	if err := s.carts.Clear(ctx, sessionID); err != nil {
		log.Warn("failed to clear cart after order", zap.Int64("order_id", id), zap.Error(err))
	}

	log.Info("order placed",
		zap.Int64("order_id", id),
		zap.Int64("total", o.TotalPrice()),
	)
	return id, nil
}

// EditOrder applies a staff edit. Items with quantity 0 are removed; an
// edit that would leave no items is rejected before anything is loaded.
func (s *service) EditOrder(ctx context.Context, in EditInput) (err error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "EditOrder"),
		zap.Int64("order_id", in.ID),
	)
	defer func() {
		metrics.OrderChanges.WithLabelValues("edit", metrics.Result(err)).Inc()
	}()

	surviving := make([]Item, 0, len(in.Items))
	for _, it := range in.Items {
		if it.Quantity > 0 {
			surviving = append(surviving, it)
		}
	}
	if len(surviving) == 0 {
		return ErrNoValidItems
	}

	in.Address = strings.TrimSpace(in.Address)
	in.PhoneNumber = strings.TrimSpace(in.PhoneNumber)
	in.Comment = utils.NilIfBlank(utils.PtrString(in.Comment))
	if err := validation.Struct(in, ErrInvalidOrderInput); err != nil {
		log.Warn("invalid order edit", zap.Error(err))
		return err
	}
	if !in.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, in.Status)
	}

	current, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		return err
	}
	if current == nil {
		return ErrOrderNotFound
	}
	if s.opts.StrictTransitions && !current.Status.CanTransitionTo(in.Status) {
		log.Warn("status change rejected",
			zap.String("from", string(current.Status)),
			zap.String("to", string(in.Status)),
		)
		return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, current.Status, in.Status)
	}

	updated := *current
	updated.Status = in.Status
	updated.Address = in.Address
	updated.PhoneNumber = in.PhoneNumber
	updated.Comment = in.Comment
	updated.Items = surviving

	if err := s.repo.Update(ctx, updated); err != nil {
		log.Error("failed to update order", zap.Error(err))
		return err
	}
	return nil
}

func (s *service) DeleteOrder(ctx context.Context, id int64) (err error) {
	defer func() {
		metrics.OrderChanges.WithLabelValues("delete", metrics.Result(err)).Inc()
	}()
	return s.repo.Delete(ctx, id)
}

// GetOrder returns nil when no order has the id.
func (s *service) GetOrder(ctx context.Context, id int64, includeItems bool) (*Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil || o == nil {
		return nil, err
	}
	if includeItems {
		if err := s.attachItems(ctx, []*Order{o}); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func (s *service) ListOrdersForUser(ctx context.Context, userID string, loadAll bool) ([]*Order, error) {
	if userID == "" {
		return nil, ErrUserNotAuthenticated
	}
	return s.list(ctx, &userID, loadAll)
}

func (s *service) ListOrders(ctx context.Context, loadAll bool) ([]*Order, error) {
	return s.list(ctx, nil, loadAll)
}

func (s *service) list(ctx context.Context, userID *string, loadAll bool) ([]*Order, error) {
	limit := RecentLimit
	if loadAll {
		limit = 0
	}

	orders, err := s.repo.List(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	if err := s.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *service) attachItems(ctx context.Context, orders []*Order) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]int64, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}

	byOrder, err := s.repo.GetItemsByOrderIDs(ctx, ids)
	if err != nil {
		return err
	}
	for _, o := range orders {
		o.Items = byOrder[o.ID]
	}
	return nil
}
