package graph

import (
	"context"

	"eshop-be/internal/graph/model"
	"eshop-be/internal/logger"
	"eshop-be/internal/order"
	"eshop-be/internal/utils"

	"go.uber.org/zap"
)

func (r *queryResolver) Checkout(ctx context.Context) (*model.Checkout, error) {
	p, err := r.OrderSvc.Checkout(ctx, sessionID(ctx))
	if err != nil {
		return nil, publicError(err)
	}
	return order.MapPreviewToGraphQL(p), nil
}

// Order is visible to its owner and to staff.
func (r *queryResolver) Order(ctx context.Context, id int64) (*model.Order, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errUnauthorized
	}

	o, err := r.OrderSvc.GetOrder(ctx, id, true)
	if err != nil {
		return nil, publicError(err)
	}
	if o == nil {
		return nil, nil
	}
	if o.UserID != userID && !utils.IsStaff(ctx) {
		logger.FromCtx(ctx).Warn("order access denied", zap.Int64("order_id", id))
		return nil, errForbidden
	}
	return order.MapOrderToGraphQL(o), nil
}

func (r *queryResolver) MyOrders(ctx context.Context, loadAll bool) ([]*model.Order, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errUnauthorized
	}
	list, err := r.OrderSvc.ListOrdersForUser(ctx, userID, loadAll)
	if err != nil {
		return nil, publicError(err)
	}
	return order.MapOrdersToGraphQL(list), nil
}

func (r *queryResolver) Orders(ctx context.Context, loadAll bool) ([]*model.Order, error) {
	if err := requireStaff(ctx); err != nil {
		return nil, err
	}
	list, err := r.OrderSvc.ListOrders(ctx, loadAll)
	if err != nil {
		return nil, publicError(err)
	}
	return order.MapOrdersToGraphQL(list), nil
}

func (r *mutationResolver) PlaceOrder(ctx context.Context, form order.ShippingForm) (*model.MutationResponse, error) {
	log := logger.FromCtx(ctx).With(zap.String("resolver", "PlaceOrder"))

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Warn("unauthorized access (no user ID in context)")
		return failure(errUnauthorized), nil
	}

	id, err := r.OrderSvc.PlaceOrder(ctx, userID, sessionID(ctx), form)
	if err != nil {
		log.Warn("failed to place order", zap.Error(err))
		return failure(err), nil
	}
	return successWithID("Order placed", id), nil
}

func (r *mutationResolver) EditOrder(ctx context.Context, input order.EditInput) (*model.MutationResponse, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("resolver", "EditOrder"),
		zap.Int64("order_id", input.ID),
	)

	if err := requireStaff(ctx); err != nil {
		log.Warn("rejected", zap.Error(err))
		return failure(err), nil
	}
	if err := r.OrderSvc.EditOrder(ctx, input); err != nil {
		log.Warn("failed to edit order", zap.Error(err))
		return failure(err), nil
	}
	return successWithID("Order updated", input.ID), nil
}

func (r *mutationResolver) DeleteOrder(ctx context.Context, id int64) (*model.MutationResponse, error) {
	if err := requireStaff(ctx); err != nil {
		return failure(err), nil
	}
	if err := r.OrderSvc.DeleteOrder(ctx, id); err != nil {
		return failure(err), nil
	}
	return success("Order deleted"), nil
}
