package graph

import (
	"context"

	"eshop-be/internal/cart"
	"eshop-be/internal/graph/model"
	"eshop-be/internal/logger"

	"go.uber.org/zap"
)

func (r *queryResolver) Cart(ctx context.Context) (*model.Cart, error) {
	view, err := r.CartSvc.Assemble(ctx, sessionID(ctx))
	if err != nil {
		logger.FromCtx(ctx).Error("failed to assemble cart", zap.Error(err))
		return nil, publicError(err)
	}
	return cart.MapViewToGraphQL(view), nil
}

// AddToCart puts one more unit of the product into the session cart. The
// current catalog price and name are captured on first add.
func (r *mutationResolver) AddToCart(ctx context.Context, productID int64) (*model.MutationResponse, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("resolver", "AddToCart"),
		zap.Int64("product_id", productID),
	)

	sid := sessionID(ctx)
	if sid == "" {
		log.Warn("no session on request")
		return failure(cart.ErrMissingSession), nil
	}

	p, err := r.ProductSvc.GetByID(ctx, productID)
	if err != nil {
		log.Error("product lookup failed", zap.Error(err))
		return failure(err), nil
	}
	if p == nil {
		return failure(cart.ErrProductNotFound), nil
	}

	if err := r.CartSvc.AddOrIncrement(ctx, sid, p.ID, p.Price, p.Name); err != nil {
		log.Warn("failed to add to cart", zap.Error(err))
		return failure(err), nil
	}
	return successWithID("Added to cart", p.ID), nil
}

func (r *mutationResolver) RemoveFromCart(ctx context.Context, productID int64) (*model.MutationResponse, error) {
	if err := r.CartSvc.DecrementOrRemove(ctx, sessionID(ctx), productID); err != nil {
		logger.FromCtx(ctx).Warn("failed to remove from cart",
			zap.Int64("product_id", productID),
			zap.Error(err),
		)
		return failure(err), nil
	}
	return successWithID("Removed from cart", productID), nil
}
