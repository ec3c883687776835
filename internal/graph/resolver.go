package graph

import (
	"context"
	"errors"

	"eshop-be/internal/cart"
	"eshop-be/internal/category"
	"eshop-be/internal/graph/model"
	"eshop-be/internal/order"
	"eshop-be/internal/product"
	"eshop-be/internal/productdetail"
	"eshop-be/internal/session"
	"eshop-be/internal/utils"
)

type Resolver struct {
	ProductSvc  product.Service
	CategorySvc category.Service
	DetailSvc   productdetail.Service
	CartSvc     cart.Service
	OrderSvc    order.Service
}

type queryResolver struct{ *Resolver }

type mutationResolver struct{ *Resolver }

func (r *Resolver) Query() *queryResolver { return &queryResolver{r} }

func (r *Resolver) Mutation() *mutationResolver { return &mutationResolver{r} }

var (
	errUnauthorized = errors.New("unauthorized: please login first")
	errForbidden    = errors.New("forbidden: staff only")
	errInternal     = errors.New("internal server error")
)

// clientErrors are safe to show to the caller as is.
var clientErrors = []error{
	errUnauthorized,
	errForbidden,
	category.ErrInvalidCategoryName,
	category.ErrCategoryNotFound,
	category.ErrCategoryInUse,
	product.ErrInvalidProductInput,
	product.ErrTooManyImages,
	product.ErrProductNotFound,
	productdetail.ErrInvalidDetail,
	productdetail.ErrNoDetails,
	productdetail.ErrDetailNotFound,
	cart.ErrMissingSession,
	cart.ErrCartNotFound,
	cart.ErrCartItemNotFound,
	cart.ErrProductNotFound,
	order.ErrUserNotAuthenticated,
	order.ErrInvalidOrderInput,
	order.ErrInvalidStatus,
	order.ErrNoItems,
	order.ErrNoValidItems,
	order.ErrOrderNotFound,
	order.ErrOrderItemNotFound,
	order.ErrInvalidStatusTransition,
}

// publicError hides storage failures behind a generic message.
func publicError(err error) error {
	if err == nil {
		return nil
	}
	for _, known := range clientErrors {
		if errors.Is(err, known) {
			return err
		}
	}
	var imgErr *product.ImageProcessingError
	if errors.As(err, &imgErr) {
		return err
	}
	var bulkErr *productdetail.BulkInsertError
	if errors.As(err, &bulkErr) {
		return err
	}
	return errInternal
}

func success(message string) *model.MutationResponse {
	return &model.MutationResponse{Success: true, Message: message}
}

func successWithID(message string, id int64) *model.MutationResponse {
	return &model.MutationResponse{Success: true, Message: message, ID: &id}
}

func failure(err error) *model.MutationResponse {
	return &model.MutationResponse{Success: false, Message: publicError(err).Error()}
}

func requireStaff(ctx context.Context) error {
	if _, ok := utils.GetUserIDFromContext(ctx); !ok {
		return errUnauthorized
	}
	if !utils.IsStaff(ctx) {
		return errForbidden
	}
	return nil
}

func sessionID(ctx context.Context) string {
	id, _ := session.IDFrom(ctx)
	return id
}
