package graph

import (
	"context"

	"eshop-be/internal/category"
	"eshop-be/internal/graph/model"
	"eshop-be/internal/logger"
	"eshop-be/internal/product"
	"eshop-be/internal/productdetail"

	"go.uber.org/zap"
)

// Products lists one page of the catalog. A search text takes precedence
// over a category filter.
func (r *queryResolver) Products(ctx context.Context, page int, categoryID *int64, searchText *string) (*model.ProductPage, error) {
	var (
		p   *product.Page
		err error
	)
	switch {
	case searchText != nil:
		p, err = r.ProductSvc.Search(ctx, *searchText, page)
	case categoryID != nil:
		p, err = r.ProductSvc.GetByCategory(ctx, *categoryID, page)
	default:
		p, err = r.ProductSvc.GetAll(ctx, page)
	}
	if err != nil {
		logger.FromCtx(ctx).Error("products query failed", zap.Int("page", page), zap.Error(err))
		return nil, publicError(err)
	}
	return product.MapPageToGraphQL(p), nil
}

func (r *queryResolver) Product(ctx context.Context, id int64) (*model.Product, error) {
	s, err := r.ProductSvc.GetShowByID(ctx, id)
	if err != nil {
		return nil, publicError(err)
	}
	return product.MapShowToGraphQL(s), nil
}

// ProductByName looks a product up by its exact name.
func (r *queryResolver) ProductByName(ctx context.Context, name string) (*model.Product, error) {
	p, err := r.ProductSvc.GetByName(ctx, name)
	if err != nil {
		return nil, publicError(err)
	}
	return product.MapProductToGraphQL(p), nil
}

func (r *queryResolver) ProductForEdit(ctx context.Context, id int64) (*model.ProductEdit, error) {
	if err := requireStaff(ctx); err != nil {
		return nil, err
	}
	e, err := r.ProductSvc.GetEditByID(ctx, id)
	if err != nil {
		return nil, publicError(err)
	}
	return product.MapEditToGraphQL(e), nil
}

func (r *queryResolver) ProductDetails(ctx context.Context, productID int64) ([]*model.ProductDetail, error) {
	list, err := r.DetailSvc.ListByProduct(ctx, productID)
	if err != nil {
		return nil, publicError(err)
	}
	return productdetail.MapDetailsToGraphQL(list), nil
}

func (r *queryResolver) Categories(ctx context.Context) ([]*model.Category, error) {
	list, err := r.CategorySvc.GetAll(ctx)
	if err != nil {
		return nil, publicError(err)
	}
	return category.MapCategoriesToGraphQL(list), nil
}

func (r *queryResolver) Category(ctx context.Context, id int64) (*model.Category, error) {
	c, err := r.CategorySvc.FindByID(ctx, id)
	if err != nil {
		return nil, publicError(err)
	}
	return category.MapCategoryToGraphQL(c), nil
}

func (r *mutationResolver) CreateProduct(ctx context.Context, input product.Input) (*model.MutationResponse, error) {
	log := logger.FromCtx(ctx).With(zap.String("resolver", "CreateProduct"))

	if err := requireStaff(ctx); err != nil {
		log.Warn("rejected", zap.Error(err))
		return failure(err), nil
	}

	p, err := r.ProductSvc.Create(ctx, input)
	if err != nil {
		log.Warn("failed to create product", zap.Error(err))
		return failure(err), nil
	}

	log.Info("product created", zap.Int64("product_id", p.ID))
	return successWithID("Product created", p.ID), nil
}

func (r *mutationResolver) EditProduct(ctx context.Context, input product.Input) (*model.MutationResponse, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("resolver", "EditProduct"),
		zap.Int64("product_id", input.ID),
	)

	if err := requireStaff(ctx); err != nil {
		log.Warn("rejected", zap.Error(err))
		return failure(err), nil
	}
	if err := r.ProductSvc.Edit(ctx, input); err != nil {
		log.Warn("failed to edit product", zap.Error(err))
		return failure(err), nil
	}
	return successWithID("Product updated", input.ID), nil
}

func (r *mutationResolver) DeleteProduct(ctx context.Context, id int64) (*model.MutationResponse, error) {
	if err := requireStaff(ctx); err != nil {
		return failure(err), nil
	}
	if err := r.ProductSvc.Delete(ctx, id); err != nil {
		logger.FromCtx(ctx).Warn("failed to delete product", zap.Int64("product_id", id), zap.Error(err))
		return failure(err), nil
	}
	return success("Product deleted"), nil
}

func (r *mutationResolver) AddCategory(ctx context.Context, name string) (*model.MutationResponse, error) {
	if err := requireStaff(ctx); err != nil {
		return failure(err), nil
	}
	c, err := r.CategorySvc.Add(ctx, name)
	if err != nil {
		return failure(err), nil
	}
	return successWithID("Category added", c.ID), nil
}

func (r *mutationResolver) UpdateCategory(ctx context.Context, id int64, name string) (*model.MutationResponse, error) {
	if err := requireStaff(ctx); err != nil {
		return failure(err), nil
	}
	if err := r.CategorySvc.Update(ctx, category.Category{ID: id, Name: name}); err != nil {
		return failure(err), nil
	}
	return successWithID("Category updated", id), nil
}

func (r *mutationResolver) DeleteCategory(ctx context.Context, id int64) (*model.MutationResponse, error) {
	if err := requireStaff(ctx); err != nil {
		return failure(err), nil
	}
	if err := r.CategorySvc.Delete(ctx, id); err != nil {
		return failure(err), nil
	}
	return success("Category deleted"), nil
}

func (r *mutationResolver) AddProductDetails(ctx context.Context, details []productdetail.Detail) (*model.MutationResponse, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("resolver", "AddProductDetails"),
		zap.Int("count", len(details)),
	)

	if err := requireStaff(ctx); err != nil {
		return failure(err), nil
	}
	if _, err := r.DetailSvc.AddBulk(ctx, details); err != nil {
		log.Warn("failed to add product details", zap.Error(err))
		return failure(err), nil
	}
	return success("Product details added"), nil
}

func (r *mutationResolver) EditProductDetail(ctx context.Context, d productdetail.Detail) (*model.MutationResponse, error) {
	if err := requireStaff(ctx); err != nil {
		return failure(err), nil
	}
	if err := r.DetailSvc.Edit(ctx, d); err != nil {
		return failure(err), nil
	}
	return successWithID("Product detail updated", d.ID), nil
}

func (r *mutationResolver) DeleteProductDetail(ctx context.Context, id int64) (*model.MutationResponse, error) {
	if err := requireStaff(ctx); err != nil {
		return failure(err), nil
	}
	if err := r.DetailSvc.Delete(ctx, id); err != nil {
		return failure(err), nil
	}
	return success("Product detail deleted"), nil
}
