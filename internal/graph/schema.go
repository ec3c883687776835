package graph

import (
	"eshop-be/internal/order"
	"eshop-be/internal/product"
	"eshop-be/internal/productdetail"

	"github.com/graphql-go/graphql"
)

func idArg() graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
	}
}

func productIDArg() graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"productId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
	}
}

func loadAllArg() graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"loadAll": &graphql.ArgumentConfig{Type: graphql.Boolean, DefaultValue: false},
	}
}

// NewSchema builds the executable schema over the resolver's services.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryObject(r.Query()),
		Mutation: mutationObject(r.Mutation()),
	})
}

func queryObject(q *queryResolver) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"products": &graphql.Field{
				Type: nonNull(productPageType),
				Args: graphql.FieldConfigArgument{
					"page":       &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 1},
					"categoryId": &graphql.ArgumentConfig{Type: graphql.Int},
					"searchText": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return q.Products(p.Context,
						intArg(p.Args, "page", 1),
						optionalInt64Arg(p.Args, "categoryId"),
						optionalStringArg(p.Args, "searchText"),
					)
				},
			},
			"product": &graphql.Field{
				Type: productType,
				Args: idArg(),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return q.Product(p.Context, int64Arg(p.Args, "id"))
				},
			},
			"productByName": &graphql.Field{
				Type: productType,
				Args: graphql.FieldConfigArgument{
					"name": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return q.ProductByName(p.Context, stringArg(p.Args, "name"))
				},
			},
			"productForEdit": &graphql.Field{
				Type: productEditType,
				Args: idArg(),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return q.ProductForEdit(p.Context, int64Arg(p.Args, "id"))
				},
			},
			"productDetails": &graphql.Field{
				Type: nonNull(listOf(productDetailType)),
				Args: productIDArg(),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return q.ProductDetails(p.Context, int64Arg(p.Args, "productId"))
				},
			},
			"categories": &graphql.Field{
				Type: nonNull(listOf(categoryType)),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return q.Categories(p.Context)
				},
			},
			"category": &graphql.Field{
				Type: categoryType,
				Args: idArg(),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return q.Category(p.Context, int64Arg(p.Args, "id"))
				},
			},
			"cart": &graphql.Field{
				Type: nonNull(cartType),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return q.Cart(p.Context)
				},
			},
			"checkout": &graphql.Field{
				Type: nonNull(checkoutType),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return q.Checkout(p.Context)
				},
			},
			"order": &graphql.Field{
				Type: orderType,
				Args: idArg(),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return q.Order(p.Context, int64Arg(p.Args, "id"))
				},
			},
			"myOrders": &graphql.Field{
				Type: nonNull(listOf(orderType)),
				Args: loadAllArg(),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return q.MyOrders(p.Context, boolArg(p.Args, "loadAll"))
				},
			},
			"orders": &graphql.Field{
				Type: nonNull(listOf(orderType)),
				Args: loadAllArg(),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return q.Orders(p.Context, boolArg(p.Args, "loadAll"))
				},
			},
		},
	})
}

func mutationObject(m *mutationResolver) *graphql.Object {
	response := nonNull(mutationResponseType)

	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"addToCart": &graphql.Field{
				Type: response,
				Args: productIDArg(),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return m.AddToCart(p.Context, int64Arg(p.Args, "productId"))
				},
			},
			"removeFromCart": &graphql.Field{
				Type: response,
				Args: productIDArg(),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return m.RemoveFromCart(p.Context, int64Arg(p.Args, "productId"))
				},
			},
			"placeOrder": &graphql.Field{
				Type: response,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(shippingInput)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					var form order.ShippingForm
					if err := decodeInput(p.Args["input"], &form); err != nil {
						return failure(err), nil
					}
					return m.PlaceOrder(p.Context, form)
				},
			},
			"editOrder": &graphql.Field{
				Type: response,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(editOrderInput)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					var in order.EditInput
					if err := decodeInput(p.Args["input"], &in); err != nil {
						return failure(err), nil
					}
					return m.EditOrder(p.Context, in)
				},
			},
			"deleteOrder": &graphql.Field{
				Type: response,
				Args: idArg(),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return m.DeleteOrder(p.Context, int64Arg(p.Args, "id"))
				},
			},
			"createProduct": &graphql.Field{
				Type: response,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(productInput)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					var in product.Input
					if err := decodeInput(p.Args["input"], &in); err != nil {
						return failure(err), nil
					}
					return m.CreateProduct(p.Context, in)
				},
			},
			"editProduct": &graphql.Field{
				Type: response,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(productInput)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					var in product.Input
					if err := decodeInput(p.Args["input"], &in); err != nil {
						return failure(err), nil
					}
					return m.EditProduct(p.Context, in)
				},
			},
			"deleteProduct": &graphql.Field{
				Type: response,
				Args: idArg(),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return m.DeleteProduct(p.Context, int64Arg(p.Args, "id"))
				},
			},
			"addCategory": &graphql.Field{
				Type: response,
				Args: graphql.FieldConfigArgument{
					"name": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return m.AddCategory(p.Context, stringArg(p.Args, "name"))
				},
			},
			"updateCategory": &graphql.Field{
				Type: response,
				Args: graphql.FieldConfigArgument{
					"id":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"name": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return m.UpdateCategory(p.Context, int64Arg(p.Args, "id"), stringArg(p.Args, "name"))
				},
			},
			"deleteCategory": &graphql.Field{
				Type: response,
				Args: idArg(),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return m.DeleteCategory(p.Context, int64Arg(p.Args, "id"))
				},
			},
			"addProductDetails": &graphql.Field{
				Type: response,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(listOf(productDetailInput))},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					var details []productdetail.Detail
					if err := decodeInput(p.Args["input"], &details); err != nil {
						return failure(err), nil
					}
					return m.AddProductDetails(p.Context, details)
				},
			},
			"editProductDetail": &graphql.Field{
				Type: response,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(productDetailInput)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					var d productdetail.Detail
					if err := decodeInput(p.Args["input"], &d); err != nil {
						return failure(err), nil
					}
					return m.EditProductDetail(p.Context, d)
				},
			},
			"deleteProductDetail": &graphql.Field{
				Type: response,
				Args: idArg(),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return m.DeleteProductDetail(p.Context, int64Arg(p.Args, "id"))
				},
			},
		},
	})
}
