package graph

import (
	"eshop-be/internal/graph/model"
	"eshop-be/internal/order"

	"github.com/graphql-go/graphql"
)

func nonNull(t graphql.Output) graphql.Output { return graphql.NewNonNull(t) }

func listOf(t graphql.Type) *graphql.List { return graphql.NewList(graphql.NewNonNull(t)) }

var mutationResponseType = graphql.NewObject(graphql.ObjectConfig{
	Name: "MutationResponse",
	Fields: graphql.Fields{
		"success": &graphql.Field{Type: nonNull(graphql.Boolean)},
		"message": &graphql.Field{Type: nonNull(graphql.String)},
		"id": &graphql.Field{
			Type: graphql.Int,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				if res, ok := p.Source.(*model.MutationResponse); ok && res.ID != nil {
					return *res.ID, nil
				}
				return nil, nil
			},
		},
	},
})

var categoryType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Category",
	Fields: graphql.Fields{
		"id":   &graphql.Field{Type: nonNull(graphql.Int)},
		"name": &graphql.Field{Type: nonNull(graphql.String)},
	},
})

var productType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Product",
	Fields: graphql.Fields{
		"id":               &graphql.Field{Type: nonNull(graphql.Int)},
		"name":             &graphql.Field{Type: nonNull(graphql.String)},
		"categoryId":       &graphql.Field{Type: nonNull(graphql.Int)},
		"categoryName":     &graphql.Field{Type: nonNull(graphql.String)},
		"price":            &graphql.Field{Type: nonNull(graphql.Int)},
		"shortDescription": &graphql.Field{Type: nonNull(graphql.String)},
		"images":           &graphql.Field{Type: nonNull(listOf(graphql.String))},
	},
})

var productEditType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ProductEdit",
	Fields: graphql.Fields{
		"id":               &graphql.Field{Type: nonNull(graphql.Int)},
		"name":             &graphql.Field{Type: nonNull(graphql.String)},
		"categoryId":       &graphql.Field{Type: nonNull(graphql.Int)},
		"price":            &graphql.Field{Type: nonNull(graphql.Int)},
		"shortDescription": &graphql.Field{Type: nonNull(graphql.String)},
		"images":           &graphql.Field{Type: nonNull(listOf(graphql.String))},
		"deleteAllImages":  &graphql.Field{Type: nonNull(graphql.Boolean)},
	},
})

var pageInfoType = graphql.NewObject(graphql.ObjectConfig{
	Name: "PageInfo",
	Fields: graphql.Fields{
		"pageNumber":  &graphql.Field{Type: nonNull(graphql.Int)},
		"totalPages":  &graphql.Field{Type: nonNull(graphql.Int)},
		"hasPrevious": &graphql.Field{Type: nonNull(graphql.Boolean)},
		"hasNext":     &graphql.Field{Type: nonNull(graphql.Boolean)},
	},
})

var productPageType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ProductPage",
	Fields: graphql.Fields{
		"products": &graphql.Field{Type: nonNull(listOf(productType))},
		"pageInfo": &graphql.Field{Type: nonNull(pageInfoType)},
	},
})

var productDetailType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ProductDetail",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: nonNull(graphql.Int)},
		"productId":   &graphql.Field{Type: nonNull(graphql.Int)},
		"title":       &graphql.Field{Type: nonNull(graphql.String)},
		"description": &graphql.Field{Type: nonNull(graphql.String)},
	},
})

var cartRowType = graphql.NewObject(graphql.ObjectConfig{
	Name: "CartRow",
	Fields: graphql.Fields{
		"productId":        &graphql.Field{Type: nonNull(graphql.Int)},
		"productName":      &graphql.Field{Type: nonNull(graphql.String)},
		"shortDescription": &graphql.Field{Type: nonNull(graphql.String)},
		"quantity":         &graphql.Field{Type: nonNull(graphql.Int)},
		"price":            &graphql.Field{Type: nonNull(graphql.Int)},
		"totalPrice":       &graphql.Field{Type: nonNull(graphql.Int)},
	},
})

var cartType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Cart",
	Fields: graphql.Fields{
		"items": &graphql.Field{Type: nonNull(listOf(cartRowType))},
		"total": &graphql.Field{Type: nonNull(graphql.Int)},
	},
})

var cartItemType = graphql.NewObject(graphql.ObjectConfig{
	Name: "CartItem",
	Fields: graphql.Fields{
		"productId":    &graphql.Field{Type: nonNull(graphql.Int)},
		"productName":  &graphql.Field{Type: nonNull(graphql.String)},
		"quantity":     &graphql.Field{Type: nonNull(graphql.Int)},
		"amountForOne": &graphql.Field{Type: nonNull(graphql.Int)},
		"totalPrice":   &graphql.Field{Type: nonNull(graphql.Int)},
	},
})

var checkoutType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Checkout",
	Fields: graphql.Fields{
		"items": &graphql.Field{Type: nonNull(listOf(cartItemType))},
		"total": &graphql.Field{Type: nonNull(graphql.Int)},
	},
})

var orderStatusEnum = func() *graphql.Enum {
	values := graphql.EnumValueConfigMap{}
	for _, s := range order.AllStatuses {
		values[string(s)] = &graphql.EnumValueConfig{Value: string(s)}
	}
	return graphql.NewEnum(graphql.EnumConfig{Name: "OrderStatus", Values: values})
}()

var orderItemType = graphql.NewObject(graphql.ObjectConfig{
	Name: "OrderItem",
	Fields: graphql.Fields{
		"id":           &graphql.Field{Type: nonNull(graphql.Int)},
		"productId":    &graphql.Field{Type: nonNull(graphql.Int)},
		"productName":  &graphql.Field{Type: nonNull(graphql.String)},
		"quantity":     &graphql.Field{Type: nonNull(graphql.Int)},
		"amountForOne": &graphql.Field{Type: nonNull(graphql.Int)},
		"totalPrice":   &graphql.Field{Type: nonNull(graphql.Int)},
	},
})

var orderType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Order",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: nonNull(graphql.Int)},
		"userId":      &graphql.Field{Type: nonNull(graphql.String)},
		"createdAt":   &graphql.Field{Type: nonNull(graphql.String)},
		"status":      &graphql.Field{Type: nonNull(orderStatusEnum)},
		"address":     &graphql.Field{Type: nonNull(graphql.String)},
		"phoneNumber": &graphql.Field{Type: nonNull(graphql.String)},
		"comment": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				if o, ok := p.Source.(*model.Order); ok && o.Comment != nil {
					return *o.Comment, nil
				}
				return nil, nil
			},
		},
		"items":      &graphql.Field{Type: listOf(orderItemType)},
		"totalPrice": &graphql.Field{Type: nonNull(graphql.Int)},
	},
})

// -- Inputs --

var productInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ProductInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"id":               &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"categoryId":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		"name":             &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"price":            &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		"shortDescription": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"images":           &graphql.InputObjectFieldConfig{Type: listOf(graphql.String)},
		"deleteAllImages":  &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
	},
})

var productDetailInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ProductDetailInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"id":          &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"productId":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		"title":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"description": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
	},
})

var shippingInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ShippingInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"address":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"phoneNumber": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"comment":     &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var orderItemInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "OrderItemInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"id":           &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"productId":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		"productName":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"quantity":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		"amountForOne": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
	},
})

var editOrderInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "EditOrderInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"id":          &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		"status":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(orderStatusEnum)},
		"address":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"phoneNumber": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"comment":     &graphql.InputObjectFieldConfig{Type: graphql.String},
		"items":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(listOf(orderItemInput))},
	},
})
