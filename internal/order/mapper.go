package order

import (
	"time"

	"eshop-be/internal/cart"
	"eshop-be/internal/graph/model"
)

func MapOrderToGraphQL(o *Order) *model.Order {
	if o == nil {
		return nil
	}
	items := make([]*model.OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, &model.OrderItem{
			ID:           it.ID,
			ProductID:    it.ProductID,
			ProductName:  it.ProductName,
			Quantity:     it.Quantity,
			AmountForOne: it.AmountForOne,
			TotalPrice:   it.Total(),
		})
	}
	return &model.Order{
		ID:          o.ID,
		UserID:      o.UserID,
		CreatedAt:   o.CreatedAt.UTC().Format(time.RFC3339),
		Status:      string(o.Status),
		Address:     o.Address,
		PhoneNumber: o.PhoneNumber,
		Comment:     o.Comment,
		Items:       items,
		TotalPrice:  o.TotalPrice(),
	}
}

func MapOrdersToGraphQL(list []*Order) []*model.Order {
	out := make([]*model.Order, 0, len(list))
	for _, o := range list {
		out = append(out, MapOrderToGraphQL(o))
	}
	return out
}

func MapPreviewToGraphQL(p *Preview) *model.Checkout {
	return &model.Checkout{
		Items: cart.MapItemsToGraphQL(p.Items),
		Total: p.Total,
	}
}
