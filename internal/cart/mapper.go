package cart

import "eshop-be/internal/graph/model"

func MapViewToGraphQL(v *View) *model.Cart {
	rows := make([]*model.CartRow, 0, len(v.Rows))
	for _, r := range v.Rows {
		rows = append(rows, &model.CartRow{
			ProductID:        r.ProductID,
			ProductName:      r.ProductName,
			ShortDescription: r.ShortDescription,
			Quantity:         r.Quantity,
			Price:            r.Price,
			TotalPrice:       r.TotalPrice,
		})
	}
	return &model.Cart{Items: rows, Total: v.Total}
}

func MapItemsToGraphQL(items []Item) []*model.CartItem {
	out := make([]*model.CartItem, 0, len(items))
	for _, it := range items {
		out = append(out, &model.CartItem{
			ProductID:    it.ProductID,
			ProductName:  it.ProductName,
			Quantity:     it.Quantity,
			AmountForOne: it.AmountForOne,
			TotalPrice:   it.AmountForOne * int64(it.Quantity),
		})
	}
	return out
}
