package productdetail

import "eshop-be/internal/graph/model"

func MapDetailToGraphQL(d *Detail) *model.ProductDetail {
	if d == nil {
		return nil
	}
	return &model.ProductDetail{
		ID:          d.ID,
		ProductID:   d.ProductID,
		Title:       d.Title,
		Description: d.Description,
	}
}

func MapDetailsToGraphQL(list []*Detail) []*model.ProductDetail {
	out := make([]*model.ProductDetail, 0, len(list))
	for _, d := range list {
		out = append(out, MapDetailToGraphQL(d))
	}
	return out
}
