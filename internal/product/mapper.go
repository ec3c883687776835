package product

import "eshop-be/internal/graph/model"

func MapShowToGraphQL(s *Show) *model.Product {
	if s == nil {
		return nil
	}
	return &model.Product{
		ID:               s.ID,
		Name:             s.Name,
		CategoryID:       s.CategoryID,
		CategoryName:     s.CategoryName,
		Price:            s.Price,
		ShortDescription: s.ShortDescription,
		Images:           s.Images,
	}
}

// MapProductToGraphQL maps a product without loading its images.
func MapProductToGraphQL(p *Product) *model.Product {
	if p == nil {
		return nil
	}
	return &model.Product{
		ID:               p.ID,
		Name:             p.Name,
		CategoryID:       p.CategoryID,
		CategoryName:     p.CategoryName,
		Price:            p.Price,
		ShortDescription: p.ShortDescription,
		Images:           []string{},
	}
}

func MapEditToGraphQL(e *Edit) *model.ProductEdit {
	if e == nil {
		return nil
	}
	return &model.ProductEdit{
		ID:               e.ID,
		Name:             e.Name,
		CategoryID:       e.CategoryID,
		Price:            e.Price,
		ShortDescription: e.ShortDescription,
		Images:           e.Images,
		DeleteAllImages:  e.DeleteAllImages,
	}
}

func MapPageToGraphQL(p *Page) *model.ProductPage {
	items := make([]*model.Product, 0, len(p.Products))
	for _, s := range p.Products {
		items = append(items, MapShowToGraphQL(s))
	}

	return &model.ProductPage{
		Products: items,
		PageInfo: &model.PageInfo{
			PageNumber:  p.Pagination.PageNumber,
			TotalPages:  p.Pagination.TotalPages,
			HasPrevious: p.Pagination.HasPrevious,
			HasNext:     p.Pagination.HasNext,
		},
	}
}
