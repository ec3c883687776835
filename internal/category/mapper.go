package category

import "eshop-be/internal/graph/model"

func MapCategoryToGraphQL(c *Category) *model.Category {
	if c == nil {
		return nil
	}
	return &model.Category{ID: c.ID, Name: c.Name}
}

func MapCategoriesToGraphQL(list []*Category) []*model.Category {
	out := make([]*model.Category, 0, len(list))
	for _, c := range list {
		out = append(out, MapCategoryToGraphQL(c))
	}
	return out
}
