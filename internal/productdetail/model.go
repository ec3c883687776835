package productdetail

// Detail is one titled paragraph of a product's extended description.
type Detail struct {
	ID          int64  `mapstructure:"id"`
	ProductID   int64  `mapstructure:"productId" validate:"min=1"`
	Title       string `mapstructure:"title" validate:"notblank,max=200"`
	Description string `mapstructure:"description" validate:"notblank"`
}
