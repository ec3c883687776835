package product

// PageSize is the fixed number of products per catalog page.
const PageSize = 15

// MaxImages caps how many images one create or edit may upload.
const MaxImages = 3

type Product struct {
	ID               int64
	CategoryID       int64
	CategoryName     string
	Name             string
	Price            int64
	ShortDescription string
}

type Image struct {
	ID        int64
	ProductID int64
	Data      []byte
}

// Show is the display projection of a product.
type Show struct {
	ID               int64
	Name             string
	CategoryID       int64
	CategoryName     string
	Price            int64
	ShortDescription string
	Images           []string
}

// Edit is the staff edit form, prefilled from storage.
type Edit struct {
	ID               int64
	Name             string
	CategoryID       int64
	Price            int64
	ShortDescription string
	Images           []string
	DeleteAllImages  bool
}

type PageInfo struct {
	PageNumber  int
	TotalPages  int
	HasPrevious bool
	HasNext     bool
}

type Page struct {
	Products   []*Show
	Pagination PageInfo
}

// Filter narrows a catalog listing. At most one of the fields is used.
type Filter struct {
	CategoryID *int64
	Search     *string
}

// Input is the staff create/edit payload. Images carry base64 payloads,
// optionally as data URIs.
type Input struct {
	ID               int64    `mapstructure:"id"`
	CategoryID       int64    `mapstructure:"categoryId" validate:"min=1"`
	Name             string   `mapstructure:"name" validate:"notblank,max=200"`
	Price            int64    `mapstructure:"price" validate:"min=1"`
	ShortDescription string   `mapstructure:"shortDescription" validate:"notblank,min=10,max=150"`
	Images           []string `mapstructure:"images"`
	DeleteAllImages  bool     `mapstructure:"deleteAllImages"`
}

// imageChange tells the repository what to do with stored images on edit.
type imageChange int

const (
	keepImages imageChange = iota
	replaceImages
	clearImages
)
