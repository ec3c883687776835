// Package model holds the shapes returned over GraphQL. Field names follow
// the json tags, which the schema's default resolvers read.
package model

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Product struct {
	ID               int64    `json:"id"`
	Name             string   `json:"name"`
	CategoryID       int64    `json:"categoryId"`
	CategoryName     string   `json:"categoryName"`
	Price            int64    `json:"price"`
	ShortDescription string   `json:"shortDescription"`
	Images           []string `json:"images"`
}

type ProductEdit struct {
	ID               int64    `json:"id"`
	Name             string   `json:"name"`
	CategoryID       int64    `json:"categoryId"`
	Price            int64    `json:"price"`
	ShortDescription string   `json:"shortDescription"`
	Images           []string `json:"images"`
	DeleteAllImages  bool     `json:"deleteAllImages"`
}

type PageInfo struct {
	PageNumber  int  `json:"pageNumber"`
	TotalPages  int  `json:"totalPages"`
	HasPrevious bool `json:"hasPrevious"`
	HasNext     bool `json:"hasNext"`
}

type ProductPage struct {
	Products []*Product `json:"products"`
	PageInfo *PageInfo  `json:"pageInfo"`
}

type ProductDetail struct {
	ID          int64  `json:"id"`
	ProductID   int64  `json:"productId"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CartRow is a cart line joined with the current catalog entry.
type CartRow struct {
	ProductID        int64  `json:"productId"`
	ProductName      string `json:"productName"`
	ShortDescription string `json:"shortDescription"`
	Quantity         int    `json:"quantity"`
	Price            int64  `json:"price"`
	TotalPrice       int64  `json:"totalPrice"`
}

type Cart struct {
	Items []*CartRow `json:"items"`
	Total int64      `json:"total"`
}

// CartItem is a line as captured in the session, with the price at the
// time it was first added.
type CartItem struct {
	ProductID    int64  `json:"productId"`
	ProductName  string `json:"productName"`
	Quantity     int    `json:"quantity"`
	AmountForOne int64  `json:"amountForOne"`
	TotalPrice   int64  `json:"totalPrice"`
}

type Checkout struct {
	Items []*CartItem `json:"items"`
	Total int64       `json:"total"`
}

type OrderItem struct {
	ID           int64  `json:"id"`
	ProductID    int64  `json:"productId"`
	ProductName  string `json:"productName"`
	Quantity     int    `json:"quantity"`
	AmountForOne int64  `json:"amountForOne"`
	TotalPrice   int64  `json:"totalPrice"`
}

type Order struct {
	ID          int64        `json:"id"`
	UserID      string       `json:"userId"`
	CreatedAt   string       `json:"createdAt"`
	Status      string       `json:"status"`
	Address     string       `json:"address"`
	PhoneNumber string       `json:"phoneNumber"`
	Comment     *string      `json:"comment"`
	Items       []*OrderItem `json:"items"`
	TotalPrice  int64        `json:"totalPrice"`
}

// MutationResponse is the envelope every mutation returns.
type MutationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      *int64 `json:"id,omitempty"`
}
