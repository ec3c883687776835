package order

import "time"

// RecentLimit is how many orders a non-exhaustive listing returns.
const RecentLimit = 10

type Item struct {
	ID           int64  `mapstructure:"id"`
	OrderID      int64  `mapstructure:"-"`
	ProductID    int64  `mapstructure:"productId" validate:"min=1"`
	ProductName  string `mapstructure:"productName"`
	Quantity     int    `mapstructure:"quantity" validate:"min=0,max=99"`
	AmountForOne int64  `mapstructure:"amountForOne" validate:"min=0"`
}

func (i Item) Total() int64 {
	return int64(i.Quantity) * i.AmountForOne
}

type Order struct {
	ID          int64
	UserID      string
	CreatedAt   time.Time
	Status      Status
	Address     string
	PhoneNumber string
	Comment     *string
	Items       []Item
}

// TotalPrice is derived from the items and never stored.
func (o *Order) TotalPrice() int64 {
	var total int64
	for _, it := range o.Items {
		total += it.Total()
	}
	return total
}

// ShippingForm is what the customer fills in at checkout.
type ShippingForm struct {
	Address     string  `mapstructure:"address" validate:"notblank,max=300"`
	PhoneNumber string  `mapstructure:"phoneNumber" validate:"ua_phone"`
	Comment     *string `mapstructure:"comment" validate:"omitempty,max=500"`
}

// EditInput is the staff edit of an existing order. Items with quantity 0
// are dropped from the order.
type EditInput struct {
	ID          int64   `mapstructure:"id" validate:"min=1"`
	Status      Status  `mapstructure:"status" validate:"required"`
	Address     string  `mapstructure:"address" validate:"notblank,max=300"`
	PhoneNumber string  `mapstructure:"phoneNumber" validate:"ua_phone"`
	Comment     *string `mapstructure:"comment" validate:"omitempty,max=500"`
	Items       []Item  `mapstructure:"items" validate:"dive"`
}

// Options tune lifecycle rules.
type Options struct {
	// StrictTransitions rejects status changes outside the forward flow.
	StrictTransitions bool
}
