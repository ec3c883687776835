package cart

// Item is one line of a session cart as it is stored.
type Item struct {
	ProductID    int64  `json:"productId"`
	ProductName  string `json:"productName"`
	Quantity     int    `json:"quantity"`
	AmountForOne int64  `json:"amountForOne"`
}

// Row is a cart line joined with the current catalog entry.
type Row struct {
	ProductID        int64
	ProductName      string
	ShortDescription string
	Quantity         int
	Price            int64
	TotalPrice       int64
}

type View struct {
	Rows  []Row
	Total int64
}

// ItemsTotal sums quantity times unit price over the stored prices.
func ItemsTotal(items []Item) int64 {
	var total int64
	for _, it := range items {
		total += int64(it.Quantity) * it.AmountForOne
	}
	return total
}
