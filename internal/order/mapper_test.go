package order

import (
	"testing"
	"time"

	"eshop-be/internal/cart"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapOrderToGraphQL(t *testing.T) {
	assert.Nil(t, MapOrderToGraphQL(nil))

	comment := "leave at the door"
	o := &Order{
		ID:          3,
		UserID:      "user-1",
		CreatedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Status:      StatusDelivering,
		Address:     "Dnipro",
		PhoneNumber: "+380501234567",
		Comment:     &comment,
		Items: []Item{
			{ID: 1, ProductID: 9, ProductName: "Lamp", Quantity: 3, AmountForOne: 250},
		},
	}

	got := MapOrderToGraphQL(o)
	require.NotNil(t, got)
	assert.Equal(t, "2026-01-02T03:04:05Z", got.CreatedAt)
	assert.Equal(t, "Delivering", got.Status)
	assert.Equal(t, int64(750), got.TotalPrice)
	require.Len(t, got.Items, 1)
	assert.Equal(t, int64(750), got.Items[0].TotalPrice)
	assert.Equal(t, &comment, got.Comment)

	assert.Len(t, MapOrdersToGraphQL([]*Order{o, o}), 2)
}

func TestMapPreviewToGraphQL(t *testing.T) {
	got := MapPreviewToGraphQL(&Preview{
		Items: []cart.Item{{ProductID: 1, ProductName: "Lamp", Quantity: 2, AmountForOne: 250}},
		Total: 500,
	})
	require.Len(t, got.Items, 1)
	assert.Equal(t, int64(500), got.Total)
	assert.Equal(t, int64(500), got.Items[0].TotalPrice)
}
