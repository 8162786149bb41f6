package checkout_test

import (
	"testing"

	"github.com/dddlab/backend/domain/checkout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	item := checkout.OrderItem{ID: "i1", Name: "Item 1", Price: 100, ProductID: "p1", Quantity: 2}

	tests := []struct {
		name       string
		id         string
		customerID string
		items      []checkout.OrderItem
		wantErr    error
	}{
		{"valid", "o1", "c1", []checkout.OrderItem{item}, nil},
		{"missing id", "", "c1", []checkout.OrderItem{item}, checkout.ErrIDRequired},
		{"missing customer", "o1", "", []checkout.OrderItem{item}, checkout.ErrCustomerIDRequired},
		{"no items", "o1", "c1", nil, checkout.ErrItemsRequired},
		{
			"zero quantity", "o1", "c1",
			[]checkout.OrderItem{{ID: "i1", Name: "Item 1", Price: 100, ProductID: "p1"}},
			checkout.ErrInvalidItemQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := checkout.NewOrder(tt.id, tt.customerID, tt.items)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestOrderTotal(t *testing.T) {
	item1, err := checkout.NewOrderItem("i1", "Item 1", 100, "p1", 2)
	require.NoError(t, err)
	item2, err := checkout.NewOrderItem("i2", "Item 2", 200, "p2", 2)
	require.NoError(t, err)

	o, err := checkout.NewOrder("o1", "c1", []checkout.OrderItem{item1})
	require.NoError(t, err)
	assert.Equal(t, 200.0, o.Total())

	o, err = checkout.NewOrder("o1", "c1", []checkout.OrderItem{item1, item2})
	require.NoError(t, err)
	assert.Equal(t, 600.0, o.Total())
}

func TestReplaceItems(t *testing.T) {
	item1 := checkout.OrderItem{ID: "i1", Name: "Item 1", Price: 10, ProductID: "p1", Quantity: 1}
	item2 := checkout.OrderItem{ID: "i2", Name: "Item 2", Price: 20, ProductID: "p2", Quantity: 3}

	o, err := checkout.NewOrder("o1", "c1", []checkout.OrderItem{item1})
	require.NoError(t, err)

	require.NoError(t, o.ReplaceItems([]checkout.OrderItem{item2}))
	assert.Equal(t, []checkout.OrderItem{item2}, o.Items)

	assert.ErrorIs(t, o.ReplaceItems(nil), checkout.ErrItemsRequired)
	assert.Equal(t, []checkout.OrderItem{item2}, o.Items)
}
