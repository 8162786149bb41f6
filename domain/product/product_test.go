package product_test

import (
	"testing"

	"github.com/dddlab/backend/domain/product"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		pname   string
		price   float64
		wantErr error
	}{
		{"valid", "p1", "Product 1", 100, nil},
		{"free", "p1", "Product 1", 0, nil},
		{"missing id", "", "Product 1", 100, product.ErrIDRequired},
		{"missing name", "p1", "", 100, product.ErrNameRequired},
		{"negative price", "p1", "Product 1", -1, product.ErrInvalidPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := product.New(tt.id, tt.pname, tt.price)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.price, p.Price)
		})
	}
}

func TestChangePrice(t *testing.T) {
	p, err := product.New("p1", "Product 1", 100)
	require.NoError(t, err)

	require.NoError(t, p.ChangePrice(150))
	assert.Equal(t, 150.0, p.Price)

	assert.ErrorIs(t, p.ChangePrice(-10), product.ErrInvalidPrice)
	assert.Equal(t, 150.0, p.Price)
}

func TestNewProductCreatedEvent(t *testing.T) {
	p, err := product.New("p1", "Product 1", 10)
	require.NoError(t, err)

	e := product.NewProductCreatedEvent(p)

	assert.Equal(t, "ProductCreatedEvent", e.EventName())
	assert.Equal(t, product.ProductCreatedData{ID: "p1", Name: "Product 1", Price: 10}, e.Data())
}
