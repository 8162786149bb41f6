package customer_test

import (
	"testing"

	"github.com/dddlab/backend/domain/customer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("it should create a customer", func(t *testing.T) {
		c, err := customer.New("1", "Customer")

		require.NoError(t, err)
		assert.Equal(t, "1", c.ID)
		assert.Equal(t, "Customer", c.Name)
		assert.False(t, c.Active)
	})

	t.Run("it should require an id", func(t *testing.T) {
		_, err := customer.New("", "Customer")

		assert.ErrorIs(t, err, customer.ErrIDRequired)
	})

	t.Run("it should require a name", func(t *testing.T) {
		_, err := customer.New("1", "")

		assert.ErrorIs(t, err, customer.ErrNameRequired)
	})
}

func TestActivate(t *testing.T) {
	c, err := customer.New("1", "Customer")
	require.NoError(t, err)

	assert.ErrorIs(t, c.Activate(), customer.ErrAddressRequired)

	require.NoError(t, c.ChangeAddress(customer.Address{Street: "street", Number: 1, Zip: "zip", City: "city"}))
	require.NoError(t, c.Activate())
	assert.True(t, c.Active)

	c.Deactivate()
	assert.False(t, c.Active)
}

func TestChangeAddress(t *testing.T) {
	c, err := customer.New("1", "Customer")
	require.NoError(t, err)

	err = c.ChangeAddress(customer.Address{Street: "street", Zip: "zip", City: "city"})
	assert.ErrorIs(t, err, customer.ErrInvalidAddress)
	assert.Nil(t, c.Address)

	address := customer.Address{Street: "street", Number: 1, Zip: "zip", City: "city"}
	require.NoError(t, c.ChangeAddress(address))
	assert.Equal(t, &address, c.Address)
}

func TestRewardPoints(t *testing.T) {
	c, err := customer.New("1", "Customer")
	require.NoError(t, err)

	require.NoError(t, c.AddRewardPoints(10))
	require.NoError(t, c.AddRewardPoints(10))
	assert.Equal(t, 20, c.RewardPoints)

	assert.ErrorIs(t, c.AddRewardPoints(-1), customer.ErrInvalidRewardPoints)
	assert.Equal(t, 20, c.RewardPoints)
}

func TestAddressString(t *testing.T) {
	a, err := customer.NewAddress("street", 1, "zip", "city")
	require.NoError(t, err)

	assert.Equal(t, "street, 1, zip city", a.String())
}

func TestAddressValidate(t *testing.T) {
	tests := []struct {
		name    string
		address customer.Address
	}{
		{"missing street", customer.Address{Number: 1, Zip: "zip", City: "city"}},
		{"missing number", customer.Address{Street: "street", Zip: "zip", City: "city"}},
		{"missing zip", customer.Address{Street: "street", Number: 1, City: "city"}},
		{"missing city", customer.Address{Street: "street", Number: 1, Zip: "zip"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.address.Validate(), customer.ErrInvalidAddress)
		})
	}
}
