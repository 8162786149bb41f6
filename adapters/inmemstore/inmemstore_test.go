package inmemstore_test

import (
	"testing"

	"github.com/dddlab/backend/adapters/inmemstore"
	"github.com/dddlab/backend/adapters/postgrestore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenConnection(t *testing.T) {
	t.Run("it should open new connection", func(t *testing.T) {
		db, err := inmemstore.NewConnection()

		assert.NoError(t, err)
		assert.NotNil(t, db)
		assert.NoError(t, inmemstore.Close(db))
	})

	t.Run("it should create the store tables", func(t *testing.T) {
		db, err := inmemstore.NewConnection()
		require.NoError(t, err)
		t.Cleanup(func() { _ = inmemstore.Close(db) })

		for _, schema := range postgrestore.Schemas() {
			assert.True(t, db.Migrator().HasTable(schema))
		}
	})

	t.Run("it should not share data between connections", func(t *testing.T) {
		first, err := inmemstore.NewConnection()
		require.NoError(t, err)
		t.Cleanup(func() { _ = inmemstore.Close(first) })

		require.NoError(t, first.Create(&postgrestore.ProductSchema{ID: "p1", Name: "Product 1"}).Error)

		second, err := inmemstore.NewConnection()
		require.NoError(t, err)
		t.Cleanup(func() { _ = inmemstore.Close(second) })

		var count int64
		require.NoError(t, second.Model(&postgrestore.ProductSchema{}).Count(&count).Error)
		assert.Zero(t, count)
	})
}
