package storage_test

import (
	"testing"

	"restaurant-pos-api/models"
	"restaurant-pos-api/storage"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) (*storage.GormStore, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	store, err := storage.NewGormStore(db)
	require.NoError(t, err)
	return store, db
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)

	tables := []models.Table{
		{ID: "1", Number: 1, Seats: 2, Status: models.StatusAvailable},
		{ID: "2", Number: 2, Seats: 4, Status: models.StatusOccupied, Customer: "Alice"},
	}
	require.NoError(t, store.Save(storage.KeyTables, tables))

	var loaded []models.Table
	require.NoError(t, store.Load(storage.KeyTables, &loaded))
	assert.Equal(t, tables, loaded)
}

func TestSaveReplacesWholeCollection(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.Save(storage.KeyCategories, []string{"Pizza", "Pasta"}))
	require.NoError(t, store.Save(storage.KeyCategories, []string{"Dessert"}))

	var categories []string
	require.NoError(t, store.Load(storage.KeyCategories, &categories))
	assert.Equal(t, []string{"Dessert"}, categories)
}

func TestLoadMissingKey(t *testing.T) {
	store, _ := newTestStore(t)
	var out []models.Table
	assert.ErrorIs(t, store.Load(storage.KeyTables, &out), storage.ErrNotFound)
}

func TestLoadMalformedValue(t *testing.T) {
	store, db := newTestStore(t)

	// A corrupt collection must degrade to not-found, not break the caller.
	require.NoError(t, db.Save(&storage.Collection{Key: storage.KeyMenuItems, Value: "{not json"}).Error)

	var out []models.MenuItem
	assert.ErrorIs(t, store.Load(storage.KeyMenuItems, &out), storage.ErrNotFound)

	// Other collections stay readable.
	require.NoError(t, store.Save(storage.KeyCategories, []string{"Beverage"}))
	var categories []string
	require.NoError(t, store.Load(storage.KeyCategories, &categories))
	assert.Equal(t, []string{"Beverage"}, categories)
}
