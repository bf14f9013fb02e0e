package ledger_test

import (
	"testing"

	"restaurant-pos-api/ledger"
	"restaurant-pos-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	mohinga = models.MenuItem{ID: "1", Name: "Mohinga", Price: 2500}
	noodles = models.MenuItem{ID: "3", Name: "Shan Noodles", Price: 3500}
)

func TestAddMergesQuantity(t *testing.T) {
	items := ledger.Add(nil, mohinga)
	items = ledger.Add(items, mohinga)

	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "1", items[0].MenuItem.ID)
	assert.NotEmpty(t, items[0].ID)
}

func TestInsertionOrderPreserved(t *testing.T) {
	items := ledger.Add(nil, mohinga)
	items = ledger.Add(items, noodles)
	items = ledger.Add(items, mohinga)

	require.Len(t, items, 2)
	// First-added item stays first even after its quantity grows.
	assert.Equal(t, "Mohinga", items[0].MenuItem.Name)
	assert.Equal(t, "Shan Noodles", items[1].MenuItem.Name)
}

func TestDecrementRemovesAtZero(t *testing.T) {
	items := ledger.Add(nil, mohinga)
	items = ledger.Add(items, mohinga)

	items = ledger.Decrement(items, "1")
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)

	items = ledger.Decrement(items, "1")
	assert.Empty(t, items)
}

func TestDecrementAbsentIsNoop(t *testing.T) {
	items := ledger.Add(nil, mohinga)
	unchanged := ledger.Decrement(items, "no-such-item")
	assert.Equal(t, items, unchanged)

	assert.Empty(t, ledger.Decrement(nil, "1"))
}

func TestAddThenDecrementRoundTrip(t *testing.T) {
	items := ledger.Add(nil, noodles)
	for i := 0; i < 4; i++ {
		items = ledger.Add(items, mohinga)
	}
	require.Equal(t, 4, ledger.QuantityOf(items, "1"))

	for i := 0; i < 4; i++ {
		items = ledger.Decrement(items, "1")
	}
	require.Len(t, items, 1)
	assert.Equal(t, "3", items[0].MenuItem.ID)
	assert.Equal(t, 0, ledger.QuantityOf(items, "1"))
}

func TestQuantityOf(t *testing.T) {
	assert.Equal(t, 0, ledger.QuantityOf(nil, "1"))
	items := ledger.Add(nil, mohinga)
	assert.Equal(t, 1, ledger.QuantityOf(items, "1"))
	assert.Equal(t, 0, ledger.QuantityOf(items, "3"))
}
