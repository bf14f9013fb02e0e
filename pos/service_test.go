package pos_test

import (
	"testing"
	"time"

	"restaurant-pos-api/models"
	"restaurant-pos-api/pos"
	"restaurant-pos-api/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *pos.Service {
	t.Helper()
	return pos.NewService(storage.NewMemoryStore())
}

func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

// setupOccupiedTable builds the scenario used across the lifecycle tests:
// one table occupied by Alice with a 2500-price menu item, tax 8.5%,
// service charge disabled.
func setupOccupiedTable(t *testing.T, svc *pos.Service) (models.Table, models.MenuItem) {
	t.Helper()

	_, err := svc.UpdateSettings(pos.SettingsPatch{
		TaxRate:              floatPtr(8.5),
		ServiceCharge:        floatPtr(10),
		ServiceChargeEnabled: boolPtr(false),
	})
	require.NoError(t, err)

	item, err := svc.AddMenuItem(models.MenuItem{Name: "Mohinga", Price: 2500, Category: "Appetizers"})
	require.NoError(t, err)

	table, err := svc.AddTable()
	require.NoError(t, err)
	require.Equal(t, models.StatusAvailable, table.Status)
	require.Equal(t, 4, table.Seats)

	table, err = svc.Occupy(table.ID, "Alice")
	require.NoError(t, err)
	return table, item
}

func TestOccupyAndOrderAccumulation(t *testing.T) {
	svc := newTestService(t)
	table, item := setupOccupiedTable(t, svc)

	assert.Equal(t, models.StatusOccupied, table.Status)
	assert.Equal(t, "Alice", table.Customer)
	assert.NotEmpty(t, table.OrderID)
	assert.Contains(t, table.OrderID, "-T01")

	table, err := svc.StartOrder(table.ID)
	require.NoError(t, err)
	assert.NotNil(t, table.OrderItems)

	table, err = svc.AddOrderItem(table.ID, item.ID)
	require.NoError(t, err)
	table, err = svc.AddOrderItem(table.ID, item.ID)
	require.NoError(t, err)

	require.Len(t, table.OrderItems, 1)
	assert.Equal(t, 2, table.OrderItems[0].Quantity)

	bill, err := svc.Bill(table.ID)
	require.NoError(t, err)
	assert.Equal(t, 5000.0, bill.Subtotal)
	assert.Equal(t, 0.0, bill.ServiceCharge)
	assert.Equal(t, 425.0, bill.Tax)
	assert.Equal(t, 5425.0, bill.Total)

	require.NotNil(t, table.OrderTotal)
	assert.Equal(t, 5425.0, *table.OrderTotal)
}

func TestCompleteOrderArchivesAndResets(t *testing.T) {
	svc := newTestService(t)
	table, item := setupOccupiedTable(t, svc)

	_, err := svc.StartOrder(table.ID)
	require.NoError(t, err)
	_, err = svc.AddOrderItem(table.ID, item.ID)
	require.NoError(t, err)
	_, err = svc.AddOrderItem(table.ID, item.ID)
	require.NoError(t, err)

	record, err := svc.CompleteOrder(table.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", record.Status)
	assert.Equal(t, 5425.0, record.Total)
	assert.Equal(t, 1, record.TableNumber)
	assert.Equal(t, "Alice", record.CustomerName)
	assert.Equal(t, time.Now().Format("2006-01-02"), record.OrderDate)
	require.Len(t, record.Items, 1)
	assert.Equal(t, 2, record.Items[0].Quantity)

	reset, err := svc.Table(table.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAvailable, reset.Status)
	assert.Empty(t, reset.Customer)
	assert.Empty(t, reset.OrderID)
	assert.Nil(t, reset.OrderItems)
	assert.Nil(t, reset.OrderTotal)

	history := svc.OrderHistory()
	require.Len(t, history, 1)
	assert.Equal(t, record.ID, history[0].ID)
}

func TestCompleteOrderWithEmptyLedgerRejected(t *testing.T) {
	svc := newTestService(t)
	table, _ := setupOccupiedTable(t, svc)

	_, err := svc.CompleteOrder(table.ID)
	assert.ErrorIs(t, err, pos.ErrEmptyOrder)
	assert.Empty(t, svc.OrderHistory())

	unchanged, err := svc.Table(table.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusOccupied, unchanged.Status)
}

func TestSaveOrderKeepsTableOccupied(t *testing.T) {
	svc := newTestService(t)
	table, item := setupOccupiedTable(t, svc)

	_, err := svc.StartOrder(table.ID)
	require.NoError(t, err)

	// Save with an empty ledger is refused without touching the table.
	_, _, err = svc.SaveOrder(table.ID)
	assert.ErrorIs(t, err, pos.ErrEmptyOrder)

	_, err = svc.AddOrderItem(table.ID, item.ID)
	require.NoError(t, err)

	saved, bill, err := svc.SaveOrder(table.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusOccupied, saved.Status)
	assert.NotEmpty(t, saved.OrderID)
	require.NotNil(t, saved.OrderTotal)
	assert.Equal(t, bill.Total, *saved.OrderTotal)
	assert.Empty(t, svc.OrderHistory())
}

func TestFreeRejectedThenCancelDiscards(t *testing.T) {
	svc := newTestService(t)
	table, item := setupOccupiedTable(t, svc)

	_, err := svc.StartOrder(table.ID)
	require.NoError(t, err)
	_, err = svc.AddOrderItem(table.ID, item.ID)
	require.NoError(t, err)
	_, err = svc.AddOrderItem(table.ID, item.ID)
	require.NoError(t, err)

	_, err = svc.Free(table.ID)
	assert.ErrorIs(t, err, pos.ErrTableHasOpenOrder)

	occupied, err := svc.Table(table.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusOccupied, occupied.Status)
	assert.Len(t, occupied.OrderItems, 1)

	cancelled, err := svc.CancelOrder(table.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAvailable, cancelled.Status)
	assert.Empty(t, cancelled.Customer)
	assert.Nil(t, cancelled.OrderItems)
	// Cancel never writes history; that is what separates it from complete.
	assert.Empty(t, svc.OrderHistory())
}

func TestFreeClearsTableWithoutItems(t *testing.T) {
	svc := newTestService(t)
	table, _ := setupOccupiedTable(t, svc)

	freed, err := svc.Free(table.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAvailable, freed.Status)
	assert.Empty(t, freed.Customer)
	assert.Empty(t, freed.OrderID)
}

func TestArchivalImmuneToMenuEdits(t *testing.T) {
	svc := newTestService(t)
	table, item := setupOccupiedTable(t, svc)

	_, err := svc.StartOrder(table.ID)
	require.NoError(t, err)
	_, err = svc.AddOrderItem(table.ID, item.ID)
	require.NoError(t, err)

	record, err := svc.CompleteOrder(table.ID)
	require.NoError(t, err)
	require.Equal(t, 2500.0, record.Items[0].Price)

	item.Price = 9999
	_, err = svc.UpdateMenuItem(item)
	require.NoError(t, err)

	history := svc.OrderHistory()
	require.Len(t, history, 1)
	assert.Equal(t, 2500.0, history[0].Items[0].Price)
}

func TestLiveMenuPriceUsedBeforeCompletion(t *testing.T) {
	svc := newTestService(t)
	table, item := setupOccupiedTable(t, svc)

	_, err := svc.StartOrder(table.ID)
	require.NoError(t, err)
	_, err = svc.AddOrderItem(table.ID, item.ID)
	require.NoError(t, err)

	// Price changes before completion flow into the bill.
	item.Price = 3000
	_, err = svc.UpdateMenuItem(item)
	require.NoError(t, err)

	bill, err := svc.Bill(table.ID)
	require.NoError(t, err)
	assert.Equal(t, 3000.0, bill.Subtotal)
}

func TestAddTableNumbering(t *testing.T) {
	svc := newTestService(t)
	for i := 1; i <= 3; i++ {
		table, err := svc.AddTable()
		require.NoError(t, err)
		assert.Equal(t, i, table.Number)
	}

	table, err := svc.AddTable()
	require.NoError(t, err)
	assert.Equal(t, 4, table.Number)
	assert.Equal(t, 4, table.Seats)
	assert.Equal(t, models.StatusAvailable, table.Status)
}

func TestOccupyRequiresCustomer(t *testing.T) {
	svc := newTestService(t)
	table, err := svc.AddTable()
	require.NoError(t, err)

	_, err = svc.Occupy(table.ID, "  ")
	assert.ErrorIs(t, err, pos.ErrCustomerRequired)

	unchanged, err := svc.Table(table.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAvailable, unchanged.Status)
	assert.Empty(t, unchanged.OrderID)
}

func TestReserveSetsReservationTime(t *testing.T) {
	svc := newTestService(t)
	table, err := svc.AddTable()
	require.NoError(t, err)

	reservedAt := time.Date(2026, time.February, 14, 19, 0, 0, 0, time.UTC)
	svc.SetClock(func() time.Time { return reservedAt })

	reserved, err := svc.Reserve(table.ID, "Bob")
	require.NoError(t, err)
	assert.Equal(t, models.StatusReserved, reserved.Status)
	assert.Equal(t, "Bob", reserved.Customer)
	require.NotNil(t, reserved.ReservationTime)
	assert.Equal(t, reservedAt, *reserved.ReservationTime)
}

func TestHistoryNewestFirst(t *testing.T) {
	svc := newTestService(t)
	table, item := setupOccupiedTable(t, svc)

	complete := func(clock time.Time) models.HistoryRecord {
		svc.SetClock(func() time.Time { return clock })
		_, err := svc.Occupy(table.ID, "Alice")
		require.NoError(t, err)
		_, err = svc.StartOrder(table.ID)
		require.NoError(t, err)
		_, err = svc.AddOrderItem(table.ID, item.ID)
		require.NoError(t, err)
		record, err := svc.CompleteOrder(table.ID)
		require.NoError(t, err)
		return record
	}

	first := complete(time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC))
	second := complete(time.Date(2026, time.March, 2, 12, 0, 0, 0, time.UTC))

	history := svc.OrderHistory()
	require.Len(t, history, 2)
	assert.Equal(t, second.ID, history[0].ID)
	assert.Equal(t, first.ID, history[1].ID)

	summary := svc.Summary()
	assert.Equal(t, 2, summary.TotalOrders)
	assert.Equal(t, first.Total+second.Total, summary.TotalRevenue)
	assert.Len(t, summary.SalesByDate, 2)

	require.NoError(t, svc.ClearOrderHistory())
	assert.Empty(t, svc.OrderHistory())
}

func TestWalkInCustomerDefault(t *testing.T) {
	svc := newTestService(t)
	_, item := setupOccupiedTable(t, svc)

	// A table occupied through the management form may have no customer.
	table, err := svc.AddTable()
	require.NoError(t, err)
	_, err = svc.StartOrder(table.ID)
	require.NoError(t, err)
	_, err = svc.AddOrderItem(table.ID, item.ID)
	require.NoError(t, err)

	record, err := svc.CompleteOrder(table.ID)
	require.NoError(t, err)
	assert.Equal(t, "Walk-in Customer", record.CustomerName)
	assert.NotEmpty(t, record.ID)
}

func TestExportImportRoundTrip(t *testing.T) {
	svc := newTestService(t)
	table, item := setupOccupiedTable(t, svc)
	_, err := svc.StartOrder(table.ID)
	require.NoError(t, err)
	_, err = svc.AddOrderItem(table.ID, item.ID)
	require.NoError(t, err)
	_, err = svc.CompleteOrder(table.ID)
	require.NoError(t, err)

	bundle := svc.Export()
	assert.Equal(t, "1.0", bundle.Version)
	assert.False(t, bundle.ExportDate.IsZero())

	restored := pos.NewService(storage.NewMemoryStore())
	require.NoError(t, restored.Import(bundle))
	assert.Equal(t, svc.Tables(), restored.Tables())
	assert.Equal(t, svc.MenuItems(), restored.MenuItems())
	assert.Equal(t, svc.OrderHistory(), restored.OrderHistory())
	assert.Equal(t, svc.Settings(), restored.Settings())
}

func TestImportRejectsIncompleteBundle(t *testing.T) {
	svc := newTestService(t)
	bundle := svc.Export()
	bundle.Tables = nil
	err := pos.NewService(storage.NewMemoryStore()).Import(bundle)
	assert.ErrorIs(t, err, pos.ErrInvalidBackup)
}

func TestSeedDefaults(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.Seed())

	assert.Len(t, svc.Tables(), 8)
	assert.Len(t, svc.MenuItems(), 6)
	assert.Len(t, svc.Categories(), 6)
	assert.Equal(t, "Restaurant POS", svc.Settings().RestaurantName)
	assert.Equal(t, "MMK", svc.Settings().Currency)

	user, role, err := svc.Authenticate("admin@restaurant.com", "admin")
	require.NoError(t, err)
	assert.Equal(t, "Admin User", user.Name)
	assert.True(t, role.Allows(models.PermManageSettings))

	// Seeding twice must not overwrite existing data.
	_, err = svc.AddTable()
	require.NoError(t, err)
	require.NoError(t, svc.Seed())
	assert.Len(t, svc.Tables(), 9)
}

func TestAuthenticate(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.Seed())

	user, err := svc.CreateUser("Sarah Waiter", "waiter@restaurant.com", "secret1", "waiter")
	require.NoError(t, err)

	_, role, err := svc.Authenticate("Sarah Waiter", "secret1")
	require.NoError(t, err)
	assert.True(t, role.Allows(models.PermCreateOrder))
	assert.False(t, role.Allows(models.PermCompleteOrder))

	_, _, err = svc.Authenticate("Sarah Waiter", "wrong")
	assert.ErrorIs(t, err, pos.ErrInvalidCredentials)

	_, err = svc.CreateUser("Dup", "waiter@restaurant.com", "secret1", "waiter")
	assert.ErrorIs(t, err, pos.ErrEmailTaken)

	require.NoError(t, svc.DeleteUser(user.ID))
	_, _, err = svc.Authenticate("Sarah Waiter", "secret1")
	assert.ErrorIs(t, err, pos.ErrInvalidCredentials)
}
