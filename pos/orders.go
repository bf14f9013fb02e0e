package pos

import (
	"encoding/json"
	"time"

	"restaurant-pos-api/billing"
	"restaurant-pos-api/ledger"
	"restaurant-pos-api/models"
	"restaurant-pos-api/statemachine"
	"restaurant-pos-api/storage"

	"github.com/sirupsen/logrus"
)

// historyRow is the persisted shape of a history record: the items snapshot
// is stored as a serialized string and parsed on read.
type historyRow struct {
	ID           string    `json:"id"`
	TableNumber  int       `json:"tableNumber"`
	CustomerName string    `json:"customerName"`
	OrderDate    string    `json:"orderDate"`
	Status       string    `json:"status"`
	Total        float64   `json:"total"`
	Items        string    `json:"items"`
	CreatedAt    time.Time `json:"createdAt"`
}

// StartOrder occupies the table and opens an ordering session, keeping any
// items saved earlier.
func (s *Service) StartOrder(id string) (models.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tables := s.loadTables()
	i := findTable(tables, id)
	if i < 0 {
		return models.Table{}, ErrTableNotFound
	}
	next, err := statemachine.Apply(statemachine.ActionStartOrder, tables[i].Status)
	if err != nil {
		return models.Table{}, err
	}
	tables[i].Status = next
	if tables[i].OrderItems == nil {
		tables[i].OrderItems = []models.OrderItem{}
	}
	if err := s.store.Save(storage.KeyTables, tables); err != nil {
		return models.Table{}, err
	}
	return tables[i], nil
}

// AddOrderItem adds one unit of a menu item to the table's ledger, merging
// into an existing line when present, and recomputes the cached total.
func (s *Service) AddOrderItem(tableID, menuItemID string) (models.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tables := s.loadTables()
	i := findTable(tables, tableID)
	if i < 0 {
		return models.Table{}, ErrTableNotFound
	}
	if tables[i].Status != models.StatusOccupied {
		return models.Table{}, ErrNoOrderSession
	}
	menuItem, ok := findMenuItem(s.loadMenuItems(), menuItemID)
	if !ok {
		return models.Table{}, ErrMenuItemNotFound
	}
	tables[i].OrderItems = ledger.Add(tables[i].OrderItems, menuItem)
	s.recomputeTotal(&tables[i])
	if err := s.store.Save(storage.KeyTables, tables); err != nil {
		return models.Table{}, err
	}
	return tables[i], nil
}

// RemoveOrderItem removes one unit of a menu item from the table's ledger.
// Decrementing an item that is not on the order is a no-op.
func (s *Service) RemoveOrderItem(tableID, menuItemID string) (models.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tables := s.loadTables()
	i := findTable(tables, tableID)
	if i < 0 {
		return models.Table{}, ErrTableNotFound
	}
	if tables[i].Status != models.StatusOccupied {
		return models.Table{}, ErrNoOrderSession
	}
	tables[i].OrderItems = ledger.Decrement(tables[i].OrderItems, menuItemID)
	s.recomputeTotal(&tables[i])
	if err := s.store.Save(storage.KeyTables, tables); err != nil {
		return models.Table{}, err
	}
	return tables[i], nil
}

// SaveOrder closes the ordering session while keeping the table occupied: the
// ledger stays on the table, the total is recomputed from live menu prices,
// and an order id is generated if the table does not carry one yet. Refused
// when the ledger is empty.
func (s *Service) SaveOrder(tableID string) (models.Table, billing.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tables := s.loadTables()
	i := findTable(tables, tableID)
	if i < 0 {
		return models.Table{}, billing.Bill{}, ErrTableNotFound
	}
	if _, err := statemachine.Apply(statemachine.ActionSaveOrder, tables[i].Status); err != nil {
		return models.Table{}, billing.Bill{}, err
	}
	if !tables[i].HasOpenOrder() {
		return models.Table{}, billing.Bill{}, ErrEmptyOrder
	}
	bill := s.recomputeTotal(&tables[i])
	if tables[i].OrderID == "" {
		tables[i].OrderID = s.ids.GenerateForTable(tables[i].Number)
	}
	if err := s.store.Save(storage.KeyTables, tables); err != nil {
		return models.Table{}, billing.Bill{}, err
	}
	return tables[i], bill, nil
}

// CompleteOrder archives the table's order into an immutable history record
// and resets the table to available. Refused when the ledger is empty.
func (s *Service) CompleteOrder(tableID string) (models.HistoryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tables := s.loadTables()
	i := findTable(tables, tableID)
	if i < 0 {
		return models.HistoryRecord{}, ErrTableNotFound
	}
	next, err := statemachine.Apply(statemachine.ActionCompleteOrder, tables[i].Status)
	if err != nil {
		return models.HistoryRecord{}, err
	}
	if !tables[i].HasOpenOrder() {
		return models.HistoryRecord{}, ErrEmptyOrder
	}

	bill := s.recomputeTotal(&tables[i])
	record := s.archive(tables[i], bill.Total)

	tables[i].Status = next
	clearOrderFields(&tables[i])
	if err := s.store.Save(storage.KeyTables, tables); err != nil {
		return models.HistoryRecord{}, err
	}
	return record, nil
}

// CancelOrder discards the table's order and returns it to available. Unlike
// CompleteOrder, nothing is written to history.
func (s *Service) CancelOrder(tableID string) (models.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tables := s.loadTables()
	i := findTable(tables, tableID)
	if i < 0 {
		return models.Table{}, ErrTableNotFound
	}
	next, err := statemachine.Apply(statemachine.ActionCancelOrder, tables[i].Status)
	if err != nil {
		return models.Table{}, err
	}
	tables[i].Status = next
	clearOrderFields(&tables[i])
	if err := s.store.Save(storage.KeyTables, tables); err != nil {
		return models.Table{}, err
	}
	return tables[i], nil
}

// Bill computes the current breakdown for a table's open order without
// mutating anything, for the order-view modal and receipt printing.
func (s *Service) Bill(tableID string) (billing.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tables := s.loadTables()
	i := findTable(tables, tableID)
	if i < 0 {
		return billing.Bill{}, ErrTableNotFound
	}
	items := s.refreshMenuPrices(tables[i].OrderItems)
	return billing.Compute(items, s.rates()), nil
}

// OrderHistory returns all history records, newest first.
func (s *Service) OrderHistory() []models.HistoryRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadHistory()
}

// ClearOrderHistory empties the history collection.
func (s *Service) ClearOrderHistory() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Save(storage.KeyOrderHistory, []historyRow{})
}

// ReportSummary aggregates completed orders: overall count and revenue plus
// per-date totals for the daily sales report.
type ReportSummary struct {
	TotalOrders  int                `json:"total_orders"`
	TotalRevenue float64            `json:"total_revenue"`
	SalesByDate  map[string]float64 `json:"sales_by_date"`
}

func (s *Service) Summary() ReportSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	summary := ReportSummary{SalesByDate: map[string]float64{}}
	for _, record := range s.loadHistory() {
		summary.TotalOrders++
		summary.TotalRevenue += record.Total
		summary.SalesByDate[record.OrderDate] += record.Total
	}
	return summary
}

// archive builds the immutable record and prepends it to history. Items are
// copied by value out of the ledger so later menu edits never reach them.
func (s *Service) archive(table models.Table, total float64) models.HistoryRecord {
	orderID := table.OrderID
	if orderID == "" {
		orderID = s.ids.GenerateForTable(table.Number)
	}
	customer := table.Customer
	if customer == "" {
		customer = defaultCustomerName
	}

	items := make([]models.HistoryItem, 0, len(table.OrderItems))
	for _, line := range table.OrderItems {
		items = append(items, models.HistoryItem{
			ID:       line.ID,
			Name:     line.MenuItem.Name,
			Price:    line.MenuItem.Price,
			Quantity: line.Quantity,
		})
	}

	now := s.now()
	record := models.HistoryRecord{
		ID:           orderID,
		TableNumber:  table.Number,
		CustomerName: customer,
		OrderDate:    now.Format("2006-01-02"),
		Status:       models.OrderStatusCompleted,
		Total:        total,
		Items:        items,
		CreatedAt:    now,
	}

	rows := s.loadHistoryRows()
	rows = append([]historyRow{s.toRow(record)}, rows...)
	if err := s.store.Save(storage.KeyOrderHistory, rows); err != nil {
		logrus.WithError(err).Warn("pos: failed to persist order history")
	}
	return record
}

func (s *Service) loadHistoryRows() []historyRow {
	var rows []historyRow
	if err := s.store.Load(storage.KeyOrderHistory, &rows); err != nil {
		return []historyRow{}
	}
	return rows
}

func (s *Service) loadHistory() []models.HistoryRecord {
	rows := s.loadHistoryRows()
	records := make([]models.HistoryRecord, 0, len(rows))
	for _, row := range rows {
		var items []models.HistoryItem
		if err := json.Unmarshal([]byte(row.Items), &items); err != nil {
			logrus.WithField("order_id", row.ID).Warn("pos: unreadable history items, skipping record")
			continue
		}
		records = append(records, models.HistoryRecord{
			ID:           row.ID,
			TableNumber:  row.TableNumber,
			CustomerName: row.CustomerName,
			OrderDate:    row.OrderDate,
			Status:       row.Status,
			Total:        row.Total,
			Items:        items,
			CreatedAt:    row.CreatedAt,
		})
	}
	return records
}

func (s *Service) toRow(record models.HistoryRecord) historyRow {
	raw, _ := json.Marshal(record.Items)
	return historyRow{
		ID:           record.ID,
		TableNumber:  record.TableNumber,
		CustomerName: record.CustomerName,
		OrderDate:    record.OrderDate,
		Status:       record.Status,
		Total:        record.Total,
		Items:        string(raw),
		CreatedAt:    record.CreatedAt,
	}
}

// refreshMenuPrices re-resolves each line's menu item from the current menu
// so totals always reflect live prices. Lines whose menu item was deleted
// keep the copy they were added with.
func (s *Service) refreshMenuPrices(items []models.OrderItem) []models.OrderItem {
	menu := s.loadMenuItems()
	refreshed := make([]models.OrderItem, len(items))
	for i, item := range items {
		if current, ok := findMenuItem(menu, item.MenuItem.ID); ok {
			item.MenuItem = current
		}
		refreshed[i] = item
	}
	return refreshed
}

// recomputeTotal refreshes prices, recomputes the bill, and caches the total
// on the table. The ledger stays the single source of truth; the cached total
// is always derived, never hand-maintained.
func (s *Service) recomputeTotal(t *models.Table) billing.Bill {
	t.OrderItems = s.refreshMenuPrices(t.OrderItems)
	bill := billing.Compute(t.OrderItems, s.rates())
	if len(t.OrderItems) == 0 {
		t.OrderTotal = nil
		return bill
	}
	t.OrderTotal = &bill.Total
	return bill
}

func (s *Service) rates() billing.Rates {
	settings := s.loadSettings()
	return billing.Rates{
		TaxRate:              settings.TaxRate,
		ServiceChargeRate:    settings.ServiceCharge,
		ServiceChargeEnabled: settings.ServiceChargeEnabled,
	}
}

func findMenuItem(menu []models.MenuItem, id string) (models.MenuItem, bool) {
	for _, item := range menu {
		if item.ID == id {
			return item, true
		}
	}
	return models.MenuItem{}, false
}
