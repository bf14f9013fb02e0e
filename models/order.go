package models

import "time"

// OrderItem is one line of a table's working order: a referenced menu item
// plus a quantity. A ledger holds at most one line per distinct menu item;
// adding the same item again accumulates the quantity instead.
type OrderItem struct {
	ID       string   `json:"id"`
	MenuItem MenuItem `json:"menuItem"`
	Quantity int      `json:"quantity"`
}

// HistoryItem is a value copy of one order line taken at archival time, so
// later menu edits or deletions never alter historical records.
type HistoryItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// HistoryRecord is an immutable snapshot created when an order completes.
// OrderDate is the completion calendar date, not the order's start time.
type HistoryRecord struct {
	ID           string        `json:"id"`
	TableNumber  int           `json:"tableNumber"`
	CustomerName string        `json:"customerName"`
	OrderDate    string        `json:"orderDate"`
	Status       string        `json:"status"`
	Total        float64       `json:"total"`
	Items        []HistoryItem `json:"items"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// OrderStatusCompleted is the only status a history record is written with.
const OrderStatusCompleted = "completed"
