package models

import "time"

// TableStatus represents all possible states of a dining table
type TableStatus string

const (
	StatusAvailable TableStatus = "available"
	StatusOccupied  TableStatus = "occupied"
	StatusReserved  TableStatus = "reserved"
)

// Valid reports whether s is one of the three known statuses.
func (s TableStatus) Valid() bool {
	return s == StatusAvailable || s == StatusOccupied || s == StatusReserved
}

// Table is a physical seating unit tracked through the
// available/occupied/reserved cycle. Order fields are only populated while an
// order is in progress; OrderTotal is a cached value recomputed from the
// ledger whenever it changes, never maintained by hand.
type Table struct {
	ID              string      `json:"id"`
	Number          int         `json:"number"`
	Seats           int         `json:"seats"`
	Status          TableStatus `json:"status"`
	Customer        string      `json:"customer,omitempty"`
	OrderID         string      `json:"orderId,omitempty"`
	OrderItems      []OrderItem `json:"orderItems"`
	OrderTotal      *float64    `json:"orderTotal,omitempty"`
	ReservationTime *time.Time  `json:"reservationTime,omitempty"`
}

// HasOpenOrder reports whether the table carries any order line items.
func (t Table) HasOpenOrder() bool {
	return len(t.OrderItems) > 0
}
