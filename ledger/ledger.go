// Package ledger holds the working collection of order line items attached to
// one occupied table. The collection is an ordered slice: insertion order is
// preserved because the order summary iterates it for display.
package ledger

import (
	"restaurant-pos-api/models"

	"github.com/google/uuid"
)

// Add merges the menu item into the ledger. If a line already references the
// same menu item id its quantity goes up by one, otherwise a new line with
// quantity 1 is appended. Returns the updated ledger.
func Add(items []models.OrderItem, menuItem models.MenuItem) []models.OrderItem {
	for i, item := range items {
		if item.MenuItem.ID == menuItem.ID {
			items[i].Quantity++
			return items
		}
	}
	return append(items, models.OrderItem{
		ID:       uuid.NewString(),
		MenuItem: menuItem,
		Quantity: 1,
	})
}

// Decrement lowers the quantity of the line referencing menuItemID by one,
// removing the line entirely when it reaches zero. Absent ids are a no-op,
// not an error.
func Decrement(items []models.OrderItem, menuItemID string) []models.OrderItem {
	for i, item := range items {
		if item.MenuItem.ID != menuItemID {
			continue
		}
		if item.Quantity > 1 {
			items[i].Quantity--
			return items
		}
		return append(items[:i], items[i+1:]...)
	}
	return items
}

// QuantityOf returns the current quantity for a menu item, or 0 if absent.
func QuantityOf(items []models.OrderItem, menuItemID string) int {
	for _, item := range items {
		if item.MenuItem.ID == menuItemID {
			return item.Quantity
		}
	}
	return 0
}
