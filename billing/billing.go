// Package billing computes the bill for an order: subtotal, service charge,
// tax, and grand total. Everything here is pure and stateless; rates come in
// from settings and the line items come in from a table's ledger.
package billing

import "restaurant-pos-api/models"

// Rates is the charge configuration read from settings. TaxRate and
// ServiceChargeRate are percentages (8.5 means 8.5%).
type Rates struct {
	TaxRate              float64 `json:"tax_rate"`
	ServiceChargeRate    float64 `json:"service_charge_rate"`
	ServiceChargeEnabled bool    `json:"service_charge_enabled"`
}

// Bill is the full computed breakdown for an order. No currency rounding is
// performed; formatting is a display concern.
type Bill struct {
	Subtotal      float64 `json:"subtotal"`
	ServiceCharge float64 `json:"service_charge"`
	Tax           float64 `json:"tax"`
	Total         float64 `json:"total"`
}

// Subtotal sums price × quantity over all line items.
func Subtotal(items []models.OrderItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.MenuItem.Price * float64(item.Quantity)
	}
	return sum
}

// ServiceCharge returns the service charge on the given subtotal, or 0 when
// the charge is disabled.
func ServiceCharge(subtotal float64, rates Rates) float64 {
	if !rates.ServiceChargeEnabled {
		return 0
	}
	return subtotal * rates.ServiceChargeRate / 100
}

// Tax returns the tax on the given subtotal. Tax is always applied,
// independent of the service-charge toggle.
func Tax(subtotal float64, rates Rates) float64 {
	return subtotal * rates.TaxRate / 100
}

// Compute derives the full bill for a set of line items.
func Compute(items []models.OrderItem, rates Rates) Bill {
	subtotal := Subtotal(items)
	service := ServiceCharge(subtotal, rates)
	tax := Tax(subtotal, rates)
	return Bill{
		Subtotal:      subtotal,
		ServiceCharge: service,
		Tax:           tax,
		Total:         subtotal + service + tax,
	}
}
