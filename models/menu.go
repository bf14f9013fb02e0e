package models

// MenuItem is a sellable dish or drink. Order line items reference menu items
// by id and read the price live at calculation time.
type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Description string  `json:"description,omitempty"`
	Image       string  `json:"image,omitempty"`
}

// Settings is the single restaurant-wide configuration object. TaxRate and
// ServiceCharge are percentages; tax is always applied while the service
// charge is gated by ServiceChargeEnabled.
type Settings struct {
	ID                   int     `json:"id"`
	RestaurantName       string  `json:"restaurantName"`
	Description          string  `json:"description,omitempty"`
	Logo                 string  `json:"logo,omitempty"`
	Currency             string  `json:"currency"`
	TaxRate              float64 `json:"taxRate"`
	ServiceCharge        float64 `json:"serviceCharge"`
	ServiceChargeEnabled bool    `json:"serviceChargeEnabled"`
	Theme                string  `json:"theme"`
	Language             string  `json:"language"`
}
