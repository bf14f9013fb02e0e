// Package pos owns the restaurant state: tables, menu, categories, settings,
// order history, and users. Every operation the POS surface exposes lives
// here; the HTTP handlers are a thin wrapper and the persistence store is an
// injected port, so the whole lifecycle is testable without a database.
package pos

import (
	"errors"
	"sync"
	"time"

	"restaurant-pos-api/models"
	"restaurant-pos-api/orderid"
	"restaurant-pos-api/storage"
)

// Rejections and lookup failures surfaced to the operator. A rejection never
// mutates state: the operation refuses up front or completes in full.
var (
	ErrTableNotFound      = errors.New("table not found")
	ErrMenuItemNotFound   = errors.New("menu item not found")
	ErrCustomerRequired   = errors.New("customer name is required")
	ErrEmptyOrder         = errors.New("order has no items")
	ErrTableHasOpenOrder  = errors.New("table has an open order; complete or cancel it first")
	ErrNoOrderSession     = errors.New("table has no active ordering session")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountInactive    = errors.New("account is inactive")
	ErrInvalidBackup      = errors.New("backup is missing required collections")
)

// Service serializes every mutation behind one mutex. The source system was a
// single operator in a single process; the mutex is the minimal concurrency
// control an HTTP server needs on top of that model.
type Service struct {
	mu    sync.Mutex
	store storage.Store
	ids   *orderid.Generator
	now   func() time.Time
}

func NewService(store storage.Store) *Service {
	return &Service{
		store: store,
		ids:   orderid.New(),
		now:   time.Now,
	}
}

// SetClock pins the service and order-id clock, for tests.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
	s.ids = &orderid.Generator{Now: now}
}

const defaultCustomerName = "Walk-in Customer"

func defaultSettings() models.Settings {
	return models.Settings{
		ID:                   1,
		RestaurantName:       "Restaurant POS",
		Description:          "Professional Point of Sale System",
		Currency:             "MMK",
		TaxRate:              5,
		ServiceCharge:        0,
		ServiceChargeEnabled: false,
		Theme:                "light",
		Language:             "en",
	}
}

// Collection loaders. A missing or unreadable collection degrades to its
// empty default; the store has already logged the fault.

func (s *Service) loadTables() []models.Table {
	var tables []models.Table
	if err := s.store.Load(storage.KeyTables, &tables); err != nil {
		return []models.Table{}
	}
	return tables
}

func (s *Service) loadMenuItems() []models.MenuItem {
	var items []models.MenuItem
	if err := s.store.Load(storage.KeyMenuItems, &items); err != nil {
		return []models.MenuItem{}
	}
	return items
}

func (s *Service) loadCategories() []string {
	var categories []string
	if err := s.store.Load(storage.KeyCategories, &categories); err != nil {
		return []string{}
	}
	return categories
}

func (s *Service) loadSettings() models.Settings {
	var settings models.Settings
	if err := s.store.Load(storage.KeySettings, &settings); err != nil {
		return defaultSettings()
	}
	return settings
}

func (s *Service) loadUsers() []models.User {
	var users []models.User
	if err := s.store.Load(storage.KeyUsers, &users); err != nil {
		return []models.User{}
	}
	return users
}

func (s *Service) loadRoles() []models.Role {
	var roles []models.Role
	if err := s.store.Load(storage.KeyRoles, &roles); err != nil {
		return []models.Role{}
	}
	return roles
}
