package pos

import (
	"strconv"
	"time"

	"restaurant-pos-api/models"
	"restaurant-pos-api/storage"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// ExportBundle is the full-database backup document.
type ExportBundle struct {
	Settings     *models.Settings  `json:"settings"`
	Tables       []models.Table    `json:"tables"`
	MenuItems    []models.MenuItem `json:"menuItems"`
	Categories   []string          `json:"categories"`
	OrderHistory []historyRow      `json:"orderHistory"`
	Users        []models.User     `json:"users"`
	Roles        []models.Role     `json:"roles"`
	ExportDate   time.Time         `json:"exportDate"`
	Version      string            `json:"version"`
}

const backupVersion = "1.0"

// Export bundles every collection into one document.
func (s *Service) Export() ExportBundle {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings := s.loadSettings()
	return ExportBundle{
		Settings:     &settings,
		Tables:       s.loadTables(),
		MenuItems:    s.loadMenuItems(),
		Categories:   s.loadCategories(),
		OrderHistory: s.loadHistoryRows(),
		Users:        s.loadUsers(),
		Roles:        s.loadRoles(),
		ExportDate:   s.now(),
		Version:      backupVersion,
	}
}

// Import replaces every collection with the bundle's contents. The four core
// collections must all be present for the bundle to be considered valid;
// nothing is written otherwise.
func (s *Service) Import(bundle ExportBundle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if bundle.Settings == nil || bundle.Tables == nil || bundle.MenuItems == nil || bundle.Categories == nil {
		return ErrInvalidBackup
	}
	writes := []struct {
		key   string
		value any
	}{
		{storage.KeySettings, bundle.Settings},
		{storage.KeyTables, bundle.Tables},
		{storage.KeyMenuItems, bundle.MenuItems},
		{storage.KeyCategories, bundle.Categories},
		{storage.KeyOrderHistory, bundle.OrderHistory},
		{storage.KeyUsers, bundle.Users},
		{storage.KeyRoles, bundle.Roles},
	}
	for _, w := range writes {
		if err := s.store.Save(w.key, w.value); err != nil {
			return err
		}
	}
	return nil
}

// Seed inserts the default data for any collection that has never been
// written: settings, categories, eight tables, the starter menu, empty
// history, the built-in roles, and the admin account.
func (s *Service) Seed() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var settings models.Settings
	if err := s.store.Load(storage.KeySettings, &settings); err != nil {
		if err := s.store.Save(storage.KeySettings, defaultSettings()); err != nil {
			return err
		}
	}

	var categories []string
	if err := s.store.Load(storage.KeyCategories, &categories); err != nil {
		defaults := []string{"Appetizers", "Main Course", "Pasta", "Pizza", "Dessert", "Beverage"}
		if err := s.store.Save(storage.KeyCategories, defaults); err != nil {
			return err
		}
	}

	var tables []models.Table
	if err := s.store.Load(storage.KeyTables, &tables); err != nil {
		seats := []int{2, 4, 6, 2, 4, 8, 2, 4}
		defaults := make([]models.Table, 0, len(seats))
		for i, n := range seats {
			defaults = append(defaults, models.Table{
				ID:     strconv.Itoa(i + 1),
				Number: i + 1,
				Seats:  n,
				Status: models.StatusAvailable,
			})
		}
		if err := s.store.Save(storage.KeyTables, defaults); err != nil {
			return err
		}
	}

	var menu []models.MenuItem
	if err := s.store.Load(storage.KeyMenuItems, &menu); err != nil {
		defaults := []models.MenuItem{
			{ID: "1", Name: "Mohinga", Price: 2500, Category: "Appetizers", Description: "Traditional fish noodle soup"},
			{ID: "2", Name: "Samosa Thoke", Price: 2000, Category: "Appetizers", Description: "Samosa salad with chickpeas"},
			{ID: "3", Name: "Shan Noodles", Price: 3500, Category: "Main Course", Description: "Traditional Shan style noodles"},
			{ID: "4", Name: "Tea Leaf Salad", Price: 2800, Category: "Appetizers", Description: "Traditional Myanmar tea leaf salad"},
			{ID: "5", Name: "Coconut Rice", Price: 1500, Category: "Main Course", Description: "Fragrant coconut rice with curry"},
			{ID: "6", Name: "Myanmar Beer", Price: 1200, Category: "Beverage", Description: "Local Myanmar beer"},
		}
		if err := s.store.Save(storage.KeyMenuItems, defaults); err != nil {
			return err
		}
	}

	var rows []historyRow
	if err := s.store.Load(storage.KeyOrderHistory, &rows); err != nil {
		if err := s.store.Save(storage.KeyOrderHistory, []historyRow{}); err != nil {
			return err
		}
	}

	var roles []models.Role
	if err := s.store.Load(storage.KeyRoles, &roles); err != nil {
		roles = defaultRoles()
		if err := s.store.Save(storage.KeyRoles, roles); err != nil {
			return err
		}
	}

	var users []models.User
	if err := s.store.Load(storage.KeyUsers, &users); err != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := models.User{
			ID:           "1",
			Name:         "Admin User",
			Email:        "admin@restaurant.com",
			PasswordHash: string(hash),
			RoleID:       "admin",
			IsActive:     true,
			CreatedAt:    s.now(),
		}
		if err := s.store.Save(storage.KeyUsers, []models.User{admin}); err != nil {
			return err
		}
		logrus.Info("pos: seeded default admin account")
	}
	return nil
}

func defaultRoles() []models.Role {
	return []models.Role{
		{ID: "admin", Name: "Admin", Permissions: models.AllPermissions},
		{ID: "manager", Name: "Manager", Permissions: []models.Permission{
			models.PermCreateOrder, models.PermCompleteOrder, models.PermManageTables,
			models.PermManageMenu, models.PermViewReports,
		}},
		{ID: "cashier", Name: "Cashier", Permissions: []models.Permission{
			models.PermCreateOrder, models.PermCompleteOrder, models.PermViewReports,
		}},
		{ID: "waiter", Name: "Waiter", Permissions: []models.Permission{
			models.PermCreateOrder,
		}},
	}
}
