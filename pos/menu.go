package pos

import (
	"sort"

	"restaurant-pos-api/models"
	"restaurant-pos-api/storage"

	"github.com/google/uuid"
)

func (s *Service) MenuItems() []models.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadMenuItems()
}

func (s *Service) AddMenuItem(item models.MenuItem) (models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = uuid.NewString()
	items := append(s.loadMenuItems(), item)
	if err := s.store.Save(storage.KeyMenuItems, items); err != nil {
		return models.MenuItem{}, err
	}
	return item, nil
}

func (s *Service) UpdateMenuItem(updated models.MenuItem) (models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.loadMenuItems()
	for i, item := range items {
		if item.ID == updated.ID {
			items[i] = updated
			if err := s.store.Save(storage.KeyMenuItems, items); err != nil {
				return models.MenuItem{}, err
			}
			return updated, nil
		}
	}
	return models.MenuItem{}, ErrMenuItemNotFound
}

func (s *Service) DeleteMenuItem(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.loadMenuItems()
	for i, item := range items {
		if item.ID == id {
			items = append(items[:i], items[i+1:]...)
			return s.store.Save(storage.KeyMenuItems, items)
		}
	}
	return ErrMenuItemNotFound
}

func (s *Service) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadCategories()
}

// AddCategory inserts a category name, keeping the list deduplicated and
// sorted. Adding an existing name is a no-op.
func (s *Service) AddCategory(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	categories := s.loadCategories()
	for _, existing := range categories {
		if existing == name {
			return nil
		}
	}
	categories = append(categories, name)
	sort.Strings(categories)
	return s.store.Save(storage.KeyCategories, categories)
}

func (s *Service) DeleteCategory(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	categories := s.loadCategories()
	kept := categories[:0]
	for _, existing := range categories {
		if existing != name {
			kept = append(kept, existing)
		}
	}
	return s.store.Save(storage.KeyCategories, kept)
}

func (s *Service) Settings() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadSettings()
}

// SettingsPatch carries only the fields the settings form actually changed;
// nil fields keep their stored value.
type SettingsPatch struct {
	RestaurantName       *string  `json:"restaurantName"`
	Description          *string  `json:"description"`
	Logo                 *string  `json:"logo"`
	Currency             *string  `json:"currency"`
	TaxRate              *float64 `json:"taxRate"`
	ServiceCharge        *float64 `json:"serviceCharge"`
	ServiceChargeEnabled *bool    `json:"serviceChargeEnabled"`
	Theme                *string  `json:"theme"`
	Language             *string  `json:"language"`
}

func (s *Service) UpdateSettings(patch SettingsPatch) (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings := s.loadSettings()
	if patch.RestaurantName != nil {
		settings.RestaurantName = *patch.RestaurantName
	}
	if patch.Description != nil {
		settings.Description = *patch.Description
	}
	if patch.Logo != nil {
		settings.Logo = *patch.Logo
	}
	if patch.Currency != nil {
		settings.Currency = *patch.Currency
	}
	if patch.TaxRate != nil {
		settings.TaxRate = *patch.TaxRate
	}
	if patch.ServiceCharge != nil {
		settings.ServiceCharge = *patch.ServiceCharge
	}
	if patch.ServiceChargeEnabled != nil {
		settings.ServiceChargeEnabled = *patch.ServiceChargeEnabled
	}
	if patch.Theme != nil {
		settings.Theme = *patch.Theme
	}
	if patch.Language != nil {
		settings.Language = *patch.Language
	}
	if err := s.store.Save(storage.KeySettings, settings); err != nil {
		return models.Settings{}, err
	}
	return settings, nil
}
