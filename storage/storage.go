// Package storage is the persistence port for the POS. The database is a flat
// namespace of collections, each stored as one JSON value under a fixed key
// and always read and replaced as a whole — that whole-value replacement is
// the unit of atomicity.
package storage

import "errors"

// Collection keys. Kept stable so existing databases keep loading.
const (
	KeySettings     = "restaurant_pos_settings"
	KeyTables       = "restaurant_pos_tables"
	KeyMenuItems    = "restaurant_pos_menu_items"
	KeyCategories   = "restaurant_pos_categories"
	KeyOrderHistory = "restaurant_pos_order_history"
	KeyUsers        = "restaurant_pos_users"
	KeyRoles        = "restaurant_pos_roles"
)

// ErrNotFound is returned by Load when the key has never been written, or
// when the stored value is unreadable; callers substitute their defaults.
var ErrNotFound = errors.New("storage: collection not found")

// Store loads and saves whole collections by key. Implementations must treat
// each Save as a full replacement of the key's value.
type Store interface {
	Load(key string, out any) error
	Save(key string, value any) error
}
