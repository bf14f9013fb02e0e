package models

import "time"

// Permission gates access to a group of POS actions. The set is closed so a
// typo in a route or role definition fails to compile instead of silently
// denying access.
type Permission string

const (
	PermCreateOrder    Permission = "pos_create_order"
	PermCompleteOrder  Permission = "pos_complete_order"
	PermManageTables   Permission = "table_manage"
	PermManageMenu     Permission = "menu_manage"
	PermManageSettings Permission = "settings_manage"
	PermViewReports    Permission = "reports_view"
	PermManageUsers    Permission = "user_manage"
)

// AllPermissions lists every known permission, used for the admin role seed.
var AllPermissions = []Permission{
	PermCreateOrder,
	PermCompleteOrder,
	PermManageTables,
	PermManageMenu,
	PermManageSettings,
	PermViewReports,
	PermManageUsers,
}

// Role names a permission set assignable to users.
type Role struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Permissions []Permission `json:"permissions"`
}

// Allows reports whether the role's permission set contains p.
func (r Role) Allows(p Permission) bool {
	for _, have := range r.Permissions {
		if have == p {
			return true
		}
	}
	return false
}

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	RoleID       string    `json:"roleId"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}
