package entity

import "time"

// Roles de usuario del panel de administración.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// User es un usuario interno del panel (no un cliente).
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
