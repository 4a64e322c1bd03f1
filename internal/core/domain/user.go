package domain

import (
	"strings"
	"time"
)

// Global roles. Owner bypasses all concession scoping; partner and admin
// only see the concessions they are explicitly assigned to.
const (
	RoleOwner   = "owner"
	RolePartner = "partner"
	RoleAdmin   = "admin"
)

// NormalizeRole lowercases and trims a role string. Applied once at the
// user-store boundary (write and read) so stored roles always match the enum.
func NormalizeRole(role string) string {
	return strings.ToLower(strings.TrimSpace(role))
}

// ValidRole reports whether role is one of the known global roles.
func ValidRole(role string) bool {
	switch role {
	case RoleOwner, RolePartner, RoleAdmin:
		return true
	}
	return false
}

// User models an authenticated actor in the system.
//
// Concessions holds plain concession ids only — never populated concession
// documents. Anything needing concession details must fetch them explicitly.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Concessions  []string  `json:"concessions"`
	Phone        string    `json:"phone,omitempty"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsOwner reports whether the user holds the unrestricted owner role.
func (u *User) IsOwner() bool {
	return u.Role == RoleOwner
}
