package entity

import (
	"time"

	"github.com/google/uuid"
)

// AdminRole represents the privilege level of an admin account.
type AdminRole string

const (
	// AdminRoleSuperAdmin indicates the bootstrap administrator role.
	AdminRoleSuperAdmin AdminRole = "super_admin"
	// AdminRoleModerator indicates a moderation-only role.
	AdminRoleModerator AdminRole = "moderator"
)

// String returns the string representation of the AdminRole.
func (r AdminRole) String() string {
	return string(r)
}

// Admin is a dashboard account with moderation privileges. Passwords are
// stored only as bcrypt hashes; live sessions are separate Session records.
type Admin struct {
	ID           uuid.UUID // The unique ID for this admin account.
	Email        string    // Login identifier, unique across admins.
	Name         string    // Display name shown in the dashboard.
	PasswordHash string    // bcrypt hash of the admin's password.
	Role         AdminRole // Privilege level.
	LastLogin    time.Time // Timestamp of the most recent successful login.
	CreatedAt    time.Time // Timestamp of account creation.
}

// AdminProfile is the public projection of an Admin, safe to return to
// clients. It never carries credential material.
type AdminProfile struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Role  AdminRole `json:"role"`
}

// Profile returns the admin's public projection.
func (a *Admin) Profile() *AdminProfile {
	return &AdminProfile{
		ID:    a.ID,
		Email: a.Email,
		Name:  a.Name,
		Role:  a.Role,
	}
}
