package models

// User captures application-facing fields for a registered identity.
// Users are never hard-deleted; admins flip IsActive instead.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`
	PasswordHash string `json:"-"`
	CreatedAt    string `json:"created_at"`
	IsActive     bool   `json:"is_active"`
}
