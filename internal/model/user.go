package model

import (
	"time"
)

const (
	RolePatient   = "patient"
	RoleDoctor    = "doctor"
	RoleShopOwner = "shop_owner"
	RoleAdmin     = "admin"
)

type User struct {
	ID         string     `db:"id" json:"id"`
	Name       string     `db:"name" json:"name"`
	Email      string     `db:"email" json:"email,omitempty"`
	Role       string     `db:"role" json:"role"`
	AvatarURL  string     `db:"avatar_url" json:"avatar_url,omitempty"`
	ApprovedAt *time.Time `db:"approved_at" json:"approved_at,omitempty"`
	DeletedAt  *time.Time `db:"deleted_at" json:"-"`
}

// IsVerified reports whether the account has passed admin approval
// and has not been soft-deleted.
func (u *User) IsVerified() bool {
	return u.ApprovedAt != nil && u.DeletedAt == nil
}

type UserParams struct {
	ID        string `db:"id"`
	Name      string `db:"name"`
	Email     string `db:"email"`
	Role      string `db:"role"`
	AvatarURL string `db:"avatar_url"`
}
