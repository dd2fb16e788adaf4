package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role is the closed set of roles a user can hold. Exactly one per user.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// ParseRole maps a raw string onto the role enumeration.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

type User struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         Role      `db:"role" json:"role"`
	Bio          string    `db:"bio" json:"bio"`
	Avatar       string    `db:"avatar" json:"avatar"`
	IsActive     bool      `db:"is_active" json:"isActive"`
	LastActive   time.Time `db:"last_active" json:"lastActive"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// PublicProfile is the client-facing projection of a user. It must never
// carry the password hash.
type PublicProfile struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       Role      `json:"role"`
	Bio        string    `json:"bio"`
	Avatar     string    `json:"avatar"`
	JoinDate   time.Time `json:"joinDate"`
	LastActive time.Time `json:"lastActive"`
}

func (u *User) PublicProfile() PublicProfile {
	return PublicProfile{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		Bio:        u.Bio,
		Avatar:     u.Avatar,
		JoinDate:   u.CreatedAt,
		LastActive: u.LastActive,
	}
}

// Claims defines the structure of the JWT claims. The role is snapshotted at
// issuance and trusted until the token expires.
type Claims struct {
	UserID string `json:"user_id"`
	Role   Role   `json:"role"`
	jwt.RegisteredClaims
}
