package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// User is an account capable of authenticating and owning content.
type User struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Username    string    `json:"username" gorm:"uniqueIndex;size:150"`
	Email       string    `json:"email" gorm:"uniqueIndex"`
	Password    string    `json:"-"` // Store hashed password, ignore for JSON serialization
	IsStaff     bool      `json:"is_staff" gorm:"default:false"`
	IsSuperuser bool      `json:"is_superuser" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UserCompact is the trimmed author representation embedded in posts,
// comments and notifications.
type UserCompact struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// ToCompact converts a User to its embedded representation
func (u *User) ToCompact() UserCompact {
	return UserCompact{ID: u.ID, Username: u.Username}
}

// RegisterRequest defines the request body for account registration
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=150"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Bio      string `json:"bio,omitempty" validate:"omitempty,max=500"`
}

// LoginRequest defines the request body for credential login
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest defines the request body for refresh-token rotation
type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

// UpdateUserRequest defines the request body for updating an account
type UpdateUserRequest struct {
	Username string `json:"username,omitempty" validate:"omitempty,min=3,max=150"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims.
// TokenType is "access" or "refresh"; refresh tokens carry a unique ID so a
// rotated token can be told apart from the pair it replaced.
type JwtCustomClaims struct {
	UserID    uint   `json:"user_id"`
	Username  string `json:"username"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}
