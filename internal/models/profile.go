package models

import "time"

// Profile is the social-facing extension of a User. Every user owns exactly
// one profile, created together with the account; it is never deleted on its
// own, only as part of the owning user's cascade.
type Profile struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"uniqueIndex"`
	Bio        string    `json:"bio" gorm:"size:500"`
	AvatarURL  string    `json:"avatar_url"`
	IsVerified bool      `json:"is_verified" gorm:"default:false"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// UpdateProfileRequest defines the request body for updating a profile
type UpdateProfileRequest struct {
	Bio       string `json:"bio,omitempty" validate:"omitempty,max=500"`
	AvatarURL string `json:"avatar_url,omitempty" validate:"omitempty,url"`
}
