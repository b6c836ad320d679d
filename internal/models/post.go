package models

import "time"

// Visibility values controlling who may see a post.
const (
	VisibilityPublic    = "public"
	VisibilityFollowers = "followers"
	VisibilityPrivate   = "private"
)

// Post represents a user-authored post
type Post struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	AuthorID    uint      `json:"author_id" gorm:"index"`
	Content     string    `json:"content"`
	ImageURL    string    `json:"image_url,omitempty"`
	Visibility  string    `json:"visibility" gorm:"size:10;default:'public';index"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	SharesCount int       `json:"shares_count" gorm:"default:0"`
	Hashtags    []Hashtag `json:"hashtags,omitempty" gorm:"many2many:post_hashtags;"`
	Mentions    []User    `json:"mentions,omitempty" gorm:"many2many:post_mentions;"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Content    string `json:"content" validate:"required,min=1,max=2000"`
	ImageURL   string `json:"image_url,omitempty" validate:"omitempty,url"`
	Visibility string `json:"visibility,omitempty" validate:"omitempty,oneof=public followers private"`
}

// UpdatePostRequest defines the request body for updating an existing post
type UpdatePostRequest struct {
	Content    string `json:"content,omitempty" validate:"omitempty,min=1,max=2000"`
	ImageURL   string `json:"image_url,omitempty" validate:"omitempty,url"`
	Visibility string `json:"visibility,omitempty" validate:"omitempty,oneof=public followers private"`
}
