package models

import "time"

// Message is a directed private text message between two users
type Message struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	SenderID    uint      `json:"sender_id" gorm:"index"`
	RecipientID uint      `json:"recipient_id" gorm:"index"`
	Content     string    `json:"content"`
	IsRead      bool      `json:"is_read" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}

// SendMessageRequest defines the request body for sending a message
type SendMessageRequest struct {
	RecipientID uint   `json:"recipient_id" validate:"required"`
	Content     string `json:"content" validate:"required,min=1,max=2000"`
}
