package models

import "time"

// NotificationType discriminates what social action a notification records
// and which reference column it carries.
type NotificationType string

const (
	NotificationFollow  NotificationType = "follow"
	NotificationLike    NotificationType = "like"
	NotificationComment NotificationType = "comment"
	NotificationMention NotificationType = "mention"
	NotificationShare   NotificationType = "share"
	NotificationMessage NotificationType = "message"
)

// Notification records a social action taken by Sender in relation to
// Recipient. Which reference columns are set is keyed by Type; rows are built
// through the services.Notifier constructors so the references always match
// the type.
type Notification struct {
	ID          uint             `json:"id" gorm:"primaryKey"`
	RecipientID uint             `json:"recipient_id" gorm:"index"`
	SenderID    uint             `json:"sender_id" gorm:"index"`
	Type        NotificationType `json:"type" gorm:"size:20;index"`
	PostID      *uint            `json:"post_id,omitempty"`
	CommentID   *uint            `json:"comment_id,omitempty"`
	MessageID   *uint            `json:"message_id,omitempty"`
	IsRead      bool             `json:"is_read" gorm:"default:false;index"`
	CreatedAt   time.Time        `json:"created_at" gorm:"index"`
}
