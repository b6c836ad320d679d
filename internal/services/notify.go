package services

import (
	"github.com/sajidspace/connectly/backend/internal/models"
	"github.com/sajidspace/connectly/backend/internal/repositories"
)

// Notifier writes notification rows for social actions. Each method pairs a
// notification type with exactly the reference column that type carries, so
// no caller can produce a row whose reference disagrees with its type.
type Notifier struct {
	notificationRepository repositories.NotificationRepository
}

// NewNotifier creates a new Notifier
func NewNotifier(notifRepo repositories.NotificationRepository) *Notifier {
	return &Notifier{notificationRepository: notifRepo}
}

// Follow records that sender started following recipient
func (n *Notifier) Follow(senderID, recipientID uint) error {
	return n.notificationRepository.CreateNotification(&models.Notification{
		RecipientID: recipientID,
		SenderID:    senderID,
		Type:        models.NotificationFollow,
	})
}

// Like records that sender liked recipient's post
func (n *Notifier) Like(senderID, recipientID, postID uint) error {
	return n.notificationRepository.CreateNotification(&models.Notification{
		RecipientID: recipientID,
		SenderID:    senderID,
		Type:        models.NotificationLike,
		PostID:      &postID,
	})
}

// Comment records that sender commented on recipient's post. The row
// references the post; the comment id rides along so the inbox can link
// straight to it.
func (n *Notifier) Comment(senderID, recipientID, postID, commentID uint) error {
	return n.notificationRepository.CreateNotification(&models.Notification{
		RecipientID: recipientID,
		SenderID:    senderID,
		Type:        models.NotificationComment,
		PostID:      &postID,
		CommentID:   &commentID,
	})
}

// Mention records that sender mentioned recipient in a post
func (n *Notifier) Mention(senderID, recipientID, postID uint) error {
	return n.notificationRepository.CreateNotification(&models.Notification{
		RecipientID: recipientID,
		SenderID:    senderID,
		Type:        models.NotificationMention,
		PostID:      &postID,
	})
}

// Share records that sender shared recipient's post
func (n *Notifier) Share(senderID, recipientID, postID uint) error {
	return n.notificationRepository.CreateNotification(&models.Notification{
		RecipientID: recipientID,
		SenderID:    senderID,
		Type:        models.NotificationShare,
		PostID:      &postID,
	})
}

// Message records that sender sent recipient a private message
func (n *Notifier) Message(senderID, recipientID, messageID uint) error {
	return n.notificationRepository.CreateNotification(&models.Notification{
		RecipientID: recipientID,
		SenderID:    senderID,
		Type:        models.NotificationMessage,
		MessageID:   &messageID,
	})
}
