package repositories

import (
	"github.com/sajidspace/connectly/backend/internal/models"
	"gorm.io/gorm"
)

// MessageRepository defines the interface for private-message data operations
type MessageRepository interface {
	CreateMessage(message *models.Message) error
	GetMessageByID(id uint) (*models.Message, error)
	ListForUser(userID uint, offset, limit int) ([]models.Message, error)
	MarkRead(id uint) error
	DeleteMessage(id uint) error
}

// PostgresMessageRepository implements MessageRepository for PostgreSQL
type PostgresMessageRepository struct {
	db *gorm.DB
}

// NewPostgresMessageRepository creates a new PostgresMessageRepository
func NewPostgresMessageRepository(db *gorm.DB) *PostgresMessageRepository {
	return &PostgresMessageRepository{db: db}
}

func (r *PostgresMessageRepository) CreateMessage(message *models.Message) error {
	return r.db.Create(message).Error
}

func (r *PostgresMessageRepository) GetMessageByID(id uint) (*models.Message, error) {
	var message models.Message
	if err := r.db.First(&message, id).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

// ListForUser returns messages where the user is sender or recipient, newest first
func (r *PostgresMessageRepository) ListForUser(userID uint, offset, limit int) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Where("sender_id = ? OR recipient_id = ?", userID, userID).
		Order("created_at DESC, id DESC").Offset(offset).Limit(limit).
		Find(&messages).Error
	return messages, err
}

func (r *PostgresMessageRepository) MarkRead(id uint) error {
	return r.db.Model(&models.Message{}).Where("id = ?", id).Update("is_read", true).Error
}

func (r *PostgresMessageRepository) DeleteMessage(id uint) error {
	res := r.db.Delete(&models.Message{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
