package repositories

import (
	"github.com/sajidspace/connectly/backend/internal/models"
	"gorm.io/gorm"
)

// CommentLikeRepository defines the interface for comment-like data operations
type CommentLikeRepository interface {
	CreateLike(like *models.CommentLike) error
	DeleteLike(commentID, userID uint) error
	HasUserLikedComment(commentID, userID uint) (bool, error)
	GetLikesCountByCommentID(commentID uint) (int64, error)
}

// PostgresCommentLikeRepository implements CommentLikeRepository for PostgreSQL
type PostgresCommentLikeRepository struct {
	db *gorm.DB
}

// NewPostgresCommentLikeRepository creates a new PostgresCommentLikeRepository
func NewPostgresCommentLikeRepository(db *gorm.DB) *PostgresCommentLikeRepository {
	return &PostgresCommentLikeRepository{db: db}
}

func (r *PostgresCommentLikeRepository) CreateLike(like *models.CommentLike) error {
	return r.db.Create(like).Error
}

func (r *PostgresCommentLikeRepository) DeleteLike(commentID, userID uint) error {
	res := r.db.Where("comment_id = ? AND user_id = ?", commentID, userID).Delete(&models.CommentLike{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PostgresCommentLikeRepository) HasUserLikedComment(commentID, userID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.CommentLike{}).Where("comment_id = ? AND user_id = ?", commentID, userID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresCommentLikeRepository) GetLikesCountByCommentID(commentID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.CommentLike{}).Where("comment_id = ?", commentID).Count(&count).Error
	return count, err
}
