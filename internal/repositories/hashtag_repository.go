package repositories

import (
	"errors"

	"github.com/sajidspace/connectly/backend/internal/models"
	"gorm.io/gorm"
)

// HashtagRepository defines the interface for hashtag data operations
type HashtagRepository interface {
	GetOrCreate(name string) (*models.Hashtag, error)
	GetByName(name string) (*models.Hashtag, error)
	ListPostsByTag(name string, offset, limit int) ([]models.Post, error)
}

// PostgresHashtagRepository implements HashtagRepository for PostgreSQL
type PostgresHashtagRepository struct {
	db *gorm.DB
}

// NewPostgresHashtagRepository creates a new PostgresHashtagRepository
func NewPostgresHashtagRepository(db *gorm.DB) *PostgresHashtagRepository {
	return &PostgresHashtagRepository{db: db}
}

// GetOrCreate returns the hashtag row for name, creating it on first use.
// Callers pass the name already lowercased and without the leading '#'.
func (r *PostgresHashtagRepository) GetOrCreate(name string) (*models.Hashtag, error) {
	var tag models.Hashtag
	err := r.db.Where("name = ?", name).First(&tag).Error
	if err == nil {
		return &tag, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	tag = models.Hashtag{Name: name}
	if err := r.db.Create(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *PostgresHashtagRepository) GetByName(name string) (*models.Hashtag, error) {
	var tag models.Hashtag
	if err := r.db.Where("name = ?", name).First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// ListPostsByTag returns active public posts carrying the tag, newest first
func (r *PostgresHashtagRepository) ListPostsByTag(name string, offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.
		Joins("JOIN post_hashtags ON post_hashtags.post_id = posts.id").
		Joins("JOIN hashtags ON hashtags.id = post_hashtags.hashtag_id").
		Where("hashtags.name = ? AND posts.is_active = ? AND posts.visibility = ?",
			name, true, models.VisibilityPublic).
		Order("posts.created_at DESC").Offset(offset).Limit(limit).
		Find(&posts).Error
	return posts, err
}
