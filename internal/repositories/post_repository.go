package repositories

import (
	"github.com/sajidspace/connectly/backend/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(post *models.Post) error
	GetPostByID(id uint) (*models.Post, error)
	UpdatePost(post *models.Post) error
	DeletePost(id uint) error
	ListPublic(offset, limit int) ([]models.Post, error)
	ListVisible(viewerID uint, followingIDs []uint, offset, limit int) ([]models.Post, error)
	FeedFor(viewerID uint, followingIDs []uint, offset, limit int) ([]models.Post, error)
	ListOwnOrPublic(viewerID uint, offset, limit int) ([]models.Post, error)
	ReplaceHashtags(post *models.Post, hashtags []models.Hashtag) error
	ReplaceMentions(post *models.Post, users []models.User) error
	IncrementSharesCount(id uint) error
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

func (r *PostgresPostRepository) CreatePost(post *models.Post) error {
	return r.db.Create(post).Error
}

func (r *PostgresPostRepository) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.Preload("Hashtags").Preload("Mentions").First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *PostgresPostRepository) UpdatePost(post *models.Post) error {
	return r.db.Save(post).Error
}

func (r *PostgresPostRepository) DeletePost(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var commentIDs []uint
		if err := tx.Model(&models.Comment{}).Where("post_id = ?", id).Pluck("id", &commentIDs).Error; err != nil {
			return err
		}
		if len(commentIDs) > 0 {
			if err := tx.Where("comment_id IN ?", commentIDs).Delete(&models.CommentLike{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM post_hashtags WHERE post_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM post_mentions WHERE post_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Post{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// ListPublic returns active public posts, newest first
func (r *PostgresPostRepository) ListPublic(offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Where("visibility = ? AND is_active = ?", models.VisibilityPublic, true).
		Order("created_at DESC").Offset(offset).Limit(limit).
		Find(&posts).Error
	return posts, err
}

// ListVisible returns every active post the viewer may see: public posts,
// their own posts, and followers-only posts of accounts they follow.
func (r *PostgresPostRepository) ListVisible(viewerID uint, followingIDs []uint, offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	q := r.db.Where("is_active = ?", true).
		Where(r.db.
			Where("visibility = ?", models.VisibilityPublic).
			Or("author_id = ?", viewerID).
			Or("author_id IN ? AND visibility = ?", followingIDs, models.VisibilityFollowers))
	err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&posts).Error
	return posts, err
}

// FeedFor returns active posts authored by the viewer or by the accounts in
// followingIDs, newest first. Followed authors contribute their public and
// followers-only posts; private posts surface only for the viewer themself.
func (r *PostgresPostRepository) FeedFor(viewerID uint, followingIDs []uint, offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	q := r.db.Where("is_active = ?", true).
		Where(r.db.
			Where("author_id = ?", viewerID).
			Or("author_id IN ? AND visibility IN ?", followingIDs,
				[]string{models.VisibilityPublic, models.VisibilityFollowers}))
	err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&posts).Error
	return posts, err
}

// ListOwnOrPublic is the fallback feed for a viewer with no profile row:
// their own posts plus every public post.
func (r *PostgresPostRepository) ListOwnOrPublic(viewerID uint, offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	q := r.db.Where("is_active = ?", true).
		Where(r.db.
			Where("author_id = ?", viewerID).
			Or("visibility = ?", models.VisibilityPublic))
	err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&posts).Error
	return posts, err
}

func (r *PostgresPostRepository) ReplaceHashtags(post *models.Post, hashtags []models.Hashtag) error {
	return r.db.Model(post).Association("Hashtags").Replace(hashtags)
}

func (r *PostgresPostRepository) ReplaceMentions(post *models.Post, users []models.User) error {
	return r.db.Model(post).Association("Mentions").Replace(users)
}

// IncrementSharesCount applies the increment in a single UPDATE so
// concurrent shares never lose a count to a read-modify-write race.
func (r *PostgresPostRepository) IncrementSharesCount(id uint) error {
	res := r.db.Model(&models.Post{}).Where("id = ?", id).
		UpdateColumn("shares_count", gorm.Expr("shares_count + ?", 1))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
