package services

import (
	"github.com/sajidspace/connectly/backend/internal/models"
	"github.com/sajidspace/connectly/backend/internal/repositories"
)

// EngagementService owns likes, comments and shares together with their
// notification side effects. Toggles are explicit two-state transitions
// returning the state they ended in.
type EngagementService struct {
	postRepository        repositories.PostRepository
	commentRepository     repositories.CommentRepository
	likeRepository        repositories.LikeRepository
	commentLikeRepository repositories.CommentLikeRepository
	notifier              *Notifier
}

// NewEngagementService creates a new EngagementService
func NewEngagementService(
	postRepo repositories.PostRepository,
	commentRepo repositories.CommentRepository,
	likeRepo repositories.LikeRepository,
	commentLikeRepo repositories.CommentLikeRepository,
	notifier *Notifier,
) *EngagementService {
	return &EngagementService{
		postRepository:        postRepo,
		commentRepository:     commentRepo,
		likeRepository:        likeRepo,
		commentLikeRepository: commentLikeRepo,
		notifier:              notifier,
	}
}

// ToggleLike flips userID's like on the post and returns true when the post
// is liked afterwards. Liking someone else's post notifies the author;
// unliking never notifies.
func (s *EngagementService) ToggleLike(userID uint, post *models.Post) (bool, error) {
	liked, err := s.likeRepository.HasUserLikedPost(post.ID, userID)
	if err != nil {
		return false, err
	}

	if liked {
		if err := s.likeRepository.DeleteLike(post.ID, userID); err != nil {
			return true, err
		}
		return false, nil
	}

	if err := s.likeRepository.CreateLike(&models.Like{PostID: post.ID, UserID: userID}); err != nil {
		return false, err
	}
	if post.AuthorID != userID {
		if err := s.notifier.Like(userID, post.AuthorID, post.ID); err != nil {
			return true, err
		}
	}
	return true, nil
}

// ToggleCommentLike flips userID's like on the comment and returns true when
// the comment is liked afterwards
func (s *EngagementService) ToggleCommentLike(userID uint, comment *models.Comment) (bool, error) {
	liked, err := s.commentLikeRepository.HasUserLikedComment(comment.ID, userID)
	if err != nil {
		return false, err
	}

	if liked {
		if err := s.commentLikeRepository.DeleteLike(comment.ID, userID); err != nil {
			return true, err
		}
		return false, nil
	}

	if err := s.commentLikeRepository.CreateLike(&models.CommentLike{CommentID: comment.ID, UserID: userID}); err != nil {
		return false, err
	}
	return true, nil
}

// AddComment persists a comment on the post and notifies the post's author
// unless they commented on their own post
func (s *EngagementService) AddComment(userID uint, post *models.Post, content string) (*models.Comment, error) {
	comment := &models.Comment{
		PostID:   post.ID,
		UserID:   userID,
		Content:  CleanText(content),
		IsActive: true,
	}
	if err := s.commentRepository.CreateComment(comment); err != nil {
		return nil, err
	}
	if post.AuthorID != userID {
		if err := s.notifier.Comment(userID, post.AuthorID, post.ID, comment.ID); err != nil {
			return comment, err
		}
	}
	return comment, nil
}

// Share increments the post's share counter. Every call counts; sharing is
// deliberately not idempotent. Sharing someone else's post notifies the author.
func (s *EngagementService) Share(userID uint, post *models.Post) error {
	if err := s.postRepository.IncrementSharesCount(post.ID); err != nil {
		return err
	}
	if post.AuthorID != userID {
		return s.notifier.Share(userID, post.AuthorID, post.ID)
	}
	return nil
}
