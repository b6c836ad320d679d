package services

import (
	"errors"

	"github.com/sajidspace/connectly/backend/internal/models"
	"github.com/sajidspace/connectly/backend/internal/repositories"
	"gorm.io/gorm"
)

// FeedService derives the time-ordered post view from the follow graph and
// the visibility rules. Every call materializes from current state; there is
// no cache and no cursor beyond offset windowing.
type FeedService struct {
	postRepository    repositories.PostRepository
	followRepository  repositories.FollowRepository
	profileRepository repositories.ProfileRepository
}

// NewFeedService creates a new FeedService
func NewFeedService(
	postRepo repositories.PostRepository,
	followRepo repositories.FollowRepository,
	profileRepo repositories.ProfileRepository,
) *FeedService {
	return &FeedService{
		postRepository:    postRepo,
		followRepository:  followRepo,
		profileRepository: profileRepo,
	}
}

// ForAnonymous returns active public posts, newest first
func (s *FeedService) ForAnonymous(offset, limit int) ([]models.Post, error) {
	return s.postRepository.ListPublic(offset, limit)
}

// ForUser returns the personalized feed: every post the user authored plus
// the public and followers-only posts of the accounts they follow, newest
// first. Private posts of other authors never appear. A user without a
// profile row falls back to their own posts plus all public posts.
func (s *FeedService) ForUser(userID uint, offset, limit int) ([]models.Post, error) {
	if _, err := s.profileRepository.GetByUserID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return s.postRepository.ListOwnOrPublic(userID, offset, limit)
		}
		return nil, err
	}

	followingIDs, err := s.followRepository.GetFollowingIDs(userID)
	if err != nil {
		return nil, err
	}
	return s.postRepository.FeedFor(userID, followingIDs, offset, limit)
}

// VisiblePosts returns the global visibility-scoped post listing for the
// viewer; viewerID zero means anonymous
func (s *FeedService) VisiblePosts(viewerID uint, offset, limit int) ([]models.Post, error) {
	if viewerID == 0 {
		return s.postRepository.ListPublic(offset, limit)
	}
	followingIDs, err := s.followRepository.GetFollowingIDs(viewerID)
	if err != nil {
		return nil, err
	}
	return s.postRepository.ListVisible(viewerID, followingIDs, offset, limit)
}

// CanView reports whether viewerID may see the post under its visibility:
// public is open, followers-only requires following the author, private is
// author-only. Authors always see their own posts.
func (s *FeedService) CanView(viewerID uint, post *models.Post) (bool, error) {
	if post.AuthorID == viewerID {
		return true, nil
	}
	switch post.Visibility {
	case models.VisibilityPublic:
		return true, nil
	case models.VisibilityFollowers:
		if viewerID == 0 {
			return false, nil
		}
		return s.followRepository.IsFollowing(viewerID, post.AuthorID)
	default:
		return false, nil
	}
}
