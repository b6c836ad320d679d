package services

import (
	"github.com/sajidspace/connectly/backend/internal/repositories"
)

// FollowService owns the follow toggle. The toggle is an explicit two-state
// transition: given the current edge state it either creates or removes the
// edge and reports the state it ended in.
type FollowService struct {
	followRepository repositories.FollowRepository
	notifier         *Notifier
}

// NewFollowService creates a new FollowService
func NewFollowService(followRepo repositories.FollowRepository, notifier *Notifier) *FollowService {
	return &FollowService{followRepository: followRepo, notifier: notifier}
}

// Toggle flips the follow edge from followerID to targetID and returns true
// when the caller is following afterwards. Creating the edge notifies the
// target; removing it does not. Self-follow fails with ErrFollowSelf and
// leaves the graph untouched.
func (s *FollowService) Toggle(followerID, targetID uint) (bool, error) {
	if followerID == targetID {
		return false, ErrFollowSelf
	}

	following, err := s.followRepository.IsFollowing(followerID, targetID)
	if err != nil {
		return false, err
	}

	if following {
		if err := s.followRepository.RemoveFollow(followerID, targetID); err != nil {
			return true, err
		}
		return false, nil
	}

	if err := s.followRepository.AddFollow(followerID, targetID); err != nil {
		return false, err
	}
	if err := s.notifier.Follow(followerID, targetID); err != nil {
		return true, err
	}
	return true, nil
}

// IsFollowing reports whether a follows b
func (s *FollowService) IsFollowing(a, b uint) (bool, error) {
	return s.followRepository.IsFollowing(a, b)
}
