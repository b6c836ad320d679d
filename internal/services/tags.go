package services

import (
	"errors"
	"regexp"
	"strings"

	"github.com/sajidspace/connectly/backend/internal/models"
	"github.com/sajidspace/connectly/backend/internal/repositories"
	"gorm.io/gorm"
)

var (
	hashtagPattern = regexp.MustCompile(`#(\w+)`)
	mentionPattern = regexp.MustCompile(`@(\w+)`)
)

// TagService extracts hashtags and mentions from post content and keeps the
// post's associations in sync with it.
type TagService struct {
	postRepository    repositories.PostRepository
	hashtagRepository repositories.HashtagRepository
	userRepository    repositories.UserRepository
	notifier          *Notifier
}

// NewTagService creates a new TagService
func NewTagService(
	postRepo repositories.PostRepository,
	hashtagRepo repositories.HashtagRepository,
	userRepo repositories.UserRepository,
	notifier *Notifier,
) *TagService {
	return &TagService{
		postRepository:    postRepo,
		hashtagRepository: hashtagRepo,
		userRepository:    userRepo,
		notifier:          notifier,
	}
}

// ExtractHashtags returns the deduplicated, lowercased hashtag names in
// content, without the leading '#'
func ExtractHashtags(content string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, m := range hashtagPattern.FindAllStringSubmatch(content, -1) {
		name := strings.ToLower(m[1])
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

// ExtractMentionTokens returns the deduplicated usernames mentioned in
// content, without the leading '@'. Tokens are matched case-sensitively
// against usernames later; no folding here.
func ExtractMentionTokens(content string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, m := range mentionPattern.FindAllStringSubmatch(content, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}

// Sync re-derives the post's hashtag and mention associations from its
// content. Hashtags are get-or-created; mention tokens that match no
// existing username are silently skipped. A mention notification goes out
// for each user newly mentioned by this sync, so editing a post never
// re-notifies users it already mentioned.
func (s *TagService) Sync(post *models.Post) error {
	var hashtags []models.Hashtag
	for _, name := range ExtractHashtags(post.Content) {
		tag, err := s.hashtagRepository.GetOrCreate(name)
		if err != nil {
			return err
		}
		hashtags = append(hashtags, *tag)
	}
	if err := s.postRepository.ReplaceHashtags(post, hashtags); err != nil {
		return err
	}

	previouslyMentioned := make(map[uint]bool, len(post.Mentions))
	for _, u := range post.Mentions {
		previouslyMentioned[u.ID] = true
	}

	var mentioned []models.User
	for _, username := range ExtractMentionTokens(post.Content) {
		user, err := s.userRepository.GetUserByUsername(username)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return err
		}
		mentioned = append(mentioned, *user)
	}
	if err := s.postRepository.ReplaceMentions(post, mentioned); err != nil {
		return err
	}

	for _, user := range mentioned {
		if previouslyMentioned[user.ID] || user.ID == post.AuthorID {
			continue
		}
		if err := s.notifier.Mention(post.AuthorID, user.ID, post.ID); err != nil {
			return err
		}
	}

	post.Hashtags = hashtags
	post.Mentions = mentioned
	return nil
}
