package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/sajidspace/connectly/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeletePostRequiresAuthor(t *testing.T) {
	e, db := newTestAPI(t)
	aliceToken, _ := registerUser(t, e, "alice")
	bobToken, _ := registerUser(t, e, "bob")

	rec := doJSON(t, e, http.MethodPost, "/api/v1/posts", aliceToken, map[string]string{"content": "keep out"})
	require.Equal(t, http.StatusCreated, rec.Code)
	postID := uint(decodeBody(t, rec)["id"].(float64))

	// Anonymous delete is unauthenticated
	rec = doJSON(t, e, http.MethodDelete, fmt.Sprintf("/api/v1/posts/%d", postID), "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Another user is forbidden and the post is untouched
	rec = doJSON(t, e, http.MethodDelete, fmt.Sprintf("/api/v1/posts/%d", postID), bobToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	var post models.Post
	require.NoError(t, db.First(&post, postID).Error)
	assert.Equal(t, "keep out", post.Content)

	// The author may delete
	rec = doJSON(t, e, http.MethodDelete, fmt.Sprintf("/api/v1/posts/%d", postID), aliceToken, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestMarkReadIsRecipientScoped(t *testing.T) {
	e, db := newTestAPI(t)
	aliceToken, _ := registerUser(t, e, "alice")
	bobToken, bobID := registerUser(t, e, "bob")

	rec := doJSON(t, e, http.MethodPost, "/api/v1/posts", aliceToken, map[string]string{"content": "like me"})
	require.Equal(t, http.StatusCreated, rec.Code)
	postID := uint(decodeBody(t, rec)["id"].(float64))

	rec = doJSON(t, e, http.MethodPost, fmt.Sprintf("/api/v1/posts/%d/like", postID), bobToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var notification models.Notification
	require.NoError(t, db.Where("type = ?", models.NotificationLike).First(&notification).Error)
	require.Equal(t, bobID, notification.SenderID)

	// The sender is not the recipient and may not mark it read
	rec = doJSON(t, e, http.MethodPost, fmt.Sprintf("/api/v1/notifications/%d/mark_read", notification.ID), bobToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	require.NoError(t, db.First(&notification, notification.ID).Error)
	assert.False(t, notification.IsRead)

	// The recipient may
	rec = doJSON(t, e, http.MethodPost, fmt.Sprintf("/api/v1/notifications/%d/mark_read", notification.ID), aliceToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, db.First(&notification, notification.ID).Error)
	assert.True(t, notification.IsRead)

	// Unknown notifications are 404, not 403
	rec = doJSON(t, e, http.MethodPost, "/api/v1/notifications/99999/mark_read", aliceToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFollowToggleEndpoint(t *testing.T) {
	e, _ := newTestAPI(t)
	aliceToken, aliceID := registerUser(t, e, "alice")
	_, bobID := registerUser(t, e, "bob")

	// Self-follow is a validation error
	rec := doJSON(t, e, http.MethodPost, fmt.Sprintf("/api/v1/users/%d/follow", aliceID), aliceToken, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, e, http.MethodPost, fmt.Sprintf("/api/v1/users/%d/follow", bobID), aliceToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, true, data["following"])

	// Toggling again unfollows
	rec = doJSON(t, e, http.MethodPost, fmt.Sprintf("/api/v1/users/%d/follow", bobID), aliceToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data = decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, false, data["following"])
}

func TestAnonymousFeedEndpointIsPublicOnly(t *testing.T) {
	e, _ := newTestAPI(t)
	aliceToken, _ := registerUser(t, e, "alice")

	rec := doJSON(t, e, http.MethodPost, "/api/v1/posts", aliceToken, map[string]string{"content": "open"})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = doJSON(t, e, http.MethodPost, "/api/v1/posts", aliceToken, map[string]interface{}{
		"content": "hidden", "visibility": "private",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, e, http.MethodGet, "/api/v1/feed", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var posts []models.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posts))
	require.Len(t, posts, 1)
	assert.Equal(t, "open", posts[0].Content)
}
