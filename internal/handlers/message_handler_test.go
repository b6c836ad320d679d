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

func TestSendMessageValidation(t *testing.T) {
	e, _ := newTestAPI(t)
	aliceToken, aliceID := registerUser(t, e, "alice")

	// Messaging yourself is rejected
	rec := doJSON(t, e, http.MethodPost, "/api/v1/messages", aliceToken, map[string]interface{}{
		"recipient_id": aliceID,
		"content":      "hi me",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Unknown recipients are rejected
	rec = doJSON(t, e, http.MethodPost, "/api/v1/messages", aliceToken, map[string]interface{}{
		"recipient_id": 99999,
		"content":      "hello?",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Anonymous callers cannot send at all
	rec = doJSON(t, e, http.MethodPost, "/api/v1/messages", "", map[string]interface{}{
		"recipient_id": aliceID,
		"content":      "sneaky",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMessageReadAndDeleteAreRoleScoped(t *testing.T) {
	e, db := newTestAPI(t)
	aliceToken, _ := registerUser(t, e, "alice")
	bobToken, bobID := registerUser(t, e, "bob")

	rec := doJSON(t, e, http.MethodPost, "/api/v1/messages", aliceToken, map[string]interface{}{
		"recipient_id": bobID,
		"content":      "lunch?",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	messageID := uint(decodeBody(t, rec)["id"].(float64))

	// Sending also notified the recipient
	var notification models.Notification
	require.NoError(t, db.Where("type = ?", models.NotificationMessage).First(&notification).Error)
	assert.Equal(t, bobID, notification.RecipientID)
	require.NotNil(t, notification.MessageID)
	assert.Equal(t, messageID, *notification.MessageID)

	// Only the recipient may mark it read
	rec = doJSON(t, e, http.MethodPost, fmt.Sprintf("/api/v1/messages/%d/read", messageID), aliceToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, e, http.MethodPost, fmt.Sprintf("/api/v1/messages/%d/read", messageID), bobToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var message models.Message
	require.NoError(t, db.First(&message, messageID).Error)
	assert.True(t, message.IsRead)

	// Only the sender may delete it
	rec = doJSON(t, e, http.MethodDelete, fmt.Sprintf("/api/v1/messages/%d", messageID), bobToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, e, http.MethodDelete, fmt.Sprintf("/api/v1/messages/%d", messageID), aliceToken, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	var count int64
	require.NoError(t, db.Model(&models.Message{}).Where("id = ?", messageID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestListMessagesCoversBothDirections(t *testing.T) {
	e, _ := newTestAPI(t)
	aliceToken, aliceID := registerUser(t, e, "alice")
	bobToken, bobID := registerUser(t, e, "bob")
	carolToken, carolID := registerUser(t, e, "carol")

	send := func(token string, recipientID uint, content string) {
		rec := doJSON(t, e, http.MethodPost, "/api/v1/messages", token, map[string]interface{}{
			"recipient_id": recipientID,
			"content":      content,
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}
	send(aliceToken, bobID, "to bob")
	send(bobToken, aliceID, "to alice")
	send(carolToken, bobID, "carol to bob")

	rec := doJSON(t, e, http.MethodGet, "/api/v1/messages", aliceToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var messages []models.Message
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &messages))
	require.Len(t, messages, 2)
	// Newest first, and carol's message to bob is not visible to alice
	assert.Equal(t, "to alice", messages[0].Content)
	assert.Equal(t, "to bob", messages[1].Content)
	for _, m := range messages {
		assert.NotEqual(t, carolID, m.SenderID)
	}
}
