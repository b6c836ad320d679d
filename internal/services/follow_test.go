package services

import (
	"testing"

	"github.com/sajidspace/connectly/backend/internal/models"
	"github.com/sajidspace/connectly/backend/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newFollowService(db *gorm.DB) *FollowService {
	followRepo := repositories.NewPostgresFollowRepository(db)
	notifier := NewNotifier(repositories.NewPostgresNotificationRepository(db))
	return NewFollowService(followRepo, notifier)
}

func TestFollowToggleTwiceRestoresOriginalState(t *testing.T) {
	db := setupTestDB(t)
	svc := newFollowService(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	before, err := svc.IsFollowing(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, before)

	following, err := svc.Toggle(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, following)

	mid, err := svc.IsFollowing(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, mid)

	following, err = svc.Toggle(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, following)

	after, err := svc.IsFollowing(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestFollowNotifiesTargetOnceOnFollowOnly(t *testing.T) {
	db := setupTestDB(t)
	svc := newFollowService(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	_, err := svc.Toggle(alice.ID, bob.ID)
	require.NoError(t, err)
	_, err = svc.Toggle(alice.ID, bob.ID) // unfollow
	require.NoError(t, err)

	notifications := notificationsFor(t, db, bob.ID)
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotificationFollow, notifications[0].Type)
	assert.Equal(t, alice.ID, notifications[0].SenderID)
	assert.Nil(t, notifications[0].PostID)
	assert.False(t, notifications[0].IsRead)
}

func TestFollowSelfFails(t *testing.T) {
	db := setupTestDB(t)
	svc := newFollowService(db)
	alice := createUser(t, db, "alice")

	_, err := svc.Toggle(alice.ID, alice.ID)
	assert.ErrorIs(t, err, ErrFollowSelf)

	var count int64
	require.NoError(t, db.Model(&models.Follow{}).Count(&count).Error)
	assert.Zero(t, count)
	assert.Empty(t, notificationsFor(t, db, alice.ID))
}
