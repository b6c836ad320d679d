package services

import (
	"testing"

	"github.com/sajidspace/connectly/backend/internal/models"
	"github.com/sajidspace/connectly/backend/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTagService(db *gorm.DB) *TagService {
	return NewTagService(
		repositories.NewPostgresPostRepository(db),
		repositories.NewPostgresHashtagRepository(db),
		repositories.NewPostgresUserRepository(db),
		NewNotifier(repositories.NewPostgresNotificationRepository(db)),
	)
}

func TestExtractHashtagsFoldsCaseAndDeduplicates(t *testing.T) {
	assert.Equal(t, []string{"foo", "bar"}, ExtractHashtags("a #Foo #foo b #BAR"))
	assert.Empty(t, ExtractHashtags("no tags here"))
}

func TestSyncHashtagsAndMentions(t *testing.T) {
	db := setupTestDB(t)
	svc := newTagService(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	post := createPost(t, db, alice.ID, "hello #Foo #foo @bob")
	require.NoError(t, svc.Sync(post))

	var tags []models.Hashtag
	require.NoError(t, db.Find(&tags).Error)
	require.Len(t, tags, 1)
	assert.Equal(t, "foo", tags[0].Name)

	require.Len(t, post.Mentions, 1)
	assert.Equal(t, bob.ID, post.Mentions[0].ID)

	notifications := notificationsFor(t, db, bob.ID)
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotificationMention, notifications[0].Type)
	assert.Equal(t, alice.ID, notifications[0].SenderID)
	require.NotNil(t, notifications[0].PostID)
	assert.Equal(t, post.ID, *notifications[0].PostID)
}

func TestSyncSkipsUnknownUsernames(t *testing.T) {
	db := setupTestDB(t)
	svc := newTagService(db)
	alice := createUser(t, db, "alice")

	post := createPost(t, db, alice.ID, "ping @nobody")
	require.NoError(t, svc.Sync(post))

	assert.Empty(t, post.Mentions)
	var count int64
	require.NoError(t, db.Model(&models.Notification{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSyncOnEditDoesNotRenotifyExistingMentions(t *testing.T) {
	db := setupTestDB(t)
	svc := newTagService(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	carol := createUser(t, db, "carol")

	post := createPost(t, db, alice.ID, "hi @bob")
	require.NoError(t, svc.Sync(post))
	require.Len(t, notificationsFor(t, db, bob.ID), 1)

	post.Content = "hi @bob and @carol"
	require.NoError(t, svc.Sync(post))

	assert.Len(t, notificationsFor(t, db, bob.ID), 1)
	assert.Len(t, notificationsFor(t, db, carol.ID), 1)
	assert.Len(t, post.Mentions, 2)
}

func TestSyncReplacesHashtagsOnEdit(t *testing.T) {
	db := setupTestDB(t)
	svc := newTagService(db)
	alice := createUser(t, db, "alice")

	post := createPost(t, db, alice.ID, "day one #golang")
	require.NoError(t, svc.Sync(post))

	post.Content = "day two #gorm"
	require.NoError(t, svc.Sync(post))

	var associated []models.Hashtag
	require.NoError(t, db.Model(post).Association("Hashtags").Find(&associated))
	require.Len(t, associated, 1)
	assert.Equal(t, "gorm", associated[0].Name)

	// The orphaned tag row survives; only the association is replaced
	var tagCount int64
	require.NoError(t, db.Model(&models.Hashtag{}).Count(&tagCount).Error)
	assert.EqualValues(t, 2, tagCount)
}
