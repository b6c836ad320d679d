package repositories

import (
	"testing"

	"github.com/sajidspace/connectly/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRepoDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Post{},
		&models.Comment{},
		&models.Hashtag{},
		&models.Like{},
		&models.CommentLike{},
		&models.Follow{},
		&models.Message{},
		&models.Notification{},
	))
	return db
}

func TestCreateUserWithProfileIsAtomic(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewPostgresUserRepository(db)

	user := &models.User{Username: "alice", Email: "alice@example.com", Password: "hashed"}
	require.NoError(t, repo.CreateUserWithProfile(user, &models.Profile{Bio: "hi"}))

	profile, err := NewPostgresProfileRepository(db).GetByUserID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, profile.UserID)
	assert.Equal(t, "hi", profile.Bio)
}

func TestDeleteUserCascades(t *testing.T) {
	db := setupRepoDB(t)
	userRepo := NewPostgresUserRepository(db)
	postRepo := NewPostgresPostRepository(db)

	alice := &models.User{Username: "alice", Email: "alice@example.com", Password: "hashed"}
	require.NoError(t, userRepo.CreateUserWithProfile(alice, &models.Profile{}))
	bob := &models.User{Username: "bob", Email: "bob@example.com", Password: "hashed"}
	require.NoError(t, userRepo.CreateUserWithProfile(bob, &models.Profile{}))

	// Alice's post tagged, mentioning bob, commented and liked by bob
	post := &models.Post{AuthorID: alice.ID, Content: "bye #go @bob", Visibility: models.VisibilityPublic, IsActive: true}
	require.NoError(t, postRepo.CreatePost(post))
	tag := &models.Hashtag{Name: "go"}
	require.NoError(t, db.Create(tag).Error)
	require.NoError(t, postRepo.ReplaceHashtags(post, []models.Hashtag{*tag}))
	require.NoError(t, postRepo.ReplaceMentions(post, []models.User{*bob}))
	bobComment := &models.Comment{PostID: post.ID, UserID: bob.ID, Content: "so long", IsActive: true}
	require.NoError(t, db.Create(bobComment).Error)
	require.NoError(t, db.Create(&models.Like{PostID: post.ID, UserID: bob.ID}).Error)
	require.NoError(t, db.Create(&models.CommentLike{CommentID: bobComment.ID, UserID: alice.ID}).Error)

	// Bob's post, liked and commented on by alice
	bobPost := &models.Post{AuthorID: bob.ID, Content: "staying", Visibility: models.VisibilityPublic, IsActive: true}
	require.NoError(t, postRepo.CreatePost(bobPost))
	require.NoError(t, db.Create(&models.Comment{PostID: bobPost.ID, UserID: alice.ID, Content: "nice", IsActive: true}).Error)
	require.NoError(t, db.Create(&models.Like{PostID: bobPost.ID, UserID: alice.ID}).Error)

	// Graph edges, messages and notifications both ways
	require.NoError(t, db.Create(&models.Follow{FollowerID: alice.ID, FollowingID: bob.ID}).Error)
	require.NoError(t, db.Create(&models.Follow{FollowerID: bob.ID, FollowingID: alice.ID}).Error)
	require.NoError(t, db.Create(&models.Message{SenderID: alice.ID, RecipientID: bob.ID, Content: "hey"}).Error)
	require.NoError(t, db.Create(&models.Message{SenderID: bob.ID, RecipientID: alice.ID, Content: "yo"}).Error)
	require.NoError(t, db.Create(&models.Notification{RecipientID: bob.ID, SenderID: alice.ID, Type: models.NotificationFollow}).Error)
	require.NoError(t, db.Create(&models.Notification{RecipientID: alice.ID, SenderID: bob.ID, Type: models.NotificationFollow}).Error)

	require.NoError(t, userRepo.DeleteUser(alice.ID))

	_, err := userRepo.GetUserByID(alice.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	counts := map[string]int64{}
	for table, model := range map[string]interface{}{
		"profiles":      &models.Profile{},
		"posts":         &models.Post{},
		"comments":      &models.Comment{},
		"likes":         &models.Like{},
		"comment_likes": &models.CommentLike{},
		"follows":       &models.Follow{},
		"messages":      &models.Message{},
		"notifications": &models.Notification{},
	} {
		var n int64
		require.NoError(t, db.Model(model).Count(&n).Error)
		counts[table] = n
	}

	// Everything alice owned or touched is gone; bob's own world survives
	assert.EqualValues(t, 1, counts["profiles"])
	assert.EqualValues(t, 1, counts["posts"])
	assert.EqualValues(t, 0, counts["comments"])
	assert.EqualValues(t, 0, counts["likes"])
	assert.EqualValues(t, 0, counts["comment_likes"])
	assert.EqualValues(t, 0, counts["follows"])
	assert.EqualValues(t, 0, counts["messages"])
	assert.EqualValues(t, 0, counts["notifications"])

	var joinRows int64
	require.NoError(t, db.Table("post_hashtags").Count(&joinRows).Error)
	assert.Zero(t, joinRows)
	require.NoError(t, db.Table("post_mentions").Count(&joinRows).Error)
	assert.Zero(t, joinRows)

	// The hashtag row itself is not owned by any user and survives
	var tagCount int64
	require.NoError(t, db.Model(&models.Hashtag{}).Count(&tagCount).Error)
	assert.EqualValues(t, 1, tagCount)

	remaining, err := userRepo.GetUserByID(bob.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob", remaining.Username)
}

func TestIncrementSharesCountIsSingleUpdate(t *testing.T) {
	db := setupRepoDB(t)
	userRepo := NewPostgresUserRepository(db)
	postRepo := NewPostgresPostRepository(db)

	alice := &models.User{Username: "alice", Email: "alice@example.com", Password: "hashed"}
	require.NoError(t, userRepo.CreateUserWithProfile(alice, &models.Profile{}))
	post := &models.Post{AuthorID: alice.ID, Content: "x", Visibility: models.VisibilityPublic, IsActive: true}
	require.NoError(t, postRepo.CreatePost(post))

	require.NoError(t, postRepo.IncrementSharesCount(post.ID))
	require.NoError(t, postRepo.IncrementSharesCount(post.ID))

	reloaded, err := postRepo.GetPostByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, reloaded.SharesCount)

	assert.ErrorIs(t, postRepo.IncrementSharesCount(9999), gorm.ErrRecordNotFound)
}
