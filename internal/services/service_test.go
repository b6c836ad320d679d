package services

import (
	"fmt"
	"testing"

	"github.com/sajidspace/connectly/backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
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

// createUser seeds a user together with its profile, as registration does
func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    fmt.Sprintf("%s@example.com", username),
		Password: "hashed",
	}
	require.NoError(t, db.Create(user).Error)
	require.NoError(t, db.Create(&models.Profile{UserID: user.ID}).Error)
	return user
}

func notificationsFor(t *testing.T, db *gorm.DB, recipientID uint) []models.Notification {
	t.Helper()
	var notifications []models.Notification
	require.NoError(t, db.Where("recipient_id = ?", recipientID).Order("id").Find(&notifications).Error)
	return notifications
}
