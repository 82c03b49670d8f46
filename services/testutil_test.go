package services

import (
	"fmt"
	"testing"

	"github.com/ask-stack/api-go/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Question{},
		&models.Answer{},
		&models.Vote{},
		&models.ReputationEvent{},
		&models.Flag{},
		&models.Comment{},
		&models.Notification{},
	)
	require.NoError(t, err)

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string, reputation int64) models.User {
	t.Helper()

	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Role:     models.RoleUser,
	}
	require.NoError(t, db.Create(&user).Error)

	if reputation != 0 {
		rs := NewReputationService(db)
		tx := db.Begin()
		_, err := rs.ApplyDelta(tx, user.ID, reputation, models.ReasonAdminAdjust, nil, nil)
		require.NoError(t, err)
		require.NoError(t, tx.Commit().Error)
		user.Reputation = reputation
	}
	return user
}

func createTestQuestion(t *testing.T, db *gorm.DB, authorID uint) models.Question {
	t.Helper()

	question := models.Question{
		Title:        "How do goroutines get scheduled?",
		Content:      "I keep reading about M:N scheduling but the details escape me.",
		UserID:       authorID,
		BountyStatus: models.BountyNone,
	}
	require.NoError(t, db.Create(&question).Error)
	return question
}

func createTestAnswer(t *testing.T, db *gorm.DB, questionID, authorID uint) models.Answer {
	t.Helper()

	answer := models.Answer{
		Content:    "The runtime multiplexes goroutines onto OS threads via per-P run queues.",
		UserID:     authorID,
		QuestionID: questionID,
	}
	require.NoError(t, db.Create(&answer).Error)
	return answer
}

// requireLedgerConsistent asserts the core invariant: a user's reputation
// equals the sum of their ledger entries.
func requireLedgerConsistent(t *testing.T, db *gorm.DB, userID uint) {
	t.Helper()

	var user models.User
	require.NoError(t, db.First(&user, userID).Error)

	var sum *int64
	require.NoError(t, db.Model(&models.ReputationEvent{}).
		Where("user_id = ?", userID).
		Select("SUM(change)").
		Scan(&sum).Error)

	var total int64
	if sum != nil {
		total = *sum
	}
	require.Equal(t, user.Reputation, total, "reputation must equal the ledger sum")
}
