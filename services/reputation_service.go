package services

import (
	"fmt"

	"github.com/ask-stack/api-go/models"
	"gorm.io/gorm"
)

// ReputationService is the sole writer of user.reputation. Every change
// goes through ApplyDelta, which adjusts the balance and appends one
// ledger entry in the same transaction.
type ReputationService struct {
	DB *gorm.DB
}

func NewReputationService(db *gorm.DB) *ReputationService {
	return &ReputationService{DB: db}
}

// ApplyDelta adjusts a user's reputation by change inside the caller's
// transaction and records the matching ledger entry. For negative deltas
// the balance guard rides in the UPDATE's WHERE clause, so a spend that
// would push the balance below zero touches nothing.
func (rs *ReputationService) ApplyDelta(tx *gorm.DB, userID uint, change int64, reason string, questionID, answerID *uint) (int64, error) {
	query := tx.Model(&models.User{}).Where("id = ?", userID)
	if change < 0 {
		query = query.Where("reputation + ? >= 0", change)
	}

	result := query.Update("reputation", gorm.Expr("reputation + ?", change))
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		tx.Model(&models.User{}).Where("id = ?", userID).Count(&count)
		if count == 0 {
			return 0, fmt.Errorf("%w: user %d", ErrNotFound, userID)
		}
		return 0, ErrInsufficientReputation
	}

	event := models.ReputationEvent{
		UserID:     userID,
		Change:     change,
		Reason:     reason,
		QuestionID: questionID,
		AnswerID:   answerID,
	}
	if err := tx.Create(&event).Error; err != nil {
		return 0, err
	}

	var user models.User
	if err := tx.Select("reputation").First(&user, userID).Error; err != nil {
		return 0, err
	}
	return user.Reputation, nil
}

// History returns a user's ledger entries, most recent first.
func (rs *ReputationService) History(userID uint) ([]models.ReputationEvent, error) {
	var count int64
	rs.DB.Model(&models.User{}).Where("id = ?", userID).Count(&count)
	if count == 0 {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}

	var events []models.ReputationEvent
	err := rs.DB.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}
