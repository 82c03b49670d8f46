package services

import (
	"fmt"

	"github.com/ask-stack/api-go/models"
	"gorm.io/gorm"
)

// AcceptService manages the accepted-answer relationship on a question.
// At most one answer per question carries is_accepted; the clear-then-set
// pair runs in one transaction so concurrent accepts on the same question
// can never leave two answers accepted.
type AcceptService struct {
	DB *gorm.DB
}

func NewAcceptService(db *gorm.DB) *AcceptService {
	return &AcceptService{DB: db}
}

// Accept marks answerID as the question's accepted answer, displacing any
// previously accepted one.
func (as *AcceptService) Accept(questionID, requesterID, answerID uint) error {
	var question models.Question
	if err := as.DB.First(&question, questionID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fmt.Errorf("%w: question %d", ErrNotFound, questionID)
		}
		return err
	}
	if question.IsDeleted {
		return fmt.Errorf("%w: question %d", ErrNotFound, questionID)
	}
	if question.UserID != requesterID {
		return fmt.Errorf("%w: only the question author can accept an answer", ErrForbidden)
	}

	var answer models.Answer
	if err := as.DB.First(&answer, answerID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fmt.Errorf("%w: answer %d", ErrNotFound, answerID)
		}
		return err
	}
	if answer.QuestionID != questionID {
		return fmt.Errorf("%w: answer does not belong to this question", ErrConflict)
	}
	if answer.IsDeleted {
		return fmt.Errorf("%w: answer is deleted", ErrConflict)
	}

	tx := as.DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := tx.Model(&models.Answer{}).
		Where("question_id = ? AND id <> ? AND is_accepted = ?", questionID, answerID, true).
		Update("is_accepted", false).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Model(&models.Answer{}).
		Where("id = ?", answerID).
		Update("is_accepted", true).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Model(&models.Question{}).
		Where("id = ?", questionID).
		Update("accepted_answer_id", answerID).Error; err != nil {
		tx.Rollback()
		return err
	}

	if answer.UserID != requesterID {
		if err := createNotification(tx, answer.UserID, models.NotifyAnswerAccepted,
			"Your answer was accepted", &questionID, &answerID); err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit().Error
}

// Unaccept clears the question's accepted answer.
func (as *AcceptService) Unaccept(questionID, requesterID uint) error {
	var question models.Question
	if err := as.DB.First(&question, questionID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fmt.Errorf("%w: question %d", ErrNotFound, questionID)
		}
		return err
	}
	if question.UserID != requesterID {
		return fmt.Errorf("%w: only the question author can unaccept an answer", ErrForbidden)
	}
	if question.AcceptedAnswerID == nil {
		return fmt.Errorf("%w: question has no accepted answer", ErrConflict)
	}

	tx := as.DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := tx.Model(&models.Answer{}).
		Where("question_id = ? AND is_accepted = ?", questionID, true).
		Update("is_accepted", false).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Model(&models.Question{}).
		Where("id = ?", questionID).
		Update("accepted_answer_id", nil).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
