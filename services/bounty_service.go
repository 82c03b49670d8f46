package services

import (
	"fmt"
	"time"

	"github.com/ask-stack/api-go/models"
	"gorm.io/gorm"
)

// BountyService escrows reputation from a question's author into a bounty
// and pays it out to a chosen answer's author. Bounty states move
// none -> open -> awarded; awarded is terminal.
type BountyService struct {
	DB         *gorm.DB
	Reputation *ReputationService
	Rules      Rules
}

func NewBountyService(db *gorm.DB, reputation *ReputationService, rules Rules) *BountyService {
	return &BountyService{DB: db, Reputation: reputation, Rules: rules}
}

type BountyResult struct {
	Question   models.Question `json:"question"`
	Reputation int64           `json:"reputation"`
}

// Offer debits amount from the question author and adds it to the
// question's bounty. Repeated offers accumulate while the bounty is open.
// The debit and the bounty increase commit together or not at all.
func (bs *BountyService) Offer(questionID, requesterID uint, amount int64) (BountyResult, error) {
	if amount <= 0 {
		return BountyResult{}, fmt.Errorf("%w: bounty amount must be positive", ErrInvalidArgument)
	}

	var question models.Question
	if err := bs.DB.First(&question, questionID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return BountyResult{}, fmt.Errorf("%w: question %d", ErrNotFound, questionID)
		}
		return BountyResult{}, err
	}
	if question.IsDeleted {
		return BountyResult{}, fmt.Errorf("%w: question %d", ErrNotFound, questionID)
	}
	if question.UserID != requesterID {
		return BountyResult{}, fmt.Errorf("%w: only the question author can offer a bounty", ErrForbidden)
	}
	if question.BountyStatus == models.BountyAwarded {
		return BountyResult{}, fmt.Errorf("%w: bounty already awarded", ErrConflict)
	}
	if bs.Rules.MaxBounty > 0 && question.BountyAmount+amount > bs.Rules.MaxBounty {
		return BountyResult{}, fmt.Errorf("%w: bounty cannot exceed %d", ErrInvalidArgument, bs.Rules.MaxBounty)
	}

	tx := bs.DB.Begin()
	if tx.Error != nil {
		return BountyResult{}, tx.Error
	}

	balance, err := bs.Reputation.ApplyDelta(tx, requesterID, -amount, models.ReasonBountyOffered, &questionID, nil)
	if err != nil {
		tx.Rollback()
		return BountyResult{}, err
	}

	// Guarded against a concurrent award or top-up landing between the
	// read above and this write; the cap rides in the WHERE clause so two
	// racing offers cannot jointly exceed it.
	query := tx.Model(&models.Question{}).
		Where("id = ? AND bounty_status <> ?", questionID, models.BountyAwarded)
	if bs.Rules.MaxBounty > 0 {
		query = query.Where("bounty_amount + ? <= ?", amount, bs.Rules.MaxBounty)
	}
	result := query.Updates(map[string]interface{}{
		"bounty_amount": gorm.Expr("bounty_amount + ?", amount),
		"bounty_status": models.BountyOpen,
	})
	if result.Error != nil {
		tx.Rollback()
		return BountyResult{}, result.Error
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		var fresh models.Question
		if err := bs.DB.Select("bounty_status").First(&fresh, questionID).Error; err == nil &&
			fresh.BountyStatus == models.BountyAwarded {
			return BountyResult{}, fmt.Errorf("%w: bounty already awarded", ErrConflict)
		}
		return BountyResult{}, fmt.Errorf("%w: bounty cannot exceed %d", ErrInvalidArgument, bs.Rules.MaxBounty)
	}

	if err := tx.Commit().Error; err != nil {
		return BountyResult{}, err
	}

	if err := bs.DB.First(&question, questionID).Error; err != nil {
		return BountyResult{}, err
	}
	return BountyResult{Question: question, Reputation: balance}, nil
}

type AwardResult struct {
	Question     models.Question `json:"question"`
	AnswerAuthor models.User     `json:"answerAuthor"`
}

// Award pays the open bounty to the author of answerID. The open->awarded
// transition is a conditional write on the current status, so of two
// concurrent awards exactly one succeeds; the loser sees ErrConflict and
// no reputation moves twice.
func (bs *BountyService) Award(questionID, requesterID, answerID uint) (AwardResult, error) {
	var question models.Question
	if err := bs.DB.First(&question, questionID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return AwardResult{}, fmt.Errorf("%w: question %d", ErrNotFound, questionID)
		}
		return AwardResult{}, err
	}
	if question.UserID != requesterID {
		return AwardResult{}, fmt.Errorf("%w: only the question author can award the bounty", ErrForbidden)
	}

	var answer models.Answer
	if err := bs.DB.First(&answer, answerID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return AwardResult{}, fmt.Errorf("%w: answer %d", ErrNotFound, answerID)
		}
		return AwardResult{}, err
	}
	if answer.QuestionID != questionID {
		return AwardResult{}, fmt.Errorf("%w: answer does not belong to this question", ErrConflict)
	}
	if answer.IsDeleted {
		return AwardResult{}, fmt.Errorf("%w: answer is deleted", ErrConflict)
	}

	if question.BountyStatus == models.BountyAwarded {
		return AwardResult{}, fmt.Errorf("%w: bounty already awarded", ErrConflict)
	}
	if question.BountyStatus != models.BountyOpen || question.BountyAmount <= 0 {
		return AwardResult{}, fmt.Errorf("%w: no open bounty on this question", ErrConflict)
	}

	tx := bs.DB.Begin()
	if tx.Error != nil {
		return AwardResult{}, tx.Error
	}

	now := time.Now()
	result := tx.Model(&models.Question{}).
		Where("id = ? AND bounty_status = ? AND bounty_amount > 0", questionID, models.BountyOpen).
		Updates(map[string]interface{}{
			"bounty_status":        models.BountyAwarded,
			"bounty_awarded_to_id": answer.UserID,
			"bounty_awarded_at":    now,
		})
	if result.Error != nil {
		tx.Rollback()
		return AwardResult{}, result.Error
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return AwardResult{}, fmt.Errorf("%w: bounty already awarded", ErrConflict)
	}

	// Credit what the bounty holds now, not what it held when we first
	// read the question: an offer committed in between may have raised
	// the amount, and every escrowed point must reach the answer author.
	var awarded int64
	if err := tx.Model(&models.Question{}).
		Where("id = ?", questionID).
		Select("bounty_amount").
		Scan(&awarded).Error; err != nil {
		tx.Rollback()
		return AwardResult{}, err
	}

	if _, err := bs.Reputation.ApplyDelta(tx, answer.UserID, awarded, models.ReasonBountyAwarded, &questionID, &answerID); err != nil {
		tx.Rollback()
		return AwardResult{}, err
	}

	message := fmt.Sprintf("Your answer was awarded a %d reputation bounty", awarded)
	if err := createNotification(tx, answer.UserID, models.NotifyBountyAwarded, message, &questionID, &answerID); err != nil {
		tx.Rollback()
		return AwardResult{}, err
	}

	if err := tx.Commit().Error; err != nil {
		return AwardResult{}, err
	}

	if err := bs.DB.First(&question, questionID).Error; err != nil {
		return AwardResult{}, err
	}
	var author models.User
	if err := bs.DB.First(&author, answer.UserID).Error; err != nil {
		return AwardResult{}, err
	}
	return AwardResult{Question: question, AnswerAuthor: author}, nil
}
