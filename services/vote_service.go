package services

import (
	"errors"
	"fmt"

	"github.com/ask-stack/api-go/models"
	"gorm.io/gorm"
)

// VoteService toggles up/down votes on questions and answers. A user holds
// at most one vote per item, enforced by the votes unique index.
type VoteService struct {
	DB    *gorm.DB
	Rules Rules
}

func NewVoteService(db *gorm.DB, rules Rules) *VoteService {
	return &VoteService{DB: db, Rules: rules}
}

type VoteSummary struct {
	Upvoters   []uint `json:"upvoters"`
	Downvoters []uint `json:"downvoters"`
	Score      int64  `json:"score"`
}

// Vote applies toggle semantics in one transaction: voting the same
// direction again retracts the vote, voting the opposite direction
// switches it, and a fresh vote inserts a row.
func (vs *VoteService) Vote(targetType string, targetID uint, userID uint, direction string) (VoteSummary, error) {
	var value int
	switch direction {
	case "up":
		value = models.VoteUp
	case "down":
		value = models.VoteDown
	default:
		return VoteSummary{}, fmt.Errorf("%w: direction must be up or down", ErrInvalidArgument)
	}

	target, err := loadTarget(vs.DB, targetType, targetID)
	if err != nil {
		return VoteSummary{}, err
	}
	if target.IsDeleted {
		return VoteSummary{}, fmt.Errorf("%w: item is deleted", ErrNotFound)
	}
	if !vs.Rules.AllowSelfVote && target.AuthorID == userID {
		return VoteSummary{}, fmt.Errorf("%w: cannot vote on your own content", ErrForbidden)
	}

	tx := vs.DB.Begin()
	if tx.Error != nil {
		return VoteSummary{}, tx.Error
	}

	var existing models.Vote
	result := tx.Where("user_id = ? AND target_type = ? AND target_id = ?", userID, targetType, targetID).First(&existing)

	switch {
	case result.Error == gorm.ErrRecordNotFound:
		vote := models.Vote{
			UserID:     userID,
			TargetType: targetType,
			TargetID:   targetID,
			Value:      value,
		}
		if err := tx.Create(&vote).Error; err != nil {
			tx.Rollback()
			// Two racing first votes by the same user: the loser hits
			// the unique index rather than the lookup above.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return VoteSummary{}, fmt.Errorf("%w: vote already recorded", ErrConflict)
			}
			return VoteSummary{}, err
		}
	case result.Error != nil:
		tx.Rollback()
		return VoteSummary{}, result.Error
	case existing.Value == value:
		// Same direction again retracts the vote
		if err := tx.Delete(&existing).Error; err != nil {
			tx.Rollback()
			return VoteSummary{}, err
		}
	default:
		// Opposite direction switches the vote in place
		if err := tx.Model(&existing).Update("value", value).Error; err != nil {
			tx.Rollback()
			return VoteSummary{}, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return VoteSummary{}, err
	}

	return vs.Summary(targetType, targetID)
}

// Summary returns the current up/down voter sets and net score of an item.
func (vs *VoteService) Summary(targetType string, targetID uint) (VoteSummary, error) {
	summary := VoteSummary{Upvoters: []uint{}, Downvoters: []uint{}}

	var votes []models.Vote
	err := vs.DB.Where("target_type = ? AND target_id = ?", targetType, targetID).
		Order("created_at ASC").
		Find(&votes).Error
	if err != nil {
		return VoteSummary{}, err
	}

	for _, vote := range votes {
		if vote.Value > 0 {
			summary.Upvoters = append(summary.Upvoters, vote.UserID)
		} else {
			summary.Downvoters = append(summary.Downvoters, vote.UserID)
		}
		summary.Score += int64(vote.Value)
	}
	return summary, nil
}
