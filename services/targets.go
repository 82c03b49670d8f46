package services

import (
	"fmt"

	"github.com/ask-stack/api-go/models"
	"gorm.io/gorm"
)

// targetInfo is the slice of a question or answer the engines share:
// enough to authorize and to honor soft-delete visibility.
type targetInfo struct {
	AuthorID  uint
	IsDeleted bool
}

func loadTarget(db *gorm.DB, targetType string, targetID uint) (targetInfo, error) {
	switch targetType {
	case models.TargetQuestion:
		var question models.Question
		if err := db.Select("id", "user_id", "is_deleted").First(&question, targetID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return targetInfo{}, fmt.Errorf("%w: question %d", ErrNotFound, targetID)
			}
			return targetInfo{}, err
		}
		return targetInfo{AuthorID: question.UserID, IsDeleted: question.IsDeleted}, nil
	case models.TargetAnswer:
		var answer models.Answer
		if err := db.Select("id", "user_id", "is_deleted").First(&answer, targetID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return targetInfo{}, fmt.Errorf("%w: answer %d", ErrNotFound, targetID)
			}
			return targetInfo{}, err
		}
		return targetInfo{AuthorID: answer.UserID, IsDeleted: answer.IsDeleted}, nil
	default:
		return targetInfo{}, fmt.Errorf("%w: unknown item type %q", ErrInvalidArgument, targetType)
	}
}
