package services

import (
	"fmt"
	"time"

	"github.com/ask-stack/api-go/models"
	"gorm.io/gorm"
)

// LifecycleService governs the reversible soft-delete transitions of
// questions and answers. Deleted items stay in the store and are excluded
// from non-admin read paths until restored.
type LifecycleService struct {
	DB    *gorm.DB
	Rules Rules
}

func NewLifecycleService(db *gorm.DB, rules Rules) *LifecycleService {
	return &LifecycleService{DB: db, Rules: rules}
}

// SoftDelete hides an item. Allowed for admins and for the item's author.
// With StrictDelete set, deleting an already-deleted item is a conflict;
// otherwise the call is an idempotent no-op.
func (ls *LifecycleService) SoftDelete(targetType string, targetID uint, requesterID uint, isAdmin bool) error {
	target, err := loadTarget(ls.DB, targetType, targetID)
	if err != nil {
		return err
	}
	if !isAdmin && target.AuthorID != requesterID {
		return fmt.Errorf("%w: only the author or an admin can delete this", ErrForbidden)
	}
	if target.IsDeleted {
		if ls.Rules.StrictDelete {
			return fmt.Errorf("%w: item is already deleted", ErrConflict)
		}
		// Repeated deletes keep the original deleted_at.
		return nil
	}

	now := time.Now()
	updates := map[string]interface{}{"is_deleted": true, "deleted_at": now}
	return ls.update(targetType, targetID, updates, nil)
}

// Restore brings a deleted item back. Admin only; restoring an item that
// is not deleted is a conflict. The guard on is_deleted keeps deleted_at
// from being cleared twice by racing restores.
func (ls *LifecycleService) Restore(targetType string, targetID uint, isAdmin bool) error {
	if !isAdmin {
		return fmt.Errorf("%w: only admins can restore deleted content", ErrForbidden)
	}

	target, err := loadTarget(ls.DB, targetType, targetID)
	if err != nil {
		return err
	}
	if !target.IsDeleted {
		return fmt.Errorf("%w: item is not deleted", ErrConflict)
	}

	updates := map[string]interface{}{"is_deleted": false, "deleted_at": nil}
	guard := map[string]interface{}{"is_deleted": true}
	return ls.update(targetType, targetID, updates, guard)
}

func (ls *LifecycleService) update(targetType string, targetID uint, updates map[string]interface{}, guard map[string]interface{}) error {
	var model interface{}
	switch targetType {
	case models.TargetQuestion:
		model = &models.Question{}
	case models.TargetAnswer:
		model = &models.Answer{}
	default:
		return fmt.Errorf("%w: unknown item type %q", ErrInvalidArgument, targetType)
	}

	query := ls.DB.Model(model).Where("id = ?", targetID)
	if guard != nil {
		query = query.Where(guard)
	}
	result := query.Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if guard != nil && result.RowsAffected == 0 {
		return fmt.Errorf("%w: item is not deleted", ErrConflict)
	}
	return nil
}
