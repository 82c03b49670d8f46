package models

import (
	"time"
)

const (
	NotifyAnswerAccepted = "answer_accepted"
	NotifyBountyAwarded  = "bounty_awarded"
	NotifyNewAnswer      = "new_answer"
	NotifyFlagResolved   = "flag_resolved"
)

type Notification struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID     uint   `gorm:"not null;index" json:"user_id"`
	Type       string `gorm:"not null;type:varchar(30)" json:"type"`
	Message    string `gorm:"not null" json:"message"`
	QuestionID *uint  `json:"question_id,omitempty"`
	AnswerID   *uint  `json:"answer_id,omitempty"`
	IsRead     bool   `gorm:"not null;default:false" json:"is_read"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
