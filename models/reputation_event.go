package models

import (
	"time"
)

// Ledger reasons recorded by the engines.
const (
	ReasonBountyOffered = "bounty offered"
	ReasonBountyAwarded = "bounty awarded"
	ReasonAdminAdjust   = "admin adjustment"
	ReasonSignupBonus   = "signup bonus"
)

// ReputationEvent is one immutable entry of a user's reputation ledger.
// Rows are append-only; a user's reputation column equals the sum of all
// Change values since account creation.
type ReputationEvent struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	Change     int64     `gorm:"not null" json:"change"`
	Reason     string    `gorm:"not null" json:"reason"`
	QuestionID *uint     `json:"question_id,omitempty"`
	AnswerID   *uint     `json:"answer_id,omitempty"`

	User     User      `gorm:"foreignKey:UserID" json:"-"`
	Question *Question `gorm:"foreignKey:QuestionID" json:"-"`
	Answer   *Answer   `gorm:"foreignKey:AnswerID" json:"-"`
}
