package models

import (
	"time"
)

const (
	TargetQuestion = "question"
	TargetAnswer   = "answer"

	VoteUp   = 1
	VoteDown = -1
)

// Vote is one user's vote on one item. The unique index keeps a user in
// at most one direction per item; switching direction flips Value in place.
type Vote struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_votes_user_target" json:"user_id"`
	TargetType string    `gorm:"not null;type:varchar(10);uniqueIndex:idx_votes_user_target" json:"target_type"`
	TargetID   uint      `gorm:"not null;uniqueIndex:idx_votes_user_target" json:"target_id"`
	Value      int       `gorm:"not null" json:"value"` // +1 or -1
	CreatedAt  time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
