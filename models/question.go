package models

import (
	"time"

	"github.com/lib/pq"
)

// Bounty lifecycle on a question: none -> open -> awarded. Awarded is
// terminal; amount, awardedTo and awardedAt never change after that.
const (
	BountyNone    = "none"
	BountyOpen    = "open"
	BountyAwarded = "awarded"
)

type Question struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Title   string         `json:"title" gorm:"not null"`
	Content string         `json:"content" gorm:"type:text;not null"`
	Tags    pq.StringArray `json:"tags" gorm:"type:text[]"`
	UserID  uint           `json:"userId" gorm:"not null;index"`
	User    User           `json:"user" gorm:"foreignKey:UserID"`

	Views   int64    `json:"views" gorm:"not null;default:0"`
	Answers []Answer `json:"answers,omitempty" gorm:"foreignKey:QuestionID"`

	// AcceptedAnswerID must reference an answer of this question whose
	// IsAccepted flag is set; at most one such answer exists.
	AcceptedAnswerID *uint `json:"acceptedAnswerId,omitempty"`

	BountyAmount      int64      `json:"bountyAmount" gorm:"not null;default:0"`
	BountyStatus      string     `json:"bountyStatus" gorm:"not null;default:'none';type:varchar(10)"`
	BountyAwardedToID *uint      `json:"bountyAwardedToId,omitempty"`
	BountyAwardedAt   *time.Time `json:"bountyAwardedAt,omitempty"`

	IsDeleted bool       `json:"isDeleted" gorm:"not null;default:false;index"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
