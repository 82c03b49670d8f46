package models

import (
	"time"
)

type Answer struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Content    string   `json:"content" gorm:"type:text;not null"`
	UserID     uint     `json:"userId" gorm:"not null;index"`
	User       User     `json:"user" gorm:"foreignKey:UserID"`
	QuestionID uint     `json:"questionId" gorm:"not null;index"` // immutable after creation
	Question   Question `json:"-" gorm:"foreignKey:QuestionID"`

	IsAccepted bool `json:"isAccepted" gorm:"not null;default:false"`

	// Cached output of the ELI5 assistant; nil until first requested.
	Eli5Content *string `json:"eli5Content,omitempty" gorm:"type:text"`

	IsDeleted bool       `json:"isDeleted" gorm:"not null;default:false;index"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
