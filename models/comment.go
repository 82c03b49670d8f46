package models

import (
	"time"
)

type Comment struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Content    string `gorm:"type:text;not null" json:"content"`
	UserID     uint   `gorm:"not null" json:"user_id"`
	User       User   `gorm:"foreignKey:UserID" json:"user"`
	TargetType string `gorm:"not null;type:varchar(10)" json:"target_type"` // question, answer
	TargetID   uint   `gorm:"not null;index" json:"target_id"`
}
