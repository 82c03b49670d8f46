package models

import (
	"time"
)

const (
	FlagPending   = "pending"
	FlagResolved  = "resolved"
	FlagDismissed = "dismissed"
)

// FlagReasons is the closed set accepted from reporters.
var FlagReasons = []string{"spam", "abuse", "off-topic", "low-quality", "plagiarism", "other"}

type Flag struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ContentType string `gorm:"not null;type:varchar(10)" json:"content_type"` // question, answer
	ContentID   uint   `gorm:"not null;index" json:"content_id"`
	Reason      string `gorm:"not null" json:"reason"`
	Description string `json:"description"`
	ReporterID  uint   `gorm:"not null" json:"reporter_id"`
	Status      string `gorm:"not null;default:'pending'" json:"status"` // pending, resolved, dismissed

	Reporter User `gorm:"foreignKey:ReporterID" json:"reporter"`
}
