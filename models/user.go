package models

import (
	"time"
)

const (
	RoleGuest = "guest"
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Username  string    `gorm:"unique;not null" json:"username"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  *string   `gorm:"column:password" json:"-"` // Don't expose password in JSON
	Bio       string    `json:"bio"`
	Avatar    string    `json:"avatar"`
	Role      string    `gorm:"not null;default:'user';type:varchar(20)" json:"role"` // guest, user, admin
	Provider  string    `gorm:"default:'email'" json:"provider"`
	GoogleID  *string   `gorm:"uniqueIndex" json:"-"`

	// Reputation is written only through the reputation ledger; it must
	// always equal the sum of ReputationHistory changes.
	Reputation        int64             `gorm:"not null;default:0" json:"reputation"`
	ReputationHistory []ReputationEvent `json:"reputation_history,omitempty" gorm:"foreignKey:UserID"`

	IsBanned  bool       `gorm:"not null;default:false" json:"is_banned"`
	BannedAt  *time.Time `json:"banned_at,omitempty"`
	BanReason string     `json:"ban_reason,omitempty"`

	Questions         []Question `json:"questions,omitempty" gorm:"foreignKey:UserID"`
	Answers           []Answer   `json:"answers,omitempty" gorm:"foreignKey:UserID"`
	Bookmarks         []Question `json:"bookmarks,omitempty" gorm:"many2many:bookmarks"`
	FollowedQuestions []Question `json:"followed_questions,omitempty" gorm:"many2many:question_follows"`

	RefreshTokens []RefreshToken `json:"-" gorm:"foreignKey:UserID"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
