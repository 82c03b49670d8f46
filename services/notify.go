package services

import (
	"github.com/ask-stack/api-go/models"
	"gorm.io/gorm"
)

func createNotification(tx *gorm.DB, userID uint, notifType, message string, questionID, answerID *uint) error {
	notification := models.Notification{
		UserID:     userID,
		Type:       notifType,
		Message:    message,
		QuestionID: questionID,
		AnswerID:   answerID,
	}
	return tx.Create(&notification).Error
}
