package controllers

import (
	"net/http"

	"github.com/ask-stack/api-go/models"
	"github.com/ask-stack/api-go/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// ListNotifications godoc
// @Summary List the caller's notifications
// @Tags notifications
// @Produce json
// @Param unread query boolean false "Only unread"
// @Success 200 {object} StandardResponse
// @Router /notifications [get]
func (nc *NotificationController) ListNotifications(c *gin.Context) {
	user := utils.GetUser(c)
	page, pageSize, offset := parsePagination(c)

	query := nc.DB.Model(&models.Notification{}).Where("user_id = ?", user.UserID)
	if c.Query("unread") == "true" {
		query = query.Where("is_read = ?", false)
	}

	var total int64
	query.Count(&total)

	var notifications []models.Notification
	result := query.Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&notifications)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching notifications", "success": false})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success:    true,
		Data:       notifications,
		Pagination: paginationMeta(page, pageSize, total),
	})
}

// MarkNotificationRead godoc
// @Summary Mark a notification as read
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} map[string]interface{}
// @Router /notifications/{id}/read [post]
func (nc *NotificationController) MarkNotificationRead(c *gin.Context) {
	user := utils.GetUser(c)
	notificationID, ok := parseID(c, "id")
	if !ok {
		return
	}

	result := nc.DB.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, user.UserID).
		Update("is_read", true)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notification", "success": false})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
