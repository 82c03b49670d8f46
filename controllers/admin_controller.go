package controllers

import (
	"net/http"
	"time"

	"github.com/ask-stack/api-go/models"
	"github.com/ask-stack/api-go/services"
	"github.com/ask-stack/api-go/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminController struct {
	DB         *gorm.DB
	Reputation *services.ReputationService
}

type BanUserRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type AdjustReputationRequest struct {
	Change int64  `json:"change" binding:"required"`
	Reason string `json:"reason"`
}

func NewAdminController(db *gorm.DB, reputation *services.ReputationService) *AdminController {
	return &AdminController{DB: db, Reputation: reputation}
}

// BanUser godoc
// @Summary Ban a user
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param ban body BanUserRequest true "Ban reason"
// @Success 200 {object} map[string]interface{}
// @Router /admin/users/{id}/ban [post]
func (ac *AdminController) BanUser(c *gin.Context) {
	admin := utils.GetUser(c)
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}
	if userID == admin.UserID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot ban yourself", "success": false})
		return
	}

	var req BanUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	now := time.Now()
	result := ac.DB.Model(&models.User{}).
		Where("id = ? AND is_banned = ?", userID, false).
		Updates(map[string]interface{}{"is_banned": true, "banned_at": now, "ban_reason": req.Reason})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to ban user", "success": false})
		return
	}
	if result.RowsAffected == 0 {
		var count int64
		ac.DB.Model(&models.User{}).Where("id = ?", userID).Count(&count)
		if count == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found", "success": false})
		} else {
			c.JSON(http.StatusConflict, gin.H{"error": "User is already banned", "success": false})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User banned"})
}

// UnbanUser godoc
// @Summary Lift a user's ban
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Router /admin/users/{id}/unban [post]
func (ac *AdminController) UnbanUser(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}

	result := ac.DB.Model(&models.User{}).
		Where("id = ? AND is_banned = ?", userID, true).
		Updates(map[string]interface{}{"is_banned": false, "banned_at": nil, "ban_reason": ""})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unban user", "success": false})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "User is not banned", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User unbanned"})
}

// AdjustReputation godoc
// @Summary Apply a manual reputation adjustment
// @Description Goes through the ledger like every other reputation change
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param adjustment body AdjustReputationRequest true "Adjustment"
// @Success 200 {object} map[string]interface{}
// @Router /admin/users/{id}/reputation [post]
func (ac *AdminController) AdjustReputation(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req AdjustReputationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}
	reason := req.Reason
	if reason == "" {
		reason = models.ReasonAdminAdjust
	}

	tx := ac.DB.Begin()
	balance, err := ac.Reputation.ApplyDelta(tx, userID, req.Change, reason, nil, nil)
	if err != nil {
		tx.Rollback()
		handleServiceError(c, err)
		return
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "reputation": balance})
}
