package controllers

import (
	"net/http"

	"github.com/ask-stack/api-go/models"
	"github.com/ask-stack/api-go/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FlagController struct {
	DB *gorm.DB
}

type CreateFlagRequest struct {
	ContentType string `json:"contentType" binding:"required,oneof=question answer"`
	ContentID   uint   `json:"contentId" binding:"required"`
	Reason      string `json:"reason" binding:"required"`
	Description string `json:"description"`
}

func NewFlagController(db *gorm.DB) *FlagController {
	return &FlagController{DB: db}
}

func validFlagReason(reason string) bool {
	for _, r := range models.FlagReasons {
		if r == reason {
			return true
		}
	}
	return false
}

// CreateFlag godoc
// @Summary Flag a question or answer for moderation
// @Tags flags
// @Accept json
// @Produce json
// @Param flag body CreateFlagRequest true "Flag"
// @Success 201 {object} models.Flag
// @Router /flags [post]
func (fc *FlagController) CreateFlag(c *gin.Context) {
	user := utils.GetUser(c)
	var req CreateFlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}
	if !validFlagReason(req.Reason) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown flag reason", "success": false})
		return
	}

	// The flagged content must exist and be visible
	var count int64
	switch req.ContentType {
	case models.TargetQuestion:
		fc.DB.Model(&models.Question{}).Where("id = ? AND is_deleted = ?", req.ContentID, false).Count(&count)
	case models.TargetAnswer:
		fc.DB.Model(&models.Answer{}).Where("id = ? AND is_deleted = ?", req.ContentID, false).Count(&count)
	}
	if count == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Content not found", "success": false})
		return
	}

	// One pending flag per reporter per item
	var existing int64
	fc.DB.Model(&models.Flag{}).
		Where("content_type = ? AND content_id = ? AND reporter_id = ? AND status = ?",
			req.ContentType, req.ContentID, user.UserID, models.FlagPending).
		Count(&existing)
	if existing > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "You have already flagged this content", "success": false})
		return
	}

	flag := models.Flag{
		ContentType: req.ContentType,
		ContentID:   req.ContentID,
		Reason:      req.Reason,
		Description: req.Description,
		ReporterID:  user.UserID,
		Status:      models.FlagPending,
	}
	if err := fc.DB.Create(&flag).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create flag", "success": false})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "flag": flag})
}

// ListFlags godoc
// @Summary List flags for moderation
// @Tags flags
// @Produce json
// @Param status query string false "Filter by status"
// @Success 200 {object} StandardResponse
// @Router /admin/flags [get]
func (fc *FlagController) ListFlags(c *gin.Context) {
	page, pageSize, offset := parsePagination(c)

	query := fc.DB.Model(&models.Flag{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var flags []models.Flag
	result := query.Preload("Reporter").
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&flags)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching flags", "success": false})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success:    true,
		Data:       flags,
		Pagination: paginationMeta(page, pageSize, total),
	})
}

// ResolveFlag godoc
// @Summary Resolve or dismiss a flag
// @Tags flags
// @Accept json
// @Produce json
// @Param id path string true "Flag ID"
// @Success 200 {object} models.Flag
// @Router /admin/flags/{id} [put]
func (fc *FlagController) ResolveFlag(c *gin.Context) {
	flagID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required,oneof=resolved dismissed"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	var flag models.Flag
	if err := fc.DB.First(&flag, flagID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Flag not found", "success": false})
		return
	}
	if flag.Status != models.FlagPending {
		c.JSON(http.StatusConflict, gin.H{"error": "Flag is already closed", "success": false})
		return
	}

	tx := fc.DB.Begin()

	// Guard against two moderators closing the same flag
	result := tx.Model(&models.Flag{}).
		Where("id = ? AND status = ?", flagID, models.FlagPending).
		Update("status", req.Status)
	if result.Error != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update flag", "success": false})
		return
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		c.JSON(http.StatusConflict, gin.H{"error": "Flag is already closed", "success": false})
		return
	}

	notification := models.Notification{
		UserID:  flag.ReporterID,
		Type:    models.NotifyFlagResolved,
		Message: "Your flag was " + req.Status,
	}
	if err := tx.Create(&notification).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update flag", "success": false})
		return
	}

	tx.Commit()

	flag.Status = req.Status
	c.JSON(http.StatusOK, gin.H{"success": true, "flag": flag})
}
