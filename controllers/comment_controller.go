package controllers

import (
	"net/http"

	"github.com/ask-stack/api-go/models"
	"github.com/ask-stack/api-go/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CommentController struct {
	DB *gorm.DB
}

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,min=3,max=500"`
}

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{DB: db}
}

// CreateComment godoc
// @Summary Comment on a question or answer
// @Tags comments
// @Accept json
// @Produce json
// @Param type path string true "Item type (question or answer)"
// @Param id path string true "Item ID"
// @Param comment body CreateCommentRequest true "Comment"
// @Success 201 {object} models.Comment
// @Router /items/{type}/{id}/comments [post]
func (cc *CommentController) CreateComment(c *gin.Context) {
	user := utils.GetUser(c)
	targetType := c.Param("type")
	targetID, ok := parseID(c, "id")
	if !ok {
		return
	}
	if targetType != models.TargetQuestion && targetType != models.TargetAnswer {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown item type", "success": false})
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	var count int64
	switch targetType {
	case models.TargetQuestion:
		cc.DB.Model(&models.Question{}).Where("id = ? AND is_deleted = ?", targetID, false).Count(&count)
	case models.TargetAnswer:
		cc.DB.Model(&models.Answer{}).Where("id = ? AND is_deleted = ?", targetID, false).Count(&count)
	}
	if count == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Content not found", "success": false})
		return
	}

	comment := models.Comment{
		Content:    req.Content,
		UserID:     user.UserID,
		TargetType: targetType,
		TargetID:   targetID,
	}
	if err := cc.DB.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment", "success": false})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "comment": comment})
}

// ListComments godoc
// @Summary List comments on a question or answer
// @Tags comments
// @Produce json
// @Param type path string true "Item type (question or answer)"
// @Param id path string true "Item ID"
// @Success 200 {object} StandardResponse
// @Router /items/{type}/{id}/comments [get]
func (cc *CommentController) ListComments(c *gin.Context) {
	targetType := c.Param("type")
	targetID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var comments []models.Comment
	result := cc.DB.Preload("User").
		Where("target_type = ? AND target_id = ?", targetType, targetID).
		Order("created_at ASC").
		Find(&comments)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching comments", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "comments": comments})
}
