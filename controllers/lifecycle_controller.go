package controllers

import (
	"net/http"

	"github.com/ask-stack/api-go/models"
	"github.com/ask-stack/api-go/services"
	"github.com/ask-stack/api-go/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type LifecycleController struct {
	DB        *gorm.DB
	Lifecycle *services.LifecycleService
}

func NewLifecycleController(db *gorm.DB, lifecycle *services.LifecycleService) *LifecycleController {
	return &LifecycleController{DB: db, Lifecycle: lifecycle}
}

// SoftDeleteItem godoc
// @Summary Soft-delete a question or answer
// @Description Hides the item from non-admin listings; reversible via restore
// @Tags lifecycle
// @Produce json
// @Param type path string true "Item type (question or answer)"
// @Param id path string true "Item ID"
// @Success 200 {object} map[string]interface{}
// @Router /items/{type}/{id}/soft-delete [post]
func (lc *LifecycleController) SoftDeleteItem(c *gin.Context) {
	user := utils.GetUser(c)
	targetType := c.Param("type")
	targetID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := lc.Lifecycle.SoftDelete(targetType, targetID, user.UserID, user.IsAdmin()); err != nil {
		handleServiceError(c, err)
		return
	}

	lc.respondWithItem(c, targetType, targetID)
}

// RestoreItem godoc
// @Summary Restore a soft-deleted question or answer
// @Tags lifecycle
// @Produce json
// @Param type path string true "Item type (question or answer)"
// @Param id path string true "Item ID"
// @Success 200 {object} map[string]interface{}
// @Router /items/{type}/{id}/restore [post]
func (lc *LifecycleController) RestoreItem(c *gin.Context) {
	user := utils.GetUser(c)
	targetType := c.Param("type")
	targetID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := lc.Lifecycle.Restore(targetType, targetID, user.IsAdmin()); err != nil {
		handleServiceError(c, err)
		return
	}

	lc.respondWithItem(c, targetType, targetID)
}

func (lc *LifecycleController) respondWithItem(c *gin.Context, targetType string, targetID uint) {
	switch targetType {
	case models.TargetQuestion:
		var question models.Question
		if err := lc.DB.First(&question, targetID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "success": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "question": question})
	case models.TargetAnswer:
		var answer models.Answer
		if err := lc.DB.First(&answer, targetID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "success": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "answer": answer})
	}
}
