package controllers

import (
	"net/http"

	"github.com/ask-stack/api-go/services"
	"github.com/ask-stack/api-go/utils"
	"github.com/gin-gonic/gin"
)

type ReputationController struct {
	Reputation *services.ReputationService
}

func NewReputationController(reputation *services.ReputationService) *ReputationController {
	return &ReputationController{Reputation: reputation}
}

// GetReputationHistory godoc
// @Summary Get a user's reputation ledger
// @Description Ordered ledger entries, most recent first; visible to the user themselves and to admins
// @Tags reputation
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} StandardResponse
// @Router /users/{id}/reputation [get]
func (rc *ReputationController) GetReputationHistory(c *gin.Context) {
	user := utils.GetUser(c)
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if user.UserID != userID && !user.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only view your own reputation history", "success": false})
		return
	}

	events, err := rc.Reputation.History(userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "history": events})
}
