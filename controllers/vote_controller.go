package controllers

import (
	"net/http"

	"github.com/ask-stack/api-go/services"
	"github.com/ask-stack/api-go/utils"
	"github.com/gin-gonic/gin"
)

type VoteController struct {
	Votes *services.VoteService
}

type VoteRequest struct {
	Direction string `json:"direction" binding:"required,oneof=up down"`
}

func NewVoteController(votes *services.VoteService) *VoteController {
	return &VoteController{Votes: votes}
}

// VoteItem godoc
// @Summary Vote on a question or answer
// @Description Toggles the caller's up/down vote on an item
// @Tags votes
// @Accept json
// @Produce json
// @Param type path string true "Item type (question or answer)"
// @Param id path string true "Item ID"
// @Param vote body VoteRequest true "Vote direction"
// @Success 200 {object} services.VoteSummary
// @Router /items/{type}/{id}/vote [post]
func (vc *VoteController) VoteItem(c *gin.Context) {
	user := utils.GetUser(c)
	targetType := c.Param("type")
	targetID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	summary, err := vc.Votes.Vote(targetType, targetID, user.UserID, req.Direction)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "votes": summary})
}

// GetVotes godoc
// @Summary Get vote sets for an item
// @Tags votes
// @Produce json
// @Success 200 {object} services.VoteSummary
// @Router /items/{type}/{id}/votes [get]
func (vc *VoteController) GetVotes(c *gin.Context) {
	targetType := c.Param("type")
	targetID, ok := parseID(c, "id")
	if !ok {
		return
	}

	summary, err := vc.Votes.Summary(targetType, targetID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "votes": summary})
}
