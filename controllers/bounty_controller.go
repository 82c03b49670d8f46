package controllers

import (
	"net/http"

	"github.com/ask-stack/api-go/services"
	"github.com/ask-stack/api-go/utils"
	"github.com/gin-gonic/gin"
)

type BountyController struct {
	Bounties *services.BountyService
}

type OfferBountyRequest struct {
	Amount int64 `json:"amount" binding:"required"`
}

type AwardBountyRequest struct {
	AnswerID uint `json:"answerId" binding:"required"`
}

func NewBountyController(bounties *services.BountyService) *BountyController {
	return &BountyController{Bounties: bounties}
}

// OfferBounty godoc
// @Summary Offer a bounty on a question
// @Description Escrows reputation from the question author into the bounty; repeated offers accumulate
// @Tags bounties
// @Accept json
// @Produce json
// @Param id path string true "Question ID"
// @Param bounty body OfferBountyRequest true "Bounty amount"
// @Success 200 {object} services.BountyResult
// @Router /questions/{id}/bounty [post]
func (bc *BountyController) OfferBounty(c *gin.Context) {
	user := utils.GetUser(c)
	questionID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req OfferBountyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	result, err := bc.Bounties.Offer(questionID, user.UserID, req.Amount)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"bounty": gin.H{
			"amount": result.Question.BountyAmount,
			"status": result.Question.BountyStatus,
		},
		"reputation": result.Reputation,
	})
}

// AwardBounty godoc
// @Summary Award an open bounty to an answer
// @Description Credits the answer author and closes the bounty; awarded is terminal
// @Tags bounties
// @Accept json
// @Produce json
// @Param id path string true "Question ID"
// @Param award body AwardBountyRequest true "Answer to award"
// @Success 200 {object} services.AwardResult
// @Router /questions/{id}/bounty/award [post]
func (bc *BountyController) AwardBounty(c *gin.Context) {
	user := utils.GetUser(c)
	questionID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req AwardBountyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	result, err := bc.Bounties.Award(questionID, user.UserID, req.AnswerID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"bounty": gin.H{
			"amount":    result.Question.BountyAmount,
			"status":    result.Question.BountyStatus,
			"awardedTo": result.Question.BountyAwardedToID,
			"awardedAt": result.Question.BountyAwardedAt,
		},
		"answerAuthor": gin.H{
			"id":         result.AnswerAuthor.ID,
			"reputation": result.AnswerAuthor.Reputation,
		},
	})
}
