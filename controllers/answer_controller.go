package controllers

import (
	"net/http"

	"github.com/ask-stack/api-go/models"
	"github.com/ask-stack/api-go/services"
	"github.com/ask-stack/api-go/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AnswerController struct {
	DB         *gorm.DB
	Acceptance *services.AcceptService
	Eli5       *services.Eli5Service
	Votes      *services.VoteService
}

type CreateAnswerRequest struct {
	Content string `json:"content" binding:"required,min=20"`
}

type UpdateAnswerRequest struct {
	Content string `json:"content" binding:"required,min=20"`
}

type AcceptAnswerRequest struct {
	AnswerID uint `json:"answerId" binding:"required"`
}

func NewAnswerController(db *gorm.DB, acceptance *services.AcceptService, eli5 *services.Eli5Service, votes *services.VoteService) *AnswerController {
	return &AnswerController{DB: db, Acceptance: acceptance, Eli5: eli5, Votes: votes}
}

// CreateAnswer godoc
// @Summary Answer a question
// @Tags answers
// @Accept json
// @Produce json
// @Param id path string true "Question ID"
// @Param answer body CreateAnswerRequest true "Answer"
// @Success 201 {object} models.Answer
// @Router /questions/{id}/answers [post]
func (ac *AnswerController) CreateAnswer(c *gin.Context) {
	user := utils.GetUser(c)
	questionID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req CreateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	var question models.Question
	if err := ac.DB.First(&question, questionID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found", "success": false})
		return
	}
	if question.IsDeleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found", "success": false})
		return
	}

	tx := ac.DB.Begin()

	answer := models.Answer{
		Content:    req.Content,
		UserID:     user.UserID,
		QuestionID: questionID,
	}
	if err := tx.Create(&answer).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create answer", "success": false})
		return
	}

	if question.UserID != user.UserID {
		notification := models.Notification{
			UserID:     question.UserID,
			Type:       models.NotifyNewAnswer,
			Message:    "Your question has a new answer",
			QuestionID: &questionID,
			AnswerID:   &answer.ID,
		}
		if err := tx.Create(&notification).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create answer", "success": false})
			return
		}
	}

	tx.Commit()
	c.JSON(http.StatusCreated, gin.H{"success": true, "answer": answer})
}

// ListAnswers godoc
// @Summary List a question's answers
// @Description Accepted answer first, then oldest first; deleted answers only for admins
// @Tags answers
// @Produce json
// @Param id path string true "Question ID"
// @Success 200 {object} StandardResponse
// @Router /questions/{id}/answers [get]
func (ac *AnswerController) ListAnswers(c *gin.Context) {
	user := utils.GetUser(c)
	questionID, ok := parseID(c, "id")
	if !ok {
		return
	}

	query := ac.DB.Preload("User").Where("question_id = ?", questionID)
	if user == nil || !user.IsAdmin() || c.Query("includeDeleted") != "true" {
		query = query.Where("is_deleted = ?", false)
	}

	var answers []models.Answer
	if err := query.Order("is_accepted DESC, created_at ASC").Find(&answers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching answers", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "answers": answers})
}

// UpdateAnswer godoc
// @Summary Edit an answer
// @Description Editing clears any cached ELI5 explanation
// @Tags answers
// @Accept json
// @Produce json
// @Param id path string true "Answer ID"
// @Success 200 {object} models.Answer
// @Router /answers/{id} [put]
func (ac *AnswerController) UpdateAnswer(c *gin.Context) {
	user := utils.GetUser(c)
	answerID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var answer models.Answer
	if err := ac.DB.First(&answer, answerID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Answer not found", "success": false})
		return
	}
	if answer.IsDeleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Answer not found", "success": false})
		return
	}
	if answer.UserID != user.UserID && !user.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only edit your own answers", "success": false})
		return
	}

	var req UpdateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	// The cached explanation describes the old text
	updates := map[string]interface{}{"content": req.Content, "eli5_content": nil}
	if err := ac.DB.Model(&answer).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update answer", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "answer": answer})
}

// AcceptAnswer godoc
// @Summary Accept an answer
// @Description Marks one answer as the question's solution, displacing any previous one
// @Tags answers
// @Accept json
// @Produce json
// @Param id path string true "Question ID"
// @Param accept body AcceptAnswerRequest true "Answer to accept"
// @Success 200 {object} map[string]interface{}
// @Router /questions/{id}/accept-answer [post]
func (ac *AnswerController) AcceptAnswer(c *gin.Context) {
	user := utils.GetUser(c)
	questionID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req AcceptAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	if err := ac.Acceptance.Accept(questionID, user.UserID, req.AnswerID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Answer accepted"})
}

// UnacceptAnswer godoc
// @Summary Clear the accepted answer
// @Tags answers
// @Produce json
// @Param id path string true "Question ID"
// @Success 200 {object} map[string]interface{}
// @Router /questions/{id}/accept-answer [delete]
func (ac *AnswerController) UnacceptAnswer(c *gin.Context) {
	user := utils.GetUser(c)
	questionID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := ac.Acceptance.Unaccept(questionID, user.UserID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Accepted answer cleared"})
}

// ExplainAnswer godoc
// @Summary Get a simplified explanation of an answer
// @Description Returns the cached ELI5 text, generating it via the assistant on first request
// @Tags answers
// @Produce json
// @Param id path string true "Answer ID"
// @Success 200 {object} map[string]interface{}
// @Router /answers/{id}/eli5 [post]
func (ac *AnswerController) ExplainAnswer(c *gin.Context) {
	answerID, ok := parseID(c, "id")
	if !ok {
		return
	}

	explanation, err := ac.Eli5.Explain(c.Request.Context(), answerID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "eli5": explanation})
}
