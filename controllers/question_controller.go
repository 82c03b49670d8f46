package controllers

import (
	"net/http"
	"strings"

	"github.com/ask-stack/api-go/models"
	"github.com/ask-stack/api-go/services"
	"github.com/ask-stack/api-go/utils"
	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type QuestionController struct {
	DB    *gorm.DB
	Votes *services.VoteService
}

type CreateQuestionRequest struct {
	Title   string   `json:"title" binding:"required,min=10,max=200"`
	Content string   `json:"content" binding:"required,min=20"`
	Tags    []string `json:"tags" binding:"max=5"`
}

type UpdateQuestionRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

func NewQuestionController(db *gorm.DB, votes *services.VoteService) *QuestionController {
	return &QuestionController{DB: db, Votes: votes}
}

// questionSortClause maps the closed set of sort options to explicit
// orderings. Unknown values fall back to newest.
func questionSortClause(sort string) string {
	switch sort {
	case "votes":
		return "(SELECT COALESCE(SUM(value), 0) FROM votes WHERE votes.target_type = 'question' AND votes.target_id = questions.id) DESC, questions.created_at DESC"
	case "views":
		return "questions.views DESC, questions.created_at DESC"
	case "active":
		return "questions.updated_at DESC"
	case "bounty":
		return "questions.bounty_amount DESC, questions.created_at DESC"
	default: // newest
		return "questions.created_at DESC"
	}
}

// CreateQuestion godoc
// @Summary Post a new question
// @Tags questions
// @Accept json
// @Produce json
// @Param question body CreateQuestionRequest true "Question"
// @Success 201 {object} models.Question
// @Router /questions [post]
func (qc *QuestionController) CreateQuestion(c *gin.Context) {
	user := utils.GetUser(c)
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	tags := make([]string, 0, len(req.Tags))
	for _, tag := range req.Tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag != "" {
			tags = append(tags, tag)
		}
	}

	question := models.Question{
		Title:        req.Title,
		Content:      req.Content,
		Tags:         pq.StringArray(tags),
		UserID:       user.UserID,
		BountyStatus: models.BountyNone,
	}

	if err := qc.DB.Create(&question).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create question", "success": false})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "question": question})
}

// GetQuestion godoc
// @Summary Get question detail
// @Description Returns the question with its visible answers and vote sets; increments the view counter
// @Tags questions
// @Produce json
// @Param id path string true "Question ID"
// @Success 200 {object} models.Question
// @Router /questions/{id} [get]
func (qc *QuestionController) GetQuestion(c *gin.Context) {
	user := utils.GetUser(c)
	questionID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var question models.Question
	if err := qc.DB.Preload("User").First(&question, questionID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found", "success": false})
		return
	}
	if question.IsDeleted && (user == nil || !user.IsAdmin()) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found", "success": false})
		return
	}

	// Monotonic counter; a plain increment keeps concurrent views from
	// losing updates.
	qc.DB.Model(&question).Update("views", gorm.Expr("views + 1"))
	question.Views++

	answersQuery := qc.DB.Preload("User").Where("question_id = ?", questionID)
	if user == nil || !user.IsAdmin() {
		answersQuery = answersQuery.Where("is_deleted = ?", false)
	}
	var answers []models.Answer
	answersQuery.Order("is_accepted DESC, created_at ASC").Find(&answers)
	question.Answers = answers

	votes, _ := qc.Votes.Summary(models.TargetQuestion, questionID)

	c.JSON(http.StatusOK, gin.H{"success": true, "question": question, "votes": votes})
}

// ListQuestions godoc
// @Summary List questions
// @Description Paginated listing with sort option {newest, active, votes, views, bounty} and tag filter; deleted questions appear only for admins asking includeDeleted
// @Tags questions
// @Produce json
// @Param sort query string false "Sort option"
// @Param tag query string false "Tag filter"
// @Param page query integer false "Page number"
// @Param pageSize query integer false "Items per page"
// @Success 200 {object} StandardResponse
// @Router /questions [get]
func (qc *QuestionController) ListQuestions(c *gin.Context) {
	user := utils.GetUser(c)
	page, pageSize, offset := parsePagination(c)

	query := qc.DB.Model(&models.Question{})
	includeDeleted := c.Query("includeDeleted") == "true" && user != nil && user.IsAdmin()
	if !includeDeleted {
		query = query.Where("is_deleted = ?", false)
	}
	if tag := strings.ToLower(strings.TrimSpace(c.Query("tag"))); tag != "" {
		query = query.Where("? = ANY(tags)", tag)
	}

	var total int64
	query.Count(&total)

	var questions []models.Question
	result := query.Preload("User").
		Order(questionSortClause(c.Query("sort"))).
		Offset(offset).
		Limit(pageSize).
		Find(&questions)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching questions", "success": false})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success:    true,
		Data:       questions,
		Pagination: paginationMeta(page, pageSize, total),
	})
}

// UpdateQuestion godoc
// @Summary Edit a question
// @Tags questions
// @Accept json
// @Produce json
// @Param id path string true "Question ID"
// @Success 200 {object} models.Question
// @Router /questions/{id} [put]
func (qc *QuestionController) UpdateQuestion(c *gin.Context) {
	user := utils.GetUser(c)
	questionID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var question models.Question
	if err := qc.DB.First(&question, questionID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found", "success": false})
		return
	}
	if question.IsDeleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found", "success": false})
		return
	}
	if question.UserID != user.UserID && !user.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only edit your own questions", "success": false})
		return
	}

	var req UpdateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	updates := map[string]interface{}{}
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Content != "" {
		updates["content"] = req.Content
	}
	if req.Tags != nil {
		tags := make([]string, 0, len(req.Tags))
		for _, tag := range req.Tags {
			tag = strings.ToLower(strings.TrimSpace(tag))
			if tag != "" {
				tags = append(tags, tag)
			}
		}
		updates["tags"] = pq.StringArray(tags)
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update", "success": false})
		return
	}

	if err := qc.DB.Model(&question).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update question", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "question": question})
}

// BookmarkQuestion godoc
// @Summary Bookmark or unbookmark a question
// @Description Toggles the caller's bookmark on a question
// @Tags questions
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /questions/{id}/bookmark [post]
func (qc *QuestionController) BookmarkQuestion(c *gin.Context) {
	qc.toggleQuestionSet(c, "bookmarks", "bookmarked")
}

// FollowQuestion godoc
// @Summary Follow or unfollow a question
// @Description Toggles the caller's follow on a question
// @Tags questions
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /questions/{id}/follow [post]
func (qc *QuestionController) FollowQuestion(c *gin.Context) {
	qc.toggleQuestionSet(c, "question_follows", "following")
}

func (qc *QuestionController) toggleQuestionSet(c *gin.Context, table, field string) {
	user := utils.GetUser(c)
	questionID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var question models.Question
	if err := qc.DB.First(&question, questionID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found", "success": false})
		return
	}
	if question.IsDeleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found", "success": false})
		return
	}

	var count int64
	qc.DB.Table(table).Where("user_id = ? AND question_id = ?", user.UserID, questionID).Count(&count)

	if count == 0 {
		err := qc.DB.Exec("INSERT INTO "+table+" (user_id, question_id) VALUES (?, ?)", user.UserID, questionID).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update " + field, "success": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, field: true})
	} else {
		err := qc.DB.Exec("DELETE FROM "+table+" WHERE user_id = ? AND question_id = ?", user.UserID, questionID).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update " + field, "success": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, field: false})
	}
}
