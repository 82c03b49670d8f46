package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ask-stack/api-go/models"
	"github.com/ask-stack/api-go/services"
	"github.com/ask-stack/api-go/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newControllerTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Question{},
		&models.Answer{},
		&models.Vote{},
	))
	return db
}

func newControllerTestUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	password := "password123"
	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: &password,
		Role:     models.RoleUser,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

// asUser stands in for the JWT middleware in tests.
func asUser(userID uint, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(utils.UserContextKey), &utils.UserClaims{UserID: userID, Role: role})
		c.Next()
	}
}

func newVoteRouter(db *gorm.DB, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	vc := NewVoteController(services.NewVoteService(db, services.Rules{}))
	r := gin.New()
	r.POST("/api/items/:type/:id/vote", asUser(userID, models.RoleUser), vc.VoteItem)
	r.GET("/api/items/:type/:id/votes", vc.GetVotes)
	return r
}

func postVote(t *testing.T, r *gin.Engine, targetType string, targetID uint, direction string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(gin.H{"direction": direction})
	require.NoError(t, err)
	url := fmt.Sprintf("/api/items/%s/%d/vote", targetType, targetID)
	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestVoteItemEndpoint(t *testing.T) {
	db := newControllerTestDB(t)
	author := newControllerTestUser(t, db, "author")
	voter := newControllerTestUser(t, db, "voter")
	question := models.Question{UserID: author.ID, Title: "How do goroutines work?", Content: "Details inside"}
	require.NoError(t, db.Create(&question).Error)

	r := newVoteRouter(db, voter.ID)

	w := postVote(t, r, models.TargetQuestion, question.ID, "up")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                  `json:"success"`
		Votes   services.VoteSummary  `json:"votes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, []uint{voter.ID}, resp.Votes.Upvoters)
	assert.Equal(t, int64(1), resp.Votes.Score)

	// Same direction again toggles the vote off
	w = postVote(t, r, models.TargetQuestion, question.ID, "up")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Votes.Upvoters)
	assert.Equal(t, int64(0), resp.Votes.Score)
}

func TestVoteItemEndpointErrors(t *testing.T) {
	db := newControllerTestDB(t)
	author := newControllerTestUser(t, db, "author")
	question := models.Question{UserID: author.ID, Title: "Self vote?", Content: "Content"}
	require.NoError(t, db.Create(&question).Error)

	r := newVoteRouter(db, author.ID)

	// Binding rejects unknown directions before the engine runs
	w := postVote(t, r, models.TargetQuestion, question.ID, "sideways")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Self votes map to 403
	w = postVote(t, r, models.TargetQuestion, question.ID, "up")
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Unknown items map to 404
	w = postVote(t, r, models.TargetQuestion, 9999, "up")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Bad IDs are rejected in the controller
	req := httptest.NewRequest(http.MethodPost, "/api/items/question/abc/vote", bytes.NewReader([]byte(`{"direction":"up"}`)))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetVotesEndpoint(t *testing.T) {
	db := newControllerTestDB(t)
	author := newControllerTestUser(t, db, "author")
	question := models.Question{UserID: author.ID, Title: "Scores", Content: "Content"}
	require.NoError(t, db.Create(&question).Error)
	require.NoError(t, db.Create(&models.Vote{UserID: author.ID + 1, TargetType: models.TargetQuestion, TargetID: question.ID, Value: models.VoteDown}).Error)

	r := newVoteRouter(db, author.ID)
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/items/question/%d/votes", question.ID), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Votes services.VoteSummary `json:"votes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(-1), resp.Votes.Score)
	assert.Len(t, resp.Votes.Downvoters, 1)
}
