package services

import (
	"errors"
	"testing"

	"github.com/ask-stack/api-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestVoteToggleOffReturnsToNoVote(t *testing.T) {
	db := newTestDB(t)
	vs := NewVoteService(db, Rules{})
	author := createTestUser(t, db, "author", 0)
	voter := createTestUser(t, db, "voter", 0)
	question := createTestQuestion(t, db, author.ID)

	summary, err := vs.Vote(models.TargetQuestion, question.ID, voter.ID, "up")
	require.NoError(t, err)
	assert.Equal(t, []uint{voter.ID}, summary.Upvoters)
	assert.Equal(t, int64(1), summary.Score)

	// Same direction again retracts
	summary, err = vs.Vote(models.TargetQuestion, question.ID, voter.ID, "up")
	require.NoError(t, err)
	assert.Empty(t, summary.Upvoters)
	assert.Empty(t, summary.Downvoters)
	assert.Equal(t, int64(0), summary.Score)
}

func TestVoteSwitchDirection(t *testing.T) {
	db := newTestDB(t)
	vs := NewVoteService(db, Rules{})
	author := createTestUser(t, db, "author", 0)
	voter := createTestUser(t, db, "voter", 0)
	answer := createTestAnswer(t, db, createTestQuestion(t, db, author.ID).ID, author.ID)

	_, err := vs.Vote(models.TargetAnswer, answer.ID, voter.ID, "up")
	require.NoError(t, err)

	// Opposite direction moves the voter to the other set, never both
	summary, err := vs.Vote(models.TargetAnswer, answer.ID, voter.ID, "down")
	require.NoError(t, err)
	assert.Empty(t, summary.Upvoters)
	assert.Equal(t, []uint{voter.ID}, summary.Downvoters)
	assert.Equal(t, int64(-1), summary.Score)
}

func TestVoteTwoUsersBothCounted(t *testing.T) {
	db := newTestDB(t)
	vs := NewVoteService(db, Rules{})
	author := createTestUser(t, db, "author", 0)
	x := createTestUser(t, db, "x", 0)
	y := createTestUser(t, db, "y", 0)
	answer := createTestAnswer(t, db, createTestQuestion(t, db, author.ID).ID, author.ID)

	_, err := vs.Vote(models.TargetAnswer, answer.ID, x.ID, "up")
	require.NoError(t, err)
	summary, err := vs.Vote(models.TargetAnswer, answer.ID, y.ID, "up")
	require.NoError(t, err)

	assert.ElementsMatch(t, []uint{x.ID, y.ID}, summary.Upvoters)
	assert.Equal(t, int64(2), summary.Score)
}

func TestSelfVotePolicy(t *testing.T) {
	db := newTestDB(t)
	author := createTestUser(t, db, "author", 0)
	question := createTestQuestion(t, db, author.ID)

	strict := NewVoteService(db, Rules{AllowSelfVote: false})
	_, err := strict.Vote(models.TargetQuestion, question.ID, author.ID, "up")
	assert.True(t, errors.Is(err, ErrForbidden))

	lenient := NewVoteService(db, Rules{AllowSelfVote: true})
	summary, err := lenient.Vote(models.TargetQuestion, question.ID, author.ID, "up")
	require.NoError(t, err)
	assert.Equal(t, []uint{author.ID}, summary.Upvoters)
}

func TestVoteOnDeletedItem(t *testing.T) {
	db := newTestDB(t)
	vs := NewVoteService(db, Rules{})
	author := createTestUser(t, db, "author", 0)
	voter := createTestUser(t, db, "voter", 0)
	question := createTestQuestion(t, db, author.ID)

	ls := NewLifecycleService(db, Rules{})
	require.NoError(t, ls.SoftDelete(models.TargetQuestion, question.ID, author.ID, false))

	_, err := vs.Vote(models.TargetQuestion, question.ID, voter.ID, "up")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestVoteValidation(t *testing.T) {
	db := newTestDB(t)
	vs := NewVoteService(db, Rules{})
	voter := createTestUser(t, db, "voter", 0)

	_, err := vs.Vote(models.TargetQuestion, 1, voter.ID, "sideways")
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = vs.Vote("place", 1, voter.ID, "up")
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = vs.Vote(models.TargetQuestion, 9999, voter.ID, "up")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestDuplicateVoteRowRejected(t *testing.T) {
	db := newTestDB(t)
	author := createTestUser(t, db, "author", 0)
	voter := createTestUser(t, db, "voter", 0)
	question := createTestQuestion(t, db, author.ID)

	vote := models.Vote{UserID: voter.ID, TargetType: models.TargetQuestion, TargetID: question.ID, Value: models.VoteUp}
	require.NoError(t, db.Create(&vote).Error)

	// A second row for the same user and item hits the unique index, and
	// the store surfaces it as the duplicate-key kind the engine maps to
	// a conflict when racing inserts slip past the lookup.
	dup := models.Vote{UserID: voter.ID, TargetType: models.TargetQuestion, TargetID: question.ID, Value: models.VoteDown}
	err := db.Create(&dup).Error
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
}
