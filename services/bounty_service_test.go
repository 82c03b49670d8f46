package services

import (
	"errors"
	"testing"

	"github.com/ask-stack/api-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newBountyService(db *gorm.DB, rules Rules) *BountyService {
	return NewBountyService(db, NewReputationService(db), rules)
}

func TestBountyOfferEscrowsReputation(t *testing.T) {
	db := newTestDB(t)
	bs := newBountyService(db, Rules{})
	asker := createTestUser(t, db, "asker", 100)
	question := createTestQuestion(t, db, asker.ID)

	result, err := bs.Offer(question.ID, asker.ID, 30)
	require.NoError(t, err)

	assert.Equal(t, int64(70), result.Reputation)
	assert.Equal(t, int64(30), result.Question.BountyAmount)
	assert.Equal(t, models.BountyOpen, result.Question.BountyStatus)
	requireLedgerConsistent(t, db, asker.ID)
}

func TestBountyOffersAccumulate(t *testing.T) {
	db := newTestDB(t)
	bs := newBountyService(db, Rules{})
	asker := createTestUser(t, db, "asker", 100)
	question := createTestQuestion(t, db, asker.ID)

	_, err := bs.Offer(question.ID, asker.ID, 30)
	require.NoError(t, err)
	result, err := bs.Offer(question.ID, asker.ID, 20)
	require.NoError(t, err)

	assert.Equal(t, int64(50), result.Question.BountyAmount)
	assert.Equal(t, int64(50), result.Reputation)
	requireLedgerConsistent(t, db, asker.ID)
}

func TestBountyOfferGuards(t *testing.T) {
	db := newTestDB(t)
	bs := newBountyService(db, Rules{})
	asker := createTestUser(t, db, "asker", 10)
	other := createTestUser(t, db, "other", 100)
	question := createTestQuestion(t, db, asker.ID)

	_, err := bs.Offer(question.ID, other.ID, 10)
	assert.True(t, errors.Is(err, ErrForbidden))

	_, err = bs.Offer(question.ID, asker.ID, 0)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = bs.Offer(question.ID, asker.ID, -5)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = bs.Offer(question.ID, asker.ID, 50)
	assert.True(t, errors.Is(err, ErrInsufficientReputation))

	// A rejected spend leaves no partial effect
	var fresh models.Question
	require.NoError(t, db.First(&fresh, question.ID).Error)
	assert.Equal(t, int64(0), fresh.BountyAmount)
	assert.Equal(t, models.BountyNone, fresh.BountyStatus)
	requireLedgerConsistent(t, db, asker.ID)

	_, err = bs.Offer(9999, asker.ID, 10)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestBountyOfferCap(t *testing.T) {
	db := newTestDB(t)
	bs := newBountyService(db, Rules{MaxBounty: 40})
	asker := createTestUser(t, db, "asker", 100)
	question := createTestQuestion(t, db, asker.ID)

	_, err := bs.Offer(question.ID, asker.ID, 30)
	require.NoError(t, err)

	_, err = bs.Offer(question.ID, asker.ID, 20)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	// The rejected top-up debits nothing and the amount stays put
	var fresh models.Question
	require.NoError(t, db.First(&fresh, question.ID).Error)
	assert.Equal(t, int64(30), fresh.BountyAmount)
	var asker2 models.User
	require.NoError(t, db.First(&asker2, asker.ID).Error)
	assert.Equal(t, int64(70), asker2.Reputation)
	requireLedgerConsistent(t, db, asker.ID)

	// A top-up that reaches the cap exactly is still allowed
	result, err := bs.Offer(question.ID, asker.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(40), result.Question.BountyAmount)
}

func TestBountyAwardCreditsToppedUpAmount(t *testing.T) {
	db := newTestDB(t)
	bs := newBountyService(db, Rules{})
	asker := createTestUser(t, db, "asker", 100)
	answerer := createTestUser(t, db, "answerer", 0)
	question := createTestQuestion(t, db, asker.ID)
	answer := createTestAnswer(t, db, question.ID, answerer.ID)

	_, err := bs.Offer(question.ID, asker.ID, 30)
	require.NoError(t, err)
	_, err = bs.Offer(question.ID, asker.ID, 20)
	require.NoError(t, err)

	result, err := bs.Award(question.ID, asker.ID, answer.ID)
	require.NoError(t, err)

	// The credit equals the full accumulated bounty, never a stale amount
	assert.Equal(t, int64(50), result.Question.BountyAmount)
	assert.Equal(t, int64(50), result.AnswerAuthor.Reputation)

	// Escrow conservation: everything debited for this bounty was credited
	var net *int64
	require.NoError(t, db.Model(&models.ReputationEvent{}).
		Where("reason IN ?", []string{models.ReasonBountyOffered, models.ReasonBountyAwarded}).
		Select("SUM(change)").
		Scan(&net).Error)
	require.NotNil(t, net)
	assert.Equal(t, int64(0), *net)

	requireLedgerConsistent(t, db, asker.ID)
	requireLedgerConsistent(t, db, answerer.ID)
}

func TestBountyAwardScenario(t *testing.T) {
	db := newTestDB(t)
	bs := newBountyService(db, Rules{})
	asker := createTestUser(t, db, "asker", 100)
	answerer := createTestUser(t, db, "answerer", 0)
	question := createTestQuestion(t, db, asker.ID)
	answer := createTestAnswer(t, db, question.ID, answerer.ID)

	_, err := bs.Offer(question.ID, asker.ID, 30)
	require.NoError(t, err)

	result, err := bs.Award(question.ID, asker.ID, answer.ID)
	require.NoError(t, err)

	assert.Equal(t, models.BountyAwarded, result.Question.BountyStatus)
	require.NotNil(t, result.Question.BountyAwardedToID)
	assert.Equal(t, answerer.ID, *result.Question.BountyAwardedToID)
	assert.NotNil(t, result.Question.BountyAwardedAt)
	assert.Equal(t, int64(30), result.AnswerAuthor.Reputation)

	requireLedgerConsistent(t, db, asker.ID)
	requireLedgerConsistent(t, db, answerer.ID)

	// The answer author gets a notification
	var count int64
	db.Model(&models.Notification{}).
		Where("user_id = ? AND type = ?", answerer.ID, models.NotifyBountyAwarded).
		Count(&count)
	assert.Equal(t, int64(1), count)

	// Second award fails and credits nothing twice
	_, err = bs.Award(question.ID, asker.ID, answer.ID)
	assert.True(t, errors.Is(err, ErrConflict))

	var author models.User
	require.NoError(t, db.First(&author, answerer.ID).Error)
	assert.Equal(t, int64(30), author.Reputation)
}

func TestBountyAwardGuards(t *testing.T) {
	db := newTestDB(t)
	bs := newBountyService(db, Rules{})
	asker := createTestUser(t, db, "asker", 100)
	answerer := createTestUser(t, db, "answerer", 0)
	stranger := createTestUser(t, db, "stranger", 0)
	question := createTestQuestion(t, db, asker.ID)
	answer := createTestAnswer(t, db, question.ID, answerer.ID)

	// No open bounty yet
	_, err := bs.Award(question.ID, asker.ID, answer.ID)
	assert.True(t, errors.Is(err, ErrConflict))

	_, err = bs.Offer(question.ID, asker.ID, 30)
	require.NoError(t, err)

	_, err = bs.Award(question.ID, stranger.ID, answer.ID)
	assert.True(t, errors.Is(err, ErrForbidden))

	_, err = bs.Award(question.ID, asker.ID, 9999)
	assert.True(t, errors.Is(err, ErrNotFound))

	// Answer on a different question cannot receive this bounty
	otherQuestion := createTestQuestion(t, db, asker.ID)
	otherAnswer := createTestAnswer(t, db, otherQuestion.ID, answerer.ID)
	_, err = bs.Award(question.ID, asker.ID, otherAnswer.ID)
	assert.True(t, errors.Is(err, ErrConflict))
}

func TestBountyOfferAfterAwardRejected(t *testing.T) {
	db := newTestDB(t)
	bs := newBountyService(db, Rules{})
	asker := createTestUser(t, db, "asker", 100)
	answerer := createTestUser(t, db, "answerer", 0)
	question := createTestQuestion(t, db, asker.ID)
	answer := createTestAnswer(t, db, question.ID, answerer.ID)

	_, err := bs.Offer(question.ID, asker.ID, 30)
	require.NoError(t, err)
	_, err = bs.Award(question.ID, asker.ID, answer.ID)
	require.NoError(t, err)

	_, err = bs.Offer(question.ID, asker.ID, 10)
	assert.True(t, errors.Is(err, ErrConflict))

	// Awarded bounty fields stay frozen
	var fresh models.Question
	require.NoError(t, db.First(&fresh, question.ID).Error)
	assert.Equal(t, int64(30), fresh.BountyAmount)
	assert.Equal(t, models.BountyAwarded, fresh.BountyStatus)
	requireLedgerConsistent(t, db, asker.ID)
}
