package services

import (
	"errors"
	"testing"

	"github.com/ask-stack/api-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDeltaAdjustsBalanceAndAppendsEntry(t *testing.T) {
	db := newTestDB(t)
	rs := NewReputationService(db)
	user := createTestUser(t, db, "alice", 0)

	tx := db.Begin()
	balance, err := rs.ApplyDelta(tx, user.ID, 10, models.ReasonAdminAdjust, nil, nil)
	require.NoError(t, err)
	require.NoError(t, tx.Commit().Error)

	assert.Equal(t, int64(10), balance)
	requireLedgerConsistent(t, db, user.ID)

	events, err := rs.History(user.ID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, int64(10), events[0].Change)
	assert.Equal(t, models.ReasonAdminAdjust, events[0].Reason)
}

func TestApplyDeltaRejectsOverspend(t *testing.T) {
	db := newTestDB(t)
	rs := NewReputationService(db)
	user := createTestUser(t, db, "bob", 5)

	tx := db.Begin()
	_, err := rs.ApplyDelta(tx, user.ID, -10, models.ReasonBountyOffered, nil, nil)
	assert.True(t, errors.Is(err, ErrInsufficientReputation))
	tx.Rollback()

	// Nothing changed and no ledger entry was written
	requireLedgerConsistent(t, db, user.ID)
	var user2 models.User
	require.NoError(t, db.First(&user2, user.ID).Error)
	assert.Equal(t, int64(5), user2.Reputation)

	events, err := rs.History(user.ID)
	require.NoError(t, err)
	assert.Len(t, events, 1) // only the seed adjustment
}

func TestApplyDeltaAllowsSpendToZero(t *testing.T) {
	db := newTestDB(t)
	rs := NewReputationService(db)
	user := createTestUser(t, db, "carol", 30)

	tx := db.Begin()
	balance, err := rs.ApplyDelta(tx, user.ID, -30, models.ReasonBountyOffered, nil, nil)
	require.NoError(t, err)
	require.NoError(t, tx.Commit().Error)

	assert.Equal(t, int64(0), balance)
	requireLedgerConsistent(t, db, user.ID)
}

func TestApplyDeltaUnknownUser(t *testing.T) {
	db := newTestDB(t)
	rs := NewReputationService(db)

	tx := db.Begin()
	_, err := rs.ApplyDelta(tx, 9999, 10, models.ReasonAdminAdjust, nil, nil)
	assert.True(t, errors.Is(err, ErrNotFound))
	tx.Rollback()
}

func TestHistoryMostRecentFirst(t *testing.T) {
	db := newTestDB(t)
	rs := NewReputationService(db)
	user := createTestUser(t, db, "dave", 0)

	for _, change := range []int64{5, -2, 7} {
		tx := db.Begin()
		_, err := rs.ApplyDelta(tx, user.ID, change, models.ReasonAdminAdjust, nil, nil)
		require.NoError(t, err)
		require.NoError(t, tx.Commit().Error)
	}

	events, err := rs.History(user.ID)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, int64(7), events[0].Change)
	assert.Equal(t, int64(-2), events[1].Change)
	assert.Equal(t, int64(5), events[2].Change)
	requireLedgerConsistent(t, db, user.ID)
}

func TestHistoryUnknownUser(t *testing.T) {
	db := newTestDB(t)
	rs := NewReputationService(db)

	_, err := rs.History(12345)
	assert.True(t, errors.Is(err, ErrNotFound))
}
