package services

import (
	"context"
	"errors"
	"testing"

	"github.com/ask-stack/api-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSummarizer struct {
	text  string
	err   error
	calls int
}

func (s *stubSummarizer) Summarize(ctx context.Context, content string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

func TestExplainGeneratesAndCaches(t *testing.T) {
	db := newTestDB(t)
	stub := &stubSummarizer{text: "like you're five: it loops"}
	es := NewEli5Service(db, stub)
	author := createTestUser(t, db, "author", 0)
	question := createTestQuestion(t, db, author.ID)
	answer := createTestAnswer(t, db, question.ID, author.ID)

	got, err := es.Explain(context.Background(), answer.ID)
	require.NoError(t, err)
	assert.Equal(t, "like you're five: it loops", got)

	var fresh models.Answer
	require.NoError(t, db.First(&fresh, answer.ID).Error)
	require.NotNil(t, fresh.Eli5Content)
	assert.Equal(t, "like you're five: it loops", *fresh.Eli5Content)

	// Second call is served from the row, not the assistant
	got, err = es.Explain(context.Background(), answer.ID)
	require.NoError(t, err)
	assert.Equal(t, "like you're five: it loops", got)
	assert.Equal(t, 1, stub.calls)
}

func TestExplainDependencyFailure(t *testing.T) {
	db := newTestDB(t)
	stub := &stubSummarizer{err: errors.New("rate limited")}
	es := NewEli5Service(db, stub)
	author := createTestUser(t, db, "author", 0)
	question := createTestQuestion(t, db, author.ID)
	answer := createTestAnswer(t, db, question.ID, author.ID)

	_, err := es.Explain(context.Background(), answer.ID)
	assert.True(t, errors.Is(err, ErrDependency))

	// The failure must not leave a partial cache behind
	var fresh models.Answer
	require.NoError(t, db.First(&fresh, answer.ID).Error)
	assert.Nil(t, fresh.Eli5Content)
}

func TestExplainUnknownOrDeletedAnswer(t *testing.T) {
	db := newTestDB(t)
	stub := &stubSummarizer{text: "unused"}
	es := NewEli5Service(db, stub)
	author := createTestUser(t, db, "author", 0)
	question := createTestQuestion(t, db, author.ID)
	answer := createTestAnswer(t, db, question.ID, author.ID)

	_, err := es.Explain(context.Background(), 9999)
	assert.True(t, errors.Is(err, ErrNotFound))

	ls := NewLifecycleService(db, Rules{})
	require.NoError(t, ls.SoftDelete(models.TargetAnswer, answer.ID, author.ID, false))
	_, err = es.Explain(context.Background(), answer.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, 0, stub.calls)
}
