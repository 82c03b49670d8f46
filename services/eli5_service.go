package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ask-stack/api-go/models"
	"gorm.io/gorm"
)

// Eli5Service caches simplified explanations of answers. The assistant is
// treated as a slow, fallible collaborator: its failures surface as
// ErrDependency and never change the answer row.
type Eli5Service struct {
	DB         *gorm.DB
	Summarizer Summarizer
	Timeout    time.Duration
}

func NewEli5Service(db *gorm.DB, summarizer Summarizer) *Eli5Service {
	return &Eli5Service{DB: db, Summarizer: summarizer, Timeout: 30 * time.Second}
}

// Explain returns the cached ELI5 text for an answer, generating and
// persisting it on first request.
func (es *Eli5Service) Explain(ctx context.Context, answerID uint) (string, error) {
	var answer models.Answer
	if err := es.DB.First(&answer, answerID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", fmt.Errorf("%w: answer %d", ErrNotFound, answerID)
		}
		return "", err
	}
	if answer.IsDeleted {
		return "", fmt.Errorf("%w: answer %d", ErrNotFound, answerID)
	}
	if answer.Eli5Content != nil && *answer.Eli5Content != "" {
		return *answer.Eli5Content, nil
	}

	ctx, cancel := context.WithTimeout(ctx, es.Timeout)
	defer cancel()

	simplified, err := es.Summarizer.Summarize(ctx, answer.Content)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDependency, err)
	}

	if err := es.DB.Model(&answer).Update("eli5_content", simplified).Error; err != nil {
		return "", err
	}
	return simplified, nil
}
