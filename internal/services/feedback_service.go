package services

import (
	"errors"

	"github.com/moodlog/moodlog/internal/models"
)

var (
	ErrNoSuggestedIntervention = errors.New("entry has no suggested intervention")
	ErrInvalidFeedbackResult   = errors.New("invalid feedback result")
)

type FeedbackEntryReader interface {
	FindOwnedByID(userID uint, entryID uint) (models.Entry, bool, error)
}

type FeedbackWriter interface {
	Create(feedback *models.Feedback) error
}

// FeedbackService appends one immutable outcome record per
// suggestion-response cycle. Scores shift on the next aggregation read;
// nothing is maintained incrementally.
type FeedbackService struct {
	entries  FeedbackEntryReader
	feedback FeedbackWriter
}

func NewFeedbackService(entries FeedbackEntryReader, feedback FeedbackWriter) *FeedbackService {
	return &FeedbackService{
		entries:  entries,
		feedback: feedback,
	}
}

// RecordOutcome links the entry's previously attached intervention with a
// result. Entries without a suggestion are rejected.
func (service *FeedbackService) RecordOutcome(userID uint, entryID uint, result string) (models.Feedback, error) {
	if !models.IsValidResult(result) {
		return models.Feedback{}, ErrInvalidFeedbackResult
	}

	entry, found, err := service.entries.FindOwnedByID(userID, entryID)
	if err != nil {
		return models.Feedback{}, err
	}
	if !found {
		return models.Feedback{}, ErrEntryNotFound
	}
	if entry.SuggestedInterventionID == nil {
		return models.Feedback{}, ErrNoSuggestedIntervention
	}

	feedback := models.Feedback{
		EntryID:        entry.ID,
		InterventionID: *entry.SuggestedInterventionID,
		Result:         result,
	}
	if err := service.feedback.Create(&feedback); err != nil {
		return models.Feedback{}, err
	}
	return feedback, nil
}
