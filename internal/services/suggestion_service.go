package services

import (
	"math/rand"

	"github.com/moodlog/moodlog/internal/models"
)

type SuggestionInterventionReader interface {
	FetchActiveInterventions() ([]models.Intervention, error)
}

// SuggestionService draws one active intervention uniformly at random. The
// active set is re-queried on every call and no draw remembers the previous
// one, so repeats are expected.
type SuggestionService struct {
	interventions SuggestionInterventionReader
	pickIndex     func(n int) int
}

func NewSuggestionService(interventions SuggestionInterventionReader) *SuggestionService {
	return &SuggestionService{
		interventions: interventions,
		pickIndex:     rand.Intn,
	}
}

// PickRandomActive returns nil without error when no intervention is active.
func (service *SuggestionService) PickRandomActive() (*models.Intervention, error) {
	candidates, err := service.interventions.FetchActiveInterventions()
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	chosen := candidates[service.pickIndex(len(candidates))]
	return &chosen, nil
}
