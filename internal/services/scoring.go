package services

import (
	"sort"

	"github.com/moodlog/moodlog/internal/models"
)

type ScoringInterventionReader interface {
	FetchInterventions(activeOnly bool) ([]models.Intervention, error)
}

type ScoringFeedbackReader interface {
	TallyByIntervention() (map[uint]models.FeedbackTally, error)
	TallyForIntervention(interventionID uint) (models.FeedbackTally, error)
}

// ScoringService ranks interventions by their community feedback. Scores are
// never stored; every read recomputes them from the feedback table.
type ScoringService struct {
	interventions ScoringInterventionReader
	feedback      ScoringFeedbackReader
}

type ScoredIntervention struct {
	Intervention models.Intervention `json:"intervention"`
	Score        float64             `json:"score"`
	Votes        int                 `json:"votes"`
}

func NewScoringService(interventions ScoringInterventionReader, feedback ScoringFeedbackReader) *ScoringService {
	return &ScoringService{
		interventions: interventions,
		feedback:      feedback,
	}
}

// SuccessScore is the normalized net-positive feedback ratio in [-1, 1]:
// (helped - worse) / total, rounded to two decimals. no_change votes widen
// the denominator without moving the numerator. Zero feedback scores 0.0.
func SuccessScore(tally models.FeedbackTally) float64 {
	total := tally.Total()
	if total == 0 {
		return 0.0
	}
	return Round2(float64(tally.Helped-tally.Worse) / float64(total))
}

func (service *ScoringService) ScoreForIntervention(interventionID uint) (float64, int, error) {
	tally, err := service.feedback.TallyForIntervention(interventionID)
	if err != nil {
		return 0, 0, err
	}
	return SuccessScore(tally), tally.Total(), nil
}

// RankedInterventions sorts descending by (score, votes); equal keys keep
// the reader's order. topN <= 0 means no limit.
func (service *ScoringService) RankedInterventions(activeOnly bool, topN int) ([]ScoredIntervention, error) {
	interventions, err := service.interventions.FetchInterventions(activeOnly)
	if err != nil {
		return nil, err
	}

	tallies, err := service.feedback.TallyByIntervention()
	if err != nil {
		return nil, err
	}

	ranked := make([]ScoredIntervention, 0, len(interventions))
	for _, intervention := range interventions {
		tally := tallies[intervention.ID]
		ranked = append(ranked, ScoredIntervention{
			Intervention: intervention,
			Score:        SuccessScore(tally),
			Votes:        tally.Total(),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Votes > ranked[j].Votes
	})

	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked, nil
}
