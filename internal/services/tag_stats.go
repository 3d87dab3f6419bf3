package services

import (
	"sort"

	"github.com/moodlog/moodlog/internal/models"
)

type TagStatsEntryReader interface {
	FetchEntriesWithTagsForUser(userID uint) ([]models.Entry, error)
}

// TagStatsService correlates tags with the intensity and emotion of the
// entries carrying them.
type TagStatsService struct {
	entries TagStatsEntryReader
}

type TagCorrelation struct {
	Tag           string  `json:"tag"`
	MeanIntensity float64 `json:"mean_intensity"`
	TopEmotion    string  `json:"top_emotion"`
	EntryCount    int     `json:"entry_count"`
}

func NewTagStatsService(entries TagStatsEntryReader) *TagStatsService {
	return &TagStatsService{entries: entries}
}

// Correlations reports, for each tag with at least one entry, the mean
// intensity and most frequent emotion among the entries carrying it, sorted
// by mean intensity descending. Emotion ties keep the first emotion
// encountered while walking entries in reader order.
func (service *TagStatsService) Correlations(userID uint) ([]TagCorrelation, error) {
	entries, err := service.entries.FetchEntriesWithTagsForUser(userID)
	if err != nil {
		return nil, err
	}

	type tagAccumulator struct {
		sum          float64
		count        int
		emotionCount map[string]int
		emotionOrder []string
	}

	accumulators := make(map[string]*tagAccumulator)
	tagOrder := make([]string, 0)
	for _, entry := range entries {
		for _, tag := range entry.Tags {
			accumulator, ok := accumulators[tag.Name]
			if !ok {
				accumulator = &tagAccumulator{emotionCount: make(map[string]int)}
				accumulators[tag.Name] = accumulator
				tagOrder = append(tagOrder, tag.Name)
			}
			accumulator.sum += float64(entry.Intensity)
			accumulator.count++
			if _, seen := accumulator.emotionCount[entry.Emotion]; !seen {
				accumulator.emotionOrder = append(accumulator.emotionOrder, entry.Emotion)
			}
			accumulator.emotionCount[entry.Emotion]++
		}
	}

	correlations := make([]TagCorrelation, 0, len(tagOrder))
	for _, name := range tagOrder {
		accumulator := accumulators[name]
		correlations = append(correlations, TagCorrelation{
			Tag:           name,
			MeanIntensity: Round1(accumulator.sum / float64(accumulator.count)),
			TopEmotion:    topEmotion(accumulator.emotionCount, accumulator.emotionOrder),
			EntryCount:    accumulator.count,
		})
	}

	sort.SliceStable(correlations, func(i, j int) bool {
		return correlations[i].MeanIntensity > correlations[j].MeanIntensity
	})
	return correlations, nil
}

func topEmotion(counts map[string]int, order []string) string {
	best := ""
	bestCount := 0
	for _, emotion := range order {
		if counts[emotion] > bestCount {
			best = emotion
			bestCount = counts[emotion]
		}
	}
	return best
}

// meanIntensity averages intensity over entries accepted by the filter and
// reports the matching count. Shared with the insight generator.
func meanIntensity(entries []models.Entry, accept func(models.Entry) bool) (float64, int) {
	sum := 0.0
	count := 0
	for _, entry := range entries {
		if accept != nil && !accept(entry) {
			continue
		}
		sum += float64(entry.Intensity)
		count++
	}
	if count == 0 {
		return 0, 0
	}
	return sum / float64(count), count
}
