package services

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/moodlog/moodlog/internal/models"
)

const (
	morningStartHour = 6
	morningEndHour   = 12
	eveningStartHour = 18
	eveningEndHour   = 23

	// Relative tag-vs-rest difference below this fraction is noise.
	tagInsightThreshold = 0.15
	maxTagInsights      = 3
)

type InsightEntryReader interface {
	FetchEntriesWithTagsForUser(userID uint) ([]models.Entry, error)
}

// InsightService turns the raw entry snapshot into a short list of
// natural-language observations.
type InsightService struct {
	entries  InsightEntryReader
	location *time.Location
}

type Insight struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func NewInsightService(entries InsightEntryReader, location *time.Location) *InsightService {
	if location == nil {
		location = time.UTC
	}
	return &InsightService{
		entries:  entries,
		location: location,
	}
}

func (service *InsightService) Generate(userID uint) ([]Insight, error) {
	entries, err := service.entries.FetchEntriesWithTagsForUser(userID)
	if err != nil {
		return nil, err
	}

	insights := make([]Insight, 0, 2+maxTagInsights)
	if weekday, ok := service.weekdayInsight(entries); ok {
		insights = append(insights, weekday)
	}
	if daytime, ok := service.morningEveningInsight(entries); ok {
		insights = append(insights, daytime)
	}
	insights = append(insights, tagInsights(entries)...)
	return insights, nil
}

func (service *InsightService) weekdayInsight(entries []models.Entry) (Insight, bool) {
	var sums [7]float64
	var counts [7]int
	for _, entry := range entries {
		day := MondayWeekday(entry.Timestamp.In(service.location))
		sums[day] += float64(entry.Intensity)
		counts[day]++
	}

	bestDay, worstDay := -1, -1
	var bestMean, worstMean float64
	for day := 0; day < 7; day++ {
		if counts[day] == 0 {
			continue
		}
		mean := sums[day] / float64(counts[day])
		if bestDay == -1 || mean > bestMean {
			bestDay, bestMean = day, mean
		}
		if worstDay == -1 || mean < worstMean {
			worstDay, worstMean = day, mean
		}
	}
	if bestDay == -1 {
		return Insight{}, false
	}

	return Insight{
		Kind: "weekday",
		Message: fmt.Sprintf(
			"Your mood runs highest on %ss (avg %.1f) and lowest on %ss (avg %.1f).",
			WeekdayNames[bestDay], Round1(bestMean), WeekdayNames[worstDay], Round1(worstMean),
		),
	}, true
}

func (service *InsightService) morningEveningInsight(entries []models.Entry) (Insight, bool) {
	inWindow := func(startHour, endHour int) func(models.Entry) bool {
		return func(entry models.Entry) bool {
			hour := entry.Timestamp.In(service.location).Hour()
			return hour >= startHour && hour < endHour
		}
	}

	morningMean, morningCount := meanIntensity(entries, inWindow(morningStartHour, morningEndHour))
	eveningMean, eveningCount := meanIntensity(entries, inWindow(eveningStartHour, eveningEndHour))
	if morningCount == 0 || eveningCount == 0 {
		return Insight{}, false
	}

	direction := "higher"
	if morningMean < eveningMean {
		direction = "lower"
	}
	return Insight{
		Kind: "time_of_day",
		Message: fmt.Sprintf(
			"Your mornings average %.1f, %s than your evenings at %.1f.",
			Round1(morningMean), direction, Round1(eveningMean),
		),
	}, true
}

// tagInsights compares each tag's mean intensity to the mean of the entries
// without that tag, keeping the strongest contrasts above the threshold.
func tagInsights(entries []models.Entry) []Insight {
	type tagContrast struct {
		name     string
		tagMean  float64
		restMean float64
		relative float64
	}

	tagNames := make([]string, 0)
	seen := make(map[string]struct{})
	for _, entry := range entries {
		for _, tag := range entry.Tags {
			if _, ok := seen[tag.Name]; ok {
				continue
			}
			seen[tag.Name] = struct{}{}
			tagNames = append(tagNames, tag.Name)
		}
	}

	contrasts := make([]tagContrast, 0, len(tagNames))
	for _, name := range tagNames {
		hasTag := func(entry models.Entry) bool {
			for _, tag := range entry.Tags {
				if tag.Name == name {
					return true
				}
			}
			return false
		}

		tagMean, tagCount := meanIntensity(entries, hasTag)
		restMean, restCount := meanIntensity(entries, func(entry models.Entry) bool {
			return !hasTag(entry)
		})
		if tagCount == 0 || restCount == 0 || restMean == 0 {
			continue
		}

		relative := (tagMean - restMean) / restMean
		if math.Abs(relative) <= tagInsightThreshold {
			continue
		}
		contrasts = append(contrasts, tagContrast{
			name:     name,
			tagMean:  tagMean,
			restMean: restMean,
			relative: relative,
		})
	}

	sort.SliceStable(contrasts, func(i, j int) bool {
		return math.Abs(contrasts[i].relative) > math.Abs(contrasts[j].relative)
	})
	if len(contrasts) > maxTagInsights {
		contrasts = contrasts[:maxTagInsights]
	}

	insights := make([]Insight, 0, len(contrasts))
	for _, contrast := range contrasts {
		direction := "higher"
		if contrast.relative < 0 {
			direction = "lower"
		}
		insights = append(insights, Insight{
			Kind: "tag",
			Message: fmt.Sprintf(
				"Entries tagged %q average %.1f, %.0f%% %s than the rest of your entries.",
				contrast.name, Round1(contrast.tagMean), math.Abs(contrast.relative)*100, direction,
			),
		})
	}
	return insights
}
