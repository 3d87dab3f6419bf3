package services

import (
	"sort"
	"time"

	"github.com/moodlog/moodlog/internal/models"
)

type StatsEntryReader interface {
	FetchEntriesForUser(userID uint) ([]models.Entry, error)
	FetchEntriesForUserRange(userID uint, from time.Time, to time.Time) ([]models.Entry, error)
}

type StatsCountsReader interface {
	CountEntriesForUser(userID uint) (int64, error)
	CountActiveInterventions() (int64, error)
	CountFeedback() (int64, error)
}

// StatsService derives read-only views from the entry snapshot. Every
// operation returns a defined zero value for empty input instead of failing.
type StatsService struct {
	entries  StatsEntryReader
	counts   StatsCountsReader
	location *time.Location
}

type TrendPoint struct {
	Date          string  `json:"date"`
	MeanIntensity float64 `json:"mean_intensity"`
	EntryCount    int     `json:"entry_count"`
}

// HeatmapGrid holds mean intensities by Monday-first weekday and hour of
// day. 0 marks cells without data; real means never reach 0 because the
// intensity scale starts at 1.
type HeatmapGrid [7][24]float64

type WeekComparison struct {
	CurrentMean   float64  `json:"current_mean"`
	CurrentCount  int      `json:"current_count"`
	PreviousMean  float64  `json:"previous_mean"`
	PreviousCount int      `json:"previous_count"`
	PercentChange *float64 `json:"percent_change"`
}

type Overview struct {
	TotalEntries        int64 `json:"total_entries"`
	ActiveInterventions int64 `json:"active_interventions"`
	TotalFeedback       int64 `json:"total_feedback"`
	CurrentStreak       int   `json:"current_streak"`
}

func NewStatsService(entries StatsEntryReader, counts StatsCountsReader, location *time.Location) *StatsService {
	if location == nil {
		location = time.UTC
	}
	return &StatsService{
		entries:  entries,
		counts:   counts,
		location: location,
	}
}

// MoodTrend returns the mean intensity per calendar day over the trailing
// window ending today, oldest first. Days without entries are omitted.
func (service *StatsService) MoodTrend(userID uint, windowDays int, now time.Time) ([]TrendPoint, error) {
	if windowDays < 1 {
		windowDays = 1
	}

	today, tomorrow := DayRange(now, service.location)
	from := today.AddDate(0, 0, -(windowDays - 1))
	entries, err := service.entries.FetchEntriesForUserRange(userID, from, tomorrow)
	if err != nil {
		return nil, err
	}

	sums := make(map[string]float64)
	entryCounts := make(map[string]int)
	dates := make([]string, 0)
	for _, entry := range entries {
		date := DateAtLocation(entry.Timestamp, service.location).Format("2006-01-02")
		if _, seen := sums[date]; !seen {
			dates = append(dates, date)
		}
		sums[date] += float64(entry.Intensity)
		entryCounts[date]++
	}

	points := make([]TrendPoint, 0, len(dates))
	for _, date := range dates {
		points = append(points, TrendPoint{
			Date:          date,
			MeanIntensity: Round2(sums[date] / float64(entryCounts[date])),
			EntryCount:    entryCounts[date],
		})
	}

	// ISO dates sort chronologically as strings.
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
	return points, nil
}

// Heatmap aggregates mean intensity into a 7x24 weekday-by-hour grid.
func (service *StatsService) Heatmap(userID uint) (HeatmapGrid, error) {
	grid := HeatmapGrid{}

	entries, err := service.entries.FetchEntriesForUser(userID)
	if err != nil {
		return grid, err
	}

	var sums [7][24]float64
	var cellCounts [7][24]int
	for _, entry := range entries {
		localized := entry.Timestamp.In(service.location)
		day := MondayWeekday(localized)
		hour := localized.Hour()
		sums[day][hour] += float64(entry.Intensity)
		cellCounts[day][hour]++
	}

	for day := 0; day < 7; day++ {
		for hour := 0; hour < 24; hour++ {
			if cellCounts[day][hour] == 0 {
				continue
			}
			grid[day][hour] = Round1(sums[day][hour] / float64(cellCounts[day][hour]))
		}
	}
	return grid, nil
}

// Streak counts consecutive calendar days with at least one entry, walking
// backward from the most recent entry's date.
func (service *StatsService) Streak(userID uint) (int, error) {
	entries, err := service.entries.FetchEntriesForUser(userID)
	if err != nil {
		return 0, err
	}
	if len(entries) == 0 {
		return 0, nil
	}

	seen := make(map[time.Time]struct{}, len(entries))
	var latest time.Time
	for _, entry := range entries {
		date := DateAtLocation(entry.Timestamp, service.location)
		seen[date] = struct{}{}
		if date.After(latest) {
			latest = date
		}
	}

	streak := 0
	for cursor := latest; ; cursor = cursor.AddDate(0, 0, -1) {
		if _, ok := seen[cursor]; !ok {
			break
		}
		streak++
	}
	return streak, nil
}

// WeekComparison contrasts the trailing seven days with the seven days
// before them. PercentChange stays nil when the prior window has no usable
// mean, so callers never divide by zero.
func (service *StatsService) CompareWeeks(userID uint, now time.Time) (WeekComparison, error) {
	weekAgo := now.AddDate(0, 0, -7)
	twoWeeksAgo := now.AddDate(0, 0, -14)

	entries, err := service.entries.FetchEntriesForUserRange(userID, twoWeeksAgo, now)
	if err != nil {
		return WeekComparison{}, err
	}

	var currentSum, previousSum float64
	var currentCount, previousCount int
	for _, entry := range entries {
		switch {
		case !entry.Timestamp.Before(weekAgo):
			currentSum += float64(entry.Intensity)
			currentCount++
		case !entry.Timestamp.Before(twoWeeksAgo):
			previousSum += float64(entry.Intensity)
			previousCount++
		}
	}

	comparison := WeekComparison{
		CurrentCount:  currentCount,
		PreviousCount: previousCount,
	}
	if currentCount > 0 {
		comparison.CurrentMean = Round2(currentSum / float64(currentCount))
	}
	if previousCount > 0 {
		comparison.PreviousMean = Round2(previousSum / float64(previousCount))
	}
	if previousCount > 0 && comparison.PreviousMean > 0 && currentCount > 0 {
		change := Round1((comparison.CurrentMean - comparison.PreviousMean) / comparison.PreviousMean * 100)
		comparison.PercentChange = &change
	}
	return comparison, nil
}

func (service *StatsService) BuildOverview(userID uint) (Overview, error) {
	totalEntries, err := service.counts.CountEntriesForUser(userID)
	if err != nil {
		return Overview{}, err
	}
	activeInterventions, err := service.counts.CountActiveInterventions()
	if err != nil {
		return Overview{}, err
	}
	totalFeedback, err := service.counts.CountFeedback()
	if err != nil {
		return Overview{}, err
	}
	streak, err := service.Streak(userID)
	if err != nil {
		return Overview{}, err
	}

	return Overview{
		TotalEntries:        totalEntries,
		ActiveInterventions: activeInterventions,
		TotalFeedback:       totalFeedback,
		CurrentStreak:       streak,
	}, nil
}
