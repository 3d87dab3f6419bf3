package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/moodlog/moodlog/internal/models"
)

const (
	exportDateLayout = "2006-01-02"
	exportTimeLayout = "15:04"
)

// ExportCSVHeaders fixes the export column order; compatible readers depend
// on it.
var ExportCSVHeaders = []string{
	"Date",
	"Time",
	"Emotion",
	"Intensity",
	"Tags",
	"Note",
}

var emotionLabels = map[string]string{
	models.EmotionJoy:      "Joy",
	models.EmotionSadness:  "Sadness",
	models.EmotionAnxiety:  "Anxiety",
	models.EmotionAnger:    "Anger",
	models.EmotionFear:     "Fear",
	models.EmotionDisgust:  "Disgust",
	models.EmotionSurprise: "Surprise",
	models.EmotionNeutral:  "Neutral",
	models.EmotionExcited:  "Excited",
	models.EmotionCalm:     "Calm",
}

type ExportEntryReader interface {
	FetchEntriesWithTagsForUser(userID uint) ([]models.Entry, error)
}

type ExportService struct {
	entries  ExportEntryReader
	location *time.Location
}

type ExportRow struct {
	Date      string
	Time      string
	Emotion   string
	Intensity int
	Tags      string
	Note      string
}

func NewExportService(entries ExportEntryReader, location *time.Location) *ExportService {
	if location == nil {
		location = time.UTC
	}
	return &ExportService{
		entries:  entries,
		location: location,
	}
}

func EmotionLabel(value string) string {
	if label, ok := emotionLabels[value]; ok {
		return label
	}
	return value
}

// BuildCSVRows renders the caller's entries oldest first, one row per entry.
func (service *ExportService) BuildCSVRows(userID uint) ([]ExportRow, error) {
	entries, err := service.entries.FetchEntriesWithTagsForUser(userID)
	if err != nil {
		return nil, err
	}

	rows := make([]ExportRow, 0, len(entries))
	for _, entry := range entries {
		localized := entry.Timestamp.In(service.location)
		names := make([]string, 0, len(entry.Tags))
		for _, tag := range entry.Tags {
			names = append(names, tag.Name)
		}

		rows = append(rows, ExportRow{
			Date:      localized.Format(exportDateLayout),
			Time:      localized.Format(exportTimeLayout),
			Emotion:   EmotionLabel(entry.Emotion),
			Intensity: entry.Intensity,
			Tags:      strings.Join(names, ", "),
			Note:      entry.Note,
		})
	}
	return rows, nil
}

func (row ExportRow) Columns() []string {
	return []string{
		row.Date,
		row.Time,
		row.Emotion,
		strconv.Itoa(row.Intensity),
		row.Tags,
		row.Note,
	}
}
