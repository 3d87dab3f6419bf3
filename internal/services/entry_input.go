package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/moodlog/moodlog/internal/models"
)

type EntryInput struct {
	Emotion   string     `json:"emotion"`
	Intensity int        `json:"intensity"`
	Note      string     `json:"note"`
	Tags      []string   `json:"tags"`
	Timestamp *time.Time `json:"timestamp"`
}

// ValidationError carries per-field messages for input rejected before any
// write happens.
type ValidationError struct {
	Fields map[string]string
}

func (err *ValidationError) Error() string {
	return "validation failed"
}

func ValidateEntryInput(input EntryInput) map[string]string {
	fields := make(map[string]string)

	if !models.IsValidEmotion(strings.TrimSpace(input.Emotion)) {
		fields["emotion"] = "unknown emotion"
	}
	if input.Intensity < models.IntensityMin || input.Intensity > models.IntensityMax {
		fields["intensity"] = fmt.Sprintf("intensity must be between %d and %d", models.IntensityMin, models.IntensityMax)
	}
	if len(input.Note) > models.NoteMaxLength {
		fields["note"] = fmt.Sprintf("note must be at most %d characters", models.NoteMaxLength)
	}

	return fields
}

// NormalizeTagNames trims whitespace, drops empties, and deduplicates while
// preserving the submitted order. Names stay case-sensitive.
func NormalizeTagNames(raw []string) []string {
	names := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, value := range raw {
		name := strings.TrimSpace(value)
		if name == "" {
			continue
		}
		if _, duplicate := seen[name]; duplicate {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}
