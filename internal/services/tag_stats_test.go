package services

import (
	"testing"
	"time"

	"github.com/moodlog/moodlog/internal/models"
)

type stubTaggedEntryReader struct {
	entries []models.Entry
}

func (stub *stubTaggedEntryReader) FetchEntriesWithTagsForUser(userID uint) ([]models.Entry, error) {
	return stub.entries, nil
}

func taggedEntry(emotion string, intensity int, tagNames ...string) models.Entry {
	tags := make([]models.Tag, 0, len(tagNames))
	for _, name := range tagNames {
		tags = append(tags, models.Tag{Name: name})
	}
	return models.Entry{
		Emotion:   emotion,
		Intensity: intensity,
		Timestamp: time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC),
		Tags:      tags,
	}
}

func TestCorrelationsMeanAndTopEmotion(t *testing.T) {
	reader := &stubTaggedEntryReader{entries: []models.Entry{
		taggedEntry(models.EmotionAnxiety, 3, "work"),
		taggedEntry(models.EmotionAnxiety, 5, "work"),
		taggedEntry(models.EmotionJoy, 7, "work", "friends"),
		taggedEntry(models.EmotionJoy, 9, "friends"),
	}}
	service := NewTagStatsService(reader)

	correlations, err := service.Correlations(1)
	if err != nil {
		t.Fatalf("Correlations returned error: %v", err)
	}
	if len(correlations) != 2 {
		t.Fatalf("expected 2 tags, got %d", len(correlations))
	}

	// Sorted by mean intensity descending: friends (8.0) before work (5.0).
	friends := correlations[0]
	if friends.Tag != "friends" || friends.MeanIntensity != 8.0 || friends.EntryCount != 2 {
		t.Fatalf("unexpected friends correlation: %+v", friends)
	}
	if friends.TopEmotion != models.EmotionJoy {
		t.Fatalf("expected joy as top emotion for friends, got %q", friends.TopEmotion)
	}

	work := correlations[1]
	if work.Tag != "work" || work.MeanIntensity != 5.0 || work.EntryCount != 3 {
		t.Fatalf("unexpected work correlation: %+v", work)
	}
	if work.TopEmotion != models.EmotionAnxiety {
		t.Fatalf("expected anxiety as top emotion for work, got %q", work.TopEmotion)
	}
}

func TestCorrelationsEmotionTieKeepsFirstSeen(t *testing.T) {
	reader := &stubTaggedEntryReader{entries: []models.Entry{
		taggedEntry(models.EmotionSadness, 4, "home"),
		taggedEntry(models.EmotionCalm, 6, "home"),
	}}
	service := NewTagStatsService(reader)

	correlations, err := service.Correlations(1)
	if err != nil {
		t.Fatalf("Correlations returned error: %v", err)
	}
	if len(correlations) != 1 {
		t.Fatalf("expected 1 tag, got %d", len(correlations))
	}
	if correlations[0].TopEmotion != models.EmotionSadness {
		t.Fatalf("expected tie to keep first emotion encountered, got %q", correlations[0].TopEmotion)
	}
}

func TestCorrelationsNoTags(t *testing.T) {
	reader := &stubTaggedEntryReader{entries: []models.Entry{
		taggedEntry(models.EmotionNeutral, 5),
	}}
	service := NewTagStatsService(reader)

	correlations, err := service.Correlations(1)
	if err != nil {
		t.Fatalf("Correlations returned error: %v", err)
	}
	if len(correlations) != 0 {
		t.Fatalf("expected no correlations for untagged entries, got %d", len(correlations))
	}
}
