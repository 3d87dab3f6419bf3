package services

import (
	"errors"
	"testing"
	"time"

	"github.com/moodlog/moodlog/internal/models"
)

type stubEntryStore struct {
	entries map[uint]models.Entry
	nextID  uint

	createdTags  []string
	updatedTags  []string
	attachedTo   uint
	attachedWith uint
}

func newStubEntryStore() *stubEntryStore {
	return &stubEntryStore{entries: make(map[uint]models.Entry), nextID: 1}
}

func (stub *stubEntryStore) CreateWithTags(entry *models.Entry, tagNames []string) error {
	entry.ID = stub.nextID
	stub.nextID++
	stub.createdTags = tagNames
	for _, name := range tagNames {
		entry.Tags = append(entry.Tags, models.Tag{Name: name})
	}
	stub.entries[entry.ID] = *entry
	return nil
}

func (stub *stubEntryStore) UpdateWithTags(entry *models.Entry, tagNames []string) error {
	stub.updatedTags = tagNames
	stub.entries[entry.ID] = *entry
	return nil
}

func (stub *stubEntryStore) FindOwnedByID(userID uint, entryID uint) (models.Entry, bool, error) {
	entry, ok := stub.entries[entryID]
	if !ok || entry.UserID == nil || *entry.UserID != userID {
		return models.Entry{}, false, nil
	}
	return entry, true, nil
}

func (stub *stubEntryStore) ListRecentByUser(userID uint, limit int) ([]models.Entry, error) {
	return nil, nil
}

func (stub *stubEntryStore) DeleteOwnedByID(userID uint, entryID uint) (bool, error) {
	entry, ok := stub.entries[entryID]
	if !ok || entry.UserID == nil || *entry.UserID != userID {
		return false, nil
	}
	delete(stub.entries, entryID)
	return true, nil
}

func (stub *stubEntryStore) AttachSuggestion(entryID uint, interventionID uint) error {
	stub.attachedTo = entryID
	stub.attachedWith = interventionID
	entry := stub.entries[entryID]
	entry.SuggestedInterventionID = &interventionID
	stub.entries[entryID] = entry
	return nil
}

type fixedSuggestionPicker struct {
	suggestion *models.Intervention
}

func (picker *fixedSuggestionPicker) PickRandomActive() (*models.Intervention, error) {
	return picker.suggestion, nil
}

func TestLogEntryAttachesSuggestion(t *testing.T) {
	store := newStubEntryStore()
	intervention := &models.Intervention{ID: 9, Title: "Box breathing", IsActive: true}
	service := NewEntryService(store, &fixedSuggestionPicker{suggestion: intervention}, time.UTC)

	entry, suggested, err := service.LogEntry(1, EntryInput{
		Emotion:   models.EmotionAnxiety,
		Intensity: 6,
		Tags:      []string{" work ", "work", "deadline"},
	}, time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("LogEntry returned error: %v", err)
	}
	if !suggested {
		t.Fatal("expected a suggestion to be attached")
	}
	if entry.SuggestedInterventionID == nil || *entry.SuggestedInterventionID != 9 {
		t.Fatalf("expected suggested intervention 9, got %+v", entry.SuggestedInterventionID)
	}
	if stub := store; stub.attachedTo != entry.ID || stub.attachedWith != 9 {
		t.Fatalf("expected suggestion attached in store, got entry=%d intervention=%d", stub.attachedTo, stub.attachedWith)
	}
	if len(store.createdTags) != 2 || store.createdTags[0] != "work" || store.createdTags[1] != "deadline" {
		t.Fatalf("expected normalized tags [work deadline], got %v", store.createdTags)
	}
}

func TestLogEntryWithoutActiveInterventions(t *testing.T) {
	store := newStubEntryStore()
	service := NewEntryService(store, &fixedSuggestionPicker{}, time.UTC)

	entry, suggested, err := service.LogEntry(1, EntryInput{Emotion: models.EmotionJoy, Intensity: 8}, time.Now())
	if err != nil {
		t.Fatalf("LogEntry returned error: %v", err)
	}
	if suggested {
		t.Fatal("expected no suggestion without active interventions")
	}
	if entry.SuggestedInterventionID != nil {
		t.Fatalf("expected nil suggestion, got %v", *entry.SuggestedInterventionID)
	}
	if entry.ID == 0 {
		t.Fatal("expected the entry to be created anyway")
	}
}

func TestLogEntryRejectsInvalidInput(t *testing.T) {
	store := newStubEntryStore()
	service := NewEntryService(store, &fixedSuggestionPicker{}, time.UTC)

	_, _, err := service.LogEntry(1, EntryInput{Emotion: "bliss", Intensity: 42}, time.Now())
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(store.entries) != 0 {
		t.Fatal("expected nothing persisted for invalid input")
	}
}

func TestUpdateEntryKeepsSuggestion(t *testing.T) {
	store := newStubEntryStore()
	intervention := &models.Intervention{ID: 4, Title: "Short walk", IsActive: true}
	service := NewEntryService(store, &fixedSuggestionPicker{suggestion: intervention}, time.UTC)

	created, _, err := service.LogEntry(1, EntryInput{Emotion: models.EmotionSadness, Intensity: 3}, time.Now())
	if err != nil {
		t.Fatalf("LogEntry returned error: %v", err)
	}

	updated, err := service.UpdateEntry(1, created.ID, EntryInput{
		Emotion:   models.EmotionCalm,
		Intensity: 7,
		Tags:      []string{"evening"},
	})
	if err != nil {
		t.Fatalf("UpdateEntry returned error: %v", err)
	}
	if updated.Emotion != models.EmotionCalm || updated.Intensity != 7 {
		t.Fatalf("expected updated fields, got %+v", updated)
	}
	if updated.SuggestedInterventionID == nil || *updated.SuggestedInterventionID != 4 {
		t.Fatal("expected the original suggestion to survive the edit")
	}
	if len(store.updatedTags) != 1 || store.updatedTags[0] != "evening" {
		t.Fatalf("expected tag set replaced with [evening], got %v", store.updatedTags)
	}
}

func TestUpdateEntryUnknownID(t *testing.T) {
	service := NewEntryService(newStubEntryStore(), &fixedSuggestionPicker{}, time.UTC)

	_, err := service.UpdateEntry(1, 42, EntryInput{Emotion: models.EmotionCalm, Intensity: 5})
	if !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestDeleteEntryScopedToOwner(t *testing.T) {
	store := newStubEntryStore()
	service := NewEntryService(store, &fixedSuggestionPicker{}, time.UTC)

	created, _, err := service.LogEntry(1, EntryInput{Emotion: models.EmotionJoy, Intensity: 5}, time.Now())
	if err != nil {
		t.Fatalf("LogEntry returned error: %v", err)
	}

	if err := service.DeleteEntry(2, created.ID); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound for another user's entry, got %v", err)
	}
	if err := service.DeleteEntry(1, created.ID); err != nil {
		t.Fatalf("DeleteEntry returned error: %v", err)
	}
	if err := service.DeleteEntry(1, created.ID); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound after deletion, got %v", err)
	}
}
