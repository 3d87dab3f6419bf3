package services

import (
	"errors"
	"strings"
	"time"

	"github.com/moodlog/moodlog/internal/models"
)

var ErrEntryNotFound = errors.New("entry not found")

type EntryStore interface {
	CreateWithTags(entry *models.Entry, tagNames []string) error
	UpdateWithTags(entry *models.Entry, tagNames []string) error
	FindOwnedByID(userID uint, entryID uint) (models.Entry, bool, error)
	ListRecentByUser(userID uint, limit int) ([]models.Entry, error)
	DeleteOwnedByID(userID uint, entryID uint) (bool, error)
	AttachSuggestion(entryID uint, interventionID uint) error
}

type EntrySuggestionPicker interface {
	PickRandomActive() (*models.Intervention, error)
}

// EntryService owns the entry lifecycle: validated create with lazy tag
// resolution and a random suggestion attached, edit, and cascade delete.
type EntryService struct {
	entries     EntryStore
	suggestions EntrySuggestionPicker
	location    *time.Location
}

func NewEntryService(entries EntryStore, suggestions EntrySuggestionPicker, location *time.Location) *EntryService {
	if location == nil {
		location = time.UTC
	}
	return &EntryService{
		entries:     entries,
		suggestions: suggestions,
		location:    location,
	}
}

// LogEntry persists a new entry and attaches a randomly chosen active
// intervention. The second return value reports whether a suggestion was
// available; the entry is created either way.
func (service *EntryService) LogEntry(userID uint, input EntryInput, now time.Time) (models.Entry, bool, error) {
	if fields := ValidateEntryInput(input); len(fields) > 0 {
		return models.Entry{}, false, &ValidationError{Fields: fields}
	}

	timestamp := now.In(service.location)
	if input.Timestamp != nil {
		timestamp = input.Timestamp.In(service.location)
	}

	entry := models.Entry{
		UserID:    &userID,
		Emotion:   strings.TrimSpace(input.Emotion),
		Intensity: input.Intensity,
		Note:      input.Note,
		Timestamp: timestamp,
	}
	if err := service.entries.CreateWithTags(&entry, NormalizeTagNames(input.Tags)); err != nil {
		return models.Entry{}, false, err
	}

	suggestion, err := service.suggestions.PickRandomActive()
	if err != nil {
		return models.Entry{}, false, err
	}
	if suggestion == nil {
		return entry, false, nil
	}

	if err := service.entries.AttachSuggestion(entry.ID, suggestion.ID); err != nil {
		return models.Entry{}, false, err
	}
	entry.SuggestedInterventionID = &suggestion.ID
	entry.SuggestedIntervention = suggestion
	return entry, true, nil
}

func (service *EntryService) GetEntry(userID uint, entryID uint) (models.Entry, error) {
	entry, found, err := service.entries.FindOwnedByID(userID, entryID)
	if err != nil {
		return models.Entry{}, err
	}
	if !found {
		return models.Entry{}, ErrEntryNotFound
	}
	return entry, nil
}

func (service *EntryService) ListRecent(userID uint, limit int) ([]models.Entry, error) {
	return service.entries.ListRecentByUser(userID, limit)
}

// UpdateEntry re-validates and replaces the mutable fields and the tag set.
// The original suggestion is never re-rolled on edit.
func (service *EntryService) UpdateEntry(userID uint, entryID uint, input EntryInput) (models.Entry, error) {
	if fields := ValidateEntryInput(input); len(fields) > 0 {
		return models.Entry{}, &ValidationError{Fields: fields}
	}

	entry, found, err := service.entries.FindOwnedByID(userID, entryID)
	if err != nil {
		return models.Entry{}, err
	}
	if !found {
		return models.Entry{}, ErrEntryNotFound
	}

	entry.Emotion = strings.TrimSpace(input.Emotion)
	entry.Intensity = input.Intensity
	entry.Note = input.Note
	if input.Timestamp != nil {
		entry.Timestamp = input.Timestamp.In(service.location)
	}
	if err := service.entries.UpdateWithTags(&entry, NormalizeTagNames(input.Tags)); err != nil {
		return models.Entry{}, err
	}
	return entry, nil
}

// DeleteEntry removes an owned entry together with its feedback rows.
func (service *EntryService) DeleteEntry(userID uint, entryID uint) error {
	deleted, err := service.entries.DeleteOwnedByID(userID, entryID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrEntryNotFound
	}
	return nil
}
