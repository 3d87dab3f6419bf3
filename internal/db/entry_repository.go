package db

import (
	"time"

	"github.com/moodlog/moodlog/internal/models"
	"gorm.io/gorm"
)

type EntryRepository struct {
	database *gorm.DB
}

func NewEntryRepository(database *gorm.DB) *EntryRepository {
	return &EntryRepository{database: database}
}

func (repo *EntryRepository) FetchEntriesForUser(userID uint) ([]models.Entry, error) {
	entries := make([]models.Entry, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("timestamp ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *EntryRepository) FetchEntriesForUserRange(userID uint, from time.Time, to time.Time) ([]models.Entry, error) {
	entries := make([]models.Entry, 0)
	if err := repo.database.
		Where("user_id = ? AND timestamp >= ? AND timestamp < ?", userID, from, to).
		Order("timestamp ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *EntryRepository) FetchEntriesWithTagsForUser(userID uint) ([]models.Entry, error) {
	entries := make([]models.Entry, 0)
	if err := repo.database.
		Preload("Tags").
		Where("user_id = ?", userID).
		Order("timestamp ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *EntryRepository) ListRecentByUser(userID uint, limit int) ([]models.Entry, error) {
	query := repo.database.
		Preload("Tags").
		Preload("SuggestedIntervention").
		Where("user_id = ?", userID).
		Order("timestamp DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	entries := make([]models.Entry, 0)
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *EntryRepository) FindOwnedByID(userID uint, entryID uint) (models.Entry, bool, error) {
	entry := models.Entry{}
	result := repo.database.
		Preload("Tags").
		Preload("SuggestedIntervention").
		Where("id = ? AND user_id = ?", entryID, userID).
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.Entry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Entry{}, false, nil
	}
	return entry, true, nil
}

func (repo *EntryRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Entry{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CreateWithTags resolves tags with find-or-insert and persists the entry
// and its join rows in one transaction, so concurrent submissions of the
// same new tag name cannot create duplicates.
func (repo *EntryRepository) CreateWithTags(entry *models.Entry, tagNames []string) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		tags, err := findOrCreateTags(tx, tagNames)
		if err != nil {
			return err
		}
		entry.Tags = tags
		return tx.Create(entry).Error
	})
}

// UpdateWithTags saves the mutable columns and replaces the tag set.
func (repo *EntryRepository) UpdateWithTags(entry *models.Entry, tagNames []string) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		tags, err := findOrCreateTags(tx, tagNames)
		if err != nil {
			return err
		}

		if err := tx.Model(entry).Updates(map[string]any{
			"emotion":   entry.Emotion,
			"intensity": entry.Intensity,
			"note":      entry.Note,
			"timestamp": entry.Timestamp,
		}).Error; err != nil {
			return err
		}
		if err := tx.Model(entry).Association("Tags").Replace(tags); err != nil {
			return err
		}
		entry.Tags = tags
		return nil
	})
}

// DeleteOwnedByID removes the entry, its join rows, and its feedback rows.
// The cascade is explicit so it does not depend on the driver honoring
// foreign-key pragmas.
func (repo *EntryRepository) DeleteOwnedByID(userID uint, entryID uint) (bool, error) {
	deleted := false
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		var matched int64
		if err := tx.Model(&models.Entry{}).
			Where("id = ? AND user_id = ?", entryID, userID).
			Count(&matched).Error; err != nil {
			return err
		}
		if matched == 0 {
			return nil
		}

		if err := tx.Where("entry_id = ?", entryID).Delete(&models.Feedback{}).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM entry_tags WHERE entry_id = ?`, entryID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Entry{}, entryID).Error; err != nil {
			return err
		}
		deleted = true
		return nil
	})
	return deleted, err
}

func (repo *EntryRepository) AttachSuggestion(entryID uint, interventionID uint) error {
	return repo.database.Model(&models.Entry{}).
		Where("id = ?", entryID).
		Update("suggested_intervention_id", interventionID).Error
}
