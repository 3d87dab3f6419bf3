package db

import (
	"github.com/moodlog/moodlog/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TagRepository struct {
	database *gorm.DB
}

func NewTagRepository(database *gorm.DB) *TagRepository {
	return &TagRepository{database: database}
}

func (repo *TagRepository) ListAll() ([]models.Tag, error) {
	tags := make([]models.Tag, 0)
	if err := repo.database.Order("name ASC").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (repo *TagRepository) FindOrCreate(name string) (models.Tag, error) {
	var tag models.Tag
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		resolved, err := findOrCreateTag(tx, name)
		if err != nil {
			return err
		}
		tag = resolved
		return nil
	})
	return tag, err
}

// findOrCreateTag inserts under the unique name constraint with
// ON CONFLICT DO NOTHING, then re-reads, so a lost race still resolves to
// the winning row.
func findOrCreateTag(tx *gorm.DB, name string) (models.Tag, error) {
	tag := models.Tag{Name: name}
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&tag).Error; err != nil {
		return models.Tag{}, err
	}
	if tag.ID != 0 {
		return tag, nil
	}

	if err := tx.Where("name = ?", name).First(&tag).Error; err != nil {
		return models.Tag{}, err
	}
	return tag, nil
}

func findOrCreateTags(tx *gorm.DB, names []string) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(names))
	for _, name := range names {
		tag, err := findOrCreateTag(tx, name)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}
