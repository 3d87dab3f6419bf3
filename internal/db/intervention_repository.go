package db

import (
	"github.com/moodlog/moodlog/internal/models"
	"gorm.io/gorm"
)

type InterventionRepository struct {
	database *gorm.DB
}

func NewInterventionRepository(database *gorm.DB) *InterventionRepository {
	return &InterventionRepository{database: database}
}

func (repo *InterventionRepository) FetchInterventions(activeOnly bool) ([]models.Intervention, error) {
	query := repo.database.Order("created_at DESC, id DESC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	interventions := make([]models.Intervention, 0)
	if err := query.Find(&interventions).Error; err != nil {
		return nil, err
	}
	return interventions, nil
}

func (repo *InterventionRepository) FetchActiveInterventions() ([]models.Intervention, error) {
	return repo.FetchInterventions(true)
}

func (repo *InterventionRepository) FindByID(interventionID uint) (models.Intervention, bool, error) {
	intervention := models.Intervention{}
	result := repo.database.
		Where("id = ?", interventionID).
		Limit(1).
		Find(&intervention)
	if result.Error != nil {
		return models.Intervention{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Intervention{}, false, nil
	}
	return intervention, true, nil
}

func (repo *InterventionRepository) Create(intervention *models.Intervention) error {
	return repo.database.Create(intervention).Error
}

func (repo *InterventionRepository) Deactivate(interventionID uint) error {
	return repo.database.Model(&models.Intervention{}).
		Where("id = ?", interventionID).
		Update("is_active", false).Error
}

func (repo *InterventionRepository) CountActive() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Intervention{}).
		Where("is_active = ?", true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
