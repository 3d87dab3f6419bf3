package db

import (
	"github.com/moodlog/moodlog/internal/models"
	"gorm.io/gorm"
)

type FeedbackRepository struct {
	database *gorm.DB
}

func NewFeedbackRepository(database *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{database: database}
}

func (repo *FeedbackRepository) Create(feedback *models.Feedback) error {
	return repo.database.Create(feedback).Error
}

type feedbackResultCount struct {
	InterventionID uint   `gorm:"column:intervention_id"`
	Result         string `gorm:"column:result"`
	Count          int64  `gorm:"column:count"`
}

func (repo *FeedbackRepository) TallyByIntervention() (map[uint]models.FeedbackTally, error) {
	rows := make([]feedbackResultCount, 0)
	if err := repo.database.Model(&models.Feedback{}).
		Select("intervention_id, result, COUNT(*) AS count").
		Group("intervention_id, result").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	tallies := make(map[uint]models.FeedbackTally, len(rows))
	for _, row := range rows {
		tally := tallies[row.InterventionID]
		switch row.Result {
		case models.ResultHelped:
			tally.Helped += int(row.Count)
		case models.ResultNoChange:
			tally.NoChange += int(row.Count)
		case models.ResultWorse:
			tally.Worse += int(row.Count)
		}
		tallies[row.InterventionID] = tally
	}
	return tallies, nil
}

func (repo *FeedbackRepository) TallyForIntervention(interventionID uint) (models.FeedbackTally, error) {
	rows := make([]feedbackResultCount, 0)
	if err := repo.database.Model(&models.Feedback{}).
		Select("intervention_id, result, COUNT(*) AS count").
		Where("intervention_id = ?", interventionID).
		Group("intervention_id, result").
		Scan(&rows).Error; err != nil {
		return models.FeedbackTally{}, err
	}

	tally := models.FeedbackTally{}
	for _, row := range rows {
		switch row.Result {
		case models.ResultHelped:
			tally.Helped += int(row.Count)
		case models.ResultNoChange:
			tally.NoChange += int(row.Count)
		case models.ResultWorse:
			tally.Worse += int(row.Count)
		}
	}
	return tally, nil
}

func (repo *FeedbackRepository) Count() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Feedback{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
