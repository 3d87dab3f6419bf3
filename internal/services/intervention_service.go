package services

import (
	"errors"
	"strings"

	"github.com/moodlog/moodlog/internal/models"
)

var ErrInterventionNotFound = errors.New("intervention not found")

type InterventionStore interface {
	Create(intervention *models.Intervention) error
	FindByID(interventionID uint) (models.Intervention, bool, error)
	Deactivate(interventionID uint) error
}

// InterventionService handles community submissions. Interventions are
// never hard-deleted in normal flow; they are switched inactive instead so
// accumulated feedback keeps its target.
type InterventionService struct {
	interventions InterventionStore
}

type InterventionInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	SubmittedBy string `json:"submitted_by"`
}

func NewInterventionService(interventions InterventionStore) *InterventionService {
	return &InterventionService{interventions: interventions}
}

func ValidateInterventionInput(input InterventionInput) map[string]string {
	fields := make(map[string]string)
	if strings.TrimSpace(input.Title) == "" {
		fields["title"] = "title is required"
	}
	if strings.TrimSpace(input.Description) == "" {
		fields["description"] = "description is required"
	}
	return fields
}

func (service *InterventionService) Submit(input InterventionInput) (models.Intervention, error) {
	if fields := ValidateInterventionInput(input); len(fields) > 0 {
		return models.Intervention{}, &ValidationError{Fields: fields}
	}

	submitter := strings.TrimSpace(input.SubmittedBy)
	if submitter == "" {
		submitter = models.DefaultSubmitter
	}

	intervention := models.Intervention{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		SubmittedBy: submitter,
		IsActive:    true,
	}
	if err := service.interventions.Create(&intervention); err != nil {
		return models.Intervention{}, err
	}
	return intervention, nil
}

func (service *InterventionService) Deactivate(interventionID uint) error {
	_, found, err := service.interventions.FindByID(interventionID)
	if err != nil {
		return err
	}
	if !found {
		return ErrInterventionNotFound
	}
	return service.interventions.Deactivate(interventionID)
}
