package db

import "gorm.io/gorm"

type Repositories struct {
	Users         *UserRepository
	Entries       *EntryRepository
	Interventions *InterventionRepository
	Feedback      *FeedbackRepository
	Tags          *TagRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:         NewUserRepository(database),
		Entries:       NewEntryRepository(database),
		Interventions: NewInterventionRepository(database),
		Feedback:      NewFeedbackRepository(database),
		Tags:          NewTagRepository(database),
	}
}

// Count delegates so the aggregate counters can be consumed behind a single
// reader interface.

func (repos *Repositories) CountEntriesForUser(userID uint) (int64, error) {
	return repos.Entries.CountByUser(userID)
}

func (repos *Repositories) CountActiveInterventions() (int64, error) {
	return repos.Interventions.CountActive()
}

func (repos *Repositories) CountFeedback() (int64, error) {
	return repos.Feedback.Count()
}
