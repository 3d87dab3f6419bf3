package api

import (
	"time"

	"github.com/moodlog/moodlog/internal/db"
	"github.com/moodlog/moodlog/internal/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	authCookieName = "moodlog_session"

	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour

	defaultRecentEntryLimit = 20
	defaultTrendWindowDays  = 7
	maxTrendWindowDays      = 365
)

type Handler struct {
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	log          *zap.SugaredLogger

	repositories  *db.Repositories
	entries       *services.EntryService
	feedback      *services.FeedbackService
	interventions *services.InterventionService
	scoring       *services.ScoringService
	stats         *services.StatsService
	tagStats      *services.TagStatsService
	insights      *services.InsightService
	export        *services.ExportService
}

type credentialsInput struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`
}

type feedbackInput struct {
	Result string `json:"result"`
}

func NewHandler(database *gorm.DB, secret string, location *time.Location, cookieSecure bool, logger *zap.SugaredLogger) *Handler {
	if location == nil {
		location = time.Local
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	repositories := db.NewRepositories(database)
	suggestions := services.NewSuggestionService(repositories.Interventions)

	return &Handler{
		secretKey:     []byte(secret),
		location:      location,
		cookieSecure:  cookieSecure,
		log:           logger,
		repositories:  repositories,
		entries:       services.NewEntryService(repositories.Entries, suggestions, location),
		feedback:      services.NewFeedbackService(repositories.Entries, repositories.Feedback),
		interventions: services.NewInterventionService(repositories.Interventions),
		scoring:       services.NewScoringService(repositories.Interventions, repositories.Feedback),
		stats:         services.NewStatsService(repositories.Entries, repositories, location),
		tagStats:      services.NewTagStatsService(repositories.Entries),
		insights:      services.NewInsightService(repositories.Entries, location),
		export:        services.NewExportService(repositories.Entries, location),
	}
}
