package api

import (
	"net/http"
	"testing"

	"github.com/moodlog/moodlog/internal/models"
	"github.com/moodlog/moodlog/internal/services"
)

func TestListInterventionsIsPublic(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	response := doJSON(t, app, http.MethodGet, "/api/interventions", nil, "")
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected public listing status 200, got %d", response.StatusCode)
	}

	ranked := make([]services.ScoredIntervention, 0)
	decodeJSONBody(t, response, &ranked)
	if len(ranked) != 5 {
		t.Fatalf("expected 5 seeded interventions, got %d", len(ranked))
	}
	for _, scored := range ranked {
		if scored.Score != 0.0 || scored.Votes != 0 {
			t.Fatalf("expected zero score without feedback, got %+v", scored)
		}
	}
}

func TestSubmitAndDeactivateIntervention(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	cookie := registerAndLogin(t, app, "submitter@example.com")

	createResponse := doJSON(t, app, http.MethodPost, "/api/interventions", map[string]any{
		"title":       "Call a friend",
		"description": "Reach out to someone you trust for five minutes.",
	}, cookie)
	if createResponse.StatusCode != http.StatusCreated {
		t.Fatalf("expected submit status 201, got %d", createResponse.StatusCode)
	}

	created := models.Intervention{}
	decodeJSONBody(t, createResponse, &created)
	if created.SubmittedBy != models.DefaultSubmitter {
		t.Fatalf("expected default submitter, got %q", created.SubmittedBy)
	}
	if !created.IsActive {
		t.Fatal("expected new intervention to start active")
	}

	deactivateResponse := doJSON(t, app, http.MethodPost, "/api/interventions/"+uintToString(created.ID)+"/deactivate", nil, cookie)
	deactivateResponse.Body.Close()
	if deactivateResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected deactivate status 200, got %d", deactivateResponse.StatusCode)
	}

	listResponse := doJSON(t, app, http.MethodGet, "/api/interventions", nil, "")
	ranked := make([]services.ScoredIntervention, 0)
	decodeJSONBody(t, listResponse, &ranked)
	for _, scored := range ranked {
		if scored.Intervention.ID == created.ID {
			t.Fatal("expected deactivated intervention to leave the active listing")
		}
	}
}

func TestSubmitInterventionRequiresAuth(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	response := doJSON(t, app, http.MethodPost, "/api/interventions", map[string]any{
		"title":       "Anonymous tip",
		"description": "Should not be accepted.",
	}, "")
	response.Body.Close()
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected submit status 401, got %d", response.StatusCode)
	}
}

func TestInterventionScoresReflectFeedback(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	cookie := registerAndLogin(t, app, "scorer@example.com")

	// Narrow the library to one intervention so the suggestion is
	// deterministic.
	var keep models.Intervention
	if err := database.Where("is_active = ?", true).First(&keep).Error; err != nil {
		t.Fatalf("load seeded intervention: %v", err)
	}
	if err := database.Model(&models.Intervention{}).
		Where("id <> ?", keep.ID).
		Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate other interventions: %v", err)
	}

	for i := 0; i < 3; i++ {
		response := doJSON(t, app, http.MethodPost, "/api/entries", map[string]any{
			"emotion":   models.EmotionAnxiety,
			"intensity": 6,
		}, cookie)
		created := entryResponse{}
		decodeJSONBody(t, response, &created)

		result := models.ResultHelped
		if i == 2 {
			result = models.ResultWorse
		}
		feedbackResponse := doJSON(t, app, http.MethodPost, "/api/entries/"+uintToString(created.Entry.ID)+"/feedback", map[string]any{
			"result": result,
		}, cookie)
		feedbackResponse.Body.Close()
		if feedbackResponse.StatusCode != http.StatusCreated {
			t.Fatalf("expected feedback status 201, got %d", feedbackResponse.StatusCode)
		}
	}

	listResponse := doJSON(t, app, http.MethodGet, "/api/interventions", nil, "")
	ranked := make([]services.ScoredIntervention, 0)
	decodeJSONBody(t, listResponse, &ranked)
	if len(ranked) != 1 {
		t.Fatalf("expected 1 active intervention, got %d", len(ranked))
	}
	// (2 helped - 1 worse) / 3 = 0.33
	if ranked[0].Score != 0.33 || ranked[0].Votes != 3 {
		t.Fatalf("expected score 0.33 with 3 votes, got %+v", ranked[0])
	}
}
