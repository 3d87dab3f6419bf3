package api

import (
	"net/http"
	"testing"
)

func TestRegisterLoginLogoutFlow(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	cookie := registerAndLogin(t, app, "flow@example.com")

	overviewResponse := doJSON(t, app, http.MethodGet, "/api/stats/overview", nil, cookie)
	defer overviewResponse.Body.Close()
	if overviewResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected authenticated overview status 200, got %d", overviewResponse.StatusCode)
	}

	loginResponse := doJSON(t, app, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "flow@example.com",
		"password": "StrongPass1",
	}, "")
	defer loginResponse.Body.Close()
	if loginResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected login status 200, got %d", loginResponse.StatusCode)
	}

	logoutResponse := doJSON(t, app, http.MethodPost, "/api/auth/logout", nil, cookie)
	defer logoutResponse.Body.Close()
	if logoutResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected logout status 200, got %d", logoutResponse.StatusCode)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	registerAndLogin(t, app, "taken@example.com")

	response := doJSON(t, app, http.MethodPost, "/api/auth/register", map[string]any{
		"email":    "  TAKEN@example.com ",
		"password": "AnotherPass1",
	}, "")
	defer response.Body.Close()
	if response.StatusCode != http.StatusConflict {
		t.Fatalf("expected duplicate register status 409, got %d", response.StatusCode)
	}
}

func TestRegisterValidation(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	tests := []struct {
		name    string
		payload map[string]any
	}{
		{name: "invalid email", payload: map[string]any{"email": "not-an-email", "password": "StrongPass1"}},
		{name: "short password", payload: map[string]any{"email": "short@example.com", "password": "abc"}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			response := doJSON(t, app, http.MethodPost, "/api/auth/register", testCase.payload, "")
			defer response.Body.Close()
			if response.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", response.StatusCode)
			}
		})
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	registerAndLogin(t, app, "secure@example.com")

	response := doJSON(t, app, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "secure@example.com",
		"password": "WrongPass99",
	}, "")
	defer response.Body.Close()
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected login status 401, got %d", response.StatusCode)
	}
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	paths := []string{
		"/api/entries",
		"/api/stats/overview",
		"/api/stats/trend",
		"/api/export/csv",
	}
	for _, path := range paths {
		response := doJSON(t, app, http.MethodGet, path, nil, "")
		response.Body.Close()
		if response.StatusCode != http.StatusUnauthorized {
			t.Fatalf("expected %s to return 401 without a session, got %d", path, response.StatusCode)
		}
	}
}
