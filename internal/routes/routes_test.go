package routes_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/jobportal/jobportal-backend/internal/config"
	"github.com/jobportal/jobportal-backend/internal/database"
	"github.com/jobportal/jobportal-backend/internal/handlers"
	"github.com/jobportal/jobportal-backend/internal/routes"
	"github.com/jobportal/jobportal-backend/internal/services"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	database.DB = db

	cfg := &config.Config{
		JWTSecret:   "test-secret",
		JWTExpiry:   time.Hour,
		CORSOrigins: "*",
	}

	authService := services.NewAuthService(db, cfg)
	jobService := services.NewJobService(db)
	applicationService := services.NewApplicationService(db)

	app := fiber.New()
	routes.Setup(app, cfg,
		handlers.NewAuthHandler(authService),
		handlers.NewJobHandler(jobService),
		handlers.NewApplicationHandler(applicationService),
		handlers.NewHealthHandler(),
	)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}

	var decoded map[string]interface{}
	if len(raw) > 0 && raw[0] == '{' {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("decode body %q: %v", raw, err)
		}
	}
	return resp.StatusCode, decoded
}

func TestPing(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, http.MethodGet, "/ping", "", nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if body["message"] != "pong" {
		t.Errorf("message = %v, want pong", body["message"])
	}
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	app := newTestApp(t)

	paths := []struct {
		method, path string
	}{
		{http.MethodGet, "/api/profile"},
		{http.MethodPost, "/api/jobs/"},
		{http.MethodGet, "/api/applications/"},
	}
	for _, p := range paths {
		if status, _ := doJSON(t, app, p.method, p.path, "", nil); status != http.StatusUnauthorized {
			t.Errorf("%s %s without token: status = %d, want 401", p.method, p.path, status)
		}
	}
}

func TestJobPortalScenario(t *testing.T) {
	app := newTestApp(t)

	// Register.
	status, user := doJSON(t, app, http.MethodPost, "/api/users/register", "", map[string]string{
		"username": "a", "email": "a@x.com", "password": "p",
	})
	if status != http.StatusCreated {
		t.Fatalf("register: status = %d, want 201", status)
	}
	if _, ok := user["password"]; ok {
		t.Error("register response leaks the password field")
	}

	// Same email again conflicts.
	status, _ = doJSON(t, app, http.MethodPost, "/api/users/register", "", map[string]string{
		"username": "b", "email": "a@x.com", "password": "p",
	})
	if status != http.StatusConflict {
		t.Fatalf("duplicate register: status = %d, want 409", status)
	}

	// Login, wrong password first.
	status, _ = doJSON(t, app, http.MethodPost, "/api/users/login", "", map[string]string{
		"identifier": "a", "password": "nope",
	})
	if status != http.StatusUnauthorized {
		t.Fatalf("bad login: status = %d, want 401", status)
	}

	status, login := doJSON(t, app, http.MethodPost, "/api/users/login", "", map[string]string{
		"identifier": "a", "password": "p",
	})
	if status != http.StatusOK {
		t.Fatalf("login: status = %d, want 200", status)
	}
	token, _ := login["token"].(string)
	if token == "" {
		t.Fatal("login response carries no token")
	}

	// Profile round-trip with the bearer token.
	status, profile := doJSON(t, app, http.MethodGet, "/api/profile", token, nil)
	if status != http.StatusOK || profile["username"] != "a" {
		t.Fatalf("profile: status = %d body = %v", status, profile)
	}

	// Job without a title is rejected.
	status, _ = doJSON(t, app, http.MethodPost, "/api/jobs/", token, map[string]string{
		"company": "Acme",
	})
	if status != http.StatusBadRequest {
		t.Fatalf("untitled job: status = %d, want 400", status)
	}

	status, job := doJSON(t, app, http.MethodPost, "/api/jobs/", token, map[string]string{
		"title": "Engineer",
	})
	if status != http.StatusCreated {
		t.Fatalf("create job: status = %d, want 201", status)
	}
	if job["isBookmarked"] != false {
		t.Errorf("isBookmarked = %v, want false", job["isBookmarked"])
	}
	jobID, _ := job["id"].(string)

	// Bookmark toggle flips the flag.
	status, toggled := doJSON(t, app, http.MethodPut, "/api/jobs/"+jobID+"/bookmark", token, nil)
	if status != http.StatusOK || toggled["isBookmarked"] != true {
		t.Fatalf("toggle: status = %d isBookmarked = %v", status, toggled["isBookmarked"])
	}

	status, _ = doJSON(t, app, http.MethodPut, "/api/jobs/00000000-0000-0000-0000-000000000000/bookmark", token, nil)
	if status != http.StatusNotFound {
		t.Fatalf("unknown job toggle: status = %d, want 404", status)
	}

	// Application with valid ids defaults to submitted.
	status, application := doJSON(t, app, http.MethodPost, "/api/applications/", token, map[string]string{
		"user_id": profile["id"].(string), "job_id": jobID,
	})
	if status != http.StatusCreated {
		t.Fatalf("create application: status = %d, want 201", status)
	}
	if application["status"] != "submitted" {
		t.Errorf("status = %v, want submitted", application["status"])
	}

	// Missing ids are a 400 for the caller.
	status, _ = doJSON(t, app, http.MethodPost, "/api/applications/", token, map[string]string{
		"job_id": jobID,
	})
	if status != http.StatusBadRequest {
		t.Fatalf("application without user: status = %d, want 400", status)
	}

	// Public job listing works without a token.
	req := httptest.NewRequest(http.MethodGet, "/api/jobs/", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("list jobs: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list jobs: status = %d, want 200", resp.StatusCode)
	}
	var jobs []map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&jobs); err != nil {
		t.Fatalf("decode jobs: %v", err)
	}
	if len(jobs) != 1 || jobs[0]["title"] != "Engineer" {
		t.Errorf("jobs = %v", jobs)
	}

	// Deleting the account invalidates the profile but not the token itself.
	status, _ = doJSON(t, app, http.MethodDelete, "/api/users/me", token, map[string]string{
		"password": "p",
	})
	if status != http.StatusOK {
		t.Fatalf("delete account: status = %d, want 200", status)
	}
	status, _ = doJSON(t, app, http.MethodGet, "/api/profile", token, nil)
	if status != http.StatusNotFound {
		t.Fatalf("profile after delete: status = %d, want 404", status)
	}
}
