package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"clinicore/backup"
	"clinicore/configuration"
	"clinicore/models"
	"clinicore/store"
)

func newTestHandler(t *testing.T) (*Handler, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	h := New(s, backup.NewCoordinator(s), configuration.Config{JWTSecret: "test-secret"})
	return h, gin.New()
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPatientEndpoints(t *testing.T) {
	h, r := newTestHandler(t)
	r.POST("/patients", h.AddPatient)
	r.GET("/patients/:id", h.GetPatient)
	r.PUT("/patients/:id", h.UpdatePatient)

	w := doJSON(t, r, http.MethodPost, "/patients",
		`{"patient_id":"PAT-1","name":"Jane Doe","date_of_birth":"1990-05-20","gender":"Female"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("create: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/patients/PAT-1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("get: %d %s", w.Code, w.Body.String())
	}
	var resp struct {
		Status string         `json:"status"`
		Data   models.Patient `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "Success" || resp.Data.Name != "Jane Doe" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/patients/PAT-404", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing patient should 404, got %d", w.Code)
	}

	// Duplicate identifier maps to conflict.
	w = doJSON(t, r, http.MethodPost, "/patients",
		`{"patient_id":"PAT-1","name":"Impostor","date_of_birth":"1991-01-01","gender":"Other"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate should 409, got %d %s", w.Code, w.Body.String())
	}

	// Missing required fields map to bad request.
	w = doJSON(t, r, http.MethodPost, "/patients", `{"name":"No Birthday"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("invalid payload should 400, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPut, "/patients/PAT-1", `{"phone":"555-9999"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update: %d %s", w.Code, w.Body.String())
	}
}

func TestReferentialFailureMapsTo422(t *testing.T) {
	h, r := newTestHandler(t)
	r.POST("/appointments", h.AddAppointment)

	w := doJSON(t, r, http.MethodPost, "/appointments",
		`{"patient_id":"PAT-NOPE","doctor_id":"DOC-NOPE","appointment_date":"2024-01-10","appointment_time":"10:30"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("dangling refs should 422, got %d %s", w.Code, w.Body.String())
	}
}

func TestLoginEndpoint(t *testing.T) {
	h, r := newTestHandler(t)
	r.POST("/auth/login", h.Login)

	w := doJSON(t, r, http.MethodPost, "/auth/login", `{"username":"admin","password":"admin123"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login: %d %s", w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("no token in response: %s", w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/auth/login", `{"username":"admin","password":"wrong"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad password should 401, got %d", w.Code)
	}
}

func TestBackupStatusEndpoint(t *testing.T) {
	h, r := newTestHandler(t)
	r.GET("/backup/status", h.BackupStatus)

	w := doJSON(t, r, http.MethodGet, "/backup/status", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: %d %s", w.Code, w.Body.String())
	}
	var resp struct {
		Available bool   `json:"available"`
		State     string `json:"state"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Available || resp.State != "Idle" {
		t.Fatalf("unexpected status payload: %s", w.Body.String())
	}
}
