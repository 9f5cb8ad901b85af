package handlers

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"campus_energy/internal/catalog"
	"campus_energy/internal/generator"
	"campus_energy/internal/logger"
	"campus_energy/internal/repository"
	"campus_energy/internal/service"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat := catalog.Default()
	if err := cat.Validate(); err != nil {
		t.Fatalf("default catalog must validate: %v", err)
	}
	gen := generator.New(cat, rand.New(rand.NewSource(1)))
	services := service.NewService(cat, repository.NewRepository(), gen, time.Millisecond)
	return NewHandler(services, cat, logger.Get(logger.ErrorLevel)).InitRoutes()
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthAndMetricsEndpoints(t *testing.T) {
	router := newTestRouter(t)

	if w := doRequest(t, router, http.MethodGet, "/health", ""); w.Code != http.StatusOK {
		t.Fatalf("/health: want 200, got %d", w.Code)
	}
	if w := doRequest(t, router, http.MethodGet, "/metrics", ""); w.Code != http.StatusOK {
		t.Fatalf("/metrics: want 200, got %d", w.Code)
	}
}

func TestGetStates(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/control/states", "")
	if w.Code != http.StatusOK {
		t.Fatalf("states: want 200, got %d", w.Code)
	}
	var resp struct {
		Count  int                        `json:"count"`
		States map[string]json.RawMessage `json:"states"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.Count != 3 || len(resp.States) != 3 {
		t.Fatalf("want 3 controllable states, got count=%d len=%d", resp.Count, len(resp.States))
	}
	if _, ok := resp.States["solar_001"]; !ok {
		t.Fatalf("solar_001 missing from states")
	}
}

func TestChangeStatusValidation(t *testing.T) {
	router := newTestRouter(t)

	cases := []struct {
		name     string
		path     string
		body     string
		wantCode int
	}{
		{"missing body", "/api/v1/control/solar_001/status", "", http.StatusBadRequest},
		{"invalid status value", "/api/v1/control/solar_001/status", `{"status":"BANANAS"}`, http.StatusBadRequest},
		{"unknown equipment", "/api/v1/control/ghost/status", `{"status":"STANDBY"}`, http.StatusNotFound},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if w := doRequest(t, router, http.MethodPost, tc.path, tc.body); w.Code != tc.wantCode {
				t.Fatalf("want %d, got %d (body: %s)", tc.wantCode, w.Code, w.Body.String())
			}
		})
	}
}

func TestCheckStatusChangeValidation(t *testing.T) {
	router := newTestRouter(t)

	if w := doRequest(t, router, http.MethodGet, "/api/v1/control/solar_001/check?status=BANANAS", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("invalid status: want 400, got %d", w.Code)
	}

	w := doRequest(t, router, http.MethodGet, "/api/v1/control/solar_001/check?status=STANDBY", "")
	if w.Code != http.StatusOK {
		t.Fatalf("check: want 200, got %d", w.Code)
	}
	var d struct {
		Allowed   bool     `json:"allowed"`
		Conflicts []string `json:"conflicts"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &d); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
}

func TestHistoryDaysValidation(t *testing.T) {
	router := newTestRouter(t)

	if w := doRequest(t, router, http.MethodGet, "/api/v1/control/solar_001/history?days=-1", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("negative days: want 400, got %d", w.Code)
	}
	if w := doRequest(t, router, http.MethodGet, "/api/v1/control/solar_001/history", ""); w.Code != http.StatusOK {
		t.Fatalf("default window: want 200, got %d", w.Code)
	}
}

func TestTelemetryEndpoints(t *testing.T) {
	router := newTestRouter(t)

	if w := doRequest(t, router, http.MethodGet, "/api/v1/telemetry?date=not-a-date", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("bad date: want 400, got %d", w.Code)
	}

	w := doRequest(t, router, http.MethodGet, "/api/v1/telemetry?date=2026-07-06", "")
	if w.Code != http.StatusOK {
		t.Fatalf("telemetry: want 200, got %d", w.Code)
	}
	var resp struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	cat := catalog.Default()
	perSlot := len(cat.SolarArrays) + len(cat.Buildings) + len(cat.Batteries) + len(cat.EVChargers)
	if want := generator.SlotsPerDay * perSlot; resp.Count != want {
		t.Fatalf("points: want %d, got %d", want, resp.Count)
	}

	csv := doRequest(t, router, http.MethodGet, "/api/v1/telemetry/csv?date=2026-07-06", "")
	if csv.Code != http.StatusOK {
		t.Fatalf("csv: want 200, got %d", csv.Code)
	}
	if ct := csv.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("csv content type: got %q", ct)
	}
	if cd := csv.Header().Get("Content-Disposition"); !strings.Contains(cd, "energy_data_2026-07-06.csv") {
		t.Errorf("csv disposition: got %q", cd)
	}

	if w := doRequest(t, router, http.MethodGet, "/api/v1/summary", ""); w.Code != http.StatusOK {
		t.Fatalf("summary: want 200, got %d", w.Code)
	}
}

func TestCatalogEndpoints(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/equipment/", "")
	if w.Code != http.StatusOK {
		t.Fatalf("catalog: want 200, got %d", w.Code)
	}

	w = doRequest(t, router, http.MethodGet, "/api/v1/equipment/solar_001", "")
	if w.Code != http.StatusOK {
		t.Fatalf("equipment lookup: want 200, got %d", w.Code)
	}
	var resp struct {
		Location struct {
			ID string `json:"id"`
		} `json:"location"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.Location.ID != "loc_001" {
		t.Errorf("location: want loc_001, got %q", resp.Location.ID)
	}

	if w := doRequest(t, router, http.MethodGet, "/api/v1/equipment/ghost", ""); w.Code != http.StatusNotFound {
		t.Fatalf("unknown equipment: want 404, got %d", w.Code)
	}
}

func TestAlertsEndpoints(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/alerts/", "")
	if w.Code != http.StatusOK {
		t.Fatalf("alerts: want 200, got %d", w.Code)
	}
	if w := doRequest(t, router, http.MethodPost, "/api/v1/alerts/ghost/ack", ""); w.Code != http.StatusNotFound {
		t.Fatalf("unknown alert ack: want 404, got %d", w.Code)
	}
}
