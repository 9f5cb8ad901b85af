package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"campus_energy"
	"campus_energy/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// --- parseInterval unit tests ---

func TestParseInterval(t *testing.T) {
	h := NewHandler(&service.Service{}, nil, nil)

	cases := []struct {
		name string
		u    string
		want time.Duration
	}{
		{"default_when_missing", "/ws", 1 * time.Second},
		{"interval_string_valid", "/ws?interval=200ms", 200 * time.Millisecond},
		{"interval_ms_valid", "/ws?interval_ms=150", 150 * time.Millisecond},
		{"interval_too_large", "/ws?interval=20s", 1 * time.Second},
		{"interval_ms_too_large", "/ws?interval_ms=20000", 1 * time.Second},
		{"interval_invalid_string", "/ws?interval=bogus", 1 * time.Second},
		{"interval_ms_invalid", "/ws?interval_ms=NaN", 1 * time.Second},
		{"both_present_interval_wins", "/ws?interval=2s&interval_ms=150", 2 * time.Second},
		{"both_present_invalid_interval_ms_used", "/ws?interval=bogus&interval_ms=250", 250 * time.Millisecond},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.u, nil)
			c, _ := gin.CreateTestContext(w)
			c.Request = req
			got := h.parseInterval(c)
			if got != tc.want {
				t.Fatalf("got %v, want %v for %s", got, tc.want, tc.u)
			}
		})
	}
}

// --- websocket integration test ---

// controlStub returns a fixed state map.
type controlStub struct {
	states map[string]campus_energy.EquipmentState
}

func (s *controlStub) IsChangeAllowed(string, campus_energy.EquipmentStatus) service.Decision {
	return service.Decision{Allowed: true}
}
func (s *controlStub) ChangeStatus(context.Context, string, campus_energy.EquipmentStatus, string) bool {
	return false
}
func (s *controlStub) AcknowledgeAlert(string) bool { return false }
func (s *controlStub) History(string, int) []campus_energy.StatusChange { return nil }
func (s *controlStub) States() map[string]campus_energy.EquipmentState { return s.states }
func (s *controlStub) Alerts() []campus_energy.Alert { return nil }

func TestWebSocket_StateStream_InitialAndPeriodic(t *testing.T) {
	stub := &controlStub{states: map[string]campus_energy.EquipmentState{
		"solar_001": {
			EquipmentID:   "solar_001",
			Status:        campus_energy.StatusOn,
			ConsumptionKW: 2,
			GenerationKW:  200,
		},
	}}
	s := &service.Service{Control: stub}

	r := gin.New()
	h := NewHandler(s, nil, nil)
	r.GET("/ws", h.wsConnect)

	srv := httptest.NewServer(r)
	defer srv.Close()

	u, _ := url.Parse(srv.URL)
	u.Scheme = "ws"
	u.Path = "/ws"
	q := u.Query()
	q.Set("interval_ms", "20") // fast ticks for the test
	u.RawQuery = q.Encode()

	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	conn, _, err := dialer.Dial(u.String(), nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	defer conn.Close()

	type envelope struct {
		Type  string          `json:"type"`
		Data  json.RawMessage `json:"data"`
		Error string          `json:"error"`
	}

	// Read initial snapshot
	_ = conn.SetReadDeadline(time.Now().Add(1 * time.Second))
	var env envelope
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read initial: %v", err)
	}
	if env.Type != "states" || len(env.Data) == 0 {
		t.Fatalf("bad envelope: %+v", env)
	}
	var states map[string]campus_energy.EquipmentState
	if err := json.Unmarshal(env.Data, &states); err != nil {
		t.Fatalf("unmarshal states: %v", err)
	}
	st, ok := states["solar_001"]
	if !ok || st.Status != campus_energy.StatusOn || st.GenerationKW != 200 {
		t.Fatalf("unexpected states: %+v", states)
	}

	// Read a subsequent tick
	_ = conn.SetReadDeadline(time.Now().Add(1 * time.Second))
	env = envelope{}
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read second: %v", err)
	}
	if env.Type != "states" {
		t.Fatalf("expected type=states, got %+v", env)
	}
}
