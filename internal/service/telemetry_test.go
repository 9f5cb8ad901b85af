package service

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"campus_energy/internal/catalog"
	"campus_energy/internal/generator"
)

func newTelemetry(t *testing.T) *TelemetryService {
	t.Helper()
	cat := catalog.Default()
	if err := cat.Validate(); err != nil {
		t.Fatalf("default catalog must validate: %v", err)
	}
	return NewTelemetryService(generator.New(cat, rand.New(rand.NewSource(1))))
}

func TestTelemetryGenerateCachesLatest(t *testing.T) {
	t.Parallel()

	svc := newTelemetry(t)
	if svc.Latest() != nil {
		t.Fatalf("Latest before first run: want nil")
	}

	day := time.Date(2026, time.July, 6, 0, 0, 0, 0, time.UTC)
	points := svc.Generate(day)
	if len(points) == 0 {
		t.Fatalf("Generate returned no points")
	}

	latest := svc.Latest()
	if len(latest) != len(points) {
		t.Fatalf("Latest: want %d points, got %d", len(points), len(latest))
	}
	if !latest[0].Timestamp.Equal(points[0].Timestamp) {
		t.Fatalf("Latest does not hold the generated batch")
	}
}

func TestTelemetryExportCSV(t *testing.T) {
	t.Parallel()

	svc := newTelemetry(t)
	day := time.Date(2026, time.July, 6, 0, 0, 0, 0, time.UTC)

	doc, err := svc.ExportCSV(day)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(doc, "\n"), "\n")
	if want := len(svc.Latest()) + 1; len(lines) != want {
		t.Fatalf("csv lines: want %d, got %d", want, len(lines))
	}
	if !strings.HasPrefix(lines[0], "Timestamp,Equipment_ID,Equipment_Type") {
		t.Fatalf("unexpected header: %q", lines[0])
	}
}
