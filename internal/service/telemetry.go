package service

import (
	"sync"
	"time"

	"campus_energy"
	"campus_energy/internal/generator"
	"campus_energy/internal/metrics"
)

// TelemetryService wraps the generator and keeps the most recent batch for
// preview tables and the dashboard summary.
type TelemetryService struct {
	gen *generator.Generator

	mu     sync.RWMutex
	latest []campus_energy.EnergyDataPoint
}

func NewTelemetryService(gen *generator.Generator) *TelemetryService {
	return &TelemetryService{gen: gen}
}

// Generate produces a fresh batch for day and replaces the cached one.
func (s *TelemetryService) Generate(day time.Time) []campus_energy.EnergyDataPoint {
	points := s.gen.Generate(day)

	s.mu.Lock()
	s.latest = points
	s.mu.Unlock()

	metrics.GenerationRuns.Inc()
	metrics.PointsGenerated.Add(float64(len(points)))
	return points
}

// Latest returns the most recently generated batch, or nil before the first
// run.
func (s *TelemetryService) Latest() []campus_energy.EnergyDataPoint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

// ExportCSV generates a batch for day and renders it in the fixed 26-column
// export schema.
func (s *TelemetryService) ExportCSV(day time.Time) (string, error) {
	return generator.CSV(s.Generate(day))
}
