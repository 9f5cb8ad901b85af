package service

import (
	"context"
	"time"

	"campus_energy"
	"campus_energy/internal/catalog"
	"campus_energy/internal/generator"
	"campus_energy/internal/repository"
)

// Decision is the result of a conflict check for a requested status change.
type Decision struct {
	Allowed   bool     `json:"allowed"`
	Conflicts []string `json:"conflicts"`
	// ConflictType classifies the first conflict found, for alerting.
	ConflictType campus_energy.ConflictType `json:"conflict_type,omitempty"`
}

// Summary is the dashboard headline computed from the latest telemetry batch
// and the runtime equipment states.
type Summary struct {
	TotalConsumptionKW  float64 `json:"total_consumption_kw"`
	TotalGenerationKW   float64 `json:"total_generation_kw"`
	BatteryLevelPercent float64 `json:"battery_level_percent"`
	ActiveEVs           int     `json:"active_evs"`
	CarbonOffsetKG      float64 `json:"carbon_offset_kg"`
	CostSavingsUSD      float64 `json:"cost_savings_usd"`
}

// Control owns the per-equipment status state machine, its history and its
// alerts.
type Control interface {
	IsChangeAllowed(equipmentID string, target campus_energy.EquipmentStatus) Decision
	ChangeStatus(ctx context.Context, equipmentID string, target campus_energy.EquipmentStatus, reason string) bool
	AcknowledgeAlert(alertID string) bool
	History(equipmentID string, days int) []campus_energy.StatusChange
	States() map[string]campus_energy.EquipmentState
	Alerts() []campus_energy.Alert
}

// Telemetry produces and caches synthetic energy data batches.
type Telemetry interface {
	Generate(day time.Time) []campus_energy.EnergyDataPoint
	Latest() []campus_energy.EnergyDataPoint
	ExportCSV(day time.Time) (string, error)
}

// Monitoring exposes read-only aggregates for the dashboard header.
type Monitoring interface {
	Summary() Summary
}

// Service aggregates all sub-services.
type Service struct {
	Control
	Telemetry
	Monitoring
}

// NewService wires the catalog, repositories and generator into concrete
// services. changeDelay is the simulated control-network round-trip applied
// by ChangeStatus.
func NewService(cat *catalog.Catalog, repos *repository.Repository, gen *generator.Generator, changeDelay time.Duration) *Service {
	control := NewControlService(cat, repos, changeDelay)
	telemetry := NewTelemetryService(gen)
	return &Service{
		Control:    control,
		Telemetry:  telemetry,
		Monitoring: NewMonitoringService(cat, telemetry, control),
	}
}
