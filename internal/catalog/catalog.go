package catalog

import (
	"fmt"
	"time"

	"campus_energy"
)

// Location is an installation site on campus.
type Location struct {
	ID        string                      `json:"id"`
	Name      string                      `json:"name"`
	Type      campus_energy.EquipmentType `json:"type"`
	Latitude  float64                     `json:"latitude"`
	Longitude float64                     `json:"longitude"`
	Address   string                      `json:"address"`
}

// SolarArray is the nameplate record of one rooftop/canopy PV installation.
type SolarArray struct {
	ID               string  `json:"id"`
	LocationID       string  `json:"location_id"`
	ModelNumber      string  `json:"model_number"`
	Manufacturer     string  `json:"manufacturer"`
	CapacityKW       float64 `json:"capacity_kw"`
	InstallationDate string  `json:"installation_date"`
	PanelCount       int     `json:"panel_count"`
	InverterModel    string  `json:"inverter_model"`
	TiltAngle        float64 `json:"tilt_angle"`
	AzimuthAngle     float64 `json:"azimuth_angle"`
}

// Battery is the nameplate record of one storage system.
type Battery struct {
	ID                 string  `json:"id"`
	LocationID         string  `json:"location_id"`
	ModelNumber        string  `json:"model_number"`
	Manufacturer       string  `json:"manufacturer"`
	CapacityKWH        float64 `json:"capacity_kwh"`
	MaxChargeRateKW    float64 `json:"max_charge_rate_kw"`
	MaxDischargeRateKW float64 `json:"max_discharge_rate_kw"`
	InstallationDate   string  `json:"installation_date"`
	Chemistry          string  `json:"chemistry"`
	WarrantyYears      int     `json:"warranty_years"`
}

// EVCharger is the nameplate record of one charging point.
type EVCharger struct {
	ID               string  `json:"id"`
	LocationID       string  `json:"location_id"`
	ModelNumber      string  `json:"model_number"`
	Manufacturer     string  `json:"manufacturer"`
	MaxPowerKW       float64 `json:"max_power_kw"`
	ConnectorType    string  `json:"connector_type"`
	InstallationDate string  `json:"installation_date"`
	NetworkProvider  string  `json:"network_provider"`
	Level            string  `json:"level"` // "Level 2" | "DC Fast"
}

// BuildingCategory drives the load-profile curve used by the generator.
type BuildingCategory string

const (
	CategoryAcademic       BuildingCategory = "academic"
	CategoryResidential    BuildingCategory = "residential"
	CategoryRecreational   BuildingCategory = "recreational"
	CategoryAdministrative BuildingCategory = "administrative"
)

// Building is the nameplate record of one campus building.
type Building struct {
	ID               string           `json:"id"`
	LocationID       string           `json:"location_id"`
	Name             string           `json:"name"`
	Category         BuildingCategory `json:"category"`
	MaxCapacityKW    float64          `json:"max_capacity_kw"`
	FloorAreaSqFt    float64          `json:"floor_area_sqft"`
	Occupancy        int              `json:"occupancy"`
	HVACSystem       string           `json:"hvac_system"`
	ConstructionYear int              `json:"construction_year"`
}

// LabCategory groups laboratory equipment by function.
type LabCategory string

const (
	LabIncubation  LabCategory = "incubation"
	LabAnalysis    LabCategory = "analysis"
	LabPreparation LabCategory = "preparation"
	LabSafety      LabCategory = "safety"
	LabMixing      LabCategory = "mixing"
)

// LabEquipmentSpec describes one category of laboratory equipment, modelled
// as a fleet of identical units.
type LabEquipmentSpec struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Quantity       int         `json:"quantity"`
	PowerPerUnitW  float64     `json:"power_per_unit_w"`
	OperatingHours string      `json:"operating_hours"`
	Category       LabCategory `json:"category"`
}

// EnergyProfile holds the fixed power figures applied per status by the
// control layer. OFF and MAINTENANCE imply zero consumption and generation.
type EnergyProfile struct {
	OnConsumptionKW      float64 `json:"on_consumption_kw"`
	StandbyConsumptionKW float64 `json:"standby_consumption_kw"`
	OffConsumptionKW     float64 `json:"off_consumption_kw"`
	OnGenerationKW       float64 `json:"on_generation_kw"`
	StandbyGenerationKW  float64 `json:"standby_generation_kw"`
}

// MaintenanceSchedule tracks the service cadence of controllable equipment.
type MaintenanceSchedule struct {
	LastMaintenance time.Time `json:"last_maintenance"`
	NextMaintenance time.Time `json:"next_maintenance"`
	Frequency       string    `json:"frequency"`
}

// ControlSpec is the static specification of one piece of controllable
// equipment: identity, energy profile and maintenance schedule.
type ControlSpec struct {
	ID           string                      `json:"id"`
	Name         string                      `json:"name"`
	Type         campus_energy.EquipmentType `json:"type"`
	Manufacturer string                      `json:"manufacturer"`
	Model        string                      `json:"model"`
	CapacityKW   float64                     `json:"capacity_kw"`
	Maintenance  MaintenanceSchedule         `json:"maintenance"`
	Profile      EnergyProfile               `json:"energy_profile"`
}

// ScheduledOperation is a calendar window during which status changes for
// the named equipment are blocked.
type ScheduledOperation struct {
	EquipmentID string    `json:"equipment_id"`
	Operation   string    `json:"operation"` // e.g. MAINTENANCE, PEAK_SHAVING
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
}

// Catalog is the immutable reference data for the whole campus. Build one at
// startup, validate it, and share it read-only.
type Catalog struct {
	Locations     []Location
	SolarArrays   []SolarArray
	Batteries     []Battery
	EVChargers    []EVCharger
	Buildings     []Building
	LabEquipment  []LabEquipmentSpec
	ControlSpecs  []ControlSpec
	ScheduledOps  []ScheduledOperation
	LabBuildingID string
}

// Validate fails fast on cross-reference or range errors. Catalog problems
// are configuration bugs and must abort startup, never surface mid-run.
func (c *Catalog) Validate() error {
	locs := make(map[string]bool, len(c.Locations))
	for _, l := range c.Locations {
		if l.ID == "" {
			return fmt.Errorf("catalog: location with empty id (%q)", l.Name)
		}
		if locs[l.ID] {
			return fmt.Errorf("catalog: duplicate location id %q", l.ID)
		}
		locs[l.ID] = true
	}

	for _, s := range c.SolarArrays {
		if !locs[s.LocationID] {
			return fmt.Errorf("catalog: solar array %q references unknown location %q", s.ID, s.LocationID)
		}
		if s.CapacityKW <= 0 {
			return fmt.Errorf("catalog: solar array %q has non-positive capacity", s.ID)
		}
		if s.TiltAngle < 0 || s.TiltAngle > 90 {
			return fmt.Errorf("catalog: solar array %q tilt %v outside [0,90]", s.ID, s.TiltAngle)
		}
		if s.AzimuthAngle < 0 || s.AzimuthAngle >= 360 {
			return fmt.Errorf("catalog: solar array %q azimuth %v outside [0,360)", s.ID, s.AzimuthAngle)
		}
	}
	for _, b := range c.Batteries {
		if !locs[b.LocationID] {
			return fmt.Errorf("catalog: battery %q references unknown location %q", b.ID, b.LocationID)
		}
		if b.CapacityKWH <= 0 || b.MaxChargeRateKW <= 0 || b.MaxDischargeRateKW <= 0 {
			return fmt.Errorf("catalog: battery %q has non-positive capacity or rate", b.ID)
		}
	}
	for _, e := range c.EVChargers {
		if !locs[e.LocationID] {
			return fmt.Errorf("catalog: ev charger %q references unknown location %q", e.ID, e.LocationID)
		}
		if e.MaxPowerKW <= 0 {
			return fmt.Errorf("catalog: ev charger %q has non-positive max power", e.ID)
		}
	}
	foundLab := false
	for _, b := range c.Buildings {
		if !locs[b.LocationID] {
			return fmt.Errorf("catalog: building %q references unknown location %q", b.ID, b.LocationID)
		}
		if b.MaxCapacityKW <= 0 {
			return fmt.Errorf("catalog: building %q has non-positive capacity", b.ID)
		}
		if b.ID == c.LabBuildingID {
			foundLab = true
		}
	}
	if c.LabBuildingID != "" && !foundLab {
		return fmt.Errorf("catalog: lab building id %q not present in buildings", c.LabBuildingID)
	}
	for _, l := range c.LabEquipment {
		if l.Quantity <= 0 || l.PowerPerUnitW <= 0 {
			return fmt.Errorf("catalog: lab equipment %q has non-positive quantity or power", l.ID)
		}
	}

	specs := make(map[string]bool, len(c.ControlSpecs))
	for _, s := range c.ControlSpecs {
		if specs[s.ID] {
			return fmt.Errorf("catalog: duplicate control spec id %q", s.ID)
		}
		specs[s.ID] = true
	}
	for _, op := range c.ScheduledOps {
		if !specs[op.EquipmentID] {
			return fmt.Errorf("catalog: scheduled operation references unknown equipment %q", op.EquipmentID)
		}
		if !op.EndTime.After(op.StartTime) {
			return fmt.Errorf("catalog: scheduled operation for %q has end before start", op.EquipmentID)
		}
	}
	return nil
}

// ControlSpecByID returns the spec for id, if any.
func (c *Catalog) ControlSpecByID(id string) (ControlSpec, bool) {
	for _, s := range c.ControlSpecs {
		if s.ID == id {
			return s, true
		}
	}
	return ControlSpec{}, false
}

// BatteryByID returns the battery record for id, if any.
func (c *Catalog) BatteryByID(id string) (Battery, bool) {
	for _, b := range c.Batteries {
		if b.ID == id {
			return b, true
		}
	}
	return Battery{}, false
}

// LocationByID returns the location record for id, if any.
func (c *Catalog) LocationByID(id string) (Location, bool) {
	for _, l := range c.Locations {
		if l.ID == id {
			return l, true
		}
	}
	return Location{}, false
}

// LabNameplateKW sums the installed (all units on) laboratory power.
func (c *Catalog) LabNameplateKW() float64 {
	total := 0.0
	for _, l := range c.LabEquipment {
		total += float64(l.Quantity) * l.PowerPerUnitW / 1000
	}
	return total
}
