package campus_energy

import "time"

// EquipmentType tags a data point or runtime record with the kind of asset
// that produced it.
type EquipmentType string

const (
	TypeSolar      EquipmentType = "solar"
	TypeBattery    EquipmentType = "battery"
	TypeEVCharger  EquipmentType = "ev_charger"
	TypeBuilding   EquipmentType = "building"
	TypeLaboratory EquipmentType = "laboratory"
)

// EquipmentStatus is the controllable operating state of a piece of equipment.
type EquipmentStatus string

const (
	StatusOn          EquipmentStatus = "ON"
	StatusStandby     EquipmentStatus = "STANDBY"
	StatusOff         EquipmentStatus = "OFF"
	StatusMaintenance EquipmentStatus = "MAINTENANCE"
)

// Valid reports whether s is one of the four known statuses.
func (s EquipmentStatus) Valid() bool {
	switch s {
	case StatusOn, StatusStandby, StatusOff, StatusMaintenance:
		return true
	}
	return false
}

// WeatherCondition is drawn once per generated day and shared by every data
// point in that batch.
type WeatherCondition string

const (
	WeatherSunny        WeatherCondition = "sunny"
	WeatherPartlyCloudy WeatherCondition = "partly_cloudy"
	WeatherCloudy       WeatherCondition = "cloudy"
	WeatherRainy        WeatherCondition = "rainy"
)

// BatteryMode describes what a battery was doing during a slot.
type BatteryMode string

const (
	BatteryCharging    BatteryMode = "charging"
	BatteryDischarging BatteryMode = "discharging"
	BatteryIdle        BatteryMode = "idle"
)

// ChargingStatus is the per-slot state of an EV charging point.
type ChargingStatus string

const (
	ChargerAvailable ChargingStatus = "available"
	ChargerOccupied  ChargingStatus = "occupied"
	ChargerOffline   ChargingStatus = "offline"
)

// AlertSeverity classifies alerts raised by the control layer.
type AlertSeverity string

const (
	SeverityInfo    AlertSeverity = "INFO"
	SeverityWarning AlertSeverity = "WARNING"
	SeverityError   AlertSeverity = "ERROR"
)

// ConflictType classifies why a status change was blocked.
type ConflictType string

const (
	ConflictScheduledOperation ConflictType = "SCHEDULED_OPERATION"
	ConflictEnergyOptimization ConflictType = "ENERGY_OPTIMIZATION"
	ConflictMaintenanceDue     ConflictType = "MAINTENANCE_DUE"
)

// SolarReading is the payload of a solar-array data point.
type SolarReading struct {
	GenerationKW float64 `json:"power_generation_kw"`
	VoltageV     float64 `json:"voltage_v"`
	CurrentA     float64 `json:"current_a"`
}

// BatteryReading is the payload of a battery data point.
type BatteryReading struct {
	ChargePercent  float64     `json:"charge_level_percent"`
	ChargingRateKW float64     `json:"charging_rate_kw"` // negative while discharging
	Mode           BatteryMode `json:"mode"`
}

// EVChargerReading is the payload of an EV-charger data point.
type EVChargerReading struct {
	ConsumptionKW float64        `json:"power_consumption_kw"`
	Status        ChargingStatus `json:"charging_status"`
}

// BuildingReading is the payload of a generic building data point.
type BuildingReading struct {
	ConsumptionKW float64 `json:"power_consumption_kw"`
}

// LabCategoryReading is the active-unit count and drawn power for one lab
// equipment category within a slot.
type LabCategoryReading struct {
	Active  int     `json:"active"`
	PowerKW float64 `json:"power_kw"`
}

// LabReading is the payload of the laboratory aggregate data point. The
// per-category breakdown is retained for transparency in tables and CSV.
type LabReading struct {
	ConsumptionKW float64            `json:"power_consumption_kw"`
	Incubators    LabCategoryReading `json:"incubators"`
	MiscEquipment LabCategoryReading `json:"misc_equipment"`
	WaterBaths    LabCategoryReading `json:"water_baths"`
	Centrifuges   LabCategoryReading `json:"centrifuges"`
	Ovens         LabCategoryReading `json:"ovens"`
	FumeCupboards LabCategoryReading `json:"fume_cupboards"`
	Shakers       LabCategoryReading `json:"shakers"`
}

// EnergyDataPoint is one timestamped measurement for one piece of equipment.
// Exactly one payload pointer is set, matching EquipmentType.
type EnergyDataPoint struct {
	Timestamp     time.Time         `json:"timestamp"`
	EquipmentID   string            `json:"equipment_id"`
	EquipmentType EquipmentType     `json:"equipment_type"`
	Solar         *SolarReading     `json:"solar,omitempty"`
	Battery       *BatteryReading   `json:"battery,omitempty"`
	EVCharger     *EVChargerReading `json:"ev_charger,omitempty"`
	Building      *BuildingReading  `json:"building,omitempty"`
	Lab           *LabReading       `json:"lab,omitempty"`
	TemperatureC  float64           `json:"temperature_c"`
	Weather       WeatherCondition  `json:"weather_condition"`
}

// EquipmentState is the mutable runtime record for one controllable
// equipment id.
type EquipmentState struct {
	EquipmentID   string          `json:"equipment_id"`
	Status        EquipmentStatus `json:"status"`
	ConsumptionKW float64         `json:"consumption_kw"`
	GenerationKW  float64         `json:"generation_kw"`
	LastUpdate    time.Time       `json:"last_update"`
	IsChanging    bool            `json:"is_changing"`
}

// EnergyImpact captures the before/after power figures of a status change.
type EnergyImpact struct {
	PreviousConsumptionKW float64 `json:"previous_consumption_kw"`
	NewConsumptionKW      float64 `json:"new_consumption_kw"`
	PreviousGenerationKW  float64 `json:"previous_generation_kw"`
	NewGenerationKW       float64 `json:"new_generation_kw"`
}

// StatusChange is one entry of the append-only status-change history.
type StatusChange struct {
	ID             string          `json:"id"`
	EquipmentID    string          `json:"equipment_id"`
	EquipmentType  EquipmentType   `json:"equipment_type"`
	PreviousStatus EquipmentStatus `json:"previous_status"`
	NewStatus      EquipmentStatus `json:"new_status"`
	Timestamp      time.Time       `json:"timestamp"`
	ActorID        string          `json:"actor_id"`
	Reason         string          `json:"reason,omitempty"`
	EnergyImpact   EnergyImpact    `json:"energy_impact"`
}

// Alert is one entry of the append-only alert log. Only Acknowledged is ever
// mutated after creation.
type Alert struct {
	ID           string        `json:"id"`
	Severity     AlertSeverity `json:"severity"`
	Message      string        `json:"message"`
	EquipmentID  string        `json:"equipment_id"`
	Timestamp    time.Time     `json:"timestamp"`
	Acknowledged bool          `json:"acknowledged"`
	ConflictType ConflictType  `json:"conflict_type,omitempty"`
}
