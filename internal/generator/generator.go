package generator

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"campus_energy"
	"campus_energy/internal/catalog"
)

// ----------- Simulation constants -----------
const (
	MaxIrradiance   = 1000.0 // W/m² at the midday peak
	SolarDawnHour   = 6.0    // generation window start (inclusive)
	SolarDuskHour   = 19.0   // generation window end (exclusive)
	SolarPeakOffset = 6.5    // peak at 12:30, measured in hours after dawn
	SolarCurveWidth = 3.0    // spread of the irradiance bell, hours

	MinPanelEfficiency  = 0.18
	PanelEfficiencySpan = 0.04 // efficiency drawn from [0.18, 0.22)

	MinDCVoltage  = 400.0
	DCVoltageSpan = 50.0 // voltage drawn from [400, 450)

	ChargeNetThresholdKW    = 50.0   // surplus above which batteries charge
	DischargeNetThresholdKW = -100.0 // deficit below which batteries discharge
	PeakShavingStartHour    = 17
	PeakShavingEndHour      = 21
	ChargeAbsorptionRatio   = 0.3 // fraction of surplus routed into storage
	DischargeCoverageRatio  = 0.4 // fraction of deficit covered by storage
	StandbyLossPercent      = 0.1 // idle self-discharge per 15-minute slot
	SlotHours               = 0.25

	EVOfflineProbability = 0.05

	SlotsPerDay = 96
)

// weatherPattern couples a condition with its daily draw probability and the
// multiplier it applies to solar output.
type weatherPattern struct {
	condition       campus_energy.WeatherCondition
	solarMultiplier float64
	probability     float64
}

var weatherPatterns = []weatherPattern{
	{campus_energy.WeatherSunny, 1.0, 0.40},
	{campus_energy.WeatherPartlyCloudy, 0.7, 0.35},
	{campus_energy.WeatherCloudy, 0.3, 0.20},
	{campus_energy.WeatherRainy, 0.1, 0.05},
}

// seasonalFactors scales solar output by calendar month (January first).
var seasonalFactors = [12]float64{0.6, 0.7, 0.8, 0.9, 1.0, 1.0, 1.0, 1.0, 0.9, 0.8, 0.7, 0.6}

// Generator produces synthetic telemetry for one campus catalog. Battery
// charge state lives on the Generator and evolves across Generate calls, so
// sequential days simulated on the same instance form one continuous run.
// Safe for concurrent use.
type Generator struct {
	cat *catalog.Catalog

	mu        sync.Mutex
	rng       *rand.Rand
	batteries map[string]*batteryState
}

// New returns a Generator over cat. A nil rng gets a time-seeded source;
// tests pass a fixed seed for reproducible output.
func New(cat *catalog.Catalog, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{
		cat:       cat,
		rng:       rng,
		batteries: make(map[string]*batteryState),
	}
}

// Generate produces one data point per equipment per 15-minute slot for the
// given calendar day. Slot ordering is solar arrays, non-lab buildings, the
// lab aggregate, batteries, then EV chargers; batteries deliberately come
// after the slot's generation and consumption totals are known.
func (g *Generator) Generate(day time.Time) []campus_energy.EnergyDataPoint {
	g.mu.Lock()
	defer g.mu.Unlock()

	seasonal := seasonalFactors[int(day.Month())-1]
	weather := g.drawDailyWeather()

	perSlot := len(g.cat.SolarArrays) + len(g.cat.Buildings) + len(g.cat.Batteries) + len(g.cat.EVChargers)
	data := make([]campus_energy.EnergyDataPoint, 0, SlotsPerDay*perSlot)

	for hour := 0; hour < 24; hour++ {
		for minute := 0; minute < 60; minute += 15 {
			ts := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
			weekend := ts.Weekday() == time.Saturday || ts.Weekday() == time.Sunday
			temp := round1(20 + math.Sin((float64(hour)-6)*math.Pi/12)*8 + g.rng.Float64()*4)

			base := campus_energy.EnergyDataPoint{
				Timestamp:    ts,
				TemperatureC: temp,
				Weather:      weather.condition,
			}

			totalSolarKW := 0.0
			for _, arr := range g.cat.SolarArrays {
				reading, rawKW := g.solarSlot(arr, hour, minute, weather.solarMultiplier, seasonal)
				totalSolarKW += rawKW

				p := base
				p.EquipmentID = arr.ID
				p.EquipmentType = campus_energy.TypeSolar
				p.Solar = reading
				data = append(data, p)
			}

			totalConsumptionKW := 0.0
			for _, b := range g.cat.Buildings {
				if b.ID == g.cat.LabBuildingID {
					continue
				}
				kw := g.buildingSlot(b, hour, weekend)
				totalConsumptionKW += kw

				p := base
				p.EquipmentID = b.ID
				p.EquipmentType = campus_energy.TypeBuilding
				p.Building = &campus_energy.BuildingReading{ConsumptionKW: round2(kw)}
				data = append(data, p)
			}

			lab := g.labSlot(hour, weekend)
			totalConsumptionKW += lab.ConsumptionKW

			p := base
			p.EquipmentID = g.cat.LabBuildingID
			p.EquipmentType = campus_energy.TypeLaboratory
			p.Lab = lab
			data = append(data, p)

			netKW := totalSolarKW - totalConsumptionKW
			for _, b := range g.cat.Batteries {
				p := base
				p.EquipmentID = b.ID
				p.EquipmentType = campus_energy.TypeBattery
				p.Battery = g.batterySlot(b, hour, netKW)
				data = append(data, p)
			}

			for _, ch := range g.cat.EVChargers {
				p := base
				p.EquipmentID = ch.ID
				p.EquipmentType = campus_energy.TypeEVCharger
				p.EVCharger = g.evSlot(ch, hour)
				data = append(data, p)
			}
		}
	}
	return data
}

// drawDailyWeather samples one condition for the whole day from the fixed
// discrete distribution.
func (g *Generator) drawDailyWeather() weatherPattern {
	r := g.rng.Float64()
	acc := 0.0
	for _, w := range weatherPatterns {
		acc += w.probability
		if r < acc {
			return w
		}
	}
	return weatherPatterns[len(weatherPatterns)-1]
}

// Irradiance returns the modelled solar irradiance in W/m² at the given
// fractional hour: zero outside [06:00,19:00), otherwise a Gaussian bell
// centred on 12:30.
func Irradiance(hourOfDay float64) float64 {
	if hourOfDay < SolarDawnHour || hourOfDay >= SolarDuskHour {
		return 0
	}
	normalized := (hourOfDay - SolarDawnHour - SolarPeakOffset) / SolarCurveWidth
	return MaxIrradiance * math.Exp(-0.5*normalized*normalized)
}

// solarSlot returns the rounded reading plus the unrounded generation used
// for the slot's net-power total.
func (g *Generator) solarSlot(arr catalog.SolarArray, hour, minute int, weatherMult, seasonal float64) (*campus_energy.SolarReading, float64) {
	irr := Irradiance(float64(hour) + float64(minute)/60)
	if irr <= 0 {
		return &campus_energy.SolarReading{}, 0
	}
	efficiency := MinPanelEfficiency + g.rng.Float64()*PanelEfficiencySpan
	powerKW := arr.CapacityKW * (irr / MaxIrradiance) * weatherMult * seasonal * efficiency
	voltage := MinDCVoltage + g.rng.Float64()*DCVoltageSpan
	current := powerKW * 1000 / voltage

	return &campus_energy.SolarReading{
		GenerationKW: round2(powerKW),
		VoltageV:     round1(voltage),
		CurrentA:     round2(current),
	}, powerKW
}

// buildingSlot returns the unrounded consumption for one non-lab building.
// Load factors follow the category's day/night and weekday/weekend curves.
func (g *Generator) buildingSlot(b catalog.Building, hour int, weekend bool) float64 {
	r := g.rng.Float64()
	switch b.Category {
	case catalog.CategoryAcademic:
		if !weekend && hour >= 8 && hour <= 17 {
			return b.MaxCapacityKW * (0.85 + r*0.15)
		}
		if weekend {
			return b.MaxCapacityKW * (0.10 + r*0.20)
		}
		return b.MaxCapacityKW * (0.15 + r*0.15)

	case catalog.CategoryResidential:
		if (hour >= 6 && hour <= 8) || (hour >= 18 && hour <= 23) {
			return b.MaxCapacityKW * (0.70 + r*0.20)
		}
		if hour >= 23 || hour <= 6 {
			return b.MaxCapacityKW * (0.40 + r*0.10)
		}
		return b.MaxCapacityKW * (0.50 + r*0.15)

	case catalog.CategoryRecreational:
		peak := 0.85
		if weekend {
			peak = 0.90
		}
		if hour >= 6 && hour <= 22 {
			return b.MaxCapacityKW * (peak + r*0.10)
		}
		return b.MaxCapacityKW * (0.20 + r*0.10)

	case catalog.CategoryAdministrative:
		if weekend {
			return b.MaxCapacityKW * (0.10 + r*0.05)
		}
		if hour >= 8 && hour <= 17 {
			return b.MaxCapacityKW * (0.80 + r*0.15)
		}
		return b.MaxCapacityKW * (0.20 + r*0.10)
	}
	return b.MaxCapacityKW * (0.30 + r*0.20)
}

// labSlot aggregates the seven laboratory categories into one reading.
// Incubators and fume cupboards run around the clock; the rest follow their
// catalogued operating windows.
func (g *Generator) labSlot(hour int, weekend bool) *campus_energy.LabReading {
	lr := &campus_energy.LabReading{}
	total := 0.0

	for _, eq := range g.cat.LabEquipment {
		ratio := g.labActiveRatio(eq.ID, hour, weekend)
		active := int(float64(eq.Quantity) * ratio)
		powerKW := float64(active) * eq.PowerPerUnitW / 1000
		total += powerKW

		cr := campus_energy.LabCategoryReading{Active: active, PowerKW: round2(powerKW)}
		switch eq.ID {
		case "lab_incubators":
			lr.Incubators = cr
		case "lab_misc_equipment":
			lr.MiscEquipment = cr
		case "lab_water_baths":
			lr.WaterBaths = cr
		case "lab_centrifuges":
			lr.Centrifuges = cr
		case "lab_ovens":
			lr.Ovens = cr
		case "lab_fume_cupboards":
			lr.FumeCupboards = cr
		case "lab_shakers":
			lr.Shakers = cr
		}
	}
	lr.ConsumptionKW = round2(total)
	return lr
}

// labActiveRatio encodes the per-category operating-hours rules.
func (g *Generator) labActiveRatio(id string, hour int, weekend bool) float64 {
	switch id {
	case "lab_incubators":
		// continuous operation, 90-95% of the fleet active
		return 0.90 + g.rng.Float64()*0.05
	case "lab_misc_equipment":
		if weekend {
			return 0.20 + g.rng.Float64()*0.10
		}
		if hour >= 8 && hour <= 18 {
			return 0.75 + g.rng.Float64()*0.15
		}
		return 0.10 + g.rng.Float64()*0.10
	case "lab_water_baths":
		if hour >= 7 && hour <= 20 {
			return 0.80 + g.rng.Float64()*0.15
		}
		return 0.30 + g.rng.Float64()*0.20
	case "lab_centrifuges":
		if hour >= 6 && hour <= 22 {
			return 0.40 + g.rng.Float64()*0.30
		}
		return 0.10 + g.rng.Float64()*0.10
	case "lab_ovens":
		if hour >= 6 && hour <= 23 {
			return 0.60 + g.rng.Float64()*0.25
		}
		return 0.20 + g.rng.Float64()*0.10
	case "lab_fume_cupboards":
		// safety ventilation never shuts down
		return 1.0
	case "lab_shakers":
		if hour >= 6 && hour <= 22 {
			return 0.65 + g.rng.Float64()*0.25
		}
		return 0.15 + g.rng.Float64()*0.10
	}
	return 0
}

// evSlot draws a charger status for one slot. A single draw decides both the
// offline check and occupancy, so a charger is never offline and occupied.
func (g *Generator) evSlot(ch catalog.EVCharger, hour int) *campus_energy.EVChargerReading {
	r := g.rng.Float64()
	if r < EVOfflineProbability {
		return &campus_energy.EVChargerReading{Status: campus_energy.ChargerOffline}
	}

	occupancy := 0.2
	if hour >= 8 && hour <= 17 {
		occupancy = 0.6
	}
	if hour >= 18 && hour <= 22 {
		occupancy = 0.8
	}

	if r < occupancy {
		powerKW := ch.MaxPowerKW * (0.7 + g.rng.Float64()*0.3)
		return &campus_energy.EVChargerReading{
			ConsumptionKW: round2(powerKW),
			Status:        campus_energy.ChargerOccupied,
		}
	}
	return &campus_energy.EVChargerReading{Status: campus_energy.ChargerAvailable}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
