package generator

import (
	"encoding/csv"
	"math/rand"
	"strings"
	"testing"
	"time"

	"campus_energy"
	"campus_energy/internal/catalog"
)

var csvStamp = time.Date(2026, time.July, 6, 12, 30, 0, 0, time.UTC)

func solarPoint() campus_energy.EnergyDataPoint {
	return campus_energy.EnergyDataPoint{
		Timestamp:     csvStamp,
		EquipmentID:   "solar_001",
		EquipmentType: campus_energy.TypeSolar,
		Solar:         &campus_energy.SolarReading{GenerationKW: 123.45, VoltageV: 415.2, CurrentA: 297.28},
		TemperatureC:  24.3,
		Weather:       campus_energy.WeatherSunny,
	}
}

func TestCSVHeaderAndShape(t *testing.T) {
	t.Parallel()

	doc, err := CSV([]campus_energy.EnergyDataPoint{solarPoint()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(doc)).ReadAll()
	if err != nil {
		t.Fatalf("output must re-parse as CSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records: want header + 1 row, got %d", len(records))
	}
	if len(records[0]) != 26 {
		t.Fatalf("header columns: want 26, got %d", len(records[0]))
	}
	if records[0][0] != "Timestamp" || records[0][25] != "Weather_Condition" {
		t.Errorf("unexpected header boundaries: %q ... %q", records[0][0], records[0][25])
	}
}

func TestCSVRowByEquipmentType(t *testing.T) {
	t.Parallel()

	battery := campus_energy.EnergyDataPoint{
		Timestamp:     csvStamp,
		EquipmentID:   "battery_001",
		EquipmentType: campus_energy.TypeBattery,
		Battery:       &campus_energy.BatteryReading{ChargePercent: 64.2, ChargingRateKW: -120.5, Mode: campus_energy.BatteryDischarging},
		TemperatureC:  24.3,
		Weather:       campus_energy.WeatherSunny,
	}
	ev := campus_energy.EnergyDataPoint{
		Timestamp:     csvStamp,
		EquipmentID:   "ev_004",
		EquipmentType: campus_energy.TypeEVCharger,
		EVCharger:     &campus_energy.EVChargerReading{ConsumptionKW: 112.3, Status: campus_energy.ChargerOccupied},
		TemperatureC:  24.3,
		Weather:       campus_energy.WeatherSunny,
	}
	lab := campus_energy.EnergyDataPoint{
		Timestamp:     csvStamp,
		EquipmentID:   "building_009",
		EquipmentType: campus_energy.TypeLaboratory,
		Lab: &campus_energy.LabReading{
			ConsumptionKW: 21.5,
			Incubators:    campus_energy.LabCategoryReading{Active: 29, PowerKW: 9.08},
			FumeCupboards: campus_energy.LabCategoryReading{Active: 16, PowerKW: 0.8},
		},
		TemperatureC: 24.3,
		Weather:      campus_energy.WeatherSunny,
	}

	cases := []struct {
		name      string
		point     campus_energy.EnergyDataPoint
		wantSet   map[int]string
		wantBlank []int
	}{
		{
			name:  "solar fills generation columns only",
			point: solarPoint(),
			wantSet: map[int]string{
				colTimestamp:     "2026-07-06 12:30:00",
				colEquipmentType: "solar",
				colGeneration:    "123.45",
				colVoltage:       "415.2",
				colCurrent:       "297.28",
				colWeather:       "sunny",
			},
			wantBlank: []int{colChargeLevel, colChargingRate, colConsumption, colChargingStatus, colLabFirst},
		},
		{
			name:  "battery fills charge columns only",
			point: battery,
			wantSet: map[int]string{
				colChargeLevel:  "64.2",
				colChargingRate: "-120.5",
			},
			wantBlank: []int{colGeneration, colVoltage, colCurrent, colConsumption, colChargingStatus},
		},
		{
			name:  "ev charger fills consumption and status",
			point: ev,
			wantSet: map[int]string{
				colConsumption:    "112.3",
				colChargingStatus: "occupied",
			},
			wantBlank: []int{colGeneration, colChargeLevel, colChargingRate, colLabFirst},
		},
		{
			name:  "laboratory fills the per-category pairs",
			point: lab,
			wantSet: map[int]string{
				colConsumption:  "21.5",
				colLabFirst:     "29",
				colLabFirst + 1: "9.08",
				colLabFirst + 10: "16", // fume cupboards active
			},
			wantBlank: []int{colGeneration, colChargeLevel, colChargingStatus},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			row, err := csvRow(tc.point)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for col, want := range tc.wantSet {
				if row[col] != want {
					t.Errorf("col %d: want %q, got %q", col, want, row[col])
				}
			}
			for _, col := range tc.wantBlank {
				if row[col] != "" {
					t.Errorf("col %d: want blank, got %q", col, row[col])
				}
			}
		})
	}
}

func TestCSVZeroSolarValuesAreRenderedNotBlank(t *testing.T) {
	t.Parallel()

	p := solarPoint()
	p.Solar = &campus_energy.SolarReading{} // night-time slot

	row, err := csvRow(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if row[colGeneration] != "0" || row[colVoltage] != "0" || row[colCurrent] != "0" {
		t.Fatalf("night solar row must print zeros, got %q %q %q",
			row[colGeneration], row[colVoltage], row[colCurrent])
	}
}

func TestCSVRejectsMalformedPoints(t *testing.T) {
	t.Parallel()

	missing := solarPoint()
	missing.Solar = nil
	if _, err := csvRow(missing); err == nil {
		t.Fatalf("expected error for solar point without payload")
	}

	unknown := solarPoint()
	unknown.EquipmentType = "teleporter"
	if _, err := csvRow(unknown); err == nil {
		t.Fatalf("expected error for unknown equipment type")
	}
}

func TestCSVWholeGeneratedDay(t *testing.T) {
	t.Parallel()

	cat := catalog.Default()
	gen := New(cat, rand.New(rand.NewSource(1)))
	points := gen.Generate(csvStamp)

	doc, err := CSV(points)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	records, err := csv.NewReader(strings.NewReader(doc)).ReadAll()
	if err != nil {
		t.Fatalf("output must re-parse as CSV: %v", err)
	}
	if want := len(points) + 1; len(records) != want {
		t.Fatalf("records: want %d, got %d", want, len(records))
	}
}
