package service

import (
	"campus_energy"
	"campus_energy/internal/catalog"
)

// Per-kWh figures used for the dashboard headline.
const (
	carbonOffsetKGPerKWH = 0.45
	costSavingsUSDPerKWH = 0.12
)

// MonitoringService derives dashboard aggregates from the latest telemetry
// batch. It holds no state of its own.
type MonitoringService struct {
	cat       *catalog.Catalog
	telemetry Telemetry
	control   Control
}

func NewMonitoringService(cat *catalog.Catalog, telemetry Telemetry, control Control) *MonitoringService {
	return &MonitoringService{cat: cat, telemetry: telemetry, control: control}
}

// Summary aggregates the final slot of the latest batch: campus consumption
// and generation, capacity-weighted battery level, and occupied chargers.
// Zero before the first generation run.
func (s *MonitoringService) Summary() Summary {
	points := s.telemetry.Latest()
	if len(points) == 0 {
		return Summary{}
	}

	// Points are in slot order, so the last point carries the newest
	// timestamp; aggregate only that slot.
	last := points[len(points)-1].Timestamp
	var sum Summary
	var chargeKWH, capacityKWH float64

	for _, p := range points {
		if !p.Timestamp.Equal(last) {
			continue
		}
		switch p.EquipmentType {
		case campus_energy.TypeSolar:
			sum.TotalGenerationKW += p.Solar.GenerationKW
		case campus_energy.TypeBuilding:
			sum.TotalConsumptionKW += p.Building.ConsumptionKW
		case campus_energy.TypeLaboratory:
			sum.TotalConsumptionKW += p.Lab.ConsumptionKW
		case campus_energy.TypeEVCharger:
			sum.TotalConsumptionKW += p.EVCharger.ConsumptionKW
			if p.EVCharger.Status == campus_energy.ChargerOccupied {
				sum.ActiveEVs++
			}
		case campus_energy.TypeBattery:
			if b, ok := s.cat.BatteryByID(p.EquipmentID); ok {
				chargeKWH += p.Battery.ChargePercent * b.CapacityKWH / 100
				capacityKWH += b.CapacityKWH
			}
		}
	}

	if capacityKWH > 0 {
		sum.BatteryLevelPercent = chargeKWH / capacityKWH * 100
	}
	sum.CarbonOffsetKG = sum.TotalGenerationKW * carbonOffsetKGPerKWH
	sum.CostSavingsUSD = sum.TotalGenerationKW * costSavingsUSDPerKWH
	return sum
}
