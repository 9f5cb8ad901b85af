package generator

import (
	"math"

	"campus_energy"
	"campus_energy/internal/catalog"
)

// batteryState is the per-battery charge carried across slots and across
// Generate calls on the same Generator.
type batteryState struct {
	chargePercent float64
	mode          campus_energy.BatteryMode
}

// batterySlot advances one battery by one 15-minute slot and returns its
// reading. netKW is the slot's total solar generation minus total
// consumption; charging absorbs part of a surplus, discharging covers part
// of a deficit or shaves the evening peak.
func (g *Generator) batterySlot(b catalog.Battery, hour int, netKW float64) *campus_energy.BatteryReading {
	st, ok := g.batteries[b.ID]
	if !ok {
		st = &batteryState{
			chargePercent: 50 + g.rng.Float64()*30,
			mode:          campus_energy.BatteryIdle,
		}
		g.batteries[b.ID] = st
	}

	peakHours := hour >= PeakShavingStartHour && hour <= PeakShavingEndHour
	rateKW := 0.0

	switch {
	case netKW > ChargeNetThresholdKW && st.chargePercent < 95:
		st.mode = campus_energy.BatteryCharging
		rateKW = netKW * ChargeAbsorptionRatio
		if rateKW > b.MaxChargeRateKW {
			rateKW = b.MaxChargeRateKW
		}
		st.chargePercent += rateKW / b.CapacityKWH * 100 * SlotHours
		if st.chargePercent > 100 {
			st.chargePercent = 100
		}

	case (netKW < DischargeNetThresholdKW || peakHours) && st.chargePercent > 20:
		st.mode = campus_energy.BatteryDischarging
		mag := math.Abs(netKW) * DischargeCoverageRatio
		if mag > b.MaxDischargeRateKW {
			mag = b.MaxDischargeRateKW
		}
		rateKW = -mag
		st.chargePercent += rateKW / b.CapacityKWH * 100 * SlotHours
		if st.chargePercent < 0 {
			st.chargePercent = 0
		}

	default:
		st.mode = campus_energy.BatteryIdle
		st.chargePercent -= StandbyLossPercent
		if st.chargePercent < 0 {
			st.chargePercent = 0
		}
	}

	return &campus_energy.BatteryReading{
		ChargePercent:  round1(st.chargePercent),
		ChargingRateKW: round2(rateKW),
		Mode:           st.mode,
	}
}
