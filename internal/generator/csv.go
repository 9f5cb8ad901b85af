package generator

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"campus_energy"
)

const timestampLayout = "2006-01-02 15:04:05"

// csvHeader is the fixed 26-column export schema. Columns not applicable to
// a row's equipment type are left blank.
var csvHeader = []string{
	"Timestamp",
	"Equipment_ID",
	"Equipment_Type",
	"Power_Generation_kW",
	"Voltage_V",
	"Current_A",
	"Charge_Level_%",
	"Charging_Rate_kW",
	"Power_Consumption_kW",
	"Charging_Status",
	"Lab_Incubators_Active",
	"Lab_Incubators_Power_kW",
	"Lab_MiscEquipment_Active",
	"Lab_MiscEquipment_Power_kW",
	"Lab_WaterBaths_Active",
	"Lab_WaterBaths_Power_kW",
	"Lab_Centrifuges_Active",
	"Lab_Centrifuges_Power_kW",
	"Lab_Ovens_Active",
	"Lab_Ovens_Power_kW",
	"Lab_FumeCupboards_Active",
	"Lab_FumeCupboards_Power_kW",
	"Lab_Shakers_Active",
	"Lab_Shakers_Power_kW",
	"Temperature_C",
	"Weather_Condition",
}

// Column indexes into a CSV row.
const (
	colTimestamp = iota
	colEquipmentID
	colEquipmentType
	colGeneration
	colVoltage
	colCurrent
	colChargeLevel
	colChargingRate
	colConsumption
	colChargingStatus
	colLabFirst // incubators active; lab pairs run through col 23
	colTemperature = 24
	colWeather     = 25
)

// WriteCSV streams points as CSV (header plus one row per point) to w.
func WriteCSV(w io.Writer, points []campus_energy.EnergyDataPoint) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, p := range points {
		row, err := csvRow(p)
		if err != nil {
			return err
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// CSV renders points to an in-memory CSV document.
func CSV(points []campus_energy.EnergyDataPoint) (string, error) {
	var sb strings.Builder
	if err := WriteCSV(&sb, points); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// csvRow maps one data point to the fixed schema. The switch is exhaustive
// over the payload variants; an unpopulated point is a programming error.
func csvRow(p campus_energy.EnergyDataPoint) ([]string, error) {
	row := make([]string, len(csvHeader))
	row[colTimestamp] = p.Timestamp.Format(timestampLayout)
	row[colEquipmentID] = p.EquipmentID
	row[colEquipmentType] = string(p.EquipmentType)
	row[colTemperature] = formatFloat(p.TemperatureC)
	row[colWeather] = string(p.Weather)

	switch p.EquipmentType {
	case campus_energy.TypeSolar:
		if p.Solar == nil {
			return nil, fmt.Errorf("csv: solar point %s has no solar payload", p.EquipmentID)
		}
		row[colGeneration] = formatFloat(p.Solar.GenerationKW)
		row[colVoltage] = formatFloat(p.Solar.VoltageV)
		row[colCurrent] = formatFloat(p.Solar.CurrentA)

	case campus_energy.TypeBattery:
		if p.Battery == nil {
			return nil, fmt.Errorf("csv: battery point %s has no battery payload", p.EquipmentID)
		}
		row[colChargeLevel] = formatFloat(p.Battery.ChargePercent)
		row[colChargingRate] = formatFloat(p.Battery.ChargingRateKW)

	case campus_energy.TypeEVCharger:
		if p.EVCharger == nil {
			return nil, fmt.Errorf("csv: ev point %s has no charger payload", p.EquipmentID)
		}
		row[colConsumption] = formatFloat(p.EVCharger.ConsumptionKW)
		row[colChargingStatus] = string(p.EVCharger.Status)

	case campus_energy.TypeBuilding:
		if p.Building == nil {
			return nil, fmt.Errorf("csv: building point %s has no building payload", p.EquipmentID)
		}
		row[colConsumption] = formatFloat(p.Building.ConsumptionKW)

	case campus_energy.TypeLaboratory:
		if p.Lab == nil {
			return nil, fmt.Errorf("csv: lab point %s has no lab payload", p.EquipmentID)
		}
		row[colConsumption] = formatFloat(p.Lab.ConsumptionKW)
		pairs := []campus_energy.LabCategoryReading{
			p.Lab.Incubators,
			p.Lab.MiscEquipment,
			p.Lab.WaterBaths,
			p.Lab.Centrifuges,
			p.Lab.Ovens,
			p.Lab.FumeCupboards,
			p.Lab.Shakers,
		}
		for i, cr := range pairs {
			row[colLabFirst+2*i] = strconv.Itoa(cr.Active)
			row[colLabFirst+2*i+1] = formatFloat(cr.PowerKW)
		}

	default:
		return nil, fmt.Errorf("csv: unknown equipment type %q", p.EquipmentType)
	}
	return row, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
