package catalog

import (
	"time"

	"campus_energy"
)

// Well-known equipment ids used across the service.
const (
	LabBuildingID = "building_009"
)

// Default returns the built-in campus catalog. The data mirrors the installed
// base of the Berkeley campus deployment this dashboard was built for.
func Default() *Catalog {
	return &Catalog{
		Locations:     defaultLocations(),
		SolarArrays:   defaultSolarArrays(),
		Batteries:     defaultBatteries(),
		EVChargers:    defaultEVChargers(),
		Buildings:     defaultBuildings(),
		LabEquipment:  defaultLabEquipment(),
		ControlSpecs:  defaultControlSpecs(),
		ScheduledOps:  defaultScheduledOps(),
		LabBuildingID: LabBuildingID,
	}
}

func defaultLocations() []Location {
	return []Location{
		{ID: "loc_001", Name: "Engineering Building Rooftop", Type: campus_energy.TypeSolar, Latitude: 37.8735, Longitude: -122.2585, Address: "2594 Hearst Ave, Berkeley, CA"},
		{ID: "loc_002", Name: "Library Complex Rooftop", Type: campus_energy.TypeSolar, Latitude: 37.8725, Longitude: -122.2595, Address: "2000 Bancroft Way, Berkeley, CA"},
		{ID: "loc_003", Name: "Student Center Rooftop", Type: campus_energy.TypeSolar, Latitude: 37.8715, Longitude: -122.2605, Address: "2495 Bancroft Way, Berkeley, CA"},
		{ID: "loc_004", Name: "Parking Structure Solar Canopy", Type: campus_energy.TypeSolar, Latitude: 37.8705, Longitude: -122.2615, Address: "2400 Durant Ave, Berkeley, CA"},
		{ID: "loc_005", Name: "Science Building Rooftop", Type: campus_energy.TypeSolar, Latitude: 37.8745, Longitude: -122.2575, Address: "2120 Berkeley Way, Berkeley, CA"},
		{ID: "loc_006", Name: "Sports Complex Rooftop", Type: campus_energy.TypeSolar, Latitude: 37.8695, Longitude: -122.2625, Address: "2301 Bancroft Way, Berkeley, CA"},
		{ID: "loc_007", Name: "Life Science Laboratory Rooftop", Type: campus_energy.TypeSolar, Latitude: 37.8760, Longitude: -122.2555, Address: "2800 Hearst Ave, Berkeley, CA"},

		{ID: "loc_101", Name: "Main Battery Facility", Type: campus_energy.TypeBattery, Latitude: 37.8720, Longitude: -122.2590, Address: "2450 Haste St, Berkeley, CA"},
		{ID: "loc_102", Name: "Engineering Building Battery Room", Type: campus_energy.TypeBattery, Latitude: 37.8735, Longitude: -122.2585, Address: "2594 Hearst Ave, Berkeley, CA"},
		{ID: "loc_103", Name: "Student Center Battery Storage", Type: campus_energy.TypeBattery, Latitude: 37.8715, Longitude: -122.2605, Address: "2495 Bancroft Way, Berkeley, CA"},
		{ID: "loc_104", Name: "Life Science Laboratory Battery Room", Type: campus_energy.TypeBattery, Latitude: 37.8760, Longitude: -122.2555, Address: "2800 Hearst Ave, Berkeley, CA"},

		{ID: "loc_201", Name: "Main Parking Lot A", Type: campus_energy.TypeEVCharger, Latitude: 37.8710, Longitude: -122.2600, Address: "2400 Channing Way, Berkeley, CA"},
		{ID: "loc_202", Name: "Faculty Parking B", Type: campus_energy.TypeEVCharger, Latitude: 37.8730, Longitude: -122.2580, Address: "2500 Hearst Ave, Berkeley, CA"},
		{ID: "loc_203", Name: "Student Parking C", Type: campus_energy.TypeEVCharger, Latitude: 37.8700, Longitude: -122.2620, Address: "2300 Durant Ave, Berkeley, CA"},
		{ID: "loc_204", Name: "Visitor Parking D", Type: campus_energy.TypeEVCharger, Latitude: 37.8740, Longitude: -122.2570, Address: "2600 Bancroft Way, Berkeley, CA"},
		{ID: "loc_205", Name: "Life Science Laboratory Parking", Type: campus_energy.TypeEVCharger, Latitude: 37.8765, Longitude: -122.2550, Address: "2850 Hearst Ave, Berkeley, CA"},

		{ID: "loc_301", Name: "Engineering Building", Type: campus_energy.TypeBuilding, Latitude: 37.8735, Longitude: -122.2585, Address: "2594 Hearst Ave, Berkeley, CA"},
		{ID: "loc_302", Name: "Library Complex", Type: campus_energy.TypeBuilding, Latitude: 37.8725, Longitude: -122.2595, Address: "2000 Bancroft Way, Berkeley, CA"},
		{ID: "loc_303", Name: "Student Center", Type: campus_energy.TypeBuilding, Latitude: 37.8715, Longitude: -122.2605, Address: "2495 Bancroft Way, Berkeley, CA"},
		{ID: "loc_304", Name: "Science Laboratory", Type: campus_energy.TypeBuilding, Latitude: 37.8745, Longitude: -122.2575, Address: "2120 Berkeley Way, Berkeley, CA"},
		{ID: "loc_305", Name: "Dormitory A", Type: campus_energy.TypeBuilding, Latitude: 37.8685, Longitude: -122.2635, Address: "2200 Durant Ave, Berkeley, CA"},
		{ID: "loc_306", Name: "Dormitory B", Type: campus_energy.TypeBuilding, Latitude: 37.8675, Longitude: -122.2645, Address: "2150 Durant Ave, Berkeley, CA"},
		{ID: "loc_307", Name: "Sports Complex", Type: campus_energy.TypeBuilding, Latitude: 37.8695, Longitude: -122.2625, Address: "2301 Bancroft Way, Berkeley, CA"},
		{ID: "loc_308", Name: "Administration Building", Type: campus_energy.TypeBuilding, Latitude: 37.8750, Longitude: -122.2565, Address: "2700 Hearst Ave, Berkeley, CA"},
		{ID: "loc_309", Name: "Life Science Laboratory", Type: campus_energy.TypeBuilding, Latitude: 37.8760, Longitude: -122.2555, Address: "2800 Hearst Ave, Berkeley, CA"},
	}
}

func defaultSolarArrays() []SolarArray {
	return []SolarArray{
		{ID: "solar_001", LocationID: "loc_001", ModelNumber: "SunPower SPR-X22-370", Manufacturer: "SunPower Corporation", CapacityKW: 200, InstallationDate: "2022-03-15", PanelCount: 540, InverterModel: "SMA Sunny Central 200-US", TiltAngle: 25, AzimuthAngle: 180},
		{ID: "solar_002", LocationID: "loc_002", ModelNumber: "Canadian Solar CS3W-400P", Manufacturer: "Canadian Solar Inc.", CapacityKW: 120, InstallationDate: "2021-08-20", PanelCount: 300, InverterModel: "Fronius Symo 100-3-M", TiltAngle: 30, AzimuthAngle: 185},
		{ID: "solar_003", LocationID: "loc_003", ModelNumber: "LG NeON R LG370Q1C-A5", Manufacturer: "LG Electronics", CapacityKW: 180, InstallationDate: "2022-11-10", PanelCount: 486, InverterModel: "SolarEdge SE150K-US", TiltAngle: 20, AzimuthAngle: 175},
		{ID: "solar_004", LocationID: "loc_004", ModelNumber: "Jinko Solar JKM400M-72HL4-V", Manufacturer: "JinkoSolar", CapacityKW: 250, InstallationDate: "2023-05-05", PanelCount: 625, InverterModel: "Huawei SUN2000-215KTL-H1", TiltAngle: 15, AzimuthAngle: 180},
		{ID: "solar_005", LocationID: "loc_005", ModelNumber: "REC Alpha Pure-R REC400AA", Manufacturer: "REC Group", CapacityKW: 160, InstallationDate: "2021-12-01", PanelCount: 400, InverterModel: "ABB TRIO-50.0-TL-OUTD", TiltAngle: 35, AzimuthAngle: 190},
		{ID: "solar_006", LocationID: "loc_006", ModelNumber: "Trina Solar TSM-DE09.08", Manufacturer: "Trina Solar", CapacityKW: 150, InstallationDate: "2020-06-15", PanelCount: 375, InverterModel: "SMA Sunny Central 150-US", TiltAngle: 25, AzimuthAngle: 180},
		{ID: "solar_007", LocationID: "loc_007", ModelNumber: "First Solar Series 6 Plus", Manufacturer: "First Solar Inc.", CapacityKW: 220, InstallationDate: "2024-01-10", PanelCount: 500, InverterModel: "SMA Sunny Central 220-US", TiltAngle: 30, AzimuthAngle: 180},
	}
}

func defaultBatteries() []Battery {
	return []Battery{
		{ID: "battery_001", LocationID: "loc_101", ModelNumber: "Tesla Megapack 2XL", Manufacturer: "Tesla Inc.", CapacityKWH: 1000, MaxChargeRateKW: 250, MaxDischargeRateKW: 250, InstallationDate: "2023-01-15", Chemistry: "Lithium Iron Phosphate (LiFePO4)", WarrantyYears: 20},
		{ID: "battery_002", LocationID: "loc_102", ModelNumber: "LG Chem RESU16H Prime", Manufacturer: "LG Energy Solution", CapacityKWH: 500, MaxChargeRateKW: 125, MaxDischargeRateKW: 125, InstallationDate: "2022-09-20", Chemistry: "Lithium Nickel Manganese Cobalt (NMC)", WarrantyYears: 15},
		{ID: "battery_003", LocationID: "loc_103", ModelNumber: "BYD Battery-Box Premium HVS", Manufacturer: "BYD Company Ltd.", CapacityKWH: 500, MaxChargeRateKW: 100, MaxDischargeRateKW: 100, InstallationDate: "2022-11-10", Chemistry: "Lithium Iron Phosphate (LiFePO4)", WarrantyYears: 15},
		{ID: "battery_004", LocationID: "loc_104", ModelNumber: "Fluence Gridstack Pro", Manufacturer: "Fluence Energy", CapacityKWH: 750, MaxChargeRateKW: 200, MaxDischargeRateKW: 200, InstallationDate: "2024-02-01", Chemistry: "Lithium Iron Phosphate (LiFePO4)", WarrantyYears: 20},
	}
}

func defaultEVChargers() []EVCharger {
	return []EVCharger{
		{ID: "ev_001", LocationID: "loc_201", ModelNumber: "ChargePoint CT4000", Manufacturer: "ChargePoint Inc.", MaxPowerKW: 7.2, ConnectorType: "J1772", InstallationDate: "2022-04-10", NetworkProvider: "ChargePoint", Level: "Level 2"},
		{ID: "ev_002", LocationID: "loc_201", ModelNumber: "ChargePoint CT4000", Manufacturer: "ChargePoint Inc.", MaxPowerKW: 7.2, ConnectorType: "J1772", InstallationDate: "2022-04-10", NetworkProvider: "ChargePoint", Level: "Level 2"},
		{ID: "ev_003", LocationID: "loc_202", ModelNumber: "Tesla Wall Connector", Manufacturer: "Tesla Inc.", MaxPowerKW: 11.5, ConnectorType: "Tesla Proprietary", InstallationDate: "2023-02-15", NetworkProvider: "Tesla Supercharger Network", Level: "Level 2"},
		{ID: "ev_004", LocationID: "loc_202", ModelNumber: "Electrify America 150kW", Manufacturer: "ABB", MaxPowerKW: 150, ConnectorType: "CCS1", InstallationDate: "2023-06-01", NetworkProvider: "Electrify America", Level: "DC Fast"},
		{ID: "ev_005", LocationID: "loc_203", ModelNumber: "EVgo Fast Charger", Manufacturer: "BTC Power", MaxPowerKW: 50, ConnectorType: "CHAdeMO", InstallationDate: "2022-08-20", NetworkProvider: "EVgo", Level: "DC Fast"},
		{ID: "ev_006", LocationID: "loc_203", ModelNumber: "Blink IQ 200", Manufacturer: "Blink Charging", MaxPowerKW: 7.2, ConnectorType: "J1772", InstallationDate: "2021-11-30", NetworkProvider: "Blink Network", Level: "Level 2"},
		{ID: "ev_007", LocationID: "loc_204", ModelNumber: "Webasto TurboDX", Manufacturer: "Webasto", MaxPowerKW: 22, ConnectorType: "CCS1", InstallationDate: "2023-03-25", NetworkProvider: "Webasto Live", Level: "DC Fast"},
		{ID: "ev_008", LocationID: "loc_204", ModelNumber: "ClipperCreek HCS-40", Manufacturer: "ClipperCreek", MaxPowerKW: 7.2, ConnectorType: "J1772", InstallationDate: "2021-09-15", NetworkProvider: "Independent", Level: "Level 2"},
		{ID: "ev_009", LocationID: "loc_205", ModelNumber: "ChargePoint Express Plus", Manufacturer: "ChargePoint Inc.", MaxPowerKW: 62.5, ConnectorType: "CCS1", InstallationDate: "2024-02-15", NetworkProvider: "ChargePoint", Level: "DC Fast"},
		{ID: "ev_010", LocationID: "loc_205", ModelNumber: "ChargePoint CT4000", Manufacturer: "ChargePoint Inc.", MaxPowerKW: 7.2, ConnectorType: "J1772", InstallationDate: "2024-02-15", NetworkProvider: "ChargePoint", Level: "Level 2"},
	}
}

func defaultBuildings() []Building {
	return []Building{
		{ID: "building_001", LocationID: "loc_301", Name: "Engineering Building", Category: CategoryAcademic, MaxCapacityKW: 1200, FloorAreaSqFt: 250000, Occupancy: 2500, HVACSystem: "Variable Air Volume (VAV)", ConstructionYear: 1985},
		{ID: "building_002", LocationID: "loc_302", Name: "Library Complex", Category: CategoryAcademic, MaxCapacityKW: 600, FloorAreaSqFt: 180000, Occupancy: 1200, HVACSystem: "Constant Air Volume (CAV)", ConstructionYear: 1970},
		{ID: "building_003", LocationID: "loc_303", Name: "Student Center", Category: CategoryRecreational, MaxCapacityKW: 800, FloorAreaSqFt: 120000, Occupancy: 1500, HVACSystem: "Variable Refrigerant Flow (VRF)", ConstructionYear: 1995},
		{ID: "building_004", LocationID: "loc_304", Name: "Science Laboratory", Category: CategoryAcademic, MaxCapacityKW: 1000, FloorAreaSqFt: 200000, Occupancy: 1800, HVACSystem: "100% Outside Air System", ConstructionYear: 2010},
		{ID: "building_005", LocationID: "loc_305", Name: "Dormitory A", Category: CategoryResidential, MaxCapacityKW: 500, FloorAreaSqFt: 150000, Occupancy: 800, HVACSystem: "Heat Pump System", ConstructionYear: 2005},
		{ID: "building_006", LocationID: "loc_306", Name: "Dormitory B", Category: CategoryResidential, MaxCapacityKW: 500, FloorAreaSqFt: 150000, Occupancy: 800, HVACSystem: "Heat Pump System", ConstructionYear: 2008},
		{ID: "building_007", LocationID: "loc_307", Name: "Sports Complex", Category: CategoryRecreational, MaxCapacityKW: 700, FloorAreaSqFt: 100000, Occupancy: 1000, HVACSystem: "Dedicated Outdoor Air System (DOAS)", ConstructionYear: 2015},
		{ID: "building_008", LocationID: "loc_308", Name: "Administration Building", Category: CategoryAdministrative, MaxCapacityKW: 400, FloorAreaSqFt: 80000, Occupancy: 300, HVACSystem: "Variable Air Volume (VAV)", ConstructionYear: 1960},
		{ID: "building_009", LocationID: "loc_309", Name: "Life Science Laboratory", Category: CategoryAcademic, MaxCapacityKW: 1850, FloorAreaSqFt: 320000, Occupancy: 1200, HVACSystem: "100% Outside Air System with HEPA Filtration", ConstructionYear: 2024},
	}
}

func defaultLabEquipment() []LabEquipmentSpec {
	return []LabEquipmentSpec{
		{ID: "lab_incubators", Name: "Laboratory Incubators", Quantity: 32, PowerPerUnitW: 313, OperatingHours: "24/7 continuous operation", Category: LabIncubation},
		{ID: "lab_misc_equipment", Name: "Miscellaneous Department Equipment", Quantity: 51, PowerPerUnitW: 184, OperatingHours: "8 AM - 6 PM weekdays", Category: LabAnalysis},
		{ID: "lab_water_baths", Name: "Laboratory Water Baths", Quantity: 8, PowerPerUnitW: 289, OperatingHours: "7 AM - 8 PM daily", Category: LabPreparation},
		{ID: "lab_centrifuges", Name: "Laboratory Centrifuges", Quantity: 18, PowerPerUnitW: 128, OperatingHours: "6 AM - 10 PM daily", Category: LabAnalysis},
		{ID: "lab_ovens", Name: "Laboratory Ovens", Quantity: 4, PowerPerUnitW: 302, OperatingHours: "6 AM - 11 PM daily", Category: LabPreparation},
		{ID: "lab_fume_cupboards", Name: "Laboratory Fume Cupboards", Quantity: 16, PowerPerUnitW: 50, OperatingHours: "24/7 safety ventilation", Category: LabSafety},
		{ID: "lab_shakers", Name: "Laboratory Shakers", Quantity: 8, PowerPerUnitW: 96, OperatingHours: "6 AM - 10 PM daily", Category: LabMixing},
	}
}

func defaultControlSpecs() []ControlSpec {
	return []ControlSpec{
		{
			ID:           "solar_001",
			Name:         "Engineering Building Solar Array",
			Type:         campus_energy.TypeSolar,
			Manufacturer: "SunPower Corporation",
			Model:        "SPR-X22-370",
			CapacityKW:   200,
			Maintenance: MaintenanceSchedule{
				LastMaintenance: time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC),
				NextMaintenance: time.Date(2027, time.July, 15, 0, 0, 0, 0, time.UTC),
				Frequency:       "Semi-annual",
			},
			Profile: EnergyProfile{OnConsumptionKW: 2, StandbyConsumptionKW: 0.5, OffConsumptionKW: 0, OnGenerationKW: 200, StandbyGenerationKW: 0},
		},
		{
			ID:           "battery_001",
			Name:         "Main Battery Storage",
			Type:         campus_energy.TypeBattery,
			Manufacturer: "Tesla Inc.",
			Model:        "Megapack 2XL",
			CapacityKW:   1000,
			Maintenance: MaintenanceSchedule{
				LastMaintenance: time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
				NextMaintenance: time.Date(2027, time.August, 1, 0, 0, 0, 0, time.UTC),
				Frequency:       "Semi-annual",
			},
			Profile: EnergyProfile{OnConsumptionKW: 5, StandbyConsumptionKW: 2, OffConsumptionKW: 0},
		},
		{
			ID:           "ev_001",
			Name:         "Main Parking EV Charger",
			Type:         campus_energy.TypeEVCharger,
			Manufacturer: "ChargePoint Inc.",
			Model:        "CT4000",
			CapacityKW:   7.2,
			Maintenance: MaintenanceSchedule{
				LastMaintenance: time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC),
				NextMaintenance: time.Date(2027, time.July, 10, 0, 0, 0, 0, time.UTC),
				Frequency:       "Semi-annual",
			},
			Profile: EnergyProfile{OnConsumptionKW: 7.2, StandbyConsumptionKW: 0.1, OffConsumptionKW: 0},
		},
	}
}

func defaultScheduledOps() []ScheduledOperation {
	return []ScheduledOperation{
		{
			EquipmentID: "solar_001",
			Operation:   "MAINTENANCE",
			StartTime:   time.Date(2026, time.December, 20, 9, 0, 0, 0, time.UTC),
			EndTime:     time.Date(2026, time.December, 20, 17, 0, 0, 0, time.UTC),
		},
		{
			EquipmentID: "battery_001",
			Operation:   "PEAK_SHAVING",
			StartTime:   time.Date(2026, time.December, 19, 17, 0, 0, 0, time.UTC),
			EndTime:     time.Date(2026, time.December, 19, 21, 0, 0, 0, time.UTC),
		},
	}
}
