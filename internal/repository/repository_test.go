package repository

import (
	"testing"
	"time"

	"campus_energy"
)

func TestStateStorePutGetAll(t *testing.T) {
	t.Parallel()

	s := NewStateStore()
	if _, ok := s.Get("solar_001"); ok {
		t.Fatalf("empty store must not find anything")
	}

	s.Put(campus_energy.EquipmentState{EquipmentID: "solar_001", Status: campus_energy.StatusOn})
	s.Put(campus_energy.EquipmentState{EquipmentID: "battery_001", Status: campus_energy.StatusStandby})

	got, ok := s.Get("solar_001")
	if !ok || got.Status != campus_energy.StatusOn {
		t.Fatalf("Get(solar_001): want ON, got %+v ok=%v", got, ok)
	}

	// Put replaces atomically.
	s.Put(campus_energy.EquipmentState{EquipmentID: "solar_001", Status: campus_energy.StatusOff})
	if got, _ := s.Get("solar_001"); got.Status != campus_energy.StatusOff {
		t.Fatalf("Put must replace: want OFF, got %s", got.Status)
	}

	all := s.All()
	if len(all) != 2 {
		t.Fatalf("All: want 2 records, got %d", len(all))
	}

	// All returns a snapshot; mutating it must not leak into the store.
	all["solar_001"] = campus_energy.EquipmentState{EquipmentID: "solar_001", Status: campus_energy.StatusMaintenance}
	if got, _ := s.Get("solar_001"); got.Status != campus_energy.StatusOff {
		t.Fatalf("All snapshot leaked into store: got %s", got.Status)
	}
}

func TestStateStoreSetChanging(t *testing.T) {
	t.Parallel()

	s := NewStateStore()
	if s.SetChanging("ghost", true) {
		t.Fatalf("SetChanging on unknown id must report false")
	}

	s.Put(campus_energy.EquipmentState{EquipmentID: "ev_001"})
	if !s.SetChanging("ev_001", true) {
		t.Fatalf("SetChanging on known id must report true")
	}
	if got, _ := s.Get("ev_001"); !got.IsChanging {
		t.Fatalf("IsChanging flag not set")
	}
	s.SetChanging("ev_001", false)
	if got, _ := s.Get("ev_001"); got.IsChanging {
		t.Fatalf("IsChanging flag not cleared")
	}
}

func TestHistoryStoreNewestFirstAndCutoff(t *testing.T) {
	t.Parallel()

	s := NewHistoryStore()
	base := time.Date(2026, time.August, 1, 12, 0, 0, 0, time.UTC)

	s.Append(campus_energy.StatusChange{ID: "a", EquipmentID: "solar_001", Timestamp: base.AddDate(0, 0, -10)})
	s.Append(campus_energy.StatusChange{ID: "b", EquipmentID: "solar_001", Timestamp: base.AddDate(0, 0, -2)})
	s.Append(campus_energy.StatusChange{ID: "c", EquipmentID: "battery_001", Timestamp: base.AddDate(0, 0, -1)})
	s.Append(campus_energy.StatusChange{ID: "d", EquipmentID: "solar_001", Timestamp: base})

	got := s.ListSince("solar_001", base.AddDate(0, 0, -7))
	if len(got) != 2 {
		t.Fatalf("ListSince: want 2 entries, got %d", len(got))
	}
	if got[0].ID != "d" || got[1].ID != "b" {
		t.Fatalf("ListSince order: want [d b], got [%s %s]", got[0].ID, got[1].ID)
	}

	// Cutoff is inclusive.
	if got := s.ListSince("solar_001", base); len(got) != 1 || got[0].ID != "d" {
		t.Fatalf("inclusive cutoff: want [d], got %+v", got)
	}

	if got := s.ListSince("ghost", base.AddDate(0, 0, -30)); len(got) != 0 {
		t.Fatalf("unknown equipment: want empty, got %d entries", len(got))
	}
}

func TestAlertStoreAppendListAcknowledge(t *testing.T) {
	t.Parallel()

	s := NewAlertStore()
	s.Append(campus_energy.Alert{ID: "a1", Severity: campus_energy.SeverityInfo})
	s.Append(campus_energy.Alert{ID: "a2", Severity: campus_energy.SeverityWarning})

	got := s.List()
	if len(got) != 2 || got[0].ID != "a2" {
		t.Fatalf("List: want newest first [a2 a1], got %+v", got)
	}

	if s.Acknowledge("nope") {
		t.Fatalf("Acknowledge on unknown id must report false")
	}
	if !s.Acknowledge("a1") {
		t.Fatalf("Acknowledge on known id must report true")
	}
	for _, a := range s.List() {
		if a.ID == "a1" && !a.Acknowledged {
			t.Fatalf("a1 not acknowledged after Acknowledge")
		}
		if a.ID == "a2" && a.Acknowledged {
			t.Fatalf("a2 must stay unacknowledged")
		}
	}

	// List returns a copy.
	snapshot := s.List()
	snapshot[0].Acknowledged = true
	if got := s.List(); got[0].ID == "a2" && got[0].Acknowledged {
		t.Fatalf("List snapshot leaked into store")
	}
}
