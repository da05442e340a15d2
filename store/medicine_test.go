package store

import (
	"testing"

	"clinicore/models"
)

func seedCatalog(t *testing.T, s *Store) {
	t.Helper()
	rows := []models.Medicine{
		{MedicineName: "Paracetamol", CompanyName: "Acme Pharma", DosageMg: "500", DosageForm: "Tablet"},
		{MedicineName: "Paracetamol", CompanyName: "Acme Pharma", DosageMg: "650", DosageForm: "Tablet"},
		{MedicineName: "Amoxicillin", CompanyName: "Beta Labs", DosageMg: "250", DosageForm: "Capsule"},
	}
	for i := range rows {
		if err := s.CreateMedicine(&rows[i]); err != nil {
			t.Fatalf("CreateMedicine: %v", err)
		}
	}
}

func TestMedicineNamesDistinct(t *testing.T) {
	s := newTestStore(t)
	seedCatalog(t, s)
	names, err := s.MedicineNames()
	if err != nil {
		t.Fatalf("MedicineNames: %v", err)
	}
	if len(names) != 2 {
		t.Fatalf("expected 2 distinct names, got %v", names)
	}
	if names[0] != "Amoxicillin" || names[1] != "Paracetamol" {
		t.Fatalf("names not sorted: %v", names)
	}
}

func TestDosagesFor(t *testing.T) {
	s := newTestStore(t)
	seedCatalog(t, s)
	dosages, err := s.DosagesFor("Paracetamol")
	if err != nil {
		t.Fatalf("DosagesFor: %v", err)
	}
	if len(dosages) != 2 || dosages[0] != "500" || dosages[1] != "650" {
		t.Fatalf("unexpected dosages: %v", dosages)
	}
	dosages, err = s.DosagesFor("Unknown")
	if err != nil {
		t.Fatalf("DosagesFor unknown: %v", err)
	}
	if len(dosages) != 0 {
		t.Fatalf("unknown name should yield no dosages: %v", dosages)
	}
}

func TestMedicineUpdateAndSearch(t *testing.T) {
	s := newTestStore(t)
	seedCatalog(t, s)
	list, err := s.ListMedicines(models.ListOptions{Text: "beta"})
	if err != nil {
		t.Fatalf("ListMedicines: %v", err)
	}
	if len(list) != 1 || list[0].MedicineName != "Amoxicillin" {
		t.Fatalf("company search failed: %+v", list)
	}

	category := "Antibiotic"
	updated, err := s.UpdateMedicine(list[0].ID, models.MedicineUpdate{Category: &category})
	if err != nil {
		t.Fatalf("UpdateMedicine: %v", err)
	}
	if updated.Category != "Antibiotic" || updated.CompanyName != "Beta Labs" {
		t.Fatalf("partial update wrong: %+v", updated)
	}

	if _, err := s.GetMedicine(99999); !IsKind(err, KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
