package store

import (
	"os"
	"path/filepath"
	"testing"

	"clinicore/models"
)

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(filepath.Join(dir, "live.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	if err := s.CreatePatient(testPatient("PAT-1")); err != nil {
		t.Fatalf("CreatePatient: %v", err)
	}
	snap := filepath.Join(dir, "snap.db")
	if err := s.Snapshot(snap); err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	// Divergence after the snapshot is discarded by the restore.
	if err := s.CreatePatient(testPatient("PAT-2")); err != nil {
		t.Fatalf("CreatePatient after snapshot: %v", err)
	}
	if err := s.Restore(snap); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	if _, err := s.GetPatient("PAT-1"); err != nil {
		t.Fatalf("snapshot data missing after restore: %v", err)
	}
	if _, err := s.GetPatient("PAT-2"); !IsKind(err, KindNotFound) {
		t.Fatalf("post-snapshot row survived restore: %v", err)
	}
	// The handle is fully usable again.
	if err := s.CreatePatient(testPatient("PAT-3")); err != nil {
		t.Fatalf("write after restore: %v", err)
	}
	if _, err := os.Stat(snap); !os.IsNotExist(err) {
		t.Fatal("restore should consume the source file")
	}
}

func TestSnapshotIsCompleteDatabase(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(filepath.Join(dir, "live.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	if err := s.CreatePatient(testPatient("PAT-1")); err != nil {
		t.Fatalf("CreatePatient: %v", err)
	}

	snap := filepath.Join(dir, "snap.db")
	if err := s.Snapshot(snap); err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	// The snapshot opens as a normal datastore with the data intact.
	clone, err := Open(snap)
	if err != nil {
		t.Fatalf("Open snapshot: %v", err)
	}
	defer clone.Close()
	if _, err := clone.GetPatient("PAT-1"); err != nil {
		t.Fatalf("snapshot missing data: %v", err)
	}
	if _, err := clone.Authenticate("admin", "admin123"); err != nil {
		t.Fatalf("snapshot missing seeded login: %v", err)
	}
}

func TestSnapshotOverwritesStaleDest(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(filepath.Join(dir, "live.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	snap := filepath.Join(dir, "snap.db")
	if err := os.WriteFile(snap, []byte("stale leftovers"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := s.Snapshot(snap); err != nil {
		t.Fatalf("Snapshot over stale file: %v", err)
	}
	var patients []models.Patient
	if err := s.db.Find(&patients).Error; err != nil {
		t.Fatalf("store unusable after snapshot: %v", err)
	}
}

func TestRestoreMissingSourceKeepsLiveData(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(filepath.Join(dir, "live.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	if err := s.CreatePatient(testPatient("PAT-1")); err != nil {
		t.Fatalf("CreatePatient: %v", err)
	}
	if err := s.Restore(filepath.Join(dir, "nope.db")); err == nil {
		t.Fatal("expected error restoring from missing file")
	}
	// The failed restore reopened the untouched live file.
	if _, err := s.GetPatient("PAT-1"); err != nil {
		t.Fatalf("live data lost on failed restore: %v", err)
	}
}
