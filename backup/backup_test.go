package backup

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"clinicore/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "live.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func kindOf(t *testing.T, err error) Kind {
	t.Helper()
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *backup.Error, got %T: %v", err, err)
	}
	return e.Kind
}

func TestBackupFilename(t *testing.T) {
	ts := time.Date(2024, 3, 15, 9, 30, 45, 0, time.UTC)
	if got := BackupFilename(ts); got != "hospital_backup_20240315_093045.db" {
		t.Fatalf("unexpected filename: %q", got)
	}
	// Later timestamps sort after earlier ones, so listings need no parsing.
	later := BackupFilename(ts.Add(time.Hour))
	if !(BackupFilename(ts) < later) {
		t.Fatalf("filenames do not sort chronologically: %q vs %q", BackupFilename(ts), later)
	}
}

func TestObjectPathIdempotent(t *testing.T) {
	name := "hospital_backup_20240315_093045.db"
	full := objectPath(name)
	if full != ObjectPrefix+"/"+name {
		t.Fatalf("unexpected object path: %q", full)
	}
	if objectPath(full) != full {
		t.Fatalf("prefix applied twice: %q", objectPath(full))
	}
}

func TestVerifySnapshot(t *testing.T) {
	dir := t.TempDir()

	if err := VerifySnapshot(filepath.Join(dir, "missing.db")); err == nil {
		t.Fatal("missing file should fail verification")
	}

	short := filepath.Join(dir, "short.db")
	if err := os.WriteFile(short, []byte("tiny"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := VerifySnapshot(short); err == nil {
		t.Fatal("truncated file should fail verification")
	}

	junk := filepath.Join(dir, "junk.db")
	if err := os.WriteFile(junk, []byte("this is definitely not a database file"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := VerifySnapshot(junk); err == nil {
		t.Fatal("non-database file should fail verification")
	}

	s := newTestStore(t)
	snap := filepath.Join(dir, "snap.db")
	if err := s.Snapshot(snap); err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if err := VerifySnapshot(snap); err != nil {
		t.Fatalf("real snapshot failed verification: %v", err)
	}
}

func TestCoordinatorRejectsConcurrentOperations(t *testing.T) {
	c := NewCoordinator(newTestStore(t))
	c.mu.Lock()
	c.state = StateUploading
	c.mu.Unlock()

	if _, err := c.Upload(context.Background(), "bucket", nil); kindOf(t, err) != KindBackup {
		t.Fatalf("busy upload should be a backup error: %v", err)
	}
	if _, err := c.ListBackups(context.Background(), "bucket", nil); kindOf(t, err) != KindBackup {
		t.Fatalf("busy list should be a backup error: %v", err)
	}
	if err := c.Restore(context.Background(), "bucket", nil, "x.db"); kindOf(t, err) != KindRestore {
		t.Fatalf("busy restore should be a restore error: %v", err)
	}

	c.mu.Lock()
	c.state = StateIdle
	c.mu.Unlock()
	if c.State() != StateIdle {
		t.Fatalf("state not idle: %v", c.State())
	}
}

func TestInvalidCredentialsFailBeforeAnyTransfer(t *testing.T) {
	s := newTestStore(t)
	c := NewCoordinator(s)
	badCreds := []byte("not a json document")

	if _, err := c.Upload(context.Background(), "bucket", badCreds); kindOf(t, err) != KindBackup {
		t.Fatalf("upload with bad credentials: %v", err)
	}
	if c.State() != StateIdle {
		t.Fatalf("coordinator stuck in %v after failed upload", c.State())
	}

	if _, err := c.ListBackups(context.Background(), "bucket", badCreds); kindOf(t, err) != KindBackup {
		t.Fatalf("list with bad credentials: %v", err)
	}

	err := c.Restore(context.Background(), "bucket", badCreds, "hospital_backup_20240101_000000.db")
	if kindOf(t, err) != KindRestore {
		t.Fatalf("restore with bad credentials: %v", err)
	}
	// The failed restore never touched the live file or left a temp behind.
	if _, statErr := os.Stat(s.Path() + ".restore_tmp"); !os.IsNotExist(statErr) {
		t.Fatal("restore temp file left behind")
	}
	if _, authErr := s.Authenticate("admin", "admin123"); authErr != nil {
		t.Fatalf("live datastore unusable after failed restore: %v", authErr)
	}
}
