package backup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/habitual/internal/storage/sqlite"
)

func newTestDB(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "habitual.db")
	s := sqlite.NewStore(path)
	if err := s.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	return path
}

func TestCreateBackup(t *testing.T) {
	dbPath := newTestDB(t)
	m := NewManager(dbPath)

	path, err := m.Create()
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("backup file missing: %v", err)
	}
	if !strings.HasPrefix(filepath.Base(path), "habitual-") {
		t.Errorf("backup name %q missing prefix", filepath.Base(path))
	}
}

func TestCreateBackupMissingDatabase(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "missing.db"))

	if _, err := m.Create(); err == nil {
		t.Error("Create() should fail for a missing database")
	}
}

func TestListBackups(t *testing.T) {
	dbPath := newTestDB(t)
	m := NewManager(dbPath)

	if _, err := m.Create(); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := m.Create(); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	backups, err := m.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(backups) != 2 {
		t.Fatalf("got %d backups, want 2", len(backups))
	}
	if backups[0].Timestamp.Before(backups[1].Timestamp) {
		t.Error("backups not sorted newest first")
	}
}

func TestListBackupsEmptyDir(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "habitual.db"))

	backups, err := m.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("got %d backups, want 0", len(backups))
	}
}

func TestRotateKeepsRetentionLimit(t *testing.T) {
	dbPath := newTestDB(t)
	m := NewManager(dbPath)

	// Stamp each fake backup with a distinct timestamp so rotation has an
	// unambiguous oldest.
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 16; i++ {
		nowFunc = func() time.Time { return base.Add(time.Duration(i) * time.Minute) }
		if _, err := m.Create(); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}
	nowFunc = time.Now

	backups, err := m.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(backups) != 14 {
		t.Errorf("got %d backups after rotation, want 14", len(backups))
	}
}

func TestRestoreBackup(t *testing.T) {
	dbPath := newTestDB(t)
	m := NewManager(dbPath)

	backupPath, err := m.Create()
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := m.Restore(backupPath); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}

	s := sqlite.NewStore(dbPath)
	if err := s.Load(); err != nil {
		t.Errorf("restored database failed to load: %v", err)
	}
	s.Close()
}

func TestRestoreRejectsInvalidFile(t *testing.T) {
	dbPath := newTestDB(t)
	m := NewManager(dbPath)

	junk := filepath.Join(t.TempDir(), "junk.db")
	if err := os.WriteFile(junk, []byte("not a database"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := m.Restore(junk); err == nil {
		t.Error("Restore() should reject a non-sqlite file")
	}
}
