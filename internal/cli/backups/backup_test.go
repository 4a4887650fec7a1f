package backups

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/gentlegains/internal/backup"
	"github.com/julianstephens/gentlegains/internal/cli"
	"github.com/julianstephens/gentlegains/internal/models"
	"github.com/julianstephens/gentlegains/internal/storage/postgres"
	"github.com/julianstephens/gentlegains/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) (*cli.Context, *sqlite.Store, *bytes.Buffer) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "gentlegains.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	out := &bytes.Buffer{}
	return &cli.Context{Store: store, Out: out}, store, out
}

func TestBackupCreateAndList(t *testing.T) {
	ctx, _, out := setupTestDB(t)

	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "No backups found.") {
		t.Errorf("unexpected output:\n%s", out.String())
	}

	out.Reset()
	if err := (&BackupCreateCmd{}).Run(ctx); err != nil {
		t.Fatalf("BackupCreateCmd.Run() failed: %v", err)
	}
	if !strings.Contains(out.String(), "✓ Backup created: gentlegains-") {
		t.Errorf("unexpected output:\n%s", out.String())
	}

	out.Reset()
	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Available backups (1 total, keeping most recent 14)") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestBackupRestoreCmd(t *testing.T) {
	ctx, store, out := setupTestDB(t)

	mgr := backup.NewManager(store.GetConfigPath())
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.AddFoodLog(models.FoodLogEntry{FoodName: "Dumplings", MealType: models.MealDinner}); err != nil {
		t.Fatal(err)
	}

	cmd := &BackupRestoreCmd{BackupFile: filepath.Base(backupPath), Yes: true}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("BackupRestoreCmd.Run() failed: %v", err)
	}
	if !strings.Contains(out.String(), "Previous database saved as") {
		t.Errorf("unexpected output:\n%s", out.String())
	}

	if err := store.Load(); err != nil {
		t.Fatal(err)
	}
	logs, err := store.GetFoodLogs()
	if err != nil {
		t.Fatal(err)
	}
	if len(logs) != 0 {
		t.Errorf("expected restored database to be empty, got %d rows", len(logs))
	}
}

func TestBackupRestoreCmdMissingFile(t *testing.T) {
	ctx, _, _ := setupTestDB(t)

	err := (&BackupRestoreCmd{BackupFile: "gentlegains-nope.db", Yes: true}).Run(ctx)
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("BackupRestoreCmd.Run() error = %v, want not found", err)
	}
}

func TestBackupCreateCmdPostgres(t *testing.T) {
	ctx := &cli.Context{Store: postgres.New("postgres://user@localhost/gentlegains"), Out: &bytes.Buffer{}}

	err := (&BackupCreateCmd{}).Run(ctx)
	if !errors.Is(err, backup.ErrNotSQLite) {
		t.Errorf("BackupCreateCmd.Run() error = %v, want ErrNotSQLite", err)
	}
}

func TestResolveBackupPath(t *testing.T) {
	dir := t.TempDir()
	backupDir := filepath.Join(dir, "backups")
	_, store, _ := setupTestDB(t)
	mgr := backup.NewManager(store.GetConfigPath())
	created, err := mgr.CreateBackup()
	if err != nil {
		t.Fatal(err)
	}

	got, err := resolveBackupPath(filepath.Base(created), mgr.GetBackupDir())
	if err != nil || got != created {
		t.Errorf("resolveBackupPath(name) = %q, %v, want %q", got, err, created)
	}
	got, err = resolveBackupPath(created, backupDir)
	if err != nil || got != created {
		t.Errorf("resolveBackupPath(abs) = %q, %v, want %q", got, err, created)
	}
	if _, err := resolveBackupPath(filepath.Join(dir, "missing.db"), backupDir); err == nil {
		t.Error("resolveBackupPath() should fail for a missing absolute path")
	}
}
