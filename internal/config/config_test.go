package config

import (
	"os"
	"path/filepath"
	"testing"
)

// --- Default ---

func TestDefault_SetsUnitsAndName(t *testing.T) {
	s := Default()
	if s.Units != DefaultUnits {
		t.Errorf("Units = %s, want %s", s.Units, DefaultUnits)
	}
	if s.DesignName != "Untitled" {
		t.Errorf("DesignName = %s, want Untitled", s.DesignName)
	}
	if s.DataDir == "" {
		t.Error("DataDir should be set")
	}
}

// --- Path helpers ---

func TestPath(t *testing.T) {
	got := Path("/home/user/.vise")
	want := filepath.Join("/home/user/.vise", ConfigFile)
	if got != want {
		t.Errorf("Path = %s, want %s", got, want)
	}
}

// --- FileStore ---

func TestFileStore_SaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore()

	original := Default()
	original.DesignName = "RobotArm"
	original.Units = "mm"

	if err := store.Save(dir, original); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.DesignName != "RobotArm" {
		t.Errorf("DesignName = %s, want RobotArm", loaded.DesignName)
	}
	if loaded.Units != "mm" {
		t.Errorf("Units = %s, want mm", loaded.Units)
	}
	if loaded.DataDir != dir {
		t.Errorf("DataDir = %s, want %s", loaded.DataDir, dir)
	}
}

func TestFileStore_LoadMissingReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore()

	s, err := store.Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Units != DefaultUnits {
		t.Errorf("Units = %s, want %s", s.Units, DefaultUnits)
	}
	if s.DataDir != dir {
		t.Errorf("DataDir = %s, want %s", s.DataDir, dir)
	}
}

func TestFileStore_LoadFillsEmptyUnits(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(Path(dir), []byte(`{"design_name":"Gearbox"}`), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	s, err := NewFileStore().Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.DesignName != "Gearbox" {
		t.Errorf("DesignName = %s, want Gearbox", s.DesignName)
	}
	if s.Units != DefaultUnits {
		t.Errorf("Units = %s, want %s", s.Units, DefaultUnits)
	}
}

func TestFileStore_LoadRejectsBadJSON(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(Path(dir), []byte("not json"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := NewFileStore().Load(dir); err == nil {
		t.Error("expected parse error for malformed config")
	}
}

func TestFileStore_SaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	if err := NewFileStore().Save(dir, Default()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(Path(dir)); err != nil {
		t.Errorf("config file missing: %v", err)
	}
}
