// Package config holds server settings and their JSON persistence.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// ConfigFile is the settings filename inside the data directory.
	ConfigFile = "config.json"
	// DefaultUnits is the design length unit used when none is configured.
	DefaultUnits = "cm"
)

// Settings configures a design session.
type Settings struct {
	// DesignName labels the in-memory design and the journal session.
	DesignName string `json:"design_name"`
	// Units is the design length unit. Offsets and key point
	// coordinates are expressed in it.
	Units string `json:"units"`
	// DataDir is where the command journal and this file live.
	DataDir string `json:"data_dir"`
	// JournalDisabled turns off command journaling entirely.
	JournalDisabled bool `json:"journal_disabled,omitempty"`
}

// Default returns the settings used when no config file exists.
func Default() Settings {
	home, _ := os.UserHomeDir()
	return Settings{
		DesignName: "Untitled",
		Units:      DefaultUnits,
		DataDir:    filepath.Join(home, ".vise"),
	}
}

// Path returns the absolute path of the settings file under dataDir.
func Path(dataDir string) string {
	return filepath.Join(dataDir, ConfigFile)
}

// Store defines settings persistence. Abstracted for testability.
type Store interface {
	Load(dataDir string) (Settings, error)
	Save(dataDir string, s Settings) error
}

// FileStore implements Store using the local filesystem.
type FileStore struct{}

// NewFileStore creates a filesystem-backed settings store.
func NewFileStore() *FileStore {
	return &FileStore{}
}

// Load reads settings from dataDir. A missing file is not an error: the
// defaults come back with DataDir pointed at dataDir.
func (fs *FileStore) Load(dataDir string) (Settings, error) {
	data, err := os.ReadFile(Path(dataDir))
	if err != nil {
		if os.IsNotExist(err) {
			s := Default()
			s.DataDir = dataDir
			return s, nil
		}
		return Settings{}, fmt.Errorf("reading config: %w", err)
	}

	s := Default()
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parsing %s: %w", ConfigFile, err)
	}
	if s.Units == "" {
		s.Units = DefaultUnits
	}
	s.DataDir = dataDir
	return s, nil
}

// Save writes settings to dataDir, creating the directory if needed.
func (fs *FileStore) Save(dataDir string, s Settings) error {
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(Path(dataDir), data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
