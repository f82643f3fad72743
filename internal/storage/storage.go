package storage

import (
	"tlr/internal/config"
	"tlr/internal/domain"
)

// Storage persists and loads the snapshot of the last report run
type Storage interface {
	Load() (*domain.RunOutput, error)
	// SaveOutput writes a full snapshot (e.g. after toggling reviewed suites).
	SaveOutput(output *domain.RunOutput) error
}

// JSONStorage stores the snapshot in a JSON file under the configured path
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's snapshot path
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
