package types

import (
	"errors"
	"path/filepath"
)

// Supported application variants.
const (
	VariantGym      = "gym"
	VariantHospital = "hospital"
)

// Config holds the storage parameters for Backend.Attach.
type Config struct {
	Variant      string `json:"variant" yaml:"variant"`
	DataDir      string `json:"data_dir" yaml:"data_dir"`
	DatabaseFile string `json:"database_file,omitempty" yaml:"database_file,omitempty"`
}

// Config validation errors.
var (
	ErrVariantEmpty   = errors.New("variant must not be empty")
	ErrVariantUnknown = errors.New("unknown variant")
)

// knownVariants lists the variants that Validate accepts.
var knownVariants = map[string]bool{
	VariantGym:      true,
	VariantHospital: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.Variant == "" {
		return ErrVariantEmpty
	}
	if !knownVariants[c.Variant] {
		return ErrVariantUnknown
	}
	return nil
}

// DatabasePath returns the SQLite file for the configured variant. An explicit
// DatabaseFile wins; a relative DatabaseFile is resolved against DataDir.
// Otherwise the file is named after the variant (gym.db, hospital.db).
func (c Config) DatabasePath() string {
	dataDir := c.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if c.DatabaseFile != "" {
		if filepath.IsAbs(c.DatabaseFile) {
			return c.DatabaseFile
		}
		return filepath.Join(dataDir, c.DatabaseFile)
	}
	return filepath.Join(dataDir, c.Variant+".db")
}

// DefaultPort returns the HTTP port a variant listens on when none is configured.
func DefaultPort(variant string) int {
	if variant == VariantHospital {
		return 5001
	}
	return 5000
}
