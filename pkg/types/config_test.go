package types

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "empty variant returns ErrVariantEmpty",
			config:  Config{Variant: "", DataDir: "/tmp/data"},
			wantErr: ErrVariantEmpty,
		},
		{
			name:    "unknown variant returns ErrVariantUnknown",
			config:  Config{Variant: "school", DataDir: "/tmp/data"},
			wantErr: ErrVariantUnknown,
		},
		{
			name:    "gym config",
			config:  Config{Variant: VariantGym, DataDir: "/tmp/data"},
			wantErr: nil,
		},
		{
			name:    "hospital with empty DataDir is valid at config level",
			config:  Config{Variant: VariantHospital},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestConfigDatabasePath(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		want   string
	}{
		{"named after variant", Config{Variant: VariantGym, DataDir: "/srv"}, filepath.Join("/srv", "gym.db")},
		{"defaults to current dir", Config{Variant: VariantHospital}, filepath.Join(".", "hospital.db")},
		{"relative file under data dir", Config{Variant: VariantGym, DataDir: "/srv", DatabaseFile: "club.db"}, filepath.Join("/srv", "club.db")},
		{"absolute file wins", Config{Variant: VariantGym, DataDir: "/srv", DatabaseFile: "/var/lib/club.db"}, "/var/lib/club.db"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.config.DatabasePath())
		})
	}
}

func TestDefaultPort(t *testing.T) {
	assert.Equal(t, 5000, DefaultPort(VariantGym))
	assert.Equal(t, 5001, DefaultPort(VariantHospital))
}
