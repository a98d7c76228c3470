package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/frontdesk/internal/paths"
	"github.com/mesh-intelligence/frontdesk/internal/sqlite"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	Variant   string `yaml:"variant"`
	DataDir   string `yaml:"data_dir,omitempty"`
	Port      int    `yaml:"port"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

func newInitCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the config file and the variant's database",
		Long: "Write config.yaml to the config directory if it is missing, then create\n" +
			"the variant's database with its schema and seed rows.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(flags)
			if err != nil {
				return userError(err)
			}
			if err := os.MkdirAll(s.ConfigDir, 0o755); err != nil {
				return sysError(fmt.Errorf("create config directory: %w", err))
			}
			written, err := writeConfigIfMissing(paths.ConfigFile(s.ConfigDir), s)
			if err != nil {
				return sysError(fmt.Errorf("write config: %w", err))
			}

			return withBackend(cmd.Context(), flags, func(_ context.Context, b *sqlite.Backend, _ *settings) error {
				out := cmd.OutOrStdout()
				if written {
					fmt.Fprintf(out, "Wrote %s\n", paths.ConfigFile(s.ConfigDir))
				}
				fmt.Fprintf(out, "Initialized %s database at %s\n", b.Variant(), b.Path())
				return nil
			})
		},
	}
}

// writeConfigIfMissing creates config.yaml from s if the file does not exist.
// It reports whether the file was written.
func writeConfigIfMissing(path string, s *settings) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	cfg := configFile{
		Variant:   s.Storage.Variant,
		DataDir:   s.Storage.DataDir,
		Port:      s.Port,
		LogLevel:  s.LogLevel,
		LogFormat: s.LogFormat,
	}
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, err
	}
	return true, nil
}
