package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/frontdesk/internal/paths"
	"github.com/mesh-intelligence/frontdesk/internal/sqlite"
	"github.com/mesh-intelligence/frontdesk/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "FRONTDESK"

	// Config keys.
	cfgKeyVariant      = "variant"
	cfgKeyDataDir      = "data_dir"
	cfgKeyDatabaseFile = "database_file"
	cfgKeyPort         = "port"
	cfgKeyLogLevel     = "log_level"
	cfgKeyLogFormat    = "log_format"

	defaultLogLevel  = "info"
	defaultLogFormat = "console"
)

// settings is the resolved configuration of one command run.
type settings struct {
	ConfigDir string
	Storage   types.Config
	Port      int
	LogLevel  string
	LogFormat string
}

// loadSettings resolves the configuration for a command. Sources, highest
// first: flags, FRONTDESK_* environment (including an optional .env file in
// the working directory or the config directory), config.yaml, defaults.
// A missing config.yaml is not an error.
func loadSettings(flags *rootFlags) (*settings, error) {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return nil, fmt.Errorf("resolve config dir: %w", err)
	}
	if err := loadDotEnv(paths.EnvFileName, filepath.Join(configDir, paths.EnvFileName)); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetDefault(cfgKeyVariant, types.VariantGym)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetDefault(cfgKeyLogFormat, defaultLogFormat)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	if flags.variant != "" {
		v.Set(cfgKeyVariant, flags.variant)
	}

	dataDir, err := paths.ResolveDataDir(flags.dataDir, v.GetString(cfgKeyDataDir))
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	s := &settings{
		ConfigDir: configDir,
		Storage: types.Config{
			Variant:      v.GetString(cfgKeyVariant),
			DataDir:      dataDir,
			DatabaseFile: v.GetString(cfgKeyDatabaseFile),
		},
		Port:      v.GetInt(cfgKeyPort),
		LogLevel:  v.GetString(cfgKeyLogLevel),
		LogFormat: v.GetString(cfgKeyLogFormat),
	}
	if err := s.Storage.Validate(); err != nil {
		return nil, fmt.Errorf("variant %q: %w", s.Storage.Variant, err)
	}
	if s.Port == 0 {
		s.Port = types.DefaultPort(s.Storage.Variant)
	}
	return s, nil
}

// loadDotEnv loads each .env file that exists. Variables already set in the
// environment are kept.
func loadDotEnv(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// withBackend loads settings, attaches a backend for the configured variant,
// runs fn and detaches. Configuration problems are user errors; storage
// failures are system errors.
func withBackend(ctx context.Context, flags *rootFlags, fn func(ctx context.Context, b *sqlite.Backend, s *settings) error) error {
	s, err := loadSettings(flags)
	if err != nil {
		return userError(err)
	}
	b := sqlite.NewBackend()
	if err := b.Attach(s.Storage); err != nil {
		return sysError(fmt.Errorf("open %s: %w", s.Storage.DatabasePath(), err))
	}
	defer b.Detach()

	return fn(ctx, b, s)
}
