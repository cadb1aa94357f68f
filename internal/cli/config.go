package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/tradebook/internal/logging"
	"github.com/mesh-intelligence/tradebook/internal/paths"
	"github.com/mesh-intelligence/tradebook/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "TRADEBOOK"

	cfgKeyBackend   = "backend"
	cfgKeyDataDir   = "data_dir"
	cfgKeyDSN       = "dsn"
	cfgKeyLogLevel  = "log_level"
	cfgKeyLogFormat = "log_format"
)

// defaultConfigYAML is written to config.yaml on first run.
const defaultConfigYAML = `# tradebook configuration
# Every key can be overridden with a TRADEBOOK_<KEY> environment variable.

# Store backend: sqlite or mysql
backend: sqlite

# Directory holding data.sqlite (overridable by --data-dir)
# data_dir:

# MySQL data source name, used when backend is mysql
# dsn: user:password@tcp(localhost:3306)/tradebook

# debug, info, warn or error
log_level: warn

# development or production
log_format: development
`

// settings is the resolved configuration of one invocation.
type settings struct {
	Backend   string
	DataDir   string
	DSN       string
	LogLevel  string
	LogFormat string
}

func (st settings) storeConfig() types.Config {
	return types.Config{Backend: st.Backend, DataDir: st.DataDir, DSN: st.DSN}
}

// loadSettings reads config.yaml from configDir, creating the directory and a
// default file on first run. A .env file next to it is loaded into the
// process environment first; variables already set are kept.
func loadSettings(configDir string) (settings, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return settings{}, fmt.Errorf("create config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return settings{}, fmt.Errorf("ensure default config: %w", err)
	}
	if err := loadEnvFile(filepath.Join(configDir, paths.EnvFileName)); err != nil {
		return settings{}, err
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, types.BackendSQLite)
	v.SetDefault(cfgKeyLogLevel, "warn")
	v.SetDefault(cfgKeyLogFormat, logging.FormatDevelopment)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return settings{}, fmt.Errorf("read config: %w", err)
		}
	}

	return settings{
		Backend:   v.GetString(cfgKeyBackend),
		DataDir:   v.GetString(cfgKeyDataDir),
		DSN:       v.GetString(cfgKeyDSN),
		LogLevel:  v.GetString(cfgKeyLogLevel),
		LogFormat: v.GetString(cfgKeyLogFormat),
	}, nil
}

func loadEnvFile(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ensureDefaultConfigFile creates a default config.yaml if the file does not
// exist in configDir.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, paths.ConfigFileName)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
