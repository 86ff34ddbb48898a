// Package config handles runtime configuration and the on-disk layout of the
// hospital data directory. Every deployment gets one data directory holding
// the JSON collections, the reference catalogs, logs and generated reports.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultDataDir is used when no directory is configured explicitly.
	DefaultDataDir = "data"

	configFileName = "config.yaml"

	// EnvDataDir overrides the data directory (also settable via .env).
	EnvDataDir = "RRHH_DATA_DIR"
	// EnvLogLevel overrides the configured log level.
	EnvLogLevel = "RRHH_LOG_LEVEL"
)

const defaultConfigYAML = `# Configuracion del sistema de RR.HH del hospital.
version: 1

# Nombres de archivo de las colecciones JSON. El campo identificador de cada
# coleccion se infiere del nombre del archivo (personal.json -> id_personal).
collections:
  personnel: personal.json
  contracts: contratos.json
  departments: departamentos.json

logging:
  level: info
  format: console
`

// Collections names the JSON collection files inside the data directory.
type Collections struct {
	Personnel   string `yaml:"personnel"`
	Contracts   string `yaml:"contracts"`
	Departments string `yaml:"departments"`
}

// Logging captures logger preferences.
type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Settings models the config.yaml document.
type Settings struct {
	Version     int         `yaml:"version"`
	Collections Collections `yaml:"collections"`
	Logging     Logging     `yaml:"logging"`
}

// Config holds the resolved runtime configuration.
type Config struct {
	// DataDir is the root of the hospital data directory.
	DataDir string

	Settings Settings
}

// InitDataDir creates the data directory structure. Called once on startup.
//
// Structure created:
//
//	<data>/
//	├── config.yaml      <- runtime settings
//	├── catalogos.yaml   <- reference catalogs (bootstrapped on first run)
//	├── logs/            <- diagnostic log and operation journal
//	└── reportes/        <- generated PDF reports
//
// The collection files themselves are created lazily by the document store.
func InitDataDir(dataDir string) error {
	dirs := []string{
		dataDir,
		filepath.Join(dataDir, "logs"),
		filepath.Join(dataDir, "reportes"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: ensure %s: %w", dir, err)
		}
	}
	return ensureConfigFile(filepath.Join(dataDir, configFileName))
}

// New resolves the configuration for a data directory. When dataDir is empty
// the RRHH_DATA_DIR environment variable is consulted, then the default.
func New(dataDir string) (*Config, error) {
	if strings.TrimSpace(dataDir) == "" {
		dataDir = os.Getenv(EnvDataDir)
	}
	if strings.TrimSpace(dataDir) == "" {
		dataDir = DefaultDataDir
	}

	cfg := &Config{
		DataDir:  dataDir,
		Settings: defaultSettings(),
	}

	if err := cfg.load(); err != nil {
		return nil, err
	}

	if level := strings.TrimSpace(os.Getenv(EnvLogLevel)); level != "" {
		cfg.Settings.Logging.Level = level
	}
	return cfg, nil
}

// ConfigPath returns the on-disk location of config.yaml.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.DataDir, configFileName)
}

// CatalogPath returns the location of the reference catalog document.
func (c *Config) CatalogPath() string {
	return filepath.Join(c.DataDir, "catalogos.yaml")
}

// LogsDir returns the directory holding the diagnostic log and the journal.
func (c *Config) LogsDir() string {
	return filepath.Join(c.DataDir, "logs")
}

// JournalPath returns the operation journal file.
func (c *Config) JournalPath() string {
	return filepath.Join(c.LogsDir(), "operaciones.log")
}

// ReportsDir returns the directory for generated PDF reports.
func (c *Config) ReportsDir() string {
	return filepath.Join(c.DataDir, "reportes")
}

// PersonnelPath returns the personnel collection file.
func (c *Config) PersonnelPath() string {
	return filepath.Join(c.DataDir, c.Settings.Collections.Personnel)
}

// ContractsPath returns the contracts collection file.
func (c *Config) ContractsPath() string {
	return filepath.Join(c.DataDir, c.Settings.Collections.Contracts)
}

// DepartmentsPath returns the departments collection file.
func (c *Config) DepartmentsPath() string {
	return filepath.Join(c.DataDir, c.Settings.Collections.Departments)
}

func (c *Config) load() error {
	path := c.ConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var parsed Settings
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	parsed.applyDefaults()
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}

	c.Settings = parsed
	return nil
}

func defaultSettings() Settings {
	var s Settings
	// The embedded document is the source of truth for defaults; a parse
	// failure here is a programming error.
	if err := yaml.Unmarshal([]byte(defaultConfigYAML), &s); err != nil {
		panic(fmt.Sprintf("config: built-in defaults: %v", err))
	}
	return s
}

func (s *Settings) applyDefaults() {
	defaults := defaultSettings()
	if s.Version == 0 {
		s.Version = defaults.Version
	}
	if strings.TrimSpace(s.Collections.Personnel) == "" {
		s.Collections.Personnel = defaults.Collections.Personnel
	}
	if strings.TrimSpace(s.Collections.Contracts) == "" {
		s.Collections.Contracts = defaults.Collections.Contracts
	}
	if strings.TrimSpace(s.Collections.Departments) == "" {
		s.Collections.Departments = defaults.Collections.Departments
	}
	if strings.TrimSpace(s.Logging.Level) == "" {
		s.Logging.Level = defaults.Logging.Level
	}
	if strings.TrimSpace(s.Logging.Format) == "" {
		s.Logging.Format = defaults.Logging.Format
	}
}

func (s *Settings) validate() error {
	if s.Version < 1 {
		return fmt.Errorf("version must be >= 1")
	}
	files := map[string]string{
		"collections.personnel":   s.Collections.Personnel,
		"collections.contracts":   s.Collections.Contracts,
		"collections.departments": s.Collections.Departments,
	}
	for name, file := range files {
		if filepath.Ext(file) != ".json" {
			return fmt.Errorf("%s: %q must be a .json file", name, file)
		}
		if filepath.Base(file) != file {
			return fmt.Errorf("%s: %q must be a bare file name", name, file)
		}
	}
	switch s.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be 'console' or 'json'")
	}
	return nil
}

func ensureConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
