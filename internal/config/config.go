package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	tlrerrors "tlr/internal/errors"
)

// Environment variables read by LoadEnv
const (
	EnvRootDir    = "TLR_ROOT_DIR"
	EnvExtension  = "TLR_EXTENSION"
	EnvOutput     = "TLR_OUTPUT"
	EnvProcessors = "TLR_PROCESSORS"
	EnvIgnore     = "TLR_IGNORE"
)

// Config holds all configuration for the application
type Config struct {
	// Input settings
	RootDir   string
	Extension string

	// Output settings
	OutputPath   string
	SnapshotFile string
	SnapshotDir  string

	// Execution settings
	Processors int

	// Directory names to skip when scanning
	PathsToIgnore []string

	// Publish settings
	Database Database

	// Command flags
	Flags Flags
}

// Database holds MySQL connection settings for publishing snapshots
type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Flags holds command-line flags
type Flags struct {
	Processors int
	RootDir    string
	Extension  string
	OutputPath string
	NameFilter string
	Ignore     []string
	NoSave     bool
	Open       bool
	Cases      bool
	DSN        string
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		RootDir:      DefaultRootDir,
		Extension:    DefaultExtension,
		OutputPath:   DefaultOutputPath,
		SnapshotFile: DefaultSnapshotFile,
		SnapshotDir:  DefaultSnapshotDir,
		Processors:   DefaultProcessors,
		Database: Database{
			Host: DefaultDBHost,
			Port: DefaultDBPort,
			User: DefaultDBUser,
			Name: DefaultDBName,
		},
		Flags: Flags{Processors: DefaultProcessors},
	}
	cfg.PathsToIgnore = make([]string, len(DefaultPathsToIgnore))
	copy(cfg.PathsToIgnore, DefaultPathsToIgnore)
	return cfg
}

// LoadEnv reads the dotenv file at path (a missing file is fine) and applies
// TLR_* and DB_* environment overrides to c
func (c *Config) LoadEnv(path string) error {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return tlrerrors.Config("load "+path, err)
		}
	}

	if v := os.Getenv(EnvRootDir); v != "" {
		c.RootDir = v
	}
	if v := os.Getenv(EnvExtension); v != "" {
		c.Extension = v
	}
	if v := os.Getenv(EnvOutput); v != "" {
		c.OutputPath = v
	}
	if v := os.Getenv(EnvProcessors); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return tlrerrors.Configf("%s must be a positive integer, got %q", EnvProcessors, v)
		}
		c.Processors = n
	}
	if v := os.Getenv(EnvIgnore); v != "" {
		c.PathsToIgnore = splitList(v)
	}

	if v := os.Getenv("DB_HOST"); v != "" {
		c.Database.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		c.Database.Port = v
	}
	if v := os.Getenv("DB_USERNAME"); v != "" {
		c.Database.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("DB_DATABASE"); v != "" {
		c.Database.Name = v
	}
	return nil
}

// Apply overlays command flags onto c
func (c *Config) Apply(flags Flags) {
	c.Flags = flags
	if flags.Processors > 0 {
		c.Processors = flags.Processors
	}
	if flags.RootDir != "" {
		c.RootDir = flags.RootDir
	}
	if flags.Extension != "" {
		c.Extension = flags.Extension
	}
	if flags.OutputPath != "" {
		c.OutputPath = flags.OutputPath
	}
	if len(flags.Ignore) > 0 {
		c.PathsToIgnore = flags.Ignore
	}
}

// Validate checks settings that would otherwise fail deep inside a run
func (c *Config) Validate() error {
	if c.Extension == "" {
		return tlrerrors.Configf("extension marker must not be empty")
	}
	if c.OutputPath == "" {
		return tlrerrors.Configf("output path must not be empty")
	}
	if c.Processors <= 0 {
		return tlrerrors.Configf("processors must be positive, got %d", c.Processors)
	}
	return nil
}

// GetSnapshotPath returns the absolute path of the run snapshot so every
// command reads and writes the same file regardless of cwd
func (c *Config) GetSnapshotPath() string {
	p := filepath.Join(c.SnapshotDir, c.SnapshotFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// GetDSN returns the MySQL DSN, preferring the --dsn flag
func (c *Config) GetDSN() string {
	if c.Flags.DSN != "" {
		return c.Flags.DSN
	}
	d := c.Database
	return d.User + ":" + d.Password + "@tcp(" + d.Host + ":" + d.Port + ")/" + d.Name + "?parseTime=true"
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
