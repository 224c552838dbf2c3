package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds user preferences
type Config struct {
	ConfirmDelete bool `yaml:"confirm_delete" json:"confirm_delete"` // Require confirmation for delete

	// Storage backend
	StorageDriver string `yaml:"storage_driver" json:"storage_driver"` // sqlite, postgres or memory
	StoragePath   string `yaml:"storage_path" json:"storage_path"`     // SQLite file
	DatabaseURL   string `yaml:"database_url" json:"database_url"`     // Postgres DSN

	// HTTP host
	ServerAddr string `yaml:"server_addr" json:"server_addr"`

	// Logging configuration
	LogLevel   string `yaml:"log_level" json:"log_level"`     // Log level: DEBUG, INFO, WARN, ERROR
	LogFile    string `yaml:"log_file" json:"log_file"`       // Path to log file
	LogConsole bool   `yaml:"log_console" json:"log_console"` // Enable console logging

	fromEnv map[string]envValue
}

// Dir returns ~/.ticketr
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".ticketr"), nil
}

// DefaultConfig returns default settings with TICKETR_* overrides applied
func DefaultConfig() *Config {
	cfg := defaults()
	cfg.applyEnv()
	return cfg
}

func defaults() *Config {
	dir, _ := Dir()
	logPath := ""
	dbPath := ""
	if dir != "" {
		logPath = filepath.Join(dir, "logs", "ticketr.log")
		dbPath = filepath.Join(dir, "ticketr.db")
	}

	return &Config{
		ConfirmDelete: true,
		StorageDriver: "sqlite",
		StoragePath:   dbPath,
		ServerAddr:    ":8080",
		LogLevel:      "INFO",
		LogFile:       logPath,
	}
}

// envOverride binds a TICKETR_* variable to a config field
type envOverride struct {
	name string
	get  func(*Config) string
	set  func(*Config, string)
}

var envOverrides = []envOverride{
	{"TICKETR_STORAGE", func(c *Config) string { return c.StorageDriver }, func(c *Config, v string) { c.StorageDriver = v }},
	{"TICKETR_STORAGE_PATH", func(c *Config) string { return c.StoragePath }, func(c *Config, v string) { c.StoragePath = v }},
	{"TICKETR_DATABASE_URL", func(c *Config) string { return c.DatabaseURL }, func(c *Config, v string) { c.DatabaseURL = v }},
	{"TICKETR_ADDR", func(c *Config) string { return c.ServerAddr }, func(c *Config, v string) { c.ServerAddr = v }},
	{"TICKETR_LOG_LEVEL", func(c *Config) string { return c.LogLevel }, func(c *Config, v string) { c.LogLevel = v }},
	{"TICKETR_LOG_FILE", func(c *Config) string { return c.LogFile }, func(c *Config, v string) { c.LogFile = v }},
	{"TICKETR_LOG_CONSOLE",
		func(c *Config) string { return strconv.FormatBool(c.LogConsole) },
		func(c *Config, v string) { c.LogConsole = v == "true" }},
}

// envValue remembers what a variable replaced so Save can put it back
type envValue struct {
	file string
	env  string
}

// applyEnv lets set TICKETR_* variables win over defaults and the file
func (c *Config) applyEnv() {
	for _, o := range envOverrides {
		v := os.Getenv(o.name)
		if v == "" {
			continue
		}
		if c.fromEnv == nil {
			c.fromEnv = make(map[string]envValue)
		}
		c.fromEnv[o.name] = envValue{file: o.get(c), env: v}
		o.set(c, v)
	}
}

// fileView is c without values that only came from the environment.
// A field changed after loading keeps its new value.
func (c *Config) fileView() *Config {
	out := *c
	out.fromEnv = nil
	for _, o := range envOverrides {
		ev, ok := c.fromEnv[o.name]
		if !ok {
			continue
		}
		applied := &Config{}
		o.set(applied, ev.env)
		if o.get(c) == o.get(applied) {
			o.set(&out, ev.file)
		}
	}
	return &out
}

// Path returns ~/.ticketr/config.yaml
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load loads config from ~/.ticketr/config.yaml
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom loads config from path, returning defaults when it does not exist
func LoadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyEnv()

	return cfg, nil
}

// Save saves config to ~/.ticketr/config.yaml
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes config to path, creating its directory. Values supplied
// through TICKETR_* variables are not persisted.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c.fileView())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
