package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Timer   TimerConfig   `yaml:"timer"`
	History HistoryConfig `yaml:"history"`
	Theme   ThemeConfig   `yaml:"theme"`
}

// TimerConfig holds the selection the pickers start on. The tick interval
// is fixed at TickInterval and cannot be configured.
type TimerConfig struct {
	Hours   int `yaml:"hours"`
	Minutes int `yaml:"minutes"`
	Seconds int `yaml:"seconds"`
}

type HistoryConfig struct {
	Enabled bool `yaml:"enabled"`
	// Path of the sqlite database. Empty means DataDir/history.db.
	Path string `yaml:"path"`
}

type ThemeConfig struct {
	Name string `yaml:"name"`
}

func DefaultConfig() *Config {
	return &Config{
		Timer: TimerConfig{
			Minutes: 5,
		},
		History: HistoryConfig{
			Enabled: true,
		},
		Theme: ThemeConfig{
			Name: "default",
		},
	}
}

// Manager loads the YAML config file and writes it back on change.
type Manager struct {
	config     *Config
	configPath string
}

// NewManager loads path, creating it with defaults when it does not exist yet.
func NewManager(path string) (*Manager, error) {
	m := &Manager{configPath: path}
	err := m.loadConfig()
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	m.config = DefaultConfig()
	if err := m.SaveConfig(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Manager) loadConfig() error {
	data, err := os.ReadFile(m.configPath)
	if err != nil {
		return err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", m.configPath, err)
	}
	cfg.normalize()
	m.config = cfg
	return nil
}

func (c *Config) normalize() {
	if c.Theme.Name == "" {
		c.Theme.Name = "default"
	}
}

func (m *Manager) SaveConfig() error {
	data, err := yaml.Marshal(m.config)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(m.configPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(m.configPath, data, 0o644)
}

func (m *Manager) GetConfig() *Config {
	return m.config
}

func (m *Manager) Path() string {
	return m.configPath
}

func (m *Manager) UpdateTheme(name string) error {
	m.config.Theme.Name = name
	return m.SaveConfig()
}
