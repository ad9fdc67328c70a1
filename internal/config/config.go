package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DirName is the per-user directory holding the config file, the logs and
// the settings storage.
const DirName = ".deskclock"

// Config holds all application configuration
type Config struct {
	// Debug enables debug logging to stderr as well as the log file
	Debug bool `json:"debug"`

	Storage StorageConfig `json:"storage"`
	Window  WindowConfig  `json:"window"`
	Tray    TrayConfig    `json:"tray"`
	Input   InputConfig   `json:"input"`
}

// StorageConfig selects where the clock settings are kept
type StorageConfig struct {
	Backend string `json:"backend"` // "file" or "sqlite"
	Dir     string `json:"dir"`     // defaults to <config dir>/storage
}

// WindowConfig holds overlay window settings
type WindowConfig struct {
	Title       string `json:"title"`
	StartHidden bool   `json:"start_hidden"`
}

// TrayConfig holds system tray settings
type TrayConfig struct {
	IconPath string `json:"icon_path"` // empty renders the icon from the clock face
	Tooltip  string `json:"tooltip"`
}

// InputConfig holds pointer handling settings
type InputConfig struct {
	// FollowIntervalMs is how often the cursor is polled while the
	// window ignores mouse input
	FollowIntervalMs int `json:"follow_interval_ms"`
}

// FollowInterval returns the cursor polling interval, at least 10ms.
func (c InputConfig) FollowInterval() time.Duration {
	if c.FollowIntervalMs < 10 {
		return 10 * time.Millisecond
	}
	return time.Duration(c.FollowIntervalMs) * time.Millisecond
}

// Service manages configuration persistence
type Service struct {
	config   *Config
	filePath string
}

// New creates a new config service
func New() (*Service, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	return NewAt(filepath.Join(homeDir, DirName))
}

// NewAt creates a config service rooted at configDir
func NewAt(configDir string) (*Service, error) {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, "config.json")

	service := &Service{
		filePath: configPath,
		config:   getDefaultConfig(),
	}

	// Load existing config if it exists, otherwise create a default config file
	if _, err := os.Stat(configPath); err == nil {
		if err := service.Load(); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	} else {
		if err := service.Save(); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	return service, nil
}

// getDefaultConfig returns the default configuration
func getDefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: "file",
		},
		Window: WindowConfig{
			Title: "Desktop Clock",
		},
		Tray: TrayConfig{
			Tooltip: "Desktop Clock - Click to toggle visibility",
		},
		Input: InputConfig{
			FollowIntervalMs: 30,
		},
	}
}

// Get returns the current configuration
func (s *Service) Get() *Config {
	return s.config
}

// Load loads configuration from file
func (s *Service) Load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, s.config)
}

// Save saves configuration to file
func (s *Service) Save() error {
	data, err := json.MarshalIndent(s.config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.filePath, data, 0644)
}

// Path returns the full path to the configuration file
func (s *Service) Path() string {
	return s.filePath
}

// Dir returns the directory holding the configuration file
func (s *Service) Dir() string {
	return filepath.Dir(s.filePath)
}

// StorageDir returns the directory for the settings storage
func (s *Service) StorageDir() string {
	if s.config.Storage.Dir != "" {
		return s.config.Storage.Dir
	}
	return filepath.Join(s.Dir(), "storage")
}
