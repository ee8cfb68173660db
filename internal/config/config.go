package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	DefaultPort               = 3001
	DefaultUploadsDir         = "uploads"
	DefaultClientDir          = "client"
	DefaultLogLevel           = "info"
	DefaultMaxBodyBytes       = 1 << 20  // 1 MiB
	DefaultUploadMaxBodyBytes = 32 << 20 // 32 MiB

	configFileName  = ".epichub.toml"
	configDirEnvKey = "EPICHUB_CONFIG_DIR"

	portEnvKey       = "PORT"
	uploadsDirEnvKey = "EPICHUB_UPLOADS_DIR"
	clientDirEnvKey  = "EPICHUB_CLIENT_DIR"
	apiURLEnvKey     = "EPICHUB_API_URL"
	seedPathEnvKey   = "EPICHUB_SEED"
)

// Config defines runtime configuration for epichub.
type Config struct {
	Port               int    `toml:"port"`
	UploadsDir         string `toml:"uploads_dir"`
	ClientDir          string `toml:"client_dir"`
	MaxBodyBytes       int64  `toml:"max_body_bytes"`
	UploadMaxBodyBytes int64  `toml:"upload_max_body_bytes"`
	LogLevel           string `toml:"log_level"`
	SeedPath           string `toml:"seed_path"`
	APIURL             string `toml:"api_url"`
}

// Default returns default configuration values.
func Default() Config {
	return Config{
		Port:               DefaultPort,
		UploadsDir:         DefaultUploadsDir,
		ClientDir:          DefaultClientDir,
		MaxBodyBytes:       DefaultMaxBodyBytes,
		UploadMaxBodyBytes: DefaultUploadMaxBodyBytes,
		LogLevel:           DefaultLogLevel,
	}
}

// ListenAddr returns the address the server binds to.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// BaseURL returns the API base URL the CLI client talks to.
func (c *Config) BaseURL() string {
	if c.APIURL != "" {
		return c.APIURL
	}
	return fmt.Sprintf("http://127.0.0.1:%d", c.Port)
}

// Load reads config from the config file (if present) and applies env
// overrides on top of defaults.
func Load() (*Config, error) {
	cfg := Default()

	path, err := Path()
	if err != nil {
		return nil, err
	}
	if err := loadFileIfExists(path, &cfg); err != nil {
		return nil, err
	}

	if raw := strings.TrimSpace(os.Getenv(portEnvKey)); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil || port <= 0 || port > 65535 {
			return nil, fmt.Errorf("invalid %s=%q", portEnvKey, raw)
		}
		cfg.Port = port
	}
	if dir := strings.TrimSpace(os.Getenv(uploadsDirEnvKey)); dir != "" {
		cfg.UploadsDir = dir
	}
	if dir := strings.TrimSpace(os.Getenv(clientDirEnvKey)); dir != "" {
		cfg.ClientDir = dir
	}
	if apiURL := strings.TrimSpace(os.Getenv(apiURLEnvKey)); apiURL != "" {
		cfg.APIURL = apiURL
	}
	if seed := strings.TrimSpace(os.Getenv(seedPathEnvKey)); seed != "" {
		cfg.SeedPath = seed
	}

	cfg.normalize()
	return &cfg, nil
}

// Path returns the config file location: EPICHUB_CONFIG_DIR if set,
// otherwise the current working directory.
func Path() (string, error) {
	if dir := strings.TrimSpace(os.Getenv(configDirEnvKey)); dir != "" {
		return filepath.Join(dir, configFileName), nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, configFileName), nil
}

func loadFileIfExists(path string, cfg *Config) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if info.IsDir() {
		return nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) normalize() {
	if c.Port <= 0 {
		c.Port = DefaultPort
	}
	if strings.TrimSpace(c.UploadsDir) == "" {
		c.UploadsDir = DefaultUploadsDir
	}
	if strings.TrimSpace(c.ClientDir) == "" {
		c.ClientDir = DefaultClientDir
	}
	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if c.UploadMaxBodyBytes <= 0 {
		c.UploadMaxBodyBytes = DefaultUploadMaxBodyBytes
	}
	if strings.TrimSpace(c.LogLevel) == "" {
		c.LogLevel = DefaultLogLevel
	}
}
