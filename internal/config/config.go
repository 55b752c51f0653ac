package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const (
	DefaultProfile      = "default"
	DefaultLoginCommand = "aws"
	DefaultLogLevel     = "warn"

	EnvAWSDir       = "SSOCREDS_AWS_DIR"
	EnvLoginCommand = "SSOCREDS_LOGIN_COMMAND"
	EnvLogLevel     = "SSOCREDS_LOG_LEVEL"
	EnvAWSProfile   = "AWS_PROFILE"
)

var ErrNoConfigFile = errors.New("no config file found")

// Settings is the on-disk shape of ~/.config/ssocreds/config.yaml.
type Settings struct {
	AWSDir         string `yaml:"awsDir" json:"awsDir"`
	LoginCommand   string `yaml:"loginCommand" json:"loginCommand"`
	LogLevel       string `yaml:"logLevel" json:"logLevel"`
	DefaultProfile string `yaml:"defaultProfile" json:"defaultProfile"`
}

type Config struct {
	// BaseDir holds config, credentials and sso/cache.
	BaseDir        string
	LoginCommand   string
	LogLevel       string
	DefaultProfile string
	SettingsDir    string
}

// NewConfig resolves settings from the environment, the optional settings file and defaults,
// in that order of precedence.
func NewConfig(fs afero.Fs) (*Config, error) {
	userHome, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}

	cfg := &Config{
		SettingsDir: filepath.Join(userHome, ".config", "ssocreds"),
	}

	fileSettings, err := loadSettingsFile(fs, cfg.SettingsDir)
	if err != nil && !errors.Is(err, ErrNoConfigFile) {
		return nil, err
	}
	if fileSettings == nil {
		fileSettings = &Settings{}
	}

	cfg.BaseDir = firstNonEmpty(os.Getenv(EnvAWSDir), expandHome(fileSettings.AWSDir, userHome), filepath.Join(userHome, ".aws"))
	cfg.LoginCommand = firstNonEmpty(os.Getenv(EnvLoginCommand), fileSettings.LoginCommand, DefaultLoginCommand)
	cfg.LogLevel = firstNonEmpty(os.Getenv(EnvLogLevel), fileSettings.LogLevel, DefaultLogLevel)
	cfg.DefaultProfile = firstNonEmpty(os.Getenv(EnvAWSProfile), fileSettings.DefaultProfile, DefaultProfile)

	return cfg, nil
}

func loadSettingsFile(fs afero.Fs, dir string) (*Settings, error) {
	path, err := FindConfigFile(fs, dir)
	if err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return &settings, nil
}

// FindConfigFile returns the first settings file present in dir.
func FindConfigFile(fs afero.Fs, dir string) (string, error) {
	names := []string{"config.yml", "config.yaml"}

	for _, name := range names {
		possiblePath := filepath.Join(dir, name)
		ok, err := afero.Exists(fs, possiblePath)
		if err != nil {
			return "", fmt.Errorf("failed to stat %s: %w", possiblePath, err)
		}
		if ok {
			return possiblePath, nil
		}
	}

	return "", ErrNoConfigFile
}

// ConfigPath is the shared AWS config file.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.BaseDir, "config")
}

// CredentialsPath is the shared AWS credentials file.
func (c *Config) CredentialsPath() string {
	return filepath.Join(c.BaseDir, "credentials")
}

// TokenCacheDir is where `aws sso login` leaves access tokens.
func (c *Config) TokenCacheDir() string {
	return filepath.Join(c.BaseDir, "sso", "cache")
}

func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if len(path) > 1 && path[0] == '~' && (path[1] == '/' || path[1] == filepath.Separator) {
		return filepath.Join(home, path[2:])
	}
	return path
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
