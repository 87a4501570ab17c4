package app

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

const (
	defaultHome        = "~/.blackipher"
	defaultSessionFile = "session.json"
	defaultLocalUser   = "katpercent"
	defaultOneTimeKeys = 4
	defaultLogLevel    = "info"
	configFileName     = "config.yaml"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home               string   // state directory, e.g. ~/.blackipher
	SessionFile        string   // relative to Home unless absolute
	LocalUser          string   // name of the sending identity
	Contacts           []string // demo contacts generated at startup
	OneTimeKeys        int      // one-time pre-keys per identity
	StrictSignedPreKey bool     // refuse to seal to unverified signed pre-keys
	LogLevel           string   // debug|info|warn|error
}

// fileConfig is the YAML layout. Pointer fields distinguish unset from zero.
type fileConfig struct {
	Home               string   `yaml:"home"`
	SessionFile        string   `yaml:"session_file"`
	LocalUser          string   `yaml:"local_user"`
	Contacts           []string `yaml:"contacts"`
	OneTimeKeys        *int     `yaml:"one_time_keys"`
	StrictSignedPreKey *bool    `yaml:"strict_signed_prekey"`
	LogLevel           string   `yaml:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		Home:        defaultHome,
		SessionFile: defaultSessionFile,
		LocalUser:   defaultLocalUser,
		Contacts:    []string{"alice", "bob"},
		OneTimeKeys: defaultOneTimeKeys,
		LogLevel:    defaultLogLevel,
	}
}

// LoadConfig builds a Config from defaults, the YAML file at path and the
// environment, in that order. An empty path means ~/.blackipher/config.yaml.
// A missing or malformed file is ignored.
func LoadConfig(path string) Config {
	cfg := DefaultConfig()

	if path == "" {
		if home, err := homedir.Expand(defaultHome); err == nil {
			path = filepath.Join(home, configFileName)
		}
	}
	if path != "" {
		if data, err := os.ReadFile(path); err == nil {
			var parsed fileConfig
			if err := yaml.Unmarshal(data, &parsed); err == nil {
				merge(&cfg, parsed)
			}
		}
	}

	ApplyEnvOverrides(&cfg)
	return cfg
}

func merge(dst *Config, src fileConfig) {
	if src.Home != "" {
		dst.Home = src.Home
	}
	if src.SessionFile != "" {
		dst.SessionFile = src.SessionFile
	}
	if src.LocalUser != "" {
		dst.LocalUser = src.LocalUser
	}
	if src.Contacts != nil {
		dst.Contacts = src.Contacts
	}
	if src.OneTimeKeys != nil {
		dst.OneTimeKeys = *src.OneTimeKeys
	}
	if src.StrictSignedPreKey != nil {
		dst.StrictSignedPreKey = *src.StrictSignedPreKey
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
}

func ApplyEnvOverrides(cfg *Config) {
	if v := env("BLACKIPHER_HOME"); v != "" {
		cfg.Home = v
	}
	if v := env("BLACKIPHER_SESSION_FILE"); v != "" {
		cfg.SessionFile = v
	}
	if v := env("BLACKIPHER_LOCAL_USER"); v != "" {
		cfg.LocalUser = v
	}
	if v := env("BLACKIPHER_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := env("BLACKIPHER_STRICT_SPK"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.StrictSignedPreKey = b
		}
	}
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

// HomeDir returns Home with a leading ~ expanded.
func (c Config) HomeDir() (string, error) {
	return homedir.Expand(c.Home)
}

// SessionPath resolves SessionFile against HomeDir.
func (c Config) SessionPath() (string, error) {
	file, err := homedir.Expand(c.SessionFile)
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(file) {
		return file, nil
	}
	home, err := c.HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, file), nil
}
