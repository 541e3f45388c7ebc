package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file read when no path is given.
const DefaultPath = "pmx-registry.yaml"

// Persistence backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

type Config struct {
	ListenAddress         string      `yaml:"listen_address"`
	Port                  string      `yaml:"port"`
	LogLevel              string      `yaml:"log_level"`               // debug | info | warn | error
	MaxConcurrentRequests int         `yaml:"max_concurrent_requests"` // 0 disables the limit
	Persistence           Persistence `yaml:"persistence"`
}

type Persistence struct {
	Backend        string        `yaml:"backend"`         // file | redis
	InputsPath     string        `yaml:"inputs_path"`     // file path, or redis key suffix
	OutputsPath    string        `yaml:"outputs_path"`    // file path, or redis key suffix
	CoalesceWindow time.Duration `yaml:"coalesce_window"` // extra settle time before each write
	Redis          Redis         `yaml:"redis"`
}

type Redis struct {
	Address   string `yaml:"address"`
	DB        int    `yaml:"db"`
	KeyPrefix string `yaml:"key_prefix"`
}

// Defaults returns the configuration used when no file is present.
func Defaults() Config {
	return Config{
		ListenAddress:         "127.0.0.1",
		Port:                  "50001",
		LogLevel:              "debug",
		MaxConcurrentRequests: 64,
		Persistence: Persistence{
			Backend:     BackendFile,
			InputsPath:  "pmx_registry_inputs.json",
			OutputsPath: "pmx_registry_outputs.json",
			Redis: Redis{
				Address:   "localhost:6379",
				KeyPrefix: "pmx:registry:",
			},
		},
	}
}

// Load reads path on top of Defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Port == "" {
		return errors.New("port must be set")
	}
	if c.MaxConcurrentRequests < 0 {
		return errors.New("max_concurrent_requests must be >= 0")
	}

	p := c.Persistence
	switch p.Backend {
	case BackendFile:
	case BackendRedis:
		if p.Redis.Address == "" {
			return errors.New("persistence.redis.address must be set for the redis backend")
		}
	default:
		return fmt.Errorf("unknown persistence.backend %q", p.Backend)
	}
	if p.InputsPath == "" || p.OutputsPath == "" {
		return errors.New("persistence.inputs_path and persistence.outputs_path must be set")
	}
	if p.InputsPath == p.OutputsPath {
		return errors.New("persistence.inputs_path and persistence.outputs_path must differ")
	}
	if p.CoalesceWindow < 0 {
		return errors.New("persistence.coalesce_window must be >= 0")
	}
	return nil
}

// Addr is the HTTP listen address.
func (c Config) Addr() string { return c.ListenAddress + ":" + c.Port }
