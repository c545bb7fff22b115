package config

import (
	"os"
	"path/filepath"
)

type Config struct {
	Server  ServerConfig
	Static  StaticConfig
	Log     LogConfig
	Storage StorageConfig
}

type ServerConfig struct {
	Port int
	Host string
}

type StaticConfig struct {
	// PublicDir is the directory browser assets are served from.
	PublicDir string
}

type LogConfig struct {
	Level string
}

type StorageConfig struct {
	// DataDir holds runtime files (the PID file). Entity state itself is
	// memory-resident and lost on restart.
	DataDir string
}

func defaults() Config {
	return Config{
		Server: ServerConfig{
			Port: 3000,
			Host: "0.0.0.0",
		},
		Static: StaticConfig{
			PublicDir: "public",
		},
		Log: LogConfig{
			Level: "info",
		},
		Storage: StorageConfig{
			DataDir: defaultDataDir(),
		},
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".weave"
	}
	return filepath.Join(home, ".weave")
}

// Load returns the effective configuration: defaults overridden by WEAVE_*
// environment variables. The bare PORT and HOST variables are honored too,
// for parity with how the service has historically been deployed.
func Load() Config {
	cfg := defaults()
	applyEnvOverrides(&cfg, os.Getenv)
	return cfg
}
