package config

import (
	"fmt"
	"strconv"
)

type keyType int

const (
	kString keyType = iota
	kInt
)

type keySpec struct {
	key     string
	typ     keyType
	envs    []string // first non-empty wins
	apply   func(cfg *Config, v any)
	extract func(cfg Config) any
}

var specs = []keySpec{
	{
		key: "server.port", typ: kInt, envs: []string{"WEAVE_SERVER_PORT", "PORT"},
		apply:   func(cfg *Config, v any) { cfg.Server.Port = v.(int) },
		extract: func(cfg Config) any { return cfg.Server.Port },
	},
	{
		key: "server.host", typ: kString, envs: []string{"WEAVE_SERVER_HOST", "HOST"},
		apply:   func(cfg *Config, v any) { cfg.Server.Host = v.(string) },
		extract: func(cfg Config) any { return cfg.Server.Host },
	},
	{
		key: "static.public_dir", typ: kString, envs: []string{"WEAVE_PUBLIC_DIR"},
		apply:   func(cfg *Config, v any) { cfg.Static.PublicDir = v.(string) },
		extract: func(cfg Config) any { return cfg.Static.PublicDir },
	},
	{
		key: "log.level", typ: kString, envs: []string{"WEAVE_LOG_LEVEL"},
		apply:   func(cfg *Config, v any) { cfg.Log.Level = v.(string) },
		extract: func(cfg Config) any { return cfg.Log.Level },
	},
	{
		key: "storage.data_dir", typ: kString, envs: []string{"WEAVE_DATA_DIR"},
		apply:   func(cfg *Config, v any) { cfg.Storage.DataDir = v.(string) },
		extract: func(cfg Config) any { return cfg.Storage.DataDir },
	},
}

func applyEnvOverrides(cfg *Config, getenv func(string) string) {
	for _, s := range specs {
		for _, env := range s.envs {
			raw := getenv(env)
			if raw == "" {
				continue
			}
			switch s.typ {
			case kString:
				s.apply(cfg, raw)
			case kInt:
				if i, err := strconv.Atoi(raw); err == nil {
					s.apply(cfg, i)
				}
			}
			break
		}
	}
}

// KeyInfo describes a config key for display purposes.
type KeyInfo struct {
	Key    string
	EnvVar string
	Value  string
}

// ShowAll returns all config key/value pairs from the current config.
func ShowAll(cfg Config) []KeyInfo {
	var result []KeyInfo
	for _, s := range specs {
		result = append(result, KeyInfo{
			Key:    s.key,
			EnvVar: s.envs[0],
			Value:  fmt.Sprintf("%v", s.extract(cfg)),
		})
	}
	return result
}
