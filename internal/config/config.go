package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultOutput      = "text"
	DefaultCacheSize   = 64
	DefaultIndexSuffix = ".idx.sqlite"
)

type Config struct {
	Output    string      `yaml:"output"`
	CacheSize int         `yaml:"cache_size"`
	Index     IndexConfig `yaml:"index"`
	Reads     ReadsConfig `yaml:"reads"`
	Quiet     bool        `yaml:"quiet"`
	Verbose   bool        `yaml:"verbose"`
}

type IndexConfig struct {
	// Sidecar enables the persisted index; unset means enabled.
	Sidecar *bool  `yaml:"sidecar"`
	Suffix  string `yaml:"suffix"`
}

type ReadsConfig struct {
	FASTA []string `yaml:"fasta"`
}

// Default is the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	applyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	if cfg.CacheSize == 0 {
		cfg.CacheSize = DefaultCacheSize
	}
	if cfg.Index.Sidecar == nil {
		on := true
		cfg.Index.Sidecar = &on
	}
	if cfg.Index.Suffix == "" {
		cfg.Index.Suffix = DefaultIndexSuffix
	}
}

// Validate checks values after defaults were applied.
func (c *Config) Validate() error {
	switch c.Output {
	case "text", "tsv", "json", "jsonl", "fasta":
	default:
		return fmt.Errorf("output %q: want text | tsv | json | jsonl | fasta", c.Output)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("cache_size must be >= 0 (got %d)", c.CacheSize)
	}
	if c.Quiet && c.Verbose {
		return fmt.Errorf("quiet and verbose are mutually exclusive")
	}
	return nil
}

// UseSidecar reports whether indexes are persisted next to the ASM file.
func (c *Config) UseSidecar() bool { return c.Index.Sidecar == nil || *c.Index.Sidecar }
