// Package config loads the nbtkit command line configuration.
//
// Configuration comes from one optional YAML file passed with --config.
// Without a file the defaults apply: big-endian is assumed when reading,
// the byte order retry is on, and packed files are gzipped big-endian
// except .mcstructure files, which Bedrock stores raw and little-endian.
//
//	endianness: big
//	retry: true
//	log_level: info
//	rules:
//	  - extension: .mcstructure
//	    endianness: little
//	    gzip: false
//	  - extension: .dat
//	    gzip: true
//
// A rules list in the file replaces the default rules.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/nbtkit/format"
)

// Config is the CLI configuration.
type Config struct {
	// Endianness is the byte order assumed first when decoding: big or little.
	Endianness string `yaml:"endianness"`

	// Retry enables the opposite-byte-order retry when decoding.
	Retry bool `yaml:"retry"`

	// LogLevel is debug, info, warn or error. The -v flag overrides it.
	LogLevel string `yaml:"log_level"`

	// ModifiedUTF8 writes strings as Java modified UTF-8 when packing.
	ModifiedUTF8 bool `yaml:"modified_utf8"`

	// Rules select output framing by file extension when packing.
	Rules []Rule `yaml:"rules"`
}

// Rule is the output framing for one file extension.
type Rule struct {
	// Extension includes the leading dot and matches case-insensitively.
	Extension string `yaml:"extension"`

	// Endianness is big or little. Empty means big.
	Endianness string `yaml:"endianness,omitempty"`

	// Gzip wraps the output in gzip. Nil means true.
	Gzip *bool `yaml:"gzip,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	noGzip := false

	return &Config{
		Endianness: "big",
		Retry:      true,
		LogLevel:   "warn",
		Rules: []Rule{
			{Extension: ".mcstructure", Endianness: "little", Gzip: &noGzip},
		},
	}
}

// LoadFile loads configuration from path on top of the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every enumerated field.
func (c *Config) Validate() error {
	if _, err := ParseEndianness(c.Endianness); err != nil {
		return err
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	for i, r := range c.Rules {
		if !strings.HasPrefix(r.Extension, ".") {
			return fmt.Errorf("rule %d: extension %q must start with a dot", i, r.Extension)
		}
		if r.Endianness != "" {
			if _, err := ParseEndianness(r.Endianness); err != nil {
				return fmt.Errorf("rule %d: %w", i, err)
			}
		}
	}

	return nil
}

// AssumedEndianness returns the configured first-guess byte order.
func (c *Config) AssumedEndianness() format.Endianness {
	e, err := ParseEndianness(c.Endianness)
	if err != nil {
		return format.BigEndian
	}

	return e
}

// Level returns the configured log level, warn when unset or invalid.
func (c *Config) Level() slog.Level {
	l, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelWarn
	}

	return l
}

// Framing returns the byte order and gzip setting for writing path.
// Paths matching no rule are gzipped big-endian.
func (c *Config) Framing(path string) (format.Endianness, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, r := range c.Rules {
		if strings.ToLower(r.Extension) != ext {
			continue
		}

		order := format.BigEndian
		if r.Endianness != "" {
			order, _ = ParseEndianness(r.Endianness)
		}
		gzip := r.Gzip == nil || *r.Gzip

		return order, gzip
	}

	return format.BigEndian, true
}

// ParseEndianness parses "big" or "little". Empty means big.
func ParseEndianness(s string) (format.Endianness, error) {
	switch strings.ToLower(s) {
	case "", "big", "be":
		return format.BigEndian, nil
	case "little", "le":
		return format.LittleEndian, nil
	default:
		return 0, fmt.Errorf("invalid endianness %q: want big or little", s)
	}
}

func parseLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelWarn, nil
	}

	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}

	return l, nil
}
