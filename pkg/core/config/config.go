package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/templa-lang/templa/foundation/core/error"
	mdwlog "github.com/templa-lang/templa/foundation/core/log"
)

// EnvConfigPath names the environment variable holding the config file path
const EnvConfigPath = "TEMPLA_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Parser  ParserConfig  `toml:"parser" yaml:"parser"`
	Dump    DumpConfig    `toml:"dump" yaml:"dump"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string `toml:"name" yaml:"name"`
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
	LogFile   string `toml:"log_file" yaml:"log_file"`
}

// ParserConfig holds parser limits
type ParserConfig struct {
	MaxInputLength int      `toml:"max_input_length" yaml:"max_input_length"`
	SlowThreshold  Duration `toml:"slow_threshold" yaml:"slow_threshold"`
}

// DumpConfig holds tree dump settings
type DumpConfig struct {
	Indent string `toml:"indent" yaml:"indent"`
	Color  bool   `toml:"color" yaml:"color"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration scalar
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: duration must be a scalar", value.Line)
	}
	return d.UnmarshalText([]byte(value.Value))
}

// MarshalYAML formats the duration as a string
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.Duration.String(), nil
}

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		code := mdwerror.CodeConfigError
		if errors.Is(err, os.ErrNotExist) {
			code = mdwerror.CodeNotFound
		}
		return nil, mdwerror.Wrap(err, "config file not readable").
			WithCode(code).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = decodeTOML(data, &cfg)
	case ".yaml", ".yml":
		err = decodeYAML(data, &cfg)
	default:
		err = mdwerror.Newf("unsupported config format %q", ext).
			WithCode(mdwerror.CodeConfigError)
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	// Apply defaults
	cfg.applyDefaults()

	// Expand environment variables in path fields
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		var merr *mdwerror.Error
		if errors.As(err, &merr) {
			merr.WithDetail("path", path)
		}
		return nil, err
	}

	return &cfg, nil
}

func decodeTOML(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// DefaultPaths lists the locations LoadFromEnv searches, in order
func DefaultPaths() []string {
	paths := []string{
		"./templa.toml",
		"./templa.yaml",
		"./configs/templa.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "templa", "config.toml"))
	}
	return paths
}

// LoadFromEnv loads configuration from the TEMPLA_CONFIG environment
// variable or the first existing default path
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		// Try default locations
		for _, p := range DefaultPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return nil, mdwerror.New("no config file found, set TEMPLA_CONFIG or create templa.toml").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("config.LoadFromEnv")
	}

	return Load(path)
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.Name == "" {
		c.General.Name = "templa"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "error"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	// Parser
	if c.Parser.MaxInputLength == 0 {
		c.Parser.MaxInputLength = 1 << 20
	}

	// Dump
	if c.Dump.Indent == "" {
		c.Dump.Indent = " "
	}
}

// expandEnvVars expands environment variables in configuration values
func (c *Config) expandEnvVars() {
	c.General.LogFile = os.ExpandEnv(c.General.LogFile)
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	var problems []string

	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		problems = append(problems, fmt.Sprintf("general.log_level: %v", err))
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		problems = append(problems, fmt.Sprintf("general.log_format: %v", err))
	}
	if c.Parser.MaxInputLength < 0 {
		problems = append(problems, fmt.Sprintf("parser.max_input_length: must not be negative, got %d", c.Parser.MaxInputLength))
	}
	if c.Parser.SlowThreshold.Duration < 0 {
		problems = append(problems, "parser.slow_threshold: must not be negative")
	}
	if strings.TrimLeft(c.Dump.Indent, " \t") != "" {
		problems = append(problems, fmt.Sprintf("dump.indent: only spaces and tabs allowed, got %q", c.Dump.Indent))
	}

	if len(problems) > 0 {
		return mdwerror.Newf("invalid configuration: %s", strings.Join(problems, "; ")).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Validate")
	}
	return nil
}

// Write encodes the configuration as "toml" or "yaml"
func (c *Config) Write(w io.Writer, format string) error {
	switch strings.ToLower(format) {
	case "toml":
		return toml.NewEncoder(w).Encode(c)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return err
		}
		return enc.Close()
	default:
		return mdwerror.Newf("unsupported config format %q", format).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("config.Write")
	}
}
