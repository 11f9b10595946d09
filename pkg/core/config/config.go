package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/cdhanna/fadebasic-sub000/foundation/core/error"
	mdwlog "github.com/cdhanna/fadebasic-sub000/foundation/core/log"
)

// Environment variables consulted by LoadFromEnv
const (
	EnvConfigPath = "FADEBASIC_CONFIG"
	EnvLogLevel   = "FADEBASIC_LOG_LEVEL"
)

// Config holds the complete fadebasic tool configuration
type Config struct {
	General  GeneralConfig  `toml:"general" yaml:"general"`
	Lexer    LexerConfig    `toml:"lexer" yaml:"lexer"`
	Parser   ParserConfig   `toml:"parser" yaml:"parser"`
	Commands CommandsConfig `toml:"commands" yaml:"commands"`
	Watch    WatchConfig    `toml:"watch" yaml:"watch"`

	// path of the file the configuration was read from, empty for defaults
	source string
}

// GeneralConfig holds logging settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// LexerConfig holds tokenizer limits
type LexerConfig struct {
	MaxSourceLength       int `toml:"max_source_length" yaml:"max_source_length"`
	MaxConstantExpansions int `toml:"max_constant_expansions" yaml:"max_constant_expansions"`
}

// ParserConfig holds parser behaviour
type ParserConfig struct {
	Recover        bool `toml:"recover" yaml:"recover"`
	MaxErrors      int  `toml:"max_errors" yaml:"max_errors"`
	SkipValidation bool `toml:"skip_validation" yaml:"skip_validation"`
}

// CommandsConfig lists command vocabulary files. Relative paths are
// resolved against the directory of the config file.
type CommandsConfig struct {
	Files []string `toml:"files" yaml:"files"`
}

// WatchConfig holds settings for `check --watch`
type WatchConfig struct {
	Debounce Duration `toml:"debounce" yaml:"debounce"`
}

// Duration is a wrapper for time.Duration that supports TOML and YAML string parsing
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	return d.UnmarshalText([]byte(value.Value))
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
		if os.IsNotExist(err) {
			return nil, mdwerror.Wrap(err, "config file not found").
				WithCode(mdwerror.CodeMissingConfig).
				WithOperation("config.Load").
				WithDetail("path", path)
		}
		return nil, mdwerror.Wrap(err, "failed to read config").
			WithCode(mdwerror.CodeIO).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg, err := Parse(data, Format(path))
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Load").
			WithDetail("path", path)
	}
	cfg.source = path
	cfg.resolvePaths(filepath.Dir(path))

	return cfg, nil
}

// Format returns "toml" or "yaml" for a config path. Unknown extensions
// are treated as TOML.
func Format(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "toml"
	}
}

// Parse decodes configuration data in the given format, applies defaults
// and validates the result
func Parse(data []byte, format string) (*Config, error) {
	var cfg Config
	switch format {
	case "yaml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	case "toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, mdwerror.Newf("unknown config key %q", undecoded[0].String()).
				WithCode(mdwerror.CodeInvalidConfig)
		}
	default:
		return nil, mdwerror.Newf("unsupported config format %q", format).
			WithCode(mdwerror.CodeInvalidConfig)
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads configuration from FADEBASIC_CONFIG or a default
// location. Without any file the defaults are returned. FADEBASIC_LOG_LEVEL
// overrides the configured level in both cases.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		// Try default locations
		defaultPaths := []string{
			"./fadebasic.toml",
			"./fadebasic.yaml",
			filepath.Join(os.Getenv("HOME"), ".config/fadebasic/config.toml"),
		}
		for _, p := range defaultPaths {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	cfg := Default()
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.General.LogLevel = level
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// Source returns the path the configuration was loaded from
func (c *Config) Source() string {
	return c.source
}

// Validate checks value ranges and enumerations
func (c *Config) Validate() error {
	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", c.General.LogLevel)
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", c.General.LogFormat)
	}
	if c.Lexer.MaxSourceLength < 0 {
		return invalid("lexer.max_source_length", c.Lexer.MaxSourceLength)
	}
	if c.Lexer.MaxConstantExpansions < 0 {
		return invalid("lexer.max_constant_expansions", c.Lexer.MaxConstantExpansions)
	}
	if c.Parser.MaxErrors < 0 {
		return invalid("parser.max_errors", c.Parser.MaxErrors)
	}
	if c.Watch.Debounce.Duration < 0 {
		return invalid("watch.debounce", c.Watch.Debounce.String())
	}
	return nil
}

func invalid(key string, value interface{}) error {
	return mdwerror.Newf("invalid value for %s: %v", key, value).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("key", key)
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General defaults
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	// Lexer defaults
	if c.Lexer.MaxSourceLength == 0 {
		c.Lexer.MaxSourceLength = 1 << 20
	}
	if c.Lexer.MaxConstantExpansions == 0 {
		c.Lexer.MaxConstantExpansions = 32
	}

	// Parser defaults
	if c.Parser.MaxErrors == 0 {
		c.Parser.MaxErrors = 50
	}

	// Watch defaults
	if c.Watch.Debounce.Duration == 0 {
		c.Watch.Debounce.Duration = 200 * time.Millisecond
	}
}

// expandEnvVars expands environment variables in path fields
func (c *Config) expandEnvVars() {
	for i, f := range c.Commands.Files {
		c.Commands.Files[i] = os.ExpandEnv(f)
	}
}

func (c *Config) resolvePaths(dir string) {
	for i, f := range c.Commands.Files {
		if !filepath.IsAbs(f) {
			c.Commands.Files[i] = filepath.Join(dir, f)
		}
	}
}
