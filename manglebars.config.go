package manglebars

import (
	"strconv"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config is the file form of the engine options, as read from YAML.
//
//	max_depth: 50
//	nesting_aware: true
//	body_cache_size: 128
//	log_level: debug
type Config struct {
	MaxDepth      int    `yaml:"max_depth" json:"max_depth"`
	NestingAware  bool   `yaml:"nesting_aware" json:"nesting_aware"`
	BodyCacheSize int    `yaml:"body_cache_size" json:"body_cache_size"`
	LogLevel      string `yaml:"log_level" json:"log_level"`
}

// DefaultConfig returns the configuration matching an engine built with no options.
func DefaultConfig() Config {
	return Config{
		MaxDepth:      DefaultMaxDepth,
		NestingAware:  DefaultNestingAware,
		BodyCacheSize: DefaultBodyCacheSize,
		LogLevel:      LogLevelOff,
	}
}

// ParseConfig decodes YAML configuration. Keys absent from data keep their defaults.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, NewConfigDecodeError(err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that every value is in range.
func (c *Config) Validate() error {
	if c.MaxDepth < 0 {
		return NewConfigError(ErrMsgNegativeMaxDepth, ConfigKeyMaxDepth, strconv.Itoa(c.MaxDepth))
	}
	if c.BodyCacheSize < 0 {
		return NewConfigError(ErrMsgNegativeCache, ConfigKeyBodyCacheSize, strconv.Itoa(c.BodyCacheSize))
	}
	if c.LogLevel != LogLevelOff {
		if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
			return NewConfigError(ErrMsgInvalidLogLevel, ConfigKeyLogLevel, c.LogLevel)
		}
	}
	return nil
}

// Options converts the configuration into engine options.
// A non-empty LogLevel builds a development logger writing to stderr at that level.
func (c *Config) Options() ([]Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	opts := []Option{
		WithMaxDepth(c.MaxDepth),
		WithNestingAware(c.NestingAware),
		WithBodyCache(c.BodyCacheSize),
	}

	if c.LogLevel != LogLevelOff {
		level, _ := zapcore.ParseLevel(c.LogLevel)
		zapCfg := zap.NewDevelopmentConfig()
		zapCfg.Level = zap.NewAtomicLevelAt(level)
		logger, err := zapCfg.Build()
		if err != nil {
			return nil, NewConfigDecodeError(err)
		}
		opts = append(opts, WithLogger(logger))
	}

	return opts, nil
}
