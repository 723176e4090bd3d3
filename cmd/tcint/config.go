package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/rmera/tcint/threec"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the settings of a run. They can come, in increasing order
// of priority, from the defaults, a YAML config file, TCINT_* environment
// variables and the command line flags.
type Config struct {
	Geometry      string  `mapstructure:"geometry"`
	Basis         string  `mapstructure:"basis"`
	Aux           string  `mapstructure:"aux"`
	Out           string  `mapstructure:"out"`
	Accuracy      float64 `mapstructure:"accuracy"`
	Cpus          int     `mapstructure:"cpus"`
	Orthogonalize bool    `mapstructure:"orthogonalize"`
	Eps           float64 `mapstructure:"eps"`
	Plot          string  `mapstructure:"plot"`
	Verbose       bool    `mapstructure:"verbose"`
	Bohr          bool    `mapstructure:"bohr"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("out", "tensor.zst")
	v.SetDefault("accuracy", threec.DefaultAccuracy)
	v.SetDefault("cpus", runtime.NumCPU())
	v.SetDefault("eps", 1e-8)
}

// loadConfig builds the configuration from the flags in fs, the config file
// (if configFile is not empty) and the environment.
func loadConfig(fs *pflag.FlagSet, configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}
	v.SetEnvPrefix("TCINT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validateConfig(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func validateConfig(c *Config) error {
	switch {
	case c.Geometry == "":
		return fmt.Errorf("a geometry file is required")
	case c.Basis == "":
		return fmt.Errorf("an orbital basis set file is required")
	case c.Aux == "":
		return fmt.Errorf("an auxiliary basis set file is required")
	case !(c.Accuracy > 0 && c.Accuracy < 1):
		return fmt.Errorf("accuracy must be between 0 and 1, got %g", c.Accuracy)
	case c.Cpus < 1:
		return fmt.Errorf("cpus must be at least 1, got %d", c.Cpus)
	}
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}
