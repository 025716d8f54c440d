// Package config holds the isagen command line configuration and the pipeline shared by the commands:
// loading the instruction set, building the decode table and setting up logging.
package config

import (
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/Manu343726/isagen/pkg/isa/catalogue"
	"github.com/Manu343726/isagen/pkg/isa/decoder"
	"github.com/Manu343726/isagen/pkg/isa/instructions"
	"github.com/Manu343726/isagen/pkg/isa/riscv"
	"github.com/Manu343726/isagen/pkg/logging"
	"github.com/Manu343726/isagen/pkg/utils"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// Configuration keys, shared by the config file, ISAGEN_* environment variables and flags
const (
	KeyFeatures    = "features"
	KeyLoadLatency = "load-latency"
	KeyCatalogue   = "catalogue"
	KeyHeaderFile  = "header-file"
	KeySourceFile  = "source-file"
	KeyLogLevel    = "log-level"
	KeyLogFile     = "log-file"
)

// Prefix of the environment variables read by viper
const EnvPrefix = "ISAGEN"

// Filesystem used by the commands
var Fs afero.Fs = afero.NewOsFs()

type Config struct {
	Features []string `mapstructure:"features"`
	// Latency of registers written by loads
	LoadLatency int `mapstructure:"load-latency"`
	// YAML catalogue replacing the built-in RISC-V instruction set
	Catalogue  string `mapstructure:"catalogue"`
	HeaderFile string `mapstructure:"header-file"`
	SourceFile string `mapstructure:"source-file"`
	LogLevel   string `mapstructure:"log-level"`
	LogFile    string `mapstructure:"log-file"`
}

// Sets the default value of every configuration key
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyFeatures, []string{})
	v.SetDefault(KeyLoadLatency, decoder.DefaultLoadLatency)
	v.SetDefault(KeyCatalogue, "")
	v.SetDefault(KeyHeaderFile, "")
	v.SetDefault(KeySourceFile, "")
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFile, "")
}

// Makes viper read every key from its ISAGEN_* environment variable, e.g. ISAGEN_LOAD_LATENCY
func BindEnvironment(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// Reads the configuration from viper
func FromViper(v *viper.Viper) (*Config, error) {
	var config Config

	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if config.LoadLatency < 0 {
		return nil, utils.MakeError(decoder.ErrInvalidLatency, "load latency must not be negative, got %v", config.LoadLatency)
	}

	return &config, nil
}

// Returns the enabled features
func (c *Config) FeatureSet() instructions.Features {
	return instructions.NewFeatures(c.Features...)
}

// Creates the logger configured by the log level and log file. The returned closer must be closed once
// logging is done
func (c *Config) Logger() (*slog.Logger, io.Closer, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	options := logging.Options{Level: level}
	closer := io.Closer(nopCloser{})

	if c.LogFile != "" {
		file, err := logging.OpenFile(Fs, c.LogFile)
		if err != nil {
			return nil, nil, err
		}

		options.File = file
		closer = file
	}

	return logging.New(options), closer, nil
}

// Reads the configuration and creates its logger. The returned closer must be closed once logging is done
func Setup(v *viper.Viper) (*Config, *slog.Logger, io.Closer, error) {
	config, err := FromViper(v)
	if err != nil {
		return nil, nil, nil, err
	}

	logger, closer, err := config.Logger()
	if err != nil {
		return nil, nil, nil, err
	}

	return config, logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error {
	return nil
}

// Returns the instruction set to work with: the catalogue file if one is configured, the built-in
// RISC-V instruction set otherwise
func (c *Config) InstructionSet() (*instructions.InstructionSet, error) {
	if c.Catalogue == "" {
		return riscv.ISA(), nil
	}

	return catalogue.LoadFile(Fs, c.Catalogue)
}

// Returns the decode table builder settings. The load latency replaces the default load policy
func (c *Config) DecoderSettings(logger *slog.Logger) decoder.Settings {
	settings := decoder.DefaultSettings()
	settings.Logger = logger

	for i, policy := range settings.LatencyPolicies {
		if policy.Tag == riscv.TagLoad {
			settings.LatencyPolicies[i].Latency = c.LoadLatency
		}
	}

	return settings
}

// Loads the instruction set and compiles the decode table of the enabled features
func (c *Config) BuildTable(logger *slog.Logger) (*decoder.Table, *instructions.InstructionSet, error) {
	set, err := c.InstructionSet()
	if err != nil {
		return nil, nil, err
	}

	table, err := decoder.NewBuilder(c.DecoderSettings(logger)).Build(set, c.FeatureSet())
	if err != nil {
		return nil, set, err
	}

	return table, set, nil
}

// Returns true if the error comes from an invalid instruction set rather than from the environment
func IsValidationError(err error) bool {
	return errors.Is(err, decoder.ErrAmbiguousEncoding) ||
		errors.Is(err, decoder.ErrInvalidLatency) ||
		errors.Is(err, instructions.ErrDuplicateMnemonic) ||
		errors.Is(err, instructions.ErrUnresolvedAlias) ||
		errors.Is(err, instructions.ErrWidthMismatch) ||
		errors.Is(err, instructions.ErrAliasConflict) ||
		errors.Is(err, instructions.ErrUnknownFormat) ||
		errors.Is(err, catalogue.ErrInvalidCatalogue)
}
