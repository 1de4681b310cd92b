// Package config loads tributary configuration via viper.
// Precedence: command-line flags > TRIBUTARY_* environment variables >
// tributary.yaml in the working directory > built-in defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all tributary configuration.
type Config struct {
	Inputs  InputsConfig
	Output  OutputConfig
	Logging LoggingConfig
}

// InputsConfig names the two record collections to reconcile.
type InputsConfig struct {
	First  string
	Second string
}

// OutputConfig holds output destination settings.
type OutputConfig struct {
	// Path of the result file; "-" writes the array to stdout instead.
	Path string
	// Echo additionally prints the result to stdout when writing to a file.
	Echo bool
}

// LoggingConfig holds diagnostics settings.
type LoggingConfig struct {
	Level  string // "debug", "info", "warn", "error"
	Format string // "console" or "json"
}

// Defaults mirror the fixed filenames of the original tool.
const (
	DefaultFirstInput  = "data-1.json"
	DefaultSecondInput = "data-2.json"
	DefaultOutput      = "data-result.json"
)

// Load builds a Config. The flag set may be nil when no CLI is involved
// (e.g. in tests); an optional config file named tributary.yaml is picked up
// from the working directory if present.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	v.SetDefault("inputs.first", DefaultFirstInput)
	v.SetDefault("inputs.second", DefaultSecondInput)
	v.SetDefault("output.path", DefaultOutput)
	v.SetDefault("output.echo", false)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetEnvPrefix("TRIBUTARY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("tributary")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read tributary.yaml: %w", err)
		}
	}

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return Config{}, err
		}
	}

	return Config{
		Inputs: InputsConfig{
			First:  v.GetString("inputs.first"),
			Second: v.GetString("inputs.second"),
		},
		Output: OutputConfig{
			Path: v.GetString("output.path"),
			Echo: v.GetBool("output.echo"),
		},
		Logging: LoggingConfig{
			Level:  v.GetString("logging.level"),
			Format: v.GetString("logging.format"),
		},
	}, nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	bindings := map[string]string{
		"inputs.first":   "first",
		"inputs.second":  "second",
		"output.path":    "output",
		"output.echo":    "echo",
		"logging.level":  "log-level",
		"logging.format": "log-format",
	}
	for key, flag := range bindings {
		if f := flags.Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("config: bind flag %s: %w", flag, err)
			}
		}
	}
	return nil
}
