package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config controls a single influence ranking run
type Config struct {
	Variant string `yaml:"variant" validate:"required,oneof=unweighted weighted"`
	Workers int    `yaml:"workers" validate:"gte=0,lte=1024"`
	Top     int    `yaml:"top" validate:"gte=0"`
	// LogLevel empty means LOG_LEVEL, then info
	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=debug info warn warning error"`
	Format   string `yaml:"format" validate:"required,oneof=table json"`
	// MetricsFile, when set, receives the run's metrics in Prometheus text format
	MetricsFile string `yaml:"metrics_file"`
}

var validate = validator.New()

// Default returns the configuration used when no file is given
func Default() Config {
	return Config{
		Variant: "unweighted",
		Workers: 1,
		Top:     0,
		Format:  "table",
	}
}

// Load reads a YAML config file. Keys missing from the file keep their
// Default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of Default and validates the result
func Parse(data []byte) (Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field constraints. Variant, LogLevel and Format are
// normalized to lower case first.
func (c *Config) Validate() error {
	c.Variant = strings.ToLower(strings.TrimSpace(c.Variant))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	c.MetricsFile = strings.TrimSpace(c.MetricsFile)

	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// Sequential reports whether the run should score nodes on the calling goroutine
func (c Config) Sequential() bool {
	return c.Workers <= 1
}

func formatValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		switch fe.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s: is required", fe.Field()))
		case "oneof":
			messages = append(messages, fmt.Sprintf("%s: must be one of [%s], got %q", fe.Field(), fe.Param(), fe.Value()))
		case "gte", "lte":
			messages = append(messages, fmt.Sprintf("%s: must be %s %s, got %v", fe.Field(), fe.Tag(), fe.Param(), fe.Value()))
		default:
			messages = append(messages, fmt.Sprintf("%s: failed %s validation", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(messages, "; "))
}
