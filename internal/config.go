package internal

import (
	"fmt"
	"message-producer/errors"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var validate = validator.New()

type Config struct {
	LogLevel        string        `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR"`
	OutputFormat    string        `env:"OUTPUT_FORMAT,default=plain" validate:"oneof=plain json pretty table"`
	EmitCount       int           `env:"EMIT_COUNT,default=1" validate:"min=1,max=100000"`
	NumberOfWorkers int           `env:"NUMBER_OF_WORKERS,default=1" validate:"min=1,max=256"`
	SinkTimeout     time.Duration `env:"SINK_TIMEOUT,default=2s" validate:"gt=0"`
	BadgerFilepath  string        `env:"BADGER_FILEPATH"`
	LimitEmissions  *int          `env:"LIMIT_EMISSIONS" validate:"omitempty,min=1"`
	Host            string        `env:"HOST,default=localhost" validate:"required"`
	Port            int           `env:"PORT,default=8080" validate:"min=1,max=65535"`
	Colours         bool          `env:"COLOURS,default=true"`
}

// LoadConfig reads an optional .env file, then the environment, and validates the result.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// DefaultConfig returns the config built from tag defaults only, ignoring the environment.
func DefaultConfig() (Config, error) {
	var config Config
	if err := env.Unmarshal(env.EnvSet{}, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}
	return config, nil
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}
	return nil
}

// JournalEnabled reports whether emissions are persisted in BadgerDB.
func (c Config) JournalEnabled() bool {
	return c.BadgerFilepath != ""
}

func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
