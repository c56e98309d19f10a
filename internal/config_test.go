package internal

import (
	"message-producer/errors"
	"os"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		LogLevel:        "INFO",
		OutputFormat:    "plain",
		EmitCount:       1,
		NumberOfWorkers: 1,
		SinkTimeout:     2 * time.Second,
		Host:            "localhost",
		Port:            8080,
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	req := require.New(t)
	t.Chdir(t.TempDir())

	// Given no variable is set
	for _, name := range []string{"LOG_LEVEL", "OUTPUT_FORMAT", "EMIT_COUNT", "NUMBER_OF_WORKERS",
		"SINK_TIMEOUT", "BADGER_FILEPATH", "LIMIT_EMISSIONS", "HOST", "PORT", "COLOURS"} {
		t.Setenv(name, "")
		req.NoError(os.Unsetenv(name))
	}

	// When the config is loaded
	config, err := LoadConfig()

	// Then defaults apply
	req.NoError(err)
	req.Equal("INFO", config.LogLevel)
	req.Equal("plain", config.OutputFormat)
	req.Equal(1, config.EmitCount)
	req.Equal(1, config.NumberOfWorkers)
	req.Equal(2*time.Second, config.SinkTimeout)
	req.Nil(config.LimitEmissions)
	req.False(config.JournalEnabled())
	req.Equal("localhost:8080", config.Address())
	req.True(config.Colours)
}

func TestLoadConfig_From_Environment(t *testing.T) {
	req := require.New(t)
	t.Chdir(t.TempDir())
	t.Setenv("OUTPUT_FORMAT", "json")
	t.Setenv("EMIT_COUNT", "5")
	t.Setenv("NUMBER_OF_WORKERS", "3")
	t.Setenv("SINK_TIMEOUT", "150ms")
	t.Setenv("BADGER_FILEPATH", "/tmp/journal")
	t.Setenv("LIMIT_EMISSIONS", "10")

	config, err := LoadConfig()

	req.NoError(err)
	req.Equal("json", config.OutputFormat)
	req.Equal(5, config.EmitCount)
	req.Equal(3, config.NumberOfWorkers)
	req.Equal(150*time.Millisecond, config.SinkTimeout)
	req.True(config.JournalEnabled())
	req.Equal(10, lo.FromPtr(config.LimitEmissions))
}

func TestConfig_Validate_Rejects_Invalid_Values(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"unknown format", func(c *Config) { c.OutputFormat = "xml" }},
		{"unknown level", func(c *Config) { c.LogLevel = "TRACE" }},
		{"zero count", func(c *Config) { c.EmitCount = 0 }},
		{"too many workers", func(c *Config) { c.NumberOfWorkers = 257 }},
		{"zero timeout", func(c *Config) { c.SinkTimeout = 0 }},
		{"zero limit", func(c *Config) { c.LimitEmissions = lo.ToPtr(0) }},
		{"port out of range", func(c *Config) { c.Port = 70000 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validConfig()
			tt.mutate(&config)
			require.ErrorIs(t, config.Validate(), errors.ErrInvalidConfig)
		})
	}
}

func TestConfig_Validate_Accepts_Valid_Config(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestDefaultConfig_Ignores_Environment(t *testing.T) {
	req := require.New(t)
	t.Setenv("EMIT_COUNT", "not-a-number")
	t.Setenv("OUTPUT_FORMAT", "xml")

	config, err := DefaultConfig()

	req.NoError(err)
	req.Equal(1, config.EmitCount)
	req.Equal("plain", config.OutputFormat)
	req.NoError(config.Validate())
}
