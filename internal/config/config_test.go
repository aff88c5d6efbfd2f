package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(New(), "")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
gpio:
  chip: gpiochip4
  button_a: 17
  button_b: 27
pio:
  state_machine: 2
log:
  debug: true
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadConfig(New(), path)
	require.NoError(t, err)
	assert.Equal(t, "gpiochip4", cfg.GPIO.Chip)
	assert.Equal(t, 17, cfg.GPIO.ButtonA)
	assert.Equal(t, 27, cfg.GPIO.ButtonB)
	assert.Equal(t, defaultIndicator, cfg.GPIO.Indicator)
	assert.Equal(t, 2, cfg.PIO.StateMachine)
	assert.Equal(t, uint32(defaultPIOBaseAddr), cfg.PIO.BaseAddr)
	assert.True(t, cfg.Log.Debug)
}

func TestLoadConfigEnvironment(t *testing.T) {
	t.Setenv("DIGITMATRIX_GPIO_INDICATOR", "22")
	t.Setenv("DIGITMATRIX_PIO_BASE_ADDR", "0x40000000")

	cfg, err := LoadConfig(New(), "")
	require.NoError(t, err)
	assert.Equal(t, 22, cfg.GPIO.Indicator)
	assert.Equal(t, uint32(0x40000000), cfg.PIO.BaseAddr)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{name: "defaults", modify: func(*Config) {}},
		{name: "empty chip", modify: func(c *Config) { c.GPIO.Chip = "" }, wantErr: "chip"},
		{name: "negative line", modify: func(c *Config) { c.GPIO.ButtonB = -1 }, wantErr: "non-negative"},
		{name: "shared line", modify: func(c *Config) { c.GPIO.Indicator = c.GPIO.ButtonA }, wantErr: "share line"},
		{name: "bad state machine", modify: func(c *Config) { c.PIO.StateMachine = 4 }, wantErr: "state machine"},
		{name: "bad data pin", modify: func(c *Config) { c.PIO.DataPin = 32 }, wantErr: "data pin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
