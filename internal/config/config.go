package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/fkcurrie/digit-matrix-golang/internal/types"
)

const (
	envPrefix = "DIGITMATRIX"

	KeyGPIOChip        = "gpio.chip"
	KeyButtonA         = "gpio.button_a"
	KeyButtonB         = "gpio.button_b"
	KeyIndicator       = "gpio.indicator"
	KeyPIOBaseAddr     = "pio.base_addr"
	KeyPIOStateMachine = "pio.state_machine"
	KeyPIODataPin      = "pio.data_pin"
	KeyLogDebug        = "log.debug"

	defaultGPIOChip  = "gpiochip0"
	defaultButtonA   = 5
	defaultButtonB   = 6
	defaultIndicator = 13

	// RP1 PIO block on the Raspberry Pi 5
	defaultPIOBaseAddr     = 0x50200000
	defaultPIOStateMachine = 0
	defaultPIODataPin      = 7
)

// Config represents the application configuration
type Config struct {
	GPIO types.GPIOConfig `mapstructure:"gpio"`
	PIO  types.PIOConfig  `mapstructure:"pio"`
	Log  types.LogConfig  `mapstructure:"log"`
}

// New returns a viper instance with defaults set and environment overrides
// enabled. Keys map to DIGITMATRIX_GPIO_BUTTON_A and so on.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyGPIOChip, defaultGPIOChip)
	v.SetDefault(KeyButtonA, defaultButtonA)
	v.SetDefault(KeyButtonB, defaultButtonB)
	v.SetDefault(KeyIndicator, defaultIndicator)
	v.SetDefault(KeyPIOBaseAddr, defaultPIOBaseAddr)
	v.SetDefault(KeyPIOStateMachine, defaultPIOStateMachine)
	v.SetDefault(KeyPIODataPin, defaultPIODataPin)
	v.SetDefault(KeyLogDebug, false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// LoadConfig loads a .env file if present, then the config file at path if
// path is not empty, and decodes the result.
func LoadConfig(v *viper.Viper, path string) (*Config, error) {
	// a missing .env is fine
	_ = godotenv.Load()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		GPIO: types.GPIOConfig{
			Chip:      defaultGPIOChip,
			ButtonA:   defaultButtonA,
			ButtonB:   defaultButtonB,
			Indicator: defaultIndicator,
		},
		PIO: types.PIOConfig{
			BaseAddr:     defaultPIOBaseAddr,
			StateMachine: defaultPIOStateMachine,
			DataPin:      defaultPIODataPin,
		},
	}
}

// Validate checks that the wiring is usable
func (c *Config) Validate() error {
	if c.GPIO.Chip == "" {
		return errors.New("gpio chip must be set")
	}
	lines := map[int]string{}
	for name, offset := range map[string]int{
		"button_a":  c.GPIO.ButtonA,
		"button_b":  c.GPIO.ButtonB,
		"indicator": c.GPIO.Indicator,
	} {
		if offset < 0 {
			return fmt.Errorf("gpio %s must be non-negative, got %d", name, offset)
		}
		if other, ok := lines[offset]; ok {
			return fmt.Errorf("gpio %s and %s share line %d", name, other, offset)
		}
		lines[offset] = name
	}
	if c.PIO.StateMachine < 0 || c.PIO.StateMachine > 3 {
		return fmt.Errorf("pio state machine must be 0-3, got %d", c.PIO.StateMachine)
	}
	if c.PIO.DataPin < 0 || c.PIO.DataPin > 31 {
		return fmt.Errorf("pio data pin must be 0-31, got %d", c.PIO.DataPin)
	}
	return nil
}
