package types

// GPIOConfig represents the GPIO character device wiring
type GPIOConfig struct {
	// Chip is the gpiochip device name, e.g. "gpiochip0"
	Chip string `mapstructure:"chip"`
	// ButtonA is the line offset of the increment button
	ButtonA int `mapstructure:"button_a"`
	// ButtonB is the line offset of the decrement button
	ButtonB int `mapstructure:"button_b"`
	// Indicator is the line offset of the status LED
	Indicator int `mapstructure:"indicator"`
}

// PIOConfig represents the configuration for the LED data state machine
type PIOConfig struct {
	BaseAddr     uint32 `mapstructure:"base_addr"`
	StateMachine int    `mapstructure:"state_machine"`
	DataPin      int    `mapstructure:"data_pin"`
}

// LogConfig represents the logging configuration
type LogConfig struct {
	Debug bool `mapstructure:"debug"`
}
