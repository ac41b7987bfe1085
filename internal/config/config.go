package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Color is a default backlight color applied to the whole chain.
type Color struct {
	Red   int `yaml:"red"`
	Green int `yaml:"green"`
	Blue  int `yaml:"blue"`
}

// Config describes a tube chain and how to reach it.
type Config struct {
	Port       string `yaml:"port"`     // e.g. /dev/ttyUSB0
	BaudRate   int    `yaml:"baud"`     // e.g. 115200
	Tubes      int    `yaml:"tubes"`    // number of tubes in the chain
	Brightness int    `yaml:"brightness"`
	Color      Color  `yaml:"color"`
	SettleMs   int    `yaml:"settle_ms"` // pause after each frame write
}

// Default returns the configuration for a 4-tube chain with the
// backlight off.
func Default() *Config {
	return &Config{
		BaudRate:   115200,
		Tubes:      4,
		Brightness: 128,
		SettleMs:   100,
	}
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}
	return c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// Validate catches bad values before the serial port is touched.
func (c *Config) Validate() error {
	if c.Tubes < 1 {
		return fmt.Errorf("config: tubes must be greater than 0, got %d", c.Tubes)
	}
	if c.BaudRate <= 0 {
		return fmt.Errorf("config: baud must be positive, got %d", c.BaudRate)
	}
	if c.SettleMs < 0 {
		return fmt.Errorf("config: settle_ms must not be negative, got %d", c.SettleMs)
	}
	for name, v := range map[string]int{
		"brightness":  c.Brightness,
		"color.red":   c.Color.Red,
		"color.green": c.Color.Green,
		"color.blue":  c.Color.Blue,
	} {
		if v < 0 || v > 255 {
			return fmt.Errorf("config: %s must be between 0-255, got %d", name, v)
		}
	}
	return nil
}
