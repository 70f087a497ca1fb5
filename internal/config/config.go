package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/emach-lab/statmodal/internal/machine"
)

const (
	DefaultMaxRadial = 4
	DefaultTolerance = 1e-9
)

type Config struct {
	Machine      machine.Parameters `yaml:"machine"`
	RadialOrders []int              `yaml:"radial_orders"`
	Tolerance    float64            `yaml:"tolerance"`
}

func DefaultConfig() *Config {
	orders := make([]int, DefaultMaxRadial+1)
	for i := range orders {
		orders[i] = i
	}
	return &Config{
		Machine:      Presets["m200"].Machine,
		RadialOrders: orders,
		Tolerance:    DefaultTolerance,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
