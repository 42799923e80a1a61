package config

import (
	"os"
	"strconv"

	yaml "gopkg.in/yaml.v3"

	"routeopt/internal/model"
	"routeopt/internal/opt"
)

// Config carries the engine defaults. Values come from a YAML file with
// environment overrides layered on top.
type Config struct {
	DefaultAlgorithm string              `yaml:"defaultAlgorithm"`
	MaxStopsPerRoute int                 `yaml:"maxStopsPerRoute"`
	Weights          model.Weights       `yaml:"weights"`
	Genetic          opt.GeneticConfig   `yaml:"genetic"`
	Annealing        opt.AnnealConfig    `yaml:"annealing"`
	AntColony        opt.AntColonyConfig `yaml:"antColony"`
}

func Default() Config {
	return Config{
		DefaultAlgorithm: model.AlgoHybrid,
		MaxStopsPerRoute: 20,
		Weights:          model.DefaultWeights(),
	}
}

// Load reads the YAML file at path when it exists, then applies env
// overrides. A missing file is not an error; the defaults stand.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, err
			}
		} else if !os.IsNotExist(err) {
			return cfg, err
		}
	}
	if v := os.Getenv("ROUTEOPT_ALGORITHM"); v != "" {
		cfg.DefaultAlgorithm = v
	}
	if v := os.Getenv("ROUTEOPT_MAX_STOPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxStopsPerRoute = n
		}
	}
	return cfg, nil
}
