package workspacefinder

import (
	"os"

	"github.com/aalvaropc/cubebag/internal/domain"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads a cubebag.yaml file and applies defaults for anything it omits.
func LoadConfig(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	if y.Cubebag.Paths.Input != "" {
		cfg.Paths.Input = y.Cubebag.Paths.Input
	}
	if y.Cubebag.Paths.ReportsDir != "" {
		cfg.Paths.ReportsDir = y.Cubebag.Paths.ReportsDir
	}
	if y.Cubebag.Output.Format != "" {
		cfg.Output.Format = y.Cubebag.Output.Format
	}

	return cfg, nil
}

type yamlConfig struct {
	Cubebag struct {
		Paths struct {
			Input      string `yaml:"input"`
			ReportsDir string `yaml:"reports_dir"`
		} `yaml:"paths"`

		Output struct {
			Format string `yaml:"format"`
		} `yaml:"output"`
	} `yaml:"cubebag"`
}
