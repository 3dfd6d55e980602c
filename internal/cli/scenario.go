package cli

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yigit/roadmap/internal/config"
	"github.com/yigit/roadmap/internal/planner"
)

// loadScenario reads a planner input from path, or from stdin when path is "-".
// JSON is accepted as a subset of YAML.
func loadScenario(path string, stdin io.Reader) (planner.Input, error) {
	var in planner.Input

	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return in, fmt.Errorf("failed to read scenario: %w", err)
	}

	if err := yaml.Unmarshal(data, &in); err != nil {
		return in, fmt.Errorf("failed to parse scenario %s: %w", path, err)
	}
	return in, nil
}

// plannerOptions returns the configured options when --config is set, the
// defaults otherwise.
func plannerOptions() (planner.Options, error) {
	if configPath == "" {
		return planner.DefaultOptions(), nil
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return planner.Options{}, err
	}
	return cfg.PlannerOptions(), nil
}
