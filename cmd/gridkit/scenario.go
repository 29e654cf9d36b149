package main

import (
	"fmt"
	"os"

	"github.com/pdrpinto/gridkit"
	"gopkg.in/yaml.v3"
)

// pathScenario describes a cost grid and the endpoints to connect.
// Each row is a string of single-digit entry costs; '.' and '#' mark empty
// (impassable) cells.
type pathScenario struct {
	Rows          []string `yaml:"rows"`
	Start         string   `yaml:"start"`
	Goal          string   `yaml:"goal"`
	WallCost      *float64 `yaml:"wall_cost"`
	MaxExpansions int      `yaml:"max_expansions"`
}

// boxScenario is a sequence of boxes switched on or off, optionally
// clipped to a region first.
type boxScenario struct {
	Clip  *boxSpec  `yaml:"clip"`
	Steps []boxStep `yaml:"steps"`
}

// boxSpec holds half-open box corners as "x,y,z" literals.
type boxSpec struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

type boxStep struct {
	State   string `yaml:"state"`
	boxSpec `yaml:",inline"`
}

func loadYAML(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read scenario file: %w", err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse scenario YAML: %w", err)
	}
	return nil
}

// loadPathScenario reads and validates a path scenario file.
func loadPathScenario(path string) (*pathScenario, error) {
	var scenario pathScenario
	if err := loadYAML(path, &scenario); err != nil {
		return nil, err
	}
	if err := scenario.validate(); err != nil {
		return nil, fmt.Errorf("invalid path scenario: %w", err)
	}
	return &scenario, nil
}

func (s *pathScenario) validate() error {
	if len(s.Rows) == 0 {
		return fmt.Errorf("rows cannot be empty")
	}
	for y, row := range s.Rows {
		for x, r := range row {
			if (r < '0' || r > '9') && r != '.' && r != '#' {
				return fmt.Errorf("row %d column %d: unexpected cell %q", y, x, r)
			}
		}
	}
	if s.WallCost != nil && *s.WallCost <= 0 {
		return fmt.Errorf("wall_cost must be positive, got %v", *s.WallCost)
	}
	if s.MaxExpansions < 0 {
		return fmt.Errorf("max_expansions must be non-negative, got %d", s.MaxExpansions)
	}
	return nil
}

// grid builds the cost grid.
func (s *pathScenario) grid() (*gridkit.Grid[int], error) {
	table := make([][]int, len(s.Rows))
	for y, row := range s.Rows {
		table[y] = make([]int, 0, len(row))
		for _, r := range row {
			table[y] = append(table[y], int(r-'0'))
		}
	}
	grid, err := gridkit.FromTable(table)
	if err != nil {
		return nil, err
	}
	for y, row := range s.Rows {
		for x, r := range row {
			if r == '.' || r == '#' {
				grid.Delete(gridkit.C2(x, y))
			}
		}
	}
	return grid, nil
}

// endpoints resolves start and goal, defaulting to the top-left and
// bottom-right cells.
func (s *pathScenario) endpoints(grid *gridkit.Grid[int]) (start, goal gridkit.Coord, err error) {
	start = gridkit.C2(0, 0)
	goal = gridkit.C2(grid.Width()-1, grid.Height()-1)
	if s.Start != "" {
		if start, err = gridkit.ParseCoord(s.Start); err != nil {
			return start, goal, fmt.Errorf("start: %w", err)
		}
	}
	if s.Goal != "" {
		if goal, err = gridkit.ParseCoord(s.Goal); err != nil {
			return start, goal, fmt.Errorf("goal: %w", err)
		}
	}
	return start, goal, nil
}

// loadBoxScenario reads and validates a box scenario file.
func loadBoxScenario(path string) (*boxScenario, error) {
	var scenario boxScenario
	if err := loadYAML(path, &scenario); err != nil {
		return nil, err
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("invalid box scenario: steps cannot be empty")
	}
	for i, step := range scenario.Steps {
		if step.State != "on" && step.State != "off" {
			return nil, fmt.Errorf("invalid box scenario: step %d: state must be on or off, got %q", i, step.State)
		}
	}
	return &scenario, nil
}

func (b boxSpec) box() (gridkit.Box, error) {
	start, err := gridkit.ParseCoord(b.Start)
	if err != nil {
		return gridkit.Box{}, fmt.Errorf("start: %w", err)
	}
	end, err := gridkit.ParseCoord(b.End)
	if err != nil {
		return gridkit.Box{}, fmt.Errorf("end: %w", err)
	}
	return gridkit.NewBox(start, end)
}
