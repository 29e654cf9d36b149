package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/pdrpinto/gridkit"
	"github.com/spf13/cobra"
)

func newPathCmd(a *app) *cobra.Command {
	var (
		file          string
		wallCost      float64
		maxExpansions int
		trace         bool
	)

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Find the cheapest path across a cost grid",
		Long: `Loads a cost grid from a YAML scenario and finds the cheapest orthogonal
path from start to goal. Entering a cell costs its digit; '.' and '#' cells
cannot be entered. The path is printed from the goal back to the start.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := loadPathScenario(file)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("wall") {
				scenario.WallCost = &wallCost
			}
			if cmd.Flags().Changed("max-expansions") {
				scenario.MaxExpansions = maxExpansions
			}
			return runPath(cmd.OutOrStdout(), a, scenario, trace)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "path scenario YAML file")
	cmd.Flags().Float64Var(&wallCost, "wall", 0, "treat cells costing at least this much as walls")
	cmd.Flags().IntVar(&maxExpansions, "max-expansions", 0, "stop after this many expansions (0 = unbounded)")
	cmd.Flags().BoolVar(&trace, "trace", false, "print every search step")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func runPath(w io.Writer, a *app, scenario *pathScenario, trace bool) error {
	grid, err := scenario.grid()
	if err != nil {
		return err
	}
	start, goal, err := scenario.endpoints(grid)
	if err != nil {
		return err
	}

	var options []gridkit.Option
	if scenario.WallCost != nil {
		options = append(options, gridkit.WithWallCost(*scenario.WallCost))
	}
	if scenario.MaxExpansions > 0 {
		options = append(options, gridkit.WithMaxExpansions(scenario.MaxExpansions))
	}
	a.logger.Info("searching grid",
		"width", grid.Width(),
		"height", grid.Height(),
		"start", start,
		"goal", goal,
	)

	result, err := search(w, grid, start, goal, options, trace)
	if errors.Is(err, gridkit.ErrExpansionLimit) {
		fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf("gave up after %d expansions", result.ExpandedNodes)))
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%v -> %v", start, goal)))
	fmt.Fprintf(w, "found: %t\n", result.Found)
	fmt.Fprintf(w, "expanded: %d\n", result.ExpandedNodes)
	if result.Found {
		fmt.Fprintf(w, "cost: %g\n", result.TotalCost)
		fmt.Fprintf(w, "path: %s\n", formatPath(result.Path))
	}
	fmt.Fprintln(w, renderGrid(grid, result.Path))
	return nil
}

// search runs the grid search, printing one line per expansion when trace
// is set.
func search(w io.Writer, grid *gridkit.Grid[int], start, goal gridkit.Coord, options []gridkit.Option, trace bool) (gridkit.Result, error) {
	if !trace {
		return gridkit.Search(grid, start, goal, options...)
	}
	stepper, err := gridkit.NewStepper(grid, start, goal, options...)
	if err != nil {
		return gridkit.Result{}, err
	}
	for !stepper.Done() {
		snapshot, err := stepper.Step()
		if err != nil {
			return stepper.Result(), err
		}
		fmt.Fprintf(w, "step %d: current %v open %d closed %d\n",
			snapshot.StepIndex, snapshot.Current, len(snapshot.Open), len(snapshot.Closed))
	}
	return stepper.Result(), nil
}
