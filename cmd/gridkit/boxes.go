package main

import (
	"fmt"
	"io"

	"github.com/pdrpinto/gridkit"
	"github.com/spf13/cobra"
)

func newBoxesCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "boxes",
		Short: "Apply on/off boxes and report the covered volume",
		Long: `Loads a list of boxes from a YAML scenario and switches each one on or off
in order. Box corners are "x,y,z" with the end corner exclusive. When a clip
box is given, every step is intersected with it first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := loadBoxScenario(file)
			if err != nil {
				return err
			}
			return runBoxes(cmd.OutOrStdout(), a, scenario)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "box scenario YAML file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func runBoxes(w io.Writer, a *app, scenario *boxScenario) error {
	var clip *gridkit.Box
	if scenario.Clip != nil {
		b, err := scenario.Clip.box()
		if err != nil {
			return fmt.Errorf("clip: %w", err)
		}
		clip = &b
	}

	var set gridkit.BoxSet
	for i, step := range scenario.Steps {
		b, err := step.box()
		if err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		if clip != nil {
			clipped, ok := clip.Intersect(b)
			if !ok {
				a.logger.Debug("step outside clip region", "step", i, "box", b)
				continue
			}
			b = clipped
		}
		if step.State == "on" {
			set.Add(b)
		} else {
			set.Remove(b)
		}
		a.logger.Debug("applied box", "step", i, "state", step.State, "box", b, "pieces", set.Len())
	}

	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%d steps", len(scenario.Steps))))
	fmt.Fprintf(w, "boxes: %d\n", set.Len())
	fmt.Fprintf(w, "volume: %d\n", set.Volume())
	return nil
}
