package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aanand-mishra/dino-compare/internal/controller"
	"github.com/aanand-mishra/dino-compare/internal/dataset"
	"github.com/aanand-mishra/dino-compare/internal/grid"
	"github.com/aanand-mishra/dino-compare/internal/render"
	"github.com/aanand-mishra/dino-compare/internal/view"
)

type compareFlags struct {
	dataset string
	seed    int64
	fields  view.Fields
}

func newCompareCmd() *cobra.Command {
	var f compareFlags

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare one human with the dataset and print the grid",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCompare(cmd, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.dataset, "dataset", "static/dino.json", "Dataset file path or URL")
	flags.Int64Var(&f.seed, "seed", 0, "Random seed (0 = random)")
	flags.StringVar(&f.fields.Name, "name", "", "Your name (at least 3 characters)")
	flags.StringVar(&f.fields.Feet, "feet", "", "Height, feet part")
	flags.StringVar(&f.fields.Inches, "inches", "", "Height, inches part")
	flags.StringVar(&f.fields.Weight, "weight", "", "Weight in lbs")
	flags.StringVar(&f.fields.Diet, "diet", view.DefaultDiet(), "Diet: Herbivore, Omnivore or Carnivore")
	return cmd
}

// runCompare drives the same controller the web page uses, with the
// command flags standing in for the form.
func runCompare(cmd *cobra.Command, f compareFlags) error {
	dinos, err := dataset.Load(cmd.Context(), f.dataset)
	if err != nil {
		return err
	}

	page := view.NewPage()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := controller.New(dinos, page, grid.NewRand(f.seed), log)

	page.Fill(f.fields)
	complete, err := c.Submit()
	if err != nil {
		return err
	}
	if !complete {
		errOut := cmd.ErrOrStderr()
		fmt.Fprintln(errOut, page.Summary)
		for _, msg := range page.Errors {
			fmt.Fprintln(errOut, "  "+msg)
		}
		return fmt.Errorf("%d invalid field(s)", len(page.Errors))
	}

	renderer, err := render.New()
	if err != nil {
		return err
	}
	return renderer.Text(cmd.OutOrStdout(), page.Tiles)
}
