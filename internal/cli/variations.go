package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/floorplanner/pkg/pipeline"
)

// variationsOpts holds the command-line flags for the variations command.
type variationsOpts struct {
	parallel bool
	refresh  bool
	noCache  bool
}

// variationsCommand creates the "variations" command.
func (c *CLI) variationsCommand() *cobra.Command {
	opts := variationsOpts{}

	cmd := &cobra.Command{
		Use:   "variations <brief.toml>",
		Short: "Generate all six plan variations and rank them by score",
		Long: `Generate all six fixed layout variations for a design brief and print them
ranked best-first by overall score.

Example:
  planner variations house.toml --parallel`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runVariations(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.parallel, "parallel", false, "fan variation generation out across a worker pool")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the result cache")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching entirely")

	return cmd
}

func (c *CLI) runVariations(cmd *cobra.Command, briefPath string, opts variationsOpts) error {
	brief, err := loadBrief(briefPath)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return fmt.Errorf("create runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	result, err := runner.Execute(cmd.Context(), pipeline.Options{
		Brief:      brief,
		Variations: true,
		Parallel:   opts.parallel,
		Refresh:    opts.refresh,
		Logger:     c.Logger,
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Evaluated %d variations", len(result.Variations)))

	printSuccess("Variations ranked best-first (spread: mean %.2f, stddev %.2f)", result.Spread.Mean, result.Spread.StdDev)
	for i, v := range result.Variations {
		printKeyValue(fmt.Sprintf("%d. %s", i+1, v.Strategy), fmt.Sprintf("%.2f", v.Score.Overall))
	}

	return nil
}
