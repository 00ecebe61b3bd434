package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/floorplanner/internal/compliance"
	"github.com/matzehuels/floorplanner/pkg/pipeline"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	jurisdiction string
	check        bool
	refresh      bool
	noCache      bool
}

// generateCommand creates the "generate" command.
func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{jurisdiction: string(pipeline.DefaultJurisdiction)}

	cmd := &cobra.Command{
		Use:   "generate <brief.toml>",
		Short: "Generate a single floor plan from a design brief",
		Long: `Generate a single floor plan from a TOML design brief.

Example:
  planner generate house.toml
  planner generate house.toml --check --jurisdiction=colorado`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.jurisdiction, "jurisdiction", opts.jurisdiction, "building-code jurisdiction")
	cmd.Flags().BoolVar(&opts.check, "check", false, "also run a compliance check against the generated plan")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the result cache")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching entirely")

	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, briefPath string, opts generateOpts) error {
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
		Brief:         brief,
		Jurisdiction:  compliance.Jurisdiction(opts.jurisdiction),
		RunCompliance: opts.check,
		Refresh:       opts.refresh,
		Logger:        c.Logger,
	})
	if err != nil {
		return err
	}
	prog.done("Generated floor plan")

	printSuccess("Plan generated: %d rooms, overall score %.2f", len(result.Plan.Rooms), result.Plan.Score.Overall)
	printStats(len(result.Plan.Rooms), result.Plan.Score.Overall, result.CacheInfo.GenerateHit)

	if len(result.Plan.UnplacedRoomIDs) > 0 {
		printWarning("%d room(s) could not be placed", len(result.Plan.UnplacedRoomIDs))
	}

	if opts.check && result.Compliance != nil {
		printComplianceSummary(result.Compliance)
	}

	return nil
}
