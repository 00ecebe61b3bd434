package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/floorplanner/internal/compliance"
	"github.com/matzehuels/floorplanner/internal/floorplan"
)

// checkOpts holds the command-line flags for the check command.
type checkOpts struct {
	jurisdiction string
}

// checkCommand creates the "check" command.
func (c *CLI) checkCommand() *cobra.Command {
	opts := checkOpts{jurisdiction: string(compliance.JurisdictionIRCBase)}

	cmd := &cobra.Command{
		Use:   "check <plan.json>",
		Short: "Check a previously generated plan against a jurisdiction's rules",
		Long: `Load a plan.json file (a JSON-encoded placed floor plan) and run it
through the compliance engine for the given jurisdiction.

Example:
  planner check plan.json --jurisdiction=colorado`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.jurisdiction, "jurisdiction", opts.jurisdiction, "building-code jurisdiction")

	return cmd
}

func (c *CLI) runCheck(cmd *cobra.Command, planPath string, opts checkOpts) error {
	data, err := os.ReadFile(planPath)
	if err != nil {
		return fmt.Errorf("read plan file: %w", err)
	}

	var plan floorplan.PlacedPlan
	if err := json.Unmarshal(data, &plan); err != nil {
		return fmt.Errorf("parse plan file: %w", err)
	}

	engine := compliance.NewEngine()
	engine.SetLogger(c.Logger)

	prog := newProgress(c.Logger)
	report, err := engine.Check(plan, compliance.ComplianceContext{
		Jurisdiction: compliance.Jurisdiction(opts.jurisdiction),
	})
	if err != nil {
		return err
	}
	prog.done("Ran compliance check")

	printComplianceSummary(&report)
	return nil
}

// printComplianceSummary prints a compliance report's pass/fail tally and
// any violations found.
func printComplianceSummary(report *compliance.Report) {
	s := report.Summary
	if report.OverallPass {
		printSuccess("Compliant with %s (%d/%d rules passed)", report.Jurisdiction, s.Passed, s.Total)
	} else {
		printError("Not compliant with %s (%d/%d rules passed, %d critical)", report.Jurisdiction, s.Passed, s.Total, s.Critical)
	}

	for _, res := range report.RuleResults {
		if res.Passed {
			continue
		}
		for _, v := range res.Violations {
			printDetail("[%s] %s: %s", v.Severity, res.RuleID, v.Description)
		}
	}
}
