package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/floorplanner/internal/compliance"
)

// rulesCommand creates the "rules" command group.
func (c *CLI) rulesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect the compliance rule registry",
	}

	cmd.AddCommand(c.rulesListCommand())
	return cmd
}

// rulesListCommand creates the "rules list" subcommand.
func (c *CLI) rulesListCommand() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every rule in the base compliance registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine := compliance.NewEngine()
			rules := engine.Registry().All()

			for _, r := range rules {
				if category != "" && string(r.Category) != category {
					continue
				}
				status := "enabled"
				if !r.Enabled {
					status = "disabled"
				}
				printKeyValue(r.ID, fmt.Sprintf("%s · %s · %s", r.Category, status, r.Description))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "filter by rule category")
	return cmd
}
