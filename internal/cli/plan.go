package cli

import (
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"

	"github.com/yigit/roadmap/internal/planner"
)

var (
	planFile   string
	planStrict bool
)

// errBlocked is returned under --strict when the plan reports blockers.
var errBlocked = errors.New("plan has blockers")

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a plan from a scenario file",
	Long: `Schedule the scenario's courses so that the target lands in the requested term.

Courses that cannot be placed are listed with the blockers that kept them out.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := loadScenario(planFile, cmd.InOrStdin())
		if err != nil {
			return err
		}
		opts, err := plannerOptions()
		if err != nil {
			return err
		}

		res := planner.New(opts).Plan(in)

		out := cmd.OutOrStdout()
		if jsonOutput {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(res); err != nil {
				return err
			}
		} else {
			renderPlan(out, res)
		}

		if planStrict && len(res.Explanation.Blockers) > 0 {
			return errBlocked
		}
		return nil
	},
}

func init() {
	planCmd.Flags().StringVarP(&planFile, "file", "f", "", "Scenario file (YAML or JSON, - for stdin)")
	planCmd.Flags().BoolVar(&planStrict, "strict", false, "Exit with an error when the plan has blockers")
	_ = planCmd.MarkFlagRequired("file")
}
