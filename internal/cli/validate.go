package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yigit/roadmap/internal/planner"
)

var validateFile string

type validationReport struct {
	Valid  bool     `json:"valid"`
	Issues []string `json:"issues"`
}

// validateScenario collects input contract violations and prerequisite cycles.
func validateScenario(in planner.Input) validationReport {
	report := validationReport{Issues: []string{}}

	if err := in.Validate(); err != nil {
		report.Issues = append(report.Issues, strings.Split(err.Error(), "\n")...)
	}

	g := planner.BuildGraph(in.Courses, in.Edges)
	if cyclic := planner.CycleMembers(g); len(cyclic) > 0 {
		codes := make([]string, 0, len(cyclic))
		for _, id := range cyclic {
			c, _ := g.Course(id)
			codes = append(codes, c.Code())
		}
		report.Issues = append(report.Issues, "prerequisite cycle through "+strings.Join(codes, ", "))
	}

	report.Valid = len(report.Issues) == 0
	return report
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a scenario file for invalid input and cycles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := loadScenario(validateFile, cmd.InOrStdin())
		if err != nil {
			return err
		}

		report := validateScenario(in)
		out := cmd.OutOrStdout()
		if jsonOutput {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(report); err != nil {
				return err
			}
		} else if report.Valid {
			_, _ = successColor.Fprintf(out, "✓ %s is valid (%d courses, %d edges)\n", validateFile, len(in.Courses), len(in.Edges))
		} else {
			for _, issue := range report.Issues {
				_, _ = errorColor.Fprintf(out, "✗ %s\n", issue)
			}
		}

		if !report.Valid {
			return fmt.Errorf("%d validation issue(s)", len(report.Issues))
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVarP(&validateFile, "file", "f", "", "Scenario file (YAML or JSON, - for stdin)")
	_ = validateCmd.MarkFlagRequired("file")
}
