package cli

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	jsonOutput bool
	configPath string
)

// rootCmd is the root command for the offline planner.
var rootCmd = &cobra.Command{
	Use:     "planner",
	Version: "dev",
	Short:   "Plan a term-by-term path to a target course",
	Long: `planner runs the course roadmap planner against a scenario file, without a database.

A scenario lists the target course, the anchor term and year, the remaining courses,
their prerequisite edges and optional per-term limits (YAML or JSON).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// SetVersion overrides the version reported by --version.
func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Read planner limits and weights from this config file")

	rootCmd.AddCommand(planCmd, validateCmd)
}
