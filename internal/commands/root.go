package commands

import (
	"github.com/ppiankov/faasspectre/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	version string
	commit  string
	date    string
)

var rootCmd = &cobra.Command{
	Use:   "faasspectre",
	Short: "faasspectre — serverless cost report generator",
	Long: `faasspectre ingests a CSV of serverless function invocation and cost metrics
(repairing a known malformed single-column variant) and renders six analytical
views: cost concentration, memory right-sizing, provisioned concurrency advice,
low-value workload detection, cost forecasting, and containerization candidacy.

The collect command builds the same CSV from live AWS Lambda and CloudWatch data.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logging.Init(verbose)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with injected build info.
func Execute(v, c, d string) error {
	version = v
	commit = c
	date = d
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose logging")
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(collectCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}
