package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var initFlags struct {
	force bool
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate sample config and metrics CSV",
	Long:  `Creates a sample .faasspectre.yaml config file and a sample serverless metrics CSV to analyze.`,
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initFlags.force, "force", false, "Overwrite existing files")
}

func runInit(_ *cobra.Command, _ []string) error {
	configPath := ".faasspectre.yaml"
	samplePath := "serverless_metrics_sample.csv"

	if err := writeIfNotExists(configPath, sampleConfig, initFlags.force); err != nil {
		return err
	}
	if err := writeIfNotExists(samplePath, sampleMetrics, initFlags.force); err != nil {
		return err
	}

	fmt.Printf("Created %s and %s\n", configPath, samplePath)
	fmt.Println("\nNext steps:")
	fmt.Println("  1. Run: faasspectre analyze serverless_metrics_sample.csv")
	fmt.Println("  2. Or collect live data: faasspectre collect --region us-east-1")
	fmt.Println("  3. Edit .faasspectre.yaml to set default format and output")
	return nil
}

func writeIfNotExists(path, content string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			fmt.Printf("Skipping %s (already exists, use --force to overwrite)\n", path)
			return nil
		}
	}

	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return os.WriteFile(path, []byte(content), 0o644)
}

const sampleConfig = `# faasspectre configuration
# See: https://github.com/ppiankov/faasspectre

# AWS profile (or set AWS_PROFILE env var), used by collect
# profile: default

# AWS region, used by collect
# region: us-east-1

# Output format: text, json, sarif, or csv
format: text

# Output file path (csv format treats this as a directory)
# output: report.txt

# Minimum estimated monthly savings for advisory findings ($)
min_monthly_savings: 0

# Collection timeout
timeout: 10m
`

const sampleMetrics = `FunctionName,Environment,InvocationsPerMonth,AvgDurationMs,MemoryMB,ColdStartRate,ProvisionedConcurrency,GBSeconds,DataTransferGB,CostUSD
checkout-api,prod,12500000,240,2048,4.2,10,6144000,120,410.50
image-resizer,prod,4800000,5200,3008,1.1,0,73382400,85,1260.00
report-builder,prod,42000,850,1024,12.5,5,36557,4,92.30
auth-token-refresh,prod,9800000,95,512,2.0,0,465500,11,88.70
etl-nightly,staging,1400,12000,4096,0.4,0,67200,30,145.90
webhook-relay,prod,2300000,310,256,6.8,0,178250,14,31.20
legacy-pdf-export,prod,900,4400,2560,9.9,0,9900,2,118.40
search-indexer,staging,640000,520,1536,3.5,2,499200,9,74.60
`
