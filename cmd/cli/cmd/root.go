// Package cmd provides the CLI commands for abroad-cost.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"abroad-cost/adapters/hclcatalog"
	"abroad-cost/core/catalog"
	"abroad-cost/core/output"
	"abroad-cost/core/types"
	"abroad-cost/internal/config"
	"abroad-cost/internal/logging"
)

var (
	cfgFile     string
	catalogPath string
	verbose     bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "abroad-cost",
	Short: "Estimate and compare the cost of studying abroad",
	Long: `abroad-cost estimates the multi-year cost of a study-abroad
graduate program (tuition, living expenses, one-time fees) and ranks
school options by total cost, optionally against the opportunity cost
of staying home and working.

Examples:
  abroad-cost estimate "Technical University of Munich"
  abroad-cost compare --tier budget --years 2
  abroad-cost compare "TU Delft" "University of Tokyo" --opportunity
  abroad-cost roi "Technical University of Munich" --salary 85000`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.abroad-cost.json)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "catalog", "catalog definition file or directory of .hcl files")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(roiCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// loadCatalog reads and validates the catalog definitions
func loadCatalog() (*catalog.Catalog, error) {
	cat, err := hclcatalog.Load(catalogPath)
	if err != nil {
		return nil, err
	}
	logging.Sugar.Debugw("catalog loaded", "schools", cat.Len())
	return cat, nil
}

// durationFlags resolves the --years/--months flags against config defaults
func durationFlags(years, months int, changed bool) types.Duration {
	if !changed {
		return config.Get().Defaults.Duration()
	}
	return types.Duration{Years: years, Months: months}
}

// formatterFlag resolves the --format flag against the config default
func formatterFlag(format string) (output.Formatter, error) {
	if format == "" {
		format = config.Get().Output.DefaultFormat
	}
	return output.New(output.Format(format))
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("abroad-cost version 0.1.0")
	},
}

// configCmd manages configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// configInitCmd writes the default configuration to a file
var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default configuration file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ".abroad-cost.json"
		if len(args) > 0 {
			path = args[0]
		}
		if err := config.Default().Save(path); err != nil {
			return err
		}
		fmt.Printf("Wrote default configuration to %s\n", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
}
