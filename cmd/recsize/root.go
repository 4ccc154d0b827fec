package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jamesainslie/recsize/pkg/recsize/config"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "recsize [directory]",
		Short: "Suggest an optimal recordsize for a dataset",
		Long: `Recsize scans a directory tree and suggests an optimal recordsize for a
copy-on-write dataset holding files like the ones found.

The report has three parts:
  1. File Size Breakdown: file counts and percentages per size bucket.
  2. Wasted Space Analysis: for candidate recordsizes from 8K up to 16M,
     simulated block allocation, total wasted space, and overhead. The
     candidate with the lowest overhead is highlighted.
  3. Recommendation: the mode candidate (buckets accumulated by frequency
     until they cover at least 50% of files) combined with the lowest-
     overhead candidate; the larger of the two, rounded up to a valid
     recordsize, is the final suggestion.

Candidates above 1M assume the pool has large_blocks enabled.

Examples:
  recsize /tank/media            # Analyze a directory, styled report
  recsize -o json /tank/media    # Structured output for tooling
  recsize -e '*.tmp' /srv/data   # Skip paths matching a pattern`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAnalyze,
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/recsize/config.yaml)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "output format (pretty, plain, json, yaml, markdown)")
	rootCmd.PersistentFlags().StringSliceP("exclude", "e", nil, "exclude patterns (can be specified multiple times)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress progress output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug output")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("exclude", rootCmd.PersistentFlags().Lookup("exclude"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("no_color", rootCmd.PersistentFlags().Lookup("no-color"))
}

// initConfig reads in config file and environment variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
			viper.AddConfigPath(filepath.Join(xdgConfigHome, "recsize"))
		}

		homeDir, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(homeDir, ".config", "recsize"))
		}
	}

	viper.SetEnvPrefix("RECSIZE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("output", config.DefaultOutput)
	viper.SetDefault("exclude", config.DefaultExclusions)
	viper.SetDefault("logging.level", config.DefaultLogLevel)

	// Read config file (ignore if not found).
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// getVerbose returns true if verbose mode is enabled.
func getVerbose() bool {
	return viper.GetBool("verbose")
}

// getQuiet returns true if quiet mode is enabled.
func getQuiet() bool {
	return viper.GetBool("quiet")
}

// printVerbose prints a message if verbose mode is enabled.
func printVerbose(format string, args ...interface{}) {
	if getVerbose() && !getQuiet() {
		fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
	}
}
