// Package cli provides the command-line interface for pigment.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"pigment/internal/config"
	"pigment/internal/version"
)

var (
	// Global config file flag
	flagConfig string

	// Configuration loaded before any command runs
	cfg = config.Default()

	// Logger shared by all commands
	log = hclog.NewNullLogger()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "pigment",
		Short: "Extract colour palettes and contrast colours from images",
		Long: `Pigment extracts a ranked colour palette from an image together with a
set of derived colours for theming: the dominant colour, the most
saturated colour, the colours closest to black and white, and a
suggested contrast colour readable over the dominant one.

Each palette entry carries the fraction of sampled pixels it represents
and a contrast colour suitable for text rendered over it.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(flagConfig)
			if err != nil {
				return err
			}
			cfg = loaded
			log = newLogger(cmd.Flags())
			return nil
		},
	}
)

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: ~/.config/pigment/config.toml)")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(watchCmd)
}

// newLogger builds the shared logger from the global verbosity flags.
func newLogger(flags *pflag.FlagSet) hclog.Logger {
	level := hclog.Warn
	if quiet, _ := flags.GetBool("quiet"); quiet {
		level = hclog.Error
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		level = hclog.Debug
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "pigment",
		Level:  level,
		Output: os.Stderr,
	})
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
