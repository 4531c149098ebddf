package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gdhal/config"
)

var (
	// Global flags
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "gdhal",
	Short: "GD32VF103 HAL planning and bring-up tool",
	Long: `Host tooling for the GD32VF103 HAL: timer and baud rate arithmetic,
bring-up simulation against the register model, and a serial console.

Examples:
  gdhal plan --clock 8MHz 1kHz 50kHz        # Prescaler and period for each frequency
  gdhal baud --clock 54MHz 115200 250000    # USART divisors and rate error
  gdhal simulate --config board.json        # Run a bring-up on the register model
  gdhal console --config board.json         # Attach to the board's console`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "board configuration (JSON)")
}

// loadBoard returns the board at --config, or the default board.
func loadBoard() (*config.Board, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.LoadFile(configPath)
}
