package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"gdhal/host/console"
	"gdhal/serial"
)

var (
	consoleDevice string
	consoleBaud   uint32
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Attach to the board's serial console",
	Long: `Open the host serial port wired to the board's USART and copy between it
and the terminal until interrupted. Line settings come from the serial section
of --config; --device and --baud override them.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := consoleConfig()
		if err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(cmd.ErrOrStderr(), "opening %s at %d baud\n", cfg.Device, cfg.Baud)
		}

		port, err := console.Open(cfg)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return console.Attach(ctx, port, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

// consoleConfig combines the board configuration with the command flags.
func consoleConfig() (*console.Config, error) {
	line := serial.DefaultConfig()
	device := ""
	if configPath != "" {
		b, err := loadBoard()
		if err != nil {
			return nil, err
		}
		if b.Serial != nil {
			if line, err = b.Serial.Line(); err != nil {
				return nil, err
			}
			device = b.Serial.Device
		}
	}
	if consoleDevice != "" {
		device = consoleDevice
	}
	if consoleBaud != 0 {
		line.Baud = consoleBaud
	}
	if device == "" {
		return nil, fmt.Errorf("no serial device: set --device or serial.device in the board configuration")
	}
	return console.FromSerial(device, line), nil
}

func init() {
	consoleCmd.Flags().StringVarP(&consoleDevice, "device", "d", "", "host serial device")
	consoleCmd.Flags().Uint32VarP(&consoleBaud, "baud", "b", 0, "baud rate")
	rootCmd.AddCommand(consoleCmd)
}
