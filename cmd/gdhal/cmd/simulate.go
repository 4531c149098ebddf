package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"gdhal/debug"
	"gdhal/internal/board"
	"gdhal/pac"
	"gdhal/reg"
)

var (
	showEvents    bool
	showRegisters bool
	banner        string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a board bring-up against the register model",
	Long: `Bring the board described by --config (or the default board) up on the
host register model and print what the hardware would be left with: the
clock tree, the PWM timebase and duties, the USART divisor, the recorded
sequencing events and the final register values.

A banner is written through the configured USART; the bytes that reach its
data register are printed as console output.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		cfg, err := loadBoard()
		if err != nil {
			return err
		}

		debug.Clear()
		debug.SetWriter(func(s string) { fmt.Fprintln(out, s) })
		defer debug.SetWriter(nil)
		debug.SetEnabled(verbose)
		defer debug.SetEnabled(false)

		p := pac.Simulate()
		b, err := board.Bring(p, cfg)
		if err != nil {
			debug.Dump()
			return fmt.Errorf("bring-up failed: %w", err)
		}
		b.WriteSummary(out)

		if b.Console != nil && banner != "" {
			var sent []byte
			data := &p.USART0.Regs().DATA
			switch b.Serial.USART {
			case 1:
				data = &p.USART1.Regs().DATA
			case 2:
				data = &p.USART2.Regs().DATA
			}
			restore := reg.Observe(func(r *reg.Register32, v uint32) {
				if r == data {
					sent = append(sent, byte(v))
				}
			})
			fmt.Fprint(b.Console, banner+"\r\n")
			restore()
			fmt.Fprintf(out, "console tx %q\n", sent)
		}

		if showEvents {
			debug.Dump()
		}
		if showRegisters {
			board.DumpRegisters(out, p)
		}
		return nil
	},
}

func init() {
	simulateCmd.Flags().BoolVar(&showEvents, "events", true, "print the sequencing event ring")
	simulateCmd.Flags().BoolVar(&showRegisters, "registers", true, "print the final register values")
	simulateCmd.Flags().StringVar(&banner, "banner", "gdhal up", "line to send through the console USART")
	rootCmd.AddCommand(simulateCmd)
}
