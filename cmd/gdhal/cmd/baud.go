package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"periph.io/x/conn/v3/physic"

	"gdhal/rcu"
	"gdhal/serial"
)

var baudClock physic.Frequency

var baudCmd = &cobra.Command{
	Use:   "baud RATE...",
	Short: "Compute USART baud rate divisors",
	Long: `For each baud rate, print the integer and fractional divisor written to
the USART BAUD register, the rate it produces and the error.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "bus clock %s\n", baudClock)
		fmt.Fprintf(out, "%-8s %6s %6s %10s %s\n", "RATE", "INT", "FRAC", "ACTUAL", "ERROR")

		for _, arg := range args {
			rate, err := strconv.ParseUint(arg, 10, 32)
			if err != nil {
				return fmt.Errorf("baud rate %q: %w", arg, err)
			}
			baud := uint32(rate)
			if !serial.BaudInRange(baudClock, baud) {
				fmt.Fprintf(out, "%-8d impossible\n", baud)
				continue
			}
			intdiv, fradiv := serial.BaudDivisor(baudClock, baud)
			actual := float64(rcu.Hz(baudClock)) / float64(intdiv<<4|fradiv)
			fmt.Fprintf(out, "%-8d %6d %6d %10.1f %+.2f%%\n", baud, intdiv, fradiv, actual, (actual-float64(baud))/float64(baud)*100)
		}
		return nil
	},
}

func init() {
	baudClock = rcu.IRC8M
	baudCmd.Flags().Var(freqFlag{&baudClock}, "clock", "USART bus clock")
	rootCmd.AddCommand(baudCmd)
}
