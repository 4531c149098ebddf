package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"periph.io/x/conn/v3/physic"

	"gdhal/rcu"
	"gdhal/timer"
)

var planClock physic.Frequency

var planCmd = &cobra.Command{
	Use:   "plan FREQUENCY...",
	Short: "Compute timer prescaler and auto-reload values",
	Long: `For each requested frequency, print the prescaler (PSC) and auto-reload
(CAR) values the PWM driver programs, the frequency the timer actually
reaches and its drift from the request.

Frequencies take a unit suffix: 50Hz, 1kHz, 2.5MHz.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "timer clock %s\n", planClock)
		fmt.Fprintf(out, "%-12s %6s %6s %-14s %s\n", "REQUEST", "PSC", "CAR", "ACHIEVED", "DRIFT")

		for _, arg := range args {
			var freq physic.Frequency
			if err := freq.Set(arg); err != nil {
				return fmt.Errorf("frequency %q: %w", arg, err)
			}
			if !timer.InRange(planClock, freq) {
				fmt.Fprintf(out, "%-12s out of range\n", freq)
				continue
			}
			psc, car := timer.Prescalers(planClock, freq)
			got := timer.Achieved(planClock, psc, car)
			fmt.Fprintf(out, "%-12s %6d %6d %-14s %+.1f ppm\n", freq, psc, car, got, drift(got, freq))
		}
		return nil
	},
}

// drift returns the relative error of got against want in parts per million.
func drift(got, want physic.Frequency) float64 {
	return (float64(got) - float64(want)) / float64(want) * 1e6
}

func init() {
	planClock = rcu.IRC8M
	planCmd.Flags().Var(freqFlag{&planClock}, "clock", "timer kernel clock")
	rootCmd.AddCommand(planCmd)
}
