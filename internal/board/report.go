package board

import (
	"fmt"
	"io"

	"gdhal/pac"
	"gdhal/timer"
)

// WriteSummary prints the clocks and the configured peripherals.
func (b *Board) WriteSummary(w io.Writer) {
	fmt.Fprintf(w, "board %s\n", b.Name)
	fmt.Fprintf(w, "  sysclk %s  ahb %s  apb1 %s  apb2 %s\n", b.Clocks.SysClk, b.Clocks.AHB, b.Clocks.APB1, b.Clocks.APB2)

	if p := b.PWM; p != nil {
		fmt.Fprintf(w, "  TIMER%d clk %s psc %d car %d -> %s\n", p.Timer, p.Clock, p.Prescaler, p.AutoReload, p.Achieved)
		for _, c := range p.Channels {
			pol := "high"
			if c.Polarity == timer.ActiveLow {
				pol = "low"
			}
			fmt.Fprintf(w, "    CH%d %-4s duty %d/%d active %s\n", c.Channel, c.Pin, c.Duty, c.MaxDuty, pol)
		}
	}
	if s := b.Serial; s != nil {
		fmt.Fprintf(w, "  USART%d tx %s rx %s %d baud parity %s stop %s div %d+%d/16\n",
			s.USART, s.Tx, s.Rx, s.Line.Baud, s.Line.Parity, s.Line.StopBits, s.IntDiv, s.FraDiv)
	}
}

// DumpRegisters prints the registers the bring-up writes.
func DumpRegisters(w io.Writer, p *pac.Peripherals) {
	rr := p.RCU.Regs()
	fmt.Fprintf(w, "RCU    CFG0 %08x APB1EN %08x APB2EN %08x\n", rr.CFG0.Get(), rr.APB1EN.Get(), rr.APB2EN.Get())
	fmt.Fprintf(w, "AFIO   PCF0 %08x\n", p.AFIO.Regs().PCF0.Get())

	for i, port := range []pac.Port{p.GPIOA, p.GPIOB, p.GPIOC, p.GPIOD, p.GPIOE} {
		g := port.Regs()
		fmt.Fprintf(w, "GPIO%c  CTL0 %08x CTL1 %08x OCTL %08x LOCK %08x\n", 'A'+i, g.CTL0.Get(), g.CTL1.Get(), g.OCTL.Get(), g.LOCK.Get())
	}

	for _, t := range []pac.TimerPeriph{p.TIMER0, p.TIMER1, p.TIMER2, p.TIMER3, p.TIMER4} {
		tr := t.Regs()
		if tr.CTL0.Get() == 0 && tr.CAR.Get() == 0 {
			continue
		}
		fmt.Fprintf(w, "TIMER%d CTL0 %08x PSC %04x CAR %04x CHCTL0 %08x CHCTL1 %08x CHCTL2 %08x\n",
			t.Index(), tr.CTL0.Get(), tr.PSC.Get(), tr.CAR.Get(), tr.CHCTL0.Get(), tr.CHCTL1.Get(), tr.CHCTL2.Get())
		fmt.Fprintf(w, "       CH0CV %04x CH1CV %04x CH2CV %04x CH3CV %04x CCHP %08x\n",
			tr.CH0CV.Get(), tr.CH1CV.Get(), tr.CH2CV.Get(), tr.CH3CV.Get(), tr.CCHP.Get())
	}

	for _, u := range []pac.USARTPeriph{p.USART0, p.USART1, p.USART2} {
		ur := u.Regs()
		if ur.CTL0.Get() == 0 {
			continue
		}
		fmt.Fprintf(w, "USART%d BAUD %08x CTL0 %08x CTL1 %08x\n", u.Index(), ur.BAUD.Get(), ur.CTL0.Get(), ur.CTL1.Get())
	}
}
