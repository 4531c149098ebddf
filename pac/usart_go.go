//go:build !tinygo

package pac

// Receive reads the data register, which clears RBNE. The register model
// clears the flag itself; tests load DATA and set RBNE to simulate a
// received byte.
func (u *USART_Type) Receive() uint32 {
	v := u.DATA.Get()
	u.STAT.ClearBits(USART_STAT_RBNE)
	return v
}
