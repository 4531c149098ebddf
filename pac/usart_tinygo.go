//go:build tinygo

package pac

// Receive reads the data register, which clears RBNE.
func (u *USART_Type) Receive() uint32 {
	return u.DATA.Get()
}
