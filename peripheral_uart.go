// peripheral_uart.go - UART0 register model

package main

import (
	"io"
	"os"
)

// UART0 register offsets.
const (
	UARTDR   = 0x00
	UARTFR   = 0x18
	UARTIBRD = 0x24
	UARTFBRD = 0x28
	UARTCR   = 0x30
)

// Uart models the single UART0 port the bootrom and most example firmware
// use for console output. DR writes go to stdout by default, or to a host
// serial device when one has been attached via AttachSerial.
type Uart struct {
	*RegisterMap
	fr     uint32
	cr     uint32
	serial io.Writer
}

// NewUart registers hooks for DR/FR/IBRD/FBRD/CR; serial output defaults to
// os.Stdout until AttachSerial is called.
func NewUart() *Uart {
	u := &Uart{RegisterMap: NewRegisterMap("UART0", UART0_BASE, UART0_SIZE, false), cr: 1, serial: os.Stdout}
	u.OnWrite(UARTDR, u.writeDR)
	u.OnRead(UARTFR, u.readFR)
	u.OnRead(UARTIBRD, func() uint32 { return 0 })
	u.OnRead(UARTFBRD, func() uint32 { return 0 })
	u.OnRead(UARTCR, u.readCR)
	u.OnWrite(UARTCR, func(v uint32) { u.cr = v })
	return u
}

// AttachSerial redirects DR writes to w, in place of the stdout default.
// Used by the CLI's -S/--serial flag to bridge UART0 to a host serial device.
func (u *Uart) AttachSerial(w io.Writer) { u.serial = w }

func (u *Uart) writeDR(value uint32) {
	b := byte(value)
	if _, err := u.serial.Write([]byte{b}); err != nil {
		uartLog.Printf("write to data register [%#x/%q] failed: %v", value, string(b), err)
	}
}

func (u *Uart) readFR() uint32 { return u.fr }

func (u *Uart) readCR() uint32 { return u.cr }
