// Package uart adapts a byte-stream serial link to the keyer's
// strobe-based collaborator interfaces.
package uart

// The physical receiver and transmitter own framing, parity, and baud
// generation; this package only moves bytes. Receive errors surfaced
// by the port terminate the pump and are reported to the runner; they
// are never wired into the keyer's buffering or control flow.
//
// Producer: serial port
// Consumer: keyer tick loop
