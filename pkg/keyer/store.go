package keyer

// Store is the addressable storage collaborator: one synchronous
// write port and one read port with a one-tick latency. A change to
// the presented read address is observed on the following tick, not
// the same tick — Data returns the cell at the address presented
// before the most recent Tick.
type Store interface {
	Capacity() int
	Write(addr int, v byte)
	Present(addr int)
	Data() byte
	Tick()
	Reset()
}

// RAM is an array-backed Store. Any implementation satisfying the
// latency contract is acceptable; this one latches the addressed cell
// into an output register on Tick.
type RAM struct {
	cells []byte
	addr  int
	out   byte
}

// NewRAM creates a RAM with the given capacity.
func NewRAM(capacity int) *RAM {
	return &RAM{cells: make([]byte, capacity)}
}

// Capacity implements Store.
func (m *RAM) Capacity() int {
	return len(m.cells)
}

// Write implements Store. The write takes effect within the current
// tick, so a Tick latching the same address afterwards observes the
// new value (write-first behavior).
func (m *RAM) Write(addr int, v byte) {
	m.cells[addr] = v
}

// Present implements Store.
func (m *RAM) Present(addr int) {
	m.addr = addr
}

// Data implements Store.
func (m *RAM) Data() byte {
	return m.out
}

// Tick implements Store.
func (m *RAM) Tick() {
	m.out = m.cells[m.addr]
}

// Reset implements Store. It clears the address and output registers;
// cell contents survive, as in the hardware block this models.
func (m *RAM) Reset() {
	m.addr = 0
	m.out = 0
}
