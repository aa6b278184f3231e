package medium

import "github.com/tamzrod/wearlevel/internal/layout"

// Memory is an in-memory medium, erased to 0xFF like a blank EEPROM.
// It stands in for the real part in tests and host-side tooling.
type Memory struct {
	cells []byte
}

var _ Medium = (*Memory)(nil)

// NewMemory returns an erased medium of size bytes.
func NewMemory(size int) *Memory {
	cells := make([]byte, size)
	for i := range cells {
		cells[i] = layout.ErasedByte
	}
	return &Memory{cells: cells}
}

func (m *Memory) Read(addr uint16) (byte, error) {
	if err := checkRange(addr, len(m.cells)); err != nil {
		return 0, err
	}
	return m.cells[addr], nil
}

func (m *Memory) Write(addr uint16, b byte) error {
	if err := checkRange(addr, len(m.cells)); err != nil {
		return err
	}
	m.cells[addr] = b
	return nil
}

func (m *Memory) Size() int { return len(m.cells) }

// Bytes returns a copy of the whole image.
func (m *Memory) Bytes() []byte {
	out := make([]byte, len(m.cells))
	copy(out, m.cells)
	return out
}
