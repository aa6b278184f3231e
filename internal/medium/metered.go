package medium

import "github.com/tamzrod/wearlevel/internal/metrics"

// Metered wraps a Medium and records wear.
// A write of the value a cell already holds is counted as skipped and is
// not forwarded, which also gives update-only semantics to media that lack it.
type Metered struct {
	inner Medium
	cells []uint32
	max   uint32
}

var _ Medium = (*Metered)(nil)

// NewMetered wraps m.
func NewMetered(m Medium) *Metered {
	return &Metered{
		inner: m,
		cells: make([]uint32, m.Size()),
	}
}

func (m *Metered) Read(addr uint16) (byte, error) {
	b, err := m.inner.Read(addr)
	if err != nil {
		return 0, err
	}
	metrics.MediumReads.Inc()
	return b, nil
}

func (m *Metered) Write(addr uint16, b byte) error {
	cur, err := m.inner.Read(addr)
	if err != nil {
		return err
	}
	if cur == b {
		metrics.MediumSkippedWrites.Inc()
		return nil
	}

	if err := m.inner.Write(addr, b); err != nil {
		return err
	}
	metrics.MediumWrites.Inc()

	m.cells[addr]++
	if n := m.cells[addr]; n > m.max {
		m.max = n
		metrics.MaxCellWrites.Set(float64(n))
	}
	return nil
}

func (m *Metered) Size() int { return m.inner.Size() }

// CellWrites returns the physical writes seen by addr.
func (m *Metered) CellWrites(addr uint16) uint32 {
	if int(addr) >= len(m.cells) {
		return 0
	}
	return m.cells[addr]
}

// MaxCellWrites returns the physical writes seen by the most worn cell.
func (m *Metered) MaxCellWrites() uint32 { return m.max }

// TotalWrites returns the physical writes across all cells.
func (m *Metered) TotalWrites() uint64 {
	var total uint64
	for _, n := range m.cells {
		total += uint64(n)
	}
	return total
}
