package wearlevel

import (
	"fmt"

	"github.com/tamzrod/wearlevel/internal/layout"
	"github.com/tamzrod/wearlevel/internal/medium"
)

// InitByte seeds seg with the canonical ascending sequence pattern and
// stores v in value slot 0. It always costs N+1 raw writes and resets any
// history the segment had, so it belongs to first provisioning only.
// It returns v for convenience.
func InitByte(m medium.Medium, seg layout.Segment, v byte) (byte, error) {
	if err := checkSegment(seg); err != nil {
		return 0, err
	}

	// slot 0 carries N-1, slots 1..N-1 carry 0..N-2: the break sits after slot 0
	if err := m.Write(seg.SeqAddr(0), byte(seg.Slots-1)); err != nil {
		return 0, fmt.Errorf("wearlevel: init base=%d: %w", seg.Base, err)
	}
	for i := 1; i < seg.Slots; i++ {
		if err := m.Write(seg.SeqAddr(i), byte(i-1)); err != nil {
			return 0, fmt.Errorf("wearlevel: init base=%d: %w", seg.Base, err)
		}
	}

	if err := m.Write(seg.ValueAddr(0), v); err != nil {
		return 0, fmt.Errorf("wearlevel: init base=%d: %w", seg.Base, err)
	}
	return v, nil
}

// ReadByte returns the value held in the current slot of seg.
// The segment must have been initialized with InitByte.
func ReadByte(m medium.Medium, seg layout.Segment) (byte, error) {
	i, err := Locate(m, seg)
	if err != nil {
		return 0, err
	}

	v, err := m.Read(seg.ValueAddr(i))
	if err != nil {
		return 0, fmt.Errorf("wearlevel: read base=%d: %w", seg.Base, err)
	}
	return v, nil
}

// WriteByte stores v in seg.
//
// When the current slot already holds v nothing is written. Otherwise v goes
// into the next slot (wrapping to slot 0) and that slot's sequence byte is
// set to the old sequence byte plus one: exactly two raw writes, value first.
func WriteByte(m medium.Medium, seg layout.Segment, v byte) error {
	i, err := Locate(m, seg)
	if err != nil {
		return err
	}

	cur, err := m.Read(seg.ValueAddr(i))
	if err != nil {
		return fmt.Errorf("wearlevel: write base=%d: %w", seg.Base, err)
	}
	if cur == v {
		return nil
	}

	oldSeq, err := m.Read(seg.SeqAddr(i))
	if err != nil {
		return fmt.Errorf("wearlevel: write base=%d: %w", seg.Base, err)
	}

	next := i + 1
	if next == seg.Slots {
		next = 0
	}

	if err := m.Write(seg.ValueAddr(next), v); err != nil {
		return fmt.Errorf("wearlevel: write base=%d slot=%d: %w", seg.Base, next, err)
	}
	if err := m.Write(seg.SeqAddr(next), oldSeq+1); err != nil {
		return fmt.Errorf("wearlevel: write base=%d slot=%d: %w", seg.Base, next, err)
	}
	return nil
}
