package wearlevel

import (
	"fmt"

	"github.com/tamzrod/wearlevel/internal/layout"
	"github.com/tamzrod/wearlevel/internal/medium"
)

// Locate returns the index of the current value slot in seg.
//
// It walks the sequence slots from slot 0 while each byte is the successor
// (mod 256) of the one before, and stops at the first break or at the end.
// The slot before the stopping point is current.
func Locate(m medium.Medium, seg layout.Segment) (int, error) {
	if err := checkSegment(seg); err != nil {
		return 0, err
	}

	tmp, err := m.Read(seg.SeqAddr(0))
	if err != nil {
		return 0, fmt.Errorf("wearlevel: locate base=%d: %w", seg.Base, err)
	}

	i := 1
	for ; i < seg.Slots; i++ {
		seq, err := m.Read(seg.SeqAddr(i))
		if err != nil {
			return 0, fmt.Errorf("wearlevel: locate base=%d: %w", seg.Base, err)
		}
		if seq != tmp+1 {
			break
		}
		tmp = seq
	}

	return i - 1, nil
}

func checkSegment(seg layout.Segment) error {
	return layout.Geometry{Factor: seg.Slots}.Validate()
}
