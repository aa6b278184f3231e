package wearlevel

import (
	"fmt"

	"github.com/tamzrod/wearlevel/internal/layout"
	"github.com/tamzrod/wearlevel/internal/medium"
)

// InitBlock initializes every byte segment of blk with the matching byte of buf.
func InitBlock(m medium.Medium, blk layout.Block, buf []byte) error {
	if err := checkBlock(blk, buf); err != nil {
		return err
	}
	for k := 0; k < blk.Length; k++ {
		if _, err := InitByte(m, blk.Segment(k), buf[k]); err != nil {
			return fmt.Errorf("wearlevel: init block offset=%d: %w", k, err)
		}
	}
	return nil
}

// ReadBlock fills buf with the current value of blk.
// It is typically called once per parameter at power-up and never
// writes to the medium.
func ReadBlock(m medium.Medium, blk layout.Block, buf []byte) error {
	if err := checkBlock(blk, buf); err != nil {
		return err
	}
	for k := 0; k < blk.Length; k++ {
		v, err := ReadByte(m, blk.Segment(k))
		if err != nil {
			return fmt.Errorf("wearlevel: read block offset=%d: %w", k, err)
		}
		buf[k] = v
	}
	return nil
}

// WriteBlock stores buf in blk.
// Each offset is written independently, so only bytes that changed
// cost raw writes (at most two each).
func WriteBlock(m medium.Medium, blk layout.Block, buf []byte) error {
	if err := checkBlock(blk, buf); err != nil {
		return err
	}
	for k := 0; k < blk.Length; k++ {
		if err := WriteByte(m, blk.Segment(k), buf[k]); err != nil {
			return fmt.Errorf("wearlevel: write block offset=%d: %w", k, err)
		}
	}
	return nil
}

func checkBlock(blk layout.Block, buf []byte) error {
	if len(buf) != blk.Length {
		return fmt.Errorf("%w: got=%d want=%d", ErrLength, len(buf), blk.Length)
	}
	return layout.Geometry{Factor: blk.Slots}.Validate()
}
