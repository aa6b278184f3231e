// Package medium provides the raw byte-addressable stores the wear-leveler
// runs on: an erased in-memory image, a memory-mapped image file, and a
// Modbus device (see the modbus subpackage).
//
// Every Medium has update-only semantics: writing the value a cell already
// holds must not cost a physical write.
package medium

import (
	"errors"
	"fmt"
	"io"
)

// Medium is the raw accessor consumed by the wear-leveler.
// Each individual byte write is assumed to be atomic.
type Medium interface {
	Read(addr uint16) (byte, error)
	Write(addr uint16, b byte) error
	Size() int
}

var (
	// ErrOutOfRange is returned for an address at or past Size().
	ErrOutOfRange = errors.New("medium: address out of range")

	// ErrUnsupported is returned by adapters not available on this platform.
	ErrUnsupported = errors.New("medium: unsupported on this platform")

	// ErrClosed is returned after Close.
	ErrClosed = errors.New("medium: closed")
)

func checkRange(addr uint16, size int) error {
	if int(addr) >= size {
		return fmt.Errorf("%w: addr=%d size=%d", ErrOutOfRange, addr, size)
	}
	return nil
}

const dumpRule = "-----------------------------------------------\n"

// Dump prints the bytes in [begin, end) as hex, 16 per line, framed by
// dashed rules.
func Dump(w io.Writer, m Medium, begin, end int) error {
	if begin < 0 || end > m.Size() || begin > end {
		return fmt.Errorf("%w: range=%d-%d size=%d", ErrOutOfRange, begin, end, m.Size())
	}

	if _, err := io.WriteString(w, dumpRule); err != nil {
		return err
	}
	for i := begin; i < end; i++ {
		b, err := m.Read(uint16(i))
		if err != nil {
			return fmt.Errorf("medium: dump addr=%d: %w", i, err)
		}
		sep := ""
		if (i+1)%16 == 0 {
			sep = "\n"
		}
		if _, err := fmt.Fprintf(w, "%02X %s", b, sep); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, dumpRule)
	return err
}
