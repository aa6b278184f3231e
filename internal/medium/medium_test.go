package medium

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/tamzrod/wearlevel/internal/metrics"
)

func TestMemory_Erased(t *testing.T) {
	m := NewMemory(32)

	if m.Size() != 32 {
		t.Fatalf("size: got=%d want=32", m.Size())
	}
	for i, b := range m.Bytes() {
		if b != 0xFF {
			t.Fatalf("cell %d: got=%#x want=0xff", i, b)
		}
	}
}

func TestMemory_OutOfRange(t *testing.T) {
	m := NewMemory(8)

	if _, err := m.Read(8); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("read: expected ErrOutOfRange, got %v", err)
	}
	if err := m.Write(8, 0); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("write: expected ErrOutOfRange, got %v", err)
	}
}

func TestMemory_BytesIsCopy(t *testing.T) {
	m := NewMemory(4)
	snap := m.Bytes()
	snap[0] = 0

	if b, _ := m.Read(0); b != 0xFF {
		t.Fatalf("Bytes must not alias the medium")
	}
}

func TestDump_Format(t *testing.T) {
	m := NewMemory(32)
	_ = m.Write(0, 0x40)
	_ = m.Write(17, 0x07)

	var buf bytes.Buffer
	if err := Dump(&buf, m, 0, 32); err != nil {
		t.Fatalf("dump: %v", err)
	}

	want := dumpRule +
		"40 " + strings.Repeat("FF ", 15) + "\n" +
		"FF 07 " + strings.Repeat("FF ", 14) + "\n" +
		dumpRule

	if buf.String() != want {
		t.Fatalf("dump mismatch:\ngot:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestDump_BadRange(t *testing.T) {
	m := NewMemory(16)
	var buf bytes.Buffer

	if err := Dump(&buf, m, 0, 17); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if err := Dump(&buf, m, 8, 4); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
}

func TestMetered_CountsWear(t *testing.T) {
	before := metrics.Collect()

	m := NewMetered(NewMemory(16))

	_ = m.Write(3, 0x10) // physical
	_ = m.Write(3, 0x10) // skipped
	_ = m.Write(3, 0x11) // physical
	_ = m.Write(4, 0xFF) // skipped: erased cell already holds it
	_, _ = m.Read(3)

	if got := m.CellWrites(3); got != 2 {
		t.Fatalf("cell 3 writes: got=%d want=2", got)
	}
	if got := m.CellWrites(4); got != 0 {
		t.Fatalf("cell 4 writes: got=%d want=0", got)
	}
	if m.MaxCellWrites() != 2 || m.TotalWrites() != 2 {
		t.Fatalf("max/total: got=%d/%d want=2/2", m.MaxCellWrites(), m.TotalWrites())
	}

	after := metrics.Collect()
	if after.Writes-before.Writes != 2 {
		t.Fatalf("writes counter delta: got=%v want=2", after.Writes-before.Writes)
	}
	if after.SkippedWrites-before.SkippedWrites != 2 {
		t.Fatalf("skipped counter delta: got=%v want=2", after.SkippedWrites-before.SkippedWrites)
	}
	// Write reads through the inner medium, so only the explicit Read counts.
	if after.Reads-before.Reads != 1 {
		t.Fatalf("reads counter delta: got=%v want=1", after.Reads-before.Reads)
	}
}

func TestMetered_PropagatesErrors(t *testing.T) {
	m := NewMetered(NewMemory(4))

	if err := m.Write(4, 1); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if _, err := m.Read(9); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
}
