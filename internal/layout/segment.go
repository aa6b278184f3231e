package layout

import "fmt"

// Geometry carries the wear level factor shared by every segment on a medium.
type Geometry struct {
	Factor int
}

// NewGeometry returns a Geometry for factor, rejecting out-of-range values.
func NewGeometry(factor int) (Geometry, error) {
	g := Geometry{Factor: factor}
	if err := g.Validate(); err != nil {
		return Geometry{}, err
	}
	return g, nil
}

// Validate reports whether the factor is usable.
func (g Geometry) Validate() error {
	if g.Factor < MinFactor || g.Factor > MaxFactor {
		return fmt.Errorf("%w: %d (want %d..%d)", ErrInvalidFactor, g.Factor, MinFactor, MaxFactor)
	}
	return nil
}

// SegmentSize is the footprint of one byte parameter: N value slots
// followed by N sequence slots.
func (g Geometry) SegmentSize() int {
	return 2 * g.Factor
}

// BlockSize is the footprint of a block parameter of length bytes.
func (g Geometry) BlockSize(length int) int {
	return length * g.SegmentSize()
}

// Segment describes the byte parameter based at base.
func (g Geometry) Segment(base uint16) Segment {
	return Segment{Base: base, Slots: g.Factor}
}

// Block describes the block parameter of length bytes based at base.
func (g Geometry) Block(base uint16, length int) Block {
	return Block{Base: base, Length: length, Slots: g.Factor}
}

// Segment is the medium region backing one logical byte.
//
//	[Base, Base+Slots)          value slots
//	[Base+Slots, Base+2*Slots)  sequence slots
type Segment struct {
	Base  uint16
	Slots int
}

// ValueAddr returns the address of value slot i.
func (s Segment) ValueAddr(i int) uint16 {
	return s.Base + uint16(i)
}

// SeqAddr returns the address of the sequence slot paired with value slot i.
func (s Segment) SeqAddr(i int) uint16 {
	return s.Base + uint16(s.Slots) + uint16(i)
}

// Size is the number of medium bytes the segment occupies.
func (s Segment) Size() int {
	return 2 * s.Slots
}

// End is the first address after the segment. It is an int so a segment
// ending at the top of the address space does not wrap.
func (s Segment) End() int {
	return int(s.Base) + s.Size()
}

// Block is a fixed-length value stored as one independent byte segment
// per offset, laid out back to back.
type Block struct {
	Base   uint16
	Length int
	Slots  int
}

// Stride is the distance between the segments of consecutive offsets.
func (b Block) Stride() int {
	return 2 * b.Slots
}

// Segment returns the byte segment backing offset k.
func (b Block) Segment(k int) Segment {
	return Segment{
		Base:  b.Base + uint16(k*b.Stride()),
		Slots: b.Slots,
	}
}

// Size is the number of medium bytes the block occupies.
func (b Block) Size() int {
	return b.Length * b.Stride()
}

// End is the first address after the block.
func (b Block) End() int {
	return int(b.Base) + b.Size()
}
