package layout

import "errors"

// Segment geometry constants.
// These values define the on-medium format and MUST NOT change between
// builds that share a medium.

// ---- WEAR LEVEL FACTOR ----

// MinFactor is the smallest usable number of slots per byte segment.
const MinFactor = 1

// MaxFactor is the largest usable number of slots per byte segment.
// With 256 slots the seeded sequence pattern wraps into one continuous
// run and the locator can no longer see the break.
const MaxFactor = 255

// DefaultFactor guarantees roughly 800k writes on a 100k-cycle EEPROM.
const DefaultFactor = 8

// ---- ERASED STATE ----

// ErasedByte is the value of a blank EEPROM cell.
const ErasedByte byte = 0xFF

// ---- ADDRESS SPACE ----

// AddressSpace is the number of addressable bytes (16-bit addresses).
const AddressSpace = 1 << 16

// ErrInvalidFactor is returned for a wear level factor outside
// [MinFactor, MaxFactor].
var ErrInvalidFactor = errors.New("layout: wear level factor out of range")
