// Package wearlevel stores single bytes and fixed-length blocks on a medium
// with limited write endurance, spreading each logical byte over N physical
// slots (the wear level factor).
//
// Segment layout for one byte parameter at base P with factor N:
//
//	P        .. P+N-1    value slots
//	P+N      .. P+2N-1   sequence slots (8-bit recency counters)
//
// Sequence bytes increase by one as slots are written circularly, so there
// is exactly one point where the next sequence byte is not the successor of
// the previous one. The value slot just before that break is current.
// A write stores the value in the next slot first and stamps its sequence
// byte second; losing power between the two leaves the old slot current.
//
// The counter is 8 bits wide and wraps every 256 writes to a segment. That
// bound is part of the scheme and is kept as is.
//
// Nothing here is safe for concurrent use on the same segment.
package wearlevel
