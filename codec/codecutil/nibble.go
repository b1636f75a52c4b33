/*
NAME
  nibble.go

DESCRIPTION
  nibble.go provides iteration over the 4-bit values packed into a byte
  slice, in either nibble order.

AUTHOR
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/


package codecutil

// Nibble orders. ADPCM codecs disagree on which half of a byte holds the
// first sample, so the order is selected per codec.
const (
	HighNibbleFirst = iota
	LowNibbleFirst
)

// A NibbleReader yields successive 4-bit values from a byte slice. The
// reader does not mutate the underlying slice and may be reset to the
// start at any time.
type NibbleReader struct {
	buf   []byte
	order int
	pos   int  // byte index of the next nibble
	half  bool // true if the first nibble of buf[pos] is consumed
}

// NewNibbleReader returns a NibbleReader over b using the given nibble
// order, one of HighNibbleFirst or LowNibbleFirst.
func NewNibbleReader(b []byte, order int) *NibbleReader {
	return &NibbleReader{buf: b, order: order}
}

// Next returns the next 4-bit value. The second return is false once the
// slice is exhausted.
func (n *NibbleReader) Next() (uint8, bool) {
	if n.pos >= len(n.buf) {
		return 0, false
	}
	b := n.buf[n.pos]
	var v uint8
	switch {
	case n.order == HighNibbleFirst && !n.half:
		v = b >> 4
	case n.order == HighNibbleFirst:
		v = b & 0xf
	case !n.half:
		v = b & 0xf
	default:
		v = b >> 4
	}
	if n.half {
		n.pos++
	}
	n.half = !n.half
	return v, true
}

// Len returns the number of nibbles remaining.
func (n *NibbleReader) Len() int {
	l := 2 * (len(n.buf) - n.pos)
	if n.half {
		l--
	}
	return l
}

// Reset rewinds the reader to the first nibble.
func (n *NibbleReader) Reset() {
	n.pos = 0
	n.half = false
}
