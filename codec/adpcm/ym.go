/*
NAME
  ym.go

DESCRIPTION
  ym.go implements decoding of Yamaha DELTA-T ADPCM, the 4-bit encoding
  used for sample ROM and RAM data on the YM2608 family of sound chips.

AUTHOR
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/


package adpcm

import (
	"io"

	"github.com/Optiroc/MDXtract/codec/codecutil"
)

const (
	ymStepMin      = 127   // Initial and minimum adaptation step.
	ymStepMax      = 24576 // Maximum adaptation step.
	ymSampsPerByte = 2
)

// Signal delta per nibble, scaled by the current step.
var ymDiff = [16]int{
	1, 3, 5, 7, 9, 11, 13, 15,
	-1, -3, -5, -7, -9, -11, -13, -15,
}

// Step multiplier per nibble, applied as step*mul/64.
var ymStepMul = [16]int{
	57, 57, 57, 57, 77, 102, 128, 153,
	57, 57, 57, 57, 77, 102, 128, 153,
}

// YMDecoder decodes Yamaha DELTA-T ADPCM to 16-bit PCM.
type YMDecoder struct {
	// dst is the destination for PCM-encoded data.
	dst io.Writer

	sig  int // Running signal accumulator.
	step int // Adaptation step.
}

// NewYMDecoder returns a new YMDecoder that writes decoded PCM to dst.
// Decoder state carries across calls to Write, so one YMDecoder must only
// be used to decode a single ADPCM stream.
func NewYMDecoder(dst io.Writer) *YMDecoder {
	return &YMDecoder{dst: dst, step: ymStepMin}
}

// Write decodes a slice of DELTA-T ADPCM bytes, high nibble first, and
// writes the resulting PCM to the decoder's dst. The number of bytes
// written out is returned along with the first error encountered.
func (d *YMDecoder) Write(b []byte) (int, error) {
	out := make([]byte, 0, ymSampsPerByte*2*len(b))
	nr := codecutil.NewNibbleReader(b, codecutil.HighNibbleFirst)
	for {
		n, ok := nr.Next()
		if !ok {
			break
		}
		d.sig = clamp16((d.sig*8 + d.step*ymDiff[n]) / 8)
		d.step = clampRange(d.step*ymStepMul[n]/64, ymStepMin, ymStepMax)
		out = append(out, byte(d.sig), byte(d.sig>>8))
	}
	return d.dst.Write(out)
}
