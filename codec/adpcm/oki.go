/*
NAME
  oki.go

DESCRIPTION
  oki.go implements decoding of OKI MSM6258V ADPCM, the 4-bit encoding
  used for sample data on the X68000 sound subsystem.

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
	"math"

	"github.com/Optiroc/MDXtract/codec/codecutil"
)

const (
	okiStepMin = 0
	okiStepMax = 48
	okiSigInit = -2 // Chip DAC idles just below zero.
)

// Adaptation step delta per nibble.
var okiStepDelta = [16]int{
	-1, -1, -1, -1, 2, 4, 6, 8,
	-1, -1, -1, -1, 2, 4, 6, 8,
}

// okiDiff[s][n] is the signal delta for nibble n at adaptation step s.
// Row s scales a base value floor(16 * 1.1^s) by the weighted bits of the
// nibble, with bit 3 giving the sign. The integer division at each
// weighting stage matches the chip's table exactly.
var okiDiff [okiStepMax + 1][16]int

func init() {
	for s := range okiDiff {
		sv := int(math.Floor(16.0 * math.Pow(1.1, float64(s))))
		for n := range okiDiff[s] {
			d := sv / 8
			if n&4 != 0 {
				d += sv
			}
			if n&2 != 0 {
				d += sv / 2
			}
			if n&1 != 0 {
				d += sv / 4
			}
			if n&8 != 0 {
				d = -d
			}
			okiDiff[s][n] = d
		}
	}
}

// OKIDecoder decodes OKI MSM6258V ADPCM to 16-bit PCM.
type OKIDecoder struct {
	// dst is the destination for PCM-encoded data.
	dst io.Writer

	sig  int // Running signal accumulator.
	step int // Adaptation step, an index into okiDiff.
}

// NewOKIDecoder returns a new OKIDecoder that writes decoded PCM to dst.
// Decoder state carries across calls to Write, so one OKIDecoder must only
// be used to decode a single ADPCM stream.
func NewOKIDecoder(dst io.Writer) *OKIDecoder {
	return &OKIDecoder{dst: dst, sig: okiSigInit}
}

// Write decodes a slice of MSM6258V ADPCM bytes, low nibble first, and
// writes the resulting PCM to the decoder's dst. The number of bytes
// written out is returned along with the first error encountered.
func (d *OKIDecoder) Write(b []byte) (int, error) {
	out := make([]byte, 0, 4*len(b))
	nr := codecutil.NewNibbleReader(b, codecutil.LowNibbleFirst)
	for {
		n, ok := nr.Next()
		if !ok {
			break
		}
		d.sig = clamp16(d.sig + okiDiff[d.step][n])
		d.step = clampRange(d.step+okiStepDelta[n], okiStepMin, okiStepMax)
		out = append(out, byte(d.sig), byte(d.sig>>8))
	}
	return d.dst.Write(out)
}
