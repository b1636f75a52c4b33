/*
NAME
  adpcm.go

AUTHOR
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/


// Package adpcm provides decoders for the 4-bit ADPCM encodings used by
// the Yamaha DELTA-T and OKI MSM6258V sound chips. Both decode to 16-bit
// signed little-endian PCM.
package adpcm

import "math"

// clamp16 clamps v to the signed 16-bit sample range.
func clamp16(v int) int {
	switch {
	case v < math.MinInt16:
		return math.MinInt16
	case v > math.MaxInt16:
		return math.MaxInt16
	default:
		return v
	}
}

// clampRange clamps v to [lo,hi].
func clampRange(v, lo, hi int) int {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}
