/*
NAME
  pcm.go

DESCRIPTION
  pcm.go contains functions for processing pcm.

AUTHOR
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/


// Package pcm provides functions for processing and converting pcm audio.
// All functions operate on mono 16-bit signed little-endian data unless
// stated otherwise, and never mutate their input.
package pcm

import (
	"encoding/binary"

	"github.com/Optiroc/MDXtract/codec/codecutil"
)

// Adjust applies gain scaling and optional DC bias removal to b and
// returns the adjusted copy. The DC bias is the arithmetic mean of all
// samples, floor-divided. Each output sample is clamped to the signed
// 16-bit range. A buffer of odd length cannot hold whole samples and is
// returned as-is.
func Adjust(b []byte, gain float64, normalize bool) []byte {
	if len(b)%2 != 0 {
		return b
	}
	n := len(b) / 2
	if n == 0 {
		return []byte{}
	}

	var bias int
	if normalize {
		var sum int
		for i := 0; i < len(b); i += 2 {
			sum += int(int16(binary.LittleEndian.Uint16(b[i:])))
		}
		bias = sum / n
		if sum%n != 0 && sum < 0 {
			bias--
		}
	}

	out := make([]byte, len(b))
	for i := 0; i < len(b); i += 2 {
		v := float64(int(int16(binary.LittleEndian.Uint16(b[i:])))-bias) * gain
		if v > 32767 {
			v = 32767
		} else if v < -32768 {
			v = -32768
		}
		binary.LittleEndian.PutUint16(out[i:], uint16(int16(v)))
	}
	return out
}

// S8ToS16 widens signed 8-bit samples to 16-bit.
func S8ToS16(b []byte) []byte {
	out := make([]byte, 0, 2*len(b))
	for _, v := range b {
		s := int16(int8(v)) << 8
		out = append(out, byte(s), byte(s>>8))
	}
	return out
}

// DecodeSSG decodes 4-bit SSG rhythm samples to 16-bit PCM. Each nibble,
// low nibble first, maps linearly onto [-60,60] and is widened to 16-bit.
func DecodeSSG(b []byte) []byte {
	out := make([]byte, 0, 4*len(b))
	nr := codecutil.NewNibbleReader(b, codecutil.LowNibbleFirst)
	for {
		n, ok := nr.Next()
		if !ok {
			break
		}
		s := int16(int(n)<<3-60) << 8
		out = append(out, byte(s), byte(s>>8))
	}
	return out
}
