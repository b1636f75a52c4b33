/*
NAME
  bytes.go

AUTHOR
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/


// Package codecutil provides shared utilities for parsing raw codec and
// container byte buffers.
package codecutil

// Uint16BE returns the big-endian 16-bit value at offset off in b. The
// second return is false if the read would fall outside b.
func Uint16BE(b []byte, off int) (uint16, bool) {
	if off < 0 || off+2 > len(b) {
		return 0, false
	}
	return uint16(b[off])<<8 | uint16(b[off+1]), true
}

// Uint16LE returns the little-endian 16-bit value at offset off in b.
func Uint16LE(b []byte, off int) (uint16, bool) {
	if off < 0 || off+2 > len(b) {
		return 0, false
	}
	return uint16(b[off+1])<<8 | uint16(b[off]), true
}

// Uint24BE returns the big-endian 24-bit value at offset off in b.
func Uint24BE(b []byte, off int) (uint32, bool) {
	if off < 0 || off+3 > len(b) {
		return 0, false
	}
	return uint32(b[off])<<16 | uint32(b[off+1])<<8 | uint32(b[off+2]), true
}

// Uint24LE returns the little-endian 24-bit value at offset off in b.
func Uint24LE(b []byte, off int) (uint32, bool) {
	if off < 0 || off+3 > len(b) {
		return 0, false
	}
	return uint32(b[off+2])<<16 | uint32(b[off+1])<<8 | uint32(b[off]), true
}

// Uint32BE returns the big-endian 32-bit value at offset off in b.
func Uint32BE(b []byte, off int) (uint32, bool) {
	if off < 0 || off+4 > len(b) {
		return 0, false
	}
	return uint32(b[off])<<24 | uint32(b[off+1])<<16 | uint32(b[off+2])<<8 | uint32(b[off+3]), true
}

// Uint32LE returns the little-endian 32-bit value at offset off in b.
func Uint32LE(b []byte, off int) (uint32, bool) {
	if off < 0 || off+4 > len(b) {
		return 0, false
	}
	return uint32(b[off+3])<<24 | uint32(b[off+2])<<16 | uint32(b[off+1])<<8 | uint32(b[off]), true
}
