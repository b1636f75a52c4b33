/*
NAME
  pdx.go

DESCRIPTION
  pdx.go provides parsing of PDX sample archives and decoding of their
  ADPCM sample slots to 16-bit PCM.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/


// Package pdx parses PDX sample archives, the companion PCM banks of
// MDX songs on the Sharp X68000.
//
// A PDX archive is a table of 96 note slots, each an offset and length
// pair addressing OKI MSM6258V ADPCM data elsewhere in the file. Slots
// a song does not use are empty, and slot positions are meaningful, so
// parsing preserves them as absent rather than compacting the table.
package pdx

import (
	"bytes"

	"github.com/Optiroc/MDXtract/codec/adpcm"
	"github.com/Optiroc/MDXtract/codec/codecutil"
)

// NumSlots is the number of sample slots in an archive, one per note
// over eight octaves.
const NumSlots = 96

// File holds the parsed contents of a PDX sample archive.
type File struct {
	slots [][]byte
}

// Parse parses a PDX archive image. Damaged or truncated archives
// still parse; slots whose offset or length fall outside the buffer
// are simply absent.
func Parse(data []byte) *File {
	f := &File{slots: make([][]byte, NumSlots)}
	for i := 0; i < NumSlots; i++ {
		off, ok := codecutil.Uint32BE(data, i*8)
		if !ok {
			continue
		}
		n, ok := codecutil.Uint32BE(data, 4+i*8)
		if !ok {
			continue
		}
		if n > 1 && int(off)+int(n) <= len(data) {
			f.slots[i] = data[off : int(off)+int(n)]
		}
	}
	return f
}

// Region returns the raw ADPCM bytes of slot i, reporting whether the
// slot holds a sample.
func (f *File) Region(i int) ([]byte, bool) {
	if i < 0 || i >= len(f.slots) || f.slots[i] == nil {
		return nil, false
	}
	return f.slots[i], true
}

// Decode decodes the sample in slot i to 16-bit little-endian PCM,
// reporting whether the slot holds a sample.
func (f *File) Decode(i int) ([]byte, bool) {
	region, ok := f.Region(i)
	if !ok {
		return nil, false
	}
	var buf bytes.Buffer
	d := adpcm.NewOKIDecoder(&buf)
	d.Write(region)
	return buf.Bytes(), true
}
