/*
NAME
  mdx.go

DESCRIPTION
  mdx.go provides parsing of MDX song files, extracting the title, the
  name of the companion PDX sample archive, the embedded voice records
  and the per-channel MML event data.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/


// Package mdx parses MDX song files, the native format of the MXDRV
// sound driver on the Sharp X68000.
//
// An MDX file opens with a Shift-JIS title terminated by CR LF, an
// optional PDX file name naming the sample archive the song plays, and
// a song data block holding per-channel MML event streams and a run of
// 27-byte OPM voice records.
package mdx

import (
	"bytes"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/japanese"

	"github.com/Optiroc/MDXtract/codec/codecutil"
	"github.com/Optiroc/MDXtract/voice/opm"
)

// maxTitleLen bounds the search for the title terminator. A terminator
// any further in means the buffer is not an MDX file.
const maxTitleLen = 255

// File holds the parsed contents of an MDX song file.
type File struct {
	// Title is the song title, decoded from Shift-JIS.
	Title string

	// PDXFile names the PDX sample archive the song plays, and is
	// empty for songs without PCM parts.
	PDXFile string

	// Channels is the number of MML channels in the song data.
	Channels int

	// Voices holds the raw 27-byte voice records in file order, for
	// unpacking with opm.FromMDX.
	Voices [][]byte

	// Tracks holds the MML event bytes of each channel.
	Tracks [][]byte
}

// Parse parses an MDX file image.
func Parse(data []byte) (*File, error) {
	term := bytes.Index(data, []byte{0x0d, 0x0a})
	if term < 0 || term > maxTitleLen {
		return nil, errors.New("no title terminator; not an MDX file")
	}
	f := &File{Title: decodeShiftJIS(data[:term])}

	// A skip byte follows the terminator, then the PDX file name as a
	// NUL-terminated string, or a bare NUL for songs without one.
	pdxStart := term + 3
	if pdxStart >= len(data) {
		return nil, errors.New("file truncated after title")
	}
	dataStart := pdxStart + 1
	if data[pdxStart] != 0 {
		nul := bytes.IndexByte(data[pdxStart:], 0x00)
		if nul < 0 {
			return nil, errors.New("unterminated PDX file name")
		}
		f.PDXFile = decodeShiftJIS(data[pdxStart : pdxStart+nul])
		dataStart = pdxStart + nul + 1
	}

	// The song data block starts with the voice data offset, then one
	// MML offset per channel. All offsets are relative to the start of
	// the block, and the size of the offset table itself gives the
	// channel count.
	voiceOff, ok := codecutil.Uint16BE(data, dataStart)
	if !ok {
		return nil, errors.New("file truncated in song data header")
	}
	mmlOff, ok := codecutil.Uint16BE(data, dataStart+2)
	if !ok {
		return nil, errors.New("file truncated in song data header")
	}
	f.Channels = int(mmlOff>>1) - 1

	voiceStart := dataStart + int(voiceOff)
	for off := voiceStart; off+opm.MDXVoiceLen <= len(data); off += opm.MDXVoiceLen {
		f.Voices = append(f.Voices, data[off:off+opm.MDXVoiceLen])
	}

	// The MML streams run back to back, each channel's data ending
	// where the next begins and the last ending at the voice data.
	bounds := make([]int, 0, f.Channels+1)
	for i := 0; i < f.Channels; i++ {
		off, ok := codecutil.Uint16BE(data, dataStart+2+i*2)
		if !ok {
			break
		}
		bounds = append(bounds, dataStart+int(off))
	}
	bounds = append(bounds, voiceStart)
	for i := 0; i+1 < len(bounds); i++ {
		lo, hi := clampOffset(bounds[i], len(data)), clampOffset(bounds[i+1], len(data))
		if hi < lo {
			hi = lo
		}
		f.Tracks = append(f.Tracks, data[lo:hi])
	}

	return f, nil
}

func clampOffset(off, n int) int {
	if off < 0 {
		return 0
	}
	if off > n {
		return n
	}
	return off
}

func decodeShiftJIS(b []byte) string {
	s, err := japanese.ShiftJIS.NewDecoder().String(string(b))
	if err != nil {
		return string(b)
	}
	return s
}
