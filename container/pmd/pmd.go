/*
NAME
  pmd.go

DESCRIPTION
  pmd.go provides parsing of compiled PMD song files, extracting the
  embedded voice records and the trailing metadata block with the song
  title, credits and companion sample bank names.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/


// Package pmd parses song files compiled for the PMD sound driver on
// the NEC PC-98.
//
// A compiled PMD file is a table of twelve data offsets followed by
// MML streams, 26-byte voice records and an optional metadata block.
// Only the voice records and metadata are of interest here; the MML
// streams are driver bytecode.
package pmd

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/japanese"

	"github.com/Optiroc/MDXtract/codec/codecutil"
	"github.com/Optiroc/MDXtract/voice/opm"
)

// Metadata holds the optional trailing metadata of a PMD file. Fields
// are empty when unset. PPZFile, PPSFile and PCMFile name the sample
// banks the song plays.
type Metadata struct {
	PPZFile  string
	PPSFile  string
	PCMFile  string
	Title    string
	Composer string
	Arranger string
	Memo1    string
	Memo2    string
}

// File holds the parsed contents of a PMD song file.
type File struct {
	// Voices holds the raw 26-byte voice records in file order, for
	// unpacking with opm.FromPMD. Byte 0 of each record is the voice
	// number.
	Voices [][]byte

	// Meta is the trailing metadata block, zero valued when the file
	// carries none.
	Meta Metadata
}

// Parse parses a compiled PMD file image.
func Parse(data []byte) (*File, error) {
	if len(data) < 2 || data[1] != 0x1a {
		return nil, errors.New("no data marker; not a PMD file")
	}

	// Twelve data offsets follow the marker: six FM channels, three
	// PSG channels, one PCM channel, rhythm data, and metadata. The
	// voice records start one past the metadata offset.
	metaOff, ok := codecutil.Uint16BE(data, 2+11*2)
	if !ok {
		return nil, errors.New("file truncated in offset table")
	}

	f := new(File)
	off := int(metaOff) + 1
	for off+opm.PMDVoiceLen <= len(data) {
		f.Voices = append(f.Voices, data[off:off+opm.PMDVoiceLen])
		off += opm.PMDVoiceLen
		if off >= len(data) || data[off] == 0x00 {
			break
		}
	}

	// A 0xFF past the voice run introduces NUL-separated Shift-JIS
	// metadata fields.
	off++
	if off+1 >= len(data) || data[off] != 0xff {
		return f, nil
	}
	fields := []*string{
		&f.Meta.PPZFile, &f.Meta.PPSFile, &f.Meta.PCMFile,
		&f.Meta.Title, &f.Meta.Composer, &f.Meta.Arranger,
		&f.Meta.Memo1, &f.Meta.Memo2,
	}
	for i, b := range bytes.Split(data[off+1:], []byte{0x00}) {
		if i >= len(fields) {
			break
		}
		if s, ok := decodeField(b); ok && s != "" {
			*fields[i] = s
		}
	}
	return f, nil
}

// decodeField decodes a Shift-JIS metadata field, reporting whether
// the bytes form a valid encoding. Malformed fields are dropped rather
// than kept with replacement runes.
func decodeField(b []byte) (string, bool) {
	s, err := japanese.ShiftJIS.NewDecoder().String(string(b))
	if err != nil || strings.ContainsRune(s, utf8.RuneError) {
		return "", false
	}
	return s, true
}
