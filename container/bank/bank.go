/*
NAME
  bank.go

DESCRIPTION
  bank.go provides type detection, parsing and slot decoding for the
  sample bank formats used by PMD songs on the NEC PC-98 and related
  systems.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/


// Package bank parses the sample bank archives played alongside PMD
// songs: PPC, PPS, PVI, P86 and P68.
//
// All five formats are offset tables over raw sample data, but they
// differ in table layout, addressing granularity and sample encoding.
// Slots a bank does not fill are preserved as absent rather than
// compacted, since slot positions are referenced by song data.
package bank

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/Optiroc/MDXtract/codec/adpcm"
	"github.com/Optiroc/MDXtract/codec/pcm"
)

// Type identifies a sample bank format.
type Type int

const (
	Unknown Type = iota
	PPC          // YM DELTA-T ADPCM for the YM2608, 32-byte granular.
	PPS          // 4-bit SSG PCM.
	PVI          // YM DELTA-T ADPCM, 32-byte granular.
	P86          // Raw signed 8-bit PCM.
	P68          // OKI MSM6258V ADPCM.
)

// String returns the conventional name of the bank format.
func (t Type) String() string {
	switch t {
	case PPC:
		return "PPC"
	case PPS:
		return "PPS"
	case PVI:
		return "PVI"
	case P86:
		return "P86"
	case P68:
		return "P68"
	}
	return "unknown"
}

// TypeFromString parses a bank format name as given on a command line
// or as a file extension, returning Unknown for unrecognized names.
func TypeFromString(s string) Type {
	switch strings.ToUpper(strings.ReplaceAll(s, ".", "")) {
	case "PPC":
		return PPC
	case "PPS":
		return PPS
	case "PVI":
		return PVI
	case "P86", "86PCM", "86":
		return P86
	case "P", "P68", "X86":
		return P68
	}
	return Unknown
}

// TypeFromPath guesses the bank format from a file name extension.
func TypeFromPath(path string) Type {
	return TypeFromString(filepath.Ext(path))
}

var (
	ppcSig = []byte("ADPCM DATA for  PMD ver.4.4-  ")
	pviSig = []byte("PVI2")
	p86Sig = []byte("PCM86 DATA")
)

// Detect identifies the bank format from its header signature. PPS and
// P68 carry no signature and can only be named explicitly or guessed
// from the file extension.
func Detect(data []byte) Type {
	switch {
	case bytes.HasPrefix(data, ppcSig):
		return PPC
	case bytes.HasPrefix(data, pviSig):
		return PVI
	case bytes.HasPrefix(data, p86Sig):
		return P86
	}
	return Unknown
}

// File holds the parsed contents of a sample bank.
type File struct {
	// Type is the format the bank parsed as.
	Type Type

	slots [][]byte
}

// Parse parses a sample bank image as the given type. Passing Unknown
// detects the type from the header signature.
func Parse(data []byte, typ Type) (*File, error) {
	if typ == Unknown {
		typ = Detect(data)
	}
	var (
		slots [][]byte
		err   error
	)
	switch typ {
	case PPC:
		slots, err = parsePPC(data)
	case PPS:
		slots, err = parsePPS(data)
	case PVI:
		slots, err = parsePVI(data)
	case P86:
		slots, err = parseP86(data)
	case P68:
		slots, err = parseP68(data)
	default:
		return nil, errors.New("unrecognized sample bank type")
	}
	if err != nil {
		return nil, err
	}
	return &File{Type: typ, slots: slots}, nil
}

// NumSlots returns the number of sample slots in the bank, filled or
// not.
func (f *File) NumSlots() int {
	return len(f.slots)
}

// Region returns the raw sample bytes of slot i, reporting whether the
// slot holds a sample.
func (f *File) Region(i int) ([]byte, bool) {
	if i < 0 || i >= len(f.slots) || f.slots[i] == nil {
		return nil, false
	}
	return f.slots[i], true
}

// Decode decodes the sample in slot i to 16-bit little-endian PCM
// using the codec of the bank format, reporting whether the slot holds
// a sample.
func (f *File) Decode(i int) ([]byte, bool) {
	region, ok := f.Region(i)
	if !ok {
		return nil, false
	}
	switch f.Type {
	case PPC, PVI:
		var buf bytes.Buffer
		adpcm.NewYMDecoder(&buf).Write(region)
		return buf.Bytes(), true
	case P68:
		var buf bytes.Buffer
		adpcm.NewOKIDecoder(&buf).Write(region)
		return buf.Bytes(), true
	case PPS:
		return pcm.DecodeSSG(region), true
	case P86:
		return pcm.S8ToS16(region), true
	}
	return nil, false
}
