/*
NAME
  opm.go

DESCRIPTION
  opm.go defines the voice and operator parameter sets of the Yamaha
  YM2151 (OPM) sound chip, and the extraction of both from the voice
  records embedded in MDX and PMD song data.

AUTHOR
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/


// Package opm models voices of the Yamaha YM2151 (OPM) sound chip.
//
// An OPM voice is a 4-operator FM patch. MDX and PMD song files embed
// voice definitions as fixed-size records of packed chip registers;
// FromMDX and FromPMD unpack these records into Voice values.
package opm

import "github.com/pkg/errors"

// Operator indices into Voice.Ops.
const (
	M1 = iota // Modulator 1
	C1        // Carrier 1
	M2        // Modulator 2
	C2        // Carrier 2
)

// Voice record sizes in MDX and PMD song data.
const (
	MDXVoiceLen = 0x1b
	PMDVoiceLen = 0x1a
)

// Op holds the parameters of a single OPM operator.
type Op struct {
	TL  uint8 // Total Level (7 bits).
	AR  uint8 // Attack Rate (5 bits).
	D1R uint8 // Decay Rate 1 (5 bits).
	D1L uint8 // Decay Level 1 (4 bits).
	D2R uint8 // Decay Rate 2 (5 bits).
	RR  uint8 // Release Rate (4 bits).
	KS  uint8 // Key Scaling (2 bits).
	MUL uint8 // Phase Multiply (4 bits).
	DT1 uint8 // Detune 1, fine (3 bits).
	DT2 uint8 // Detune 2, coarse (2 bits).
	AME uint8 // Amp Mod Enable (1 bit).
}

// Voice holds the parameters of a complete OPM voice.
//
// Ops is indexed by the M1, C1, M2 and C2 constants. LFO parameters are
// not stored in the song voice records, so extraction fills them with
// neutral values that give converted voices a usable vibrato range.
type Voice struct {
	Name string

	FL   uint8 // Feedback Level (3 bits).
	CON  uint8 // Algorithm (3 bits).
	SLOT uint8 // Operator enable mask (8 bits).
	NE   uint8 // Noise Enable (1 bit).
	NFRQ uint8 // Noise Frequency (5 bits).
	AMS  uint8 // Amp Mod Sensitivity (2 bits).
	PMS  uint8 // Pitch Mod Sensitivity (3 bits).
	LFRQ uint8 // LFO Frequency (7 bits).
	WF   uint8 // LFO Waveform (2 bits, 0=Saw, 1=Square, 2=Triangle, 3=Noise).
	PMD  uint8 // Phase Mod Depth (7 bits).
	AMD  uint8 // Amp Mod Depth (7 bits).

	Ops [4]Op
}

// FromMDX unpacks a 27-byte MDX voice record into a Voice with the
// given name. Byte 0 of the record holds the voice number and is not
// part of the parameter data.
func FromMDX(name string, rec []byte) (Voice, error) {
	if len(rec) != MDXVoiceLen {
		return Voice{}, errors.Errorf("MDX voice record is %d bytes, want %d", len(rec), MDXVoiceLen)
	}
	v := defaultVoice(name)
	v.FL = rec[1] >> 3 & 0x07
	v.CON = rec[1] & 0x07
	v.SLOT = rec[2]
	v.Ops[M1] = opAt(rec, 0x03, 0)
	v.Ops[C1] = opAt(rec, 0x03, 2)
	v.Ops[M2] = opAt(rec, 0x03, 1)
	v.Ops[C2] = opAt(rec, 0x03, 3)
	return v, nil
}

// FromPMD unpacks a 26-byte PMD voice record into a Voice with the
// given name. Byte 0 of the record holds the voice number and is not
// part of the parameter data. PMD records carry no operator enable
// mask, so SLOT is set with all four operators enabled.
func FromPMD(name string, rec []byte) (Voice, error) {
	if len(rec) != PMDVoiceLen {
		return Voice{}, errors.Errorf("PMD voice record is %d bytes, want %d", len(rec), PMDVoiceLen)
	}
	v := defaultVoice(name)
	v.FL = rec[0x19] >> 3 & 0x07
	v.CON = rec[0x19] & 0x07
	v.SLOT = 0x0f
	v.Ops[M1] = opAt(rec, 0x01, 0)
	v.Ops[C1] = opAt(rec, 0x01, 2)
	v.Ops[M2] = opAt(rec, 0x01, 1)
	v.Ops[C2] = opAt(rec, 0x01, 3)
	return v, nil
}

func defaultVoice(name string) Voice {
	return Voice{Name: name, LFRQ: 63, WF: 2, PMD: 63, AMD: 63}
}

// opAt unpacks one operator column from a voice record. Records store
// operator parameters in six rows of four columns starting at base,
// one row per register group. The PMD record layout is the MDX layout
// with the rows shifted down two bytes.
func opAt(rec []byte, base, col int) Op {
	return Op{
		TL:  rec[base+4+col],
		AR:  rec[base+8+col] & 0x1f,
		D1R: rec[base+12+col] & 0x1f,
		D1L: rec[base+20+col] >> 4 & 0x0f,
		D2R: rec[base+16+col] & 0x1f,
		RR:  rec[base+20+col] & 0x0f,
		KS:  rec[base+8+col] >> 6 & 0x03,
		MUL: rec[base+col] & 0x0f,
		DT1: rec[base+col] >> 4 & 0x07,
		DT2: rec[base+16+col] >> 6 & 0x03,
		AME: rec[base+12+col] >> 7 & 0x01,
	}
}
