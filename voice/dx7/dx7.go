/*
NAME
  dx7.go

DESCRIPTION
  dx7.go defines the voice and operator parameter sets of the Yamaha
  DX7 synthesizer, together with the factory default voice used to pad
  bulk dumps.

AUTHOR
  Dan Kortschak <dan@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/


// Package dx7 models voices of the Yamaha DX7 synthesizer and renders
// them as "32 voice BULK data" system exclusive messages.
//
// A DX7 voice is a 6-operator FM patch. Voices are built either from
// OPM voices via FromOPM or parsed back out of a bulk dump via
// ParseBulk, and a bank of up to 32 voices is rendered to a loadable
// .syx message by BulkSysex.
package dx7

// Op holds the parameters of a single DX7 operator.
type Op struct {
	R1  uint8 // EG Rate 1, 0-99.
	R2  uint8 // EG Rate 2, 0-99.
	R3  uint8 // EG Rate 3, 0-99.
	R4  uint8 // EG Rate 4, 0-99.
	L1  uint8 // EG Level 1, 0-99.
	L2  uint8 // EG Level 2, 0-99.
	L3  uint8 // EG Level 3, 0-99.
	L4  uint8 // EG Level 4, 0-99.
	BP  uint8 // Level Scaling Breakpoint.
	LD  uint8 // Level Scaling Left Depth, 0-99.
	RD  uint8 // Level Scaling Right Depth, 0-99.
	LC  uint8 // Level Scaling Left Curve (2 bits).
	RC  uint8 // Level Scaling Right Curve (2 bits).
	DET uint8 // Detune (4 bits, 7 is no detune).
	RS  uint8 // Key Rate Scaling (3 bits).
	AMS uint8 // Amp Mod Sensitivity (2 bits).
	KVS uint8 // Key Velocity Sensitivity (3 bits).
	OL  uint8 // Output Level, 0-99.
	M   uint8 // Frequency mode (1 bit, 0 is ratio, 1 is fixed).
	FC  uint8 // Frequency coarse (5 bits).
	FF  uint8 // Frequency fine, 0-99.
}

// Voice holds the parameters of a complete DX7 voice.
//
// Ops is indexed by operator number minus one, that is, Ops[0] is OP1
// and Ops[5] is OP6. OPEN is an operator enable mask with OP6 at bit 0
// and OP1 at bit 5; it has no register on the hardware and exists only
// to zero the output level of unused operators when packing.
type Voice struct {
	Name string

	PR1  uint8 // Pitch EG Rate 1, 0-99.
	PR2  uint8 // Pitch EG Rate 2, 0-99.
	PR3  uint8 // Pitch EG Rate 3, 0-99.
	PR4  uint8 // Pitch EG Rate 4, 0-99.
	PL1  uint8 // Pitch EG Level 1, 0-99.
	PL2  uint8 // Pitch EG Level 2, 0-99.
	PL3  uint8 // Pitch EG Level 3, 0-99.
	PL4  uint8 // Pitch EG Level 4, 0-99.
	ALG  uint8 // Algorithm, 0-31.
	OKS  uint8 // Oscillator Key Sync (1 bit).
	FB   uint8 // Feedback Level (3 bits).
	LFS  uint8 // LFO Speed, 0-99.
	LFD  uint8 // LFO Delay, 0-99.
	LPMD uint8 // LFO Pitch Mod Depth, 0-99.
	LAMD uint8 // LFO Amp Mod Depth, 0-99.
	LFKS uint8 // LFO Key Sync (1 bit).
	LFW  uint8 // LFO Waveform (0=Triangle, 1=SawDown, 2=SawUp, 3=Square, 4=Sine, 5=SHold).
	LPMS uint8 // LFO Pitch Mod Sensitivity (3 bits).
	TRNP uint8 // Transpose (5 bits, 12 is C2).
	OPEN uint8 // Operator enable mask (6 bits, bit 0 is OP6).

	Ops [6]Op
}

// InitVoice returns the factory default "INIT VOICE" patch, a plain
// sine with only OP1 sounding. Bulk dumps of fewer than 32 voices are
// padded with it.
func InitVoice() Voice {
	v := Voice{
		Name: "INIT VOICE",
		PR1:  50, PR2: 50, PR3: 50, PR4: 50,
		PL1: 50, PL2: 50, PL3: 50, PL4: 50,
		OKS:  1,
		TRNP: 24,
		OPEN: 0x20,
	}
	for i := range v.Ops {
		v.Ops[i] = defaultOp()
	}
	return v
}

// defaultOp returns the operator parameters of the factory default
// voice, a full-level immediate envelope at frequency ratio 1.
func defaultOp() Op {
	return Op{
		R1: 99, R2: 99, R3: 99, R4: 99,
		L1: 99, L2: 99, L3: 90, L4: 0,
		BP:  36,
		DET: 7,
		OL:  99,
		FC:  1,
	}
}
