/*
NAME
  convert.go

DESCRIPTION
  convert.go implements conversion of 4-operator OPM voices to
  6-operator DX7 voices, mapping algorithms, envelopes, detunes and
  output levels between the two parameter spaces.

AUTHOR
  Dan Kortschak <dan@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/


package dx7

import (
	"math"

	"github.com/Optiroc/MDXtract/voice/opm"
)

// DX7 algorithm per OPM algorithm. The four OPM connections map onto
// DX7 operators 3 to 6.
var algMap = [8]uint8{0, 13, 7, 6, 4, 21, 30, 31}

// Total level bias per OPM algorithm and operator, raising the output
// of operators that act as modulators in the mapped DX7 algorithm.
// Columns follow conversion order M1, C1, M2, C2.
var tlBias = [8][4]int{
	{-8, -8, -8, 0},
	{-8, -8, -8, 0},
	{-8, -8, -8, 0},
	{-8, -8, -8, 0},
	{-8, 0, 0, 0},
	{-8, 0, 0, 0},
	{-8, 0, 0, 0},
	{0, 0, 0, 0},
}

// DX7 EG rates per OPM attack, decay and release rate.
var (
	ar32 = [32]uint8{
		0, 15, 18, 21, 24, 27, 31, 34, 37, 40, 44, 47, 51, 54, 57, 60,
		64, 67, 71, 74, 77, 80, 83, 85, 87, 89, 91, 93, 95, 96, 98, 99,
	}
	dr32 = [32]uint8{
		0, 10, 13, 16, 19, 21, 24, 27, 30, 33, 36, 39, 42, 45, 48, 51,
		54, 57, 60, 63, 66, 69, 72, 75, 78, 81, 84, 87, 90, 93, 96, 99,
	}
	rr16 = [16]uint8{0, 21, 27, 32, 38, 43, 49, 54, 60, 65, 71, 76, 82, 87, 94, 99}
)

// DX7 EG level 2 per OPM decay level 1.
var d1l16 = [16]uint8{99, 93, 89, 84, 80, 75, 71, 66, 62, 57, 53, 48, 44, 39, 35, 0}

// DX7 output level per biased OPM total level.
var olCurve = [128]uint8{
	98, 97, 96, 95, 94, 93, 92, 91, 90, 89, 88, 87, 86, 85, 84, 83,
	82, 81, 80, 79, 78, 77, 76, 75, 74, 73, 72, 71, 70, 69, 68, 67,
	66, 65, 64, 63, 62, 61, 60, 59, 58, 57, 56, 55, 54, 53, 52, 51,
	50, 49, 48, 47, 46, 45, 44, 43, 42, 41, 40, 39, 38, 37, 36, 35,
	34, 33, 32, 31, 30, 29, 28, 27, 26, 25, 24, 23, 22, 21, 20, 20,
	19, 18, 18, 17, 16, 15, 15, 14, 14, 13, 13, 12, 12, 11, 11, 10,
	10, 9, 9, 8, 8, 7, 7, 6, 6, 5, 5, 5, 4, 4, 4, 4,
	3, 3, 3, 3, 2, 2, 2, 2, 1, 1, 1, 1, 0, 0, 0, 0,
}

var (
	detMap = [8]uint8{7, 8, 9, 10, 7, 6, 5, 4} // DX7 detune per OPM DT1.
	ffMap  = [4]uint8{0, 41, 57, 73}           // DX7 frequency fine per OPM DT2.
	amsMap = [4]uint8{0, 2, 3, 3}              // DX7 amp mod sensitivity per OPM AMS.
	lfwMap = [4]uint8{2, 3, 0, 5}              // DX7 LFO waveform per OPM waveform.
)

// FromOPM converts an OPM voice to a DX7 voice.
//
// The OPM operators land on DX7 operators 6, 5, 4 and 3 in conversion
// order M1, C1, M2, C2, except for OPM algorithm 2 which has no
// matching DX7 operator layout and gets its modulators reordered.
// Operators 1 and 2 are filled with the factory default parameters and
// left disabled in the enable mask.
func FromOPM(v opm.Voice) Voice {
	bias := tlBias[v.CON]
	op6 := opFromOPM(v.Ops[opm.M1], v, bias[0])
	op5 := opFromOPM(v.Ops[opm.C1], v, bias[1])
	op4 := opFromOPM(v.Ops[opm.M2], v, bias[2])
	op3 := opFromOPM(v.Ops[opm.C2], v, bias[3])
	if v.CON == 2 {
		op4, op5, op6 = op6, op4, op5
	}

	name := v.Name
	if len(name) > nameLen {
		name = name[:nameLen]
	}

	return Voice{
		Name: name,
		PR1:  50, PR2: 50, PR3: 50, PR4: 50,
		PL1: 50, PL2: 50, PL3: 50, PL4: 50,
		ALG:  algMap[v.CON],
		FB:   v.FL,
		LFS:  remap99(v.LFRQ),
		LPMD: remap99(v.PMD),
		LAMD: remap99(v.AMD),
		LFW:  lfwMap[v.WF],
		LPMS: v.PMS,
		TRNP: 24,
		OPEN: v.SLOT & 0x0f,
		Ops:  [6]Op{defaultOp(), defaultOp(), op3, op4, op5, op6},
	}
}

// opFromOPM converts a single OPM operator, biasing its total level by
// bias before mapping to a DX7 output level.
func opFromOPM(op opm.Op, v opm.Voice, bias int) Op {
	tl := int(op.TL) + bias
	if tl < 0 {
		tl = 0
	} else if tl > 127 {
		tl = 127
	}
	l2 := d1l16[op.D1L]
	l3 := l2
	if op.D2R != 0 {
		l3 = 0
	}
	return Op{
		R1:  ar32[op.AR],
		R2:  dr32[op.D1R],
		R3:  dr32[op.D2R],
		R4:  rr16[op.RR],
		L1:  99,
		L2:  l2,
		L3:  l3,
		DET: detMap[op.DT1],
		AMS: amsMap[v.AMS],
		OL:  olCurve[tl],
		FC:  op.MUL,
		FF:  ffMap[op.DT2],
	}
}

// remap99 rescales a 7-bit OPM depth value to the 0-99 range used by
// the DX7 LFO parameters, rounding half to even.
func remap99(v uint8) uint8 {
	return uint8(math.RoundToEven(float64(v) * 99 / 127))
}
