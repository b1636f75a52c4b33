/*
NAME
  dx7_test.go

DESCRIPTION
  dx7_test.go provides tests for conversion of OPM voices to DX7
  voices.

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
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Optiroc/MDXtract/voice/opm"
)

func TestOLCurve(t *testing.T) {
	for i := 1; i < len(olCurve); i++ {
		if olCurve[i] > olCurve[i-1] {
			t.Errorf("output level curve rises at %d: %d after %d", i, olCurve[i], olCurve[i-1])
		}
	}
	for _, c := range []struct {
		tl   int
		want uint8
	}{
		{0, 98},
		{63, 35},
		{64, 34},
		{78, 20},
		{79, 20},
		{95, 10},
		{96, 10},
		{127, 0},
	} {
		if got := olCurve[c.tl]; got != c.want {
			t.Errorf("unexpected output level for total level %d: got %d, want %d", c.tl, got, c.want)
		}
	}
}

func TestRemap99(t *testing.T) {
	for _, c := range []struct {
		in, want uint8
	}{
		{0, 0},
		{63, 49},
		{64, 50},
		{127, 99},
	} {
		if got := remap99(c.in); got != c.want {
			t.Errorf("unexpected remap of %d: got %d, want %d", c.in, got, c.want)
		}
	}
}

// TestFromOPMZeroRecord checks conversion of the voice unpacked from
// an all-zero MDX record. Algorithm 0 biases the three modulators, so
// their zero total levels stay clamped at the top of the output level
// curve.
func TestFromOPMZeroRecord(t *testing.T) {
	ov, err := opm.FromMDX("EMPTY", make([]byte, opm.MDXVoiceLen))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := FromOPM(ov)

	conv := Op{L1: 99, L2: 99, L3: 99, DET: 7, OL: 98}
	want := Voice{
		Name: "EMPTY",
		PR1:  50, PR2: 50, PR3: 50, PR4: 50,
		PL1: 50, PL2: 50, PL3: 50, PL4: 50,
		LFS:  49,
		LPMD: 49,
		LAMD: 49,
		TRNP: 24,
		Ops:  [6]Op{defaultOp(), defaultOp(), conv, conv, conv, conv},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected voice (-want +got):\n%s", diff)
	}
}

func TestFromOPMEnvelope(t *testing.T) {
	v := opm.Voice{
		CON: 7,
		AMS: 2,
		Ops: [4]opm.Op{
			opm.M1: {TL: 48, AR: 6, D1R: 17, D1L: 2, D2R: 3, RR: 9, KS: 1, MUL: 5, DT1: 3, DT2: 2, AME: 1},
		},
	}
	got := FromOPM(v).Ops[5]
	want := Op{
		R1: 31, R2: 57, R3: 16, R4: 65,
		L1: 99, L2: 89, L3: 0, L4: 0,
		DET: 10,
		AMS: 3,
		OL:  50,
		FC:  5,
		FF:  57,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected operator (-want +got):\n%s", diff)
	}
}

// TestFromOPMModulatorReorder checks the operator shuffle applied for
// OPM algorithm 2. The output level bias must travel with the moved
// operators.
func TestFromOPMModulatorReorder(t *testing.T) {
	v := opm.Voice{
		CON: 2,
		Ops: [4]opm.Op{
			opm.M1: {TL: 50, MUL: 1},
			opm.C1: {TL: 50, MUL: 2},
			opm.M2: {TL: 50, MUL: 3},
			opm.C2: {TL: 50, MUL: 4},
		},
	}
	got := FromOPM(v)
	if got.ALG != 7 {
		t.Errorf("unexpected algorithm: got %d, want 7", got.ALG)
	}
	for _, c := range []struct {
		op     int
		wantFC uint8
		wantOL uint8
	}{
		{5, 2, 56}, // OP6 takes C1, biased.
		{4, 3, 56}, // OP5 takes M2, biased.
		{3, 1, 56}, // OP4 takes M1, biased.
		{2, 4, 48}, // OP3 keeps C2, unbiased.
	} {
		if gotFC := got.Ops[c.op].FC; gotFC != c.wantFC {
			t.Errorf("unexpected coarse frequency for OP%d: got %d, want %d", c.op+1, gotFC, c.wantFC)
		}
		if gotOL := got.Ops[c.op].OL; gotOL != c.wantOL {
			t.Errorf("unexpected output level for OP%d: got %d, want %d", c.op+1, gotOL, c.wantOL)
		}
	}
}

func TestFromOPMNameTruncation(t *testing.T) {
	v := opm.Voice{Name: "unreasonably_long"}
	if got := FromOPM(v).Name; got != "unreasonab" {
		t.Errorf("unexpected name: got %q, want %q", got, "unreasonab")
	}
}
