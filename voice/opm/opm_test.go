/*
NAME
  opm_test.go

DESCRIPTION
  opm_test.go provides tests for extraction of OPM voices from MDX and
  PMD voice records.

AUTHOR
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/


package opm

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// opRows holds one register row per line, four operator columns each,
// in record order: MUL/DT1, TL, KS/AR, AME/D1R, DT2/D2R, D1L/RR.
var opRows = []byte{
	0x71, 0x52, 0x33, 0x14,
	0x28, 0x7f, 0x00, 0xff,
	0x9f, 0x40, 0xdf, 0x0a,
	0x8a, 0x05, 0x9f, 0x00,
	0x47, 0x80, 0xdf, 0x03,
	0xf5, 0x3c, 0xa0, 0x0f,
}

// wantOps is the expected unpacking of opRows, indexed M1, C1, M2, C2
// from file columns 0, 2, 1, 3.
var wantOps = [4]Op{
	{TL: 40, AR: 31, D1R: 10, D1L: 15, D2R: 7, RR: 5, KS: 2, MUL: 1, DT1: 7, DT2: 1, AME: 1},
	{TL: 0, AR: 31, D1R: 31, D1L: 10, D2R: 31, RR: 0, KS: 3, MUL: 3, DT1: 3, DT2: 3, AME: 1},
	{TL: 127, AR: 0, D1R: 5, D1L: 3, D2R: 0, RR: 12, KS: 1, MUL: 2, DT1: 5, DT2: 2, AME: 0},
	{TL: 255, AR: 10, D1R: 0, D1L: 0, D2R: 3, RR: 15, KS: 0, MUL: 4, DT1: 1, DT2: 0, AME: 0},
}

func TestFromMDX(t *testing.T) {
	rec := append([]byte{0x00, 0x2b, 0xcf}, opRows...)

	got, err := FromMDX("bee_00", rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Voice{
		Name: "bee_00",
		FL:   5,
		CON:  3,
		SLOT: 0xcf,
		LFRQ: 63,
		WF:   2,
		PMD:  63,
		AMD:  63,
		Ops:  wantOps,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected voice (-want +got):\n%s", diff)
	}
}

func TestFromPMD(t *testing.T) {
	rec := append([]byte{0x07}, opRows...)
	rec = append(rec, 0x2b)

	got, err := FromPMD("grd_07", rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Voice{
		Name: "grd_07",
		FL:   5,
		CON:  3,
		SLOT: 0x0f,
		LFRQ: 63,
		WF:   2,
		PMD:  63,
		AMD:  63,
		Ops:  wantOps,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected voice (-want +got):\n%s", diff)
	}
}

func TestRecordLength(t *testing.T) {
	if _, err := FromMDX("x", make([]byte, PMDVoiceLen)); err == nil {
		t.Errorf("expected error for short MDX record")
	}
	if _, err := FromPMD("x", make([]byte, MDXVoiceLen)); err == nil {
		t.Errorf("expected error for long PMD record")
	}
}
