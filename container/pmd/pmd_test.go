/*
NAME
  pmd_test.go

DESCRIPTION
  pmd_test.go provides tests for compiled PMD song file parsing.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/


package pmd

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// testFile builds a minimal PMD image: marker, offset table, two voice
// records, and the given metadata bytes.
func testFile(meta []byte) ([]byte, [][]byte) {
	rec1 := make([]byte, 26)
	rec1[0], rec1[25] = 0x01, 0x2b
	rec2 := make([]byte, 26)
	rec2[0] = 0x02

	data := make([]byte, 26)
	data[1] = 0x1a
	// Offset 11 points one before the voice records.
	data[24], data[25] = 0x00, 25
	data = append(data, rec1...)
	data = append(data, rec2...)
	data = append(data, 0x00)
	data = append(data, meta...)
	return data, [][]byte{rec1, rec2}
}

func TestParse(t *testing.T) {
	var meta []byte
	meta = append(meta, 0xff)
	meta = append(meta, 0x00)
	meta = append(meta, 0x00)
	meta = append(meta, "SAMPLE.PPC"...)
	meta = append(meta, 0x00)
	meta = append(meta, 0x83, 0x65, 0x83, 0x58, 0x83, 0x67) // テスト
	meta = append(meta, 0x00)
	meta = append(meta, "COMP"...)
	meta = append(meta, 0x00)
	meta = append(meta, 0x83, 0xff) // malformed Shift-JIS
	data, wantVoices := testFile(meta)

	f, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(wantVoices, f.Voices); diff != "" {
		t.Errorf("unexpected voices (-want +got):\n%s", diff)
	}
	wantMeta := Metadata{
		PCMFile:  "SAMPLE.PPC",
		Title:    "テスト",
		Composer: "COMP",
	}
	if diff := cmp.Diff(wantMeta, f.Meta); diff != "" {
		t.Errorf("unexpected metadata (-want +got):\n%s", diff)
	}
}

func TestParseNoMetadata(t *testing.T) {
	data, wantVoices := testFile(nil)

	f, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.Voices) != len(wantVoices) {
		t.Errorf("unexpected voice count: got %d, want %d", len(f.Voices), len(wantVoices))
	}
	if f.Meta != (Metadata{}) {
		t.Errorf("unexpected metadata: got %+v, want none", f.Meta)
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := Parse([]byte{0x00}); err == nil {
		t.Errorf("expected error for short file")
	}
	if _, err := Parse(bytes.Repeat([]byte{0x42}, 64)); err == nil {
		t.Errorf("expected error for missing data marker")
	}
	short := make([]byte, 10)
	short[1] = 0x1a
	if _, err := Parse(short); err == nil {
		t.Errorf("expected error for truncated offset table")
	}
}
