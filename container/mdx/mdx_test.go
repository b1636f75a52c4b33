/*
NAME
  mdx_test.go

DESCRIPTION
  mdx_test.go provides tests for MDX song file parsing.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/


package mdx

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	rec := make([]byte, 27)
	rec[0], rec[1], rec[2] = 0x05, 0x2b, 0xcf

	var data []byte
	data = append(data, "TEST"...)
	data = append(data, 0x0d, 0x0a, 0x1a)
	data = append(data, "GM.PDX"...)
	data = append(data, 0x00)
	// Song data: voice data offset, two MML offsets, two two-byte MML
	// streams, then one voice record and a truncated second record.
	data = append(data,
		0x00, 0x0a,
		0x00, 0x06,
		0x00, 0x08,
		0xaa, 0xbb,
		0xcc, 0xdd,
	)
	data = append(data, rec...)
	data = append(data, 0x01, 0x02, 0x03)

	f, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Title != "TEST" {
		t.Errorf("unexpected title: got %q, want %q", f.Title, "TEST")
	}
	if f.PDXFile != "GM.PDX" {
		t.Errorf("unexpected PDX file: got %q, want %q", f.PDXFile, "GM.PDX")
	}
	if f.Channels != 2 {
		t.Errorf("unexpected channel count: got %d, want 2", f.Channels)
	}
	if len(f.Voices) != 1 || !bytes.Equal(f.Voices[0], rec) {
		t.Errorf("unexpected voice records: got %v", f.Voices)
	}
	wantTracks := [][]byte{{0xaa, 0xbb}, {0xcc, 0xdd}}
	if diff := cmp.Diff(wantTracks, f.Tracks); diff != "" {
		t.Errorf("unexpected tracks (-want +got):\n%s", diff)
	}
}

func TestParseShiftJISTitle(t *testing.T) {
	var data []byte
	data = append(data, 0x83, 0x65, 0x83, 0x58, 0x83, 0x67) // テスト
	data = append(data, 0x0d, 0x0a, 0x1a, 0x00)
	data = append(data,
		0x00, 0x04,
		0x00, 0x04,
	)
	data = append(data, make([]byte, 27)...)

	f, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Title != "テスト" {
		t.Errorf("unexpected title: got %q, want %q", f.Title, "テスト")
	}
	if f.PDXFile != "" {
		t.Errorf("unexpected PDX file: got %q, want none", f.PDXFile)
	}
	if f.Channels != 1 {
		t.Errorf("unexpected channel count: got %d, want 1", f.Channels)
	}
	if len(f.Voices) != 1 {
		t.Errorf("unexpected voice count: got %d, want 1", len(f.Voices))
	}
	if len(f.Tracks) != 1 || len(f.Tracks[0]) != 0 {
		t.Errorf("unexpected tracks: got %v, want one empty track", f.Tracks)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{
			name: "no terminator",
			data: []byte("JUST SOME TEXT"),
		},
		{
			name: "terminator too late",
			data: append(bytes.Repeat([]byte{'A'}, 256), 0x0d, 0x0a),
		},
		{
			name: "truncated after title",
			data: []byte{'A', 0x0d, 0x0a},
		},
		{
			name: "unterminated PDX name",
			data: append([]byte{'A', 0x0d, 0x0a, 0x1a}, "GM.PDX"...),
		},
		{
			name: "truncated song data",
			data: []byte{'A', 0x0d, 0x0a, 0x1a, 0x00, 0x00},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := Parse(test.data); err == nil {
				t.Errorf("expected error for %s", test.name)
			}
		})
	}
}
