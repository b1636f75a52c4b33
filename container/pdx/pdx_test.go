/*
NAME
  pdx_test.go

DESCRIPTION
  pdx_test.go provides tests for PDX sample archive parsing and slot
  decoding.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/


package pdx

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// putSlot writes a slot table entry into a test archive header.
func putSlot(data []byte, i int, off, n uint32) {
	binary.BigEndian.PutUint32(data[i*8:], off)
	binary.BigEndian.PutUint32(data[4+i*8:], n)
}

func TestParse(t *testing.T) {
	data := make([]byte, NumSlots*8, NumSlots*8+2)
	data = append(data, 0x12, 0x34)

	putSlot(data, 0, NumSlots*8, 2)   // Valid.
	putSlot(data, 1, NumSlots*8, 1)   // Length below minimum.
	putSlot(data, 2, NumSlots*8+1, 2) // Runs past end of file.

	f := Parse(data)

	region, ok := f.Region(0)
	if !ok || !bytes.Equal(region, []byte{0x12, 0x34}) {
		t.Errorf("unexpected region for slot 0: got %v, %v", region, ok)
	}
	for _, slot := range []int{1, 2, 3, NumSlots - 1} {
		if _, ok := f.Region(slot); ok {
			t.Errorf("expected slot %d to be absent", slot)
		}
	}
	if _, ok := f.Region(NumSlots); ok {
		t.Errorf("expected no slot beyond table")
	}
}

func TestDecode(t *testing.T) {
	data := make([]byte, NumSlots*8, NumSlots*8+2)
	data = append(data, 0x12, 0x34)
	putSlot(data, 0, NumSlots*8, 2)

	f := Parse(data)
	got, ok := f.Decode(0)
	if !ok {
		t.Fatalf("expected slot 0 to decode")
	}
	want := []byte{8, 0, 14, 0, 32, 0, 47, 0}
	if !bytes.Equal(got, want) {
		t.Errorf("unexpected samples: got %v, want %v", got, want)
	}
	if _, ok := f.Decode(1); ok {
		t.Errorf("expected slot 1 not to decode")
	}
}

func TestParseTruncated(t *testing.T) {
	f := Parse([]byte{0x00, 0x01})
	for i := 0; i < NumSlots; i++ {
		if _, ok := f.Region(i); ok {
			t.Errorf("expected slot %d of truncated archive to be absent", i)
		}
	}
}
