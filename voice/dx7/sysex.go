/*
NAME
  sysex.go

DESCRIPTION
  sysex.go implements packing of DX7 voices into the 128-byte bulk
  format, assembly of "32 voice BULK data" system exclusive messages,
  and parsing of such messages back into voices.

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
	"bytes"
	"strings"

	"github.com/pkg/errors"
)

const (
	// BankSize is the number of voices in a bulk dump.
	BankSize = 32

	// PackedVoiceLen is the size of one voice in the bulk format.
	PackedVoiceLen = 128

	// BulkLen is the size of a complete bulk dump message.
	BulkLen = bulkHeaderLen + BankSize*PackedVoiceLen + 2

	bulkHeaderLen = 6
	packedOpLen   = 17
	nameLen       = 10
)

// bulkHeader starts a "32 voice BULK data" message: status, Yamaha ID,
// sub-status/channel, format 9, and the data byte count 4096 in two
// 7-bit bytes.
var bulkHeader = []byte{0xf0, 0x43, 0x00, 0x09, 0x20, 0x00}

// BulkSysex renders up to BankSize voices as a single bulk dump
// message. Banks of fewer than BankSize voices are padded out with
// InitVoice; vs is left unmodified.
func BulkSysex(vs []Voice) ([]byte, error) {
	if len(vs) > BankSize {
		return nil, errors.Errorf("bank of %d voices exceeds the %d voice bulk dump", len(vs), BankSize)
	}
	syx := make([]byte, 0, BulkLen)
	syx = append(syx, bulkHeader...)
	for _, v := range vs {
		syx = append(syx, v.pack()...)
	}
	pad := InitVoice().pack()
	for i := len(vs); i < BankSize; i++ {
		syx = append(syx, pad...)
	}
	syx = append(syx, checksum7(syx[len(bulkHeader):]), 0xf7)
	return syx, nil
}

// ParseBulk parses a bulk dump message into its BankSize voices.
//
// The bulk format does not store the operator enable mask, so parsed
// voices have all six operators enabled; disabled operators come back
// with a zero output level instead.
func ParseBulk(b []byte) ([]Voice, error) {
	if len(b) != BulkLen {
		return nil, errors.Errorf("bulk dump is %d bytes, want %d", len(b), BulkLen)
	}
	if !bytes.Equal(b[:len(bulkHeader)], bulkHeader) {
		return nil, errors.New("bad bulk dump header")
	}
	if b[BulkLen-1] != 0xf7 {
		return nil, errors.New("bulk dump missing end of exclusive")
	}
	data := b[len(bulkHeader) : BulkLen-2]
	if got, want := b[BulkLen-2], checksum7(data); got != want {
		return nil, errors.Errorf("bad bulk dump checksum: got %#02x, want %#02x", got, want)
	}
	vs := make([]Voice, BankSize)
	for i := range vs {
		vs[i] = unpack(data[i*PackedVoiceLen : (i+1)*PackedVoiceLen])
	}
	return vs, nil
}

// pack renders the voice in the 128-byte bulk format, operators OP6
// through OP1 first, then the voice settings and name. Operators not
// set in OPEN are written with a zero output level. All bytes are
// masked to 7 bits for transmission.
func (v Voice) pack() []byte {
	p := make([]byte, 0, PackedVoiceLen)
	for i := 0; i < 6; i++ {
		op := v.Ops[5-i]
		p = append(p, op.R1, op.R2, op.R3, op.R4, op.L1, op.L2, op.L3, op.L4)
		p = append(p, op.BP, op.LD, op.RD)
		p = append(p, op.RC<<2&0x0c|op.LC&0x03)
		det := op.DET
		if det > 14 {
			det = 14
		}
		p = append(p, det<<3&0x78|op.RS&0x07)
		p = append(p, op.KVS<<2&0x1c|op.AMS&0x03)
		ol := uint8(0)
		if v.OPEN&(1<<i) != 0 {
			ol = op.OL
		}
		p = append(p, ol)
		p = append(p, op.FC<<1&0x3e|op.M&0x01)
		p = append(p, op.FF)
	}
	p = append(p, v.PR1, v.PR2, v.PR3, v.PR4, v.PL1, v.PL2, v.PL3, v.PL4, v.ALG)
	p = append(p, v.OKS<<4&0x10|v.FB&0x07)
	p = append(p, v.LFS, v.LFD, v.LPMD, v.LAMD)
	p = append(p, v.LPMS<<4&0x70|v.LFW<<1&0x0e|v.LFKS&0x01)
	p = append(p, v.TRNP&0x1f)
	for i := 0; i < nameLen; i++ {
		c := byte(' ')
		if i < len(v.Name) {
			c = v.Name[i]
		}
		p = append(p, c)
	}
	for i := range p {
		p[i] &= 0x7f
	}
	return p
}

// unpack is the inverse of pack, except that OPEN comes back with all
// operators enabled.
func unpack(p []byte) Voice {
	var v Voice
	for i := 0; i < 6; i++ {
		o := p[i*packedOpLen : (i+1)*packedOpLen]
		v.Ops[5-i] = Op{
			R1: o[0], R2: o[1], R3: o[2], R4: o[3],
			L1: o[4], L2: o[5], L3: o[6], L4: o[7],
			BP:  o[8],
			LD:  o[9],
			RD:  o[10],
			LC:  o[11] & 0x03,
			RC:  o[11] >> 2 & 0x03,
			DET: o[12] >> 3 & 0x0f,
			RS:  o[12] & 0x07,
			AMS: o[13] & 0x03,
			KVS: o[13] >> 2 & 0x07,
			OL:  o[14],
			M:   o[15] & 0x01,
			FC:  o[15] >> 1 & 0x1f,
			FF:  o[16],
		}
	}
	s := p[6*packedOpLen:]
	v.PR1, v.PR2, v.PR3, v.PR4 = s[0], s[1], s[2], s[3]
	v.PL1, v.PL2, v.PL3, v.PL4 = s[4], s[5], s[6], s[7]
	v.ALG = s[8]
	v.OKS = s[9] >> 4 & 0x01
	v.FB = s[9] & 0x07
	v.LFS, v.LFD, v.LPMD, v.LAMD = s[10], s[11], s[12], s[13]
	v.LPMS = s[14] >> 4 & 0x07
	v.LFW = s[14] >> 1 & 0x07
	v.LFKS = s[14] & 0x01
	v.TRNP = s[15] & 0x1f
	v.Name = strings.TrimRight(string(s[16:16+nameLen]), " ")
	v.OPEN = 0x3f
	return v
}

// checksum7 is the 7-bit two's complement checksum of the data bytes,
// chosen so that the data and checksum sum to zero modulo 128.
func checksum7(data []byte) byte {
	var sum int
	for _, b := range data {
		sum += int(b)
	}
	return byte(-sum) & 0x7f
}
