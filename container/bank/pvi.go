/*
NAME
  pvi.go

DESCRIPTION
  pvi.go provides parsing of PVI sample banks, the YM2608 ADPCM bank
  format of the P.V.I player.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/


package bank

import (
	"github.com/pkg/errors"

	"github.com/Optiroc/MDXtract/codec/codecutil"
)

// PVI banks hold 128 slots of YM ADPCM in 32-byte units, addressed
// relative to the end of the 0x210 byte header. A slot with a zero end
// word is empty, and an inverted range collapses to empty rather than
// marking the bank bad.
func parsePVI(data []byte) ([][]byte, error) {
	const (
		headerLen = 0x210
		tableOff  = 0x10
	)
	if len(data) < headerLen {
		return nil, errors.New("PVI bank too short")
	}

	slots := make([][]byte, 128)
	for i := range slots {
		s, _ := codecutil.Uint16LE(data, tableOff+i*4)
		e, _ := codecutil.Uint16LE(data, tableOff+2+i*4)
		var start, end int
		if e != 0 {
			start = int(s) << 5
			end = int(e)<<5 - 1
		}
		if end < start {
			end = start
		}
		start += headerLen
		end += headerLen
		if end <= len(data) && end-start > 8 {
			slots[i] = data[start:end]
		}
	}
	return slots, nil
}
