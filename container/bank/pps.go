/*
NAME
  pps.go

DESCRIPTION
  pps.go provides parsing of PPS sample banks, holding 4-bit PCM played
  through an SSG channel.

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

// PPS banks hold 14 slots of 4-bit SSG PCM, addressed by offset and
// length in file bytes. An offset past the end of the file marks the
// whole bank as bad rather than just the slot.
func parsePPS(data []byte) ([][]byte, error) {
	const headerLen = 84
	if len(data) < headerLen {
		return nil, errors.New("PPS bank too short")
	}

	slots := make([][]byte, 14)
	for i := range slots {
		s, _ := codecutil.Uint16LE(data, i*6)
		n, _ := codecutil.Uint16LE(data, i*6+2)
		start := int(s)
		if start > len(data) {
			return nil, errors.New("PPS sample offset out of range")
		}
		end := start + int(n) - 1
		if start > 0 && end <= len(data) && end-start > 0x20 {
			hi := end + 1
			if hi > len(data) {
				hi = len(data)
			}
			slots[i] = data[start:hi]
		}
	}
	return slots, nil
}
