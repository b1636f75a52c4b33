/*
NAME
  p86.go

DESCRIPTION
  p86.go provides parsing of P86 sample banks, holding raw signed 8-bit
  PCM for the PC-9801-86 sound board.

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

// P86 banks hold 256 slots of raw 8-bit PCM addressed by 24-bit offset
// and length pairs, and carry their own file size at offset 0x0D. An
// offset past the end of the file marks the whole bank as bad.
func parseP86(data []byte) ([][]byte, error) {
	const headerLen = 16
	if len(data) < headerLen+256*6+2 {
		return nil, errors.New("P86 bank too short")
	}
	size, _ := codecutil.Uint24LE(data, 0x0d)
	if len(data) != int(size) {
		return nil, errors.New("P86 size field does not match file size")
	}

	slots := make([][]byte, 256)
	for i := range slots {
		s, _ := codecutil.Uint24LE(data, headerLen+i*6)
		n, _ := codecutil.Uint24LE(data, headerLen+3+i*6)
		start := int(s)
		if start > len(data) {
			return nil, errors.New("P86 sample offset out of range")
		}
		end := start + int(n) - 1
		if end < 0 {
			end = 0
		}
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
