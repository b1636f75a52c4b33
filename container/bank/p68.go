/*
NAME
  p68.go

DESCRIPTION
  p68.go provides parsing of P68 sample banks, holding OKI MSM6258V
  ADPCM for PMD songs on the Sharp X68000.

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

// P68 banks are a bare table of 256 big-endian start offsets, each
// slot ending where the next begins. A start offset equal to the file
// size terminates the table, dropping the slot that ends there. An
// offset past the end of the file marks the whole bank as bad.
func parseP68(data []byte) ([][]byte, error) {
	if len(data) < 256*4+2 {
		return nil, errors.New("P68 bank too short")
	}

	var slots [][]byte
	for i := 0; i < 256; i++ {
		s, _ := codecutil.Uint32BE(data, i*4)
		start := int(s)
		if start > len(data) {
			return nil, errors.New("P68 sample offset out of range")
		}
		if i > 0 {
			prev, _ := codecutil.Uint32BE(data, (i-1)*4)
			if int(prev) == len(data) {
				slots = slots[:len(slots)-1]
				break
			}
		}
		e, ok := codecutil.Uint32BE(data, 4+i*4)
		if !ok {
			slots = append(slots, nil)
			continue
		}
		end := int(e) - 1
		if end <= len(data) && end-start > 8 {
			hi := end + 1
			if hi > len(data) {
				hi = len(data)
			}
			slots = append(slots, data[start:hi])
		} else {
			slots = append(slots, nil)
		}
	}
	return slots, nil
}
