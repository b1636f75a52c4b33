/*
NAME
  ppc.go

DESCRIPTION
  ppc.go provides parsing of PPC sample banks, the YM2608 ADPCM bank
  format of the PMD sound driver.

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

// PPC banks address samples in the ADPCM RAM of the YM2608 rather than
// in the file, in 32-byte units. The driver loads the file body at RAM
// address 0x4C0, so parsing rebuilds the RAM image and resolves the
// 256 slot ranges against it.
func parsePPC(data []byte) ([][]byte, error) {
	const (
		headerLen = 30
		tableOff  = 0x20
		bodyOff   = 0x420
		loadAddr  = 0x26 << 5
	)
	if len(data) < headerLen+256*4+2 {
		return nil, errors.New("PPC bank too short")
	}

	ram := append(make([]byte, loadAddr), data[bodyOff:]...)
	ends, _ := codecutil.Uint16LE(data, headerLen)
	if len(ram) != int(ends)<<5 {
		return nil, errors.New("PPC sample RAM size does not match header")
	}

	slots := make([][]byte, 256)
	for i := range slots {
		s, _ := codecutil.Uint16LE(data, tableOff+i*4)
		e, _ := codecutil.Uint16LE(data, tableOff+2+i*4)
		start := int(s) << 5
		end := int(e)<<5 - 1
		if end <= len(ram) && end-start > 8 {
			slots[i] = ram[start:end]
		}
	}
	return slots, nil
}
