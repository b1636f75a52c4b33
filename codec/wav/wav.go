/*
NAME
  wav.go

DESCRIPTION
  wav.go contains functions for processing wav.

AUTHOR
  David Sutton <davidsutton@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/


// Package wav provides functions for writing wav audio.
package wav

import (
	"encoding/binary"
	"fmt"
)

const PCMFormat = 1 // PCMFormat defines the value for pcm audio as defined by the wav std.

const headerSize = 44

var (
	errInvalidFormat   = fmt.Errorf("invalid or no format defined")
	errInvalidRate     = fmt.Errorf("invalid or no sample rate defined")
	errInvalidChannels = fmt.Errorf("invalid or no number of channels defined")
	errInvalidBitDepth = fmt.Errorf("invalid or no bit depth defined")
)

// Metadata defines the format of the audio data.
type Metadata struct {
	AudioFormat int
	Channels    int
	SampleRate  int
	BitDepth    int
}

// WAV describes a wav file: the format metadata and, after a call to
// Write, the serialized file content.
type WAV struct {
	Metadata Metadata
	Audio    []byte
}

// Write serializes the given audio data into w.Audio behind a canonical
// 44-byte header, replacing any previous content. It returns the number
// of bytes of file content produced.
func (w *WAV) Write(p []byte) (n int, err error) {
	md := w.Metadata
	switch {
	case md.AudioFormat != PCMFormat:
		return 0, errInvalidFormat
	case md.Channels == 0:
		return 0, errInvalidChannels
	case md.SampleRate == 0:
		return 0, errInvalidRate
	case md.BitDepth == 0:
		return 0, errInvalidBitDepth
	}

	header := make([]byte, headerSize, headerSize+len(p))
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], uint32(headerSize-8+len(p)))
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], uint16(md.AudioFormat))
	binary.LittleEndian.PutUint16(header[22:24], uint16(md.Channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(md.SampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(md.SampleRate*md.Channels*md.BitDepth/8))
	binary.LittleEndian.PutUint16(header[32:34], uint16(md.Channels*md.BitDepth/8))
	binary.LittleEndian.PutUint16(header[34:36], uint16(md.BitDepth))

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], uint32(len(p)))

	w.Audio = append(header, p...)
	return len(w.Audio), nil
}

// Encode returns pcm serialized as a wav file with the given metadata.
func Encode(md Metadata, pcm []byte) ([]byte, error) {
	w := WAV{Metadata: md}
	if _, err := w.Write(pcm); err != nil {
		return nil, err
	}
	return w.Audio, nil
}
