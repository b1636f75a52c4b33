/*
NAME
  extract.go

DESCRIPTION
  extract.go provides the voice extraction pipelines, turning parsed
  MDX and PMD songs into named OPM voices and rendering voice sets as
  DX7 bulk dump messages.

AUTHOR
  Ella Pietraroia <ella@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/


// Package extract assembles the parsing, decoding and rendering
// packages into the extraction pipelines used by the command line
// tools: song files to DX7 voice banks, and sample archives to WAV
// files.
package extract

import (
	"fmt"

	"github.com/ausocean/utils/logging"
	"github.com/gojp/kana"
	"github.com/kennygrant/sanitize"

	"github.com/Optiroc/MDXtract/container/mdx"
	"github.com/Optiroc/MDXtract/container/pmd"
	"github.com/Optiroc/MDXtract/voice/dx7"
	"github.com/Optiroc/MDXtract/voice/opm"
)

// DefaultSampleRate is the sample rate of WAV output when none is
// given. ADPCM playback on the source hardware is nominally 15.6 kHz.
const DefaultSampleRate = 15625

// Config holds the options shared by the extraction pipelines.
type Config struct {
	// SampleRate is the sample rate written to WAV output. Zero means
	// DefaultSampleRate.
	SampleRate int

	// Gain scales decoded samples linearly. Zero means unity.
	Gain float64

	// DCNorm removes the DC bias of each sample before gain is
	// applied.
	DCNorm bool

	// Logger receives per-slot extraction detail. It may be nil.
	Logger logging.Logger
}

func (c *Config) setDefaults() {
	if c.SampleRate == 0 {
		c.SampleRate = DefaultSampleRate
	}
	if c.Gain == 0 {
		c.Gain = 1
	}
}

func (c *Config) debug(msg string, args ...interface{}) {
	if c.Logger != nil {
		c.Logger.Debug(msg, args...)
	}
}

// MDXVoices parses an MDX song and extracts its voices. Voices are
// named from stem and their position in the file.
func MDXVoices(data []byte, stem string) (*mdx.File, []opm.Voice, error) {
	f, err := mdx.Parse(data)
	if err != nil {
		return nil, nil, err
	}
	var voices []opm.Voice
	for i, rec := range f.Voices {
		v, err := opm.FromMDX(voiceName(stem, i), rec)
		if err != nil {
			return nil, nil, err
		}
		voices = append(voices, v)
	}
	return f, voices, nil
}

// PMDVoices parses a PMD song and extracts its voices. Voices are
// named from stem and the voice number stored in each record.
func PMDVoices(data []byte, stem string) (*pmd.File, []opm.Voice, error) {
	f, err := pmd.Parse(data)
	if err != nil {
		return nil, nil, err
	}
	var voices []opm.Voice
	for _, rec := range f.Voices {
		v, err := opm.FromPMD(voiceName(stem, int(rec[0])), rec)
		if err != nil {
			return nil, nil, err
		}
		voices = append(voices, v)
	}
	return f, voices, nil
}

// Sysexes converts voices to DX7 form and renders them as bulk dump
// messages, one per bank of 32.
func Sysexes(voices []opm.Voice) ([][]byte, error) {
	var out [][]byte
	for lo := 0; lo < len(voices); lo += dx7.BankSize {
		hi := lo + dx7.BankSize
		if hi > len(voices) {
			hi = len(voices)
		}
		bank := make([]dx7.Voice, 0, hi-lo)
		for _, v := range voices[lo:hi] {
			bank = append(bank, dx7.FromOPM(v))
		}
		syx, err := dx7.BulkSysex(bank)
		if err != nil {
			return nil, err
		}
		out = append(out, syx)
	}
	return out, nil
}

// voiceName builds a DX7-safe voice name from a song file stem and a
// voice number. Stems are romanized and sanitized so that kana song
// titles still produce printable patch names.
func voiceName(stem string, id int) string {
	s := sanitize.BaseName(kana.KanaToRomaji(stem))
	if len(s) > 7 {
		s = s[:7]
	}
	return fmt.Sprintf("%s_%02X", s, id)
}
