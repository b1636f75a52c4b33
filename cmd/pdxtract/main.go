/*
DESCRIPTION
  pdxtract extracts the ADPCM samples of PDX archives and writes each
  one as a 16-bit PCM WAV file at a fixed 16 kHz sample rate.

AUTHORS
  David Sutton <davidsutton@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/


// Package pdxtract is a minimal command line tool that converts the
// samples of PDX archives to WAV files, written next to each input
// file as <name>_<n>.wav with slots numbered from 1. pdx2wav is the
// configurable version of this tool.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ausocean/utils/logging"

	"github.com/Optiroc/MDXtract/extract"
)

// Logging configuration.
const (
	logVerbosity = logging.Info
	logSuppress  = true
)

// sampleRate is the fixed output sample rate.
const sampleRate = 16000

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(0)
	}

	l := logging.New(logVerbosity, os.Stderr, logSuppress)

	for _, path := range flag.Args() {
		data, err := os.ReadFile(path)
		if err != nil {
			l.Fatal("could not read file", "path", path, "error", err.Error())
		}

		samples, err := extract.PDXSamples(data, extract.Config{SampleRate: sampleRate, Logger: l})
		if err != nil {
			l.Fatal("could not extract samples", "path", path, "error", err.Error())
		}

		stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		base := filepath.Join(filepath.Dir(path), stem)
		for _, s := range samples {
			outpath := fmt.Sprintf("%s_%02d.wav", base, s.Slot+1)
			err := os.WriteFile(outpath, s.WAV, 0644)
			if err != nil {
				l.Fatal("could not write wav file", "path", outpath, "error", err.Error())
			}
		}
	}
}
