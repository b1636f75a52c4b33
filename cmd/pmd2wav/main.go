/*
DESCRIPTION
  pmd2wav extracts the samples of PMD sample banks (PPC, PPS, PVI, P86
  and P68) and writes each one as a 16-bit PCM WAV file.

AUTHORS
  Scott Barnard <scott@ausocean.org>
  Alan Noble <alan@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/


// Package pmd2wav is a command line tool that converts the samples of
// PMD sample banks to WAV files, written next to each input file as
// <name>_<slot>.wav. The bank type is taken from an explicit -type
// flag, the file header, or the file name extension, in that order.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ausocean/utils/logging"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/Optiroc/MDXtract/container/bank"
	"github.com/Optiroc/MDXtract/extract"
)

// Logging configuration.
const (
	logMaxSize   = 500 // MB
	logMaxBackup = 10
	logMaxAge    = 28 // days
	logVerbosity = logging.Info
	logSuppress  = true
)

func main() {
	verbose := flag.Bool("v", false, "verbose output")
	typeName := flag.String("type", "", "bank type (ppc/pps/pvi/p86/p68, default: auto detect)")
	rate := flag.Int("rate", extract.DefaultSampleRate, "output sample rate")
	gain := flag.Float64("gain", 1.0, "output gain")
	dcnorm := flag.Bool("dcnorm", false, "normalize dc bias")
	logPath := flag.String("log", "", "path of rotated log file, none if empty")
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(0)
	}

	// Log to stderr, and to a rotated log file when one is asked for.
	w := io.Writer(os.Stderr)
	if *logPath != "" {
		fileLog := &lumberjack.Logger{
			Filename:   *logPath,
			MaxSize:    logMaxSize,
			MaxBackups: logMaxBackup,
			MaxAge:     logMaxAge,
		}
		w = io.MultiWriter(os.Stderr, fileLog)
	}
	l := logging.New(logVerbosity, w, logSuppress)

	cfg := extract.Config{SampleRate: *rate, Gain: *gain, DCNorm: *dcnorm, Logger: l}
	explicit := bank.TypeFromString(*typeName)

	first := true
	for _, path := range flag.Args() {
		data, err := os.ReadFile(path)
		if err != nil {
			l.Fatal("could not read file", "path", path, "error", err.Error())
		}

		// An explicit type wins over header detection, and the file
		// name extension is the last resort.
		typ := explicit
		if typ == bank.Unknown {
			typ = bank.Detect(data)
			if typ == bank.Unknown {
				typ = bank.TypeFromPath(path)
			}
		}

		typ, samples, err := extract.BankSamples(data, typ, cfg)
		if err != nil {
			if !first {
				fmt.Println()
			}
			first = false
			fmt.Printf("File '%s' not of recognized type or contains no sample data\n", path)
			l.Debug("skipping file", "path", path, "error", err.Error())
			continue
		}

		if *verbose {
			if !first {
				fmt.Println()
			}
			first = false
			fmt.Println("File:", path)
			fmt.Println("Type:", typ)
		}

		written := 0
		for _, s := range samples {
			outpath := fmt.Sprintf("%s_%s.wav", path, s.ID)
			err := os.WriteFile(outpath, s.WAV, 0644)
			if err != nil {
				l.Fatal("could not write wav file", "path", outpath, "error", err.Error())
			}
			if *verbose {
				fmt.Printf("- %s (%d samples)\n", filepath.Base(outpath), s.Samples)
			}
			written++
		}
		if *verbose {
			fmt.Printf("%d samples extracted\n", written)
		}
	}
}
