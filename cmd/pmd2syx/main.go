/*
DESCRIPTION
  pmd2syx extracts the FM voices of PMD song files and writes them as
  DX7 bulk dump sysex banks.

AUTHORS
  Ella Pietraroia <ella@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/


// Package pmd2syx is a command line tool that converts the OPN voices
// of PMD song files to DX7 voice banks. Banks are written next to each
// input file as <name>.syx, with overflow banks as <name>_1.syx and so
// on, 32 voices to a bank.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ausocean/utils/logging"
	"gopkg.in/natefinch/lumberjack.v2"

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

	first := true
	for _, path := range flag.Args() {
		data, err := os.ReadFile(path)
		if err != nil {
			l.Fatal("could not read file", "path", path, "error", err.Error())
		}

		stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		f, voices, err := extract.PMDVoices(data, stem)
		if err != nil || len(voices) == 0 {
			if !first {
				fmt.Println()
			}
			first = false
			fmt.Printf("File '%s' not recognized as PMD or contains no voice data\n", path)
			if err != nil {
				l.Debug("skipping file", "path", path, "error", err.Error())
			}
			continue
		}

		if *verbose {
			if !first {
				fmt.Println()
			}
			first = false
			fmt.Println("File:    ", path)
			fmt.Println("Title:   ", f.Meta.Title)
			fmt.Println("Composer:", f.Meta.Composer)
			fmt.Println("Arranger:", f.Meta.Arranger)
			if f.Meta.Memo1 != "" {
				fmt.Println("Notes:   ", f.Meta.Memo1)
				if f.Meta.Memo2 != "" {
					fmt.Println("         ", f.Meta.Memo2)
				}
			}
			if f.Meta.PCMFile != "" {
				fmt.Println("PCM File:", f.Meta.PCMFile)
			}
			if f.Meta.PPZFile != "" {
				fmt.Println("PPZ File:", f.Meta.PPZFile)
			}
			if f.Meta.PPSFile != "" {
				fmt.Println("PPS File:", f.Meta.PPSFile)
			}
			fmt.Println("Voices:  ", len(voices))
			for _, rec := range f.Voices {
				fmt.Printf("Voice %02X: %s\n", rec[0], hex.EncodeToString(rec))
			}
		}

		msgs, err := extract.Sysexes(voices)
		if err != nil {
			l.Fatal("could not render sysex", "path", path, "error", err.Error())
		}
		for i, msg := range msgs {
			outpath := path + ".syx"
			if i > 0 {
				outpath = fmt.Sprintf("%s_%d.syx", path, i)
			}
			err := os.WriteFile(outpath, msg, 0644)
			if err != nil {
				l.Fatal("could not write sysex file", "path", outpath, "error", err.Error())
			}
			l.Debug("wrote sysex bank", "path", outpath)
		}
	}
}
