/*
DESCRIPTION
  mdx2syx extracts the FM voices of MDX song files and writes them as
  DX7 bulk dump sysex banks.

AUTHORS
  Alan Noble <alan@ausocean.org>
  Ella Pietraroia <ella@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/


// Package mdx2syx is a command line tool that converts the OPM voices
// of MDX song files to DX7 voice banks. Banks are written next to each
// input file as <name>.syx, with overflow banks as <name>_1.syx and so
// on, 32 voices to a bank.
package main

import (
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
		f, voices, err := extract.MDXVoices(data, stem)
		if err != nil {
			l.Fatal("could not parse file", "path", path, "error", err.Error())
		}

		if *verbose {
			if !first {
				fmt.Println()
			}
			first = false
			fmt.Println("File:", path)
			fmt.Println("Title:", f.Title)
			fmt.Println("Channels:", f.Channels)
			fmt.Println("Voices:", len(voices))
			fmt.Println("PCM File:", f.PDXFile)
		}

		msgs, err := extract.Sysexes(voices)
		if err != nil {
			l.Fatal("could not render sysex", "path", path, "error", err.Error())
		}
		base := filepath.Join(filepath.Dir(path), stem)
		for i, msg := range msgs {
			outpath := base + ".syx"
			if i > 0 {
				outpath = fmt.Sprintf("%s_%d.syx", base, i)
			}
			err := os.WriteFile(outpath, msg, 0644)
			if err != nil {
				l.Fatal("could not write sysex file", "path", outpath, "error", err.Error())
			}
			l.Debug("wrote sysex bank", "path", outpath)
		}
	}
}
