// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/beevik/nes6502/host"
	"github.com/beevik/term"
	"github.com/golang/glog"
)

var (
	stats     bool
	statsAddr string
	trace     string
)

func init() {
	flag.BoolVar(&stats, "statsview", false, "serve live runtime statistics")
	flag.StringVar(&statsAddr, "statsaddr", "localhost:12600", "address of the statistics server")
	flag.StringVar(&trace, "trace", "", "write an execution trace to `file`")
	flag.CommandLine.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage: nes6502 [options] [script] ..\nOptions:")
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	defer glog.Flush()

	if stats {
		launchStatsview(statsAddr)
	}

	h := host.New()
	defer h.Close()

	if trace != "" {
		if err := h.StartTrace(trace); err != nil {
			exitOnError(err)
		}
	}

	// Run commands contained in command-line files.
	for _, filename := range flag.Args() {
		file, err := os.Open(filename)
		if err != nil {
			exitOnError(err)
		}
		h.RunCommands(file, os.Stdout, false)
		file.Close()
	}

	// Break on Ctrl-C.
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go handleInterrupt(h, c)

	// Run commands from standard input, prompting only on a terminal.
	h.RunCommands(os.Stdin, os.Stdout, term.IsTerminal(int(os.Stdin.Fd())))
}

func handleInterrupt(h *host.Host, c chan os.Signal) {
	for {
		<-c
		h.Break()
	}
}

func exitOnError(err error) {
	glog.Errorf("%v", err)
	glog.Flush()
	fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
	os.Exit(1)
}
