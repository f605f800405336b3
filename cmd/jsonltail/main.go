package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"syscall"

	jsonl "github.com/gpmcp/async-jsonl"
	"golang.org/x/crypto/ssh/terminal"
)

const version = "jsonltail <unversioned>"

func main() {
	var logfile string
	flag.StringVar(&logfile, "debug-logfile", "", "debug logfile")
	vFlag := flag.Bool("version", false, "version")
	n := flag.Int("n", 10, "number of records to print")
	records := flag.Bool("records", false, "require every printed line to be a JSON record")
	flag.Parse()

	if *vFlag {
		fmt.Println(version)
		return
	}

	lg := jsonl.Logger(jsonl.NullLogger{})
	if logfile != "" {
		var err error
		lg, err = jsonl.FileLogger(logfile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not open debug logfile %q: %s\n", logfile, err)
			os.Exit(1)
		}
	}

	var name string
	var src io.ReadSeeker
	switch len(flag.Args()) {
	case 0:
		if terminal.IsTerminal(syscall.Stdin) {
			fmt.Fprintf(os.Stderr, "Missing filename (use \"jsonltail --help\" for usage)\n")
			os.Exit(1)
		}
		// A pipe cannot seek, and the backward reader needs a seekable
		// source. Materialize stdin instead.
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not read stdin: %s\n", err)
			os.Exit(1)
		}
		name = "stdin"
		src = bytes.NewReader(data)
	case 1:
		name = flag.Args()[0]
		f, err := os.Open(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not open file %s: %s\n", name, err)
			os.Exit(1)
		}
		defer f.Close()
		src = f
	default:
		flag.Usage()
		os.Exit(1)
	}

	lg.Info("reading last %d records of %s", *n, name)

	lines, err := jsonl.Tail(src, *n)
	if err != nil {
		lg.Warn("read failed: %s", err)
		fmt.Fprintf(os.Stderr, "Could not read %s: %s\n", name, err)
		os.Exit(1)
	}
	lg.Debug("got %d records", len(lines))

	for _, line := range lines {
		if *records && !json.Valid([]byte(line)) {
			fmt.Fprintf(os.Stderr, "Not a JSON record: %s\n", line)
			os.Exit(1)
		}
		fmt.Println(line)
	}
}
