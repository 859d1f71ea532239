// Command fastasize prints the number of sequence residues in FASTA files.
//
//	fastasize [options] [file ...]
//
// With no files, or the file "-", standard input is read.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	fastasize "github.com/apollo994/phylocontext"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func envInt(name string, def int) int {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envString(name, def string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return def
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("fastasize", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		mode     string
		strategy string
		buffer   int
		verbose  bool
	)
	fs.StringVar(&mode, "mode", envString("FASTASIZE_MODE", "branching"), "counting algorithm: branching or branchless")
	fs.StringVar(&strategy, "strategy", envString("FASTASIZE_STRATEGY", "auto"), "file access: auto, stream or mmap")
	fs.IntVar(&buffer, "buffer", envInt("FASTASIZE_BUFFER", fastasize.DefaultBufferSize), "read buffer size in bytes for streamed input")
	fs.BoolVar(&verbose, "v", false, "log scan details to stderr")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: fastasize [options] [file ...]\n\n")
		fmt.Fprintf(stderr, "Count sequence residues (bytes outside header lines, excluding newlines).\n")
		fmt.Fprintf(stderr, "Reads standard input when no file or \"-\" is given.\n\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return exitOK
		}
		return exitUsage
	}

	countMode, err := fastasize.ParseCountMode(mode)
	if err != nil {
		fmt.Fprintln(stderr, "fastasize:", err)
		return exitUsage
	}
	countStrategy, err := fastasize.ParseStrategy(strategy)
	if err != nil {
		fmt.Fprintln(stderr, "fastasize:", err)
		return exitUsage
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	prev := slog.Default()
	slog.SetDefault(logger)
	defer slog.SetDefault(prev)

	opts := []fastasize.Option{
		fastasize.WithCountMode(countMode),
		fastasize.WithStrategy(countStrategy),
		fastasize.WithBufferSize(buffer),
	}

	inputs := fs.Args()
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}

	var total uint64
	for _, input := range inputs {
		var n uint64
		if input == "-" {
			n, err = fastasize.CountReader(stdin, opts...)
		} else {
			n, err = fastasize.CountFile(input, opts...)
		}
		if err != nil {
			fmt.Fprintf(stderr, "fastasize: %s: %v\n", input, err)
			slog.Debug("[fastasize]",
				slog.String("event_type", "cli.scan.failed"),
				slog.String("input", input),
				slog.String("kind", fastasize.KindOf(err).String()),
			)
			return exitError
		}
		total += n

		if len(inputs) > 1 {
			fmt.Fprintf(stdout, "%d\t%s\n", n, input)
		}
	}

	if len(inputs) > 1 {
		fmt.Fprintf(stdout, "%d\ttotal\n", total)
	} else {
		fmt.Fprintln(stdout, total)
	}
	return exitOK
}
