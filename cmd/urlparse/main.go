package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/badu/url"
)

var (
	basePtr    = flag.String("base", "", "Base URL relative references are resolved against.")
	idnaPtr    = flag.Bool("idna", false, "Convert non-ASCII domain labels to punycode instead of rejecting them.")
	queryPtr   = flag.Bool("query", false, "Print the decoded query name/value pairs after each URL.")
	verbosePtr = flag.Bool("v", false, "Log syntax violations to stderr.")
)

func main() {
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	parser, err := newParser(*basePtr, *idnaPtr, *verbosePtr)
	check(err)

	var failed int
	if flag.NArg() > 0 {
		for _, arg := range flag.Args() {
			if !run(parser, arg, os.Stdout, &log) {
				failed++
			}
		}
	} else {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if !run(parser, scanner.Text(), os.Stdout, &log) {
				failed++
			}
		}
		check(errors.Wrap(scanner.Err(), "reading stdin"))
	}

	if failed > 0 {
		log.Error().Int("failed", failed).Msg("some inputs could not be parsed")
		os.Exit(1)
	}
}

func newParser(base string, idna, verbose bool) (*url.Parser, error) {
	p := &url.Parser{IDNA: idna}
	if verbose {
		p.LogOutput = zerolog.ConsoleWriter{Out: os.Stderr}
	}
	if base != "" {
		u, err := url.Parse(base, nil)
		if err != nil {
			return nil, errors.Wrap(err, "-base")
		}
		p.Base = u
	}
	return p, nil
}

// run parses one input and prints its serialization. It reports whether parsing succeeded.
func run(p *url.Parser, input string, out io.Writer, log *zerolog.Logger) bool {
	u, err := p.Parse(input)
	if err != nil {
		log.Error().Err(err).Msg("parse failed")
		return false
	}
	fmt.Fprintln(out, u.Serialize())
	if *queryPtr {
		for _, pair := range u.QueryPairs() {
			fmt.Fprintf(out, "\t%s = %s\n", pair.Name, pair.Value)
		}
	}
	return true
}

func check(err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Encountered error(s): %s\n", err)
		os.Exit(1)
	}
}
