package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/calebcase/oops"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/calebcase/strtod"
)

func main() {
	// Check options
	checkCount := flag.Int("check", 0, "Run N randomized comparisons against strconv and exit")
	seed := flag.Uint("seed", 404, "Seed for -check")

	// Logging options
	logLevel := flag.String("log-level", "info", "Log level (trace, debug, info, warn, error, fatal)")
	prettyLogs := flag.Bool("pretty", false, "Enable pretty logging output")

	flag.Parse()

	setupLogging(*logLevel, *prettyLogs)

	if *checkCount > 0 {
		r := check(log.Logger, uint32(*seed), *checkCount)

		log.Info().
			Int("count", r.Count).
			Int("one_ulp", r.OneULP).
			Float64("one_ulp_pct", 100*float64(r.OneULP)/float64(r.Count)).
			Int("fatal", r.Fatal).
			Strs("samples", r.Samples).
			Msg("check finished")

		if r.Fatal > 0 {
			os.Exit(1)
		}

		return
	}

	var err error
	if flag.NArg() > 0 {
		for _, arg := range flag.Args() {
			parse(os.Stdout, arg)
		}
	} else {
		err = parseLines(os.Stdout, os.Stdin)
	}

	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read input")
	}
}

// parse writes the value of the number at the start of text, the number of
// bytes it spans and its IEEE bits.
func parse(w io.Writer, text string) {
	f, n, ok := strtod.ParseString(text)
	if !ok {
		log.Warn().Str("text", text).Msg("No number")

		return
	}

	if n != len(text) {
		log.Debug().Str("text", text).Str("rest", text[n:]).Msg("Trailing data")
	}

	fmt.Fprintf(w, "%v\t%d\t%#016x\n", f, n, math.Float64bits(f))
}

func parseLines(w io.Writer, r io.Reader) error {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for s.Scan() {
		parse(w, s.Text())
	}

	if err := s.Err(); err != nil {
		return oops.Trace(err)
	}

	return nil
}

func setupLogging(level string, pretty bool) {
	// Set log level
	var logLevel zerolog.Level
	switch level {
	case "trace":
		logLevel = zerolog.TraceLevel
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	case "fatal":
		logLevel = zerolog.FatalLevel
	default:
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	// Logs go to stderr so stdout only carries results.
	if pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
}
