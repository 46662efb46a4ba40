package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/calebcase/strtod"
)

// lcg is the linear congruential generator used to draw bit patterns. It is
// seeded explicitly so runs are reproducible across platforms.
type lcg struct {
	seed uint32
}

// Intn returns a value in [0, n).
func (g *lcg) Intn(n uint32) uint32 {
	g.seed = g.seed*0x08088405 + 1

	return uint32((uint64(n) * uint64(g.seed)) >> 32)
}

// Float64 returns a float64 with random bits, NaN and Inf included.
func (g *lcg) Float64() float64 {
	var bits uint64
	for i := 0; i < 4; i++ {
		bits |= uint64(g.Intn(1<<16)) << (16 * i)
	}

	return math.Float64frombits(bits)
}

// Report summarizes a check run.
type Report struct {
	Count   int
	OneULP  int
	Fatal   int
	Samples []string
}

// maxSamples bounds the failing inputs kept in a report.
const maxSamples = 10

var formats = []string{"%.15g", "%.6g", "%.17g"}

// check parses count random values with both strtod and strconv and
// compares the results bit for bit. A difference of one ulp is tolerated
// and counted; anything else is fatal.
func check(logger zerolog.Logger, seed uint32, count int) Report {
	g := &lcg{seed: seed}
	r := Report{Count: count}

	fatal := func(text string, msg string) {
		r.Fatal++
		if len(r.Samples) < maxSamples {
			r.Samples = append(r.Samples, text)
		}

		logger.Debug().Str("text", text).Msg(msg)
	}

	for i := 0; i < count; i++ {
		source := g.Float64()
		text := fmt.Sprintf(formats[g.Intn(uint32(len(formats)))], source)

		a, n, ok := strtod.ParseString(text)
		if !ok || n != len(text) {
			fatal(text, "incomplete read")

			continue
		}

		b, err := strconv.ParseFloat(text, 64)
		if err != nil && !math.IsInf(b, 0) {
			fatal(text, "reference rejected input")

			continue
		}

		if math.IsNaN(a) && math.IsNaN(b) {
			continue
		}

		x, y := math.Float64bits(a), math.Float64bits(b)
		if x == y {
			continue
		}

		if x+1 == y || x-1 == y {
			r.OneULP++

			logger.Trace().
				Str("text", text).
				Float64("got", a).
				Float64("want", b).
				Msg("one ulp")

			continue
		}

		fatal(text, "mismatch")
	}

	return r
}
