package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestLCG(t *testing.T) {
	g := &lcg{seed: 404}

	for i := 0; i < 1000; i++ {
		require.Less(t, g.Intn(10), uint32(10))
	}

	a, b := &lcg{seed: 1}, &lcg{seed: 1}
	require.Equal(t, a.Float64(), b.Float64())
}

func TestCheck(t *testing.T) {
	r := check(zerolog.Nop(), 404, 20000)
	require.Equal(t, 20000, r.Count)
	require.Equal(t, 0, r.Fatal, "%v", r.Samples)
	require.Empty(t, r.Samples)
}

func TestParseLines(t *testing.T) {
	out := &bytes.Buffer{}
	in := strings.NewReader("1984\n500e\naboba\n-inf\n")

	err := parseLines(out, in)
	require.NoError(t, err)
	require.Equal(t,
		"1984\t4\t0x409f000000000000\n"+
			"500\t3\t0x407f400000000000\n"+
			"-Inf\t4\t0xfff0000000000000\n",
		out.String(),
	)
}
