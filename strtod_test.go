package strtod_test

import (
	"fmt"
	"math"
	"strconv"
	"sync"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/strtod"
)

func TestParseAt(t *testing.T) {
	type TC struct {
		Text  string
		Pos   int
		Value float64
		End   int
		OK    bool
		Mark  error
	}

	tcs := []TC{
		{Text: "1984\x00", Value: 1984, End: 4, OK: true, Mark: oops.New("unexpected")},
		{Text: "+123.45e-22 abc\x00", Value: 123.45e-22, End: 11, OK: true, Mark: oops.New("unexpected")},
		{Text: "aboba\x00", End: 0, Mark: oops.New("unexpected")},
		{Text: "AAA.99\x00", Pos: 3, Value: 0.99, End: 6, OK: true, Mark: oops.New("unexpected")},
		{Text: "500e\x00", Value: 500, End: 3, OK: true, Mark: oops.New("unexpected")},
		{Text: "1,5", Value: 1, End: 1, OK: true, Mark: oops.New("unexpected")},
		{Text: "1_000", Value: 1, End: 1, OK: true, Mark: oops.New("unexpected")},
		{Text: " 1", End: 0, Mark: oops.New("unexpected")},
		{Text: "0x1p3", Value: 0, End: 1, OK: true, Mark: oops.New("unexpected")},
		{Text: "7", Pos: 1, End: 1, Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%q", i, tc.Text), func(t *testing.T) {
			f, end, ok := strtod.ParseAt([]byte(tc.Text), tc.Pos)
			require.Equal(t, tc.OK, ok, tc.Mark)
			require.Equal(t, tc.End, end, tc.Mark)

			if !ok {
				require.Equal(t, tc.Pos, end, tc.Mark)
				return
			}

			require.Equal(t, tc.Value, f, tc.Mark)
		})
	}
}

func TestParseNaN(t *testing.T) {
	for _, s := range []string{"-nan\x00", "-NaN\x00", "nan\x00"} {
		f, n, ok := strtod.ParseString(s)
		require.True(t, ok, s)
		require.True(t, math.IsNaN(f), s)
		require.Equal(t, s[0] == '-', math.Signbit(f), s)
		require.Equal(t, len(s)-1, n, s)
	}
}

func TestParseInto(t *testing.T) {
	value := 42.0
	end := 7

	require.Equal(t, 0, strtod.ParseInto([]byte("aboba\x00"), &value, &end))
	require.Equal(t, 42.0, value)
	require.Equal(t, 7, end)

	require.Equal(t, 1, strtod.ParseInto([]byte("-2.5e1x\x00"), &value, &end))
	require.Equal(t, -25.0, value)
	require.Equal(t, 6, end)
}

func TestParseFloat(t *testing.T) {
	f, err := strtod.ParseFloat("6.02214076e23")
	require.NoError(t, err)
	require.Equal(t, 6.02214076e23, f)

	f, err = strtod.ParseFloat("-Infinity")
	require.NoError(t, err)
	require.Equal(t, math.Inf(-1), f)

	_, err = strtod.ParseFloat("")
	require.Error(t, err)
	require.Equal(t, strtod.ErrSyntax, err)
	require.True(t, strtod.Error.Has(err))

	f, err = strtod.ParseFloat("12abc")
	require.Error(t, err)
	require.True(t, strtod.Error.Has(err))
	require.Contains(t, err.Error(), "offset 2")
	require.Equal(t, 12.0, f)
}

func TestParseConcurrent(t *testing.T) {
	inputs := []string{"1984", "-0.5", "1e-300", "123456789.123456789e10", "inf"}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for i := 0; i < 1000; i++ {
				for _, s := range inputs {
					want, _ := strconv.ParseFloat(s, 64)

					f, n, ok := strtod.ParseString(s)
					if !ok || n != len(s) || math.Abs(f-want) > math.Abs(want)*1e-15 {
						t.Errorf("%q: got %g, %d, %v", s, f, n, ok)
						return
					}
				}
			}
		}()
	}

	wg.Wait()
}

func TestParseAllocs(t *testing.T) {
	text := []byte("-123.456789e-12 rest")

	allocs := testing.AllocsPerRun(100, func() {
		_, _, _ = strtod.Parse(text)
	})
	require.Equal(t, 0.0, allocs)
}

func ExampleParseString() {
	f, n, ok := strtod.ParseString("+123.45e-22 abc")
	fmt.Println(f, n, ok)

	f, n, ok = strtod.ParseString("500e")
	fmt.Println(f, n, ok)

	_, n, ok = strtod.ParseString("aboba")
	fmt.Println(n, ok)
	// Output:
	// 1.2345e-20 11 true
	// 500 3 true
	// 0 false
}
