package rjson

import (
	"math"
	"strconv"
	"testing"
)

func TestScanNumber(t *testing.T) {
	tests := []struct {
		have string
		want int
	}{
		{"0", 1},
		{"-0", 2},
		{"5", 1},
		{"20", 2},
		{"-31.2", 5},
		{"0.5", 3},
		{"1e5", 3},
		{"1e+5", 4},
		{"1E-5", 4},
		{"-12.5e-3", 8},
		{"9e0", 3},
		{"123abc", 3},
		{"01", 1}, // the leading zero stands alone
		{"", 0},
		{"-", 0},
		{"+1", 0},
		{".5", 0},
		{"1.", 0},
		{"1.e5", 0},
		{"1e", 0},
		{"1e+", 0},
		{"e5", 0},
		{"- 1", 0},
	}
	for _, test := range tests {
		if got := scanNumber(test.have); got != test.want {
			t.Errorf("%q: got %d, want %d", test.have, got, test.want)
		}
	}
}

func TestConvertNumber(t *testing.T) {
	tests := []struct {
		have string
		want float64
		ok   bool
	}{
		{"0", 0, true},
		{"-31.2", -31.2, true},
		{"1e308", 1e308, true},
		{"1e999", 0, false},
		{"-1e999", 0, false},
		{"1e-999", 0, true}, // underflow stays finite
		{"5e-324", 5e-324, true},
	}
	for _, test := range tests {
		got, ok := convertNumber(test.have)
		if ok != test.ok {
			t.Errorf("%q: got ok=%v, want %v", test.have, ok, test.ok)
			continue
		}
		if ok && got != test.want {
			t.Errorf("%q: got %v, want %v", test.have, got, test.want)
		}
	}
}

func TestAppendNumber(t *testing.T) {
	tests := []struct {
		have float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "-0"},
		{5, "5"},
		{-31.2, "-31.2"},
		{3.125, "3.125"},
		{0.0003125, "0.0003125"},
		{1e21, "1e+21"},
	}
	for _, test := range tests {
		got, ok := appendNumber(nil, test.have)
		if !ok {
			t.Errorf("%v: unexpected rejection", test.have)
			continue
		}
		if string(got) != test.want {
			t.Errorf("%v: got %s, want %s", test.have, got, test.want)
		}
	}
}

func TestAppendNumberRoundTrip(t *testing.T) {
	for _, f := range []float64{
		0, math.Copysign(0, -1), 1, -1, 0.1, 1. / 3.,
		5.8, -2.5e-8, 1e300, math.MaxFloat64, math.SmallestNonzeroFloat64,
	} {
		text, ok := appendNumber(nil, f)
		if !ok {
			t.Fatalf("%v rejected", f)
		}
		back, err := strconv.ParseFloat(string(text), 64)
		if err != nil {
			t.Fatalf("%s: %v", text, err)
		}
		if math.Float64bits(back) != math.Float64bits(f) {
			t.Errorf("%v formats as %s which parses to %v", f, text, back)
		}
	}
}

func TestAppendNumberNonFinite(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, ok := appendNumber(nil, f); ok {
			t.Errorf("%v must be rejected", f)
		}
	}
}
