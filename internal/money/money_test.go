package money

import "testing"

func TestFromFloat(t *testing.T) {
	cases := []struct {
		in  float64
		out Money
	}{
		{0, 0},
		{12.34, 1234},
		{19.99, 1999},
		{100, 10000},
		{0.01, 1},
		{-5.5, -550},
	}
	for _, tc := range cases {
		if got := FromFloat(tc.in); got != tc.out {
			t.Fatalf("FromFloat(%v) = %d, want %d", tc.in, got, tc.out)
		}
	}
}

func TestFormatBRL(t *testing.T) {
	cases := []struct {
		in  Money
		out string
	}{
		{0, "R$ 0,00"},
		{5, "R$ 0,05"},
		{1234, "R$ 12,34"},
		{123456, "R$ 1.234,56"},
		{100000000, "R$ 1.000.000,00"},
		{-123456, "-R$ 1.234,56"},
	}
	for _, tc := range cases {
		if got := tc.in.FormatBRL(); got != tc.out {
			t.Fatalf("Money(%d).FormatBRL() = %q, want %q", tc.in, got, tc.out)
		}
	}
}
