package formula

import (
	"math"
	"testing"
)

func TestConstant(t *testing.T) {
	cases := []struct {
		src string
		r   float64
		end int
	}{
		{"0", 0, 1},
		{"9876543210", 9876543210, 10},
		{"1.0", 1, 3},
		{"1.", 1, 2},
		{".5", 0.5, 2},
		{".", 0, 0},
		{"..5", 0, 0},
		{"1.2.3", 1.2, 3},
		{"1e1", 10, 3},
		{"1E1", 10, 3},
		{"1e+1", 10, 4},
		{"1e-1", 0.1, 4},
		{"1e", 1, 1},
		{"1e+", 1, 1},
		{"1ex", 1, 1},
		{".1e1", 1, 4},
		{"1+2", 1, 1},
		{"12abc", 12, 2},
		{"0x10", 16, 4},
		{"0xff", 255, 4},
		{"0xFFz", 255, 4},
		{"0x", 0, 1},
		{"0xg", 0, 1},
		{"0x100000000", 0, 11},
		{"0x100000001", 1, 11},
		{"0xFFFFFFFFFFFFFFFFFF", math.MaxUint32, 20},
		{"0x1.8", 1, 3},
		{"0X10", 16, 4},
		{"0X1.8", 1.5, 5},
		{"0X1p4", 16, 5},
		{"0X1P-1", 0.5, 6},
		{"0X1p", 1, 3},
		{"0X.8", 0.5, 4},
		{"0X", 0, 1},
		{"0Xg", 0, 1},
		{"1e999", math.Inf(1), 5},
	}
	for _, c := range cases {
		s := state{src: c.src}
		r := s.constant()
		if r != c.r {
			t.Errorf("scanning %q: want %g, got %g", c.src, c.r, r)
		}
		if s.pos != c.end {
			t.Errorf("scanning %q: want end %d, got %d", c.src, c.end, s.pos)
		}
		if s.err != nil {
			t.Errorf("scanning %q: unexpected error %v", c.src, s.err)
		}
	}
}

func TestSkipSpace(t *testing.T) {
	cases := []struct {
		src string
		end int
	}{
		{"", 0},
		{"x", 0},
		{" \t\n\v\f\rx", 6},
		{"   ", 3},
		// Only ASCII whitespace counts.
		{"\u00a0x", 0},
	}
	for _, c := range cases {
		s := state{src: c.src}
		s.skipSpace()
		if s.pos != c.end {
			t.Errorf("skipping %q: want %d, got %d", c.src, c.end, s.pos)
		}
	}
}

func TestFailFirstWins(t *testing.T) {
	s := state{src: "abc"}
	s.fail(Error{Kind: UnknownFunction}, 2)
	s.pos = 1
	s.fail(Error{Kind: TrailingGarbage}, 2)
	if s.err == nil {
		t.Fatal("no error recorded")
	}
	if s.err.Kind != UnknownFunction || s.err.Begin != 0 || s.err.End != 2 {
		t.Errorf("wrong error: %+v", *s.err)
	}
}

func TestFailClamp(t *testing.T) {
	s := state{src: "ab", pos: 2}
	s.fail(Error{Kind: ExpectedChar, Expected: ')'}, 1)
	if s.err.Begin != 2 || s.err.End != 2 {
		t.Errorf("range not clamped: %d..%d", s.err.Begin, s.err.End)
	}
}
