package formula

import "strconv"

// state is the cursor over a single evaluation. It is never shared between
// calls.
type state struct {
	src string
	pos int
	err *Error
}

// fail records an error at the cursor covering n bytes. Only the first
// error is kept.
func (s *state) fail(e Error, n int) {
	if s.err != nil {
		return
	}
	e.Src = s.src
	e.Begin = s.pos
	e.End = s.pos + n
	if e.End > len(s.src) {
		e.End = len(s.src)
	}
	s.err = &e
}

// peek returns the byte at the cursor, or 0 at the end of the input.
func (s *state) peek() byte {
	if s.pos < len(s.src) {
		return s.src[s.pos]
	}
	return 0
}

// at returns the byte k bytes past the cursor, or 0 past the end.
func (s *state) at(k int) byte {
	if s.pos+k < len(s.src) {
		return s.src[s.pos+k]
	}
	return 0
}

func (s *state) skipSpace() {
	for s.pos < len(s.src) && isSpace(s.src[s.pos]) {
		s.pos++
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlpha(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isIdent(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '_'
}

func isHex(c byte) bool {
	return isDigit(c) || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// digits returns the index of the first byte at or after i that does not
// satisfy f.
func (s *state) digits(i int, f func(byte) bool) int {
	for i < len(s.src) && f(s.src[i]) {
		i++
	}
	return i
}

// constant scans an unsigned numeric literal. The cursor must be at a digit
// or '.'. If there is no valid literal there, the result is 0 and the cursor
// does not move.
func (s *state) constant() float64 {
	if s.peek() == '0' {
		switch s.at(1) {
		case 'x':
			return s.hexint()
		case 'X':
			if r, ok := s.hexfloat(); ok {
				return r
			}
		}
	}
	return s.decimal()
}

// hexint scans 0x followed by hex digits the way strtoul with base 0 does.
// Values wrap to 32 bits.
func (s *state) hexint() float64 {
	start := s.pos + 2
	end := s.digits(start, isHex)
	if end == start {
		// Just the 0.
		s.pos++
		return 0
	}
	// ParseUint saturates to MaxUint64 on overflow, same as strtoul.
	v, _ := strconv.ParseUint(s.src[start:end], 16, 64)
	s.pos = end
	return float64(uint32(v))
}

// hexfloat scans a C99 hexadecimal float beginning with 0X. ok is false if
// there are no hex digits after the prefix.
func (s *state) hexfloat() (r float64, ok bool) {
	start := s.pos + 2
	i := s.digits(start, isHex)
	nd := i - start
	if i < len(s.src) && s.src[i] == '.' {
		j := s.digits(i+1, isHex)
		nd += j - (i + 1)
		i = j
	}
	if nd == 0 {
		return 0, false
	}
	mant := s.src[start:i]
	exp := "p0"
	if k := s.exponent(i, 'p', 'P'); k > i {
		exp = s.src[i:k]
		i = k
	}
	r, err := strconv.ParseFloat("0x"+mant+exp, 64)
	if err != nil && !isRange(err) {
		return 0, false
	}
	s.pos = i
	return r, true
}

// decimal scans the longest decimal floating-point prefix at the cursor.
func (s *state) decimal() float64 {
	start := s.pos
	i := s.digits(start, isDigit)
	nd := i - start
	if i < len(s.src) && s.src[i] == '.' {
		j := s.digits(i+1, isDigit)
		nd += j - (i + 1)
		i = j
	}
	if nd == 0 {
		return 0
	}
	i = s.exponent(i, 'e', 'E')
	r, err := strconv.ParseFloat(s.src[start:i], 64)
	if err != nil && !isRange(err) {
		// Unreachable given the scan above, but don't consume anything.
		return 0
	}
	s.pos = i
	return r
}

// exponent returns the end of an exponent suffix starting at i using either
// marker, or i if there is no complete exponent there.
func (s *state) exponent(i int, lower, upper byte) int {
	if i >= len(s.src) || s.src[i] != lower && s.src[i] != upper {
		return i
	}
	j := i + 1
	if j < len(s.src) && (s.src[j] == '+' || s.src[j] == '-') {
		j++
	}
	k := s.digits(j, isDigit)
	if k == j {
		return i
	}
	return k
}

// isRange checks for strconv's out of range error. ParseFloat still returns
// ±Inf or the nearest denormal in that case, which is what we want.
func isRange(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}
