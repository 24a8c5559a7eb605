package formula

import "math"

// Expression   -> Term { ('+' | '-') Term }
// Term         -> Factor { ('*' | '/' | '%') Factor }
// Factor       -> SignedNumber [ '^' Factor ]
// SignedNumber -> '-' SignedNumber | '+' SignedNumber | Number
// Number       -> constant | '(' Expression ')' | name
//               | name '(' Expression ')' | name '(' Expression ',' Expression ')'
//
// Each level computes its value as it parses. On error, a level records the
// error and carries on with whatever value it has, so every operand is
// always evaluated.

func (s *state) expression() float64 {
	r := s.term()
	for {
		s.skipSpace()
		switch s.peek() {
		case '+':
			s.pos++
			r += s.term()
		case '-':
			s.pos++
			r -= s.term()
		default:
			return r
		}
	}
}

func (s *state) term() float64 {
	r := s.factor()
	for {
		s.skipSpace()
		switch s.peek() {
		case '*':
			s.pos++
			r *= s.factor()
		case '/':
			s.pos++
			r /= s.factor()
		case '%':
			s.pos++
			m := s.factor()
			// Floored, so the result has the sign of m.
			r -= math.Floor(r/m) * m
		default:
			return r
		}
	}
}

func (s *state) factor() float64 {
	r := s.signed()
	s.skipSpace()
	if s.peek() == '^' {
		s.pos++
		// Right-associative: a^b^c is a^(b^c).
		return math.Pow(r, s.factor())
	}
	return r
}

func (s *state) signed() float64 {
	s.skipSpace()
	switch s.peek() {
	case '-':
		s.pos++
		return -s.signed()
	case '+':
		s.pos++
		return s.signed()
	}
	return s.number()
}

func (s *state) number() float64 {
	s.skipSpace()
	c := s.peek()
	if isDigit(c) || c == '.' {
		return s.constant()
	}
	if c == '(' {
		return s.parens()
	}
	if !isAlpha(c) {
		s.fail(Error{Kind: BadNumericalExpression}, 0)
		return 0
	}
	start := s.pos
	end := s.digits(start, isIdent)
	s.pos = end
	fn := globalfuncs[s.src[start:end]]
	switch arity(fn) {
	case 0:
		return fn.call(nil)
	case 1:
		return fn.call([]float64{s.parens()})
	case 2:
		x, y := s.parens2()
		return fn.call([]float64{x, y})
	}
	// Put the name back so that it is reported as the error and so that it
	// remains unconsumed.
	s.pos = start
	s.fail(Error{Kind: UnknownFunction}, end-start)
	return 0
}

// arity returns the arity of fn, or -1 if fn is nil.
func arity(fn function) int {
	if fn == nil {
		return -1
	}
	return fn.arity()
}

func (s *state) parens() float64 {
	s.expect('(')
	r := s.expression()
	s.expect(')')
	return r
}

func (s *state) parens2() (x, y float64) {
	s.expect('(')
	x = s.expression()
	s.expect(',')
	y = s.expression()
	s.expect(')')
	return x, y
}

// expect consumes c after any whitespace. If c is not there, it records an
// error and leaves the cursor in place.
func (s *state) expect(c byte) {
	s.skipSpace()
	if s.peek() != c {
		s.fail(Error{Kind: ExpectedChar, Expected: c}, 1)
		return
	}
	s.pos++
}
