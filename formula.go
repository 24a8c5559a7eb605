package formula

import "math"

// begin evaluates src as far as it can be parsed.
func begin(src string) (*state, float64) {
	s := &state{src: src}
	if src == "" {
		s.fail(Error{Kind: EmptyExpression}, 0)
	}
	return s, s.expression()
}

// end checks that all input was consumed and returns the first error.
func (s *state) end() error {
	if s.pos < len(s.src) {
		s.fail(Error{Kind: TrailingGarbage}, len(s.src)-s.pos)
	}
	if s.err == nil {
		return nil
	}
	return s.err
}

func (s *state) outOfRange(typ string) {
	s.fail(Error{Kind: OutOfRange, Type: typ}, 0)
}

// EvalFloat64 evaluates an expression. If the expression is invalid, the
// result is still a number, but it is meaningless, and the error is an
// *Error describing the first problem in the input.
func EvalFloat64(src string) (float64, error) {
	s, r := begin(src)
	return r, s.end()
}

// EvalFloat32 evaluates an expression and converts it to float32. It is an
// error if the result is finite in float64 but not in float32, or if it is
// infinite. NaN is allowed.
func EvalFloat32(src string) (float32, error) {
	s, r := begin(src)
	if r < -math.MaxFloat32 || r > math.MaxFloat32 {
		s.outOfRange("float")
	}
	return float32(r), s.end()
}

// EvalInt32 evaluates an expression and converts it to int32 by truncation.
// It is an error if the result is NaN or outside the range of int32, in which
// case the value saturates; NaN becomes 0.
func EvalInt32(src string) (int32, error) {
	s, r := begin(src)
	var v int32
	switch {
	case math.IsNaN(r):
		s.outOfRange("int32")
	case r < math.MinInt32:
		s.outOfRange("int32")
		v = math.MinInt32
	case r > math.MaxInt32:
		s.outOfRange("int32")
		v = math.MaxInt32
	default:
		v = int32(r)
	}
	return v, s.end()
}

// EvalUint32 evaluates an expression and converts it to uint32 by
// truncation. It is an error if the result is NaN, negative, or greater than
// the maximum uint32, in which case the value saturates; NaN becomes 0.
func EvalUint32(src string) (uint32, error) {
	s, r := begin(src)
	var v uint32
	switch {
	case math.IsNaN(r):
		s.outOfRange("uint32")
	case r < 0:
		s.outOfRange("uint32")
	case r > math.MaxUint32:
		s.outOfRange("uint32")
		v = math.MaxUint32
	default:
		v = uint32(r)
	}
	return v, s.end()
}
