// Package formula evaluates arithmetic expressions given as text.
//
// The syntax is the usual infix arithmetic: + - * / and % (floored modulo,
// so the result takes the sign of the divisor), ^ for exponentiation, unary
// + and -, parentheses, decimal and 0x hex literals, the constants pi and e,
// and a fixed set of functions like sqrt(x) and pow(x, y). "2^3^2" is the
// same as "2^(3^2)". Note that unary minus binds tighter than ^, so "-2^2"
// is "(-2)^2", which is 4.
//
// There is no separate parse step. Each call scans the string once and
// computes the value as it goes. Errors carry byte offsets back into the
// input so that a caller can point at the offending text. Evaluation never
// stops early: every call produces a value, and the returned error is the
// first problem found, if any. The value is meaningless when there is an
// error.
//
// Nesting depth is not limited, so the recursion depth of one call grows
// with the number of nested parentheses and chained operators in the input.
//
package formula
