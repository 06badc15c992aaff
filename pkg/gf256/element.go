// Package gf256 implements arithmetic over the finite field with 256
// elements, GF(2^8), the structure underlying Reed-Solomon codes,
// Shamir secret sharing and AES-style byte mixing.
//
// An element is a single byte interpreted as the coefficient vector of
// a polynomial of degree at most 7 over GF(2). Addition and subtraction
// are bitwise XOR; multiplication and division go through precomputed
// exponent/logarithm tables that are built once on first use and shared
// read-only afterwards. All operations are safe for concurrent use.
package gf256

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero is returned by Div when the divisor is zero. It is
// the only failure condition in the package; the undefined results of
// Log and Inv at zero are reported via their ok return instead.
var ErrDivisionByZero = errors.New("gf256: division by zero")

// Element is an element of GF(2^8). The zero value is the additive
// identity. Elements are immutable; every operation returns a new
// value, and two elements are equal iff their bytes are equal.
type Element struct {
	poly byte
}

// Zero returns the additive identity of the field.
func Zero() Element {
	return Element{}
}

// One returns the multiplicative identity of the field.
func One() Element {
	return Element{poly: 1}
}

// FromByte returns the element represented by b.
func FromByte(b byte) Element {
	return Element{poly: b}
}

// Byte returns the raw byte representation of e.
func (e Element) Byte() byte {
	return e.poly
}

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool {
	return e.poly == 0
}

func (e Element) String() string {
	return fmt.Sprintf("0x%02x", e.poly)
}

// Add returns e + rhs. The field has characteristic 2, so addition is
// bitwise XOR and every element is its own additive inverse.
func (e Element) Add(rhs Element) Element {
	return Element{poly: e.poly ^ rhs.poly}
}

// Sub returns e - rhs, which coincides with Add in characteristic 2.
func (e Element) Sub(rhs Element) Element {
	return Element{poly: e.poly ^ rhs.poly}
}

// Log returns the discrete logarithm of e in base x, i.e. the i in
// 0..254 such that x^i == e. Zero has no logarithm; ok is false and
// the returned exponent is meaningless in that case.
func (e Element) Log() (exp byte, ok bool) {
	if e.poly == 0 {
		return 0, false
	}
	return getTables().log[e.poly], true
}

// PowX returns x^power for the generator x. The full byte domain is
// accepted: power 255 yields the same value as power 0.
func PowX(power byte) Element {
	return Element{poly: getTables().exp[power]}
}

// Exp returns e^power. Zero raised to any power is zero, including
// power 0: the usual 0^0 = 1 convention is deliberately not applied,
// matching Mul's treatment of zero operands.
func (e Element) Exp(power byte) Element {
	l, ok := e.Log()
	if !ok {
		return Zero()
	}
	return PowX(byte(uint16(l) * uint16(power) % groupOrder))
}

// Mul returns e * rhs.
func (e Element) Mul(rhs Element) Element {
	l1, ok1 := e.Log()
	l2, ok2 := rhs.Log()
	if !ok1 || !ok2 {
		return Zero()
	}
	return PowX(byte((uint16(l1) + uint16(l2)) % groupOrder))
}

// Div returns e / rhs. A zero divisor fails with ErrDivisionByZero; a
// zero dividend over a nonzero divisor is simply zero.
func (e Element) Div(rhs Element) (Element, error) {
	l2, ok := rhs.Log()
	if !ok {
		return Element{}, ErrDivisionByZero
	}
	l1, ok := e.Log()
	if !ok {
		return Zero(), nil
	}
	return PowX(byte((uint16(l1) + groupOrder - uint16(l2)) % groupOrder)), nil
}

// Inv returns the multiplicative inverse of e, the unique y with
// e * y == One(). Zero has no inverse; ok is false in that case.
func (e Element) Inv() (inv Element, ok bool) {
	if e.poly == 0 {
		return Element{}, false
	}
	return Element{poly: getTables().inv[e.poly]}, true
}
