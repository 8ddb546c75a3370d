// Package fixed implements the 24-bit Q16.8 fixed-point scalar used by the
// demos, plus a small three-component vector that doubles as a colour.
//
// Values are kept in the low 24 bits of an int32. Every constructor and
// arithmetic operation wraps its result back into 24 bits; overflow is never
// reported.
package fixed

import "strconv"

const (
	// FracBits is the number of fractional bits.
	FracBits = 8
	// Scale is the raw value of 1.0.
	Scale = 1 << FracBits

	width = 24
)

const (
	MaxF24 F24 = 1<<(width-1) - 1
	MinF24 F24 = -1 << (width - 1)
)

// F24 is a signed Q16.8 fixed-point number (resolution 1/256).
type F24 int32

func wrap(v int64) F24 {
	return F24(int32(uint32(v)<<(32-width)) >> (32 - width))
}

// FromRaw wraps an already-scaled value into 24 bits.
func FromRaw(v int32) F24 { return wrap(int64(v)) }

// FromInt returns n as a fixed-point value (n << 8).
func FromInt(n int) F24 { return wrap(int64(n) << FracBits) }

// FromFloat64 returns f*256 truncated toward zero.
func FromFloat64(f float64) F24 { return wrap(int64(f * Scale)) }

// FromFloat32 returns f*256 truncated toward zero.
func FromFloat32(f float32) F24 { return wrap(int64(f * Scale)) }

// Raw returns the scaled integer representation.
func (f F24) Raw() int32 { return int32(f) }

// ToInt drops the fractional bits with an arithmetic shift. Negative values
// round toward negative infinity: FromFloat64(-0.5).ToInt() == -1.
func (f F24) ToInt() int { return int(f) >> FracBits }

func (f F24) ToFloat64() float64 { return float64(f) / Scale }

func (f F24) ToFloat32() float32 { return float32(f) / Scale }

func (f F24) Add(o F24) F24 { return wrap(int64(f) + int64(o)) }
func (f F24) Sub(o F24) F24 { return wrap(int64(f) - int64(o)) }
func (f F24) Neg() F24      { return wrap(-int64(f)) }

// Mul multiplies and rescales: (f*o)>>8.
func (f F24) Mul(o F24) F24 { return wrap((int64(f) * int64(o)) >> FracBits) }

// Div divides and rescales: (f<<8)/o. Division by zero yields 0.
func (f F24) Div(o F24) F24 {
	if o == 0 {
		return 0
	}
	return wrap((int64(f) << FracBits) / int64(o))
}

// RawMul multiplies the scaled representations without shifting back, so the
// result is 256 times too large. It reproduces the legacy demo output.
func (f F24) RawMul(o F24) F24 { return wrap(int64(f) * int64(o)) }

// RawDiv divides the scaled representations without shifting, so the scale is
// lost (FromInt(3).RawDiv(FromInt(2)) has raw value 1). Division by zero
// yields 0.
func (f F24) RawDiv(o F24) F24 {
	if o == 0 {
		return 0
	}
	return wrap(int64(f) / int64(o))
}

func (f F24) String() string {
	return strconv.FormatFloat(f.ToFloat64(), 'f', -1, 64)
}

// Arith selects how multiplication and division treat the scale factor.
type Arith uint8

const (
	// Scaled rescales products and quotients (conventional fixed point).
	Scaled Arith = iota
	// Unscaled operates on the raw representations (legacy behaviour).
	Unscaled
)

func (a Arith) Mul(x, y F24) F24 {
	if a == Unscaled {
		return x.RawMul(y)
	}
	return x.Mul(y)
}

func (a Arith) Div(x, y F24) F24 {
	if a == Unscaled {
		return x.RawDiv(y)
	}
	return x.Div(y)
}

func (a Arith) String() string {
	switch a {
	case Scaled:
		return "scaled"
	case Unscaled:
		return "unscaled"
	default:
		return "arith(" + strconv.Itoa(int(a)) + ")"
	}
}
