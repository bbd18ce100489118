package coerce

import (
	"math"
	"unsafe"

	"fortio.org/safecast"
)

type Signed interface {
	int8 | int16 | int32 | int64
}

type Unsigned interface {
	uint8 | uint16 | uint32 | uint64
}

type Int interface {
	Signed | Unsigned
}

// 2^63 as a float64; float64(math.MaxInt64) rounds up to the same value.
const twoPow63 = -float64(math.MinInt64)

func signed[T Int]() bool {
	var z T
	return ^z < 0
}

func width[T Int]() uintptr {
	var z T
	return unsafe.Sizeof(z)
}

// Integer converts between integral types. Widening within the same
// signedness and unsigned-into-strictly-wider-signed never fail; every other
// combination is range checked. A negative source never converts to an
// unsigned destination.
func Integer[T Int, U Int](v U) (T, bool) {
	dstSigned, srcSigned := signed[T](), signed[U]()
	dstWidth, srcWidth := width[T](), width[U]()

	switch {
	case dstSigned == srcSigned:
		if dstWidth >= srcWidth {
			return T(v), true
		}
	case dstSigned:
		if dstWidth > srcWidth {
			return T(v), true
		}
	default:
		if v < 0 {
			return 0, false
		}
		if dstWidth >= srcWidth {
			return T(v), true
		}
	}

	out, err := safecast.Conv[T](v)
	if err != nil {
		return 0, false
	}
	return out, true
}

// FromFloat accepts only integral doubles. The value is truncated through
// int64 and then narrowed with Integer, so doubles outside the int64 range
// fail even for uint64 destinations.
func FromFloat[T Int](f float64) (T, bool) {
	if !Integral(f) {
		return 0, false
	}
	if f < float64(math.MinInt64) || f >= twoPow63 {
		return 0, false
	}
	return Integer[T](int64(f))
}

// Integral reports whether f is finite with a zero fractional part.
func Integral(f float64) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	_, frac := math.Modf(f)
	return frac == 0
}

// SignedUnsigned compares a signed and an unsigned value mathematically.
func SignedUnsigned(i int64, u uint64) bool {
	if i < 0 {
		return false
	}
	return uint64(i) == u
}

// FloatSigned mirrors FromFloat: only integral doubles within int64 range
// can equal an integer.
func FloatSigned(f float64, i int64) bool {
	n, ok := FromFloat[int64](f)
	return ok && n == i
}

// FloatUnsigned mirrors FromFloat for unsigned operands.
func FloatUnsigned(f float64, u uint64) bool {
	n, ok := FromFloat[int64](f)
	return ok && SignedUnsigned(n, u)
}
