package variant

import (
	"github.com/wippyai/variant/errors"
	"github.com/wippyai/variant/internal/coerce"
)

// integral converts any arithmetic variant to the integer type T, dispatching
// on the source kind so each conversion sees the true source width.
func integral[T coerce.Int](v Variant, target Kind) (T, error) {
	var (
		out T
		ok  bool
	)

	switch v.kind {
	case KindNull:
		return 0, errors.Empty(errors.PhaseAccess, target.String())
	case KindBool:
		return 0, errors.BadType(errors.PhaseCoerce, target.String(), v.kind.String())
	case KindChar, KindInt8:
		out, ok = coerce.Integer[T](int8(v.i))
	case KindUint8:
		out, ok = coerce.Integer[T](uint8(v.u))
	case KindInt16:
		out, ok = coerce.Integer[T](int16(v.i))
	case KindUint16:
		out, ok = coerce.Integer[T](uint16(v.u))
	case KindInt32:
		out, ok = coerce.Integer[T](int32(v.i))
	case KindUint32:
		out, ok = coerce.Integer[T](uint32(v.u))
	case KindInt64:
		out, ok = coerce.Integer[T](v.i)
	case KindUint64:
		out, ok = coerce.Integer[T](v.u)
	case KindDouble:
		out, ok = coerce.FromFloat[T](v.f)
	default:
		return 0, errors.BadType(errors.PhaseAccess, target.String(), v.kind.String())
	}

	if !ok {
		return 0, errors.Overflow(errors.PhaseCoerce, v.scalar(), target.String())
	}
	return out, nil
}

func floating(v Variant) (float64, error) {
	switch {
	case v.kind == KindNull:
		return 0, errors.Empty(errors.PhaseAccess, KindDouble.String())
	case v.kind == KindBool:
		return 0, errors.BadType(errors.PhaseCoerce, KindDouble.String(), v.kind.String())
	case v.kind == KindDouble:
		return v.f, nil
	case v.kind.IsSigned():
		return float64(v.i), nil
	case v.kind.IsUnsigned():
		return float64(v.u), nil
	default:
		return 0, errors.BadType(errors.PhaseAccess, KindDouble.String(), v.kind.String())
	}
}

func boolean(v Variant) (bool, error) {
	switch v.kind {
	case KindBool:
		return v.b, nil
	case KindNull:
		return false, errors.Empty(errors.PhaseAccess, KindBool.String())
	default:
		phase := errors.PhaseAccess
		if v.kind.IsArithmetic() {
			phase = errors.PhaseCoerce
		}
		return false, errors.BadType(phase, KindBool.String(), v.kind.String())
	}
}

// scalar returns the native payload of an arithmetic or string variant.
func (v Variant) scalar() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindChar, KindInt8:
		return int8(v.i)
	case KindUint8:
		return uint8(v.u)
	case KindInt16:
		return int16(v.i)
	case KindUint16:
		return uint16(v.u)
	case KindInt32:
		return int32(v.i)
	case KindUint32:
		return uint32(v.u)
	case KindInt64:
		return v.i
	case KindUint64:
		return v.u
	case KindDouble:
		return v.f
	case KindString:
		return v.s
	default:
		return nil
	}
}
