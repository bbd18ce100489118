package variant

import "github.com/wippyai/variant/internal/coerce"

// Equals reports exact structural equality: both variants must share the
// same kind at every level. Int32(5).Equals(Uint64(5)) is false; use Equal
// for numeric-aware comparison. The negation of Equals is the "not equal"
// notion, not the negation of Equal.
func (v Variant) Equals(o Variant) bool {
	if v.kind != o.kind {
		return false
	}

	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindChar, KindInt8, KindInt16, KindInt32, KindInt64:
		return v.i == o.i
	case KindUint8, KindUint16, KindUint32, KindUint64:
		return v.u == o.u
	case KindDouble:
		return v.f == o.f
	case KindString:
		return v.s == o.s
	case KindSequence:
		return sequencesEqual(v.seq, o.seq, Variant.Equals)
	case KindMapping:
		return mappingsEqual(v.m, o.m, Variant.Equals)
	default:
		return false
	}
}

// Equal reports structural equality where arithmetic kinds compare by
// mathematical value: Equal(Int32(5), Uint64(5)) is true. Bool only equals
// bool. Strings, sequences and mappings still require matching kinds and
// recurse with Equal.
func Equal(a, b Variant) bool {
	if a.kind.IsArithmetic() && b.kind.IsArithmetic() {
		return numbersEqual(a, b)
	}
	if a.kind != b.kind {
		return false
	}

	switch a.kind {
	case KindNull:
		return true
	case KindString:
		return a.s == b.s
	case KindSequence:
		return sequencesEqual(a.seq, b.seq, Equal)
	case KindMapping:
		return mappingsEqual(a.m, b.m, Equal)
	default:
		return false
	}
}

func numbersEqual(a, b Variant) bool {
	if a.kind == KindBool || b.kind == KindBool {
		return a.kind == b.kind && a.b == b.b
	}

	switch {
	case a.kind.IsSigned() && b.kind.IsSigned():
		return a.i == b.i
	case a.kind.IsUnsigned() && b.kind.IsUnsigned():
		return a.u == b.u
	case a.kind.IsSigned() && b.kind.IsUnsigned():
		return coerce.SignedUnsigned(a.i, b.u)
	case a.kind.IsUnsigned() && b.kind.IsSigned():
		return coerce.SignedUnsigned(b.i, a.u)
	case a.kind == KindDouble && b.kind == KindDouble:
		return a.f == b.f
	case a.kind == KindDouble:
		return floatEqualsInteger(a.f, b)
	default:
		return floatEqualsInteger(b.f, a)
	}
}

func floatEqualsInteger(f float64, n Variant) bool {
	if n.kind.IsSigned() {
		return coerce.FloatSigned(f, n.i)
	}
	return coerce.FloatUnsigned(f, n.u)
}

func sequencesEqual(a, b Sequence, eq func(Variant, Variant) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !eq(a[i], b[i]) {
			return false
		}
	}
	return true
}

// mappingsEqual looks every key of a up in b, so iteration order is irrelevant.
func mappingsEqual(a, b Mapping, eq func(Variant, Variant) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || !eq(av, bv) {
			return false
		}
	}
	return true
}
