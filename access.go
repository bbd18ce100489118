package variant

import (
	"strconv"
	"strings"

	"github.com/wippyai/variant/errors"
)

// Exact accessors. Arithmetic accessors accept any arithmetic kind that
// coerces losslessly; bool only converts to and from bool.

func (v Variant) AsBool() (bool, error) { return boolean(v) }

func (v Variant) AsChar() (int8, error) { return integral[int8](v, KindChar) }

func (v Variant) AsInt8() (int8, error) { return integral[int8](v, KindInt8) }

func (v Variant) AsUint8() (uint8, error) { return integral[uint8](v, KindUint8) }

func (v Variant) AsInt16() (int16, error) { return integral[int16](v, KindInt16) }

func (v Variant) AsUint16() (uint16, error) { return integral[uint16](v, KindUint16) }

func (v Variant) AsInt32() (int32, error) { return integral[int32](v, KindInt32) }

func (v Variant) AsUint32() (uint32, error) { return integral[uint32](v, KindUint32) }

func (v Variant) AsInt64() (int64, error) { return integral[int64](v, KindInt64) }

func (v Variant) AsUint64() (uint64, error) { return integral[uint64](v, KindUint64) }

func (v Variant) AsDouble() (float64, error) { return floating(v) }

func (v Variant) AsString() (string, error) {
	if err := v.expect(KindString); err != nil {
		return "", err
	}
	return v.s, nil
}

// AsSequence returns the sequence payload. The slice is shared with v.
func (v Variant) AsSequence() (Sequence, error) {
	if err := v.expect(KindSequence); err != nil {
		return nil, err
	}
	return v.seq, nil
}

// AsMapping returns the mapping payload. The map is shared with v.
func (v Variant) AsMapping() (Mapping, error) {
	if err := v.expect(KindMapping); err != nil {
		return nil, err
	}
	return v.m, nil
}

func (v Variant) expect(k Kind) error {
	switch v.kind {
	case k:
		return nil
	case KindNull:
		return errors.Empty(errors.PhaseAccess, k.String())
	default:
		return errors.BadType(errors.PhaseAccess, k.String(), v.kind.String())
	}
}

// Defaulted accessors. A kind mismatch yields def. Arithmetic ones still
// fail on null and on overflow: a missing number is never silently replaced.

func (v Variant) BoolOr(def bool) (bool, error) {
	n, err := boolean(v)
	return orDefault(n, err, def)
}

func (v Variant) CharOr(def int8) (int8, error) {
	n, err := v.AsChar()
	return orDefault(n, err, def)
}

func (v Variant) Int8Or(def int8) (int8, error) {
	n, err := v.AsInt8()
	return orDefault(n, err, def)
}

func (v Variant) Uint8Or(def uint8) (uint8, error) {
	n, err := v.AsUint8()
	return orDefault(n, err, def)
}

func (v Variant) Int16Or(def int16) (int16, error) {
	n, err := v.AsInt16()
	return orDefault(n, err, def)
}

func (v Variant) Uint16Or(def uint16) (uint16, error) {
	n, err := v.AsUint16()
	return orDefault(n, err, def)
}

func (v Variant) Int32Or(def int32) (int32, error) {
	n, err := v.AsInt32()
	return orDefault(n, err, def)
}

func (v Variant) Uint32Or(def uint32) (uint32, error) {
	n, err := v.AsUint32()
	return orDefault(n, err, def)
}

func (v Variant) Int64Or(def int64) (int64, error) {
	n, err := v.AsInt64()
	return orDefault(n, err, def)
}

func (v Variant) Uint64Or(def uint64) (uint64, error) {
	n, err := v.AsUint64()
	return orDefault(n, err, def)
}

func (v Variant) DoubleOr(def float64) (float64, error) {
	n, err := v.AsDouble()
	return orDefault(n, err, def)
}

func orDefault[T any](val T, err error, def T) (T, error) {
	if err == nil {
		return val, nil
	}
	if e, ok := err.(*errors.Error); ok && e.Kind == errors.KindBadType {
		return def, nil
	}
	return val, err
}

func (v Variant) StringOr(def string) string {
	if v.kind != KindString {
		return def
	}
	return v.s
}

func (v Variant) SequenceOr(def Sequence) Sequence {
	if v.kind != KindSequence {
		return def
	}
	return v.seq
}

func (v Variant) MappingOr(def Mapping) Mapping {
	if v.kind != KindMapping {
		return def
	}
	return v.m
}

// ModifySequence returns a pointer to the sequence payload for in-place
// edits such as append or element replacement.
func (v *Variant) ModifySequence() (*Sequence, error) {
	if err := v.expect(KindSequence); err != nil {
		return nil, err
	}
	return &v.seq, nil
}

// ModifyMapping returns the mapping payload for in-place edits.
func (v *Variant) ModifyMapping() (Mapping, error) {
	if err := v.expect(KindMapping); err != nil {
		return nil, err
	}
	return v.m, nil
}

// Append adds items to the end of a sequence.
func (v *Variant) Append(items ...Variant) error {
	seq, err := v.ModifySequence()
	if err != nil {
		return err
	}
	*seq = append(*seq, items...)
	return nil
}

// Put stores val under key, replacing any previous value.
func (v *Variant) Put(key string, val Variant) error {
	m, err := v.ModifyMapping()
	if err != nil {
		return err
	}
	m[key] = val
	return nil
}

// Delete removes key from a mapping. Deleting a missing key is a no-op.
func (v *Variant) Delete(key string) error {
	m, err := v.ModifyMapping()
	if err != nil {
		return err
	}
	delete(m, key)
	return nil
}

// Index returns the i-th element of a sequence.
func (v Variant) Index(i int) (Variant, error) {
	if err := v.expect(KindSequence); err != nil {
		return Variant{}, err
	}
	if i < 0 || i >= len(v.seq) {
		return Variant{}, errors.OutOfBounds(errors.PhaseAccess, nil, i, len(v.seq))
	}
	return v.seq[i], nil
}

// Get returns the value stored under key. The bool is false when v is not
// a mapping or the key is absent.
func (v Variant) Get(key string) (Variant, bool) {
	if v.kind != KindMapping {
		return Variant{}, false
	}
	e, ok := v.m[key]
	return e, ok
}

// Lookup walks a dotted path such as "items.2.name". Sequence segments are
// decimal indexes; the empty path returns v itself.
func (v Variant) Lookup(path string) (Variant, error) {
	if path == "" {
		return v, nil
	}
	cur := v
	segs := strings.Split(path, ".")
	for n, seg := range segs {
		switch cur.kind {
		case KindMapping:
			next, ok := cur.m[seg]
			if !ok {
				return Variant{}, errors.New(errors.PhaseAccess, errors.KindOutOfBounds).
					Path(segs[:n+1]...).
					Detail("key %q not found", seg).
					Build()
			}
			cur = next
		case KindSequence:
			idx, err := strconv.Atoi(seg)
			if err != nil {
				return Variant{}, errors.New(errors.PhaseAccess, errors.KindOutOfBounds).
					Path(segs[:n+1]...).
					Detail("%q is not a sequence index", seg).
					Build()
			}
			if idx < 0 || idx >= len(cur.seq) {
				return Variant{}, errors.OutOfBounds(errors.PhaseAccess, segs[:n+1], idx, len(cur.seq))
			}
			cur = cur.seq[idx]
		default:
			return Variant{}, errors.New(errors.PhaseAccess, errors.KindBadType).
				Path(segs[:n]...).
				Target("sequence or mapping").
				Actual(cur.kind.String()).
				Build()
		}
	}
	return cur, nil
}
