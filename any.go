package variant

import (
	"encoding"
	"encoding/json"
	"reflect"
	"strconv"

	"github.com/wippyai/variant/errors"
)

// FromAny converts a native Go value into a Variant.
//
// Accepted inputs are nil, bool, every sized and unsized integer and float
// type, string, []byte (as a string), json.Number, encoding.TextMarshaler
// (as its text), slices and arrays, maps keyed by strings, pointers to any
// of these, and Variant itself. int and uint map to int64 and uint64;
// float32 widens to double. Anything else fails with KindUnsupported.
func FromAny(x any) (Variant, error) {
	return fromAny(x, nil)
}

func fromAny(x any, path []string) (Variant, error) {
	if len(path) > MaxDepth {
		return Variant{}, errors.DepthExceeded(errors.PhaseConvert, path, MaxDepth)
	}

	switch t := x.(type) {
	case nil:
		return Variant{}, nil
	case Variant:
		return t.Clone(), nil
	case *Variant:
		if t == nil {
			return Variant{}, nil
		}
		return t.Clone(), nil
	case bool:
		return Bool(t), nil
	case int8:
		return Int8(t), nil
	case uint8:
		return Uint8(t), nil
	case int16:
		return Int16(t), nil
	case uint16:
		return Uint16(t), nil
	case int32:
		return Int32(t), nil
	case uint32:
		return Uint32(t), nil
	case int64:
		return Int64(t), nil
	case uint64:
		return Uint64(t), nil
	case int:
		return Int64(int64(t)), nil
	case uint:
		return Uint64(uint64(t)), nil
	case float32:
		return Double(float64(t)), nil
	case float64:
		return Double(t), nil
	case string:
		return String(t), nil
	case []byte:
		return Bytes(t), nil
	case json.Number:
		v, err := parseNumber(t.String())
		if err != nil {
			return Variant{}, errors.Wrap(errors.PhaseConvert, errors.KindParse, err, "json.Number "+t.String())
		}
		return v, nil
	case []any:
		seq := make(Sequence, len(t))
		for i, e := range t {
			v, err := fromAny(e, append(path, strconv.Itoa(i)))
			if err != nil {
				return Variant{}, err
			}
			seq[i] = v
		}
		return Seq(seq...), nil
	case map[string]any:
		m := make(Mapping, len(t))
		for k, e := range t {
			v, err := fromAny(e, append(path, k))
			if err != nil {
				return Variant{}, err
			}
			m[k] = v
		}
		return Map(m), nil
	case Sequence:
		return CopySequence(t), nil
	case Mapping:
		return CopyMapping(t), nil
	case encoding.TextMarshaler:
		text, err := t.MarshalText()
		if err != nil {
			return Variant{}, errors.New(errors.PhaseConvert, errors.KindUnsupported).
				Path(path...).Cause(err).Detail("MarshalText failed").Build()
		}
		return String(string(text)), nil
	}

	return fromReflect(reflect.ValueOf(x), path)
}

// fromReflect covers named types whose underlying kind is supported.
func fromReflect(rv reflect.Value, path []string) (Variant, error) {
	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int8:
		return Int8(int8(rv.Int())), nil
	case reflect.Int16:
		return Int16(int16(rv.Int())), nil
	case reflect.Int32:
		return Int32(int32(rv.Int())), nil
	case reflect.Int, reflect.Int64:
		return Int64(rv.Int()), nil
	case reflect.Uint8:
		return Uint8(uint8(rv.Uint())), nil
	case reflect.Uint16:
		return Uint16(uint16(rv.Uint())), nil
	case reflect.Uint32:
		return Uint32(uint32(rv.Uint())), nil
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		return Uint64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return Double(rv.Float()), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Variant{}, nil
		}
		return fromAny(rv.Elem().Interface(), path)
	case reflect.Slice:
		if rv.IsNil() {
			return Variant{}, nil
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return Bytes(rv.Bytes()), nil
		}
		fallthrough
	case reflect.Array:
		seq := make(Sequence, rv.Len())
		for i := range seq {
			v, err := fromAny(rv.Index(i).Interface(), append(path, strconv.Itoa(i)))
			if err != nil {
				return Variant{}, err
			}
			seq[i] = v
		}
		return Seq(seq...), nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Variant{}, errors.Unsupported(errors.PhaseConvert, path, "map key type "+rv.Type().Key().String())
		}
		if rv.IsNil() {
			return Variant{}, nil
		}
		m := make(Mapping, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := iter.Key().String()
			v, err := fromAny(iter.Value().Interface(), append(path, k))
			if err != nil {
				return Variant{}, err
			}
			m[k] = v
		}
		return Map(m), nil
	case reflect.Invalid:
		return Variant{}, nil
	default:
		return Variant{}, errors.Unsupported(errors.PhaseConvert, path, "Go type "+rv.Type().String())
	}
}

// Any converts v into plain Go values: nil, bool, the sized integer types,
// float64, string, []any and map[string]any. A char becomes int8.
func (v Variant) Any() any {
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
	case KindSequence:
		out := make([]any, len(v.seq))
		for i, e := range v.seq {
			out[i] = e.Any()
		}
		return out
	case KindMapping:
		out := make(map[string]any, len(v.m))
		for k, e := range v.m {
			out[k] = e.Any()
		}
		return out
	default:
		return nil
	}
}
