package transcoder

import (
	"bytes"
	"math"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"

	"github.com/wippyai/variant"
	"github.com/wippyai/variant/errors"
)

// FromTOML parses a TOML document into a mapping. Integers narrow like JSON
// numbers. Offset datetimes become RFC 3339 strings; local dates, times and
// datetimes keep their zone-less form.
func FromTOML(s string) (variant.Variant, error) {
	var doc map[string]any
	if _, err := toml.Decode(s, &doc); err != nil {
		Logger().Debug("toml decode failed", zap.Error(err))
		return variant.Variant{}, errors.Parse(errors.PhaseDecode, "TOML", err)
	}
	return tomlValue(doc, nil)
}

func tomlValue(x any, path []string) (variant.Variant, error) {
	switch t := x.(type) {
	case map[string]any:
		if len(path) >= variant.MaxDepth {
			return variant.Variant{}, errors.DepthExceeded(errors.PhaseDecode, path, variant.MaxDepth)
		}
		out := variant.NewMapping(len(t))
		for k, e := range t {
			v, err := tomlValue(e, append(path, k))
			if err != nil {
				return variant.Variant{}, err
			}
			if err := out.Put(k, v); err != nil {
				return variant.Variant{}, err
			}
		}
		return out, nil
	case []map[string]any:
		items := make([]any, len(t))
		for i := range t {
			items[i] = t[i]
		}
		return tomlValue(items, path)
	case []any:
		if len(path) >= variant.MaxDepth {
			return variant.Variant{}, errors.DepthExceeded(errors.PhaseDecode, path, variant.MaxDepth)
		}
		out := variant.NewSequence(len(t))
		for i, e := range t {
			v, err := tomlValue(e, append(path, strconv.Itoa(i)))
			if err != nil {
				return variant.Variant{}, err
			}
			if err := out.Append(v); err != nil {
				return variant.Variant{}, err
			}
		}
		return out, nil
	case int64:
		return narrowInt(t), nil
	case time.Time:
		return variant.String(tomlTime(t)), nil
	default:
		v, err := variant.FromAny(x)
		if err != nil {
			return variant.Variant{}, errors.New(errors.PhaseDecode, errors.KindUnsupported).
				Path(path...).Cause(err).Detail("TOML value %T", x).Build()
		}
		return v, nil
	}
}

// narrowInt picks the narrowest of int32, uint32 and int64 holding n.
func narrowInt(n int64) variant.Variant {
	switch {
	case n >= math.MinInt32 && n <= math.MaxInt32:
		return variant.Int32(int32(n))
	case n >= 0 && n <= math.MaxUint32:
		return variant.Uint32(uint32(n))
	default:
		return variant.Int64(n)
	}
}

// ToTOML renders a mapping as a TOML document. TOML has no null, and its
// integers are signed 64-bit, so nulls and uint64 values above MaxInt64 are
// rejected.
func ToTOML(v variant.Variant) (string, error) {
	if v.Kind() != variant.KindMapping {
		e := errors.BadType(errors.PhaseEncode, variant.KindMapping.String(), v.Kind().String())
		e.Detail = "TOML documents are tables"
		return "", e
	}
	if err := variant.Walk(v, tomlCheck{}); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(v.Any()); err != nil {
		Logger().Debug("toml encode failed", zap.Error(err))
		return "", errors.Wrap(errors.PhaseEncode, errors.KindUnsupported, err, "TOML encoder")
	}
	return buf.String(), nil
}

// tomlCheck rejects values TOML cannot hold before the encoder sees them.
type tomlCheck struct{}

func (tomlCheck) VisitNull() error {
	return errors.Unsupported(errors.PhaseEncode, nil, "TOML has no null")
}

func (tomlCheck) VisitBool(bool) error { return nil }

func (tomlCheck) VisitChar(int8) error { return nil }

func (tomlCheck) VisitInt8(int8) error { return nil }

func (tomlCheck) VisitUint8(uint8) error { return nil }

func (tomlCheck) VisitInt16(int16) error { return nil }

func (tomlCheck) VisitUint16(uint16) error { return nil }

func (tomlCheck) VisitInt32(int32) error { return nil }

func (tomlCheck) VisitUint32(uint32) error { return nil }

func (tomlCheck) VisitInt64(int64) error { return nil }

func (tomlCheck) VisitUint64(v uint64) error {
	if v > math.MaxInt64 {
		return errors.Overflow(errors.PhaseEncode, v, "TOML integer")
	}
	return nil
}

func (tomlCheck) VisitDouble(float64) error { return nil }

func (tomlCheck) VisitString(string) error { return nil }

func (tomlCheck) BeginSequence(int) error { return nil }

func (tomlCheck) EndSequence() error { return nil }

func (tomlCheck) BeginMapping(int) error { return nil }

func (tomlCheck) Key(string) error { return nil }

func (tomlCheck) EndMapping() error { return nil }

// Zone names the toml decoder gives local dates and times.
const (
	tomlLocalDatetime = "datetime-local"
	tomlLocalDate     = "date-local"
	tomlLocalTime     = "time-local"
)

func tomlTime(t time.Time) string {
	switch t.Location().String() {
	case tomlLocalDatetime:
		return t.Format("2006-01-02T15:04:05.999999999")
	case tomlLocalDate:
		return t.Format(time.DateOnly)
	case tomlLocalTime:
		return t.Format("15:04:05.999999999")
	default:
		return t.Format(time.RFC3339Nano)
	}
}
