package variant

import (
	"bytes"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/go-json-experiment/json/jsontext"
	"go.uber.org/zap"

	"github.com/wippyai/variant/errors"
)

const prettyIndent = "    "

type jsonConfig struct {
	indent   string
	maxDepth int
}

// JSONOption configures JSON encoding and decoding.
type JSONOption func(*jsonConfig)

// WithIndent sets the indentation used by pretty encoding.
func WithIndent(indent string) JSONOption {
	return func(c *jsonConfig) {
		c.indent = indent
	}
}

// WithMaxDepth lowers the nesting limit accepted by the decoder.
// Values outside 1..MaxDepth select MaxDepth.
func WithMaxDepth(n int) JSONOption {
	return func(c *jsonConfig) {
		c.maxDepth = n
	}
}

func newJSONConfig(opts []JSONOption) jsonConfig {
	c := jsonConfig{indent: prettyIndent, maxDepth: MaxDepth}
	for _, opt := range opts {
		opt(&c)
	}
	if c.maxDepth <= 0 || c.maxDepth > MaxDepth {
		c.maxDepth = MaxDepth
	}
	return c
}

// FromJSON parses a JSON document.
func FromJSON(s string, opts ...JSONOption) (Variant, error) {
	return DecodeJSON(strings.NewReader(s), opts...)
}

// FromJSONBytes parses a JSON document held in b.
func FromJSONBytes(b []byte, opts ...JSONOption) (Variant, error) {
	return DecodeJSON(bytes.NewReader(b), opts...)
}

// MustFromJSON is like FromJSON but panics on malformed input. It is meant
// for literals in tests and initializers.
func MustFromJSON(s string) Variant {
	v, err := FromJSON(s)
	if err != nil {
		panic(err)
	}
	return v
}

// DecodeJSON reads exactly one JSON value from r. Anything but whitespace
// after the value is an error.
//
// Numbers take the narrowest of int32, uint32, int64 and uint64 that holds
// them exactly; numbers with a fraction or exponent, and integers beyond
// uint64, become double. Object keys that repeat replace earlier entries.
func DecodeJSON(r io.Reader, opts ...JSONOption) (Variant, error) {
	cfg := newJSONConfig(opts)
	dec := jsontext.NewDecoder(r, jsontext.AllowDuplicateNames(true))
	b := NewBuilder(cfg.maxDepth)

	v, err := decodeJSON(dec, b)
	if err != nil {
		Logger().Debug("json decode failed",
			zap.Int64("offset", dec.InputOffset()),
			zap.Error(err))
		return Variant{}, err
	}
	return v, nil
}

func decodeJSON(dec *jsontext.Decoder, b *Builder) (Variant, error) {
	for !b.Complete() {
		tok, err := dec.ReadToken()
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			if b.Depth() >= MaxDepth && tokenizerDepthLimit(err) {
				return Variant{}, errors.DepthExceeded(errors.PhaseDecode, b.path(), MaxDepth)
			}
			return Variant{}, errors.Parse(errors.PhaseDecode, "JSON", err)
		}
		if err := jsonToken(tok, b); err != nil {
			return Variant{}, err
		}
	}

	if _, err := dec.ReadToken(); err != io.EOF {
		e := errors.New(errors.PhaseDecode, errors.KindParse).
			Detail("trailing data after JSON value at offset %d", dec.InputOffset())
		if err != nil {
			e = e.Cause(err)
		}
		return Variant{}, e.Build()
	}
	return b.Result()
}

// tokenizerDepthLimit reports whether err is jsontext refusing to open a
// container past its own fixed nesting limit, which equals MaxDepth.
func tokenizerDepthLimit(err error) bool {
	var se *jsontext.SyntacticError
	return errors.As(err, &se) && se.Err != nil && se.Err.Error() == "exceeded max depth"
}

func jsonToken(tok jsontext.Token, b *Builder) error {
	switch tok.Kind() {
	case 'n':
		return b.VisitNull()
	case 'f', 't':
		return b.VisitBool(tok.Bool())
	case '"':
		if b.ExpectsKey() {
			return b.Key(tok.String())
		}
		return b.VisitString(tok.String())
	case '0':
		n, err := parseNumber(tok.String())
		if err != nil {
			return err
		}
		return visitScalar(n, b)
	case '{':
		return b.BeginMapping(-1)
	case '}':
		return b.EndMapping()
	case '[':
		return b.BeginSequence(-1)
	case ']':
		return b.EndSequence()
	default:
		return errors.New(errors.PhaseDecode, errors.KindParse).
			Detail("unexpected token %s", tok.Kind()).Build()
	}
}

// parseNumber maps JSON number text to the narrowest kind holding it.
func parseNumber(s string) (Variant, error) {
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			if i >= math.MinInt32 && i <= math.MaxInt32 {
				return Int32(int32(i)), nil
			}
			if i >= 0 && i <= math.MaxUint32 {
				return Uint32(uint32(i)), nil
			}
			return Int64(i), nil
		}
		if u, err := strconv.ParseUint(s, 10, 64); err == nil {
			return Uint64(u), nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return Variant{}, errors.Overflow(errors.PhaseDecode, s, KindDouble.String())
		}
		return Variant{}, errors.Parse(errors.PhaseDecode, "JSON number", err)
	}
	return Double(f), nil
}

// EncodeJSON writes v to w as JSON followed by a newline. With pretty set,
// nested values are indented four spaces per level unless WithIndent says
// otherwise. Mapping keys are written in sorted order.
func EncodeJSON(w io.Writer, v Variant, pretty bool, opts ...JSONOption) error {
	cfg := newJSONConfig(opts)
	var encOpts []jsontext.Options
	if pretty {
		encOpts = append(encOpts, jsontext.WithIndent(cfg.indent))
	}
	jw := &jsonWriter{enc: jsontext.NewEncoder(w, encOpts...)}
	if err := Walk(v, jw); err != nil {
		Logger().Debug("json encode failed", zap.Error(err))
		return err
	}
	return nil
}

// ToJSON renders v as compact JSON.
func (v Variant) ToJSON() (string, error) {
	return v.toJSON(false)
}

// ToPrettyJSON renders v as JSON indented four spaces per level.
func (v Variant) ToPrettyJSON() (string, error) {
	return v.toJSON(true)
}

func (v Variant) toJSON(pretty bool) (string, error) {
	buf := getBuf()
	defer putBuf(buf)
	if err := EncodeJSON(buf, v, pretty); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// MarshalJSON implements json.Marshaler.
func (v Variant) MarshalJSON() ([]byte, error) {
	buf := getBuf()
	defer putBuf(buf)
	if err := EncodeJSON(buf, v, false); err != nil {
		return nil, err
	}
	return bytes.Clone(bytes.TrimSuffix(buf.Bytes(), []byte{'\n'})), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Variant) UnmarshalJSON(data []byte) error {
	parsed, err := FromJSONBytes(data)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// jsonWriter streams Walk events into a jsontext encoder.
type jsonWriter struct {
	enc *jsontext.Encoder
}

func (w *jsonWriter) VisitNull() error { return w.enc.WriteToken(jsontext.Null) }

func (w *jsonWriter) VisitBool(v bool) error { return w.enc.WriteToken(jsontext.Bool(v)) }

func (w *jsonWriter) VisitChar(v int8) error { return w.enc.WriteToken(jsontext.Int(int64(v))) }

func (w *jsonWriter) VisitInt8(v int8) error { return w.enc.WriteToken(jsontext.Int(int64(v))) }

func (w *jsonWriter) VisitUint8(v uint8) error { return w.enc.WriteToken(jsontext.Uint(uint64(v))) }

func (w *jsonWriter) VisitInt16(v int16) error { return w.enc.WriteToken(jsontext.Int(int64(v))) }

func (w *jsonWriter) VisitUint16(v uint16) error {
	return w.enc.WriteToken(jsontext.Uint(uint64(v)))
}

func (w *jsonWriter) VisitInt32(v int32) error { return w.enc.WriteToken(jsontext.Int(int64(v))) }

func (w *jsonWriter) VisitUint32(v uint32) error {
	return w.enc.WriteToken(jsontext.Uint(uint64(v)))
}

func (w *jsonWriter) VisitInt64(v int64) error { return w.enc.WriteToken(jsontext.Int(v)) }

func (w *jsonWriter) VisitUint64(v uint64) error { return w.enc.WriteToken(jsontext.Uint(v)) }

func (w *jsonWriter) VisitDouble(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errors.New(errors.PhaseEncode, errors.KindUnsupported).
			Value(v).
			Detail("JSON has no representation for %v", v).
			Build()
	}
	return w.enc.WriteToken(jsontext.Float(v))
}

func (w *jsonWriter) VisitString(v string) error { return w.enc.WriteToken(jsontext.String(v)) }

func (w *jsonWriter) BeginSequence(int) error { return w.enc.WriteToken(jsontext.BeginArray) }

func (w *jsonWriter) EndSequence() error { return w.enc.WriteToken(jsontext.EndArray) }

func (w *jsonWriter) BeginMapping(int) error { return w.enc.WriteToken(jsontext.BeginObject) }

func (w *jsonWriter) Key(k string) error { return w.enc.WriteToken(jsontext.String(k)) }

func (w *jsonWriter) EndMapping() error { return w.enc.WriteToken(jsontext.EndObject) }
