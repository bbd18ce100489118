package transcoder

import (
	"bytes"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
	"go.uber.org/zap"

	"github.com/wippyai/variant"
	"github.com/wippyai/variant/errors"
)

// EncodeMsgpack writes v to w as a single MessagePack value.
func EncodeMsgpack(w io.Writer, v variant.Variant) error {
	mw := &msgpackWriter{enc: msgpack.NewEncoder(w)}
	if err := variant.Walk(v, mw); err != nil {
		Logger().Debug("msgpack encode failed", zap.Error(err))
		return err
	}
	return nil
}

// MarshalMsgpack returns the MessagePack encoding of v.
func MarshalMsgpack(v variant.Variant) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeMsgpack(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeMsgpack reads one MessagePack value from r. Data after the value is
// left unread.
func DecodeMsgpack(r io.Reader) (variant.Variant, error) {
	dec := msgpack.NewDecoder(r)
	v, err := decodeMsgpack(dec, variant.NewBuilder(variant.MaxDepth))
	if err != nil {
		Logger().Debug("msgpack decode failed", zap.Error(err))
		return variant.Variant{}, err
	}
	return v, nil
}

// UnmarshalMsgpack decodes data, which must hold exactly one value.
func UnmarshalMsgpack(data []byte) (variant.Variant, error) {
	r := bytes.NewReader(data)
	v, err := DecodeMsgpack(r)
	if err != nil {
		return variant.Variant{}, err
	}
	if r.Len() > 0 {
		return variant.Variant{}, errors.New(errors.PhaseDecode, errors.KindParse).
			Detail("%d trailing bytes after msgpack value", r.Len()).
			Build()
	}
	return v, nil
}

// open tracks a container whose elements are still being read.
type open struct {
	remaining int
	mapping   bool
	wantKey   bool
}

func decodeMsgpack(dec *msgpack.Decoder, b *variant.Builder) (variant.Variant, error) {
	var stack []open

	for {
		for len(stack) > 0 && stack[len(stack)-1].remaining == 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			var err error
			if top.mapping {
				err = b.EndMapping()
			} else {
				err = b.EndSequence()
			}
			if err != nil {
				return variant.Variant{}, err
			}
		}
		if b.Complete() {
			return b.Result()
		}

		if len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.wantKey {
				key, err := msgpackKey(dec)
				if err != nil {
					return variant.Variant{}, err
				}
				if err := b.Key(key); err != nil {
					return variant.Variant{}, err
				}
				top.wantKey = false
				continue
			}
			top.remaining--
			top.wantKey = top.mapping
		}

		c, err := dec.PeekCode()
		if err != nil {
			return variant.Variant{}, msgpackErr(err)
		}

		switch {
		case msgpcode.IsFixedArray(c) || c == msgpcode.Array16 || c == msgpcode.Array32:
			n, err := dec.DecodeArrayLen()
			if err != nil {
				return variant.Variant{}, msgpackErr(err)
			}
			if err := b.BeginSequence(n); err != nil {
				return variant.Variant{}, err
			}
			stack = append(stack, open{remaining: n})

		case msgpcode.IsFixedMap(c) || c == msgpcode.Map16 || c == msgpcode.Map32:
			n, err := dec.DecodeMapLen()
			if err != nil {
				return variant.Variant{}, msgpackErr(err)
			}
			if err := b.BeginMapping(n); err != nil {
				return variant.Variant{}, err
			}
			stack = append(stack, open{remaining: n, mapping: true, wantKey: n > 0})

		default:
			if err := msgpackScalar(dec, c, b); err != nil {
				return variant.Variant{}, err
			}
		}
	}
}

func msgpackScalar(dec *msgpack.Decoder, c byte, b *variant.Builder) error {
	var err error
	switch {
	case c == msgpcode.Nil:
		if err = dec.DecodeNil(); err == nil {
			return b.VisitNull()
		}
	case c == msgpcode.False || c == msgpcode.True:
		var v bool
		if v, err = dec.DecodeBool(); err == nil {
			return b.VisitBool(v)
		}
	case msgpcode.IsFixedNum(c):
		var v int64
		if v, err = dec.DecodeInt64(); err == nil {
			return b.VisitInt32(int32(v))
		}
	case c == msgpcode.Int8:
		var v int8
		if v, err = dec.DecodeInt8(); err == nil {
			return b.VisitInt8(v)
		}
	case c == msgpcode.Int16:
		var v int16
		if v, err = dec.DecodeInt16(); err == nil {
			return b.VisitInt16(v)
		}
	case c == msgpcode.Int32:
		var v int32
		if v, err = dec.DecodeInt32(); err == nil {
			return b.VisitInt32(v)
		}
	case c == msgpcode.Int64:
		var v int64
		if v, err = dec.DecodeInt64(); err == nil {
			return b.VisitInt64(v)
		}
	case c == msgpcode.Uint8:
		var v uint8
		if v, err = dec.DecodeUint8(); err == nil {
			return b.VisitUint8(v)
		}
	case c == msgpcode.Uint16:
		var v uint16
		if v, err = dec.DecodeUint16(); err == nil {
			return b.VisitUint16(v)
		}
	case c == msgpcode.Uint32:
		var v uint32
		if v, err = dec.DecodeUint32(); err == nil {
			return b.VisitUint32(v)
		}
	case c == msgpcode.Uint64:
		var v uint64
		if v, err = dec.DecodeUint64(); err == nil {
			return b.VisitUint64(v)
		}
	case c == msgpcode.Float || c == msgpcode.Double:
		var v float64
		if v, err = dec.DecodeFloat64(); err == nil {
			return b.VisitDouble(v)
		}
	case msgpcode.IsString(c):
		var v string
		if v, err = dec.DecodeString(); err == nil {
			return b.VisitString(v)
		}
	case msgpcode.IsBin(c):
		var v []byte
		if v, err = dec.DecodeBytes(); err == nil {
			return b.VisitString(string(v))
		}
	default:
		return errors.Unsupported(errors.PhaseDecode, nil, "msgpack code "+codeName(c))
	}
	return msgpackErr(err)
}

func msgpackKey(dec *msgpack.Decoder) (string, error) {
	c, err := dec.PeekCode()
	if err != nil {
		return "", msgpackErr(err)
	}
	if !msgpcode.IsString(c) && !msgpcode.IsBin(c) {
		return "", errors.Unsupported(errors.PhaseDecode, nil, "msgpack map key "+codeName(c))
	}
	if msgpcode.IsBin(c) {
		key, err := dec.DecodeBytes()
		if err != nil {
			return "", msgpackErr(err)
		}
		return string(key), nil
	}
	key, err := dec.DecodeString()
	if err != nil {
		return "", msgpackErr(err)
	}
	return key, nil
}

func msgpackErr(err error) error {
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return errors.Parse(errors.PhaseDecode, "msgpack", err)
}

func codeName(c byte) string {
	return fmt.Sprintf("0x%02x", c)
}

// msgpackWriter writes Walk events with fixed-width integer codes so every
// integer kind survives a round trip.
type msgpackWriter struct {
	enc *msgpack.Encoder
}

func (w *msgpackWriter) VisitNull() error { return w.enc.EncodeNil() }

func (w *msgpackWriter) VisitBool(v bool) error { return w.enc.EncodeBool(v) }

func (w *msgpackWriter) VisitChar(v int8) error { return w.enc.EncodeInt8(v) }

func (w *msgpackWriter) VisitInt8(v int8) error { return w.enc.EncodeInt8(v) }

func (w *msgpackWriter) VisitUint8(v uint8) error { return w.enc.EncodeUint8(v) }

func (w *msgpackWriter) VisitInt16(v int16) error { return w.enc.EncodeInt16(v) }

func (w *msgpackWriter) VisitUint16(v uint16) error { return w.enc.EncodeUint16(v) }

func (w *msgpackWriter) VisitInt32(v int32) error { return w.enc.EncodeInt32(v) }

func (w *msgpackWriter) VisitUint32(v uint32) error { return w.enc.EncodeUint32(v) }

func (w *msgpackWriter) VisitInt64(v int64) error { return w.enc.EncodeInt64(v) }

func (w *msgpackWriter) VisitUint64(v uint64) error { return w.enc.EncodeUint64(v) }

func (w *msgpackWriter) VisitDouble(v float64) error { return w.enc.EncodeFloat64(v) }

func (w *msgpackWriter) VisitString(v string) error { return w.enc.EncodeString(v) }

func (w *msgpackWriter) BeginSequence(n int) error { return w.enc.EncodeArrayLen(n) }

func (w *msgpackWriter) EndSequence() error { return nil }

func (w *msgpackWriter) BeginMapping(n int) error { return w.enc.EncodeMapLen(n) }

func (w *msgpackWriter) Key(k string) error { return w.enc.EncodeString(k) }

func (w *msgpackWriter) EndMapping() error { return nil }
