package variant

import (
	"slices"
	"strconv"

	"github.com/wippyai/variant/errors"
)

// MaxDepth bounds the nesting of sequences and mappings accepted by Walk and
// by the decoders.
const MaxDepth = 10000

// Visitor receives a variant tree as a stream of events.
//
// Leaf values arrive through the Visit* methods. A sequence is delimited by
// BeginSequence and EndSequence with one value event per element in between.
// A mapping is delimited by BeginMapping and EndMapping; each entry is a Key
// call followed by the events of its value. Containers nest, so an
// implementation tracks the open containers and the pending key itself.
//
// The length hint passed to BeginSequence and BeginMapping is the element
// count when known and -1 otherwise.
type Visitor interface {
	VisitNull() error
	VisitBool(bool) error
	VisitChar(int8) error
	VisitInt8(int8) error
	VisitUint8(uint8) error
	VisitInt16(int16) error
	VisitUint16(uint16) error
	VisitInt32(int32) error
	VisitUint32(uint32) error
	VisitInt64(int64) error
	VisitUint64(uint64) error
	VisitDouble(float64) error
	VisitString(string) error

	BeginSequence(n int) error
	EndSequence() error

	BeginMapping(n int) error
	Key(string) error
	EndMapping() error
}

// Walk traverses v depth first and reports it to visitor. Sequence elements
// are visited in order and mapping entries in sorted key order. The first
// error returned by visitor stops the walk.
func Walk(v Variant, visitor Visitor) error {
	return walk(v, visitor, nil)
}

func walk(v Variant, visitor Visitor, path []string) error {
	switch v.kind {
	case KindSequence:
		if len(path) >= MaxDepth {
			return errors.DepthExceeded(errors.PhaseEncode, path, MaxDepth)
		}
		if err := visitor.BeginSequence(len(v.seq)); err != nil {
			return err
		}
		for i, e := range v.seq {
			if err := walk(e, visitor, append(path, strconv.Itoa(i))); err != nil {
				return err
			}
		}
		return visitor.EndSequence()

	case KindMapping:
		if len(path) >= MaxDepth {
			return errors.DepthExceeded(errors.PhaseEncode, path, MaxDepth)
		}
		if err := visitor.BeginMapping(len(v.m)); err != nil {
			return err
		}
		for _, k := range sortedKeys(v.m) {
			if err := visitor.Key(k); err != nil {
				return err
			}
			if err := walk(v.m[k], visitor, append(path, k)); err != nil {
				return err
			}
		}
		return visitor.EndMapping()

	default:
		return withPath(visitScalar(v, visitor), path)
	}
}

// withPath attaches the position of a failing leaf to errors raised without one.
func withPath(err error, path []string) error {
	if e, ok := err.(*errors.Error); ok && e.Path == nil && len(path) > 0 {
		e.Path = slices.Clone(path)
	}
	return err
}

func visitScalar(v Variant, visitor Visitor) error {
	switch v.kind {
	case KindNull:
		return visitor.VisitNull()
	case KindBool:
		return visitor.VisitBool(v.b)
	case KindChar:
		return visitor.VisitChar(int8(v.i))
	case KindInt8:
		return visitor.VisitInt8(int8(v.i))
	case KindUint8:
		return visitor.VisitUint8(uint8(v.u))
	case KindInt16:
		return visitor.VisitInt16(int16(v.i))
	case KindUint16:
		return visitor.VisitUint16(uint16(v.u))
	case KindInt32:
		return visitor.VisitInt32(int32(v.i))
	case KindUint32:
		return visitor.VisitUint32(uint32(v.u))
	case KindInt64:
		return visitor.VisitInt64(v.i)
	case KindUint64:
		return visitor.VisitUint64(v.u)
	case KindDouble:
		return visitor.VisitDouble(v.f)
	case KindString:
		return visitor.VisitString(v.s)
	default:
		return errors.Unsupported(errors.PhaseEncode, nil, "kind "+v.kind.String())
	}
}
