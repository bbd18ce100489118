package variant

import (
	"reflect"
	"sort"
)

// Sequence is an ordered list of variants.
type Sequence = []Variant

// Mapping is a set of uniquely keyed variants.
type Mapping = map[string]Variant

// Variant holds exactly one value of one Kind. The zero Variant is null.
//
// Scalars live inline. Strings are immutable, sequences and mappings are
// reference types: plain assignment shares the container, Clone produces an
// independent deep copy and Take moves the value out leaving null behind.
type Variant struct {
	seq  Sequence
	m    Mapping
	s    string
	i    int64   // char and signed integers
	u    uint64  // unsigned integers
	f    float64 // double
	b    bool
	kind Kind
}

// Null creates a null variant.
func Null() Variant {
	return Variant{}
}

func Bool(v bool) Variant {
	return Variant{kind: KindBool, b: v}
}

// Char creates a char variant. Char shares int8's range but is a distinct kind.
func Char(v int8) Variant {
	return Variant{kind: KindChar, i: int64(v)}
}

func Int8(v int8) Variant {
	return Variant{kind: KindInt8, i: int64(v)}
}

func Uint8(v uint8) Variant {
	return Variant{kind: KindUint8, u: uint64(v)}
}

func Int16(v int16) Variant {
	return Variant{kind: KindInt16, i: int64(v)}
}

func Uint16(v uint16) Variant {
	return Variant{kind: KindUint16, u: uint64(v)}
}

func Int32(v int32) Variant {
	return Variant{kind: KindInt32, i: int64(v)}
}

func Uint32(v uint32) Variant {
	return Variant{kind: KindUint32, u: uint64(v)}
}

func Int64(v int64) Variant {
	return Variant{kind: KindInt64, i: v}
}

func Uint64(v uint64) Variant {
	return Variant{kind: KindUint64, u: v}
}

func Double(v float64) Variant {
	return Variant{kind: KindDouble, f: v}
}

func String(v string) Variant {
	return Variant{kind: KindString, s: v}
}

// Bytes creates a string variant from a copy of b.
func Bytes(b []byte) Variant {
	return Variant{kind: KindString, s: string(b)}
}

// Seq creates a sequence variant that adopts items without copying.
func Seq(items ...Variant) Variant {
	if items == nil {
		items = Sequence{}
	}
	return Variant{kind: KindSequence, seq: items}
}

// CopySequence creates a sequence variant holding a deep copy of items.
func CopySequence(items Sequence) Variant {
	return Variant{kind: KindSequence, seq: cloneSequence(items)}
}

// Map creates a mapping variant that adopts m without copying.
func Map(m Mapping) Variant {
	if m == nil {
		m = Mapping{}
	}
	return Variant{kind: KindMapping, m: m}
}

// CopyMapping creates a mapping variant holding a deep copy of m.
func CopyMapping(m Mapping) Variant {
	return Variant{kind: KindMapping, m: cloneMapping(m)}
}

// NewSequence creates an empty sequence with room for n elements.
func NewSequence(n int) Variant {
	return Variant{kind: KindSequence, seq: make(Sequence, 0, max(n, 0))}
}

// NewMapping creates an empty mapping with room for n entries.
func NewMapping(n int) Variant {
	return Variant{kind: KindMapping, m: make(Mapping, max(n, 0))}
}

// Kind returns the active kind.
func (v Variant) Kind() Kind {
	return v.kind
}

// TypeInfo returns the Go type of the active payload, nil for null.
func (v Variant) TypeInfo() reflect.Type {
	if int(v.kind) < len(payloadTypes) {
		return payloadTypes[v.kind]
	}
	return nil
}

func (v Variant) IsNull() bool {
	return v.kind == KindNull
}

func (v Variant) IsArithmetic() bool {
	return v.kind.IsArithmetic()
}

// Clone returns a deep copy. Mutating the copy's containers never affects v.
func (v Variant) Clone() Variant {
	switch v.kind {
	case KindSequence:
		v.seq = cloneSequence(v.seq)
	case KindMapping:
		v.m = cloneMapping(v.m)
	}
	return v
}

// Take moves the value out of v and resets v to null.
func (v *Variant) Take() Variant {
	out := *v
	*v = Variant{}
	return out
}

// Set replaces v entirely with o. The previous payload is dropped.
func (v *Variant) Set(o Variant) {
	*v = o
}

func cloneSequence(s Sequence) Sequence {
	out := make(Sequence, len(s))
	for i := range s {
		out[i] = s[i].Clone()
	}
	return out
}

func cloneMapping(m Mapping) Mapping {
	out := make(Mapping, len(m))
	for k, e := range m {
		out[k] = e.Clone()
	}
	return out
}

// Len returns the element count of a sequence or mapping, the byte length
// of a string and zero otherwise.
func (v Variant) Len() int {
	switch v.kind {
	case KindString:
		return len(v.s)
	case KindSequence:
		return len(v.seq)
	case KindMapping:
		return len(v.m)
	default:
		return 0
	}
}

// Keys returns the mapping keys in sorted order, nil for other kinds.
func (v Variant) Keys() []string {
	if v.kind != KindMapping {
		return nil
	}
	return sortedKeys(v.m)
}

func sortedKeys(m Mapping) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
