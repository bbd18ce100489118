package variant

import "reflect"

// Kind is the discriminant of a Variant.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindChar
	KindInt8
	KindUint8
	KindInt16
	KindUint16
	KindInt32
	KindUint32
	KindInt64
	KindUint64
	KindDouble
	KindString
	KindSequence
	KindMapping
)

var kindNames = [...]string{
	KindNull:     "null",
	KindBool:     "bool",
	KindChar:     "char",
	KindInt8:     "int8",
	KindUint8:    "uint8",
	KindInt16:    "int16",
	KindUint16:   "uint16",
	KindInt32:    "int32",
	KindUint32:   "uint32",
	KindInt64:    "int64",
	KindUint64:   "uint64",
	KindDouble:   "double",
	KindString:   "string",
	KindSequence: "sequence",
	KindMapping:  "mapping",
}

var payloadTypes = [...]reflect.Type{
	KindBool:     reflect.TypeFor[bool](),
	KindChar:     reflect.TypeFor[int8](),
	KindInt8:     reflect.TypeFor[int8](),
	KindUint8:    reflect.TypeFor[uint8](),
	KindInt16:    reflect.TypeFor[int16](),
	KindUint16:   reflect.TypeFor[uint16](),
	KindInt32:    reflect.TypeFor[int32](),
	KindUint32:   reflect.TypeFor[uint32](),
	KindInt64:    reflect.TypeFor[int64](),
	KindUint64:   reflect.TypeFor[uint64](),
	KindDouble:   reflect.TypeFor[float64](),
	KindString:   reflect.TypeFor[string](),
	KindSequence: reflect.TypeFor[Sequence](),
	KindMapping:  reflect.TypeFor[Mapping](),
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsArithmetic reports whether k is bool, char, an integer or double.
func (k Kind) IsArithmetic() bool {
	return k >= KindBool && k <= KindDouble
}

// IsSigned reports whether k is char or a signed integer kind.
func (k Kind) IsSigned() bool {
	switch k {
	case KindChar, KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
	return false
}

// IsUnsigned reports whether k is an unsigned integer kind.
func (k Kind) IsUnsigned() bool {
	switch k {
	case KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
	return false
}

func (k Kind) IsContainer() bool {
	return k == KindSequence || k == KindMapping
}

// ParseKind resolves a kind by name.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return KindNull, false
}
