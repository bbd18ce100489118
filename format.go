package variant

import (
	"strconv"
	"strings"
)

// String renders v for diagnostics: sequences as "[ a b ]" and mappings as
// "{ key: value; }" with sorted keys. Strings and chars are written raw.
// The output is not JSON.
func (v Variant) String() string {
	var b strings.Builder
	v.writeDebug(&b)
	return b.String()
}

func (v Variant) writeDebug(b *strings.Builder) {
	switch v.kind {
	case KindNull:
		b.WriteString("null")
	case KindBool:
		b.WriteString(strconv.FormatBool(v.b))
	case KindChar:
		b.WriteByte(byte(v.i))
	case KindInt8, KindInt16, KindInt32, KindInt64:
		b.WriteString(strconv.FormatInt(v.i, 10))
	case KindUint8, KindUint16, KindUint32, KindUint64:
		b.WriteString(strconv.FormatUint(v.u, 10))
	case KindDouble:
		b.WriteString(strconv.FormatFloat(v.f, 'g', -1, 64))
	case KindString:
		b.WriteString(v.s)
	case KindSequence:
		b.WriteString("[ ")
		for _, e := range v.seq {
			e.writeDebug(b)
			b.WriteByte(' ')
		}
		b.WriteByte(']')
	case KindMapping:
		b.WriteString("{ ")
		for _, k := range sortedKeys(v.m) {
			b.WriteString(k)
			b.WriteString(": ")
			v.m[k].writeDebug(b)
			b.WriteString("; ")
		}
		b.WriteByte('}')
	}
}
