package variant

import (
	"strconv"

	"github.com/wippyai/variant/errors"
)

// Builder is a Visitor that assembles a Variant from events. It keeps an
// explicit stack of open containers, so decoding never recurses.
//
// A scalar event is appended to the innermost open sequence, stored under
// the pending key of the innermost open mapping, or becomes the root when no
// container is open. A finished container is attached to its parent the
// same way. Repeated keys replace the earlier value.
type Builder struct {
	stack    []frame
	root     Variant
	maxDepth int
	phase    errors.Phase
	done     bool
}

type frame struct {
	val    Variant
	key    string
	hasKey bool
}

// NewBuilder creates a Builder that rejects nesting deeper than maxDepth.
// A non-positive maxDepth selects MaxDepth.
func NewBuilder(maxDepth int) *Builder {
	if maxDepth <= 0 {
		maxDepth = MaxDepth
	}
	return &Builder{maxDepth: maxDepth, phase: errors.PhaseDecode}
}

// Reset discards all state so the Builder can assemble another value.
func (b *Builder) Reset() {
	b.stack = b.stack[:0]
	b.root = Variant{}
	b.done = false
}

// Complete reports whether a whole top-level value has been assembled.
func (b *Builder) Complete() bool {
	return b.done && len(b.stack) == 0
}

// Depth returns the number of open containers.
func (b *Builder) Depth() int {
	return len(b.stack)
}

// ExpectsKey reports whether the next event must be a Key.
func (b *Builder) ExpectsKey() bool {
	if len(b.stack) == 0 {
		return false
	}
	top := &b.stack[len(b.stack)-1]
	return top.val.kind == KindMapping && !top.hasKey
}

// Result returns the assembled value.
func (b *Builder) Result() (Variant, error) {
	if !b.Complete() {
		return Variant{}, b.malformed("incomplete value: %d open containers", len(b.stack))
	}
	return b.root, nil
}

func (b *Builder) malformed(msg string, args ...any) error {
	return errors.New(b.phase, errors.KindParse).Path(b.path()...).Detail(msg, args...).Build()
}

func (b *Builder) path() []string {
	var path []string
	for i := range b.stack {
		f := &b.stack[i]
		switch f.val.kind {
		case KindMapping:
			if f.hasKey {
				path = append(path, f.key)
			}
		case KindSequence:
			path = append(path, strconv.Itoa(len(f.val.seq)))
		}
	}
	return path
}

// slot checks that a value may be placed at the current position.
func (b *Builder) slot() error {
	if len(b.stack) == 0 {
		if b.done {
			return b.malformed("more than one top-level value")
		}
		return nil
	}
	top := &b.stack[len(b.stack)-1]
	if top.val.kind == KindMapping && !top.hasKey {
		return b.malformed("mapping value without key")
	}
	return nil
}

func (b *Builder) put(v Variant) error {
	if err := b.slot(); err != nil {
		return err
	}
	if len(b.stack) == 0 {
		b.root = v
		b.done = true
		return nil
	}
	top := &b.stack[len(b.stack)-1]
	if top.val.kind == KindSequence {
		top.val.seq = append(top.val.seq, v)
		return nil
	}
	top.val.m[top.key] = v
	top.key, top.hasKey = "", false
	return nil
}

func (b *Builder) open(v Variant) error {
	if err := b.slot(); err != nil {
		return err
	}
	if len(b.stack) >= b.maxDepth {
		return errors.DepthExceeded(b.phase, b.path(), b.maxDepth)
	}
	b.stack = append(b.stack, frame{val: v})
	return nil
}

func (b *Builder) close(k Kind) error {
	if len(b.stack) == 0 {
		return b.malformed("unexpected end of %s", k)
	}
	top := b.stack[len(b.stack)-1]
	if top.val.kind != k {
		return b.malformed("unexpected end of %s inside %s", k, top.val.kind)
	}
	if top.hasKey {
		return b.malformed("key %q has no value", top.key)
	}
	b.stack = b.stack[:len(b.stack)-1]
	return b.put(top.val)
}

func (b *Builder) VisitNull() error { return b.put(Variant{}) }

func (b *Builder) VisitBool(v bool) error { return b.put(Bool(v)) }

func (b *Builder) VisitChar(v int8) error { return b.put(Char(v)) }

func (b *Builder) VisitInt8(v int8) error { return b.put(Int8(v)) }

func (b *Builder) VisitUint8(v uint8) error { return b.put(Uint8(v)) }

func (b *Builder) VisitInt16(v int16) error { return b.put(Int16(v)) }

func (b *Builder) VisitUint16(v uint16) error { return b.put(Uint16(v)) }

func (b *Builder) VisitInt32(v int32) error { return b.put(Int32(v)) }

func (b *Builder) VisitUint32(v uint32) error { return b.put(Uint32(v)) }

func (b *Builder) VisitInt64(v int64) error { return b.put(Int64(v)) }

func (b *Builder) VisitUint64(v uint64) error { return b.put(Uint64(v)) }

func (b *Builder) VisitDouble(v float64) error { return b.put(Double(v)) }

func (b *Builder) VisitString(v string) error { return b.put(String(v)) }

// maxPrealloc caps the capacity reserved from a length hint. Hints come from
// untrusted input.
const maxPrealloc = 1 << 10

func (b *Builder) BeginSequence(n int) error { return b.open(NewSequence(min(n, maxPrealloc))) }

func (b *Builder) EndSequence() error { return b.close(KindSequence) }

func (b *Builder) BeginMapping(n int) error { return b.open(NewMapping(min(n, maxPrealloc))) }

func (b *Builder) EndMapping() error { return b.close(KindMapping) }

func (b *Builder) Key(k string) error {
	if !b.ExpectsKey() {
		return b.malformed("unexpected key %q", k)
	}
	top := &b.stack[len(b.stack)-1]
	top.key, top.hasKey = k, true
	return nil
}
