package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Phase indicates which operation raised the error
type Phase string

const (
	PhaseAccess  Phase = "access"  // typed accessors
	PhaseCoerce  Phase = "coerce"  // numeric conversion
	PhaseDecode  Phase = "decode"  // text/binary to Variant
	PhaseEncode  Phase = "encode"  // Variant to text/binary
	PhaseConvert Phase = "convert" // native Go values to and from Variant
)

// Kind categorizes the error
type Kind string

const (
	KindEmpty       Kind = "empty"
	KindBadType     Kind = "bad_type"
	KindOverflow    Kind = "overflow"
	KindParse       Kind = "parse"
	KindUnsupported Kind = "unsupported"
	KindDepth       Kind = "depth"
	KindOutOfBounds Kind = "out_of_bounds"
)

// Sentinels match any error of the same Kind, whatever its phase.
var (
	ErrEmpty       = &Error{Kind: KindEmpty}
	ErrBadType     = &Error{Kind: KindBadType}
	ErrOverflow    = &Error{Kind: KindOverflow}
	ErrParse       = &Error{Kind: KindParse}
	ErrUnsupported = &Error{Kind: KindUnsupported}
	ErrDepth       = &Error{Kind: KindDepth}
	ErrOutOfBounds = &Error{Kind: KindOutOfBounds}
)

// Error is the structured error type returned by every variant operation
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Target string // requested type name
	Actual string // active kind name
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	if e.Phase != "" {
		b.WriteByte('[')
		b.WriteString(string(e.Phase))
		b.WriteString("] ")
	}
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Target != "" || e.Actual != "" {
		b.WriteString(": ")
		if e.Target != "" && e.Actual != "" {
			b.WriteString("want ")
			b.WriteString(e.Target)
			b.WriteString(", have ")
			b.WriteString(e.Actual)
		} else if e.Target != "" {
			b.WriteString("want ")
			b.WriteString(e.Target)
		} else {
			b.WriteString("have ")
			b.WriteString(e.Actual)
		}
	}

	if e.Detail != "" {
		if e.Target != "" || e.Actual != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. A target without a phase
// matches on kind alone.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Phase == "" {
		return e.Kind == t.Kind
	}
	return e.Phase == t.Phase && e.Kind == t.Kind
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the location inside the variant tree
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Target sets the requested type name
func (b *Builder) Target(t string) *Builder {
	b.err.Target = t
	return b
}

// Actual sets the active kind name
func (b *Builder) Actual(t string) *Builder {
	b.err.Actual = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Empty creates the error for a typed query on a null variant
func Empty(phase Phase, target string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindEmpty,
		Target: target,
		Actual: "null",
	}
}

// BadType creates a kind mismatch error
func BadType(phase Phase, target, actual string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindBadType,
		Target: target,
		Actual: actual,
	}
}

// Overflow creates an integral overflow error
func Overflow(phase Phase, value any, target string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOverflow,
		Target: target,
		Detail: fmt.Sprintf("value %v overflows %s", value, target),
		Value:  value,
	}
}

// Parse wraps a tokenizer failure
func Parse(phase Phase, format string, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindParse,
		Detail: fmt.Sprintf("malformed %s", format),
		Cause:  cause,
	}
}

// Unsupported creates an error for a value with no variant counterpart
func Unsupported(phase Phase, path []string, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Path:   path,
		Detail: what,
	}
}

// MaxDepthPath is the number of trailing path segments a depth error keeps.
const MaxDepthPath = 16

// DepthExceeded creates a nesting limit error. Only the last MaxDepthPath
// segments of path are kept.
func DepthExceeded(phase Phase, path []string, limit int) *Error {
	detail := fmt.Sprintf("nesting exceeds %d levels", limit)
	if n := len(path); n > MaxDepthPath {
		detail += fmt.Sprintf(", path shows last %d of %d segments", MaxDepthPath, n)
		path = path[n-MaxDepthPath:]
	}
	return &Error{
		Phase:  phase,
		Kind:   KindDepth,
		Path:   append([]string(nil), path...),
		Detail: detail,
		Value:  limit,
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, path []string, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Path:   path,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
		Value:  index,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}
