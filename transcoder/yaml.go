package transcoder

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/wippyai/variant"
	"github.com/wippyai/variant/errors"
)

const (
	tagNull   = "!!null"
	tagBool   = "!!bool"
	tagInt    = "!!int"
	tagFloat  = "!!float"
	tagStr    = "!!str"
	tagBinary = "!!binary"
)

// FromYAML parses the first document of a YAML stream. An empty stream is
// null. Aliases are expanded in place; mapping keys must be scalars.
func FromYAML(s string) (variant.Variant, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(s), &doc); err != nil {
		Logger().Debug("yaml decode failed", zap.Error(err))
		return variant.Variant{}, errors.Parse(errors.PhaseDecode, "YAML", err)
	}
	return yamlValue(&doc, nil)
}

func yamlValue(n *yaml.Node, path []string) (variant.Variant, error) {
	if len(path) > variant.MaxDepth {
		return variant.Variant{}, errors.DepthExceeded(errors.PhaseDecode, path, variant.MaxDepth)
	}

	switch n.Kind {
	case 0:
		return variant.Null(), nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return variant.Null(), nil
		}
		return yamlValue(n.Content[0], path)
	case yaml.AliasNode:
		return yamlValue(n.Alias, append(path, "*"+n.Value))
	case yaml.ScalarNode:
		return yamlScalar(n, path)
	case yaml.SequenceNode:
		out := variant.NewSequence(len(n.Content))
		for i, c := range n.Content {
			v, err := yamlValue(c, append(path, strconv.Itoa(i)))
			if err != nil {
				return variant.Variant{}, err
			}
			if err := out.Append(v); err != nil {
				return variant.Variant{}, err
			}
		}
		return out, nil
	case yaml.MappingNode:
		out := variant.NewMapping(len(n.Content) / 2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			for k.Kind == yaml.AliasNode {
				k = k.Alias
			}
			if k.Kind != yaml.ScalarNode {
				return variant.Variant{}, errors.Unsupported(errors.PhaseDecode, path, "non-scalar YAML mapping key")
			}
			v, err := yamlValue(n.Content[i+1], append(path, k.Value))
			if err != nil {
				return variant.Variant{}, err
			}
			if err := out.Put(k.Value, v); err != nil {
				return variant.Variant{}, err
			}
		}
		return out, nil
	default:
		return variant.Variant{}, errors.Unsupported(errors.PhaseDecode, path, "YAML node kind "+strconv.Itoa(int(n.Kind)))
	}
}

func yamlScalar(n *yaml.Node, path []string) (variant.Variant, error) {
	bad := func(err error) error {
		return errors.New(errors.PhaseDecode, errors.KindParse).
			Path(path...).Cause(err).Detail("YAML %s %q", n.ShortTag(), n.Value).Build()
	}

	switch n.ShortTag() {
	case tagNull:
		return variant.Null(), nil
	case tagBool:
		var b bool
		if err := n.Decode(&b); err != nil {
			return variant.Variant{}, bad(err)
		}
		return variant.Bool(b), nil
	case tagInt:
		var i int64
		if err := n.Decode(&i); err == nil {
			return narrowInt(i), nil
		}
		var u uint64
		if err := n.Decode(&u); err != nil {
			return variant.Variant{}, errors.Overflow(errors.PhaseDecode, n.Value, variant.KindUint64.String())
		}
		return variant.Uint64(u), nil
	case tagFloat:
		var f float64
		if err := n.Decode(&f); err != nil {
			return variant.Variant{}, bad(err)
		}
		return variant.Double(f), nil
	case tagBinary:
		var s string
		if err := n.Decode(&s); err != nil {
			return variant.Variant{}, bad(err)
		}
		return variant.String(s), nil
	default:
		// !!str, !!timestamp and custom tags keep their text.
		return variant.String(n.Value), nil
	}
}

// ToYAML renders v as a YAML document with two-space indentation. Mapping
// keys appear in sorted order.
func ToYAML(v variant.Variant) (string, error) {
	yw := &yamlWriter{}
	if err := variant.Walk(v, yw); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(yw.root); err != nil {
		Logger().Debug("yaml encode failed", zap.Error(err))
		return "", errors.Wrap(errors.PhaseEncode, errors.KindUnsupported, err, "YAML encoder")
	}
	if err := enc.Close(); err != nil {
		return "", errors.Wrap(errors.PhaseEncode, errors.KindUnsupported, err, "YAML encoder")
	}
	return buf.String(), nil
}

// yamlWriter assembles a yaml.Node tree from Walk events.
type yamlWriter struct {
	root  *yaml.Node
	stack []*yaml.Node
}

func (w *yamlWriter) add(n *yaml.Node) {
	if len(w.stack) == 0 {
		w.root = n
		return
	}
	top := w.stack[len(w.stack)-1]
	top.Content = append(top.Content, n)
}

func (w *yamlWriter) scalar(tag, value string) error {
	w.add(&yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value})
	return nil
}

func (w *yamlWriter) VisitNull() error { return w.scalar(tagNull, "null") }

func (w *yamlWriter) VisitBool(v bool) error { return w.scalar(tagBool, strconv.FormatBool(v)) }

func (w *yamlWriter) VisitChar(v int8) error { return w.signed(int64(v)) }

func (w *yamlWriter) VisitInt8(v int8) error { return w.signed(int64(v)) }

func (w *yamlWriter) VisitUint8(v uint8) error { return w.unsigned(uint64(v)) }

func (w *yamlWriter) VisitInt16(v int16) error { return w.signed(int64(v)) }

func (w *yamlWriter) VisitUint16(v uint16) error { return w.unsigned(uint64(v)) }

func (w *yamlWriter) VisitInt32(v int32) error { return w.signed(int64(v)) }

func (w *yamlWriter) VisitUint32(v uint32) error { return w.unsigned(uint64(v)) }

func (w *yamlWriter) VisitInt64(v int64) error { return w.signed(v) }

func (w *yamlWriter) VisitUint64(v uint64) error { return w.unsigned(v) }

func (w *yamlWriter) signed(v int64) error { return w.scalar(tagInt, strconv.FormatInt(v, 10)) }

func (w *yamlWriter) unsigned(v uint64) error { return w.scalar(tagInt, strconv.FormatUint(v, 10)) }

func (w *yamlWriter) VisitDouble(v float64) error {
	return w.scalar(tagFloat, yamlFloat(v))
}

func (w *yamlWriter) VisitString(v string) error { return w.scalar(tagStr, v) }

func (w *yamlWriter) BeginSequence(int) error {
	n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	w.add(n)
	w.stack = append(w.stack, n)
	return nil
}

func (w *yamlWriter) EndSequence() error {
	w.pop()
	return nil
}

func (w *yamlWriter) BeginMapping(int) error {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	w.add(n)
	w.stack = append(w.stack, n)
	return nil
}

func (w *yamlWriter) Key(k string) error { return w.scalar(tagStr, k) }

func (w *yamlWriter) EndMapping() error {
	w.pop()
	return nil
}

func (w *yamlWriter) pop() {
	top := w.stack[len(w.stack)-1]
	if len(top.Content) == 0 {
		top.Style = yaml.FlowStyle
	}
	w.stack = w.stack[:len(w.stack)-1]
}

// yamlFloat formats f so it resolves back to !!float.
func yamlFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEn") {
		s += ".0"
	}
	return s
}
