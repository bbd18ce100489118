package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/variant"
	"github.com/wippyai/variant/transcoder"
)

type options struct {
	inFile string
	from   string
	to     string
	get    string
	as     string
	eqFile string
	tty    bool
}

func main() {
	var (
		inFile      = flag.String("in", "", "Input file (default stdin)")
		from        = flag.String("from", "json", "Input format: json, msgpack, toml, yaml")
		to          = flag.String("to", "", "Output format: json, pretty, msgpack, toml, yaml, debug (default pretty on a terminal)")
		getPath     = flag.String("get", "", "Dotted path of the value to print (items.0.name)")
		asKind      = flag.String("as", "", "Convert the value to a kind (int8, uint32, double, string, ...)")
		eqFile      = flag.String("eq", "", "Compare the input with another document in the same format")
		interactive = flag.Bool("i", false, "Interactive tree browser")
		verbose     = flag.Bool("v", false, "Log codec failures to stderr")
	)
	flag.Parse()

	if *verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = log.Sync() }()
		variant.SetLogger(log)
		transcoder.SetLogger(log)
	}

	opts := options{
		inFile: *inFile,
		from:   *from,
		to:     *to,
		get:    *getPath,
		as:     *asKind,
		eqFile: *eqFile,
		tty:    term.IsTerminal(int(os.Stdout.Fd())),
	}

	if *interactive {
		if err := runInteractive(opts, os.Stdin); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(opts, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options, stdin io.Reader, stdout io.Writer) error {
	doc, err := load(opts.inFile, opts.from, stdin)
	if err != nil {
		return err
	}

	if opts.eqFile != "" {
		other, err := load(opts.eqFile, opts.from, nil)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Equal:  %v\n", variant.Equal(doc, other))
		fmt.Fprintf(stdout, "Equals: %v\n", doc.Equals(other))
		return nil
	}

	v, err := doc.Lookup(opts.get)
	if err != nil {
		return fmt.Errorf("get %s: %w", opts.get, err)
	}

	if opts.as != "" {
		k, ok := variant.ParseKind(opts.as)
		if !ok {
			return fmt.Errorf("unknown kind %q", opts.as)
		}
		if v, err = convert(v, k); err != nil {
			return fmt.Errorf("as %s: %w", opts.as, err)
		}
	}

	to := opts.to
	if to == "" {
		to = "json"
		if opts.tty {
			to = "pretty"
		}
	}
	return write(stdout, v, to)
}

func load(path, format string, stdin io.Reader) (variant.Variant, error) {
	var (
		data []byte
		err  error
	)
	if path == "" {
		if stdin == nil {
			return variant.Variant{}, fmt.Errorf("no input")
		}
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return variant.Variant{}, fmt.Errorf("read input: %w", err)
	}

	v, err := decode(data, format)
	if err != nil {
		name := path
		if name == "" {
			name = "stdin"
		}
		return variant.Variant{}, fmt.Errorf("decode %s: %w", name, err)
	}
	return v, nil
}

func decode(data []byte, format string) (variant.Variant, error) {
	switch format {
	case "json":
		return variant.FromJSONBytes(data)
	case "msgpack":
		return transcoder.UnmarshalMsgpack(data)
	case "toml":
		return transcoder.FromTOML(string(data))
	case "yaml":
		return transcoder.FromYAML(string(data))
	default:
		return variant.Variant{}, fmt.Errorf("unknown input format %q", format)
	}
}

func write(w io.Writer, v variant.Variant, format string) error {
	var (
		out string
		err error
	)
	switch format {
	case "json":
		return variant.EncodeJSON(w, v, false)
	case "pretty":
		return variant.EncodeJSON(w, v, true)
	case "msgpack":
		return transcoder.EncodeMsgpack(w, v)
	case "toml":
		out, err = transcoder.ToTOML(v)
	case "yaml":
		out, err = transcoder.ToYAML(v)
	case "debug":
		out = v.Kind().String() + " " + v.String() + "\n"
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// convert applies the exact accessor for k and wraps the result back up.
func convert(v variant.Variant, k variant.Kind) (variant.Variant, error) {
	switch k {
	case variant.KindNull:
		if !v.IsNull() {
			return variant.Variant{}, fmt.Errorf("%s is not null", v.Kind())
		}
		return v, nil
	case variant.KindBool:
		b, err := v.AsBool()
		return variant.Bool(b), err
	case variant.KindChar:
		n, err := v.AsChar()
		return variant.Char(n), err
	case variant.KindInt8:
		n, err := v.AsInt8()
		return variant.Int8(n), err
	case variant.KindUint8:
		n, err := v.AsUint8()
		return variant.Uint8(n), err
	case variant.KindInt16:
		n, err := v.AsInt16()
		return variant.Int16(n), err
	case variant.KindUint16:
		n, err := v.AsUint16()
		return variant.Uint16(n), err
	case variant.KindInt32:
		n, err := v.AsInt32()
		return variant.Int32(n), err
	case variant.KindUint32:
		n, err := v.AsUint32()
		return variant.Uint32(n), err
	case variant.KindInt64:
		n, err := v.AsInt64()
		return variant.Int64(n), err
	case variant.KindUint64:
		n, err := v.AsUint64()
		return variant.Uint64(n), err
	case variant.KindDouble:
		f, err := v.AsDouble()
		return variant.Double(f), err
	case variant.KindString:
		s, err := v.AsString()
		return variant.String(s), err
	case variant.KindSequence:
		_, err := v.AsSequence()
		return v, err
	default:
		_, err := v.AsMapping()
		return v, err
	}
}
