package transcoder

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/variant"
	"github.com/wippyai/variant/errors"
)

func TestFromYAML_Scalars(t *testing.T) {
	tests := []struct {
		in   string
		kind variant.Kind
	}{
		{"~", variant.KindNull},
		{"null", variant.KindNull},
		{"true", variant.KindBool},
		{"12", variant.KindInt32},
		{"0x1F", variant.KindInt32},
		{"4294967295", variant.KindUint32},
		{"-5000000000", variant.KindInt64},
		{"18446744073709551615", variant.KindUint64},
		{"1.5", variant.KindDouble},
		{".inf", variant.KindDouble},
		{"plain text", variant.KindString},
		{`"12"`, variant.KindString},
		{"2001-12-14", variant.KindString},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, err := FromYAML(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, v.Kind())
		})
	}
}

func TestFromYAML_Document(t *testing.T) {
	doc := `
defaults: &defaults
  retries: 3
  verbose: false
service:
  name: api
  settings: *defaults
  ports: [80, 443]
`
	v, err := FromYAML(doc)
	require.NoError(t, err)

	retries, err := v.Lookup("service.settings.retries")
	require.NoError(t, err)
	n, err := retries.AsInt32()
	require.NoError(t, err)
	assert.Equal(t, int32(3), n)

	ports, err := v.Lookup("service.ports")
	require.NoError(t, err)
	assert.Equal(t, 2, ports.Len())
}

func TestFromYAML_Empty(t *testing.T) {
	v, err := FromYAML("")
	require.NoError(t, err)
	assert.True(t, v.IsNull())
}

func TestFromYAML_Errors(t *testing.T) {
	_, err := FromYAML("a: [1, 2")
	assert.ErrorIs(t, err, errors.ErrParse)

	_, err = FromYAML("? [a, b]\n: value\n")
	assert.ErrorIs(t, err, errors.ErrUnsupported)
}

func TestToYAML(t *testing.T) {
	v := variant.Map(variant.Mapping{
		"b":     variant.Seq(variant.Int32(1), variant.String("two")),
		"a":     variant.String("true"),
		"empty": variant.Map(nil),
	})
	out, err := ToYAML(v)
	require.NoError(t, err)
	assert.Contains(t, out, `a: "true"`)
	assert.Contains(t, out, "empty: {}")

	back, err := FromYAML(out)
	require.NoError(t, err)
	assert.True(t, back.Equals(v), "yaml:\n%s", out)
}

func TestYAML_RoundTrip(t *testing.T) {
	orig := variant.Map(variant.Mapping{
		"null":   variant.Null(),
		"flag":   variant.Bool(true),
		"int":    variant.Int32(-7),
		"whole":  variant.Double(2),
		"frac":   variant.Double(0.125),
		"inf":    variant.Double(math.Inf(-1)),
		"str":    variant.String("123"),
		"list":   variant.Seq(variant.String("x"), variant.Seq()),
		"nested": variant.Map(variant.Mapping{"k": variant.String("multi\nline")}),
	})

	out, err := ToYAML(orig)
	require.NoError(t, err)

	back, err := FromYAML(out)
	require.NoError(t, err)
	assert.True(t, back.Equals(orig), "yaml:\n%s\ngot %v", out, back)
}

func TestToYAML_Scalar(t *testing.T) {
	out, err := ToYAML(variant.Uint8(5))
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)
}
