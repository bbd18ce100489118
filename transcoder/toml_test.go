package transcoder

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/variant"
	"github.com/wippyai/variant/errors"
)

const tomlDoc = `
title = "example"
enabled = true
ratio = 0.5
count = 42
big = 5000000000
when = 1979-05-27T07:32:00Z
ports = [8000, 8001]

[owner]
name = "Tom"

[[servers]]
host = "alpha"

[[servers]]
host = "beta"
`

func TestFromTOML(t *testing.T) {
	v, err := FromTOML(tomlDoc)
	require.NoError(t, err)
	require.Equal(t, variant.KindMapping, v.Kind())

	tests := []struct {
		path string
		kind variant.Kind
	}{
		{"title", variant.KindString},
		{"enabled", variant.KindBool},
		{"ratio", variant.KindDouble},
		{"count", variant.KindInt32},
		{"big", variant.KindInt64},
		{"when", variant.KindString},
		{"ports", variant.KindSequence},
		{"ports.1", variant.KindInt32},
		{"owner.name", variant.KindString},
		{"servers", variant.KindSequence},
		{"servers.1.host", variant.KindString},
	}
	for _, tt := range tests {
		got, err := v.Lookup(tt.path)
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.kind, got.Kind(), tt.path)
	}

	when, _ := v.Lookup("when")
	assert.Equal(t, "1979-05-27T07:32:00Z", when.StringOr(""))
	host, _ := v.Lookup("servers.1.host")
	assert.Equal(t, "beta", host.StringOr(""))
}

func TestFromTOML_Malformed(t *testing.T) {
	_, err := FromTOML("key = ")
	assert.ErrorIs(t, err, errors.ErrParse)

	_, err = FromTOML("a = 1\na = 2")
	assert.ErrorIs(t, err, errors.ErrParse)
}

func TestToTOML_RoundTrip(t *testing.T) {
	orig := variant.Map(variant.Mapping{
		"name":  variant.String("svc"),
		"port":  variant.Int32(8080),
		"ratio": variant.Double(0.25),
		"on":    variant.Bool(false),
		"tags":  variant.Seq(variant.String("a"), variant.String("b")),
		"db":    variant.Map(variant.Mapping{"host": variant.String("localhost")}),
	})

	out, err := ToTOML(orig)
	require.NoError(t, err)
	assert.Contains(t, out, `name = "svc"`)
	assert.Contains(t, out, "[db]")

	back, err := FromTOML(out)
	require.NoError(t, err)
	assert.True(t, variant.Equal(back, orig), "got %v", back)
}

func TestToTOML_Rejects(t *testing.T) {
	_, err := ToTOML(variant.Seq())
	assert.ErrorIs(t, err, errors.ErrBadType)

	_, err = ToTOML(variant.Map(variant.Mapping{"x": variant.Seq(variant.Null())}))
	require.ErrorIs(t, err, errors.ErrUnsupported)
	var e *errors.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, []string{"x", "0"}, e.Path)

	_, err = ToTOML(variant.Map(variant.Mapping{"u": variant.Uint64(math.MaxUint64)}))
	assert.ErrorIs(t, err, errors.ErrOverflow)
}

func TestFromTOML_Datetimes(t *testing.T) {
	v, err := FromTOML(`
offset = 1979-05-27T07:32:00-07:00
local_dt = 1979-05-27T07:32:00.5
local_date = 1979-05-27
local_time = 07:32:00
`)
	require.NoError(t, err)

	tests := []struct {
		key  string
		want string
	}{
		{"offset", "1979-05-27T07:32:00-07:00"},
		{"local_dt", "1979-05-27T07:32:00.5"},
		{"local_date", "1979-05-27"},
		{"local_time", "07:32:00"},
	}
	for _, tt := range tests {
		got, ok := v.Get(tt.key)
		require.True(t, ok, tt.key)
		assert.Equal(t, tt.want, got.StringOr(""), tt.key)
	}
}
