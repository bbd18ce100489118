package variant

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/variant/errors"
)

func TestFromJSON_Document(t *testing.T) {
	v, err := FromJSON(`{"a": 1, "b": [true, null, "x"]}`)
	require.NoError(t, err)
	require.Equal(t, KindMapping, v.Kind())
	assert.Equal(t, []string{"a", "b"}, v.Keys())

	a, _ := v.Get("a")
	assert.Equal(t, KindInt32, a.Kind())
	n, err := a.AsInt32()
	require.NoError(t, err)
	assert.Equal(t, int32(1), n)

	b, _ := v.Get("b")
	require.Equal(t, 3, b.Len())
	first, _ := b.Index(0)
	flag, err := first.AsBool()
	require.NoError(t, err)
	assert.True(t, flag)
	second, _ := b.Index(1)
	assert.True(t, second.IsNull())
	third, _ := b.Index(2)
	assert.Equal(t, "x", third.StringOr(""))

	out, err := v.ToJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"a":1,"b":[true,null,"x"]}`, out)
}

func TestFromJSON_Numbers(t *testing.T) {
	tests := []struct {
		in   string
		kind Kind
	}{
		{"0", KindInt32},
		{"-2147483648", KindInt32},
		{"2147483647", KindInt32},
		{"2147483648", KindUint32},
		{"4294967295", KindUint32},
		{"4294967296", KindInt64},
		{"-2147483649", KindInt64},
		{"9223372036854775807", KindInt64},
		{"9223372036854775808", KindUint64},
		{"18446744073709551615", KindUint64},
		{"18446744073709551616", KindDouble},
		{"1.5", KindDouble},
		{"1e3", KindDouble},
		{"-0.0", KindDouble},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, err := FromJSON(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, v.Kind())
		})
	}
}

func TestFromJSON_Strings(t *testing.T) {
	v, err := FromJSON(`"tab\t\"quote\" é"`)
	require.NoError(t, err)
	assert.Equal(t, "tab\t\"quote\" é", v.StringOr(""))

	out, err := v.ToJSON()
	require.NoError(t, err)
	back, err := FromJSON(out)
	require.NoError(t, err)
	assert.True(t, back.Equals(v))
}

func TestFromJSON_DuplicateKeys(t *testing.T) {
	v, err := FromJSON(`{"k": 1, "k": "two"}`)
	require.NoError(t, err)
	assert.Equal(t, 1, v.Len())
	k, _ := v.Get("k")
	assert.Equal(t, "two", k.StringOr(""))
}

func TestFromJSON_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"empty input", "", errors.ErrParse},
		{"truncated", `{"a": [1, 2`, errors.ErrParse},
		{"bad literal", `nul`, errors.ErrParse},
		{"trailing value", `{} {}`, errors.ErrParse},
		{"trailing garbage", `1 x`, errors.ErrParse},
		{"missing colon", `{"a" 1}`, errors.ErrParse},
		{"number overflow", `1e400`, errors.ErrOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := FromJSON(tt.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, v.IsNull())
		})
	}
}

func TestFromJSON_Whitespace(t *testing.T) {
	v, err := FromJSON("  \n[1]\n\t ")
	require.NoError(t, err)
	assert.Equal(t, 1, v.Len())
}

func TestFromJSON_MaxDepth(t *testing.T) {
	in := strings.Repeat("[", 6) + strings.Repeat("]", 6)

	_, err := FromJSON(in, WithMaxDepth(5))
	assert.ErrorIs(t, err, errors.ErrDepth)

	v, err := FromJSON(in, WithMaxDepth(6))
	require.NoError(t, err)
	assert.Equal(t, KindSequence, v.Kind())

	// malformed input at the limit is still a syntax error
	for _, bad := range []string{`{"a":{"b":tru}}`, `[[x]]`, `[[1,]]`} {
		_, err := FromJSON(bad, WithMaxDepth(2))
		assert.ErrorIs(t, err, errors.ErrParse, bad)
		assert.NotErrorIs(t, err, errors.ErrDepth, bad)
	}
}

func TestFromJSON_DefaultDepthLimit(t *testing.T) {
	in := strings.Repeat("[", MaxDepth+1) + strings.Repeat("]", MaxDepth+1)
	_, err := FromJSON(in)
	require.ErrorIs(t, err, errors.ErrDepth)
	assert.Less(t, len(err.Error()), 200)

	_, err = FromJSON(strings.Repeat("[", MaxDepth) + "x")
	require.ErrorIs(t, err, errors.ErrParse)
	var e *errors.Error
	require.ErrorAs(t, err, &e)
	assert.NotNil(t, e.Cause)
}

func TestToJSON_Kinds(t *testing.T) {
	v := Seq(
		Char('A'), Int8(-1), Uint8(255), Int16(-300), Uint16(60000),
		Int32(-5), Uint32(5), Int64(math.MinInt64), Uint64(math.MaxUint64),
		Double(0.5), Bool(false), Null(), String("s"), Seq(), Map(nil),
	)
	out, err := v.ToJSON()
	require.NoError(t, err)
	assert.Equal(t,
		`[65,-1,255,-300,60000,-5,5,-9223372036854775808,18446744073709551615,0.5,false,null,"s",[],{}]`,
		out)
}

func TestToJSON_SortedKeys(t *testing.T) {
	v := Map(Mapping{"z": Int32(1), "a": Int32(2), "m": Int32(3)})
	out, err := v.ToJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"a":2,"m":3,"z":1}`, out)
}

func TestToJSON_NonFinite(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		v := Map(Mapping{"x": Seq(Double(f))})
		_, err := v.ToJSON()
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrUnsupported)

		var e *errors.Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, errors.PhaseEncode, e.Phase)
		assert.Equal(t, []string{"x", "0"}, e.Path)
	}
}

func TestToPrettyJSON(t *testing.T) {
	v := MustFromJSON(`{"a": 1, "b": [true]}`)
	out, err := v.ToPrettyJSON()
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"a\": 1,\n    \"b\": [\n        true\n    ]\n}", out)
}

func TestEncodeJSON_Indent(t *testing.T) {
	var buf bytes.Buffer
	err := EncodeJSON(&buf, MustFromJSON(`{"a": 1}`), true, WithIndent("\t"))
	require.NoError(t, err)
	assert.Equal(t, "{\n\t\"a\": 1\n}\n", buf.String())

	buf.Reset()
	require.NoError(t, EncodeJSON(&buf, Int32(3), false))
	assert.Equal(t, "3\n", buf.String())
}

func TestJSON_RoundTrip(t *testing.T) {
	docs := []string{
		`null`,
		`true`,
		`"plain"`,
		`[]`,
		`{}`,
		`[1,-2,3000000000,-5000000000,18446744073709551615,0.25]`,
		`{"nested":{"deeper":[{"k":"v"},[null]]},"x":false}`,
	}

	for _, doc := range docs {
		t.Run(doc, func(t *testing.T) {
			v, err := FromJSON(doc)
			require.NoError(t, err)
			out, err := v.ToJSON()
			require.NoError(t, err)
			assert.Equal(t, doc, out)

			back, err := FromJSON(out)
			require.NoError(t, err)
			assert.True(t, back.Equals(v))
		})
	}
}

func TestFromJSONBytes(t *testing.T) {
	v, err := FromJSONBytes([]byte(`[1, 2]`))
	require.NoError(t, err)
	assert.Equal(t, 2, v.Len())
}

func TestDecodeJSON_Reader(t *testing.T) {
	v, err := DecodeJSON(strings.NewReader(`{"k": "v"}`))
	require.NoError(t, err)
	got, err := v.Lookup("k")
	require.NoError(t, err)
	assert.Equal(t, "v", got.StringOr(""))
}

func TestMustFromJSON_Panics(t *testing.T) {
	assert.Panics(t, func() { MustFromJSON(`{`) })
}

type envelope struct {
	ID      int     `json:"id"`
	Payload Variant `json:"payload"`
}

func TestJSON_EncodingJSONEmbedding(t *testing.T) {
	in := envelope{ID: 7, Payload: Map(Mapping{"n": Uint8(3), "tags": Seq(String("a"))})}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":7,"payload":{"n":3,"tags":["a"]}}`, string(data))

	var out envelope
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, 7, out.ID)
	assert.True(t, Equal(in.Payload, out.Payload))
	assert.False(t, in.Payload.Equals(out.Payload), "uint8 decodes back as int32")
}
