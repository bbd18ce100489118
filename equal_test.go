package variant

import (
	"math"
	"testing"
)

func TestEqual_Numeric(t *testing.T) {
	tests := []struct {
		name string
		a, b Variant
		want bool
	}{
		{"int32 uint64", Int32(5), Uint64(5), true},
		{"negative vs unsigned", Int8(-1), Uint64(math.MaxUint64), false},
		{"int64 min vs uint64", Int64(math.MinInt64), Uint64(1 << 63), false},
		{"uint64 big vs int64", Uint64(math.MaxUint64), Int64(-1), false},
		{"char int8", Char(10), Int8(10), true},
		{"double int", Double(3), Int16(3), true},
		{"double fraction", Double(3.5), Int16(3), false},
		{"uint vs double", Uint32(7), Double(7), true},
		{"double beyond int64", Double(1e19), Uint64(10000000000000000000), false},
		{"doubles", Double(0.25), Double(0.25), true},
		{"nan", Double(math.NaN()), Double(math.NaN()), false},
		{"bool bool", Bool(true), Bool(true), true},
		{"bool int", Bool(true), Int32(1), false},
		{"int bool", Int32(0), Bool(false), false},
		{"int string", Int32(1), String("1"), false},
		{"null null", Null(), Null(), true},
		{"null int", Null(), Int32(0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := Equal(tt.b, tt.a); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v (reversed)", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestEquals_Exact(t *testing.T) {
	if Int32(5).Equals(Uint64(5)) {
		t.Error("Equals must require matching kinds")
	}
	if !Int32(5).Equals(Int32(5)) {
		t.Error("identical int32 values must be Equals")
	}
	if String("a").Equals(String("b")) {
		t.Error("different strings compared Equals")
	}
}

// Not-equal is !Equals, so two numerically equal values are simultaneously
// Equal and not Equals.
func TestEqualityAsymmetry(t *testing.T) {
	a, b := Int32(5), Uint64(5)
	if !Equal(a, b) || a.Equals(b) {
		t.Errorf("Equal = %v, Equals = %v", Equal(a, b), a.Equals(b))
	}
}

func TestEqual_Containers(t *testing.T) {
	a := Map(Mapping{
		"x": Seq(Int32(1), String("s")),
		"y": Null(),
	})
	b := Map(Mapping{
		"y": Null(),
		"x": Seq(Uint8(1), String("s")),
	})

	if !Equal(a, b) {
		t.Error("mappings with numerically equal values should be Equal")
	}
	if a.Equals(b) {
		t.Error("int32 vs uint8 element should break Equals")
	}
	if !a.Equals(a.Clone()) {
		t.Error("clone should be Equals")
	}

	c := Map(Mapping{"x": Seq(Int32(1), String("s"))})
	if Equal(a, c) {
		t.Error("different key counts compared Equal")
	}
	d := Map(Mapping{"x": Seq(Int32(1), String("s")), "z": Null()})
	if Equal(a, d) {
		t.Error("different key sets compared Equal")
	}
	if Equal(Seq(Int32(1)), Seq(Int32(1), Int32(2))) {
		t.Error("different lengths compared Equal")
	}
	if Equal(Seq(), Map(nil)) {
		t.Error("empty sequence compared Equal to empty mapping")
	}
}

func TestEqual_MappingOrderIndependent(t *testing.T) {
	a := MustFromJSON(`{"a": 1, "b": 2, "c": 3}`)
	b := MustFromJSON(`{"c": 3, "a": 1, "b": 2}`)
	if !a.Equals(b) {
		t.Error("key order must not affect Equals")
	}
}
