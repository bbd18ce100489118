package variant

import (
	"math"
	"testing"
)

func TestString(t *testing.T) {
	tests := []struct {
		name string
		v    Variant
		want string
	}{
		{"null", Null(), "null"},
		{"bool", Bool(false), "false"},
		{"char", Char('z'), "z"},
		{"int8", Int8(-8), "-8"},
		{"uint64", Uint64(math.MaxUint64), "18446744073709551615"},
		{"double", Double(2.5), "2.5"},
		{"string raw", String(`a "b"`), `a "b"`},
		{"empty sequence", Seq(), "[ ]"},
		{"sequence", Seq(Int32(1), Null(), String("x")), "[ 1 null x ]"},
		{"empty mapping", Map(nil), "{ }"},
		{"mapping sorted", Map(Mapping{"b": Int32(2), "a": Int32(1)}), "{ a: 1; b: 2; }"},
		{"nested", Map(Mapping{"k": Seq(Bool(true))}), "{ k: [ true ]; }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
