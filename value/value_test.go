package value

import (
	"math"
	"testing"
)

func TestValue_TagDiscrimination(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		kind Kind
	}{
		{"null", Null(), KindNull},
		{"integer", Integer(42), KindInteger},
		{"float", Float(3.5), KindFloat},
		{"text", Text("hello"), KindText},
		{"blob", Blob([]byte{1, 2, 3}), KindBlob},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.v.Kind() != tt.kind {
				t.Fatalf("Kind() = %v, want %v", tt.v.Kind(), tt.kind)
			}

			// Exactly one accessor succeeds per tag.
			accessors := 0
			if tt.v.IsNull() {
				accessors++
			}
			if _, ok := tt.v.Integer(); ok {
				accessors++
			}
			if _, ok := tt.v.Float(); ok {
				accessors++
			}
			if _, ok := tt.v.Text(); ok {
				accessors++
			}
			if _, ok := tt.v.Blob(); ok {
				accessors++
			}
			if accessors != 1 {
				t.Fatalf("%d accessors active, want exactly 1", accessors)
			}
		})
	}
}

func TestValue_RoundTripExactness(t *testing.T) {
	if i, _ := Integer(math.MinInt64).Integer(); i != math.MinInt64 {
		t.Errorf("integer round-trip: got %d", i)
	}
	if i, _ := Integer(math.MaxInt64).Integer(); i != math.MaxInt64 {
		t.Errorf("integer round-trip: got %d", i)
	}

	// Float must reproduce the original bit pattern.
	for _, f := range []float64{0, -0.0, 1.5, math.SmallestNonzeroFloat64, math.MaxFloat64, math.Inf(1), math.Inf(-1)} {
		got, ok := Float(f).Float()
		if !ok || math.Float64bits(got) != math.Float64bits(f) {
			t.Errorf("float round-trip of %g: got %g", f, got)
		}
	}
	if got, _ := Float(math.NaN()).Float(); !math.IsNaN(got) {
		t.Errorf("NaN round-trip: got %g", got)
	}

	s := "héllo \x00 world"
	if got, _ := Text(s).Text(); got != s {
		t.Errorf("text round-trip: got %q", got)
	}

	b := []byte{0, 255, 128, 7}
	got, _ := Blob(b).Blob()
	if len(got) != len(b) {
		t.Fatalf("blob round-trip length: got %d", len(got))
	}
	for i := range b {
		if got[i] != b[i] {
			t.Errorf("blob byte %d: got %d, want %d", i, got[i], b[i])
		}
	}
}

func TestValue_BlobImmutable(t *testing.T) {
	src := []byte{1, 2, 3}
	v := Blob(src)
	src[0] = 99

	b, _ := v.Blob()
	if b[0] != 1 {
		t.Fatal("mutation of source slice leaked into value")
	}

	b[1] = 99
	b2, _ := v.Blob()
	if b2[1] != 2 {
		t.Fatal("mutation of accessor result leaked into value")
	}
}

func TestValue_Equal(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"null equal", Null(), Null(), true},
		{"integer equal", Integer(1), Integer(1), true},
		{"integer unequal", Integer(1), Integer(2), false},
		{"cross-tag", Integer(0), Float(0), false},
		{"null vs zero int", Null(), Integer(0), false},
		{"text equal", Text("x"), Text("x"), true},
		{"blob equal", Blob([]byte{1}), Blob([]byte{1}), true},
		{"blob unequal length", Blob([]byte{1}), Blob([]byte{1, 2}), false},
		{"blob unequal content", Blob([]byte{1}), Blob([]byte{2}), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRow_Equal(t *testing.T) {
	a := Row{Integer(1), Text("x")}
	b := Row{Integer(1), Text("x")}
	if !a.Equal(b) {
		t.Fatal("identical rows unequal")
	}
	if a.Equal(Row{Integer(1)}) {
		t.Fatal("length mismatch reported equal")
	}
	if a.Equal(Row{Integer(1), Text("y")}) {
		t.Fatal("content mismatch reported equal")
	}
}

func TestZeroValueIsNull(t *testing.T) {
	var v Value
	if !v.IsNull() {
		t.Fatal("zero Value should be null")
	}
}
