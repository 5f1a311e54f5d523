package value

import (
	"fmt"
	"strconv"
)

// Kind discriminates the active tag of a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindInteger
	KindFloat
	KindText
	KindBlob
)

// String returns the WIT-level case name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	case KindBlob:
		return "blob"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is one datum crossing the boundary. Exactly one tag is active,
// selected at construction. The zero Value is Null.
type Value struct {
	blob    []byte
	text    string
	integer int64
	float   float64
	kind    Kind
}

// Row is an ordered sequence of column values for one result row.
type Row []Value

// Null returns the null value.
func Null() Value {
	return Value{kind: KindNull}
}

// Integer returns a 64-bit signed integer value.
func Integer(i int64) Value {
	return Value{kind: KindInteger, integer: i}
}

// Float returns a 64-bit IEEE float value.
func Float(f float64) Value {
	return Value{kind: KindFloat, float: f}
}

// Text returns a UTF-8 text value.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Blob returns a byte-sequence value. The input is copied so later
// mutation of b cannot alter the constructed value.
func Blob(b []byte) Value {
	cp := make([]byte, len(b))
	copy(cp, b)
	return Value{kind: KindBlob, blob: cp}
}

// Kind returns the active tag.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the null tag is active.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Integer returns the integer payload. ok is false if another tag is active.
func (v Value) Integer() (i int64, ok bool) {
	return v.integer, v.kind == KindInteger
}

// Float returns the float payload. ok is false if another tag is active.
func (v Value) Float() (f float64, ok bool) {
	return v.float, v.kind == KindFloat
}

// Text returns the text payload. ok is false if another tag is active.
func (v Value) Text() (s string, ok bool) {
	return v.text, v.kind == KindText
}

// Blob returns a copy of the blob payload. ok is false if another tag is
// active. The copy keeps the stored value immutable.
func (v Value) Blob() (b []byte, ok bool) {
	if v.kind != KindBlob {
		return nil, false
	}
	cp := make([]byte, len(v.blob))
	copy(cp, v.blob)
	return cp, true
}

// Equal reports whether two values carry the same tag and payload.
// Floats compare bit-for-bit as Go == (NaN != NaN).
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindInteger:
		return v.integer == o.integer
	case KindFloat:
		return v.float == o.float
	case KindText:
		return v.text == o.text
	case KindBlob:
		if len(v.blob) != len(o.blob) {
			return false
		}
		for i := range v.blob {
			if v.blob[i] != o.blob[i] {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String renders a debug representation, e.g. integer(42) or text("x").
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindInteger:
		return fmt.Sprintf("integer(%d)", v.integer)
	case KindFloat:
		return fmt.Sprintf("float(%g)", v.float)
	case KindText:
		return fmt.Sprintf("text(%q)", v.text)
	case KindBlob:
		return fmt.Sprintf("blob(%d bytes)", len(v.blob))
	default:
		return v.kind.String()
	}
}

// Equal reports whether two rows are the same length with equal values
// in every column.
func (r Row) Equal(o Row) bool {
	if len(r) != len(o) {
		return false
	}
	for i := range r {
		if !r[i].Equal(o[i]) {
			return false
		}
	}
	return true
}
