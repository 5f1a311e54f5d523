package value

import (
	"go.bytecodealliance.org/wit"
)

// RecordValue returns the WIT type of the record-value variant as exchanged
// across the boundary:
//
//	variant record-value {
//	    null,
//	    integer(s64),
//	    float(f64),
//	    text(string),
//	    blob(list<u8>),
//	}
//
// Case order matches the Kind constants; the discriminant of a marshalled
// Value is exactly uint8(Kind).
func RecordValue() wit.Type {
	return &wit.TypeDef{
		Kind: &wit.Variant{
			Cases: []wit.Case{
				{Name: "null"},
				{Name: "integer", Type: wit.S64{}},
				{Name: "float", Type: wit.F64{}},
				{Name: "text", Type: wit.String{}},
				{Name: "blob", Type: &wit.TypeDef{Kind: &wit.List{Type: wit.U8{}}}},
			},
		},
	}
}
