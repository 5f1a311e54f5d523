// Package value defines the closed tagged union that every datum crossing
// the database boundary is expressed in.
//
// A Value carries exactly one of five tags: null, integer (64-bit signed),
// float (64-bit IEEE), text (UTF-8), or blob (byte sequence). There is no
// coercion between tags at the boundary; whatever affinity conversion the
// engine performs happens before a Value is constructed. Values are
// immutable once constructed: blob contents are copied on the way in and
// on the way out.
//
// Rows are ordered sequences of Values with caller-defined column order.
// Column tags may vary row to row within a result set, matching the
// engine's dynamic typing model.
package value
