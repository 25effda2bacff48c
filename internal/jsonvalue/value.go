// Package jsonvalue is a small JSON value model and a fluent Builder for
// constructing it. It exists as a layer above the textual JSON codec:
// responses are assembled as Value trees here, then handed to the codec
// for encoding.
//
// The Builder enforces its grammar at runtime rather than through a
// family of typestate wrapper types: each call to Key, Value, StartDict,
// EndDict, StartArray, or EndArray checks the current context and, once
// an illegal call occurs, sticks a BuilderMisuse error that short-circuits
// every later call until Build surfaces it.
package jsonvalue

// Kind identifies the shape of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindDict
)

// Value is a JSON value: exactly one of its Kind-selected fields is
// meaningful.
type Value struct {
	Kind  Kind
	Bool  bool
	Int   int
	Float float64
	Str   string
	Arr   []Value
	Dict  map[string]Value
	// Order preserves the insertion order of Dict's keys, since Go maps
	// do not, and output key order should be stable across runs.
	Order []string
}

// Null returns the null Value.
func Null() Value { return Value{Kind: KindNull} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// Int returns an integer Value.
func Int(i int) Value { return Value{Kind: KindInt, Int: i} }

// Float returns a floating-point Value.
func Float(f float64) Value { return Value{Kind: KindFloat, Float: f} }

// String returns a string Value.
func String(s string) Value { return Value{Kind: KindString, Str: s} }

// Array returns an array Value.
func Array(items ...Value) Value { return Value{Kind: KindArray, Arr: items} }
