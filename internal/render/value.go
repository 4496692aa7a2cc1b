package render

import "strconv"

type valueKind int

const (
	kindString valueKind = iota
	kindNumber
	kindBool
)

// Value is a tagged template-variable value. Variables stay typed
// until the final substitution step; only String converts them to
// their rendered text form.
type Value struct {
	kind valueKind
	str  string
	num  float64
	b    bool
}

func String(s string) Value {
	return Value{kind: kindString, str: s}
}

func Number(n float64) Value {
	return Value{kind: kindNumber, num: n}
}

func Boolean(b bool) Value {
	return Value{kind: kindBool, b: b}
}

// String renders the value as substitution text. Numbers drop
// trailing zeros ("42", "0.5"); booleans render as "true"/"false".
func (v Value) String() string {
	switch v.kind {
	case kindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case kindBool:
		return strconv.FormatBool(v.b)
	default:
		return v.str
	}
}

// Truthy reports whether a conditional block gated on this value is
// kept. The falsy renderings are "", "false" and "0"; everything else
// is truthy.
func (v Value) Truthy() bool {
	switch s := v.String(); s {
	case "", "false", "0":
		return false
	default:
		return true
	}
}

// Vars is the flat variable table consumed by Render. Missing names
// substitute as empty string and gate blocks closed.
type Vars map[string]Value
