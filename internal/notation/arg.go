package notation

import (
	"strconv"
)

type argKind int

const (
	argOmitted argKind = iota
	argInt
	argText
)

// Arg is one caller supplied argument to Parse.
//
// The zero value is an omitted argument, which is different from Int(0).
type Arg struct {
	kind argKind
	num  int
	text string
}

// Omitted returns an argument that was not supplied
func Omitted() Arg {
	return Arg{}
}

// Int returns a numeric argument
func Int(n int) Arg {
	return Arg{kind: argInt, num: n}
}

// Text returns a textual argument, either dice notation or a number in text form
func Text(s string) Arg {
	return Arg{kind: argText, text: s}
}

// IsOmitted reports whether the argument was not supplied
func (a Arg) IsOmitted() bool {
	return a.kind == argOmitted
}

// String renders the argument for error messages
func (a Arg) String() string {
	switch a.kind {
	case argInt:
		return strconv.Itoa(a.num)
	case argText:
		return strconv.Quote(a.text)
	default:
		return "<omitted>"
	}
}

// number resolves the argument to an integer. ok is false for text that is not
// a base 10 integer.
func (a Arg) number() (n int, ok bool) {
	switch a.kind {
	case argInt:
		return a.num, true
	case argText:
		n, err := strconv.Atoi(a.text)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		// Omitted resolves to 0, callers check IsOmitted before using it
		return 0, true
	}
}
