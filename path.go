package jsondoc

import (
	"strconv"
	"strings"
)

// Token is one step of a Path: either an object key or an array index.
// The two cases are distinct types so that an object key that happens to
// look like "[3]" is never confused with an index; the bracketed wire form
// exists only at the ParseToken/String boundary.
type Token interface {
	// String renders the token in wire form: the key verbatim, or "[N]"
	// for an index.
	String() string
	token()
}

// Key addresses an object member by name.
type Key string

// Index addresses an array element by position.
type Index int

func (k Key) String() string   { return string(k) }
func (i Index) String() string { return "[" + strconv.Itoa(int(i)) + "]" }

func (Key) token()   {}
func (Index) token() {}

// ParseToken interprets a wire-form token: "[N]" for a non-negative integer
// N becomes an Index; anything else is a Key.
func ParseToken(s string) Token {
	if len(s) >= 3 && s[0] == '[' && s[len(s)-1] == ']' {
		if n, err := strconv.Atoi(s[1 : len(s)-1]); err == nil && n >= 0 {
			return Index(n)
		}
	}
	return Key(s)
}

// Path addresses a location inside a Value tree. The empty path denotes the
// document root. Paths are transient: callers build one per operation.
type Path []Token

// ParsePath converts a sequence of wire-form token strings into a Path.
func ParsePath(tokens []string) Path {
	if len(tokens) == 0 {
		return nil
	}
	p := make(Path, len(tokens))
	for i, s := range tokens {
		p[i] = ParseToken(s)
	}
	return p
}

// String renders the path as its tokens joined by ".".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, t := range p {
		parts[i] = t.String()
	}
	return strings.Join(parts, ".")
}
