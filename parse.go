package jsondoc

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-json-experiment/json/jsontext"
)

// ParseError describes a syntax failure with a best-effort location.
// Offset is the byte offset into the input (-1 when unknown); Line and
// Column are 1-based and zero when unknown.
type ParseError struct {
	Message string
	Offset  int64
	Line    int
	Column  int
}

func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("Line %d, Col %d: %s", e.Line, e.Column, e.Message)
	}
	return e.Message
}

// ParseResult is the outcome of Parse. Exactly one of Value and Err is set
// for non-empty input; both are nil for empty or whitespace-only input,
// which is a distinct "no input" state rather than an error.
type ParseResult struct {
	IsValid bool
	Value   Value
	Err     *ParseError
}

// Parse decodes text into a Value tree. Any JSON value is accepted at the
// root, including scalars; IsValid is stricter (see below). Trailing data
// after the root value is a syntax error.
func Parse(text string) ParseResult {
	if strings.TrimSpace(text) == "" {
		return ParseResult{}
	}
	dec := jsontext.NewDecoder(strings.NewReader(text))
	v, err := decodeValue(dec)
	if err != nil {
		return ParseResult{Err: newParseError(text, dec, err)}
	}
	if _, err := dec.ReadToken(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return ParseResult{Err: newParseError(text, dec, err)}
	}
	return ParseResult{IsValid: true, Value: v}
}

// IsValid reports whether text parses to a top-level object or array. Bare
// scalars are rejected: the engine exists to edit containers, so a valid
// but scalar document is not editable input. Parse remains more permissive
// on purpose.
func IsValid(text string) bool {
	res := Parse(text)
	if !res.IsValid {
		return false
	}
	k := res.Value.Kind()
	return k == KindObject || k == KindArray
}

// CountElements returns the member count of a top-level object or the
// element count of a top-level array, skipping over nested values without
// building a tree. It returns 0 for scalar roots and for any invalid input.
func CountElements(text string) int {
	dec := jsontext.NewDecoder(strings.NewReader(text))
	var n int
	switch dec.PeekKind() {
	case '{':
		if _, err := dec.ReadToken(); err != nil {
			return 0
		}
		for dec.PeekKind() != '}' {
			if _, err := dec.ReadToken(); err != nil { // member name
				return 0
			}
			if err := dec.SkipValue(); err != nil {
				return 0
			}
			n++
		}
		if _, err := dec.ReadToken(); err != nil {
			return 0
		}
	case '[':
		if _, err := dec.ReadToken(); err != nil {
			return 0
		}
		for dec.PeekKind() != ']' {
			if err := dec.SkipValue(); err != nil {
				return 0
			}
			n++
		}
		if _, err := dec.ReadToken(); err != nil {
			return 0
		}
	default:
		return 0
	}
	if _, err := dec.ReadToken(); !errors.Is(err, io.EOF) {
		return 0
	}
	return n
}

func decodeValue(dec *jsontext.Decoder) (Value, error) {
	switch dec.PeekKind() {
	case '{':
		return decodeObject(dec)
	case '[':
		return decodeArray(dec)
	}
	tok, err := dec.ReadToken()
	if err != nil {
		return nil, err
	}
	switch tok.Kind() {
	case '"':
		return String(tok.String()), nil
	case '0':
		return Number(tok.Float()), nil
	case 't', 'f':
		return Bool(tok.Bool()), nil
	case 'n':
		return Null{}, nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok.Kind())
}

// decodeObject decodes a JSON object into an Object, preserving member
// order. The decoder rejects duplicate member names.
func decodeObject(dec *jsontext.Decoder) (Object, error) {
	if _, err := dec.ReadToken(); err != nil { // '{'
		return nil, fmt.Errorf("read object open: %w", err)
	}
	obj := Object{}
	for dec.PeekKind() != '}' {
		name, err := dec.ReadToken()
		if err != nil {
			return nil, fmt.Errorf("read object key: %w", err)
		}
		key := name.String()
		v, err := decodeValue(dec)
		if err != nil {
			return nil, fmt.Errorf("read object value for key %q: %w", key, err)
		}
		obj = append(obj, Member{Key: key, Value: v})
	}
	if _, err := dec.ReadToken(); err != nil { // '}'
		return nil, fmt.Errorf("read object close: %w", err)
	}
	return obj, nil
}

// decodeArray decodes a JSON array into an Array.
func decodeArray(dec *jsontext.Decoder) (Array, error) {
	if _, err := dec.ReadToken(); err != nil { // '['
		return nil, fmt.Errorf("read array open: %w", err)
	}
	arr := Array{}
	for dec.PeekKind() != ']' {
		elem, err := decodeValue(dec)
		if err != nil {
			return nil, fmt.Errorf("read array element: %w", err)
		}
		arr = append(arr, elem)
	}
	if _, err := dec.ReadToken(); err != nil { // ']'
		return nil, fmt.Errorf("read array close: %w", err)
	}
	return arr, nil
}

// newParseError attributes a position to err where one can be derived: a
// jsontext.SyntacticError carries a byte offset; otherwise the decoder's
// input offset is the best available estimate.
func newParseError(text string, dec *jsontext.Decoder, err error) *ParseError {
	offset := int64(-1)
	message := err.Error()
	var syn *jsontext.SyntacticError
	if errors.As(err, &syn) {
		offset = syn.ByteOffset
		message = syn.Error()
	} else if dec != nil {
		offset = dec.InputOffset()
	}
	pe := &ParseError{Message: message, Offset: offset}
	pe.Line, pe.Column = lineCol(text, offset)
	return pe
}

// lineCol converts a byte offset into a 1-based line and column. Offsets
// out of range (including the unknown sentinel -1) yield (0, 0); an offset
// equal to len(text) points just past the end, as EOF errors do.
func lineCol(text string, offset int64) (line, col int) {
	if offset < 0 || offset > int64(len(text)) {
		return 0, 0
	}
	line, col = 1, 1
	for _, b := range []byte(text[:offset]) {
		if b == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
