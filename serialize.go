package jsondoc

import (
	"sort"
	"strings"

	"github.com/go-json-experiment/json/jsontext"
)

// PrettyPrint parses text and re-renders it multi-line with two-space
// indentation and object keys sorted lexicographically, regardless of the
// order the author wrote them in. Equivalent documents always pretty-print
// to byte-identical output.
func PrettyPrint(text string) (string, error) {
	res := Parse(text)
	if !res.IsValid {
		return "", parseFailure(res)
	}
	return encodeString(res.Value, jsontext.WithIndent("  "))
}

// Minify parses text and re-renders it on a single line with no
// insignificant whitespace, with the same sorted-key canonicalization as
// PrettyPrint.
func Minify(text string) (string, error) {
	res := Parse(text)
	if !res.IsValid {
		return "", parseFailure(res)
	}
	return encodeString(res.Value)
}

func parseFailure(res ParseResult) error {
	if res.Err != nil {
		return res.Err
	}
	return ErrEmptyDocument
}

func encodeString(v Value, opts ...jsontext.Options) (string, error) {
	var sb strings.Builder
	enc := jsontext.NewEncoder(&sb, opts...)
	if err := encodeValue(enc, v); err != nil {
		return "", err
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}

// encodeValue writes v to enc token by token, sorting object members by
// key. The display order kept in Object is a presentation concern only;
// serialized output is canonical.
func encodeValue(enc *jsontext.Encoder, v Value) error {
	switch v := v.(type) {
	case Object:
		if err := enc.WriteToken(jsontext.ObjectStart); err != nil {
			return err
		}
		for _, m := range sortedMembers(v) {
			if err := enc.WriteToken(jsontext.String(m.Key)); err != nil {
				return err
			}
			if err := encodeValue(enc, m.Value); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.ObjectEnd)
	case Array:
		if err := enc.WriteToken(jsontext.ArrayStart); err != nil {
			return err
		}
		for _, elem := range v {
			if err := encodeValue(enc, elem); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.ArrayEnd)
	case String:
		return enc.WriteToken(jsontext.String(string(v)))
	case Number:
		return enc.WriteToken(jsontext.Float(float64(v)))
	case Bool:
		return enc.WriteToken(jsontext.Bool(bool(v)))
	case Null:
		return enc.WriteToken(jsontext.Null)
	}
	return nil
}

func sortedMembers(o Object) []Member {
	out := make([]Member, len(o))
	copy(out, o)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
