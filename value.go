package jsondoc

// Kind identifies which case of the Value union a value belongs to.
type Kind int

const (
	KindObject Kind = iota
	KindArray
	KindString
	KindNumber
	KindBool
	KindNull
)

func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindNull:
		return "null"
	}
	return "invalid"
}

// Value is a parsed JSON value. The union is closed: the only
// implementations are Object, Array, String, Number, Bool and Null.
// Trees are always finite and acyclic; they are built fresh by Parse (or by
// hand from literals) and never mutated in place afterwards.
type Value interface {
	Kind() Kind
	value()
}

// Object represents a JSON object, defined as an ordered collection of
// key-value pairs. Member order carries no meaning for equality or
// canonical serialization but is preserved for display.
type Object []Member

// Array represents a JSON array, an ordered sequence of values.
type Array []Value

// Member is a single entry in an Object. It consists of a string key and an
// associated Value.
type Member struct {
	Key   string
	Value Value
}

// String, Number, Bool and Null are the scalar cases. Numbers are stored as
// double-precision floats; the integer/float distinction of the source text
// is not preserved.
type (
	String string
	Number float64
	Bool   bool
	Null   struct{}
)

func (Object) Kind() Kind { return KindObject }
func (Array) Kind() Kind  { return KindArray }
func (String) Kind() Kind { return KindString }
func (Number) Kind() Kind { return KindNumber }
func (Bool) Kind() Kind   { return KindBool }
func (Null) Kind() Kind   { return KindNull }

func (Object) value() {}
func (Array) value()  {}
func (String) value() {}
func (Number) value() {}
func (Bool) value()   {}
func (Null) value()   {}

// Len reports the number of members in o.
func (o Object) Len() int { return len(o) }

// Find returns the value for key and whether it is present. With duplicate
// keys (which Parse rejects, but literals may contain) the first wins.
func (o Object) Find(key string) (Value, bool) {
	for _, m := range o {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// withMember returns a copy of o with key set to v, overwriting an existing
// member in place or appending a new one.
func (o Object) withMember(key string, v Value) Object {
	out := make(Object, len(o))
	copy(out, o)
	for i, m := range out {
		if m.Key == key {
			out[i] = Member{Key: key, Value: v}
			return out
		}
	}
	return append(out, Member{Key: key, Value: v})
}

// without returns a copy of o with key removed. The copy is returned
// unchanged when key is absent.
func (o Object) without(key string) Object {
	out := make(Object, 0, len(o))
	for _, m := range o {
		if m.Key != key {
			out = append(out, m)
		}
	}
	return out
}

// withElement returns a copy of a with element i replaced by v.
func (a Array) withElement(i int, v Value) Array {
	out := make(Array, len(a))
	copy(out, a)
	out[i] = v
	return out
}

// withoutElement returns a copy of a with element i removed; subsequent
// elements shift down.
func (a Array) withoutElement(i int) Array {
	out := make(Array, 0, len(a)-1)
	out = append(out, a[:i]...)
	return append(out, a[i+1:]...)
}
