package jsondoc

// ResolveState classifies the outcome of walking a Path.
type ResolveState int

const (
	// Found means every token matched and Resolution.Value is the target.
	Found ResolveState = iota
	// NavigationFailed means a key was absent or an index out of bounds.
	// The container had the right shape; the address simply does not exist.
	NavigationFailed
	// TypeFailed means a token was applied to a value of the wrong shape:
	// a key against an array, an index against an object, or any token
	// against a scalar.
	TypeFailed
)

func (s ResolveState) String() string {
	switch s {
	case Found:
		return "found"
	case NavigationFailed:
		return "navigation failed"
	case TypeFailed:
		return "type failed"
	}
	return "invalid"
}

// Resolution reports where a Path walk ended up. Step is the index of the
// token that failed; it is len(path) when State is Found.
type Resolution struct {
	State ResolveState
	Value Value
	Step  int
}

// Resolve walks path from root, one token at a time. The distinction
// between NavigationFailed and TypeFailed matters to callers: mutations
// treat a missing address as a no-op but a shape mismatch as a hard error.
func Resolve(root Value, path Path) Resolution {
	cur := root
	for i, tok := range path {
		switch t := tok.(type) {
		case Key:
			obj, ok := cur.(Object)
			if !ok {
				return Resolution{State: TypeFailed, Step: i}
			}
			v, ok := obj.Find(string(t))
			if !ok {
				return Resolution{State: NavigationFailed, Step: i}
			}
			cur = v
		case Index:
			arr, ok := cur.(Array)
			if !ok {
				return Resolution{State: TypeFailed, Step: i}
			}
			if int(t) < 0 || int(t) >= len(arr) {
				return Resolution{State: NavigationFailed, Step: i}
			}
			cur = arr[int(t)]
		}
	}
	return Resolution{State: Found, Value: cur, Step: len(path)}
}

// rewrite returns a copy of root with the value at path replaced by v. The
// path must already have been resolved successfully; rewrite copies only
// the spine and shares every untouched subtree.
func rewrite(root Value, path Path, v Value) Value {
	if len(path) == 0 {
		return v
	}
	switch t := path[0].(type) {
	case Key:
		obj := root.(Object)
		child, _ := obj.Find(string(t))
		return obj.withMember(string(t), rewrite(child, path[1:], v))
	case Index:
		arr := root.(Array)
		return arr.withElement(int(t), rewrite(arr[int(t)], path[1:], v))
	}
	return root
}
