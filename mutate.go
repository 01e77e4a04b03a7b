package jsondoc

import "github.com/go-json-experiment/json/jsontext"

// The four structural edits below share one contract. Each parses the
// original document text, resolves a Path, and on success returns a brand
// new canonical rendering of the whole tree (the input tree is never
// mutated in place). Outcomes:
//
//   - hard failure: ("", err) — undecodable input, a shape mismatch
//     (ErrWrongType), or deleting the root (ErrDeleteRoot);
//   - silent no-op: the original text returned verbatim with a nil error,
//     whenever the path no longer exists (the document may have changed
//     underfoot; an edit aimed at a stale address must not destroy it);
//   - success: the new document text and a nil error.
//
// Callers detect a no-op by comparing the result to the input.

// AddToObject inserts or overwrites key in the object addressed by path.
// The target must be an object.
func AddToObject(doc string, path Path, key string, v Value) (string, error) {
	root, err := parseDocument(doc)
	if err != nil {
		return "", err
	}
	res := Resolve(root, path)
	switch res.State {
	case NavigationFailed:
		return doc, nil
	case TypeFailed:
		return "", ErrWrongType
	}
	obj, ok := res.Value.(Object)
	if !ok {
		return "", ErrWrongType
	}
	return render(rewrite(root, path, obj.withMember(key, v)))
}

// AppendToArray appends v to the array addressed by path. The target must
// be an array; arrays only ever grow through this operation.
func AppendToArray(doc string, path Path, v Value) (string, error) {
	root, err := parseDocument(doc)
	if err != nil {
		return "", err
	}
	res := Resolve(root, path)
	switch res.State {
	case NavigationFailed:
		return doc, nil
	case TypeFailed:
		return "", ErrWrongType
	}
	arr, ok := res.Value.(Array)
	if !ok {
		return "", ErrWrongType
	}
	grown := make(Array, len(arr), len(arr)+1)
	copy(grown, arr)
	grown = append(grown, v)
	return render(rewrite(root, path, grown))
}

// Delete removes the value addressed by path from its parent container.
// Deleting an array element shifts subsequent elements down. The root
// itself cannot be deleted.
func Delete(doc string, path Path) (string, error) {
	if len(path) == 0 {
		return "", ErrDeleteRoot
	}
	root, err := parseDocument(doc)
	if err != nil {
		return "", err
	}
	parent, last := path[:len(path)-1], path[len(path)-1]
	res := Resolve(root, parent)
	switch res.State {
	case NavigationFailed:
		return doc, nil
	case TypeFailed:
		return "", ErrWrongType
	}
	switch container := res.Value.(type) {
	case Object:
		key, ok := last.(Key)
		if !ok {
			return "", ErrWrongType
		}
		if _, exists := container.Find(string(key)); !exists {
			return doc, nil
		}
		return render(rewrite(root, parent, container.without(string(key))))
	case Array:
		idx, ok := last.(Index)
		if !ok {
			return "", ErrWrongType
		}
		if int(idx) < 0 || int(idx) >= len(container) {
			return doc, nil
		}
		return render(rewrite(root, parent, container.withoutElement(int(idx))))
	}
	return "", ErrWrongType
}

// Update replaces the value addressed by path with v. The empty path
// replaces the entire document. A missing final object key is inserted
// (upsert); an out-of-range array index is a no-op — Update never grows an
// array, that is AppendToArray's job. The asymmetry is deliberate.
func Update(doc string, path Path, v Value) (string, error) {
	root, err := parseDocument(doc)
	if err != nil {
		return "", err
	}
	if len(path) == 0 {
		return render(v)
	}
	parent, last := path[:len(path)-1], path[len(path)-1]
	res := Resolve(root, parent)
	switch res.State {
	case NavigationFailed:
		return doc, nil
	case TypeFailed:
		return "", ErrWrongType
	}
	switch container := res.Value.(type) {
	case Object:
		key, ok := last.(Key)
		if !ok {
			return "", ErrWrongType
		}
		return render(rewrite(root, parent, container.withMember(string(key), v)))
	case Array:
		idx, ok := last.(Index)
		if !ok {
			return "", ErrWrongType
		}
		if int(idx) < 0 || int(idx) >= len(container) {
			return doc, nil
		}
		return render(rewrite(root, parent, container.withElement(int(idx), v)))
	}
	return "", ErrWrongType
}

func parseDocument(doc string) (Value, error) {
	res := Parse(doc)
	if !res.IsValid {
		return nil, parseFailure(res)
	}
	return res.Value, nil
}

// render is the canonical form mutations hand back: pretty-printed with
// sorted keys, same as PrettyPrint.
func render(v Value) (string, error) {
	return encodeString(v, jsontext.WithIndent("  "))
}
