package jsondoc

// DisplayNode wraps a Value together with the Path that reached it. Its ID
// is derived from the path alone, never from content, so a UI that keys
// expand/collapse state by ID keeps that state across a full reparse of
// edited text: same structure, same IDs, whatever the leaf values are.
type DisplayNode struct {
	ID       string
	Path     Path
	Value    Value
	Children []*DisplayNode
}

// BuildDisplayTree derives a DisplayNode tree from a parsed value. The
// root's ID is "root"; every descendant appends "." plus its token in wire
// form, e.g. root.items.[0].name.
func BuildDisplayTree(root Value) *DisplayNode {
	return buildNode(root, nil, "root")
}

func buildNode(v Value, path Path, id string) *DisplayNode {
	n := &DisplayNode{ID: id, Path: path, Value: v}
	switch v := v.(type) {
	case Object:
		n.Children = make([]*DisplayNode, len(v))
		for i, m := range v {
			tok := Key(m.Key)
			n.Children[i] = buildNode(m.Value, childPath(path, tok), id+"."+tok.String())
		}
	case Array:
		n.Children = make([]*DisplayNode, len(v))
		for i, elem := range v {
			tok := Index(i)
			n.Children[i] = buildNode(elem, childPath(path, tok), id+"."+tok.String())
		}
	}
	return n
}

func childPath(p Path, tok Token) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = tok
	return out
}

// Walk visits n and every descendant in depth-first display order.
func (n *DisplayNode) Walk(fn func(*DisplayNode)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// IDSet collects the identifiers of n and all descendants. Diffing the
// sets of two trees is how callers carry expanded-subtree state across an
// edit-and-reparse cycle.
func (n *DisplayNode) IDSet() map[string]struct{} {
	ids := make(map[string]struct{})
	n.Walk(func(d *DisplayNode) { ids[d.ID] = struct{}{} })
	return ids
}
