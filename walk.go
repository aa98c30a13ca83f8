package typst

// WalkResult is the result of a walk operation.
type WalkResult int

// WalkContinue indicates that the walk operation should continue.
const WalkContinue WalkResult = 0

// WalkReplace indicates that the current node should be replaced with the
// nodes returned by the function.
const WalkReplace WalkResult = 1

// WalkSkip indicates that the current node should be kept as is and
// its children should not be visited.
const WalkSkip WalkResult = 2

// WalkStop indicates that the walk operation should stop immediately.
const WalkStop WalkResult = 3

// Filter applies the specified function 'fun' to each node of the tree
// below 'root', filtered to nodes of type P. The function is not applied
// to 'root' itself, even if its type matches P.
//
// The behavior depends on the WalkResult returned by 'fun':
//
//   - WalkStop: Terminates the traversal immediately.
//   - WalkSkip: Keeps the current node and skips its children.
//   - WalkReplace: Replaces the current node with the returned nodes,
//     spliced into the parent's child list in place. An empty slice
//     removes the node. Replacements are not themselves visited.
//   - WalkContinue: Keeps the current node and visits its children.
//
// Filter never mutates the input: subtrees left untouched are shared
// between the input and the result, and every changed parent is rebuilt.
//
// Example:
//
//	doc = typst.Filter(doc, func(t typst.Text) ([]typst.Content, typst.WalkResult) {
//	    return []typst.Content{typst.Text(strings.ToUpper(string(t)))}, typst.WalkReplace
//	})
func Filter[P Content](root Content, fun func(P) ([]Content, WalkResult)) Content {
	root, _, _ = walkChildren(root, func(c Content) ([]Content, WalkResult) {
		if p, ok := c.(P); ok {
			return fun(p)
		}
		return nil, WalkContinue
	})
	return root
}

// Query applies the specified function 'fun' to each node of the tree below
// 'root', filtered to nodes of type P. The function is not applied to
// 'root' itself, regardless of whether its type matches P.
//
// Unlike Filter, Query does not rebuild anything; it strictly performs
// read-only operations as defined in 'fun'. The returned WalkResult
// controls the traversal: WalkStop terminates it, WalkSkip skips the
// current node's children, WalkContinue proceeds.
//
// Example:
//
//	var headings int
//	typst.Query(doc, func(e *typst.Elem) typst.WalkResult {
//	    if e.Name == "heading" {
//	        headings++
//	    }
//	    return typst.WalkContinue
//	})
func Query[P Content](root Content, fun func(P) WalkResult) {
	walkChildren(root, func(c Content) ([]Content, WalkResult) {
		if p, ok := c.(P); ok {
			return nil, fun(p)
		}
		return nil, WalkContinue
	})
}

type walkFunc func(Content) ([]Content, WalkResult)

// walkChildren visits the children of c and returns the (possibly rebuilt)
// node, whether anything below c changed, and whether the walk should stop.
func walkChildren(c Content, fun walkFunc) (Content, bool, WalkResult) {
	switch c := c.(type) {
	case Group:
		cs, changed, res := walkList(c, fun)
		if changed {
			return Group(cs), true, res
		}
		return c, false, res
	case *Elem:
		switch b := c.Body.(type) {
		case BlockJoined:
			cs, changed, res := walkList(b, fun)
			if changed {
				return &Elem{Name: c.Name, Params: c.Params, Body: BlockJoined(cs)}, true, res
			}
			return c, false, res
		case BlockPerChild:
			cs, changed, res := walkList(b, fun)
			if changed {
				return &Elem{Name: c.Name, Params: c.Params, Body: BlockPerChild(cs)}, true, res
			}
			return c, false, res
		case InlineArgs:
			cs, changed, res := walkList(b, fun)
			if changed {
				return &Elem{Name: c.Name, Params: c.Params, Body: InlineArgs(cs)}, true, res
			}
			return c, false, res
		}
		return c, false, WalkContinue
	default: // Text: no children
		return c, false, WalkContinue
	}
}

func walkList(lst []Content, fun walkFunc) ([]Content, bool, WalkResult) {
	var (
		out     = make([]Content, 0, len(lst))
		changed bool
	)
	for i, c := range lst {
		rep, res := fun(c)
		switch res {
		case WalkStop:
			out = append(out, lst[i:]...)
			return out, changed, WalkStop
		case WalkSkip:
			out = append(out, c)
		case WalkReplace:
			out = append(out, rep...)
			changed = true
		default:
			nc, sub, res := walkChildren(c, fun)
			out = append(out, nc)
			changed = changed || sub
			if res == WalkStop {
				out = append(out, lst[i+1:]...)
				return out, changed, WalkStop
			}
		}
	}
	return out, changed, WalkContinue
}
