// unwrap.go — chain walking over single- and multi-unwrap errors.
//
// Traversal semantics:
//   - Walk:   pre-order DFS over every distinct node, Unwrap() []error children
//             left to right. Stops early when visit returns false.
//   - Chain:  the linear cause chain, following Unwrap() error only.
//   - Root:   the first leaf reached by Walk.
//
// Cycle guard: nodes are remembered by value. Interface values holding
// non-comparable data would panic as map keys, so comparability is checked on
// the value (not just its type) first.
package errctx

import "reflect"

type singleUnwrapper interface{ Unwrap() error }
type multiUnwrapper interface{ Unwrap() []error }

const maxDepth = 1 << 12

// seenSet remembers visited nodes. Values that reflect reports as not
// comparable cannot be map keys; they are treated as acyclic and bounded by
// maxDepth.
type seenSet map[error]struct{}

// mark reports whether err was newly recorded.
func (s seenSet) mark(err error) bool {
	if err == nil {
		return false
	}
	if !reflect.ValueOf(err).Comparable() {
		return true
	}
	if _, ok := s[err]; ok {
		return false
	}
	s[err] = struct{}{}
	return true
}

// Walk visits err and every error reachable from it in pre-order. It is safe
// on cycles; nil err or nil visit is a no-op.
func Walk(err error, visit func(error) bool) {
	if err == nil || visit == nil {
		return
	}
	seen := make(seenSet, 8)
	seen.mark(err)
	stack := []error{err}

	for n := 0; len(stack) > 0 && n < maxDepth; n++ {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !visit(cur) {
			return
		}

		switch u := cur.(type) {
		case multiUnwrapper:
			kids := u.Unwrap()
			// push in reverse so the leftmost child is visited first
			for i := len(kids) - 1; i >= 0; i-- {
				if kids[i] != nil && seen.mark(kids[i]) {
					stack = append(stack, kids[i])
				}
			}
		case singleUnwrapper:
			if next := u.Unwrap(); next != nil && seen.mark(next) {
				stack = append(stack, next)
			}
		}
	}
}

// Chain returns err followed by each error reached through Unwrap() error,
// outermost first. It stops at the first node with no single cause, which
// includes multi-unwrap joins. For an ErrCtx wrapping e,
// len(Chain(ctx)) == 1+len(Chain(e)).
func Chain(err error) []error {
	if err == nil {
		return nil
	}
	seen := make(seenSet, 8)
	seen.mark(err)
	out := []error{err}
	for len(out) < maxDepth {
		u, ok := out[len(out)-1].(singleUnwrapper)
		if !ok {
			break
		}
		next := u.Unwrap()
		if next == nil || !seen.mark(next) {
			break
		}
		out = append(out, next)
	}
	return out
}

// Root returns the first leaf (a node with no children) found by Walk, or nil
// if err is nil.
func Root(err error) error {
	var root error
	Walk(err, func(e error) bool {
		if !hasChildren(e) {
			root = e
			return false
		}
		return true
	})
	if root == nil && err != nil {
		// every node had children that were already seen (a pure cycle)
		return err
	}
	return root
}

func hasChildren(err error) bool {
	switch u := err.(type) {
	case multiUnwrapper:
		for _, k := range u.Unwrap() {
			if k != nil {
				return true
			}
		}
		return false
	case singleUnwrapper:
		return u.Unwrap() != nil
	}
	return false
}
