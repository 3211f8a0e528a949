// context.go — typed access to context attached somewhere along a chain.
//
// Usage
//
//	if path, ok := errctx.ContextOf[string](err); ok {
//		log.Printf("failed on %s", path)
//	}
//
// Caveats
//   - The stored dynamic type must match T exactly; no conversions are made.
//     A PathCtx carries a string, so ContextOf[string] finds it, along with
//     any other string context that comes first.
//   - Foreign wrappers are only looked through, never inspected: anything
//     that does not implement Context() any is skipped.
package errctx

// contextCarrier is implemented by every ErrCtx instantiation.
type contextCarrier interface {
	Context() any
}

// ContextOf returns the first context of type T found by walking err's chain
// in pre-order. It returns (zero, false) if err is nil or no such context
// exists.
func ContextOf[T any](err error) (T, bool) {
	var (
		out   T
		found bool
	)
	Walk(err, func(e error) bool {
		c, ok := e.(contextCarrier)
		if !ok {
			return true
		}
		if v, ok := c.Context().(T); ok {
			out, found = v, true
			return false
		}
		return true
	})
	return out, found
}

// Contexts returns every attached context along err's chain, outermost first.
func Contexts(err error) []any {
	var out []any
	Walk(err, func(e error) bool {
		if c, ok := e.(contextCarrier); ok {
			out = append(out, c.Context())
		}
		return true
	})
	return out
}
