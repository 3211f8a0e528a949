// wrap.go — helpers for attaching context at the point an error is returned.
//
// These helpers cover the two shapes an error branch takes:
//   - Func / PathFunc build a one-argument annotator ahead of time.
//   - Wrap / WrapPath annotate in place and pass nil through untouched, so
//     `return errctx.Wrap(step(), ctx)` is safe on the success path.
package errctx

// Func returns a function that pairs its argument with ctx. ctx is captured
// by value when Func is called.
func Func[E, T any](ctx T) func(E) ErrCtx[E, T] {
	return func(inner E) ErrCtx[E, T] {
		return New(inner, ctx)
	}
}

// Wrap attaches ctx to err.
//   - nil → nil (no ErrCtx is created)
//   - otherwise → ErrCtx[error, T]{Inner: err, Ctx: ctx}
func Wrap[T any](err error, ctx T) error {
	if err == nil {
		return nil
	}
	return New(err, ctx)
}
