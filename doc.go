// doc.go — package documentation for errctx
//
// Package errctx attaches context to an existing error, so that an error can
// say not just what went wrong but in relation to what. The usual context is
// the filesystem path being operated on.
//
// # The Two Layers
//
// An ErrCtx has two parts and keeps them apart:
//
//   - Error() renders the context only, in Go-syntax form (%#v). A path
//     "example" prints as "example" including the quotes.
//   - Unwrap() returns the wrapped error unchanged, so errors.Is, errors.As
//     and any chain walker continue into it and through whatever it wraps.
//
// The wrapped error is deliberately left out of Error(). A chain-aware printer
// (Report, %+v) shows both layers without printing the inner message twice:
//
//	err := errctx.WrapPath(errors.New("oh no!"), "example")
//	err.Error()          // "example"
//	errctx.Report(err)   // "example": oh no!
//	fmt.Sprintf("%+v", err)
//	// ctx="example"
//	// cause: oh no!
//
// # Attaching Context
//
//	errctx.New(err, ctx)          // ErrCtx[E, T], always
//	errctx.Wrap(err, ctx)         // error; nil stays nil
//	errctx.WrapPath(err, path)    // error; nil stays nil
//	errctx.Func[E](ctx)           // func(E) ErrCtx[E, T]
//	errctx.PathFunc[E](path)      // func(E) PathCtx[E]
//
// Path arguments may be strings or byte slices; they are copied into the
// returned value when the helper is called.
//
// # Reading Context Back
//
//   - ContextOf[T](err) finds the first context of type T along the chain.
//   - Contexts(err) lists every attached context, outermost first.
//   - Chain, Walk and Root expose the cause chain itself.
//
// # Interop
//
//   - errors.Is/As/Join behave as with any other wrapper.
//   - github.com/pkg/errors.Cause steps through an ErrCtx via its Cause method.
//   - ErrCtx is an immutable value; sharing it between goroutines is as safe
//     as sharing its Inner and Ctx.
package errctx
