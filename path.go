// path.go — path-valued context.
//
// PathCtx is ErrCtx specialised to a filesystem path. Paths are plain Go
// strings (the form os and io/fs accept); byte-slice paths are copied into a
// string when the context is built, so later writes to the slice never reach
// a stored path.
package errctx

// PathCtx is an ErrCtx whose context is a filesystem path.
type PathCtx[E any] = ErrCtx[E, string]

// PathLike is any string- or byte-based path representation.
type PathLike interface {
	~string | ~[]byte
}

// NewPath creates a PathCtx from an error and a path.
func NewPath[E any, P PathLike](inner E, path P) PathCtx[E] {
	return New(inner, string(path))
}

// PathFunc returns a function that annotates an error with path. The path is
// copied when PathFunc is called, not when the returned function runs.
//
// It is meant for the error branch of a fallible step:
//
//	annotate := errctx.PathFunc[error](name)
//	f, err := os.Open(name)
//	if err != nil {
//		return annotate(err)
//	}
//
// The returned function may be called more than once; each call yields an
// independent value.
func PathFunc[E any, P PathLike](path P) func(E) PathCtx[E] {
	return Func[E](string(path))
}

// WrapPath annotates err with path. It returns nil when err is nil.
func WrapPath[P PathLike](err error, path P) error {
	return Wrap(err, string(path))
}
