// report.go — one-line, chain-aware rendering.
//
// ErrCtx keeps its own message to the context alone, while most Go wrappers
// (fmt.Errorf with %w, github.com/pkg/errors) repeat their cause after ": ".
// Report walks Chain and gives each node only its own contribution:
//   - a message ending in ": "+<next message> is trimmed to its prefix;
//   - a message equal to the next one (pass-through wrappers) is skipped;
//   - empty messages are skipped.
package errctx

import "strings"

// Report renders err and its causes as a single ": "-separated line, e.g.
//
//	errctx.Report(errctx.WrapPath(errors.New("oh no!"), "example"))
//	// "example": oh no!
//
// Report returns "" for a nil err.
func Report(err error) string {
	nodes := Chain(err)
	parts := make([]string, 0, len(nodes))
	for i, n := range nodes {
		msg := n.Error()
		if i+1 < len(nodes) {
			next := nodes[i+1].Error()
			if msg == next {
				continue
			}
			msg = strings.TrimSuffix(msg, ": "+next)
		}
		if msg != "" {
			parts = append(parts, msg)
		}
	}
	return strings.Join(parts, ": ")
}
