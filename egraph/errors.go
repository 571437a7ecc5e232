package egraph

import "errors"

// ErrBadId is returned (or, from internal call sites that cannot fail,
// panics wrapping this error) when an Id indexes no class — an out-of-range
// or otherwise unknown id. spec.md classifies this as a programming bug
// rather than a recoverable condition; callers that can't guarantee a
// well-formed id should use Class rather than MustClass.
var ErrBadId = errors.New("egraph: bad id")

// AnalysisNonTerminating is not a detected runtime error: a Join that isn't
// monotone over a well-founded lattice makes Rebuild loop forever. This is
// a documented contract violation on the analysis implementation, not a
// condition the engine checks for.
