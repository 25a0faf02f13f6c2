package caret

import "errors"

// Diagnostic errors reported through the optional stale handler.
// The caret never returns these from its mutating operations; the default
// behavior is silent clamping so the position always stays renderable.
var (
	// ErrStaleLine indicates a dependent computation was skipped because
	// the caret's line no longer exists in the line index.
	ErrStaleLine = errors.New("caret line no longer exists")

	// ErrDetached indicates a mutation was ignored because the owning
	// session has ended.
	ErrDetached = errors.New("caret is detached")
)
