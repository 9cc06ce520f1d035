package domain

// Actor identifies the authenticated caller of a guarded operation. It is
// passed explicitly into every authorization check instead of living in
// ambient session state, so tests can simulate multiple callers.
type Actor struct {
	ID   int64
	Role UserRole
}

// Authenticated reports whether a caller identity is present at all.
func (a Actor) Authenticated() bool {
	return a.ID != 0
}
