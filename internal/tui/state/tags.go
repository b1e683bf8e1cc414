package state

// TagKind enumerates the status chips shown under the form.
type TagKind int

const (
	// Stable ordering for display: Awesome, Redshift, Nucleus, Failed, Saved, Edited
	AWESOME TagKind = iota
	REDSHIFT
	NUCLEUS
	FAILED
	SAVED
	EDITED
)

// Tag represents a single status chip.
type Tag struct {
	Kind TagKind
}
