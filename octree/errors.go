package octree

// Error types attached to errors returned by this package, checked with
// errors.IsType.
const (
	// ErrTypeInvalidAdjacency is the type of errors returned for malformed
	// adjacency-level writes: wrong record length, duplicate level, level
	// skip, or conflicting shared-slot values.
	ErrTypeInvalidAdjacency = "dualgrid_invalid_adjacency"

	// ErrTypeInvalidBounds is the type of errors returned when a tree is
	// created with degenerate geometry or a negative initial depth.
	ErrTypeInvalidBounds = "dualgrid_invalid_bounds"
)
