package connectome

import "errors"

var (
	// ErrBadNumber is returned for a token that is not a real number.
	ErrBadNumber = errors.New("connectome: malformed number")

	// ErrRagged is returned when matrix rows differ in length.
	ErrRagged = errors.New("connectome: rows have different lengths")

	// ErrNotSquare is returned when a connectivity matrix is not N×N.
	ErrNotSquare = errors.New("connectome: matrix is not square")

	// ErrEmpty is returned for an input with no data lines.
	ErrEmpty = errors.New("connectome: no data")

	// ErrNoSessions is returned when there is nothing to average.
	ErrNoSessions = errors.New("connectome: no session matrices")

	// ErrShapeMismatch is returned when session matrices, names and centers
	// disagree on the number of regions.
	ErrShapeMismatch = errors.New("connectome: size mismatch")

	// ErrBadCenter is returned for a center line without exactly three
	// coordinates.
	ErrBadCenter = errors.New("connectome: center must have three coordinates")
)
