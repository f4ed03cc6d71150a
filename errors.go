package curvy

import (
	"errors"
)

var (
	// ErrCoincidentPoints is reported by constructors that require two
	// distinct points.
	ErrCoincidentPoints = errors.New("start and stop points are the same")

	// ErrUndefinableArc is reported when no circular arc satisfies the
	// requested construction: the defining perpendiculars do not meet at a
	// unique point, or an overspecified construction is inconsistent.
	ErrUndefinableArc = errors.New("undefinable circular arc")
)
