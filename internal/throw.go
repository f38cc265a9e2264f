package internal

import "github.com/pkg/errors"

// Threading errors up through the merge and retriangulation recursion would
// add a ton of complexity to the code. Instead, internal code panics with a
// wrapped sentinel error, and the public API recovers to convert back.

var (
	// ErrNoVertices is raised when constraints are supplied before vertices.
	ErrNoVertices = errors.New("no vertices supplied")
	// ErrIndexOutOfRange is raised for vertex indices outside the supplied
	// point slice.
	ErrIndexOutOfRange = errors.New("vertex index out of range")
	// ErrBadConstraint is raised when a constraint's endpoints cannot be
	// joined by two complete boundary chains, or when a constraint connects
	// a vertex to itself.
	ErrBadConstraint = errors.New("malformed constraint")
	// ErrStale is raised when Triangulate runs twice without new vertices.
	ErrStale = errors.New("triangulation already computed for these vertices")
)

// Panic with sentinel err wrapped in a formatted message. errors.Is still
// matches the sentinel on the recovered value.
func throwf(err error, format string, args ...interface{}) {
	panic(errors.Wrapf(err, format, args...))
}

// HandlePanicRecover converts a recovered throwf panic back into an error.
// Anything that isn't one of our sentinels is re-raised.
func HandlePanicRecover(r interface{}) error {
	if r == nil {
		return nil
	}
	if err, ok := r.(error); ok {
		for _, sentinel := range []error{ErrNoVertices, ErrIndexOutOfRange, ErrBadConstraint, ErrStale} {
			if errors.Is(err, sentinel) {
				return err
			}
		}
	}
	panic(r)
}
