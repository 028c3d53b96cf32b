package gridworld

import "errors"

// Sentinel errors returned by the package. Callers discriminate with
// errors.Is; call sites that add coordinate/index context wrap these with
// fmt.Errorf("...: %w", ...).
var (
	// ErrIndexOutOfRange is returned when a CellIndex falls outside the map.
	ErrIndexOutOfRange = errors.New("gridworld: index out of range")
	// ErrOutOfMap is returned by Evaluate for a strictly-exterior point.
	ErrOutOfMap = errors.New("gridworld: coordinate out of map")
	// ErrMissingStart is returned when an operation needs a Start cell that
	// has not been set.
	ErrMissingStart = errors.New("gridworld: start cell not set")
	// ErrMissingEnd is returned when an operation needs an End cell that has
	// not been set.
	ErrMissingEnd = errors.New("gridworld: end cell not set")
	// ErrForbiddenObstacle is returned when AddObstacle targets the Start or
	// End index.
	ErrForbiddenObstacle = errors.New("gridworld: cannot turn start or end cell into an obstacle")
	// ErrMissingMap is returned by Environment operations with no map bound.
	ErrMissingMap = errors.New("gridworld: environment has no map")
	// ErrEpisodeTerminated is returned by Step after the episode has ended.
	ErrEpisodeTerminated = errors.New("gridworld: episode already terminated")
	// ErrInvalidArgument covers zero displacement, negative step size, and
	// other caller errors.
	ErrInvalidArgument = errors.New("gridworld: invalid argument")
	// ErrAlreadyInitialized is returned by a second call to Initialize.
	ErrAlreadyInitialized = errors.New("gridworld: map already initialized")
	// ErrNoNeighbors is the defensive failure for evaluate when no
	// neighboring cell is recognized; cannot occur with a well-formed map.
	ErrNoNeighbors = errors.New("gridworld: no neighboring cell recognized")
)
