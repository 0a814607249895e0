package domain

import "errors"

// Domain errors represent error conditions in the gridsim domain.
// They are returned wrapped by every layer and can be checked with errors.Is.
var (
	// ErrUnknownNetwork is returned when a network factory does not know the requested case.
	ErrUnknownNetwork = errors.New("gridsim: unknown network")

	// ErrInvalidNetwork is returned when a network breaks a structural invariant.
	ErrInvalidNetwork = errors.New("gridsim: invalid network")

	// ErrNotConverged is returned when the load flow of the main component does not converge.
	ErrNotConverged = errors.New("gridsim: load flow did not converge")

	// ErrSingularJacobian is returned when a Newton step cannot be solved.
	ErrSingularJacobian = errors.New("gridsim: singular jacobian")

	// ErrNoSlackBus is returned when the main component has no voltage regulating generator.
	ErrNoSlackBus = errors.New("gridsim: no slack bus candidate")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("gridsim: invalid configuration")

	// ErrAlreadyWatching is returned when Watch is called twice on the same instance.
	ErrAlreadyWatching = errors.New("gridsim: already watching")

	// ErrNotWatching is returned when watch mode is stopped without being started.
	ErrNotWatching = errors.New("gridsim: not watching")

	// ErrShutdownTimeout is returned when watch mode workers do not stop in time.
	ErrShutdownTimeout = errors.New("gridsim: shutdown timeout")
)
