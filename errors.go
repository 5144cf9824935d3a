package filekit

import "errors"

// Error kinds returned by the stateful operations. Match them with
// errors.Is; the underlying cause stays on the chain.
var (
	// ErrCreate indicates a file, directory, or temporary resource could
	// not be created.
	ErrCreate = errors.New("resource creation failed")

	// ErrRead indicates a file could not be read or decoded.
	ErrRead = errors.New("read failed")

	// ErrWrite indicates a file could not be written.
	ErrWrite = errors.New("write failed")

	// ErrCleanup indicates scoped-resource teardown could not delete the
	// resource. It is only returned when the scope body itself succeeded;
	// a body error always takes precedence and the cleanup failure is
	// logged instead.
	ErrCleanup = errors.New("cleanup failed")
)
