package etl

import (
	"fmt"
	"time"
)

// LaunchError reports that the extractor command could not be started at all,
// typically because the interpreter or script is missing or not executable.
type LaunchError struct {
	Path string
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("extractor launch failed: %q: %v", e.Path, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// TimeoutError reports that the extractor process exceeded its deadline and
// was killed.
type TimeoutError struct {
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("extractor timed out after %.0fs", e.Timeout.Seconds())
}

// ExitError reports that the extractor process ran but exited with a non-zero
// code. Stderr holds the captured standard error with newlines stripped.
type ExitError struct {
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("extractor exited with code %d", e.Code)
	}
	return fmt.Sprintf("extractor exited with code %d: %s", e.Code, e.Stderr)
}
