package domain

import (
	"errors"
	"fmt"
)

// ErrScenarioNotFound is the sentinel for lookups outside the precomputed
// parameter grid. Match with errors.Is.
var ErrScenarioNotFound = errors.New("scenario not found")

// ErrValidation is the sentinel for inputs outside their declared domain.
var ErrValidation = errors.New("validation failed")

// ScenarioNotFoundError reports a parameter combination absent from the
// precomputed grid. The table only covers a finite enumerated grid, so a
// miss must be signaled explicitly rather than producing an empty series.
type ScenarioNotFoundError struct {
	Metric Metric
	Params PolicyParameters
}

func (e *ScenarioNotFoundError) Error() string {
	return fmt.Sprintf("no precomputed row for metric %q with parameters %s", e.Metric, e.Params.Key())
}

func (e *ScenarioNotFoundError) Is(target error) bool {
	return target == ErrScenarioNotFound
}

// ValidationError reports a field outside its enumerated or bounded domain.
// Raised at the config boundary before any engine is invoked; values are
// never silently clamped.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
