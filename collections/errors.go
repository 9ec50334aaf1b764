package collections

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by List construction and mutation.
var (
	// ErrInvalidConfig is wrapped by every [*ConfigError].
	ErrInvalidConfig = errors.New("collections: invalid configuration")

	// ErrExtraction is wrapped by every [*ExtractionError].
	ErrExtraction = errors.New("collections: extraction failed")

	// ErrIncompleteArgs is returned when a constructor transform is handed a
	// number of raw inputs that is not a multiple of its arity.
	ErrIncompleteArgs = errors.New("collections: incomplete constructor arguments")
)

// ConfigError reports a malformed [Config] detected by [New].
type ConfigError struct {
	// Field is the configuration field at fault: "by", "groups", "as" or "equal".
	Field string
	// Name is the index or group name involved, if any.
	Name   string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	msg := "collections: invalid " + e.Field
	if e.Name != "" {
		msg += fmt.Sprintf(" %q", e.Name)
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both [ErrInvalidConfig] and the underlying cause.
func (e *ConfigError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidConfig}
	}
	return []error{ErrInvalidConfig, e.Err}
}

// Stage identifies the step of the insertion path that failed.
type Stage string

const (
	StageTransform Stage = "transform"
	StageIndex     Stage = "index"
	StageGroup     Stage = "group"
)

// ExtractionError reports a transform, key extractor or classifier that
// failed while a batch was being staged. The batch it belongs to has been
// rejected as a whole; the List is unchanged.
type ExtractionError struct {
	Stage Stage
	// Name is the index or group name; empty for the transform stage.
	Name string
	// Position is the offset of the failing input within the call's batch.
	Position int
	Cause    error
}

func (e *ExtractionError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("collections: %s failed at position %d: %v", e.Stage, e.Position, e.Cause)
	}
	return fmt.Sprintf("collections: %s %q failed at position %d: %v", e.Stage, e.Name, e.Position, e.Cause)
}

// Unwrap exposes both [ErrExtraction] and the cause.
func (e *ExtractionError) Unwrap() []error {
	return []error{ErrExtraction, e.Cause}
}

// PanicError carries a recovered panic value that was not itself an error.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string { return fmt.Sprintf("panic: %v", e.Value) }

func panicCause(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return &PanicError{Value: r}
}

// guard runs fn and converts a panic into an *ExtractionError.
func guard(stage Stage, name string, pos int, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ExtractionError{Stage: stage, Name: name, Position: pos, Cause: panicCause(r)}
		}
	}()
	if err := fn(); err != nil {
		return &ExtractionError{Stage: stage, Name: name, Position: pos, Cause: err}
	}
	return nil
}
