package entities

import "fmt"

// ValidationError reports bad or missing required user input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// PreconditionError reports a caller contract violation, such as building a
// record without a selected asset. These are programming or flow errors,
// never defaulted away.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string {
	return "precondition failed: " + e.Reason
}

// ConfigurationError reports missing or unusable runtime configuration,
// such as an absent generation credential. Not retryable.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration: " + e.Reason
}

// UpstreamError reports a failed generation call.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return "generation failed: " + e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// CorruptStateError reports persisted state that failed to parse on load.
type CorruptStateError struct {
	Key string
	Err error
}

func (e *CorruptStateError) Error() string {
	return fmt.Sprintf("corrupt state under key %q: %v", e.Key, e.Err)
}

func (e *CorruptStateError) Unwrap() error {
	return e.Err
}
