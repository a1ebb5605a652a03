package resources

import "fmt"

// LoadError reports a lexical resource that could not be read or
// parsed. Callers match it with errors.As to distinguish resource
// problems from analysis errors.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading resource %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
