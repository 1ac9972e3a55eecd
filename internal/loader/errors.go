package loader

import "fmt"

// DataLoadError reports a relation that could not be read: a missing or
// unreadable file, a missing column or an unparseable value. It is fatal to
// startup.
type DataLoadError struct {
	Relation string
	Err      error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Relation, e.Err)
}

func (e *DataLoadError) Unwrap() error {
	return e.Err
}
