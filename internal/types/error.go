package types

import "fmt"

// MigrationError attributes a DDL failure to the revision and operation it
// occurred in, so the operator sees exactly which step broke.
type MigrationError struct {
	Revision string `json:"revision"`
	Op       string `json:"op"` // "upgrade" or "downgrade"
	Err      error  `json:"-"`
}

func (e *MigrationError) Error() string {
	return fmt.Sprintf("migration %s: %s failed: %v", e.Revision, e.Op, e.Err)
}

func (e *MigrationError) Unwrap() error {
	return e.Err
}
