package services

import "fmt"

// ValidationError reports missing or invalid required fields. Fields maps each
// offending field name to its message so the UI can flag them independently.
// Fully recoverable by user correction; nothing was written.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}

// UploadError means the object-storage write failed. The submission is aborted
// before any database row exists, so there is nothing to roll back.
type UploadError struct {
	Err error
}

func (e *UploadError) Error() string { return "file upload failed: " + e.Err.Error() }

func (e *UploadError) Unwrap() error { return e.Err }

// PersistenceError means a database insert or update failed. When it occurs
// after a successful upload the uploaded object is orphaned; that gap is
// accepted.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *PersistenceError) Unwrap() error { return e.Err }
