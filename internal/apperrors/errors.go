package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrRateNotFound indicates that no normalized rate exists for a currency in a
// zone, either current or for the requested date. A missing rate is a normal
// business condition that callers must surface gracefully.
var ErrRateNotFound = errors.New("rate not found")

// ErrZoneInactive indicates that the target zone is disabled; ingestion must
// not proceed for it.
var ErrZoneInactive = errors.New("zone is inactive")

// ErrNoRawData indicates that a source has no raw records to process.
var ErrNoRawData = errors.New("no raw data to process")

// ErrConflict indicates a transient transactional conflict (serialization
// failure or deadlock). Safe to retry once; a second failure is a real error.
var ErrConflict = errors.New("transactional conflict")
