package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the operation conflicts with existing state,
// e.g. an overlapping lease interval or an already settled period.
var ErrConflict = errors.New("conflicting state")

// ErrNoActiveLease indicates that a sale was attempted on a shelf with no
// lease agreement active on the sale date.
var ErrNoActiveLease = errors.New("no active lease agreement for shelf")
