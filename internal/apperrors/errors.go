package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrNoExchangeRate indicates that a currency conversion could not be resolved
// because one of the currencies has no usable rate entry. Callers must treat
// this as "conversion impossible" and fall back to the original amount, never
// as a hard failure.
var ErrNoExchangeRate = errors.New("no exchange rate available")

// ErrNoAggregate indicates that no aggregate snapshot has been loaded yet.
var ErrNoAggregate = errors.New("aggregate not loaded")
