// Package errors provides structured error handling with error codes for simple-facts.
//
// This package standardizes error handling across all services with typed error codes,
// structured error details, and automatic HTTP status code mapping.
//
// # Basic Usage
//
// Creating errors with codes:
//
//	import "github.com/tendant/simple-facts/pkg/errors"
//
//	// Create a simple error
//	err := errors.New(errors.ErrCodeRoleNotFound, "role not found")
//
//	// Create error with formatted message
//	err := errors.Newf(errors.ErrCodeInvalidInput, "invalid role name: %s", name)
//
//	// Wrap an existing error
//	err := errors.Wrap(dbErr, errors.ErrCodeInternal, "failed to query database")
//
//	// Use convenience constructors
//	err := errors.NotFound("role", roleID)
//	err := errors.AlreadyExists("role", name)
//
// # HTTP Mapping
//
// API handlers translate structured errors into transport responses:
//
//	status := errors.MapErrorCodeToHTTPStatus(errors.GetCode(err))
//
// Error codes map to stable HTTP status codes (404 for not-found codes,
// 409 for conflicts, 400 for validation failures, 500 otherwise), so the
// services never deal with HTTP concerns directly.
package errors
