// Package errors provides the structured error type used across seqkit.
// Errors carry a machine-readable code, a human-readable message, optional
// details and an optional cause.
package errors
