// Package errors provides the error taxonomy for the pipeline engine.
// It implements a structured error type with machine-readable kinds so
// callers can branch on graph-construction failures, exceeded loop
// bounds, and malformed component output without string matching.
package errors
