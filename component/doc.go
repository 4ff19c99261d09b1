// Package component defines the contract between the pipeline engine and
// the processing components it schedules: named, typed input and output
// sockets plus a single invocation entry point.
//
// The engine never looks inside a component. It only reads the declared
// sockets to wire connections and resolve readiness, calls Run with a
// socket-name-to-value map, and validates the returned map against the
// declared output sockets.
package component
