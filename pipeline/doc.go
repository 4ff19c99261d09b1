// Package pipeline implements a synchronous dataflow execution engine:
// a directed graph of named components connected by typed input/output
// sockets, scheduled one component at a time until no socket holds a
// pending value.
//
// The graph may contain cycles. Components on a cycle form a loop group
// and are bounded by the pipeline's max-loops setting; every other
// component executes at most once per run. Scheduling is driven purely by
// data dependencies recomputed after every execution, so registration
// order never overrides dependency order, and traces are deterministic
// for identical inputs.
//
// Values flow between sockets by reference, never copied: when an output
// fans out to several inputs, every consumer observes the same underlying
// value, and in-place mutation by one consumer is visible to the others.
// This aliasing is part of the engine's contract and is asserted by its
// tests; consumers that need isolation must copy on their side.
package pipeline
