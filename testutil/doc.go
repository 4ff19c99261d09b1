// Package testutil provides small arithmetic and string components plus a
// run recorder. They exist to exercise pipelines in tests and examples:
// branching, loops, variadic merges, defaults, and stateful components are
// all covered by combining them.
package testutil
