// Package pipe provides a small fluent Chain[T] for threading a value
// through result-returning stages, unwrapping exactly one level of
// tease.Result between stages. A failure terminates the pipeline: later
// stages are never invoked and the failure is carried to the end.
//
// Highlights:
// - Start/FromValue: create a Chain
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map/Tap: transform or observe the value
// - Or/And: combine alternative and required chains
// - Finally: reduce to a concrete value via success/failure handlers
// - Through: free-function form for a flat list of stages
//
// Type-changing stages use the package-level Then/ThenTry/Map functions,
// since Go methods cannot introduce type parameters.
package pipe
