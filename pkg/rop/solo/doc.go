// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T] with a context. They are the railway helpers pipeline callers
// use around a Reader run: validating input, converting (T, error) calls,
// side effects per track and collapsing a result into a value.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Validate/AndValidate/ValidateAll: apply validation producing failure on invalid input
// - Switch: move from Result[In] to Result[Out] (rop.FlatMap with a context)
// - Map: transform successful values (rop.Map with a context)
// - Try: call a function (Out, error) and convert error to failure
// - Tee/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/error handlers
package solo
