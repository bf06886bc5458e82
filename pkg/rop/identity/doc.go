// Package identity provides Identity[T], the effect that does nothing.
//
// It exists so the Kleisli transformer can run over "no effect" with the
// same code it uses for Result. Map and FlatMap apply the function to the
// wrapped value and return its output directly, without re-wrapping it.
// A Reader built on Identity therefore lets Ask followed by Map hand back
// whatever the mapping function returns (for example a rop.Result).
package identity
