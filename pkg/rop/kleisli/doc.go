// Package kleisli provides Kleisli[E, MA], a deferred computation that reads
// an environment E and produces a value wrapped in an inner effect MA
// (identity.Identity[A] or rop.Result[A]).
//
// Go has no higher-kinded types, so the inner effect is handed in as plain
// functions instead of being named by the type:
// - lift:   func(A) MA               the effect's "of"
// - mapper: func(MA, func(A) B) MB   the effect's "map"
// - binder: func(MA, func(A) MB) MB  the effect's "flatMap"
//
// Nothing runs until Run is called. The environment given to Run reaches
// every step of a chain unchanged, and whether a chain keeps going is up to
// the inner effect's binder. For rop.FlatMap a failure stops the chain.
//
// Of, Map and FlatMap satisfy the monad laws:
// - left identity:  FlatMap(Of(v), f) ~ f(v)
// - right identity: FlatMap(k, Of) ~ k
// - associativity:  FlatMap(FlatMap(k, f), g) ~ FlatMap(k, v -> FlatMap(f(v), g))
package kleisli
