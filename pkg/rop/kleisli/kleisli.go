package kleisli

// Kleisli wraps a function from an environment to an effectful value.
// The zero value has no function and panics when run.
type Kleisli[E, MA any] struct {
	run func(env E) MA
}

// New captures f without calling it.
func New[E, MA any](f func(env E) MA) Kleisli[E, MA] {
	return Kleisli[E, MA]{run: f}
}

// Run calls the wrapped function with env.
func (k Kleisli[E, MA]) Run(env E) MA {
	return k.run(env)
}

// Of ignores the environment and yields lift(v).
func Of[E, A, MA any](lift func(A) MA, v A) Kleisli[E, MA] {
	return New(func(E) MA {
		return lift(v)
	})
}

// Ask yields the environment itself, lifted into the inner effect.
func Ask[E, ME any](lift func(E) ME) Kleisli[E, ME] {
	return New(lift)
}

// Map transforms the eventual value of k with fn.
func Map[E, A, B, MA, MB any](k Kleisli[E, MA],
	mapper func(MA, func(A) B) MB,
	fn func(A) B) Kleisli[E, MB] {

	return New(func(env E) MB {
		return mapper(k.Run(env), fn)
	})
}

// FlatMap runs k, then the Kleisli fn builds from its value, both against
// the same environment. The binder decides whether fn is reached at all.
func FlatMap[E, A, MA, MB any](k Kleisli[E, MA],
	binder func(MA, func(A) MB) MB,
	fn func(A) Kleisli[E, MB]) Kleisli[E, MB] {

	return New(func(env E) MB {
		return binder(k.Run(env), func(v A) MB {
			return fn(v).Run(env)
		})
	})
}

// Local runs k against the environment produced by f.
func Local[E, F, MA any](k Kleisli[F, MA], f func(E) F) Kleisli[E, MA] {
	return New(func(env E) MA {
		return k.Run(f(env))
	})
}
