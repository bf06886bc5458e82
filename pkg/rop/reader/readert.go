package reader

import (
	"github.com/ib-77/ropreader/pkg/rop"
	"github.com/ib-77/ropreader/pkg/rop/kleisli"
)

// ReaderT reads E and produces a rop.Result.
type ReaderT[E, A any] = kleisli.Kleisli[E, rop.Result[A]]

// Of ignores the environment and succeeds with v.
func Of[E, A any](v A) ReaderT[E, A] {
	return kleisli.Of[E](rop.Of[A], v)
}

// Fail ignores the environment and fails with err.
func Fail[E, A any](err error) ReaderT[E, A] {
	return kleisli.New(func(E) rop.Result[A] {
		return rop.Fail[A](err)
	})
}

// AskT succeeds with the environment.
func AskT[E any]() ReaderT[E, E] {
	return kleisli.Ask(rop.Of[E])
}

func Map[E, A, B any](r ReaderT[E, A], fn func(A) B) ReaderT[E, B] {
	return kleisli.Map(r, rop.Map[A, B], fn)
}

// FlatMap chains fn after r. A failure from r means fn is never called.
func FlatMap[E, A, B any](r ReaderT[E, A], fn func(A) ReaderT[E, B]) ReaderT[E, B] {
	return kleisli.FlatMap(r, rop.FlatMap[A, B], fn)
}

// Compose joins two stages into one (f >=> g).
func Compose[E, A, B, C any](f func(A) ReaderT[E, B], g func(B) ReaderT[E, C]) func(A) ReaderT[E, C] {
	return func(v A) ReaderT[E, C] {
		return FlatMap(f(v), g)
	}
}

// Chain flat-maps stages onto start from left to right.
func Chain[E, A any](start ReaderT[E, A], stages ...func(A) ReaderT[E, A]) ReaderT[E, A] {
	r := start
	for _, stage := range stages {
		r = FlatMap(r, stage)
	}
	return r
}
