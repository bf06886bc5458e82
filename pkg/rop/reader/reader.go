package reader

import (
	"github.com/ib-77/ropreader/pkg/rop/identity"
	"github.com/ib-77/ropreader/pkg/rop/kleisli"
)

// Reader reads E with no other effect.
type Reader[E, A any] = kleisli.Kleisli[E, identity.Identity[A]]

func Ask[E any]() Reader[E, E] {
	return kleisli.Ask(identity.Of[E])
}

// Asks is Ask mapped with f. Identity unwraps on map, so the result runs
// straight to f(env).
func Asks[E, MA any](f func(env E) MA) kleisli.Kleisli[E, MA] {
	return kleisli.Map(Ask[E](), identity.Map[E, MA], f)
}
