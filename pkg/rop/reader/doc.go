// Package reader specialises kleisli.Kleisli for the two inner effects this
// module ships.
//
// - Reader[E, A]:  Kleisli over identity.Identity, plain environment reading
// - ReaderT[E, A]: Kleisli over rop.Result, environment reading that can fail
//
// Stages are usually written with Asks, which maps over the Identity Reader's
// Ask. Because Identity unwraps on map, the stage runs straight to whatever
// the function returns, typically a rop.Result, so it can be used directly
// as a ReaderT step:
//
//	trim := func(s string) reader.ReaderT[Config, string] {
//		return reader.Asks(func(c Config) rop.Result[string] {
//			return rop.Success(strings.TrimSpace(s))
//		})
//	}
//	p := reader.Chain(reader.Of[Config]("  hi "), trim)
//	res := p.Run(cfg)
package reader
