// Package pipeline is the string pipeline built on reader.ReaderT: three
// stages, each steered by a flag of the shared Environment, chained
// upper -> flaky -> duplicate.
//
// A composed Pipeline is immutable. Run it as often as needed, each time
// with its own Environment.
package pipeline
