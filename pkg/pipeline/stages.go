package pipeline

import (
	"errors"
	"strings"

	"github.com/ib-77/ropreader/pkg/rop"
	"github.com/ib-77/ropreader/pkg/rop/reader"
)

// ErrFailed is what FailIfFlaky fails with.
var ErrFailed = errors.New("failed")

// Pipeline is a string computation over Environment that may fail.
type Pipeline = reader.ReaderT[Environment, string]

// Stage is one step of a Pipeline.
type Stage = func(input string) Pipeline

func ToUpperIfConfigured(input string) Pipeline {
	return reader.Asks(func(env Environment) rop.Result[string] {
		if env.Upper {
			return rop.Success(strings.ToUpper(input))
		}
		return rop.Success(input)
	})
}

func FailIfFlaky(input string) Pipeline {
	return reader.Asks(func(env Environment) rop.Result[string] {
		if env.Flaky {
			return rop.Fail[string](ErrFailed)
		}
		return rop.Success(input)
	})
}

func DuplicateIfConfigured(input string) Pipeline {
	return reader.Asks(func(env Environment) rop.Result[string] {
		if env.Duplicate {
			return rop.Success(input + ":" + input)
		}
		return rop.Success(input)
	})
}

// Stages lists the stages in the order Compose chains them.
func Stages() []Stage {
	return []Stage{ToUpperIfConfigured, FailIfFlaky, DuplicateIfConfigured}
}

// Compose lifts input and chains upper, flaky and duplicate onto it.
// Nothing runs until the returned Pipeline is run.
func Compose(input string) Pipeline {
	return reader.Chain(reader.Of[Environment](input), Stages()...)
}
