package pipeline

import (
	"context"
	"fmt"

	"github.com/go-viper/mapstructure/v2"

	"github.com/ib-77/ropreader/pkg/rop"
	"github.com/ib-77/ropreader/pkg/rop/solo"
)

// Environment holds the flags every stage reads. It is never modified
// once a run has started.
type Environment struct {
	Upper     bool `mapstructure:"upper"`
	Duplicate bool `mapstructure:"duplicate"`
	Flaky     bool `mapstructure:"flaky"`
}

// DecodeEnvironment builds an Environment from an in-memory map.
// Missing keys stay false and unknown keys are ignored. A value that is
// not a bool is an error.
func DecodeEnvironment(values map[string]any) (Environment, error) {
	var env Environment
	if len(values) == 0 {
		return env, nil
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "mapstructure",
		Result:  &env,
	})
	if err != nil {
		return Environment{}, err
	}
	if err := dec.Decode(values); err != nil {
		return Environment{}, fmt.Errorf("decode environment: %w", err)
	}
	return env, nil
}

// EnvironmentFrom is DecodeEnvironment on the railway.
func EnvironmentFrom(ctx context.Context, values map[string]any) rop.Result[Environment] {
	return solo.Try(ctx, solo.Succeed(values),
		func(_ context.Context, values map[string]any) (Environment, error) {
			return DecodeEnvironment(values)
		})
}
