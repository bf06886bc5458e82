package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ib-77/ropreader/pkg/rop"
	"github.com/ib-77/ropreader/pkg/rop/solo"
)

// Run runs p against env and logs the outcome.
func Run(ctx context.Context, logger *slog.Logger, p Pipeline, env Environment) rop.Result[string] {
	logger.DebugContext(ctx, "running pipeline",
		slog.Bool("upper", env.Upper),
		slog.Bool("duplicate", env.Duplicate),
		slog.Bool("flaky", env.Flaky),
	)

	res := p.Run(env)
	return solo.DoubleTee(ctx, res,
		func(ctx context.Context, out string) {
			logger.InfoContext(ctx, "pipeline succeeded",
				slog.String("result_id", res.Id().String()),
				slog.String("output", out),
			)
		},
		func(ctx context.Context, err error) {
			logger.WarnContext(ctx, "pipeline failed",
				slog.String("result_id", res.Id().String()),
				slog.Any("error", err),
			)
		})
}

// Describe renders res as Success(value) or Failure(error).
func Describe(ctx context.Context, res rop.Result[string]) string {
	return solo.Finally(ctx, res,
		func(_ context.Context, out string) string {
			return fmt.Sprintf("Success(%s)", out)
		},
		func(_ context.Context, err error) string {
			return fmt.Sprintf("Failure(%v)", err)
		})
}
