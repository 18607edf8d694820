package app

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"posture-bot/internal/domain/entity"
)

// AssessBatch оценивает записанную последовательность кадров параллельно.
// Движок не хранит состояния, поэтому кадры независимы; порядок результатов
// совпадает с порядком входа.
func (s *AssessmentService) AssessBatch(ctx context.Context, samples []entity.PoseSample, method entity.Method) ([]*AssessmentOutput, error) {
	results := make([]*AssessmentOutput, len(samples))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, sample := range samples {
		i, sample := i, sample
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = s.Assess(AssessmentInput{Sample: sample, Method: method})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
