// Package analyzer implements the mock durian ripeness analysis: a seeded
// hash of the image's data URL drives the ripeness score, the simulated
// 18-channel spectrum and a five day forecast.
package analyzer

import (
	"context"
	"time"

	"go.uber.org/zap"

	"spectrox/models"
)

const (
	// SeedLength is how many leading UTF-16 units of the input feed the hash.
	SeedLength = 100

	// DefaultDelay emulates the latency of a remote analysis call.
	DefaultDelay = 700 * time.Millisecond

	TextureDescription = "ผิวเรียบ มีความนุ่มปานกลาง"
)

// Analyzer runs analyses. The zero value is not usable; call New.
type Analyzer struct {
	delay  time.Duration
	jitter Jitter
	log    *zap.SugaredLogger
}

type Option func(*Analyzer)

// WithDelay sets the artificial latency. Zero disables it.
func WithDelay(d time.Duration) Option {
	return func(a *Analyzer) { a.delay = d }
}

// WithJitter replaces the spectrum noise source.
func WithJitter(j Jitter) Option {
	return func(a *Analyzer) { a.jitter = j }
}

func WithLogger(l *zap.SugaredLogger) Option {
	return func(a *Analyzer) { a.log = l }
}

func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		delay:  DefaultDelay,
		jitter: NewUniformJitter(0),
		log:    zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// BaseRipeness is the ripeness score for a seed, in [30, 99].
func BaseRipeness(seed string) int {
	return 30 + Hash(seed, 70)
}

// Analyze waits out the artificial latency and then derives the result from
// the first SeedLength units of input. The wait ends early only when ctx is
// done, in which case a KindTimeout error is returned.
func (a *Analyzer) Analyze(ctx context.Context, input string) (*models.AnalysisResult, error) {
	if a.delay > 0 {
		timer := time.NewTimer(a.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, newError(KindTimeout, "analysis cancelled", ctx.Err())
		}
	}

	result := Compute(input, a.jitter)
	a.log.Debugw("analysis computed",
		"ripeness", result.RipenessPercentage,
		"status", result.Status,
		"input_len", len(input))
	return result, nil
}

// Compute is the synchronous core of Analyze.
func Compute(input string, jitter Jitter) *models.AnalysisResult {
	seed := seedPrefix(input, SeedLength)
	base := BaseRipeness(seed)

	return &models.AnalysisResult{
		RipenessPercentage: base,
		Status:             Bucket(base).StatusLabel(),
		TextureDescription: TextureDescription,
		Spectrum:           Synthesize(seed, base, jitter),
		Forecast:           Forecast(seed, base),
	}
}
