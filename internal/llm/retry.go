package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// retryClass sorts provider errors by how the retry loop should treat them.
type retryClass int

const (
	// retryNever: the caller's context ended or the request itself is
	// misconfigured. Trying again cannot change the outcome.
	retryNever retryClass = iota
	// retryOnce: the model produced schema-invalid output. One more
	// sample is worth the tokens; repeated failures suggest the prompt
	// or schema is at fault.
	retryOnce
	// retryTransient: rate limits, 5xx, network errors.
	retryTransient
)

func classifyForRetry(err error) retryClass {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return retryNever
	}
	var truncated *ErrMaxTokensExceeded
	if errors.As(err, &truncated) {
		return retryNever
	}
	var invalid *ErrInvalidResponse
	if errors.As(err, &invalid) {
		return retryOnce
	}
	return retryTransient
}

// retryingProvider re-issues failed requests with exponential backoff.
// Feedback generation is interactive (a child is waiting on the answer),
// so attempts stay few and waits stay short; the service falls back to
// template text once the budget is spent.
type retryingProvider struct {
	next Provider
	cfg  RetryConfig
}

// WithRetry wraps a Provider with the retry policy in cfg.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retryingProvider{next: p, cfg: cfg}
}

func (r *retryingProvider) ModelID() string { return r.next.ModelID() }

func (r *retryingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	sampledAgain := false

	for attempt := 0; ; attempt++ {
		resp, err := r.next.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}

		switch classifyForRetry(err) {
		case retryNever:
			return nil, err
		case retryOnce:
			if sampledAgain {
				return nil, err
			}
			sampledAgain = true
		}

		if attempt >= r.cfg.MaxAttempts-1 {
			return nil, err
		}

		timer := time.NewTimer(retryDelay(r.cfg, attempt, err))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}

// retryDelay picks the wait before the next attempt. A rate-limit hint
// from the provider wins outright; otherwise the delay grows by
// cfg.Multiplier per attempt, capped at cfg.MaxWait, with ±20% jitter so
// parallel callers do not re-arrive in lockstep.
func retryDelay(cfg RetryConfig, attempt int, err error) time.Duration {
	var limited *ErrRateLimit
	if errors.As(err, &limited) && limited.RetryAfter > 0 {
		return limited.RetryAfter
	}

	wait := float64(cfg.InitialWait) * math.Pow(cfg.Multiplier, float64(attempt))
	wait = math.Min(wait, float64(cfg.MaxWait))
	wait *= 1 + 0.2*(2*rand.Float64()-1)

	return time.Duration(math.Max(wait, 0))
}
