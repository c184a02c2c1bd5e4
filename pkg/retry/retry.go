// Package retry retries transient failures with capped exponential backoff.
// Every error is retried unless it is wrapped with Permanent.
package retry

import (
	"context"
	"errors"
	"time"

	goretry "github.com/sethvargo/go-retry"
)

type Operation = func() error

type Config struct {
	MaxRetries   int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	// Jitter shifts each wait by up to +/- this amount.
	Jitter time.Duration
}

func NewDefaultConfig() *Config {
	return &Config{
		MaxRetries:   5,
		InitialDelay: 300 * time.Millisecond,
		MaxDelay:     20 * time.Second,
		Jitter:       50 * time.Millisecond,
	}
}

type permanentError struct {
	err error
}

func (p *permanentError) Error() string { return p.err.Error() }
func (p *permanentError) Unwrap() error { return p.err }

// Permanent marks err as not worth retrying. Do returns the unwrapped err.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

type Retrier struct {
	config *Config
}

func NewRetrier(config *Config) *Retrier {
	return &Retrier{config: config}
}

func NewDefaultRetrier() *Retrier {
	return NewRetrier(NewDefaultConfig())
}

// backoff is stateful, so each Do call gets a fresh one.
func (r *Retrier) backoff() goretry.Backoff {
	initial := r.config.InitialDelay
	if initial <= 0 {
		initial = time.Millisecond
	}

	b := goretry.NewExponential(initial)
	if r.config.MaxDelay > 0 {
		b = goretry.WithCappedDuration(r.config.MaxDelay, b)
	}
	if r.config.Jitter > 0 {
		b = goretry.WithJitter(r.config.Jitter, b)
	}
	return goretry.WithMaxRetries(uint64(max(r.config.MaxRetries, 0)), b)
}

// Do runs op until it succeeds, returns a Permanent error, exhausts the
// retries or ctx is done. A cancelled ctx wins over the last op error.
func (r *Retrier) Do(ctx context.Context, op Operation) error {
	return goretry.Do(ctx, r.backoff(), func(context.Context) error {
		err := op()
		if err == nil {
			return nil
		}
		var perm *permanentError
		if errors.As(err, &perm) {
			return perm.err
		}
		return goretry.RetryableError(err)
	})
}
