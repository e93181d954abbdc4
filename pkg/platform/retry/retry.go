// Package retry provides bounded retry with backoff for transient failures.
//
// It is used only for ledger reads. Transaction submissions are never routed
// through here: a submission whose outcome is unknown may already be committed,
// and retrying it blindly could issue the same credential twice.
package retry

import (
	"context"
	"time"
)

// Policy bounds the number of attempts and the backoff between them.
type Policy struct {
	Attempts int
	Backoff  time.Duration
}

// DefaultPolicy retries twice after the initial attempt with growing backoff.
var DefaultPolicy = Policy{Attempts: 3, Backoff: 250 * time.Millisecond}

// Do runs fn up to p.Attempts times, backing off between attempts while
// retryable reports the error as transient. Context cancellation stops the
// loop immediately and returns ctx.Err().
func Do(ctx context.Context, p Policy, retryable func(error) bool, fn func(ctx context.Context) error) error {
	attempts := p.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			backoff := time.Duration(i) * p.Backoff
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
		}

		err = fn(ctx)
		if err == nil {
			return nil
		}
		if retryable != nil && !retryable(err) {
			return err
		}
	}
	return err
}
