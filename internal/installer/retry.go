package installer

import (
	"time"

	"binstrap/internal/logger"
)

const (
	retryAttempts     = 3
	retryInitialPause = 2 * time.Second
)

// retryPolicy retries an operation a fixed number of times, doubling
// the pause between attempts. One policy value is shared by the API
// lookups and the asset download so every network operation backs off
// the same way.
type retryPolicy struct {
	attempts int
	pause    time.Duration
	sleep    func(time.Duration)
}

func newRetryPolicy() retryPolicy {
	return retryPolicy{
		attempts: retryAttempts,
		pause:    retryInitialPause,
		sleep:    time.Sleep,
	}
}

// run invokes op until it succeeds or the attempt budget is spent,
// returning the last error. There is no pause after the final attempt.
func (p retryPolicy) run(what string, op func() error) error {
	pause := p.pause
	var err error
	for attempt := 1; attempt <= p.attempts; attempt++ {
		if err = op(); err == nil {
			return nil
		}
		if attempt < p.attempts {
			logger.Warn("[WARN] %s failed (attempt %d/%d): %v. Retrying in %s...\n",
				what, attempt, p.attempts, err, pause)
			p.sleep(pause)
			pause *= 2
		}
	}
	return err
}
