package retry

import (
	"math/rand"
	"strings"
	"time"

	retrygo "github.com/avast/retry-go/v4"
)

// retryableSignatures are the error fragments that indicate a transient
// upstream failure worth retrying. Everything else propagates immediately.
var retryableSignatures = []string{
	"timeout",
	"timed out",
	"deadline exceeded",
	"rate limit",
	"too many requests",
	"quota",
	"504",
	"503",
	"502",
	"unavailable",
}

// Retryable reports whether an error matches one of the transient upstream
// signatures (timeout, rate-limit, 5xx). Callers also use this after
// exhaustion to map the final error to a "service busy" category.
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, sig := range retryableSignatures {
		if strings.Contains(msg, sig) {
			return true
		}
	}
	return false
}

// Do runs op up to maxAttempts times. Only retryable errors are retried;
// non-retryable errors abort immediately with no delay. Backoff between
// attempts is baseDelay * 2^attempt plus up to one second of jitter.
// On exhaustion the last error is returned unwrapped.
func Do[T any](op func() (T, error), maxAttempts uint, baseDelay time.Duration) (T, error) {
	return retrygo.DoWithData(
		op,
		retrygo.Attempts(maxAttempts),
		retrygo.RetryIf(Retryable),
		retrygo.LastErrorOnly(true),
		retrygo.DelayType(func(n uint, err error, config *retrygo.Config) time.Duration {
			jitter := time.Duration(rand.Float64() * float64(time.Second))
			return baseDelay*(1<<n) + jitter
		}),
	)
}
