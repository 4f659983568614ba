package utils

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net"
	"sync"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrUnavailable marks an error from a dependency that is worth retrying.
var ErrUnavailable = errors.New("dependency unavailable")

// ErrCircuitOpen is returned without calling the dependency while the
// breaker is open. It still reads as ErrUnavailable to callers.
var ErrCircuitOpen = fmt.Errorf("circuit breaker is open: %w", ErrUnavailable)

func IsRetriable(err error) bool {
	switch {
	case err == nil, errors.Is(err, ErrCircuitOpen), errors.Is(err, context.Canceled):
		return false
	case errors.Is(err, ErrUnavailable):
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	if s, ok := status.FromError(err); ok {
		return s.Code() == codes.Unavailable
	}
	return false
}

// backoffDelay doubles base per attempt and adds up to base of jitter.
func backoffDelay(attempt int, base time.Duration) time.Duration {
	jitter := time.Duration(rand.Int63n(int64(base))) //nolint:gosec // jitter doesn't need crypto rand
	return base<<attempt + jitter
}

// RetryWithBackoff calls fn up to maxRetries times while it fails with a
// retriable error.
func RetryWithBackoff[T any](
	ctx context.Context,
	maxRetries int,
	baseDelay time.Duration,
	fn func() (T, error),
) (T, error) {
	var zero T
	if maxRetries <= 0 {
		return zero, fmt.Errorf("maxRetries must be > 0, got %d", maxRetries)
	}
	if baseDelay <= 0 {
		baseDelay = time.Millisecond
	}

	var lastErr error
	for attempt := range maxRetries {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}
		if !IsRetriable(err) {
			return zero, err
		}
		lastErr = err

		if attempt == maxRetries-1 {
			break
		}
		timer := time.NewTimer(backoffDelay(attempt, baseDelay))
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, ctx.Err()
		case <-timer.C:
		}
	}
	return zero, fmt.Errorf("after %d attempts: %w", maxRetries, lastErr)
}

type CircuitState int

const (
	StateClosed CircuitState = iota
	StateOpen
	StateHalfOpen
)

// CircuitBreaker opens after failureThreshold consecutive retriable
// failures and lets a single trial call through once resetTimeout passes.
type CircuitBreaker struct {
	mu               sync.Mutex
	state            CircuitState
	failures         int
	failureThreshold int
	resetTimeout     time.Duration
	openedAt         time.Time
	now              func() time.Time
}

func NewCircuitBreaker(failureThreshold int, resetTimeout time.Duration) *CircuitBreaker {
	if failureThreshold <= 0 {
		failureThreshold = 1
	}
	return &CircuitBreaker{
		state:            StateClosed,
		failureThreshold: failureThreshold,
		resetTimeout:     resetTimeout,
		now:              time.Now,
	}
}

func (cb *CircuitBreaker) State() CircuitState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

func (cb *CircuitBreaker) Execute(fn func() error) error {
	if !cb.allow() {
		return ErrCircuitOpen
	}
	err := fn()
	cb.record(err)
	return err
}

func (cb *CircuitBreaker) allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	if cb.state != StateOpen {
		return true
	}
	if cb.now().Sub(cb.openedAt) > cb.resetTimeout {
		cb.state = StateHalfOpen
		return true
	}
	return false
}

// record counts only retriable failures; a caller mistake says nothing
// about the dependency's health.
func (cb *CircuitBreaker) record(err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	switch {
	case err == nil:
		cb.failures = 0
		cb.state = StateClosed
	case IsRetriable(err):
		cb.failures++
		if cb.state == StateHalfOpen || cb.failures >= cb.failureThreshold {
			cb.state = StateOpen
			cb.openedAt = cb.now()
		}
	}
}

// RetryWithCircuitBreaker retries fn through cb. An open circuit ends the
// retries at once.
func RetryWithCircuitBreaker[T any](
	ctx context.Context,
	cb *CircuitBreaker,
	maxRetries int,
	baseDelay time.Duration,
	fn func() (T, error),
) (T, error) {
	return RetryWithBackoff(ctx, maxRetries, baseDelay, func() (T, error) {
		var result T
		err := cb.Execute(func() error {
			var fnErr error
			result, fnErr = fn()
			return fnErr
		})
		return result, err
	})
}
