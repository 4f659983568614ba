package utils

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var errPermanent = errors.New("permanent")

func TestRetryWithBackoff_Success(t *testing.T) {
	result, err := RetryWithBackoff(context.Background(), 3, 10*time.Millisecond, func() (string, error) {
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", result)
}

func TestRetryWithBackoff_InvalidMaxRetries(t *testing.T) {
	_, err := RetryWithBackoff(context.Background(), 0, time.Millisecond, func() (int, error) {
		return 1, nil
	})
	assert.Error(t, err)
}

func TestRetryWithBackoff_NonRetriableError(t *testing.T) {
	calls := 0
	_, err := RetryWithBackoff(context.Background(), 3, 10*time.Millisecond, func() (string, error) {
		calls++
		return "", errPermanent
	})
	assert.ErrorIs(t, err, errPermanent)
	assert.Equal(t, 1, calls)
}

func TestRetryWithBackoff_RetriableEventualSuccess(t *testing.T) {
	calls := 0
	result, err := RetryWithBackoff(context.Background(), 5, 5*time.Millisecond, func() (string, error) {
		calls++
		if calls < 3 {
			return "", fmt.Errorf("put object: %w", ErrUnavailable)
		}
		return "recovered", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "recovered", result)
	assert.Equal(t, 3, calls)
}

func TestRetryWithBackoff_AllRetriesFail(t *testing.T) {
	calls := 0
	_, err := RetryWithBackoff(context.Background(), 3, 5*time.Millisecond, func() (string, error) {
		calls++
		return "", ErrUnavailable
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, 3, calls)
}

func TestRetryWithBackoff_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RetryWithBackoff(ctx, 5, 10*time.Millisecond, func() (string, error) {
		return "", ErrUnavailable
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsRetriable(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"Nil", nil, false},
		{"Unavailable", ErrUnavailable, true},
		{"WrappedUnavailable", fmt.Errorf("x: %w", ErrUnavailable), true},
		{"NetOpError", &net.OpError{Op: "dial", Err: errors.New("refused")}, true},
		{"Canceled", context.Canceled, false},
		{"GRPCUnavailable", status.Error(codes.Unavailable, "down"), true},
		{"GRPCNotFound", status.Error(codes.NotFound, "missing"), false},
		{"Plain", errPermanent, false},
		{"CircuitOpen", ErrCircuitOpen, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsRetriable(tt.err))
		})
	}
}

func TestCircuitBreaker_ClosedState(t *testing.T) {
	cb := NewCircuitBreaker(3, time.Second)

	err := cb.Execute(func() error { return nil })
	require.NoError(t, err)
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	cb := NewCircuitBreaker(3, time.Second)

	for i := 0; i < 3; i++ {
		_ = cb.Execute(func() error { return ErrUnavailable })
	}
	assert.Equal(t, StateOpen, cb.State())

	err := cb.Execute(func() error { return nil })
	assert.ErrorIs(t, err, ErrCircuitOpen)
}

func TestCircuitBreaker_ResetsAfterTimeout(t *testing.T) {
	cb := NewCircuitBreaker(2, 50*time.Millisecond)

	for i := 0; i < 2; i++ {
		_ = cb.Execute(func() error { return ErrUnavailable })
	}
	require.Equal(t, StateOpen, cb.State())

	time.Sleep(60 * time.Millisecond)

	err := cb.Execute(func() error { return nil })
	require.NoError(t, err)
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_NonRetriableErrorDoesNotCount(t *testing.T) {
	cb := NewCircuitBreaker(2, time.Second)

	for i := 0; i < 5; i++ {
		_ = cb.Execute(func() error { return errPermanent })
	}
	assert.Equal(t, StateClosed, cb.State())
}

func TestRetryWithCircuitBreaker_Success(t *testing.T) {
	cb := NewCircuitBreaker(5, time.Second)
	result, err := RetryWithCircuitBreaker(context.Background(), cb, 3, 10*time.Millisecond, func() (string, error) {
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", result)
}

func TestRetryWithCircuitBreaker_OpenCircuitStops(t *testing.T) {
	cb := NewCircuitBreaker(1, time.Minute)
	_ = cb.Execute(func() error { return ErrUnavailable })

	calls := 0
	_, err := RetryWithCircuitBreaker(context.Background(), cb, 3, time.Millisecond, func() (string, error) {
		calls++
		return "ok", nil
	})
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, 0, calls)
}
