package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var errBoom = errors.New("boom")

func fast() []Option {
	return []Option{WithBaseDelay(time.Millisecond), WithMaxDelay(2 * time.Millisecond)}
}

func TestDo_SucceedsAfterFailures(t *testing.T) {
	calls := 0
	err := Do(context.Background(), func() error {
		calls++
		if calls < 3 {
			return errBoom
		}
		return nil
	}, fast()...)

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_MaxAttempts(t *testing.T) {
	calls := 0
	err := Do(context.Background(), func() error {
		calls++
		return errBoom
	}, append(fast(), WithMaxAttempts(2))...)

	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, 2, calls)
}

func TestDo_Permanent(t *testing.T) {
	calls := 0
	err := Do(context.Background(), func() error {
		calls++
		return Permanent(errBoom)
	}, fast()...)

	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, 1, calls)
	assert.NoError(t, Permanent(nil))
}

func TestDo_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Do(ctx, func() error { return errBoom }, WithBaseDelay(time.Second))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCalculateBackoff(t *testing.T) {
	assert.Equal(t, time.Second, calculateBackoff(0, time.Second, 30*time.Second))
	assert.Equal(t, 4*time.Second, calculateBackoff(2, time.Second, 30*time.Second))
	assert.Equal(t, 30*time.Second, calculateBackoff(10, time.Second, 30*time.Second))
}
