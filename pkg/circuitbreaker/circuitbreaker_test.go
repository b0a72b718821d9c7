package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDown = errors.New("backend down")

type clock struct{ t time.Time }

func (c *clock) now() time.Time          { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func fail(context.Context) error    { return errDown }
func succeed(context.Context) error { return nil }

func TestBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	clk := &clock{t: time.Unix(0, 0)}
	var transitions []string
	b := New("redis",
		WithFailureThreshold(2),
		WithTimeout(time.Second),
		WithOnStateChange(func(name string, from, to State) {
			transitions = append(transitions, name+":"+from.String()+"->"+to.String())
		}),
		withClock(clk.now),
	)
	ctx := context.Background()

	assert.ErrorIs(t, b.Execute(ctx, fail), errDown)
	assert.Equal(t, StateClosed, b.State())
	assert.ErrorIs(t, b.Execute(ctx, fail), errDown)
	assert.Equal(t, StateOpen, b.State())

	calls := 0
	err := b.Execute(ctx, func(context.Context) error { calls++; return nil })
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.True(t, IsOpen(err))
	assert.Zero(t, calls)

	clk.advance(time.Second)
	require.NoError(t, b.Execute(ctx, succeed))
	assert.Equal(t, StateClosed, b.State())

	assert.Equal(t, []string{
		"redis:closed->open",
		"redis:open->half-open",
		"redis:half-open->closed",
	}, transitions)
}

func TestBreaker_FailedProbeReopens(t *testing.T) {
	clk := &clock{t: time.Unix(0, 0)}
	b := New("postgres", WithFailureThreshold(1), WithTimeout(time.Second), withClock(clk.now))
	ctx := context.Background()

	_ = b.Execute(ctx, fail)
	clk.advance(time.Second)
	assert.ErrorIs(t, b.Execute(ctx, fail), errDown)
	assert.Equal(t, StateOpen, b.State())
	assert.ErrorIs(t, b.Execute(ctx, succeed), ErrCircuitOpen)
}

func TestBreaker_SuccessResetsFailureStreak(t *testing.T) {
	b := New("redis", WithFailureThreshold(2))
	ctx := context.Background()

	_ = b.Execute(ctx, fail)
	_ = b.Execute(ctx, succeed)
	_ = b.Execute(ctx, fail)
	assert.Equal(t, StateClosed, b.State())

	c := b.Counts()
	assert.Equal(t, 3, c.Requests)
	assert.Equal(t, 2, c.TotalFailures)
	assert.Equal(t, 1, c.ConsecutiveFailures)
}

func TestBreaker_IgnoresCancellation(t *testing.T) {
	b := New("redis", WithFailureThreshold(1))
	err := b.Execute(context.Background(), func(context.Context) error { return context.Canceled })
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StateClosed, b.State())
}

func TestBreaker_CustomIsFailure(t *testing.T) {
	b := New("redis", WithFailureThreshold(1), WithIsFailure(func(error) bool { return false }))
	_ = b.Execute(context.Background(), fail)
	assert.Equal(t, StateClosed, b.State())
	assert.Equal(t, "redis", b.Name())
}
