package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mattermost-notifier/internal/mocks"
)

type countingJob struct {
	calls int
	err   error
}

func (j *countingJob) Run(ctx context.Context) error {
	j.calls++
	return j.err
}

func TestApp_RunInvalidSchedule(t *testing.T) {
	job := &countingJob{}
	a := New(job, mocks.NewQuietLogger(), "not a schedule")

	require.Error(t, a.Run(context.Background()))
	assert.Zero(t, job.calls)
}

type signalJob struct {
	ran chan struct{}
}

func (j *signalJob) Run(ctx context.Context) error {
	j.ran <- struct{}{}
	return nil
}

func TestApp_RunsImmediatelyAndStops(t *testing.T) {
	job := &signalJob{ran: make(chan struct{}, 1)}
	a := New(job, mocks.NewQuietLogger(), "0 0 1 1 *")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	select {
	case <-job.ran:
	case <-time.After(5 * time.Second):
		t.Fatal("job did not run on start")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("app did not stop after cancel")
	}
}

func TestApp_FirstRunFailureIsLogged(t *testing.T) {
	boom := errors.New("boom")
	job := &countingJob{err: boom}
	logger := mocks.NewQuietLogger()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := New(job, logger, "@every 1h")
	require.NoError(t, a.Run(ctx))

	assert.Equal(t, 1, job.calls)
	logger.AssertCalled(t, "Error", mock.Anything, "initial digest run failed", []any{"error", boom})
}
