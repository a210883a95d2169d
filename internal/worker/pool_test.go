package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingJob struct {
	runs atomic.Int64
	done chan struct{}
}

func (j *countingJob) Process(_ context.Context) error {
	j.runs.Add(1)
	select {
	case j.done <- struct{}{}:
	default:
	}
	return nil
}

func TestPoolProcessesJobs(t *testing.T) {
	pool := NewPool(2, 10)
	pool.Start()
	defer pool.Stop()

	job := &countingJob{done: make(chan struct{}, 10)}
	for i := 0; i < 5; i++ {
		pool.Enqueue(job)
	}

	timeout := time.After(time.Second)
	for seen := 0; seen < 5; seen++ {
		select {
		case <-job.done:
		case <-timeout:
			t.Fatal("Timeout waiting for jobs to run")
		}
	}

	assert.GreaterOrEqual(t, job.runs.Load(), int64(5))
}

type failingJob struct {
	done chan struct{}
}

func (j *failingJob) Process(_ context.Context) error {
	select {
	case j.done <- struct{}{}:
	default:
	}
	return assert.AnError
}

func TestPoolSurvivesJobErrors(t *testing.T) {
	pool := NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	bad := &failingJob{done: make(chan struct{}, 1)}
	pool.Enqueue(bad)

	select {
	case <-bad.done:
	case <-time.After(time.Second):
		t.Fatal("Timeout waiting for failing job")
	}

	// The worker keeps serving after an error.
	ok := &countingJob{done: make(chan struct{}, 1)}
	pool.Enqueue(ok)
	select {
	case <-ok.done:
	case <-time.After(time.Second):
		t.Fatal("Worker did not recover after job error")
	}
}
