package core

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultTaskTimeout bounds how long the dispatcher waits for a single task.
// Without a bound a hung scorer would hang the whole run; an unresponsive
// worker is treated the same as a failed one instead.
const DefaultTaskTimeout = 30 * time.Second

// Dispatcher executes resolved tasks, one goroutine per task, and guarantees
// exactly one WorkResult per task: scorer errors, panics, and timeouts all
// yield the sentinel result with the task's real name and weight.
type Dispatcher struct {
	// Timeout applies per task; zero or negative means DefaultTaskTimeout.
	Timeout time.Duration
	// Warn receives human-readable failure notices, typically fanned into
	// the run's log collector.
	Warn   func(format string, args ...any)
	Logger *zap.Logger
}

// Run dispatches every task and blocks until exactly one result per task has
// been collected and every worker goroutine has been joined. Results arrive
// in completion order; the caller's aggregation must not depend on it.
func (d *Dispatcher) Run(ctx context.Context, tasks []ResolvedTask) []WorkResult {
	if len(tasks) == 0 {
		return nil
	}

	results := make(chan WorkResult, len(tasks))
	var wg sync.WaitGroup
	wg.Add(len(tasks))
	for _, task := range tasks {
		go func(task ResolvedTask) {
			defer wg.Done()
			results <- d.runTask(ctx, task)
		}(task)
	}

	// The result count is fixed at dispatch time, so collection is not an
	// open-ended wait.
	collected := make([]WorkResult, 0, len(tasks))
	for range tasks {
		collected = append(collected, <-results)
	}
	wg.Wait()
	return collected
}

// runTask invokes the scorer inside a supervised goroutine. The invocation
// goroutine owns panic recovery; runTask owns the timeout. A timed-out
// invocation is abandoned: its late result lands in a buffered channel and
// is discarded.
func (d *Dispatcher) runTask(ctx context.Context, task ResolvedTask) WorkResult {
	timeout := d.Timeout
	if timeout <= 0 {
		timeout = DefaultTaskTimeout
	}
	taskCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	sentinel := WorkResult{
		Key:      task.Key,
		TaskName: task.Name,
		Weight:   task.Weight,
		Failed:   true,
	}

	done := make(chan WorkResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				d.warnf("[WORKER CRASH] %s: %v", task.Name, r)
				crashed := sentinel
				crashed.Elapsed = time.Since(start)
				done <- crashed
			}
		}()

		score, elapsed, err := task.Func(taskCtx, task.Args)
		if err != nil {
			d.warnf("[WORKER ERROR] %s: %v", task.Name, err)
			failed := sentinel
			failed.Elapsed = time.Since(start)
			done <- failed
			return
		}
		if elapsed <= 0 {
			elapsed = time.Since(start)
		}
		done <- WorkResult{
			Key:      task.Key,
			TaskName: task.Name,
			Score:    score,
			Elapsed:  elapsed,
			Weight:   task.Weight,
		}
	}()

	select {
	case result := <-done:
		if d.Logger != nil {
			d.Logger.Debug("task finished",
				zap.String("task", task.Key),
				zap.Bool("failed", result.Failed),
				zap.Duration("elapsed", result.Elapsed))
		}
		return result
	case <-taskCtx.Done():
		d.warnf("[WORKER TIMEOUT] %s: no result after %s", task.Name, timeout)
		sentinel.Elapsed = time.Since(start)
		return sentinel
	}
}

func (d *Dispatcher) warnf(format string, args ...any) {
	if d.Warn != nil {
		d.Warn(format, args...)
	}
}
