package core

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"modelscore/pkg/runlog"
)

// Engine wires the parser, registry, resolver, dispatcher, and aggregator
// for a single run. The registry and parameter store are read-only once Run
// starts; nothing in the engine persists across runs.
type Engine struct {
	Registry *Registry
	Params   Params
	// Log receives parse warnings and worker failure notices alongside
	// whatever the scorers themselves post. It must be running before Run
	// is called; the engine does not close it.
	Log    *runlog.Collector
	Logger *zap.Logger
	// TaskTimeout bounds each worker; zero means DefaultTaskTimeout.
	TaskTimeout time.Duration
}

// Run parses the task document, dispatches every valid task concurrently,
// and aggregates the results. Task-document errors (bad lines, unknown
// functions, arity mismatches, missing parameters) drop the offending task
// and continue; execution failures are folded in as sentinel scores; only
// systemic failures return an error.
func (e *Engine) Run(ctx context.Context, tasks io.Reader) (RunReport, error) {
	if e.Registry == nil {
		return RunReport{}, errors.New("core: registry is required")
	}
	if e.Log == nil {
		return RunReport{}, errors.New("core: log collector is required")
	}
	logger := e.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	warn := func(format string, args ...any) {
		e.Log.Postf("[WARNING] "+format, args...)
	}

	descriptors, err := ParseTasks(tasks, e.Registry, warn)
	if err != nil {
		return RunReport{}, err
	}

	resolved := make([]ResolvedTask, 0, len(descriptors))
	for _, desc := range descriptors {
		task, err := Resolve(desc, e.Registry, e.Params)
		if err != nil {
			warn("Skipped line %d: %v", desc.Line, err)
			continue
		}
		resolved = append(resolved, task)
	}
	resolved = AssignKeys(resolved)

	dispatcher := &Dispatcher{
		Timeout: e.TaskTimeout,
		Warn:    warn,
		Logger:  logger,
	}

	start := time.Now()
	results := dispatcher.Run(ctx, resolved)
	window := time.Since(start)

	report := Aggregate(results, window)
	report.RunID = uuid.NewString()

	logger.Info("run complete",
		zap.String("run_id", report.RunID),
		zap.Int("parsed", len(descriptors)),
		zap.Int("dispatched", len(resolved)),
		zap.Float64("net_score", report.NetScore),
		zap.Duration("window", window))
	return report, nil
}
