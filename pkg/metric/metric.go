// Package metric holds the scoring functions dispatched by the engine. Each
// metric receives its arguments positionally from the run's parameter store,
// logs through the shared collector only, and reports failure by returning
// an error, which the dispatcher turns into the sentinel score.
package metric

import (
	"fmt"
	"strconv"

	"modelscore/pkg/runlog"
)

// Verbosity levels carried through the parameter store.
const (
	Silent = 0
	Info   = 1
	Debug  = 2
)

// Parameter-store values are opaque; each metric coerces what it needs. A
// mismatch is an ordinary execution failure, not a run-level error.

func stringArg(args []any, i int, name string) (string, error) {
	if i >= len(args) {
		return "", fmt.Errorf("metric: missing argument %q", name)
	}
	s, ok := args[i].(string)
	if !ok {
		return "", fmt.Errorf("metric: argument %q: want string, got %T", name, args[i])
	}
	return s, nil
}

func intArg(args []any, i int, name string) (int, error) {
	if i >= len(args) {
		return 0, fmt.Errorf("metric: missing argument %q", name)
	}
	switch v := args[i].(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("metric: argument %q: %w", name, err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("metric: argument %q: want int, got %T", name, args[i])
	}
}

func floatArg(args []any, i int, name string) (float64, error) {
	if i >= len(args) {
		return 0, fmt.Errorf("metric: missing argument %q", name)
	}
	switch v := args[i].(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("metric: argument %q: %w", name, err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("metric: argument %q: want number, got %T", name, args[i])
	}
}

func logArg(args []any, i int, name string) (*runlog.Collector, error) {
	if i >= len(args) {
		return nil, fmt.Errorf("metric: missing argument %q", name)
	}
	log, ok := args[i].(*runlog.Collector)
	if !ok {
		return nil, fmt.Errorf("metric: argument %q: want *runlog.Collector, got %T", name, args[i])
	}
	return log, nil
}
