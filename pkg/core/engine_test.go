package core_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"modelscore/pkg/core"
	"modelscore/pkg/runlog"

	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, reg *core.Registry, params core.Params) (*core.Engine, *bytes.Buffer, *runlog.Collector) {
	t.Helper()
	var buf bytes.Buffer
	collector := runlog.New(&buf)
	engine := &core.Engine{
		Registry:    reg,
		Params:      params,
		Log:         collector,
		TaskTimeout: 5 * time.Second,
	}
	return engine, &buf, collector
}

func TestEngineSingleTask(t *testing.T) {
	reg := newTestRegistry(t)
	engine, _, collector := newTestEngine(t, reg, core.Params{"x": 1, "y": 2})

	report, err := engine.Run(context.Background(), strings.NewReader("scoreA(x, y) 1.0\n"))
	require.NoError(t, err)
	require.NoError(t, collector.Close())

	require.NotEmpty(t, report.RunID)
	require.InDelta(t, 0.8, report.NetScore, 1e-9)
	require.Equal(t, 0.8, report.Scores["scoreA"].Value)
	require.Contains(t, report.Latencies, "scoreA")
}

func TestEngineDropsInvalidLinesAndWarns(t *testing.T) {
	reg := newTestRegistry(t)
	engine, buf, collector := newTestEngine(t, reg, core.Params{"x": 1, "y": 2})

	doc := "scoreA(x) 1.0\nscoreA(x, y) 1.0\n"
	report, err := engine.Run(context.Background(), strings.NewReader(doc))
	require.NoError(t, err)
	require.NoError(t, collector.Close())

	// The arity mismatch is dropped entirely: no sentinel, no weight.
	require.InDelta(t, 0.8, report.NetScore, 1e-9)
	require.Len(t, report.Scores, 1)
	require.Contains(t, buf.String(), "[WARNING]")
	require.Contains(t, buf.String(), "expects 2 args")
}

func TestEngineMissingParameterDropsTask(t *testing.T) {
	reg := newTestRegistry(t)
	engine, buf, collector := newTestEngine(t, reg, core.Params{"x": 1})

	report, err := engine.Run(context.Background(), strings.NewReader("scoreA(x, y) 2.0\nscoreB(x) 1.0\n"))
	require.NoError(t, err)
	require.NoError(t, collector.Close())

	require.Len(t, report.Scores, 1)
	require.InDelta(t, 0.6, report.NetScore, 1e-9)
	require.Contains(t, buf.String(), "missing required keys: y")
}

func TestEngineFailedWorkerDilutesNetScore(t *testing.T) {
	reg := core.NewRegistry()
	require.NoError(t, reg.Register("good", 0, constScore(0.6)))
	require.NoError(t, reg.Register("bad", 0, func(_ context.Context, _ []any) (core.Score, time.Duration, error) {
		return core.Score{}, 0, errors.New("boom")
	}))
	engine, buf, collector := newTestEngine(t, reg, core.Params{})

	report, err := engine.Run(context.Background(), strings.NewReader("good() 1\nbad() 3\n"))
	require.NoError(t, err)
	require.NoError(t, collector.Close())

	require.InDelta(t, 0.15, report.NetScore, 1e-9)
	require.Equal(t, 0.0, report.Scores["bad"].Value)
	require.Contains(t, buf.String(), "[WORKER ERROR]")
}

func TestEngineDuplicateTaskLines(t *testing.T) {
	reg := newTestRegistry(t)
	engine, _, collector := newTestEngine(t, reg, core.Params{"z": 1})

	report, err := engine.Run(context.Background(), strings.NewReader("scoreB(z) 1\nscoreB(z) 1\n"))
	require.NoError(t, err)
	require.NoError(t, collector.Close())

	require.Len(t, report.Scores, 2)
	require.Contains(t, report.Scores, "scoreB")
	require.Contains(t, report.Scores, "scoreB#2")
	require.InDelta(t, 0.6, report.NetScore, 1e-9)
}

func TestEngineEmptyDocument(t *testing.T) {
	reg := newTestRegistry(t)
	engine, _, collector := newTestEngine(t, reg, core.Params{})

	report, err := engine.Run(context.Background(), strings.NewReader(""))
	require.NoError(t, err)
	require.NoError(t, collector.Close())

	require.Equal(t, 0.0, report.NetScore)
	require.Empty(t, report.Scores)
	require.NotEmpty(t, report.RunID)
}

func TestEngineNetScoreLatencyIsDispatchWindow(t *testing.T) {
	reg := core.NewRegistry()
	sleepy := func(_ context.Context, _ []any) (core.Score, time.Duration, error) {
		time.Sleep(40 * time.Millisecond)
		return core.Score{Value: 1}, 0, nil
	}
	require.NoError(t, reg.Register("sleepy_a", 0, sleepy))
	require.NoError(t, reg.Register("sleepy_b", 0, sleepy))
	engine, _, collector := newTestEngine(t, reg, core.Params{})

	report, err := engine.Run(context.Background(), strings.NewReader("sleepy_a() 1\nsleepy_b() 1\n"))
	require.NoError(t, err)
	require.NoError(t, collector.Close())

	// The window covers both tasks running concurrently, so it is bounded by
	// one task's duration plus overhead, not their sum.
	require.GreaterOrEqual(t, report.NetScoreLatency, 40*time.Millisecond)
	require.Less(t, report.NetScoreLatency, report.Latencies["sleepy_a"]+report.Latencies["sleepy_b"])
}

func TestEngineRequiresRegistryAndCollector(t *testing.T) {
	var buf bytes.Buffer
	collector := runlog.New(&buf)
	defer collector.Close()

	engine := &core.Engine{Log: collector}
	_, err := engine.Run(context.Background(), strings.NewReader(""))
	require.Error(t, err)

	engine = &core.Engine{Registry: core.NewRegistry()}
	_, err = engine.Run(context.Background(), strings.NewReader(""))
	require.Error(t, err)
}
