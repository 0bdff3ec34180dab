package core_test

import (
	"context"
	"testing"
	"time"

	"modelscore/pkg/core"

	"github.com/stretchr/testify/require"
)

func constScore(value float64) core.ScoreFunc {
	return func(_ context.Context, _ []any) (core.Score, time.Duration, error) {
		return core.Score{Value: value}, 0, nil
	}
}

func TestRegistryRegisterAndLookup(t *testing.T) {
	reg := core.NewRegistry()
	require.NoError(t, reg.Register("license", 2, constScore(1.0)))

	fn, ok := reg.Lookup("license")
	require.True(t, ok)
	require.NotNil(t, fn)

	arity, ok := reg.Arity("license")
	require.True(t, ok)
	require.Equal(t, 2, arity)

	_, ok = reg.Lookup("missing")
	require.False(t, ok)
}

func TestRegistryDuplicateName(t *testing.T) {
	reg := core.NewRegistry()
	require.NoError(t, reg.Register("license", 2, constScore(1.0)))

	err := reg.Register("license", 3, constScore(0.5))
	require.ErrorIs(t, err, core.ErrDuplicateName)

	// The first registration survives untouched.
	arity, ok := reg.Arity("license")
	require.True(t, ok)
	require.Equal(t, 2, arity)
}

func TestRegistryRejectsInvalidRegistrations(t *testing.T) {
	reg := core.NewRegistry()
	require.Error(t, reg.Register("", 1, constScore(1.0)))
	require.Error(t, reg.Register("nilfn", 1, nil))
	require.Error(t, reg.Register("negative", -1, constScore(1.0)))
}

func TestRegistryNamesSorted(t *testing.T) {
	reg := core.NewRegistry()
	require.NoError(t, reg.Register("zeta", 0, constScore(0)))
	require.NoError(t, reg.Register("alpha", 0, constScore(0)))
	require.NoError(t, reg.Register("mid", 0, constScore(0)))

	require.Equal(t, []string{"alpha", "mid", "zeta"}, reg.Names())
}
