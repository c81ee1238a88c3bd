package log

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest/observer"

	"github.com/zeusync/gmath/pkg/vector"
)

func TestLogger_Fields(t *testing.T) {
	core, logs := observer.New(zapDebug)
	l := NewFromCore(core, LevelDebug)

	l.Info("evaluated",
		String("op", "add"),
		Stringer("got", vector.New2(1.0, 0.5)),
		Float64("dot", 4.35),
		Bool("pass", true),
		Int("index", 2),
		Error(errors.New("boom")),
	)

	require.Equal(t, 1, logs.Len())
	ctx := logs.All()[0].ContextMap()
	assert.Equal(t, "add", ctx["op"])
	assert.Equal(t, "(1, 0.5, 0)", ctx["got"])
	assert.Equal(t, 4.35, ctx["dot"])
	assert.Equal(t, true, ctx["pass"])
	assert.Equal(t, int64(2), ctx["index"])
	assert.Equal(t, "boom", ctx["error"])
}

func TestLogger_Level(t *testing.T) {
	core, logs := observer.New(zapDebug)
	l := NewFromCore(core, LevelWarn)

	l.Debug("hidden")
	l.Info("hidden")
	l.Log(LevelInfo, "hidden")
	l.Warn("shown")
	assert.Equal(t, 1, logs.Len())
	assert.Equal(t, LevelWarn, l.GetLevel())

	l.SetLevel(LevelDebug)
	l.Debug("shown")
	assert.Equal(t, 2, logs.Len())
	assert.Equal(t, LevelDebug, l.GetLevel())
}

func TestLogger_WithContext(t *testing.T) {
	core, logs := observer.New(zapDebug)
	l := NewFromCore(core, LevelDebug)

	l.WithContext(context.Background()).Info("no id")
	l.WithContext(ContextWithRunID(context.Background(), "run-1")).Info("with id")

	all := logs.All()
	require.Len(t, all, 2)
	assert.NotContains(t, all[0].ContextMap(), "run_id")
	assert.Equal(t, "run-1", all[1].ContextMap()["run_id"])
}

func TestProvide_NeverNil(t *testing.T) {
	require.NotNil(t, Provide())
}

func TestProvide_ConcurrentWithNew(t *testing.T) {
	const workers = 8

	var wg sync.WaitGroup
	wg.Add(workers * 2)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_ = New(LevelError)
		}()
		go func() {
			defer wg.Done()
			assert.NotNil(t, Provide())
		}()
	}
	wg.Wait()

	first := Provide()
	assert.Same(t, first, Provide())
	assert.Equal(t, LevelError, first.GetLevel())
}
