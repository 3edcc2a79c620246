package logging

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingHandler struct{}

func (failingHandler) Enabled(context.Context, slog.Level) bool { return true }
func (failingHandler) Handle(context.Context, slog.Record) error { return assert.AnError }
func (h failingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h failingHandler) WithGroup(string) slog.Handler { return h }

type countingHandler struct{ handled int }

func (*countingHandler) Enabled(context.Context, slog.Level) bool { return true }
func (h *countingHandler) Handle(context.Context, slog.Record) error {
	h.handled++
	return nil
}
func (h *countingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *countingHandler) WithGroup(string) slog.Handler      { return h }

func TestMultiHandlerDeliversPastFailure(t *testing.T) {
	counting := &countingHandler{}
	m := NewMultiHandler(failingHandler{}, counting)

	err := m.Handle(context.Background(), record(slog.LevelInfo, "hello"))
	require.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 1, counting.handled)
}
