package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutlog"
	sdklog "go.opentelemetry.io/otel/sdk/log"
)

func TestSetup_FileOnly_NoStdout(t *testing.T) {
	restore := captureStdout(t)

	var file bytes.Buffer
	m := NewSlogManager()
	m.Setup(&file, "info", nil)
	m.Logger().Info("Rendered map", "drawn", 1, "culled", 5)

	stdout := restore()

	assert.Contains(t, file.String(), "Logging initialized")
	assert.Contains(t, file.String(), "drawn=1 culled=5")
	// the terminal map owns stdout while a log file is open
	assert.Empty(t, stdout)
}

func TestSetup_NoFile_FallsBackToStdout(t *testing.T) {
	restore := captureStdout(t)

	m := NewSlogManager()
	m.Setup(nil, "info", nil)
	m.Logger().Warn("Failed to open log file")

	stdout := restore()
	assert.Contains(t, stdout, "Failed to open log file")
}

func TestSetup_TimestampsAreUTC(t *testing.T) {
	var file bytes.Buffer
	m := NewSlogManager()
	m.Setup(&file, "info", nil)

	line := strings.SplitN(file.String(), "\n", 2)[0]
	require.True(t, strings.HasPrefix(line, "time="), line)
	stamp := strings.Fields(strings.TrimPrefix(line, "time="))[0]
	ts, err := time.Parse(time.RFC3339, stamp)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(stamp, "Z"), stamp)
	assert.WithinDuration(t, time.Now(), ts, time.Minute)
}

func TestSetup_Levels(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantInfo  bool
	}{
		{"debug", true, true},
		{"DEBUG", true, true},
		{"info", false, true},
		{"warn", false, false},
		{"", false, true},
		{"verbose", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var file bytes.Buffer
			m := NewSlogManager()
			m.Setup(&file, tt.level, nil)
			m.Logger().Debug("click missed")
			m.Logger().Info("Catalog loaded")

			assert.Equal(t, tt.wantDebug, strings.Contains(file.String(), "click missed"))
			assert.Equal(t, tt.wantInfo, strings.Contains(file.String(), "Catalog loaded"))
		})
	}
}

func TestLogger_BeforeSetup(t *testing.T) {
	m := NewSlogManager()
	assert.Same(t, slog.Default(), m.Logger())
	assert.NoError(t, m.Flush(context.Background()))
}

func TestSetup_BridgesToOTel(t *testing.T) {
	var exported bytes.Buffer
	exp, err := stdoutlog.New(stdoutlog.WithWriter(&exported))
	require.NoError(t, err)
	provider := sdklog.NewLoggerProvider(sdklog.WithProcessor(sdklog.NewSimpleProcessor(exp)))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	var file bytes.Buffer
	m := NewSlogManager()
	m.Setup(&file, "info", provider)
	m.Logger().Info("Seeded catalog", "seeded", 6)
	require.NoError(t, m.Flush(context.Background()))

	assert.Contains(t, file.String(), "Seeded catalog")
	assert.Contains(t, exported.String(), "Seeded catalog")
	assert.Contains(t, exported.String(), InstrumentationName)
}

type failingHandler struct {
	slog.Handler
	err error
}

func (h failingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h failingHandler) Handle(context.Context, slog.Record) error { return h.err }

func TestMultiHandler(t *testing.T) {
	var a, b bytes.Buffer
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}
	infoOnly := &slog.HandlerOptions{Level: slog.LevelInfo}
	h := NewMultiHandler(slog.NewTextHandler(&a, opts), nil, slog.NewTextHandler(&b, infoOnly))

	logger := slog.New(h).With("component", "view").WithGroup("click")
	logger.Debug("click missed", "x", 5)
	logger.Info("object selected", "id", "OBJ-001")

	assert.Contains(t, a.String(), "component=view click.x=5")
	assert.Contains(t, a.String(), "click.id=OBJ-001")
	assert.NotContains(t, b.String(), "click missed")
	assert.Contains(t, b.String(), "component=view click.id=OBJ-001")

	assert.False(t, NewMultiHandler().Enabled(context.Background(), slog.LevelError))
	assert.Same(t, h, h.WithGroup(""))
}

func TestMultiHandler_JoinsErrors(t *testing.T) {
	errFile := errors.New("disk full")
	errOTLP := errors.New("exporter closed")
	var ok bytes.Buffer
	h := NewMultiHandler(
		failingHandler{err: errFile},
		slog.NewTextHandler(&ok, nil),
		failingHandler{err: errOTLP},
	)

	err := h.Handle(context.Background(), slog.NewRecord(time.Now(), slog.LevelInfo, "render", 0))
	assert.ErrorIs(t, err, errFile)
	assert.ErrorIs(t, err, errOTLP)
	// a failing sink does not stop delivery to the others
	assert.Contains(t, ok.String(), "render")
}

// captureStdout redirects stdout to a pipe and returns a function that
// restores it and returns what was captured.
func captureStdout(t *testing.T) func() string {
	t.Helper()

	r, w, err := osPipe()
	require.NoError(t, err)

	orig := osStdout
	osStdout = w

	return func() string {
		w.Close()
		osStdout = orig
		var buf bytes.Buffer
		buf.ReadFrom(r)
		r.Close()
		return buf.String()
	}
}
