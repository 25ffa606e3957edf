package writer

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/philipp01105/bitlog/core"
	"github.com/philipp01105/bitlog/modifier"
)

var stamp = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

func record(level core.Level, msg core.Message) *core.Record {
	return &core.Record{
		Level:   level,
		Text:    msg.Name(),
		Message: msg,
		Context: core.NewContext(level, stamp, core.Source{File: "svc.go", Function: "svc.Run", Line: 12},
			core.ContextConfig{Category: "jobs"}),
	}
}

func TestClassify(t *testing.T) {
	ls := core.DefaultLevels()
	tests := []struct {
		level core.Level
		want  Severity
	}{
		{core.DebugLevel, SeverityDebug},
		{core.InfoLevel, SeverityInfo},
		{core.EventLevel, SeverityEvent},
		{core.WarnLevel, SeverityWarn},
		{core.ErrorLevel, SeverityError},
		{core.DebugLevel | core.WarnLevel, SeverityWarn},
		{core.Level(1 << 8), SeverityInfo},
	}
	for _, tt := range tests {
		if got := Classify(ls, tt.level); got != tt.want {
			t.Errorf("Classify(%d) = %v, want %v", uint32(tt.level), got, tt.want)
		}
	}
}

func TestConsoleWritesLines(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(ConsoleConfig{Writer: &buf})

	require.NoError(t, c.WriteMessage(record(core.InfoLevel, core.Text("hello"))))
	require.NoError(t, c.WriteMessage(record(core.EventLevel,
		core.Msg("checkout", core.String("user", "ann"), core.Int("items", 3), core.Any("cb", func() {})))))

	assert.Equal(t, "hello\ncheckout items=3 user=ann\n", buf.String())
}

func TestConsoleHideAttributes(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(ConsoleConfig{Writer: &buf, HideAttributes: true})
	require.NoError(t, c.WriteMessage(record(core.InfoLevel, core.Msg("evt", core.Int("n", 1)))))
	assert.Equal(t, "evt\n", buf.String())
}

func TestConsoleColors(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(ConsoleConfig{Writer: &buf, Color: ColorAlways})

	require.NoError(t, c.WriteMessage(record(core.ErrorLevel, core.Text("boom"))))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\x1b[31;1mboom\x1b["), out)
	assert.True(t, strings.HasSuffix(out, "m\n"), out)

	buf.Reset()
	plain := NewConsole(ConsoleConfig{Writer: &buf})
	require.NoError(t, plain.WriteMessage(record(core.ErrorLevel, core.Text("boom"))))
	assert.Equal(t, "boom\n", buf.String(), "non-terminal writers stay uncoloured")
}

func TestConsoleOwnsModifiers(t *testing.T) {
	c := NewConsole(ConsoleConfig{Modifiers: modifier.Chain{modifier.NewPrefix("db")}})
	require.Len(t, c.Modifiers(), 1)

	var w ModifierWriter = c
	assert.NotNil(t, w)
}

type failingWriter struct{ err error }

func (f failingWriter) WriteMessage(*core.Record) error { return f.err }

type panickingWriter struct{}

func (panickingWriter) WriteMessage(*core.Record) error { panic("kaboom") }

type closingWriter struct{ closed int }

func (c *closingWriter) WriteMessage(*core.Record) error { return nil }
func (c *closingWriter) Close() error                    { c.closed++; return nil }

func TestMultiIsolatesFailures(t *testing.T) {
	var got []string
	ok := Func(func(rec *core.Record) error {
		got = append(got, rec.Text)
		return nil
	})
	errWrite := errors.New("disk full")

	m := NewMulti(failingWriter{errWrite}, panickingWriter{}, ok)
	err := m.WriteMessage(record(core.WarnLevel, core.Text("x")))

	assert.Equal(t, []string{"x"}, got)
	assert.ErrorIs(t, err, errWrite)
	assert.Contains(t, err.Error(), "kaboom")
}

func TestMultiClose(t *testing.T) {
	a, b := &closingWriter{}, &closingWriter{}
	m := NewMulti(a, WithModifiers(b), failingWriter{})
	require.NoError(t, m.Close())
	assert.Equal(t, 1, a.closed)
	assert.Equal(t, 1, b.closed)
}

func TestWithModifiers(t *testing.T) {
	w := WithModifiers(Func(func(*core.Record) error { return nil }), modifier.NewPrefix("net"))
	require.Len(t, w.Modifiers(), 1)
	assert.Equal(t, "[net] => up", w.Modifiers().Apply("up", core.InfoLevel, nil, nil))
}

func TestZapWriter(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	w := NewZap(ZapConfig{Logger: zap.New(obs)})

	require.NoError(t, w.WriteMessage(record(core.EventLevel, core.Msg("signup", core.String("plan", "pro")))))
	require.NoError(t, w.WriteMessage(record(core.ErrorLevel, core.Text("failed"))))
	require.NoError(t, w.WriteMessage(record(core.Level(1<<8), core.Text("custom"))))

	entries := logs.All()
	require.Len(t, entries, 3)

	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "signup", entries[0].Message)
	assert.True(t, stamp.Equal(entries[0].Time))
	fields := entries[0].ContextMap()
	assert.Equal(t, "pro", fields["plan"])
	assert.Equal(t, "Event", fields["level_name"])
	assert.Equal(t, "svc.go", fields["file"])
	assert.Equal(t, uint64(12), fields["line"])
	assert.Equal(t, "jobs", fields["category"])
	assert.NotContains(t, fields, "subsystem")

	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "Unknown", entries[2].ContextMap()["level_name"])
}

func TestZapWriterRespectsLevel(t *testing.T) {
	obs, logs := observer.New(zapcore.WarnLevel)
	w := NewZap(ZapConfig{Logger: zap.New(obs)})

	require.NoError(t, w.WriteMessage(record(core.DebugLevel, core.Text("hidden"))))
	assert.Zero(t, logs.Len())
}

func TestLogrusWriter(t *testing.T) {
	log, hook := logrustest.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	w := NewLogrus(LogrusConfig{Logger: log})

	require.NoError(t, w.WriteMessage(record(core.WarnLevel, core.Msg("slow query", core.Duration("took", time.Second)))))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "slow query", entry.Message)
	assert.Equal(t, time.Second, entry.Data["took"])
	assert.Equal(t, "svc.Run", entry.Data["function"])
	assert.Equal(t, "jobs", entry.Data["category"])
	assert.True(t, stamp.Equal(entry.Time))

	log.SetLevel(logrus.ErrorLevel)
	hook.Reset()
	require.NoError(t, w.WriteMessage(record(core.InfoLevel, core.Text("quiet"))))
	assert.Empty(t, hook.AllEntries())
}

func TestZerologWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewZerolog(ZerologConfig{Logger: zerolog.New(&buf)})

	require.NoError(t, w.WriteMessage(record(core.DebugLevel, core.Msg("cache miss", core.String("key", "k1")))))

	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "debug", out["level"])
	assert.Equal(t, "cache miss", out["message"])
	assert.Equal(t, "k1", out["key"])
	assert.Equal(t, "Debug", out["level_name"])
	assert.Equal(t, float64(12), out["line"])
}

func TestZerologWriterDisabled(t *testing.T) {
	var buf bytes.Buffer
	w := NewZerolog(ZerologConfig{Logger: zerolog.New(&buf).Level(zerolog.ErrorLevel)})

	require.NoError(t, w.WriteMessage(record(core.InfoLevel, core.Text("nope"))))
	assert.Zero(t, buf.Len())
}

func TestSlogWriter(t *testing.T) {
	var buf bytes.Buffer
	h := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	w := NewSlog(SlogConfig{Handler: h})

	require.NoError(t, w.WriteMessage(record(core.EventLevel, core.Msg("deploy", core.String("env", "prod")))))

	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "INFO+2", out["level"])
	assert.Equal(t, "deploy", out["msg"])
	assert.Equal(t, "prod", out["env"])
	assert.Equal(t, "svc.go", out["file"])
	assert.True(t, strings.HasPrefix(out["time"].(string), "2024-06-01T10:00:00"))
}
