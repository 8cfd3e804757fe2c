package log

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/gdlearn/gdlearn/pkg/errors"
)

var (
	defaultMu     sync.RWMutex
	defaultLogger Logger = NewZerologLogger(os.Stderr, LevelInfo)
)

func init() {
	ResetWarningSink()
}

// GetLogger returns the package-wide default logger.
func GetLogger() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetLogger replaces the package-wide default logger. A nil logger is ignored.
func SetLogger(l Logger) {
	if l == nil {
		return
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// ResetWarningSink routes pkg/errors warnings to whatever the default logger
// is at the time they fire. This is the state after package initialization.
func ResetWarningSink() {
	errors.SetZerologWarnFunc(func(w error) {
		emitWarning(GetLogger(), w)
	})
}

// InstallWarningSink routes pkg/errors warnings to l instead of the default logger.
func InstallWarningSink(l Logger) {
	errors.SetZerologWarnFunc(func(w error) {
		emitWarning(l, w)
	})
}

// zerologLogger implements Logger on top of github.com/rs/zerolog.
type zerologLogger struct {
	zl zerolog.Logger
}

// NewZerologLogger creates a JSON logger writing to w that emits records at
// level and above.
func NewZerologLogger(w io.Writer, level Level) Logger {
	zl := zerolog.New(w).Level(toZerologLevel(level)).With().Timestamp().Logger()
	return &zerologLogger{zl: zl}
}

func (l *zerologLogger) base() zerolog.Logger { return l.zl }

func (l *zerologLogger) Debug(msg string, fields ...any) {
	l.zl.Debug().Fields(fields).Msg(msg)
}

func (l *zerologLogger) Info(msg string, fields ...any) {
	l.zl.Info().Fields(fields).Msg(msg)
}

func (l *zerologLogger) Warn(msg string, fields ...any) {
	l.zl.Warn().Fields(fields).Msg(msg)
}

func (l *zerologLogger) Error(msg string, fields ...any) {
	ev := l.zl.Error()
	if len(fields) > 0 {
		if err, ok := fields[0].(error); ok {
			ev = ev.Err(err)
			if st := extractStacktrace(err); st != "" {
				ev = ev.Str(StacktraceAttrKey, st)
			}
			fields = fields[1:]
		}
	}
	ev.Fields(fields).Msg(msg)
}

func (l *zerologLogger) With(fields ...any) Logger {
	return &zerologLogger{zl: l.zl.With().Fields(fields).Logger()}
}

func (l *zerologLogger) Enabled(_ context.Context, level Level) bool {
	lv := toZerologLevel(level)
	return lv >= l.zl.GetLevel() && lv >= zerolog.GlobalLevel()
}

// emitWarning writes w as a structured warning. Warnings that know how to
// marshal themselves are attached as an object when l is zerolog-backed.
func emitWarning(l Logger, w error) {
	if zb, ok := l.(interface{ base() zerolog.Logger }); ok {
		var m zerolog.LogObjectMarshaler
		if errors.As(w, &m) {
			zl := zb.base()
			zl.Warn().Object(WarningKey, m).Msg(w.Error())
			return
		}
	}
	l.Warn(w.Error(), WarningKey, w.Error())
}

func toZerologLevel(level Level) zerolog.Level {
	switch {
	case level <= LevelDebug:
		return zerolog.DebugLevel
	case level <= LevelInfo:
		return zerolog.InfoLevel
	case level <= LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}
