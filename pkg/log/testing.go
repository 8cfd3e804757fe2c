// Package log provides testing utilities for structured logging.
//
// TestLogger is a zerolog-backed Logger that writes JSON lines into an
// in-memory buffer so tests can assert on what was logged.

package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// syncBuffer guards a bytes.Buffer so concurrent writers don't interleave.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func (b *syncBuffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf.Reset()
}

// TestLogger captures all log records in memory for later inspection.
type TestLogger struct {
	*zerologLogger
	out *syncBuffer
}

// NewTestLogger creates a TestLogger emitting records at level and above.
// Records carry no timestamp so that output is deterministic.
//
// Example:
//
//	logger := log.NewTestLogger(log.LevelDebug)
//	logger.Info("test message", "key", "value")
//	if !logger.ContainsField("key", "value") { ... }
func NewTestLogger(level Level) *TestLogger {
	out := &syncBuffer{}
	zl := zerolog.New(out).Level(toZerologLevel(level))
	return &TestLogger{zerologLogger: &zerologLogger{zl: zl}, out: out}
}

// With returns a logger sharing the same capture buffer.
func (t *TestLogger) With(fields ...any) Logger {
	return &TestLogger{
		zerologLogger: &zerologLogger{zl: t.zl.With().Fields(fields).Logger()},
		out:           t.out,
	}
}

// String returns the raw captured output.
func (t *TestLogger) String() string {
	return t.out.String()
}

// Entries parses the captured output into one map per record.
// JSON numbers decode as float64.
func (t *TestLogger) Entries() ([]map[string]interface{}, error) {
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(t.out.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// EntriesWithMessage returns the parsed records whose message equals msg.
func (t *TestLogger) EntriesWithMessage(msg string) []map[string]interface{} {
	entries, err := t.Entries()
	if err != nil {
		return nil
	}
	var out []map[string]interface{}
	for _, e := range entries {
		if e[zerolog.MessageFieldName] == msg {
			out = append(out, e)
		}
	}
	return out
}

// ContainsMessage reports whether any captured output contains message.
func (t *TestLogger) ContainsMessage(message string) bool {
	return strings.Contains(t.out.String(), message)
}

// ContainsField reports whether any record has key set to value.
func (t *TestLogger) ContainsField(key string, value interface{}) bool {
	entries, err := t.Entries()
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if v, ok := entry[key]; ok && v == value {
			return true
		}
	}
	return false
}

// Clear drops all captured output.
func (t *TestLogger) Clear() {
	t.out.Reset()
}
