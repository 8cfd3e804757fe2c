package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/gdlearn/gdlearn/pkg/errors"
)

// TestLoggerInterface tests the Logger interface implementation
func TestLoggerInterface(t *testing.T) {
	testLogger := NewTestLogger(LevelDebug)

	testLogger.Debug("debug message", "key1", "value1", "number", 42)
	testLogger.Info("info message", OperationKey, OperationTrain)
	testLogger.Warn("warning message", ErrorTypeKey, "ConvergenceWarning")
	testLogger.Error("error message", fmt.Errorf("test error"), "extra", "x")

	for _, msg := range []string{"debug message", "info message", "warning message", "error message"} {
		if !testLogger.ContainsMessage(msg) {
			t.Errorf("%q not found in output", msg)
		}
	}

	if !testLogger.ContainsField("key1", "value1") {
		t.Error("Expected field key1=value1 not found")
	}
	if !testLogger.ContainsField("number", 42.0) {
		t.Error("Expected field number=42 not found")
	}
	if !testLogger.ContainsField("error", "test error") {
		t.Error("Expected error field from leading error argument")
	}
	if !testLogger.ContainsField("extra", "x") {
		t.Error("Fields after the error should still be logged")
	}
}

// TestLoggerWith tests the With method for context-aware logging
func TestLoggerWith(t *testing.T) {
	testLogger := NewTestLogger(LevelDebug)

	contextLogger := testLogger.With(
		ModelNameKey, "LinearRegression",
		ComponentKey, "linear",
	)
	contextLogger.Info("contextual message", OperationKey, OperationTrain)

	entries := testLogger.EntriesWithMessage("contextual message")
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	if entries[0][ModelNameKey] != "LinearRegression" || entries[0][ComponentKey] != "linear" {
		t.Errorf("Context fields missing: %v", entries[0])
	}
	if entries[0][OperationKey] != OperationTrain {
		t.Errorf("Operation field missing: %v", entries[0])
	}
}

// TestLoggerEnabled tests the Enabled method
func TestLoggerEnabled(t *testing.T) {
	testLogger := NewTestLogger(LevelInfo)
	ctx := context.Background()

	if !testLogger.Enabled(ctx, LevelInfo) {
		t.Error("Logger should be enabled for Info level")
	}
	if !testLogger.Enabled(ctx, LevelError) {
		t.Error("Logger should be enabled for Error level")
	}
	if testLogger.Enabled(ctx, LevelDebug) {
		t.Error("Logger should not be enabled for Debug level")
	}

	testLogger.Debug("this should not appear")
	testLogger.Info("this should appear")

	if testLogger.ContainsMessage("this should not appear") {
		t.Error("Debug message should not appear when level is Info")
	}
	if !testLogger.ContainsMessage("this should appear") {
		t.Error("Info message should appear when level is Info")
	}
}

// TestTrainingAttributes simulates the progress record emitted during training
func TestTrainingAttributes(t *testing.T) {
	testLogger := NewTestLogger(LevelInfo)

	testLogger.Info("gradient descent progress",
		OperationKey, OperationTrain,
		PhaseKey, PhaseTraining,
		IterationKey, 100,
		LossKey, 0.125,
		LearningRateKey, 0.01,
	)

	entries, err := testLogger.Entries()
	if err != nil {
		t.Fatalf("Failed to parse log entries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 log entry, got %d", len(entries))
	}

	expected := map[string]interface{}{
		OperationKey:    OperationTrain,
		PhaseKey:        PhaseTraining,
		IterationKey:    100.0,
		LossKey:         0.125,
		LearningRateKey: 0.01,
		"level":         "info",
	}
	for key, want := range expected {
		if got, ok := entries[0][key]; !ok || got != want {
			t.Errorf("Field %s: expected %v, got %v", key, want, got)
		}
	}
}

// TestParseLevel tests conversion from configuration strings
func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"info", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"error", LevelError, false},
		{"verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// TestSlogLoggerStacktrace tests that the slog adapter extracts cockroachdb stack traces
func TestSlogLoggerStacktrace(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	err := errors.NewShapeMismatchError("Mul", []int{2, 1}, []int{3, 1})
	logger.Error("prediction failed", err, OperationKey, OperationPredict)

	var entry map[string]interface{}
	if jerr := json.Unmarshal(buf.Bytes(), &entry); jerr != nil {
		t.Fatalf("Failed to parse slog output: %v", jerr)
	}
	if entry[OperationKey] != OperationPredict {
		t.Errorf("Operation field missing: %v", entry)
	}
	st, ok := entry[StacktraceAttrKey].(string)
	if !ok || strings.TrimSpace(st) == "" {
		t.Errorf("Expected stacktrace attribute, got %v", entry[StacktraceAttrKey])
	}

	if !logger.Enabled(context.Background(), LevelDebug) {
		t.Error("slog logger should be enabled for Debug level")
	}
}

// TestWarningSink tests that library warnings become structured log records
func TestWarningSink(t *testing.T) {
	testLogger := NewTestLogger(LevelWarn)
	InstallWarningSink(testLogger)
	defer ResetWarningSink()

	errors.Warn(errors.NewConvergenceWarning("GradientDescent", 20, "cost increased at iteration 3"))

	entries, err := testLogger.Entries()
	if err != nil || len(entries) != 1 {
		t.Fatalf("Expected 1 warning record, got %d (%v)", len(entries), err)
	}
	obj, ok := entries[0][WarningKey].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected structured warning object, got %v", entries[0][WarningKey])
	}
	if obj["type"] != "ConvergenceWarning" || obj["iterations"] != 20.0 {
		t.Errorf("Unexpected warning fields: %v", obj)
	}
}

// TestConcurrentLogging tests thread safety of logging
func TestConcurrentLogging(t *testing.T) {
	testLogger := NewTestLogger(LevelInfo)

	const goroutines, perGoroutine = 4, 5
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				testLogger.Info("concurrent message", "goroutine_id", id, "message_id", j)
			}
		}(i)
	}
	wg.Wait()

	entries, err := testLogger.Entries()
	if err != nil {
		t.Fatalf("Failed to parse log entries: %v", err)
	}
	if len(entries) != goroutines*perGoroutine {
		t.Errorf("Expected %d log entries, got %d", goroutines*perGoroutine, len(entries))
	}
}

// BenchmarkLogging benchmarks logging performance
func BenchmarkLogging(b *testing.B) {
	testLogger := NewTestLogger(LevelInfo)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		testLogger.Info("benchmark message",
			IterationKey, i,
			OperationKey, OperationTrain,
		)
		if i%1000 == 0 {
			testLogger.Clear()
		}
	}
}
