package logger

import (
	"fmt"
	"sync"
	"testing"
)

// TestLogger records log lines in memory and mirrors them to t.Logf when a
// testing.T is attached.
type TestLogger struct {
	T *testing.T

	mu      *sync.Mutex
	entries *[]string
	fields  map[string]interface{}
}

// NewTestLogger creates a new test logger
func NewTestLogger(t *testing.T) *TestLogger {
	return &TestLogger{
		T:       t,
		mu:      &sync.Mutex{},
		entries: &[]string{},
		fields:  map[string]interface{}{},
	}
}

func (l *TestLogger) record(level, msg string) {
	line := fmt.Sprintf("[%s] %s", level, msg)
	if len(l.fields) > 0 {
		line = fmt.Sprintf("%s %v", line, l.fields)
	}

	l.mu.Lock()
	*l.entries = append(*l.entries, line)
	l.mu.Unlock()

	if l.T != nil {
		l.T.Log(line)
	}
}

func (l *TestLogger) Debug(msg string) { l.record("DEBUG", msg) }
func (l *TestLogger) Info(msg string)  { l.record("INFO", msg) }
func (l *TestLogger) Warn(msg string)  { l.record("WARN", msg) }
func (l *TestLogger) Error(msg string) { l.record("ERROR", msg) }
func (l *TestLogger) Fatal(msg string) { l.record("FATAL", msg) }

// WithField returns a child logger sharing the same entry buffer
func (l *TestLogger) WithField(key string, value interface{}) Logger {
	return l.WithFields(map[string]interface{}{key: value})
}

// WithFields returns a child logger sharing the same entry buffer
func (l *TestLogger) WithFields(fields map[string]interface{}) Logger {
	merged := make(map[string]interface{}, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &TestLogger{T: l.T, mu: l.mu, entries: l.entries, fields: merged}
}

// Entries returns every line recorded so far, children included
func (l *TestLogger) Entries() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(*l.entries))
	copy(out, *l.entries)
	return out
}

// NewMockLogger creates a simple logger for use in tests
// It can be called with or without a testing.T parameter
func NewMockLogger(t ...*testing.T) Logger {
	if len(t) > 0 {
		return NewTestLogger(t[0])
	}
	return NewTestLogger(nil)
}
