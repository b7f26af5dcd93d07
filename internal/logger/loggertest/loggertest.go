// Package loggertest captures the global logger's output in tests.
package loggertest

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/schmitthub/prompter/internal/logger"
)

// TestLogger is a handle on captured log output.
type TestLogger struct {
	buf *bytes.Buffer
}

// New redirects the global logger into a buffer at debug level for the
// duration of the test. The logger is silenced again on cleanup.
func New(t *testing.T) *TestLogger {
	t.Helper()
	buf := &bytes.Buffer{}
	logger.SetOutput(buf, zerolog.DebugLevel)
	t.Cleanup(func() { logger.Init(false) })
	return &TestLogger{buf: buf}
}

// Output returns captured log output as a string.
func (tl *TestLogger) Output() string { return tl.buf.String() }

// Reset clears captured output.
func (tl *TestLogger) Reset() { tl.buf.Reset() }
