// Package iostreamstest provides test doubles for the iostreams package.
// All command tests should use iostreamstest.New() to get IOStreams backed
// by in-memory buffers.
package iostreamstest

import (
	"io"
	"sync"

	"github.com/schmitthub/prompter/internal/iostreams"
)

// New creates IOStreams for testing.
// Not a TTY, colors disabled.
func New() *TestIOStreams {
	in := &testBuffer{}
	out := &testBuffer{}
	errOut := &testBuffer{}

	// Struct literal zero-values give us isOutputTTY=0, isStderrTTY=0 and
	// colorEnabled=0 (disabled; -1 would mean auto-detect).
	ios := &iostreams.IOStreams{
		In:     in,
		Out:    out,
		ErrOut: errOut,
	}

	return &TestIOStreams{
		IOStreams: ios,
		InBuf:     in,
		OutBuf:    out,
		ErrBuf:    errOut,
	}
}

// TestIOStreams wraps IOStreams for testing with accessible buffers.
type TestIOStreams struct {
	*iostreams.IOStreams
	InBuf  *testBuffer
	OutBuf *testBuffer
	ErrBuf *testBuffer
}

// testBuffer wraps a byte slice for use in tests.
type testBuffer struct {
	mu   sync.Mutex
	data []byte
}

func (b *testBuffer) Read(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.data) == 0 {
		return 0, io.EOF
	}
	n := copy(p, b.data)
	b.data = b.data[n:]
	return n, nil
}

func (b *testBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = append(b.data, p...)
	return len(p), nil
}

func (b *testBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return string(b.data)
}

func (b *testBuffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = nil
}

// SetInput sets the input data for the test buffer.
func (b *testBuffer) SetInput(s string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = []byte(s)
}

// SetTTY simulates stdout and stderr being terminals.
func (t *TestIOStreams) SetTTY(isTTY bool) {
	t.IOStreams.SetStdoutTTY(isTTY)
	t.IOStreams.SetStderrTTY(isTTY)
}
