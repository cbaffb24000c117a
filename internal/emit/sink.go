package emit

import (
	"bufio"
	"io"
	"strings"
)

// Sink receives generated text.
type Sink interface {
	Write(s string)
	WriteLine(s string)
}

// BufferSink collects output in memory.
type BufferSink struct {
	buf strings.Builder
}

func (b *BufferSink) Write(s string) { b.buf.WriteString(s) }

func (b *BufferSink) WriteLine(s string) {
	b.buf.WriteString(s)
	b.buf.WriteByte('\n')
}

func (b *BufferSink) String() string { return b.buf.String() }

// WriterSink buffers writes to an io.Writer. The first write error is kept
// and later writes are dropped; Flush reports it.
type WriterSink struct {
	w   *bufio.Writer
	err error
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: bufio.NewWriter(w)}
}

func (ws *WriterSink) Write(s string) {
	if ws.err != nil {
		return
	}
	_, ws.err = ws.w.WriteString(s)
}

func (ws *WriterSink) WriteLine(s string) {
	ws.Write(s)
	ws.Write("\n")
}

// Flush drains the buffer and returns the first error seen.
func (ws *WriterSink) Flush() error {
	if ws.err != nil {
		return ws.err
	}
	ws.err = ws.w.Flush()
	return ws.err
}
