package lines

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ib-77/sansio/pkg/pipe"
	"github.com/ib-77/sansio/pkg/pipe/queue"
)

const DefaultSeparator byte = '\n'

var ErrLineTooLong = errors.New("lines: line too long")

// Stage is the boundary signature of Codec, used when fusing it.
type Stage = pipe.Stage[[]byte, pipe.Result[[]byte], pipe.Result[string], string]

// Codec splits a byte stream into lines toward the back and encodes lines
// into separator terminated bytes toward the front.
//
// Front output keeps the channel of the back input, so a failure handed in
// at the back leaves as a failure carrying the encoded error text.
type Codec struct {
	separator  byte
	maxLength  int
	trimCR     bool
	buf        []byte
	discarding bool
	lines      queue.Queue[string]
	out        queue.Queue[pipe.Result[[]byte]]
}

type Option func(*Codec)

// WithSeparator sets the byte that terminates a line.
func WithSeparator(sep byte) Option {
	return func(c *Codec) { c.separator = sep }
}

// WithMaxLineLength bounds the length of a line, separator excluded. Longer
// lines are dropped and reported at the front as ErrLineTooLong. Zero means
// unbounded. With WithTrimCR the bound applies after the carriage return is
// removed.
func WithMaxLineLength(n int) Option {
	return func(c *Codec) { c.maxLength = n }
}

// WithTrimCR drops a carriage return directly before the separator.
func WithTrimCR() Option {
	return func(c *Codec) { c.trimCR = true }
}

func New(opts ...Option) *Codec {
	c := &Codec{separator: DefaultSeparator}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HandleFrontInput appends raw bytes and splits off every completed line.
func (c *Codec) HandleFrontInput(message []byte) {
	for len(message) > 0 {
		i := bytes.IndexByte(message, c.separator)
		if i < 0 {
			c.appendPartial(message)
			return
		}

		if !c.discarding {
			c.appendPartial(message[:i])
			if !c.discarding {
				c.emitLine(c.buf)
			}
		}
		c.discarding = false
		c.buf = c.buf[:0]
		message = message[i+1:]
	}
}

// HandleBackInput queues a line for encoding.
func (c *Codec) HandleBackInput(message pipe.Result[string]) {
	if message.IsSuccess() {
		c.out.Push(pipe.Convert(message, c.encode))
		return
	}

	text := "error"
	if err := message.Err(); err != nil {
		text = err.Error()
	} else if message.HasResult() {
		text = message.Result()
	}
	c.out.Push(pipe.FailWithResult(c.encode(text), message.Err()))
}

// PollBackOutput returns the next complete line without its separator.
func (c *Codec) PollBackOutput() (string, bool) {
	return c.lines.Pop()
}

// PollFrontOutput returns the next encoded line.
func (c *Codec) PollFrontOutput() (pipe.Result[[]byte], bool) {
	return c.out.Pop()
}

// Pending reports the number of buffered bytes not yet terminated by a
// separator.
func (c *Codec) Pending() int {
	return len(c.buf)
}

// Finish terminates the buffered partial line as if a separator had
// arrived. It reports whether there was one. Drivers call it at end of input.
func (c *Codec) Finish() bool {
	if c.discarding {
		c.discarding = false
		c.buf = c.buf[:0]
		return false
	}
	if len(c.buf) == 0 {
		return false
	}
	c.emitLine(c.buf)
	c.buf = c.buf[:0]
	return true
}

func (c *Codec) appendPartial(b []byte) {
	if c.discarding {
		return
	}
	limit := c.maxLength
	if c.trimCR {
		// room for the carriage return emitLine strips
		limit++
	}
	if c.maxLength > 0 && len(c.buf)+len(b) > limit {
		c.discarding = true
		c.buf = c.buf[:0]
		c.rejectLine()
		return
	}
	c.buf = append(c.buf, b...)
}

func (c *Codec) emitLine(b []byte) {
	if c.trimCR && len(b) > 0 && b[len(b)-1] == '\r' {
		b = b[:len(b)-1]
	}
	if c.maxLength > 0 && len(b) > c.maxLength {
		c.rejectLine()
		return
	}
	c.lines.Push(strings.ToValidUTF8(string(b), "\uFFFD"))
}

func (c *Codec) rejectLine() {
	err := fmt.Errorf("%w: more than %d bytes", ErrLineTooLong, c.maxLength)
	c.out.Push(pipe.FailWithResult(c.encode(err.Error()), err))
}

func (c *Codec) encode(text string) []byte {
	b := make([]byte, 0, len(text)+1)
	b = append(b, text...)
	return append(b, c.separator)
}
