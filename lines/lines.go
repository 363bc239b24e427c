// Package lines provides a fallible lender over the lines of a reader.
// Every line is lent from a single reused buffer, so reading a large
// input allocates once, not per line.
package lines

import (
	"bufio"
	"io"
	"strings"

	"github.com/WanderLanz/Lender/lenders"
)

// New returns a lender over the lines of r. Each advancement lends the
// next line with the trailing line feed (and a preceding carriage return)
// stripped; the lent bytes alias the internal buffer and are overwritten
// by the next advancement. A final line without a terminator is still
// lent before exhaustion. Read failures surface as errors.
func New(r io.Reader) *Lines {
	return &Lines{r: bufio.NewReader(r)}
}

// NewString returns a lender over the lines of s.
func NewString(s string) *Lines {
	return New(strings.NewReader(s))
}

// Lines is a lenders.TryLender[[]byte] over the lines of a reader.
type Lines struct {
	r    *bufio.Reader
	buf  []byte
	done bool
	g    lenders.Guard
}

func (l *Lines) Next() (lenders.Lend[[]byte], error) {
	if l.done {
		l.g.Revoke()
		return lenders.Lend[[]byte]{}, lenders.ErrDone
	}
	l.buf = l.buf[:0]
	for {
		frag, err := l.r.ReadSlice('\n')
		l.buf = append(l.buf, frag...)
		switch err {
		case nil:
			return lenders.Issue(&l.g, trim(l.buf)), nil
		case bufio.ErrBufferFull:
			// Long line, keep accumulating.
		case io.EOF:
			l.done = true
			if len(l.buf) == 0 {
				l.g.Revoke()
				return lenders.Lend[[]byte]{}, lenders.ErrDone
			}
			return lenders.Issue(&l.g, trim(l.buf)), nil
		default:
			l.done = true
			l.g.Revoke()
			return lenders.Lend[[]byte]{}, err
		}
	}
}

// Close revokes the current lend and drops the line buffer.
func (l *Lines) Close() error {
	l.g.Revoke()
	l.buf = nil
	l.done = true
	return nil
}

// trim strips a trailing "\n" or "\r\n".
func trim(line []byte) []byte {
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}
	}
	return line
}
