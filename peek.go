package der

/*
peek.go contains a peekable reader: an io.Reader adapter with two
phases. During the peek phase every delivered byte is copied into an
internal buffer while being forwarded to the caller; after Stop, reads
first drain that buffer in FIFO order, then fall through to the
underlying reader. Callers use this to inspect an identifier before
committing to a full decode.
*/

import "io"

/*
PeekReader wraps an io.Reader, buffering bytes read during the peek
phase so they can be replayed after Stop.
*/
type PeekReader struct {
	r       io.Reader
	buf     []byte
	peeking bool
}

/*
NewPeekReader returns a PeekReader in the peek phase, wrapping r.
*/
func NewPeekReader(r io.Reader) *PeekReader {
	return &PeekReader{r: r, peeking: true}
}

/*
Stop ends the peek phase. Subsequent reads drain the buffered bytes
before falling through to the wrapped reader.
*/
func (p *PeekReader) Stop() { p.peeking = false }

/*
Read implements io.Reader. While peeking, every byte read from the
wrapped reader is also appended to the internal buffer. After Stop,
buffered bytes are drained first, in the order they were read.
*/
func (p *PeekReader) Read(b []byte) (int, error) {
	if !p.peeking && len(p.buf) > 0 {
		n := copy(b, p.buf)
		p.buf = p.buf[n:]
		return n, nil
	}

	n, err := p.r.Read(b)
	if p.peeking && n > 0 {
		p.buf = append(p.buf, b[:n]...)
	}
	return n, err
}
