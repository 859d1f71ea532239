package fastasize

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Source supplies the bytes of a single scan.
type Source interface {
	// Next returns the next chunk of input, or io.EOF once the input is
	// exhausted. A chunk is only valid until the following Next or Close
	// and must not be modified.
	Next() ([]byte, error)

	// Close releases the source. Calling it more than once is allowed.
	Close() error
}

// StreamSource reads its input into a fixed-size buffer, one Read per chunk.
type StreamSource struct {
	r       io.Reader
	closer  io.Closer
	buf     []byte
	pending error
	closed  bool
}

// NewStreamSource streams r in chunks of at most size bytes. A size below 1
// selects DefaultBufferSize. Closing the source does not close r.
func NewStreamSource(r io.Reader, size int) *StreamSource {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &StreamSource{
		r:   r,
		buf: make([]byte, size),
	}
}

// OpenStreamSource opens path for streamed reads. The file is closed with
// the source.
func OpenStreamSource(path string, size int) (*StreamSource, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputOpen, err)
	}
	s := NewStreamSource(fd, size)
	s.closer = fd
	return s, nil
}

// Next returns the bytes filled by the next Read. The last chunk may be
// shorter than the buffer. Data returned together with an error is handed
// out first and the error is reported on the following call.
func (s *StreamSource) Next() ([]byte, error) {
	if s.closed {
		return nil, ErrClosed
	}
	if s.pending != nil {
		return nil, s.pending
	}

	for range maxConsecutiveEmptyReads {
		n, err := s.r.Read(s.buf)
		if err != nil {
			s.pending = readError(err)
		}
		if n > 0 {
			return s.buf[:n], nil
		}
		if err != nil {
			return nil, s.pending
		}
	}
	s.pending = readError(io.ErrNoProgress)
	return nil, s.pending
}

func readError(err error) error {
	if errors.Is(err, io.EOF) {
		return io.EOF
	}
	return fmt.Errorf("%w: %w", ErrRead, err)
}

// BufferSize returns the chunk capacity.
func (s *StreamSource) BufferSize() int {
	return len(s.buf)
}

func (s *StreamSource) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}
