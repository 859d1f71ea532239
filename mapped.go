package fastasize

import (
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/zeebo/errs/v2"
)

// MappedSource exposes a whole regular file as one read-only mapped region.
// The region is valid until Close; do not retain it past that point.
type MappedSource struct {
	path     string
	fd       *os.File
	mmapData mmap.MMap
	size     int64
	consumed bool
	closed   bool
}

// OpenMappedSource maps the file at path read-only. Files that are not
// regular, or are empty, fail with ErrNotMappable and should be streamed.
func OpenMappedSource(path string) (*MappedSource, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputOpen, err)
	}

	fi, err := fd.Stat()
	if err != nil {
		fd.Close()
		return nil, fmt.Errorf("%w: %w", ErrSizeProbe, err)
	}
	if !fi.Mode().IsRegular() || fi.Size() == 0 {
		fd.Close()
		return nil, fmt.Errorf("%w: %s (mode=%s, size=%d)", ErrNotMappable, path, fi.Mode(), fi.Size())
	}
	if int64(int(fi.Size())) != fi.Size() {
		fd.Close()
		return nil, fmt.Errorf("%w: %s is too large to map (size=%d)", ErrNotMappable, path, fi.Size())
	}

	mmapData, err := mmap.Map(fd, mmap.RDONLY, 0)
	if err != nil {
		fd.Close()
		return nil, fmt.Errorf("%w: %w", ErrMapping, err)
	}

	return &MappedSource{
		path:     path,
		fd:       fd,
		mmapData: mmapData,
		size:     fi.Size(),
	}, nil
}

// Next returns the full mapped region on the first call and io.EOF after.
func (m *MappedSource) Next() ([]byte, error) {
	if m.closed {
		return nil, ErrClosed
	}
	if m.consumed {
		return nil, io.EOF
	}
	m.consumed = true
	return m.mmapData, nil
}

// Bytes returns the mapped region, or nil once closed.
func (m *MappedSource) Bytes() []byte {
	if m.closed {
		return nil
	}
	return m.mmapData
}

// Size returns the mapped length in bytes.
func (m *MappedSource) Size() int64 {
	return m.size
}

func (m *MappedSource) Path() string {
	return m.path
}

// Close unmaps the region and closes the file. Both are attempted even if
// the first fails.
func (m *MappedSource) Close() error {
	if m.closed {
		return nil
	}
	m.closed = true

	var unmapErr error
	if err := m.mmapData.Unmap(); err != nil {
		unmapErr = fmt.Errorf("unmap error: %w", err)
	}
	m.mmapData = nil

	var closeErr error
	if err := m.fd.Close(); err != nil {
		closeErr = fmt.Errorf("file close error: %w", err)
	}
	return errs.Combine(unmapErr, closeErr)
}
