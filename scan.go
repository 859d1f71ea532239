package fastasize

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/zeebo/errs/v2"
)

// Scanner accumulates a residue count over a sequence of chunks. Header
// state carries across chunk boundaries, so a chunk may end anywhere.
// A Scanner is not safe for concurrent use.
type Scanner struct {
	mode    CountMode
	count   countFunc
	state   HeaderState
	total   uint64
	scanned uint64
}

// NewScanner returns a Scanner in the initial state: outside of a header
// with a count of zero.
func NewScanner(mode CountMode) *Scanner {
	return &Scanner{
		mode:  mode,
		count: mode.countFunc(),
		state: InSequence,
	}
}

// Feed classifies every byte of chunk. The chunk is not retained.
func (s *Scanner) Feed(chunk []byte) {
	s.state, s.total = s.count(chunk, s.state, s.total)
	s.scanned += uint64(len(chunk))
}

// Write implements io.Writer. It never fails.
func (s *Scanner) Write(p []byte) (int, error) {
	s.Feed(p)
	return len(p), nil
}

// Count returns the residues seen so far.
func (s *Scanner) Count() uint64 { return s.total }

// State returns the header state after the last byte fed.
func (s *Scanner) State() HeaderState { return s.state }

// Scanned returns the number of bytes fed so far.
func (s *Scanner) Scanned() uint64 { return s.scanned }

func (s *Scanner) Mode() CountMode { return s.mode }

// Reset returns the Scanner to its initial state.
func (s *Scanner) Reset() {
	s.state = InSequence
	s.total = 0
	s.scanned = 0
}

// Scan drains src and returns the residue count. On any error other than
// io.EOF the count is discarded and the error returned. Scan does not close
// src.
func Scan(src Source, opts ...Option) (uint64, error) {
	cfg := newConfig(opts)
	return scan(src, cfg.mode)
}

func scan(src Source, mode CountMode) (uint64, error) {
	sc := NewScanner(mode)
	for {
		chunk, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, err
		}
		sc.Feed(chunk)
	}

	slog.Debug("[fastasize]",
		slog.String("event_type", "scan.completed"),
		slog.Uint64("bytes", sc.Scanned()),
		slog.Uint64("residues", sc.Count()),
		slog.String("mode", mode.String()),
	)
	return sc.Count(), nil
}

// CountReader counts the residues of r using streamed reads.
func CountReader(r io.Reader, opts ...Option) (uint64, error) {
	cfg := newConfig(opts)
	return scan(NewStreamSource(r, cfg.bufferSize), cfg.mode)
}

// CountFile counts the residues of the file at path with the configured
// Strategy. The source is released before CountFile returns.
func CountFile(path string, opts ...Option) (count uint64, err error) {
	cfg := newConfig(opts)

	src, err := openSource(path, cfg)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := src.Close(); cerr != nil {
			slog.Error("[fastasize]",
				slog.String("event_type", "source.close.failed"),
				slog.String("path", path),
				slog.Any("err", cerr),
			)
			if err == nil {
				count = 0
			}
			err = errs.Combine(err, fmt.Errorf("closing %s: %w", path, cerr))
		}
	}()

	return scan(src, cfg.mode)
}

func openSource(path string, cfg config) (Source, error) {
	switch cfg.strategy {
	case StrategyStream:
		return OpenStreamSource(path, cfg.bufferSize)
	case StrategyMapped:
		return OpenMappedSource(path)
	case StrategyAuto:
		m, err := OpenMappedSource(path)
		if err == nil {
			return m, nil
		}
		if !errors.Is(err, ErrNotMappable) {
			return nil, err
		}
		slog.Debug("[fastasize]",
			slog.String("event_type", "scan.mapped.fallback.streamed"),
			slog.String("path", path),
			slog.Any("reason", err),
		)
		return OpenStreamSource(path, cfg.bufferSize)
	default:
		return nil, fmt.Errorf("unknown strategy %v", cfg.strategy)
	}
}
