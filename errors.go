package fastasize

import "errors"

var (
	ErrInputOpen   = errors.New("failed to open input")
	ErrSizeProbe   = errors.New("failed to probe input size")
	ErrMapping     = errors.New("failed to map input")
	ErrRead        = errors.New("failed to read input")
	ErrClosed      = errors.New("the input source is closed")
	ErrNotMappable error = notMappableError{}
)

// notMappableError reports an input that can only be streamed (pipes,
// devices, empty files). It matches ErrMapping under errors.Is.
type notMappableError struct{}

func (notMappableError) Error() string { return "input is not a mappable regular file" }

func (notMappableError) Is(target error) bool { return target == ErrMapping }

// ErrorKind is the class of I/O failure that aborted a scan.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindInputOpen
	KindSizeProbe
	KindMapping
	KindRead
	KindOther
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindInputOpen:
		return "input_open"
	case KindSizeProbe:
		return "size_probe"
	case KindMapping:
		return "mapping"
	case KindRead:
		return "read"
	default:
		return "other"
	}
}

// KindOf classifies err. A nil error is KindNone.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrInputOpen):
		return KindInputOpen
	case errors.Is(err, ErrSizeProbe):
		return KindSizeProbe
	case errors.Is(err, ErrMapping):
		return KindMapping
	case errors.Is(err, ErrRead):
		return KindRead
	default:
		return KindOther
	}
}
