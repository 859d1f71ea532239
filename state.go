package fastasize

// HeaderState tells whether the scanner is inside a header line.
// The numeric values are used directly by the branchless counter.
type HeaderState uint8

const (
	InSequence HeaderState = 0
	InHeader   HeaderState = 1
)

func (s HeaderState) String() string {
	if s == InHeader {
		return "IN_HEADER"
	}
	return "IN_SEQUENCE"
}

// Next returns the state after consuming c. A '>' always enters a header,
// a '\n' always leaves it, and every other byte keeps the current state.
func (s HeaderState) Next(c byte) HeaderState {
	switch c {
	case '>':
		return InHeader
	case '\n':
		return InSequence
	default:
		return s
	}
}
