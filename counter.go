package fastasize

import "fmt"

// CountMode selects how residues are counted inside a chunk.
// Both modes produce identical counts.
type CountMode int

const (
	// Branching uses an if/else chain per byte.
	Branching CountMode = iota

	// Branchless folds the byte predicates as 0/1 integers.
	Branchless
)

func (m CountMode) String() string {
	switch m {
	case Branching:
		return "branching"
	case Branchless:
		return "branchless"
	default:
		return fmt.Sprintf("CountMode(%d)", int(m))
	}
}

// ParseCountMode is the inverse of CountMode.String.
func ParseCountMode(s string) (CountMode, error) {
	switch s {
	case "branching":
		return Branching, nil
	case "branchless":
		return Branchless, nil
	}
	return 0, fmt.Errorf("unknown count mode %q", s)
}

// countFunc counts residues in buf starting in state and returns the state
// after the last byte and the updated count.
type countFunc func(buf []byte, state HeaderState, count uint64) (HeaderState, uint64)

func (m CountMode) countFunc() countFunc {
	if m == Branchless {
		return countBranchless
	}
	return countBranching
}

func countBranching(buf []byte, state HeaderState, count uint64) (HeaderState, uint64) {
	inHeader := state == InHeader
	for _, c := range buf {
		if c == '>' {
			inHeader = true
		} else if c == '\n' {
			inHeader = false
		} else if !inHeader {
			count++
		}
	}
	if inHeader {
		return InHeader, count
	}
	return InSequence, count
}

func countBranchless(buf []byte, state HeaderState, count uint64) (HeaderState, uint64) {
	h := uint64(state)
	for _, c := range buf {
		nl := b2u(c == '\n')
		// '>' must set the flag before the byte is classified so that the
		// marker itself is never counted.
		h |= b2u(c == '>')
		count += (h | nl) ^ 1
		h &= nl ^ 1
	}
	return HeaderState(h), count
}

// b2u compiles to a SETcc, not a jump.
func b2u(b bool) uint64 {
	var v uint64
	if b {
		v = 1
	}
	return v
}

// CountBytes counts the residues in buf, starting outside of a header.
func CountBytes(buf []byte, mode CountMode) uint64 {
	_, n := mode.countFunc()(buf, InSequence, 0)
	return n
}
