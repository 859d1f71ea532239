// Package fastasize counts the sequence residues of FASTA input.
//
// A residue is any byte that is not '\n' and is not part of a header line
// (a line starting at '>'). Input can be streamed through a fixed buffer or
// memory mapped whole, and each chunk is counted either with a branching
// loop or a branchless one. Every combination returns the same count.
//
//	n, err := fastasize.CountFile("genome.fa", fastasize.WithCountMode(fastasize.Branchless))
//
// Input that does not start with '>' is counted from its first byte.
package fastasize
