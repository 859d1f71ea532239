package fastasize

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/aclements/go-perfevent/perfbench"
	"github.com/zeebo/mwc"
)

// benchFasta builds size bytes of FASTA with 60-column lines and a header
// every lineCount lines.
func benchFasta(size, lineCount int) []byte {
	rng := mwc.New(1, 1)
	const bases = "ACGT"

	var buf bytes.Buffer
	buf.Grow(size)
	for record := 0; buf.Len() < size; record++ {
		fmt.Fprintf(&buf, ">record_%d some description\n", record)
		for l := 0; l < lineCount && buf.Len() < size; l++ {
			for i := 0; i < 60; i++ {
				buf.WriteByte(bases[rng.Uint64n(4)])
			}
			buf.WriteByte('\n')
		}
	}
	return buf.Bytes()[:size]
}

var benchCases = []struct {
	name  string
	size  int
	lines int
}{
	{"Genome_4MB", 4 << 20, 1 << 16},
	{"Proteome_4MB", 4 << 20, 4},
	{"Headers_1MB", 1 << 20, 0},
}

func BenchmarkCountBytes(b *testing.B) {
	for _, bc := range benchCases {
		data := benchFasta(bc.size, bc.lines)
		for _, mode := range countModes {
			b.Run(fmt.Sprintf("%s/%s", bc.name, mode), func(b *testing.B) {
				perfbench.Open(b)
				b.SetBytes(int64(len(data)))
				b.ReportAllocs()

				for b.Loop() {
					CountBytes(data, mode)
				}
			})
		}
	}
}

func BenchmarkCountFile(b *testing.B) {
	data := benchFasta(16<<20, 1<<16)
	path := filepath.Join(b.TempDir(), "bench.fa")
	if err := os.WriteFile(path, data, 0644); err != nil {
		b.Fatal(err)
	}

	bufferSizes := []int{4 << 10, 16 << 10, 64 << 10}

	b.Run("Mapped", func(b *testing.B) {
		perfbench.Open(b)
		b.SetBytes(int64(len(data)))
		for b.Loop() {
			if _, err := CountFile(path, WithStrategy(StrategyMapped)); err != nil {
				b.Fatal(err)
			}
		}
	})
	for _, size := range bufferSizes {
		b.Run(fmt.Sprintf("Stream_%dKB", size>>10), func(b *testing.B) {
			perfbench.Open(b)
			b.SetBytes(int64(len(data)))
			for b.Loop() {
				if _, err := CountFile(path, WithStrategy(StrategyStream), WithBufferSize(size)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
