package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeFasta(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func TestRun_Stdin(t *testing.T) {
	code, out, _ := runCLI(t, ">seq1\nACGT\n")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "4\n", out)

	code, out, _ = runCLI(t, ">a\nAC\n>b\nGTT\n", "-mode", "branchless", "-")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "5\n", out)
}

func TestRun_EmptyPrintsZero(t *testing.T) {
	code, out, _ := runCLI(t, "")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "0\n", out)
}

func TestRun_Files(t *testing.T) {
	a := writeFasta(t, "a.fa", ">a\nAC\n")
	b := writeFasta(t, "b.fa", ">b\nGTT\n")

	for _, strategy := range []string{"auto", "stream", "mmap"} {
		code, out, stderr := runCLI(t, "", "-strategy", strategy, a)
		assert.Equal(t, exitOK, code, stderr)
		assert.Equal(t, "2\n", out)
	}

	code, out, _ := runCLI(t, "", "-buffer", "1", a, b)
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "2\t"+a+"\n3\t"+b+"\n5\ttotal\n", out)
}

func TestRun_Errors(t *testing.T) {
	code, _, stderr := runCLI(t, "", filepath.Join(t.TempDir(), "missing.fa"))
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "failed to open input")

	code, _, _ = runCLI(t, "", "-mode", "vectorized")
	assert.Equal(t, exitUsage, code)

	code, _, _ = runCLI(t, "", "-strategy", "carrier-pigeon")
	assert.Equal(t, exitUsage, code)

	code, _, _ = runCLI(t, "", "-no-such-flag")
	assert.Equal(t, exitUsage, code)
}

func TestRun_Help(t *testing.T) {
	code, _, stderr := runCLI(t, "", "-h")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stderr, "usage: fastasize")
}

func TestRun_EnvDefaults(t *testing.T) {
	t.Setenv("FASTASIZE_MODE", "branchless")
	t.Setenv("FASTASIZE_BUFFER", "3")

	code, out, _ := runCLI(t, "ACGT\n>h\nTT")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "6\n", out)

	t.Setenv("FASTASIZE_MODE", "bogus")
	code, _, _ = runCLI(t, "ACGT\n")
	assert.Equal(t, exitUsage, code)
}
