package files_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blast-analytics-marketing/blast-developer-tools/files"
)

func TestChecksum_SHA256(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "data.csv", "abc")

	sum, err := files.Checksum(path, files.SHA256)
	require.NoError(t, err)
	require.Equal(t, "BA7816BF8F01CFEA414140DE5DAE2223B00361A396177A9CB410FF61F20015AD", sum)
}

func TestChecksum_UnknownAlgorithmFallsBack(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "data.csv", "abc")

	fallback, err := files.Checksum(path, files.Algorithm("md5"))
	require.NoError(t, err)

	sha3sum, err := files.Checksum(path, files.SHA3256)
	require.NoError(t, err)
	require.Equal(t, sha3sum, fallback)
}

func TestChecksum_Algorithms(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "data.csv", "abc")

	lengths := map[files.Algorithm]int{
		files.SHA256:  64,
		files.SHA512:  128,
		files.SHA3224: 56,
		files.SHA3256: 64,
	}
	for algo, hexLen := range lengths {
		sum, err := files.Checksum(path, algo)
		require.NoError(t, err)
		require.Len(t, sum, hexLen, "algorithm %s", algo)
		require.Regexp(t, `^[0-9A-F]+$`, sum)
	}
}

func TestChecksum_MissingFile(t *testing.T) {
	_, err := files.Checksum(filepath.Join(t.TempDir(), "missing.csv"), files.SHA256)
	require.Error(t, err)
}

func TestChecksumAll(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.csv", "abc")
	b := writeFile(t, dir, "b.csv", "abc")
	c := writeFile(t, dir, "c.csv", "different")

	sums, err := files.ChecksumAll([]string{a, b, c}, files.SHA256)
	require.NoError(t, err)
	require.Len(t, sums, 3)
	require.Equal(t, sums[a], sums[b])
	require.NotEqual(t, sums[a], sums[c])
}

func TestChecksumAll_ErrorAborts(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.csv", "abc")

	_, err := files.ChecksumAll([]string{a, filepath.Join(dir, "missing.csv")}, files.SHA256)
	require.Error(t, err)
}

func TestGenerateRandomData(t *testing.T) {
	dir := t.TempDir()

	asciiMB, binaryMB := 0.02, 0.01

	ascii := filepath.Join(dir, "ascii_data.csv")
	require.NoError(t, files.GenerateRandomData(ascii, false, asciiMB))
	require.GreaterOrEqual(t, files.Size(ascii), int64(asciiMB*1024*1024))

	binary := filepath.Join(dir, "binary_data.json")
	require.NoError(t, files.GenerateRandomData(binary, true, binaryMB))
	require.GreaterOrEqual(t, files.Size(binary), int64(binaryMB*1024*1024))

	require.Error(t, files.GenerateRandomData(filepath.Join(dir, "zero.csv"), false, 0))
}
