package files

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
	"strings"

	"golang.org/x/crypto/sha3"
	"golang.org/x/sync/errgroup"
)

// Algorithm names a checksum algorithm. MD5 and SHA-1 are deliberately
// absent; both have known collisions.
type Algorithm string

const (
	SHA256  Algorithm = "sha256"
	SHA512  Algorithm = "sha512"
	SHA3224 Algorithm = "sha3-224"
	SHA3256 Algorithm = "sha3-256"
)

// normalize maps unknown algorithm names onto SHA3256.
func (a Algorithm) normalize() Algorithm {
	switch a {
	case SHA256, SHA512, SHA3224, SHA3256:
		return a
	}
	return SHA3256
}

func (a Algorithm) hasher() hash.Hash {
	switch a {
	case SHA256:
		return sha256.New()
	case SHA512:
		return sha512.New()
	case SHA3224:
		return sha3.New224()
	default:
		return sha3.New256()
	}
}

// Checksum returns the uppercase hex digest of the file's contents. Unknown
// algorithm names fall back to SHA3256.
func Checksum(path string, algo Algorithm) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("checksum %q: %w", path, err)
	}
	defer f.Close()

	h := algo.normalize().hasher()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("checksum %q: %w", path, err)
	}
	return strings.ToUpper(hex.EncodeToString(h.Sum(nil))), nil
}

// ChecksumAll computes the checksum of every path concurrently and returns a
// path-to-digest map. The first failure aborts the remaining work.
func ChecksumAll(paths []string, algo Algorithm) (map[string]string, error) {
	sums := make([]string, len(paths))

	var group errgroup.Group
	for i, path := range paths {
		i, path := i, path
		group.Go(func() error {
			sum, err := Checksum(path, algo)
			if err != nil {
				return err
			}
			sums[i] = sum
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]string, len(paths))
	for i, path := range paths {
		out[path] = sums[i]
	}
	return out, nil
}
