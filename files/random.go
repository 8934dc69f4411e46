package files

import (
	cryptorand "crypto/rand"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
)

// asciiPool is the character set for text-mode random data: letters,
// punctuation, and digits.
const asciiPool = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~" +
	"0123456789"

// GenerateRandomData writes a file of at least the requested size in
// megabytes (1024 base): random bytes in binary mode, shuffled printable
// ASCII otherwise. It verifies the resulting file size.
func GenerateRandomData(path string, binary bool, megabytes float64) error {
	sizeBytes := int64(megabytes * 1024 * 1024)
	if sizeBytes <= 0 {
		return fmt.Errorf("generate %q: size must be positive, got %gMB", path, megabytes)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("generate %q: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("generate %q: %w", path, err)
	}

	if binary {
		_, err = io.CopyN(f, cryptorand.Reader, sizeBytes)
	} else {
		err = writeRandomASCII(f, sizeBytes)
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("generate %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("generate %q: %w", path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("generate %q: %w", path, err)
	}
	if info.Size() < sizeBytes {
		return fmt.Errorf("generate %q: wrote %d of %d bytes", path, info.Size(), sizeBytes)
	}
	return nil
}

func writeRandomASCII(w io.Writer, sizeBytes int64) error {
	pool := []byte(asciiPool)
	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	chunk := make([]byte, len(pool))
	remaining := sizeBytes
	for remaining > 0 {
		for i := range chunk {
			chunk[i] = pool[rand.Intn(len(pool))]
		}
		out := chunk
		if remaining < int64(len(out)) {
			out = out[:remaining]
		}
		n, err := w.Write(out)
		if err != nil {
			return err
		}
		remaining -= int64(n)
	}
	return nil
}
