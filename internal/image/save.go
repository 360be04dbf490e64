package image

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
)

// ErrWrite is returned when a generated image cannot be written to disk.
var ErrWrite = errors.New("failed to write image")

// Filename returns the name an image with hash h is saved under.
func Filename(h Hash, format Format) string {
	return h.String() + format.Ext()
}

// Save hashes img and writes it into dir as <hash>.<ext>.
// An existing file with the same name is replaced. Returns the written path.
func Save(img image.Image, dir string, format Format) (string, error) {
	hash, err := AverageHash(img)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, Filename(hash, format))
	if err := writeAtomic(path, img, format); err != nil {
		return "", err
	}

	return path, nil
}

// writeAtomic encodes img into a temporary file next to path and renames it
// into place, so a failed write never leaves a partial image behind.
func writeAtomic(path string, img image.Image, format Format) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".gradhash-*"+format.Ext())
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	w := bufio.NewWriter(tmp)
	if err = format.Encode(w, img); err != nil {
		return fmt.Errorf("%w: encoding %s: %w", ErrWrite, format, err)
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil { // #nosec G302 - Generated images are meant to be shared
		return fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}

	return nil
}
