// Package image handles the on-disk form of a program: a flat binary file
// exactly MemSize bytes long, byte i living at CPU memory address i
// (spec.md §6). Both cmd/asm and cmd/sim go through this package rather than
// touching os.ReadFile/os.WriteFile directly.
package image

import (
	"errors"
	"fmt"
	"os"

	"github.com/kstephano/vx16/internal/cpu"
)

// Size is the fixed length every image must have.
const Size = cpu.MemSize

// ErrBadInputLength means a loaded file's length isn't exactly Size bytes
// (spec.md §7's BadInputLength).
var ErrBadInputLength = errors.New("image: bad input length")

// Load reads path and validates its length. The returned slice is always
// exactly Size bytes.
func Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("image: %w", err)
	}
	if len(data) != Size {
		return nil, fmt.Errorf("%w: %s is %d bytes, want %d", ErrBadInputLength, path, len(data), Size)
	}
	return data, nil
}

// Save writes image to path, failing if it isn't exactly Size bytes — a
// caller constructing an image by hand (as opposed to through
// internal/assemble, which always emits Size bytes) gets the same guarantee
// a Load call would enforce.
func Save(path string, image []byte) error {
	if len(image) != Size {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrBadInputLength, len(image), Size)
	}
	if err := os.WriteFile(path, image, 0o644); err != nil {
		return fmt.Errorf("image: %w", err)
	}
	return nil
}
