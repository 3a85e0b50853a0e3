package dynarray

import (
	"errors"
	"fmt"

	"github.com/hupe1980/dynarray/internal/rawbuf"
)

var (
	// ErrNegativeCapacity is returned when a negative element count is
	// requested for storage.
	ErrNegativeCapacity = errors.New("dynarray: negative capacity")
	// ErrCapacityOverflow is returned when a requested capacity cannot be
	// represented as a byte size.
	ErrCapacityOverflow = errors.New("dynarray: capacity overflow")
)

// translateErr maps internal storage errors onto the public sentinels.
// Element errors pass through unmodified.
func translateErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, rawbuf.ErrNegativeCapacity) {
		return fmt.Errorf("%w: %w", ErrNegativeCapacity, err)
	}
	if errors.Is(err, rawbuf.ErrSizeOverflow) {
		return fmt.Errorf("%w: %w", ErrCapacityOverflow, err)
	}
	return err
}
