package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSentinelsAreDistinct(t *testing.T) {
	all := []error{
		ErrTruncated,
		ErrCorrupt,
		ErrUnsupportedType,
		ErrOutOfRange,
		ErrOutOfMemory,
		ErrTypeMismatch,
	}

	for i, a := range all {
		for j, b := range all {
			if i == j {
				continue
			}
			require.False(t, errors.Is(a, b), "sentinel %d should not match sentinel %d", i, j)
		}
	}
}

func TestSentinelsWrapWithFmt(t *testing.T) {
	wrapped := fmt.Errorf("%w: extra context", ErrTruncated)
	require.ErrorIs(t, wrapped, ErrTruncated)
}
