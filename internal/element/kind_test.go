package element

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindOrderingIsMonotonic(t *testing.T) {
	order := []Kind{
		KindNull, KindNegTime, KindNegInteger, KindBool, KindInteger,
		KindTime, KindBlob, KindText, KindUUID, KindSep,
	}

	for i := 1; i < len(order); i++ {
		require.Less(t, byte(order[i-1]), byte(order[i]), "kind byte table must be strictly increasing")
	}
}

func TestKindString(t *testing.T) {
	require.Equal(t, "null", KindNull.String())
	require.Equal(t, "sep", KindSep.String())
	require.Equal(t, "unknown", Kind(0x00).String())
}
