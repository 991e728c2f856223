package tuple

import (
	"bytes"
	"fmt"
	"time"

	uuid "github.com/satori/go.uuid"

	"github.com/ordkv/tuplekey/errs"
	"github.com/ordkv/tuplekey/internal/element"
	"github.com/ordkv/tuplekey/internal/iobuf"
)

// encodeElement dispatches a single Go value to its element.Encode* writer
// based on its dynamic type. This is the one place the Tuple -> wire
// mapping is decided; everything downstream (Pack, Packs, Key
// construction, Key.CompareTuple) goes through it.
func encodeElement(w *iobuf.Writer, v any) error {
	switch x := v.(type) {
	case nil:
		element.EncodeNull(w)
	case bool:
		element.EncodeBool(w, x)
	case int:
		element.EncodeInt(w, int64(x))
	case int8:
		element.EncodeInt(w, int64(x))
	case int16:
		element.EncodeInt(w, int64(x))
	case int32:
		element.EncodeInt(w, int64(x))
	case int64:
		element.EncodeInt(w, x)
	case uint:
		element.EncodeUint(w, uint64(x))
	case uint8:
		element.EncodeUint(w, uint64(x))
	case uint16:
		element.EncodeUint(w, uint64(x))
	case uint32:
		element.EncodeUint(w, uint64(x))
	case uint64:
		element.EncodeUint(w, x)
	case []byte:
		element.EncodeBlob(w, x)
	case string:
		element.EncodeText(w, x)
	case time.Time:
		return element.EncodeTime(w, x)
	case uuid.UUID:
		element.EncodeUUID(w, x)
	default:
		return fmt.Errorf("%w: %T", errs.ErrUnsupportedType, v)
	}

	return nil
}

// CompareBytes exposes the raw memcmp-equivalent ordering the codec
// relies on, for callers (e.g. a Store/Index layer) holding already
// encoded bytes who don't want to allocate a Key just to compare them.
func CompareBytes(a, b []byte) int {
	return bytes.Compare(a, b)
}
