package dtypes

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brinecore/dcbor"
)

func TestUUIDRoundTrip(t *testing.T) {
	u := NewUUID()
	encoded := u.Encode()

	tagVal, content, err := encoded.Tag()
	require.NoError(t, err)
	require.Equal(t, UUIDTag, tagVal)

	raw, err := content.AsBytes()
	require.NoError(t, err)
	require.Len(t, raw, 16)

	decoded, err := DecodeUUID(encoded)
	require.NoError(t, err)
	require.Equal(t, u.String(), decoded.String())
}

func TestUUIDFromBytesRejectsWrongLength(t *testing.T) {
	_, err := UUIDFromBytes([]byte{1, 2, 3})
	require.Error(t, err)
}

func TestDecodeUUIDWrongTag(t *testing.T) {
	wrong := dcbor.NewTagged(1, dcbor.NewBytes(make([]byte, 16)))
	_, err := DecodeUUID(wrong)
	require.Error(t, err)
}
