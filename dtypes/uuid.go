package dtypes

import (
	uuid "github.com/satori/go.uuid"

	"github.com/brinecore/dcbor"
	"github.com/brinecore/dcbor/tag"
)

// UUIDTag is the CBOR tag for a binary UUID (tag 37).
const UUIDTag uint64 = 37

// UUID is a CBOR-friendly wrapper around a 16-byte UUID, round-tripping
// through Tagged(37, ByteString(16 bytes)). It is built on
// github.com/satori/go.uuid, the UUID library the example pack's
// kryptco-kr client uses directly for protocol identifiers.
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random (v4) UUID.
func NewUUID() UUID { return UUID{id: uuid.NewV4()} }

// UUIDFromBytes wraps a 16-byte slice as a UUID, the same way
// PairingSecret.DeriveUUID derives one from a digest in the example pack's
// kryptco-kr client.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, &dcbor.ModelError{Msg: "uuid: " + err.Error()}
	}
	return UUID{id: id}, nil
}

// String renders the canonical 8-4-4-4-12 hyphenated form.
func (u UUID) String() string { return u.id.String() }

// Bytes returns the 16 raw bytes.
func (u UUID) Bytes() []byte {
	b := make([]byte, 16)
	copy(b, u.id.Bytes())
	return b
}

// TagValue implements tag.Taggable.
func (u UUID) TagValue() uint64 { return UUIDTag }

// ToUntagged implements tag.Taggable.
func (u UUID) ToUntagged() dcbor.Value {
	return dcbor.NewBytes(u.Bytes())
}

// Encode wraps u as Tagged(37, ByteString(16 bytes)).
func (u UUID) Encode() dcbor.Value { return tag.Encode(u) }

// DecodeUUID matches v against Tagged(37, inner) and decodes inner as a
// UUID.
func DecodeUUID(v dcbor.Value) (UUID, error) {
	return tag.Decode(v, UUIDTag, uuidFromUntagged)
}

func uuidFromUntagged(v dcbor.Value) (UUID, error) {
	b, err := v.AsBytes()
	if err != nil {
		return UUID{}, err
	}
	return UUIDFromBytes(b)
}
