package binary

import (
	"crypto/ed25519"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalars_RoundTrip(t *testing.T) {
	data := make([]byte, 8+8+4+2+1)

	var offset int
	PutUint64(data[offset:], math.MaxUint64-1, &offset)
	PutInt64(data[offset:], -42, &offset)
	PutUint32(data[offset:], 0x01020304, &offset)
	PutUint16(data[offset:], 0x0506, &offset)
	PutUint8(data[offset:], 7, &offset)
	require.Equal(t, len(data), offset)

	// Little endian at natural width
	assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, data[16:20])
	assert.Equal(t, []byte{0x06, 0x05}, data[20:22])
	assert.EqualValues(t, 7, data[22])

	var u64 uint64
	var i64 int64
	var u32 uint32
	var u16 uint16
	var u8 uint8

	offset = 0
	GetUint64(data[offset:], &u64, &offset)
	GetInt64(data[offset:], &i64, &offset)
	GetUint32(data[offset:], &u32, &offset)
	GetUint16(data[offset:], &u16, &offset)
	GetUint8(data[offset:], &u8, &offset)
	require.Equal(t, len(data), offset)

	assert.EqualValues(t, uint64(math.MaxUint64-1), u64)
	assert.EqualValues(t, -42, i64)
	assert.EqualValues(t, 0x01020304, u32)
	assert.EqualValues(t, 0x0506, u16)
	assert.EqualValues(t, 7, u8)
}

func TestBytes_RoundTrip(t *testing.T) {
	key, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	reserved := make([]byte, 5)
	for i := range reserved {
		reserved[i] = byte(i + 1)
	}

	data := make([]byte, DiscriminatorSize+ed25519.PublicKeySize+len(reserved))

	var offset int
	PutDiscriminator(data[offset:], 5, &offset)
	PutKey32(data[offset:], key, &offset)
	PutFixedBytes(data[offset:], reserved, len(reserved), &offset)
	require.Equal(t, len(data), offset)

	assert.Equal(t, []byte{5, 0, 0, 0, 0, 0, 0, 0}, data[:DiscriminatorSize])

	var discriminator uint64
	var actualKey ed25519.PublicKey
	var actualReserved []byte

	offset = 0
	GetDiscriminator(data[offset:], &discriminator, &offset)
	GetKey32(data[offset:], &actualKey, &offset)
	GetFixedBytes(data[offset:], &actualReserved, len(reserved), &offset)

	assert.EqualValues(t, 5, discriminator)
	assert.Equal(t, key, actualKey)
	assert.Equal(t, reserved, actualReserved)

	// Decoded values must not alias the source buffer
	data[DiscriminatorSize] ^= 0xff
	assert.Equal(t, key, actualKey)
}
