package binary

import (
	"crypto/ed25519"
	"encoding/binary"
)

// DiscriminatorSize is the size of the leading tag stored in program owned
// accounts.
const DiscriminatorSize = 8

// All Put* and Get* functions operate on the start of the provided slice and
// advance offset by the encoded width. Callers slice the buffer at the current
// offset, and are responsible for bounds checking the full buffer up front.

func PutKey32(dst []byte, src []byte, offset *int) {
	copy(dst[:ed25519.PublicKeySize], src)
	*offset += ed25519.PublicKeySize
}

func PutFixedBytes(dst []byte, src []byte, length int, offset *int) {
	copy(dst[:length], src)
	*offset += length
}

func PutDiscriminator(dst []byte, v uint64, offset *int) {
	PutUint64(dst, v, offset)
}

func PutUint64(dst []byte, v uint64, offset *int) {
	binary.LittleEndian.PutUint64(dst, v)
	*offset += 8
}

func PutInt64(dst []byte, v int64, offset *int) {
	binary.LittleEndian.PutUint64(dst, uint64(v))
	*offset += 8
}

func PutUint32(dst []byte, v uint32, offset *int) {
	binary.LittleEndian.PutUint32(dst, v)
	*offset += 4
}

func PutUint16(dst []byte, v uint16, offset *int) {
	binary.LittleEndian.PutUint16(dst, v)
	*offset += 2
}

func PutUint8(dst []byte, v uint8, offset *int) {
	dst[0] = v
	*offset += 1
}

func GetKey32(src []byte, dst *ed25519.PublicKey, offset *int) {
	*dst = make([]byte, ed25519.PublicKeySize)
	copy(*dst, src)
	*offset += ed25519.PublicKeySize
}

func GetFixedBytes(src []byte, dst *[]byte, length int, offset *int) {
	*dst = make([]byte, length)
	copy(*dst, src)
	*offset += length
}

func GetDiscriminator(src []byte, dst *uint64, offset *int) {
	GetUint64(src, dst, offset)
}

func GetUint64(src []byte, dst *uint64, offset *int) {
	*dst = binary.LittleEndian.Uint64(src)
	*offset += 8
}

func GetInt64(src []byte, dst *int64, offset *int) {
	*dst = int64(binary.LittleEndian.Uint64(src))
	*offset += 8
}

func GetUint32(src []byte, dst *uint32, offset *int) {
	*dst = binary.LittleEndian.Uint32(src)
	*offset += 4
}

func GetUint16(src []byte, dst *uint16, offset *int) {
	*dst = binary.LittleEndian.Uint16(src)
	*offset += 2
}

func GetUint8(src []byte, dst *uint8, offset *int) {
	*dst = src[0]
	*offset += 1
}
