package layout

import (
	"crypto/ed25519"
	"testing"

	"github.com/near/borsh-go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jito-foundation/restaking-client-go/pkg/solana"
)

type borshTicket struct {
	Discriminator uint64
	Vault         [32]byte
	Staker        [32]byte
	Base          [32]byte
	VrtAmount     uint64
	SlotUnstaked  uint64
	Bump          uint8
	Reserved      [263]byte
}

func TestRecordDescriptor_RoundTrip(t *testing.T) {
	keys := generateKeys(t, 4)
	d := newTicketDescriptor(keys[0])
	require.NoError(t, d.Validate())
	assert.Equal(t, 384, d.Size())

	reserved := make([]byte, 263)
	for i := range reserved {
		reserved[i] = byte(i * 7)
	}

	record := &Record{
		Discriminator: 5,
		Values: Values{
			"vault":         keys[1],
			"staker":        keys[2],
			"base":          keys[3],
			"vrt_amount":    uint64(123_456_789),
			"slot_unstaked": uint64(280_000_000),
			"bump":          uint8(254),
		},
		Reserved: reserved,
	}

	encoded, err := d.Encode(record)
	require.NoError(t, err)
	require.Len(t, encoded, d.Size())

	again, err := d.Encode(record)
	require.NoError(t, err)
	assert.Equal(t, encoded, again)

	decoded, err := d.Decode(encoded)
	require.NoError(t, err)
	assert.EqualValues(t, 5, decoded.Discriminator)
	assert.EqualValues(t, keys[1], decoded.Values["vault"])
	assert.EqualValues(t, keys[2], decoded.Values["staker"])
	assert.EqualValues(t, keys[3], decoded.Values["base"])
	assert.Equal(t, uint64(123_456_789), decoded.Values["vrt_amount"])
	assert.Equal(t, uint64(280_000_000), decoded.Values["slot_unstaked"])
	assert.Equal(t, uint8(254), decoded.Values["bump"])
	assert.Equal(t, reserved, decoded.Reserved)

	reencoded, err := d.Encode(decoded)
	require.NoError(t, err)
	assert.Equal(t, encoded, reencoded)

	var expected borshTicket
	expected.Discriminator = 5
	copy(expected.Vault[:], keys[1])
	copy(expected.Staker[:], keys[2])
	copy(expected.Base[:], keys[3])
	expected.VrtAmount = 123_456_789
	expected.SlotUnstaked = 280_000_000
	expected.Bump = 254
	copy(expected.Reserved[:], reserved)

	serialized, err := borsh.Serialize(expected)
	require.NoError(t, err)
	assert.Equal(t, serialized, encoded)
}

func TestRecordDescriptor_ShortBuffer(t *testing.T) {
	keys := generateKeys(t, 1)
	d := newTicketDescriptor(keys[0])

	_, err := d.Decode(make([]byte, d.Size()-1))
	assert.True(t, errors.Is(err, ErrBufferTooShort))

	_, err = d.DecodeVerified(make([]byte, 7))
	assert.True(t, errors.Is(err, ErrBufferTooShort))

	// Longer buffers are accepted, as accounts may be over allocated
	_, err = d.Decode(make([]byte, d.Size()+16))
	assert.NoError(t, err)
}

func TestRecordDescriptor_Discriminator(t *testing.T) {
	keys := generateKeys(t, 1)
	d := newTicketDescriptor(keys[0])

	data := make([]byte, d.Size())
	data[0] = 9

	record, err := d.Decode(data)
	require.NoError(t, err)
	assert.EqualValues(t, 9, record.Discriminator)

	_, err = d.DecodeVerified(data)
	assert.True(t, errors.Is(err, ErrDiscriminatorMismatch))

	data[0] = 5
	record, err = d.DecodeVerified(data)
	require.NoError(t, err)
	assert.EqualValues(t, 5, record.Discriminator)
}

func TestRecordDescriptor_Enum(t *testing.T) {
	keys := generateKeys(t, 1)
	d := &RecordDescriptor{
		Name:          "role_record",
		Owner:         keys[0],
		Discriminator: 1,
		Fields: []Field{
			Struct("inner", Enum("role", "a", "b"), U16("weight")),
		},
		Reserved: 3,
	}
	require.NoError(t, d.Validate())
	assert.Equal(t, 8+1+2+3, d.Size())

	data, err := d.Encode(&Record{
		Discriminator: 1,
		Values: Values{
			"inner": Values{"role": Variant(1), "weight": uint16(300)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 0, 0, 0, 0, 0, 0, 0, 1, 0x2c, 0x01, 0, 0, 0}, data)

	data[8] = 2
	_, err = d.Decode(data)
	assert.True(t, errors.Is(err, ErrInvalidEnumVariant))

	_, err = d.Encode(&Record{
		Discriminator: 1,
		Values: Values{
			"inner": Values{"role": Variant(0)},
		},
	})
	mfe, ok := err.(*solana.MissingFieldError)
	require.True(t, ok)
	assert.Equal(t, "role_record.inner.weight", mfe.Field)

	_, err = d.Encode(&Record{
		Values: Values{
			"inner": Values{"role": Variant(0), "weight": uint16(1)},
		},
		Reserved: make([]byte, 2),
	})
	assert.True(t, errors.Is(err, ErrInvalidValue))
}

func TestRecordDescriptor_NoReserved(t *testing.T) {
	keys := generateKeys(t, 2)
	d := &RecordDescriptor{
		Name:          "counter",
		Owner:         keys[0],
		Discriminator: 2,
		Fields:        []Field{PublicKey("owner"), U64("count")},
	}
	require.NoError(t, d.Validate())

	record := &Record{
		Discriminator: 2,
		Values: Values{
			"owner": keys[1],
			"count": uint64(42),
		},
	}

	data, err := d.Encode(record)
	require.NoError(t, err)

	decoded, err := d.Decode(data)
	require.NoError(t, err)
	assert.Nil(t, decoded.Reserved)
	assert.Equal(t, record, decoded)
}

func TestRecordDescriptor_FieldHelpers(t *testing.T) {
	role := Enum("role", "ncn_admin", "vault_admin")

	name, err := role.VariantName(1)
	require.NoError(t, err)
	assert.Equal(t, "vault_admin", name)

	_, err = role.VariantName(2)
	assert.True(t, errors.Is(err, ErrInvalidEnumVariant))

	v, err := role.VariantByName("ncn_admin")
	require.NoError(t, err)
	assert.Equal(t, Variant(0), v)

	_, err = role.VariantByName("voter_admin")
	assert.True(t, errors.Is(err, ErrInvalidEnumVariant))

	_, err = U8("bump").VariantName(0)
	assert.Error(t, err)

	assert.Equal(t, "pubkey", KindPublicKey.String())
	assert.Equal(t, "unknown", Kind(99).String())
}

func newTicketDescriptor(owner ed25519.PublicKey) *RecordDescriptor {
	return &RecordDescriptor{
		Name:          "vault_staker_withdrawal_ticket",
		Owner:         owner,
		Discriminator: 5,
		Fields: []Field{
			PublicKey("vault"),
			PublicKey("staker"),
			PublicKey("base"),
			U64("vrt_amount"),
			U64("slot_unstaked"),
			U8("bump"),
		},
		Reserved: 263,
	}
}
