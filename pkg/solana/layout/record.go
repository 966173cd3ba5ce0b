package layout

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/jito-foundation/restaking-client-go/pkg/solana/binary"
)

// RecordDescriptor describes the fixed layout of a program owned account:
//
//	[8 byte discriminator][fields in declaration order][reserved bytes]
type RecordDescriptor struct {
	Name          string
	Owner         ed25519.PublicKey
	Discriminator uint64
	Fields        []Field

	// Reserved is the size of the trailing padding. Its contents are never
	// interpreted, but are preserved across decode and encode.
	Reserved int
}

// Record is a decoded account.
type Record struct {
	Discriminator uint64
	Values        Values
	Reserved      []byte
}

// Validate checks the descriptor is well formed.
func (d *RecordDescriptor) Validate() error {
	if len(d.Name) == 0 {
		return errors.New("record descriptor missing name")
	}
	if len(d.Owner) != ed25519.PublicKeySize {
		return errors.Errorf("%s: invalid owner", d.Name)
	}
	if d.Reserved < 0 {
		return errors.Errorf("%s: invalid reserved size %d", d.Name, d.Reserved)
	}
	return validateFields(d.Fields, d.Name+".")
}

// WithOwner returns a copy of the descriptor owned by a different program
// deployment.
func (d *RecordDescriptor) WithOwner(owner ed25519.PublicKey) *RecordDescriptor {
	cloned := *d
	cloned.Owner = owner
	return &cloned
}

// Size is the fixed encoded width of the record.
func (d *RecordDescriptor) Size() int {
	return binary.DiscriminatorSize + fieldsSize(d.Fields) + d.Reserved
}

// Encode serializes the record. A nil Reserved is encoded as zeros.
func (d *RecordDescriptor) Encode(record *Record) ([]byte, error) {
	if record.Reserved != nil && len(record.Reserved) != d.Reserved {
		return nil, errors.Wrapf(ErrInvalidValue, "%s: expected %d reserved bytes, got %d", d.Name, d.Reserved, len(record.Reserved))
	}

	var offset int
	data := make([]byte, d.Size())

	binary.PutDiscriminator(data[offset:], record.Discriminator, &offset)
	if err := encodeFields(data, d.Fields, record.Values, d.Name+".", &offset); err != nil {
		return nil, err
	}
	binary.PutFixedBytes(data[offset:], record.Reserved, d.Reserved, &offset)

	return data, nil
}

// Decode parses the record without checking the discriminator. Callers that
// need that guarantee should use DecodeVerified.
func (d *RecordDescriptor) Decode(data []byte) (*Record, error) {
	if len(data) < d.Size() {
		return nil, errors.Wrapf(ErrBufferTooShort, "%s: expected %d bytes, got %d", d.Name, d.Size(), len(data))
	}

	var offset int
	var record Record

	binary.GetDiscriminator(data[offset:], &record.Discriminator, &offset)

	values, err := decodeFields(data, d.Fields, d.Name+".", &offset)
	if err != nil {
		return nil, err
	}
	record.Values = values

	if d.Reserved > 0 {
		binary.GetFixedBytes(data[offset:], &record.Reserved, d.Reserved, &offset)
	}

	return &record, nil
}

// DecodeVerified parses the record, failing if the leading discriminator is
// not the one assigned to the descriptor.
func (d *RecordDescriptor) DecodeVerified(data []byte) (*Record, error) {
	if err := d.VerifyDiscriminator(data); err != nil {
		return nil, err
	}
	return d.Decode(data)
}

// VerifyDiscriminator checks the leading discriminator of data.
func (d *RecordDescriptor) VerifyDiscriminator(data []byte) error {
	if len(data) < binary.DiscriminatorSize {
		return errors.Wrapf(ErrBufferTooShort, "%s: missing discriminator", d.Name)
	}

	var offset int
	var actual uint64
	binary.GetDiscriminator(data, &actual, &offset)
	if actual != d.Discriminator {
		return errors.Wrapf(ErrDiscriminatorMismatch, "%s: expected %d, got %d", d.Name, d.Discriminator, actual)
	}
	return nil
}
