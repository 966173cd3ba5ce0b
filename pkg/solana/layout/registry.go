package layout

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"

	"github.com/jito-foundation/restaking-client-go/pkg/solana"
	"github.com/jito-foundation/restaking-client-go/pkg/solana/binary"
)

// Registry identifies instructions and account records by program and
// discriminator. It is immutable once constructed.
type Registry struct {
	instructions map[string]map[uint8]*InstructionDescriptor
	records      map[string]map[uint64]*RecordDescriptor
}

// NewRegistry validates and indexes the provided descriptors.
func NewRegistry(instructions []*InstructionDescriptor, records []*RecordDescriptor) (*Registry, error) {
	r := &Registry{
		instructions: make(map[string]map[uint8]*InstructionDescriptor),
		records:      make(map[string]map[uint64]*RecordDescriptor),
	}

	for _, d := range instructions {
		if err := d.Validate(); err != nil {
			return nil, err
		}

		key := string(d.Program)
		byDiscriminator, ok := r.instructions[key]
		if !ok {
			byDiscriminator = make(map[uint8]*InstructionDescriptor)
			r.instructions[key] = byDiscriminator
		}

		if existing, ok := byDiscriminator[d.Discriminator]; ok {
			return nil, errors.Wrapf(ErrDuplicateDiscriminator, "%s and %s share %d on %s", existing.Name, d.Name, d.Discriminator, base58.Encode(d.Program))
		}
		byDiscriminator[d.Discriminator] = d
	}

	for _, d := range records {
		if err := d.Validate(); err != nil {
			return nil, err
		}

		key := string(d.Owner)
		byDiscriminator, ok := r.records[key]
		if !ok {
			byDiscriminator = make(map[uint64]*RecordDescriptor)
			r.records[key] = byDiscriminator
		}

		if existing, ok := byDiscriminator[d.Discriminator]; ok {
			return nil, errors.Wrapf(ErrDuplicateDiscriminator, "%s and %s share %d on %s", existing.Name, d.Name, d.Discriminator, base58.Encode(d.Owner))
		}
		byDiscriminator[d.Discriminator] = d
	}

	return r, nil
}

// LookupInstruction returns the descriptor matching the instruction's program
// and discriminator.
func (r *Registry) LookupInstruction(instruction solana.Instruction) (*InstructionDescriptor, error) {
	byDiscriminator, ok := r.instructions[string(instruction.Program)]
	if !ok {
		return nil, solana.ErrIncorrectProgram
	}
	if len(instruction.Data) < InstructionDiscriminatorSize {
		return nil, errors.Wrap(ErrBufferTooShort, "empty instruction data")
	}

	d, ok := byDiscriminator[instruction.Data[0]]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownDiscriminator, "instruction %d", instruction.Data[0])
	}
	return d, nil
}

// DecodeInstruction identifies and decodes an instruction.
func (r *Registry) DecodeInstruction(instruction solana.Instruction) (*DecodedInstruction, error) {
	d, err := r.LookupInstruction(instruction)
	if err != nil {
		return nil, err
	}
	return d.Decode(instruction)
}

// LookupRecord returns the descriptor matching the account owner and the
// leading discriminator of data.
func (r *Registry) LookupRecord(owner ed25519.PublicKey, data []byte) (*RecordDescriptor, error) {
	byDiscriminator, ok := r.records[string(owner)]
	if !ok {
		return nil, solana.ErrIncorrectProgram
	}
	if len(data) < binary.DiscriminatorSize {
		return nil, errors.Wrap(ErrBufferTooShort, "missing discriminator")
	}

	var offset int
	var discriminator uint64
	binary.GetDiscriminator(data, &discriminator, &offset)

	d, ok := byDiscriminator[discriminator]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownDiscriminator, "account %d", discriminator)
	}
	return d, nil
}

// DecodeRecord identifies and decodes an account.
func (r *Registry) DecodeRecord(owner ed25519.PublicKey, data []byte) (*RecordDescriptor, *Record, error) {
	d, err := r.LookupRecord(owner, data)
	if err != nil {
		return nil, nil, err
	}

	record, err := d.Decode(data)
	if err != nil {
		return nil, nil, err
	}
	return d, record, nil
}
