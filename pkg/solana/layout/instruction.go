package layout

import (
	"bytes"
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/jito-foundation/restaking-client-go/pkg/solana"
)

// InstructionDiscriminatorSize is the size of the leading instruction tag.
const InstructionDiscriminatorSize = 1

// AccountSlot is a declared account role of an instruction.
type AccountSlot struct {
	Name       string
	IsWritable bool
	IsSigner   bool

	// Default is used when the caller does not provide the account. Slots
	// without a default are required.
	Default ed25519.PublicKey
}

// IsOptional returns whether the slot can be omitted by the caller.
func (s AccountSlot) IsOptional() bool {
	return len(s.Default) > 0
}

// InstructionDescriptor describes the wire contract of a single instruction.
//
// The order of Accounts and Args is part of the contract and must never
// change for a given Discriminator.
type InstructionDescriptor struct {
	Name          string
	Program       ed25519.PublicKey
	Discriminator uint8
	Accounts      []AccountSlot
	Args          []Field
}

// Validate checks the descriptor is well formed.
func (d *InstructionDescriptor) Validate() error {
	if len(d.Name) == 0 {
		return errors.New("instruction descriptor missing name")
	}
	if len(d.Program) != ed25519.PublicKeySize {
		return errors.Errorf("%s: invalid program", d.Name)
	}

	seen := make(map[string]struct{}, len(d.Accounts))
	for _, slot := range d.Accounts {
		if len(slot.Name) == 0 {
			return errors.Errorf("%s: unnamed account", d.Name)
		}
		if _, ok := seen[slot.Name]; ok {
			return errors.Errorf("%s: duplicate account %s", d.Name, slot.Name)
		}
		seen[slot.Name] = struct{}{}

		if slot.IsOptional() && len(slot.Default) != ed25519.PublicKeySize {
			return errors.Errorf("%s: invalid default for account %s", d.Name, slot.Name)
		}
	}

	return validateFields(d.Args, d.Name+".")
}

// WithProgram returns a copy of the descriptor targeting a different program
// deployment.
func (d *InstructionDescriptor) WithProgram(program ed25519.PublicKey) *InstructionDescriptor {
	cloned := *d
	cloned.Program = program
	return &cloned
}

// ArgsSize is the encoded width of the instruction arguments.
func (d *InstructionDescriptor) ArgsSize() int {
	return fieldsSize(d.Args)
}

// DataSize is the encoded width of the instruction data.
func (d *InstructionDescriptor) DataSize() int {
	return InstructionDiscriminatorSize + d.ArgsSize()
}

// Encode builds the instruction from named accounts and arguments.
//
// Declared accounts are emitted in declaration order with their static
// privileges, followed by the remaining accounts in the provided order. An
// error naming the field is returned if a required account or argument is
// missing. Nothing is returned on failure.
func (d *InstructionDescriptor) Encode(accounts map[string]ed25519.PublicKey, args Values, remainingAccounts ...solana.AccountMeta) (solana.Instruction, error) {
	metas := make([]solana.AccountMeta, 0, len(d.Accounts)+len(remainingAccounts))
	for _, slot := range d.Accounts {
		key, ok := accounts[slot.Name]
		if !ok || len(key) == 0 {
			if !slot.IsOptional() {
				return solana.Instruction{}, solana.NewMissingFieldError(d.Name, slot.Name)
			}
			key = slot.Default
		}
		if len(key) != ed25519.PublicKeySize {
			return solana.Instruction{}, errors.Wrapf(ErrInvalidValue, "%s: account %s has length %d", d.Name, slot.Name, len(key))
		}

		metas = append(metas, solana.AccountMeta{
			PublicKey:  key,
			IsWritable: slot.IsWritable,
			IsSigner:   slot.IsSigner,
		})
	}
	metas = append(metas, remainingAccounts...)

	var offset int
	data := make([]byte, d.DataSize())
	data[0] = d.Discriminator
	offset += InstructionDiscriminatorSize

	if err := encodeFields(data, d.Args, args, "", &offset); err != nil {
		if mfe, ok := err.(*solana.MissingFieldError); ok {
			mfe.Instruction = d.Name
			return solana.Instruction{}, mfe
		}
		return solana.Instruction{}, errors.Wrap(err, d.Name)
	}

	return solana.NewInstruction(d.Program, data, metas...), nil
}

// DecodedInstruction is an instruction parsed back into its named parts.
type DecodedInstruction struct {
	Descriptor        *InstructionDescriptor
	Accounts          map[string]ed25519.PublicKey
	Args              Values
	RemainingAccounts []solana.AccountMeta
}

// Decode parses an instruction built for this descriptor. Accounts beyond
// the declared slots are returned as remaining accounts, and any data
// beyond the declared arguments is ignored.
func (d *InstructionDescriptor) Decode(instruction solana.Instruction) (*DecodedInstruction, error) {
	if !bytes.Equal(instruction.Program, d.Program) {
		return nil, solana.ErrIncorrectProgram
	}
	if len(instruction.Data) < InstructionDiscriminatorSize {
		return nil, errors.Wrapf(ErrBufferTooShort, "%s: empty instruction data", d.Name)
	}
	if instruction.Data[0] != d.Discriminator {
		return nil, solana.ErrIncorrectInstruction
	}
	if len(instruction.Data) < d.DataSize() {
		return nil, errors.Wrapf(ErrBufferTooShort, "%s: expected %d bytes, got %d", d.Name, d.DataSize(), len(instruction.Data))
	}
	if len(instruction.Accounts) < len(d.Accounts) {
		return nil, errors.Wrapf(ErrNotEnoughAccounts, "%s: expected %d, got %d", d.Name, len(d.Accounts), len(instruction.Accounts))
	}

	offset := InstructionDiscriminatorSize
	args, err := decodeFields(instruction.Data, d.Args, "", &offset)
	if err != nil {
		return nil, errors.Wrap(err, d.Name)
	}

	accounts := make(map[string]ed25519.PublicKey, len(d.Accounts))
	for i, slot := range d.Accounts {
		accounts[slot.Name] = instruction.Accounts[i].PublicKey
	}

	var remaining []solana.AccountMeta
	if len(instruction.Accounts) > len(d.Accounts) {
		remaining = make([]solana.AccountMeta, len(instruction.Accounts)-len(d.Accounts))
		copy(remaining, instruction.Accounts[len(d.Accounts):])
	}

	return &DecodedInstruction{
		Descriptor:        d,
		Accounts:          accounts,
		Args:              args,
		RemainingAccounts: remaining,
	}, nil
}
