package solana

import (
	"crypto/ed25519"
	"errors"
	"fmt"
)

var (
	ErrIncorrectProgram     = errors.New("incorrect program")
	ErrIncorrectInstruction = errors.New("incorrect instruction")
)

// AccountMeta represents the account information required
// for building transactions.
type AccountMeta struct {
	PublicKey  ed25519.PublicKey
	IsSigner   bool
	IsWritable bool
}

// NewAccountMeta creates a new AccountMeta representing a writable
// account.
func NewAccountMeta(pub ed25519.PublicKey, isSigner bool) AccountMeta {
	return AccountMeta{
		PublicKey:  pub,
		IsSigner:   isSigner,
		IsWritable: true,
	}
}

// NewReadonlyAccountMeta creates a new AccountMeta representing a readonly
// account.
func NewReadonlyAccountMeta(pub ed25519.PublicKey, isSigner bool) AccountMeta {
	return AccountMeta{
		PublicKey:  pub,
		IsSigner:   isSigner,
		IsWritable: false,
	}
}

// Instruction represents a transaction instruction.
type Instruction struct {
	Program  ed25519.PublicKey
	Accounts []AccountMeta
	Data     []byte
}

// NewInstruction creates a new instruction.
func NewInstruction(program ed25519.PublicKey, data []byte, accounts ...AccountMeta) Instruction {
	return Instruction{
		Program:  program,
		Data:     data,
		Accounts: accounts,
	}
}

// MissingFieldError is returned when an instruction is finalized without a
// required account or argument.
type MissingFieldError struct {
	Instruction string
	Field       string
}

func (e *MissingFieldError) Error() string {
	if len(e.Instruction) == 0 {
		return fmt.Sprintf("%s is not set", e.Field)
	}
	return fmt.Sprintf("%s: %s is not set", e.Instruction, e.Field)
}

// NewMissingFieldError returns a MissingFieldError for the named field.
func NewMissingFieldError(instruction, field string) error {
	return &MissingFieldError{
		Instruction: instruction,
		Field:       field,
	}
}
