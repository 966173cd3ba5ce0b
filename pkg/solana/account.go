package solana

import (
	"bytes"
	"crypto/ed25519"
)

// AccountInfo is a live account handle supplied by the executing runtime.
//
// Unlike an AccountMeta, the privileges on an AccountInfo are the ones the
// runtime granted to the current execution context, not the ones requested
// by an instruction.
type AccountInfo struct {
	PublicKey  ed25519.PublicKey
	Owner      ed25519.PublicKey
	Lamports   uint64
	Data       []byte
	Executable bool
	IsSigner   bool
	IsWritable bool
}

// IsOwnedBy returns whether the account is owned by the provided program.
func (a *AccountInfo) IsOwnedBy(program ed25519.PublicKey) bool {
	return bytes.Equal(a.Owner, program)
}
