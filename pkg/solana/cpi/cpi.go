package cpi

import (
	"github.com/pkg/errors"

	"github.com/jito-foundation/restaking-client-go/pkg/solana"
)

var (
	ErrNoInvoker = errors.New("cpi: no invoker configured")
	ErrNoProgram = errors.New("cpi: no program account")
)

// Invoker issues an instruction to another program from within the current
// program's execution. It is provided by the runtime.
//
// The first account handle is always the program being invoked, followed by
// the handles for every account referenced by the instruction.
type Invoker interface {
	// Invoke issues the instruction with the privileges of the provided
	// handles.
	Invoke(instruction solana.Instruction, accounts []*solana.AccountInfo) error

	// InvokeSigned issues the instruction, additionally signing for every
	// program derived address generated from signerSeeds with the calling
	// program's id.
	InvokeSigned(instruction solana.Instruction, accounts []*solana.AccountInfo, signerSeeds [][][]byte) error
}

// Account is a live account handle paired with the privileges requested for
// it by an instruction.
type Account struct {
	Info       *solana.AccountInfo
	IsWritable bool
	IsSigner   bool
}

// Writable returns an Account requesting write access.
func Writable(info *solana.AccountInfo, isSigner bool) Account {
	return Account{
		Info:       info,
		IsWritable: true,
		IsSigner:   isSigner,
	}
}

// Readonly returns an Account requesting read access.
func Readonly(info *solana.AccountInfo, isSigner bool) Account {
	return Account{
		Info:       info,
		IsWritable: false,
		IsSigner:   isSigner,
	}
}

// Dispatch builds the instruction for data and accounts, and hands it to the
// invoker along with the program handle and every account handle. When
// signerSeeds is empty the unsigned variant is used.
//
// Errors from the invoker are returned as is.
func Dispatch(
	invoker Invoker,
	program *solana.AccountInfo,
	data []byte,
	accounts []Account,
	signerSeeds [][][]byte,
) error {
	if invoker == nil {
		return ErrNoInvoker
	}
	if program == nil {
		return ErrNoProgram
	}

	metas := make([]solana.AccountMeta, len(accounts))
	handles := make([]*solana.AccountInfo, 0, len(accounts)+1)
	handles = append(handles, program)

	for i, account := range accounts {
		if account.Info == nil {
			return errors.Errorf("cpi: account %d has no handle", i)
		}

		metas[i] = solana.AccountMeta{
			PublicKey:  account.Info.PublicKey,
			IsWritable: account.IsWritable,
			IsSigner:   account.IsSigner,
		}
		handles = append(handles, account.Info)
	}

	instruction := solana.NewInstruction(program.PublicKey, data, metas...)

	if len(signerSeeds) == 0 {
		return invoker.Invoke(instruction, handles)
	}
	return invoker.InvokeSigned(instruction, handles, signerSeeds)
}
