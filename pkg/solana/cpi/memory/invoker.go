package memory

import (
	"bytes"
	"crypto/ed25519"
	"sync"

	"github.com/mr-tron/base58"
	"github.com/sirupsen/logrus"

	"github.com/jito-foundation/restaking-client-go/pkg/solana"
	"github.com/jito-foundation/restaking-client-go/pkg/solana/cpi"
)

// Handler executes an instruction for a single program.
type Handler func(instruction solana.Instruction, accounts []*solana.AccountInfo) error

// Invocation is a recorded call through the invoker.
type Invocation struct {
	Instruction solana.Instruction
	Accounts    []*solana.AccountInfo
	SignerSeeds [][][]byte
}

// Invoker is an in-process cpi.Invoker that enforces the runtime's
// privilege rules before handing the instruction to a registered handler.
type Invoker struct {
	log    *logrus.Entry
	caller ed25519.PublicKey

	mu          sync.Mutex
	handlers    map[string]Handler
	invocations []Invocation
}

// NewInvoker returns an invoker for calls made by the caller program.
func NewInvoker(caller ed25519.PublicKey) *Invoker {
	return &Invoker{
		log:      logrus.StandardLogger().WithField("type", "solana/cpi/memory"),
		caller:   caller,
		handlers: make(map[string]Handler),
	}
}

var _ cpi.Invoker = (*Invoker)(nil)

// RegisterHandler sets the handler used for instructions to program.
func (i *Invoker) RegisterHandler(program ed25519.PublicKey, handler Handler) {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.handlers[string(program)] = handler
}

// Invoke implements cpi.Invoker.Invoke.
func (i *Invoker) Invoke(instruction solana.Instruction, accounts []*solana.AccountInfo) error {
	return i.invoke(instruction, accounts, nil)
}

// InvokeSigned implements cpi.Invoker.InvokeSigned.
func (i *Invoker) InvokeSigned(instruction solana.Instruction, accounts []*solana.AccountInfo, signerSeeds [][][]byte) error {
	return i.invoke(instruction, accounts, signerSeeds)
}

// Invocations returns every invocation that passed privilege checks.
func (i *Invoker) Invocations() []Invocation {
	i.mu.Lock()
	defer i.mu.Unlock()

	cloned := make([]Invocation, len(i.invocations))
	copy(cloned, i.invocations)
	return cloned
}

// Reset clears recorded invocations.
func (i *Invoker) Reset() {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.invocations = nil
}

func (i *Invoker) invoke(instruction solana.Instruction, accounts []*solana.AccountInfo, signerSeeds [][][]byte) error {
	log := i.log.WithFields(logrus.Fields{
		"method":   "invoke",
		"program":  base58.Encode(instruction.Program),
		"accounts": len(instruction.Accounts),
		"signed":   len(signerSeeds) > 0,
	})

	pdaSigners := make([]ed25519.PublicKey, 0, len(signerSeeds))
	for _, seeds := range signerSeeds {
		pda, err := solana.CreateProgramAddress(i.caller, seeds...)
		if err != nil {
			log.WithError(err).Debug("invalid signer seeds")
			return solana.NewInstructionError(0, solana.InstructionErrorInvalidSeeds)
		}
		pdaSigners = append(pdaSigners, pda)
	}

	if _, ok := findPrivileges(accounts, instruction.Program); !ok {
		log.Debug("program account not provided")
		return solana.NewInstructionError(0, solana.InstructionErrorMissingAccount)
	}

	for _, meta := range instruction.Accounts {
		granted, ok := findPrivileges(accounts, meta.PublicKey)
		if !ok {
			log.WithField("account", base58.Encode(meta.PublicKey)).Debug("account not provided")
			return solana.NewInstructionError(0, solana.InstructionErrorMissingAccount)
		}

		if meta.IsSigner && !granted.IsSigner && !containsKey(pdaSigners, meta.PublicKey) {
			log.WithField("account", base58.Encode(meta.PublicKey)).Debug("signer privilege escalated")
			return solana.NewInstructionError(0, solana.InstructionErrorPrivilegeEscalation)
		}

		if meta.IsWritable && !granted.IsWritable {
			log.WithField("account", base58.Encode(meta.PublicKey)).Debug("writable privilege escalated")
			return solana.NewInstructionError(0, solana.InstructionErrorPrivilegeEscalation)
		}
	}

	i.mu.Lock()
	i.invocations = append(i.invocations, Invocation{
		Instruction: instruction,
		Accounts:    accounts,
		SignerSeeds: signerSeeds,
	})
	handler, ok := i.handlers[string(instruction.Program)]
	i.mu.Unlock()

	if !ok {
		log.Debug("no handler for program")
		return solana.NewInstructionError(0, solana.InstructionErrorUnsupportedProgramID)
	}

	if err := handler(instruction, accounts); err != nil {
		log.WithError(err).Debug("program returned an error")
		return err
	}

	return nil
}

type privileges struct {
	IsSigner   bool
	IsWritable bool
}

// findPrivileges merges the privileges of every handle passed for key, the
// same way the runtime dedupes repeated accounts.
func findPrivileges(accounts []*solana.AccountInfo, key ed25519.PublicKey) (privileges, bool) {
	var merged privileges
	var found bool
	for _, account := range accounts {
		if account == nil || !bytes.Equal(account.PublicKey, key) {
			continue
		}
		found = true
		merged.IsSigner = merged.IsSigner || account.IsSigner
		merged.IsWritable = merged.IsWritable || account.IsWritable
	}
	return merged, found
}

func containsKey(keys []ed25519.PublicKey, key ed25519.PublicKey) bool {
	for _, k := range keys {
		if bytes.Equal(k, key) {
			return true
		}
	}
	return false
}
