package vault

import (
	"bytes"
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/jito-foundation/restaking-client-go/pkg/solana"
)

const updateVaultBalanceInstructionName = "update_vault_balance"

const (
	UpdateVaultBalanceInstructionArgsSize = 0

	UpdateVaultBalanceInstructionDataSize = (1 + // discriminator
		UpdateVaultBalanceInstructionArgsSize) // args

	UpdateVaultBalanceInstructionAccountsCount = 6
)

type UpdateVaultBalanceInstructionArgs struct{}

type UpdateVaultBalanceInstructionAccounts struct {
	Config               ed25519.PublicKey
	Vault                ed25519.PublicKey
	VaultTokenAccount    ed25519.PublicKey
	VrtMint              ed25519.PublicKey
	VaultFeeTokenAccount ed25519.PublicKey

	// Optional, defaults to the SPL token program
	TokenProgram ed25519.PublicKey
}

// NewUpdateVaultBalanceInstruction builds the instruction from a complete set
// of accounts. Remaining accounts are appended after the declared accounts
// in the order provided.
func NewUpdateVaultBalanceInstruction(
	accounts *UpdateVaultBalanceInstructionAccounts,
	args *UpdateVaultBalanceInstructionArgs,
	remainingAccounts ...solana.AccountMeta,
) solana.Instruction {
	return newUpdateVaultBalanceInstruction(PROGRAM_ID, accounts, args, remainingAccounts)
}

func newUpdateVaultBalanceInstruction(
	program ed25519.PublicKey,
	accounts *UpdateVaultBalanceInstructionAccounts,
	args *UpdateVaultBalanceInstructionArgs,
	remainingAccounts []solana.AccountMeta,
) solana.Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte, UpdateVaultBalanceInstructionDataSize)

	putInstructionType(data, InstructionTypeUpdateVaultBalance, &offset)

	tokenProgram := accounts.TokenProgram
	if len(tokenProgram) == 0 {
		tokenProgram = SPL_TOKEN_PROGRAM_ID
	}

	metas := make([]solana.AccountMeta, 0, UpdateVaultBalanceInstructionAccountsCount+len(remainingAccounts))
	metas = append(metas,
		solana.AccountMeta{
			PublicKey:  accounts.Config,
			IsWritable: false,
			IsSigner:   false,
		},
		solana.AccountMeta{
			PublicKey:  accounts.Vault,
			IsWritable: true,
			IsSigner:   false,
		},
		solana.AccountMeta{
			PublicKey:  accounts.VaultTokenAccount,
			IsWritable: false,
			IsSigner:   false,
		},
		solana.AccountMeta{
			PublicKey:  accounts.VrtMint,
			IsWritable: true,
			IsSigner:   false,
		},
		solana.AccountMeta{
			PublicKey:  accounts.VaultFeeTokenAccount,
			IsWritable: true,
			IsSigner:   false,
		},
		solana.AccountMeta{
			PublicKey:  tokenProgram,
			IsWritable: false,
			IsSigner:   false,
		},
	)
	metas = append(metas, remainingAccounts...)

	return solana.Instruction{
		Program: program,

		// Instruction args
		Data: data,

		// Instruction accounts
		Accounts: metas,
	}
}

// UpdateVaultBalanceInstructionBuilder incrementally assembles an
// UpdateVaultBalance instruction.
type UpdateVaultBalanceInstructionBuilder struct {
	program           ed25519.PublicKey
	accounts          UpdateVaultBalanceInstructionAccounts
	args              UpdateVaultBalanceInstructionArgs
	remainingAccounts []solana.AccountMeta
}

func NewUpdateVaultBalanceInstructionBuilder() *UpdateVaultBalanceInstructionBuilder {
	return &UpdateVaultBalanceInstructionBuilder{
		program: PROGRAM_ID,
	}
}

// ProgramID overrides the program the instruction is sent to, for
// alternative deployments.
func (b *UpdateVaultBalanceInstructionBuilder) ProgramID(program ed25519.PublicKey) *UpdateVaultBalanceInstructionBuilder {
	b.program = program
	return b
}

func (b *UpdateVaultBalanceInstructionBuilder) Config(config ed25519.PublicKey) *UpdateVaultBalanceInstructionBuilder {
	b.accounts.Config = config
	return b
}

func (b *UpdateVaultBalanceInstructionBuilder) Vault(vault ed25519.PublicKey) *UpdateVaultBalanceInstructionBuilder {
	b.accounts.Vault = vault
	return b
}

func (b *UpdateVaultBalanceInstructionBuilder) VaultTokenAccount(vaultTokenAccount ed25519.PublicKey) *UpdateVaultBalanceInstructionBuilder {
	b.accounts.VaultTokenAccount = vaultTokenAccount
	return b
}

func (b *UpdateVaultBalanceInstructionBuilder) VrtMint(vrtMint ed25519.PublicKey) *UpdateVaultBalanceInstructionBuilder {
	b.accounts.VrtMint = vrtMint
	return b
}

func (b *UpdateVaultBalanceInstructionBuilder) VaultFeeTokenAccount(vaultFeeTokenAccount ed25519.PublicKey) *UpdateVaultBalanceInstructionBuilder {
	b.accounts.VaultFeeTokenAccount = vaultFeeTokenAccount
	return b
}

// TokenProgram is optional. The SPL token program is used when unset.
func (b *UpdateVaultBalanceInstructionBuilder) TokenProgram(tokenProgram ed25519.PublicKey) *UpdateVaultBalanceInstructionBuilder {
	b.accounts.TokenProgram = tokenProgram
	return b
}

func (b *UpdateVaultBalanceInstructionBuilder) AddRemainingAccount(account solana.AccountMeta) *UpdateVaultBalanceInstructionBuilder {
	b.remainingAccounts = append(b.remainingAccounts, account)
	return b
}

func (b *UpdateVaultBalanceInstructionBuilder) AddRemainingAccounts(accounts ...solana.AccountMeta) *UpdateVaultBalanceInstructionBuilder {
	b.remainingAccounts = append(b.remainingAccounts, accounts...)
	return b
}

// Instruction returns the assembled instruction, or a *solana.MissingFieldError
// naming the first required account that was not set.
func (b *UpdateVaultBalanceInstructionBuilder) Instruction() (solana.Instruction, error) {
	required := []struct {
		name  string
		value ed25519.PublicKey
	}{
		{"config", b.accounts.Config},
		{"vault", b.accounts.Vault},
		{"vault_token_account", b.accounts.VaultTokenAccount},
		{"vrt_mint", b.accounts.VrtMint},
		{"vault_fee_token_account", b.accounts.VaultFeeTokenAccount},
	}
	for _, field := range required {
		if len(field.value) == 0 {
			return solana.Instruction{}, solana.NewMissingFieldError(updateVaultBalanceInstructionName, field.name)
		}
	}

	accounts := b.accounts
	args := b.args
	remaining := make([]solana.AccountMeta, len(b.remainingAccounts))
	copy(remaining, b.remainingAccounts)

	return newUpdateVaultBalanceInstruction(b.program, &accounts, &args, remaining), nil
}

type DecodedUpdateVaultBalanceInstruction struct {
	Accounts          UpdateVaultBalanceInstructionAccounts
	Args              UpdateVaultBalanceInstructionArgs
	RemainingAccounts []solana.AccountMeta
}

// DecodeUpdateVaultBalanceInstruction parses an instruction targeting the
// canonical program deployment.
func DecodeUpdateVaultBalanceInstruction(instruction solana.Instruction) (*DecodedUpdateVaultBalanceInstruction, error) {
	return DecodeUpdateVaultBalanceInstructionForProgram(PROGRAM_ID, instruction)
}

// DecodeUpdateVaultBalanceInstructionForProgram parses an instruction
// targeting the provided program deployment.
func DecodeUpdateVaultBalanceInstructionForProgram(program ed25519.PublicKey, instruction solana.Instruction) (*DecodedUpdateVaultBalanceInstruction, error) {
	if !bytes.Equal(instruction.Program, program) {
		return nil, solana.ErrIncorrectProgram
	}
	if len(instruction.Data) < UpdateVaultBalanceInstructionDataSize {
		return nil, ErrInvalidInstructionData
	}

	var offset int
	var instructionType InstructionType
	getInstructionType(instruction.Data, &instructionType, &offset)
	if instructionType != InstructionTypeUpdateVaultBalance {
		return nil, solana.ErrIncorrectInstruction
	}

	if len(instruction.Accounts) < UpdateVaultBalanceInstructionAccountsCount {
		return nil, errors.Errorf("invalid number of accounts: %d", len(instruction.Accounts))
	}

	decoded := &DecodedUpdateVaultBalanceInstruction{
		Accounts: UpdateVaultBalanceInstructionAccounts{
			Config:               instruction.Accounts[0].PublicKey,
			Vault:                instruction.Accounts[1].PublicKey,
			VaultTokenAccount:    instruction.Accounts[2].PublicKey,
			VrtMint:              instruction.Accounts[3].PublicKey,
			VaultFeeTokenAccount: instruction.Accounts[4].PublicKey,
			TokenProgram:         instruction.Accounts[5].PublicKey,
		},
	}

	remaining := instruction.Accounts[UpdateVaultBalanceInstructionAccountsCount:]
	if len(remaining) > 0 {
		decoded.RemainingAccounts = make([]solana.AccountMeta, len(remaining))
		copy(decoded.RemainingAccounts, remaining)
	}

	return decoded, nil
}
