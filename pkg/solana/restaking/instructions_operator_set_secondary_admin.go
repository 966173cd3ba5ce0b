package restaking

import (
	"bytes"
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/jito-foundation/restaking-client-go/pkg/solana"
)

const operatorSetSecondaryAdminInstructionName = "operator_set_secondary_admin"

const (
	OperatorSetSecondaryAdminInstructionArgsSize = 1 // operator_admin_role

	OperatorSetSecondaryAdminInstructionDataSize = (1 + // discriminator
		OperatorSetSecondaryAdminInstructionArgsSize) // args

	OperatorSetSecondaryAdminInstructionAccountsCount = 3
)

type OperatorSetSecondaryAdminInstructionArgs struct {
	OperatorAdminRole OperatorAdminRole
}

type OperatorSetSecondaryAdminInstructionAccounts struct {
	Operator ed25519.PublicKey
	Admin    ed25519.PublicKey
	NewAdmin ed25519.PublicKey
}

// NewOperatorSetSecondaryAdminInstruction builds the instruction from a
// complete set of accounts. Remaining accounts are appended after the
// declared accounts in the order provided.
func NewOperatorSetSecondaryAdminInstruction(
	accounts *OperatorSetSecondaryAdminInstructionAccounts,
	args *OperatorSetSecondaryAdminInstructionArgs,
	remainingAccounts ...solana.AccountMeta,
) solana.Instruction {
	return newOperatorSetSecondaryAdminInstruction(PROGRAM_ID, accounts, args, remainingAccounts)
}

func newOperatorSetSecondaryAdminInstruction(
	program ed25519.PublicKey,
	accounts *OperatorSetSecondaryAdminInstructionAccounts,
	args *OperatorSetSecondaryAdminInstructionArgs,
	remainingAccounts []solana.AccountMeta,
) solana.Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte, OperatorSetSecondaryAdminInstructionDataSize)

	putInstructionType(data, InstructionTypeOperatorSetSecondaryAdmin, &offset)
	putOperatorAdminRole(data, args.OperatorAdminRole, &offset)

	metas := make([]solana.AccountMeta, 0, OperatorSetSecondaryAdminInstructionAccountsCount+len(remainingAccounts))
	metas = append(metas,
		solana.AccountMeta{
			PublicKey:  accounts.Operator,
			IsWritable: true,
			IsSigner:   false,
		},
		solana.AccountMeta{
			PublicKey:  accounts.Admin,
			IsWritable: false,
			IsSigner:   true,
		},
		solana.AccountMeta{
			PublicKey:  accounts.NewAdmin,
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

// OperatorSetSecondaryAdminInstructionBuilder incrementally assembles an
// OperatorSetSecondaryAdmin instruction.
type OperatorSetSecondaryAdminInstructionBuilder struct {
	program           ed25519.PublicKey
	accounts          OperatorSetSecondaryAdminInstructionAccounts
	operatorAdminRole *OperatorAdminRole
	remainingAccounts []solana.AccountMeta
}

func NewOperatorSetSecondaryAdminInstructionBuilder() *OperatorSetSecondaryAdminInstructionBuilder {
	return &OperatorSetSecondaryAdminInstructionBuilder{
		program: PROGRAM_ID,
	}
}

// ProgramID overrides the program the instruction is sent to, for
// alternative deployments.
func (b *OperatorSetSecondaryAdminInstructionBuilder) ProgramID(program ed25519.PublicKey) *OperatorSetSecondaryAdminInstructionBuilder {
	b.program = program
	return b
}

func (b *OperatorSetSecondaryAdminInstructionBuilder) Operator(operator ed25519.PublicKey) *OperatorSetSecondaryAdminInstructionBuilder {
	b.accounts.Operator = operator
	return b
}

func (b *OperatorSetSecondaryAdminInstructionBuilder) Admin(admin ed25519.PublicKey) *OperatorSetSecondaryAdminInstructionBuilder {
	b.accounts.Admin = admin
	return b
}

func (b *OperatorSetSecondaryAdminInstructionBuilder) NewAdmin(newAdmin ed25519.PublicKey) *OperatorSetSecondaryAdminInstructionBuilder {
	b.accounts.NewAdmin = newAdmin
	return b
}

func (b *OperatorSetSecondaryAdminInstructionBuilder) OperatorAdminRole(role OperatorAdminRole) *OperatorSetSecondaryAdminInstructionBuilder {
	b.operatorAdminRole = &role
	return b
}

func (b *OperatorSetSecondaryAdminInstructionBuilder) AddRemainingAccount(account solana.AccountMeta) *OperatorSetSecondaryAdminInstructionBuilder {
	b.remainingAccounts = append(b.remainingAccounts, account)
	return b
}

func (b *OperatorSetSecondaryAdminInstructionBuilder) AddRemainingAccounts(accounts ...solana.AccountMeta) *OperatorSetSecondaryAdminInstructionBuilder {
	b.remainingAccounts = append(b.remainingAccounts, accounts...)
	return b
}

func (b *OperatorSetSecondaryAdminInstructionBuilder) args() (*OperatorSetSecondaryAdminInstructionArgs, error) {
	if b.operatorAdminRole == nil {
		return nil, solana.NewMissingFieldError(operatorSetSecondaryAdminInstructionName, "operator_admin_role")
	}
	if !b.operatorAdminRole.IsValid() {
		return nil, errors.Wrapf(ErrInvalidOperatorAdminRole, "%s: %d", operatorSetSecondaryAdminInstructionName, *b.operatorAdminRole)
	}
	return &OperatorSetSecondaryAdminInstructionArgs{
		OperatorAdminRole: *b.operatorAdminRole,
	}, nil
}

// Instruction returns the assembled instruction, or a *solana.MissingFieldError
// naming the first required account or argument that was not set.
func (b *OperatorSetSecondaryAdminInstructionBuilder) Instruction() (solana.Instruction, error) {
	required := []struct {
		name  string
		value ed25519.PublicKey
	}{
		{"operator", b.accounts.Operator},
		{"admin", b.accounts.Admin},
		{"new_admin", b.accounts.NewAdmin},
	}
	for _, field := range required {
		if len(field.value) == 0 {
			return solana.Instruction{}, solana.NewMissingFieldError(operatorSetSecondaryAdminInstructionName, field.name)
		}
	}

	args, err := b.args()
	if err != nil {
		return solana.Instruction{}, err
	}

	accounts := b.accounts
	remaining := make([]solana.AccountMeta, len(b.remainingAccounts))
	copy(remaining, b.remainingAccounts)

	return newOperatorSetSecondaryAdminInstruction(b.program, &accounts, args, remaining), nil
}

type DecodedOperatorSetSecondaryAdminInstruction struct {
	Accounts          OperatorSetSecondaryAdminInstructionAccounts
	Args              OperatorSetSecondaryAdminInstructionArgs
	RemainingAccounts []solana.AccountMeta
}

// DecodeOperatorSetSecondaryAdminInstruction parses an instruction targeting
// the canonical program deployment.
func DecodeOperatorSetSecondaryAdminInstruction(instruction solana.Instruction) (*DecodedOperatorSetSecondaryAdminInstruction, error) {
	return DecodeOperatorSetSecondaryAdminInstructionForProgram(PROGRAM_ID, instruction)
}

// DecodeOperatorSetSecondaryAdminInstructionForProgram parses an instruction
// targeting the provided program deployment.
func DecodeOperatorSetSecondaryAdminInstructionForProgram(program ed25519.PublicKey, instruction solana.Instruction) (*DecodedOperatorSetSecondaryAdminInstruction, error) {
	if !bytes.Equal(instruction.Program, program) {
		return nil, solana.ErrIncorrectProgram
	}
	if len(instruction.Data) == 0 {
		return nil, ErrInvalidInstructionData
	}

	var offset int
	var instructionType InstructionType
	getInstructionType(instruction.Data, &instructionType, &offset)
	if instructionType != InstructionTypeOperatorSetSecondaryAdmin {
		return nil, solana.ErrIncorrectInstruction
	}

	if len(instruction.Data) < OperatorSetSecondaryAdminInstructionDataSize {
		return nil, ErrInvalidInstructionData
	}
	if len(instruction.Accounts) < OperatorSetSecondaryAdminInstructionAccountsCount {
		return nil, errors.Errorf("invalid number of accounts: %d", len(instruction.Accounts))
	}

	decoded := &DecodedOperatorSetSecondaryAdminInstruction{
		Accounts: OperatorSetSecondaryAdminInstructionAccounts{
			Operator: instruction.Accounts[0].PublicKey,
			Admin:    instruction.Accounts[1].PublicKey,
			NewAdmin: instruction.Accounts[2].PublicKey,
		},
	}

	if err := getOperatorAdminRole(instruction.Data, &decoded.Args.OperatorAdminRole, &offset); err != nil {
		return nil, err
	}

	remaining := instruction.Accounts[OperatorSetSecondaryAdminInstructionAccountsCount:]
	if len(remaining) > 0 {
		decoded.RemainingAccounts = make([]solana.AccountMeta, len(remaining))
		copy(decoded.RemainingAccounts, remaining)
	}

	return decoded, nil
}
