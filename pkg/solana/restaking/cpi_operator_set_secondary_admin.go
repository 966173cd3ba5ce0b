package restaking

import (
	"github.com/pkg/errors"

	"github.com/jito-foundation/restaking-client-go/pkg/solana"
	"github.com/jito-foundation/restaking-client-go/pkg/solana/cpi"
)

type OperatorSetSecondaryAdminCpiAccounts struct {
	Operator *solana.AccountInfo
	Admin    *solana.AccountInfo
	NewAdmin *solana.AccountInfo
}

// OperatorSetSecondaryAdminCpi invokes OperatorSetSecondaryAdmin from within
// another program.
type OperatorSetSecondaryAdminCpi struct {
	Program  *solana.AccountInfo
	Invoker  cpi.Invoker
	Accounts OperatorSetSecondaryAdminCpiAccounts
	Args     OperatorSetSecondaryAdminInstructionArgs
}

func NewOperatorSetSecondaryAdminCpi(
	invoker cpi.Invoker,
	program *solana.AccountInfo,
	accounts *OperatorSetSecondaryAdminCpiAccounts,
	args *OperatorSetSecondaryAdminInstructionArgs,
) *OperatorSetSecondaryAdminCpi {
	return &OperatorSetSecondaryAdminCpi{
		Program:  program,
		Invoker:  invoker,
		Accounts: *accounts,
		Args:     *args,
	}
}

func (c *OperatorSetSecondaryAdminCpi) Invoke() error {
	return c.InvokeSignedWithRemainingAccounts(nil, nil)
}

func (c *OperatorSetSecondaryAdminCpi) InvokeWithRemainingAccounts(remainingAccounts []cpi.Account) error {
	return c.InvokeSignedWithRemainingAccounts(nil, remainingAccounts)
}

func (c *OperatorSetSecondaryAdminCpi) InvokeSigned(signerSeeds [][][]byte) error {
	return c.InvokeSignedWithRemainingAccounts(signerSeeds, nil)
}

func (c *OperatorSetSecondaryAdminCpi) InvokeSignedWithRemainingAccounts(signerSeeds [][][]byte, remainingAccounts []cpi.Account) error {
	if !c.Args.OperatorAdminRole.IsValid() {
		return errors.Wrapf(ErrInvalidOperatorAdminRole, "%s: %d", operatorSetSecondaryAdminInstructionName, c.Args.OperatorAdminRole)
	}

	var offset int
	data := make([]byte, OperatorSetSecondaryAdminInstructionDataSize)
	putInstructionType(data, InstructionTypeOperatorSetSecondaryAdmin, &offset)
	putOperatorAdminRole(data, c.Args.OperatorAdminRole, &offset)

	accounts := make([]cpi.Account, 0, OperatorSetSecondaryAdminInstructionAccountsCount+len(remainingAccounts))
	accounts = append(accounts,
		cpi.Writable(c.Accounts.Operator, false),
		cpi.Readonly(c.Accounts.Admin, true),
		cpi.Readonly(c.Accounts.NewAdmin, false),
	)
	accounts = append(accounts, remainingAccounts...)

	return cpi.Dispatch(c.Invoker, c.Program, data, accounts, signerSeeds)
}

// OperatorSetSecondaryAdminCpiBuilder incrementally assembles an
// OperatorSetSecondaryAdminCpi.
type OperatorSetSecondaryAdminCpiBuilder struct {
	invoker           cpi.Invoker
	program           *solana.AccountInfo
	accounts          OperatorSetSecondaryAdminCpiAccounts
	operatorAdminRole *OperatorAdminRole
	remainingAccounts []cpi.Account
}

func NewOperatorSetSecondaryAdminCpiBuilder(invoker cpi.Invoker, program *solana.AccountInfo) *OperatorSetSecondaryAdminCpiBuilder {
	return &OperatorSetSecondaryAdminCpiBuilder{
		invoker: invoker,
		program: program,
	}
}

func (b *OperatorSetSecondaryAdminCpiBuilder) Operator(operator *solana.AccountInfo) *OperatorSetSecondaryAdminCpiBuilder {
	b.accounts.Operator = operator
	return b
}

func (b *OperatorSetSecondaryAdminCpiBuilder) Admin(admin *solana.AccountInfo) *OperatorSetSecondaryAdminCpiBuilder {
	b.accounts.Admin = admin
	return b
}

func (b *OperatorSetSecondaryAdminCpiBuilder) NewAdmin(newAdmin *solana.AccountInfo) *OperatorSetSecondaryAdminCpiBuilder {
	b.accounts.NewAdmin = newAdmin
	return b
}

func (b *OperatorSetSecondaryAdminCpiBuilder) OperatorAdminRole(role OperatorAdminRole) *OperatorSetSecondaryAdminCpiBuilder {
	b.operatorAdminRole = &role
	return b
}

func (b *OperatorSetSecondaryAdminCpiBuilder) AddRemainingAccount(account cpi.Account) *OperatorSetSecondaryAdminCpiBuilder {
	b.remainingAccounts = append(b.remainingAccounts, account)
	return b
}

func (b *OperatorSetSecondaryAdminCpiBuilder) AddRemainingAccounts(accounts ...cpi.Account) *OperatorSetSecondaryAdminCpiBuilder {
	b.remainingAccounts = append(b.remainingAccounts, accounts...)
	return b
}

// Build returns the assembled invocation, or a *solana.MissingFieldError
// naming the first handle or argument that was not set.
func (b *OperatorSetSecondaryAdminCpiBuilder) Build() (*OperatorSetSecondaryAdminCpi, error) {
	required := []struct {
		name  string
		value *solana.AccountInfo
	}{
		{"program", b.program},
		{"operator", b.accounts.Operator},
		{"admin", b.accounts.Admin},
		{"new_admin", b.accounts.NewAdmin},
	}
	for _, field := range required {
		if field.value == nil {
			return nil, solana.NewMissingFieldError(operatorSetSecondaryAdminInstructionName, field.name)
		}
	}
	if b.operatorAdminRole == nil {
		return nil, solana.NewMissingFieldError(operatorSetSecondaryAdminInstructionName, "operator_admin_role")
	}

	args := &OperatorSetSecondaryAdminInstructionArgs{
		OperatorAdminRole: *b.operatorAdminRole,
	}
	return NewOperatorSetSecondaryAdminCpi(b.invoker, b.program, &b.accounts, args), nil
}

func (b *OperatorSetSecondaryAdminCpiBuilder) Invoke() error {
	return b.InvokeSigned(nil)
}

func (b *OperatorSetSecondaryAdminCpiBuilder) InvokeSigned(signerSeeds [][][]byte) error {
	c, err := b.Build()
	if err != nil {
		return err
	}
	return c.InvokeSignedWithRemainingAccounts(signerSeeds, b.remainingAccounts)
}
