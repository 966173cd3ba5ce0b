package vault

import (
	"github.com/jito-foundation/restaking-client-go/pkg/solana"
	"github.com/jito-foundation/restaking-client-go/pkg/solana/cpi"
)

type UpdateVaultBalanceCpiAccounts struct {
	Config               *solana.AccountInfo
	Vault                *solana.AccountInfo
	VaultTokenAccount    *solana.AccountInfo
	VrtMint              *solana.AccountInfo
	VaultFeeTokenAccount *solana.AccountInfo
	TokenProgram         *solana.AccountInfo
}

// UpdateVaultBalanceCpi invokes UpdateVaultBalance from within another
// program.
type UpdateVaultBalanceCpi struct {
	Program  *solana.AccountInfo
	Invoker  cpi.Invoker
	Accounts UpdateVaultBalanceCpiAccounts
	Args     UpdateVaultBalanceInstructionArgs
}

func NewUpdateVaultBalanceCpi(
	invoker cpi.Invoker,
	program *solana.AccountInfo,
	accounts *UpdateVaultBalanceCpiAccounts,
	args *UpdateVaultBalanceInstructionArgs,
) *UpdateVaultBalanceCpi {
	return &UpdateVaultBalanceCpi{
		Program:  program,
		Invoker:  invoker,
		Accounts: *accounts,
		Args:     *args,
	}
}

func (c *UpdateVaultBalanceCpi) Invoke() error {
	return c.InvokeSignedWithRemainingAccounts(nil, nil)
}

func (c *UpdateVaultBalanceCpi) InvokeWithRemainingAccounts(remainingAccounts []cpi.Account) error {
	return c.InvokeSignedWithRemainingAccounts(nil, remainingAccounts)
}

func (c *UpdateVaultBalanceCpi) InvokeSigned(signerSeeds [][][]byte) error {
	return c.InvokeSignedWithRemainingAccounts(signerSeeds, nil)
}

func (c *UpdateVaultBalanceCpi) InvokeSignedWithRemainingAccounts(signerSeeds [][][]byte, remainingAccounts []cpi.Account) error {
	var offset int
	data := make([]byte, UpdateVaultBalanceInstructionDataSize)
	putInstructionType(data, InstructionTypeUpdateVaultBalance, &offset)

	accounts := make([]cpi.Account, 0, UpdateVaultBalanceInstructionAccountsCount+len(remainingAccounts))
	accounts = append(accounts,
		cpi.Readonly(c.Accounts.Config, false),
		cpi.Writable(c.Accounts.Vault, false),
		cpi.Readonly(c.Accounts.VaultTokenAccount, false),
		cpi.Writable(c.Accounts.VrtMint, false),
		cpi.Writable(c.Accounts.VaultFeeTokenAccount, false),
		cpi.Readonly(c.Accounts.TokenProgram, false),
	)
	accounts = append(accounts, remainingAccounts...)

	return cpi.Dispatch(c.Invoker, c.Program, data, accounts, signerSeeds)
}

// UpdateVaultBalanceCpiBuilder incrementally assembles an
// UpdateVaultBalanceCpi.
type UpdateVaultBalanceCpiBuilder struct {
	invoker           cpi.Invoker
	program           *solana.AccountInfo
	accounts          UpdateVaultBalanceCpiAccounts
	args              UpdateVaultBalanceInstructionArgs
	remainingAccounts []cpi.Account
}

func NewUpdateVaultBalanceCpiBuilder(invoker cpi.Invoker, program *solana.AccountInfo) *UpdateVaultBalanceCpiBuilder {
	return &UpdateVaultBalanceCpiBuilder{
		invoker: invoker,
		program: program,
	}
}

func (b *UpdateVaultBalanceCpiBuilder) Config(config *solana.AccountInfo) *UpdateVaultBalanceCpiBuilder {
	b.accounts.Config = config
	return b
}

func (b *UpdateVaultBalanceCpiBuilder) Vault(vault *solana.AccountInfo) *UpdateVaultBalanceCpiBuilder {
	b.accounts.Vault = vault
	return b
}

func (b *UpdateVaultBalanceCpiBuilder) VaultTokenAccount(vaultTokenAccount *solana.AccountInfo) *UpdateVaultBalanceCpiBuilder {
	b.accounts.VaultTokenAccount = vaultTokenAccount
	return b
}

func (b *UpdateVaultBalanceCpiBuilder) VrtMint(vrtMint *solana.AccountInfo) *UpdateVaultBalanceCpiBuilder {
	b.accounts.VrtMint = vrtMint
	return b
}

func (b *UpdateVaultBalanceCpiBuilder) VaultFeeTokenAccount(vaultFeeTokenAccount *solana.AccountInfo) *UpdateVaultBalanceCpiBuilder {
	b.accounts.VaultFeeTokenAccount = vaultFeeTokenAccount
	return b
}

func (b *UpdateVaultBalanceCpiBuilder) TokenProgram(tokenProgram *solana.AccountInfo) *UpdateVaultBalanceCpiBuilder {
	b.accounts.TokenProgram = tokenProgram
	return b
}

func (b *UpdateVaultBalanceCpiBuilder) AddRemainingAccount(account cpi.Account) *UpdateVaultBalanceCpiBuilder {
	b.remainingAccounts = append(b.remainingAccounts, account)
	return b
}

func (b *UpdateVaultBalanceCpiBuilder) AddRemainingAccounts(accounts ...cpi.Account) *UpdateVaultBalanceCpiBuilder {
	b.remainingAccounts = append(b.remainingAccounts, accounts...)
	return b
}

// Build returns the assembled invocation, or a *solana.MissingFieldError
// naming the first handle that was not set.
func (b *UpdateVaultBalanceCpiBuilder) Build() (*UpdateVaultBalanceCpi, error) {
	required := []struct {
		name  string
		value *solana.AccountInfo
	}{
		{"program", b.program},
		{"config", b.accounts.Config},
		{"vault", b.accounts.Vault},
		{"vault_token_account", b.accounts.VaultTokenAccount},
		{"vrt_mint", b.accounts.VrtMint},
		{"vault_fee_token_account", b.accounts.VaultFeeTokenAccount},
		{"token_program", b.accounts.TokenProgram},
	}
	for _, field := range required {
		if field.value == nil {
			return nil, solana.NewMissingFieldError(updateVaultBalanceInstructionName, field.name)
		}
	}

	return NewUpdateVaultBalanceCpi(b.invoker, b.program, &b.accounts, &b.args), nil
}

func (b *UpdateVaultBalanceCpiBuilder) Invoke() error {
	return b.InvokeSigned(nil)
}

func (b *UpdateVaultBalanceCpiBuilder) InvokeSigned(signerSeeds [][][]byte) error {
	c, err := b.Build()
	if err != nil {
		return err
	}
	return c.InvokeSignedWithRemainingAccounts(signerSeeds, b.remainingAccounts)
}
