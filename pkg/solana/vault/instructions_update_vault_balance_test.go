package vault

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jito-foundation/restaking-client-go/pkg/solana"
	"github.com/jito-foundation/restaking-client-go/pkg/testutil"
)

func TestUpdateVaultBalanceInstruction(t *testing.T) {
	keys := testutil.GenerateSolanaKeys(t, 5)

	accounts := &UpdateVaultBalanceInstructionAccounts{
		Config:               keys[0],
		Vault:                keys[1],
		VaultTokenAccount:    keys[2],
		VrtMint:              keys[3],
		VaultFeeTokenAccount: keys[4],
	}

	instruction := NewUpdateVaultBalanceInstruction(accounts, &UpdateVaultBalanceInstructionArgs{})

	assert.EqualValues(t, PROGRAM_ID, instruction.Program)
	assert.Equal(t, []byte{25}, instruction.Data)

	expected := []solana.AccountMeta{
		solana.NewReadonlyAccountMeta(keys[0], false),
		solana.NewAccountMeta(keys[1], false),
		solana.NewReadonlyAccountMeta(keys[2], false),
		solana.NewAccountMeta(keys[3], false),
		solana.NewAccountMeta(keys[4], false),
		solana.NewReadonlyAccountMeta(SPL_TOKEN_PROGRAM_ID, false),
	}
	assert.Equal(t, expected, instruction.Accounts)

	// Deterministic
	assert.Equal(t, instruction, NewUpdateVaultBalanceInstruction(accounts, &UpdateVaultBalanceInstructionArgs{}))
}

func TestUpdateVaultBalanceInstruction_TokenProgramOverride(t *testing.T) {
	keys := testutil.GenerateSolanaKeys(t, 6)

	instruction := NewUpdateVaultBalanceInstruction(
		&UpdateVaultBalanceInstructionAccounts{
			Config:               keys[0],
			Vault:                keys[1],
			VaultTokenAccount:    keys[2],
			VrtMint:              keys[3],
			VaultFeeTokenAccount: keys[4],
			TokenProgram:         keys[5],
		},
		&UpdateVaultBalanceInstructionArgs{},
	)
	assert.EqualValues(t, keys[5], instruction.Accounts[5].PublicKey)
}

func TestUpdateVaultBalanceInstruction_RemainingAccounts(t *testing.T) {
	keys := testutil.GenerateSolanaKeys(t, 9)

	for count := 0; count <= 4; count++ {
		remaining := make([]solana.AccountMeta, count)
		for i := range remaining {
			remaining[i] = solana.AccountMeta{
				PublicKey:  keys[5+i],
				IsWritable: i%2 == 0,
				IsSigner:   i%3 == 0,
			}
		}

		instruction, err := NewUpdateVaultBalanceInstructionBuilder().
			Config(keys[0]).
			Vault(keys[1]).
			VaultTokenAccount(keys[2]).
			VrtMint(keys[3]).
			VaultFeeTokenAccount(keys[4]).
			AddRemainingAccounts(remaining...).
			Instruction()
		require.NoError(t, err)

		require.Len(t, instruction.Accounts, UpdateVaultBalanceInstructionAccountsCount+count)
		assert.Equal(t, remaining, instruction.Accounts[UpdateVaultBalanceInstructionAccountsCount:])
	}
}

func TestUpdateVaultBalanceInstructionBuilder(t *testing.T) {
	keys := testutil.GenerateSolanaKeys(t, 7)

	builder := NewUpdateVaultBalanceInstructionBuilder().
		Config(keys[0]).
		Vault(keys[1]).
		VaultTokenAccount(keys[2]).
		VrtMint(keys[3]).
		VaultFeeTokenAccount(keys[4])

	instruction, err := builder.Instruction()
	require.NoError(t, err)

	direct := NewUpdateVaultBalanceInstruction(
		&UpdateVaultBalanceInstructionAccounts{
			Config:               keys[0],
			Vault:                keys[1],
			VaultTokenAccount:    keys[2],
			VrtMint:              keys[3],
			VaultFeeTokenAccount: keys[4],
		},
		&UpdateVaultBalanceInstructionArgs{},
	)
	assert.Equal(t, direct, instruction)

	instruction, err = builder.
		AddRemainingAccount(solana.NewAccountMeta(keys[5], true)).
		ProgramID(keys[6]).
		Instruction()
	require.NoError(t, err)
	assert.EqualValues(t, keys[6], instruction.Program)
	assert.Equal(t, solana.NewAccountMeta(keys[5], true), instruction.Accounts[6])
}

func TestUpdateVaultBalanceInstructionBuilder_MissingFields(t *testing.T) {
	keys := testutil.GenerateSolanaKeys(t, 5)

	_, err := NewUpdateVaultBalanceInstructionBuilder().Instruction()
	testutil.AssertMissingField(t, err, "update_vault_balance", "config")
	assert.Equal(t, "update_vault_balance: config is not set", err.Error())

	_, err = NewUpdateVaultBalanceInstructionBuilder().
		Config(keys[0]).
		Vault(keys[1]).
		VaultTokenAccount(keys[2]).
		VaultFeeTokenAccount(keys[4]).
		Instruction()
	testutil.AssertMissingField(t, err, "update_vault_balance", "vrt_mint")
}

func TestUpdateVaultBalanceInstruction_Descriptor(t *testing.T) {
	keys := testutil.GenerateSolanaKeys(t, 6)

	require.NoError(t, UpdateVaultBalanceDescriptor.Validate())

	remaining := solana.NewReadonlyAccountMeta(keys[5], false)
	fromDescriptor, err := UpdateVaultBalanceDescriptor.Encode(
		map[string]ed25519.PublicKey{
			"config":                  keys[0],
			"vault":                   keys[1],
			"vault_token_account":     keys[2],
			"vrt_mint":                keys[3],
			"vault_fee_token_account": keys[4],
		},
		nil,
		remaining,
	)
	require.NoError(t, err)

	direct := NewUpdateVaultBalanceInstruction(
		&UpdateVaultBalanceInstructionAccounts{
			Config:               keys[0],
			Vault:                keys[1],
			VaultTokenAccount:    keys[2],
			VrtMint:              keys[3],
			VaultFeeTokenAccount: keys[4],
		},
		&UpdateVaultBalanceInstructionArgs{},
		remaining,
	)
	assert.Equal(t, direct, fromDescriptor)
}

func TestDecodeUpdateVaultBalanceInstruction(t *testing.T) {
	keys := testutil.GenerateSolanaKeys(t, 8)

	accounts := UpdateVaultBalanceInstructionAccounts{
		Config:               keys[0],
		Vault:                keys[1],
		VaultTokenAccount:    keys[2],
		VrtMint:              keys[3],
		VaultFeeTokenAccount: keys[4],
		TokenProgram:         keys[5],
	}
	remaining := []solana.AccountMeta{
		solana.NewAccountMeta(keys[6], false),
		solana.NewReadonlyAccountMeta(keys[7], true),
	}

	instruction := NewUpdateVaultBalanceInstruction(&accounts, &UpdateVaultBalanceInstructionArgs{}, remaining...)

	decoded, err := DecodeUpdateVaultBalanceInstruction(instruction)
	require.NoError(t, err)
	assert.Equal(t, accounts, decoded.Accounts)
	assert.Equal(t, remaining, decoded.RemainingAccounts)

	_, err = DecodeUpdateVaultBalanceInstructionForProgram(keys[0], instruction)
	assert.Equal(t, solana.ErrIncorrectProgram, err)

	wrongType := instruction
	wrongType.Data = []byte{24}
	_, err = DecodeUpdateVaultBalanceInstruction(wrongType)
	assert.Equal(t, solana.ErrIncorrectInstruction, err)

	empty := instruction
	empty.Data = nil
	_, err = DecodeUpdateVaultBalanceInstruction(empty)
	assert.Equal(t, ErrInvalidInstructionData, err)

	short := instruction
	short.Accounts = instruction.Accounts[:5]
	_, err = DecodeUpdateVaultBalanceInstruction(short)
	assert.Error(t, err)
}
