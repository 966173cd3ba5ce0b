package restaking

import (
	"crypto/ed25519"
	"testing"

	"github.com/near/borsh-go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jito-foundation/restaking-client-go/pkg/solana"
	"github.com/jito-foundation/restaking-client-go/pkg/solana/layout"
	"github.com/jito-foundation/restaking-client-go/pkg/testutil"
)

func TestOperatorSetSecondaryAdminInstruction(t *testing.T) {
	keys := testutil.GenerateSolanaKeys(t, 3)

	instruction := NewOperatorSetSecondaryAdminInstruction(
		&OperatorSetSecondaryAdminInstructionAccounts{
			Operator: keys[0],
			Admin:    keys[1],
			NewAdmin: keys[2],
		},
		&OperatorSetSecondaryAdminInstructionArgs{
			OperatorAdminRole: OperatorAdminRoleDelegateAdmin,
		},
	)

	assert.EqualValues(t, PROGRAM_ID, instruction.Program)
	assert.Equal(t, []byte{20, 0x03}, instruction.Data)
	assert.Equal(t, []solana.AccountMeta{
		solana.NewAccountMeta(keys[0], false),
		solana.NewReadonlyAccountMeta(keys[1], true),
		solana.NewReadonlyAccountMeta(keys[2], false),
	}, instruction.Accounts)
}

func TestOperatorSetSecondaryAdminInstruction_Borsh(t *testing.T) {
	type borshArgs struct {
		Discriminator     uint8
		OperatorAdminRole borsh.Enum
	}

	keys := testutil.GenerateSolanaKeys(t, 3)

	for role := OperatorAdminRoleNcnAdmin; role <= OperatorAdminRoleMetadataAdmin; role++ {
		expected, err := borsh.Serialize(borshArgs{
			Discriminator:     uint8(InstructionTypeOperatorSetSecondaryAdmin),
			OperatorAdminRole: borsh.Enum(role),
		})
		require.NoError(t, err)

		instruction := NewOperatorSetSecondaryAdminInstruction(
			&OperatorSetSecondaryAdminInstructionAccounts{
				Operator: keys[0],
				Admin:    keys[1],
				NewAdmin: keys[2],
			},
			&OperatorSetSecondaryAdminInstructionArgs{
				OperatorAdminRole: role,
			},
		)
		assert.Equal(t, expected, instruction.Data)
	}
}

func TestOperatorSetSecondaryAdminInstructionBuilder(t *testing.T) {
	keys := testutil.GenerateSolanaKeys(t, 6)

	instruction, err := NewOperatorSetSecondaryAdminInstructionBuilder().
		Operator(keys[0]).
		Admin(keys[1]).
		NewAdmin(keys[2]).
		OperatorAdminRole(OperatorAdminRoleVoterAdmin).
		AddRemainingAccount(solana.NewAccountMeta(keys[3], false)).
		AddRemainingAccounts(solana.NewReadonlyAccountMeta(keys[4], true)).
		Instruction()
	require.NoError(t, err)

	direct := NewOperatorSetSecondaryAdminInstruction(
		&OperatorSetSecondaryAdminInstructionAccounts{
			Operator: keys[0],
			Admin:    keys[1],
			NewAdmin: keys[2],
		},
		&OperatorSetSecondaryAdminInstructionArgs{
			OperatorAdminRole: OperatorAdminRoleVoterAdmin,
		},
		solana.NewAccountMeta(keys[3], false),
		solana.NewReadonlyAccountMeta(keys[4], true),
	)
	assert.Equal(t, direct, instruction)

	instruction, err = NewOperatorSetSecondaryAdminInstructionBuilder().
		ProgramID(keys[5]).
		Operator(keys[0]).
		Admin(keys[1]).
		NewAdmin(keys[2]).
		OperatorAdminRole(OperatorAdminRoleNcnAdmin).
		Instruction()
	require.NoError(t, err)
	assert.EqualValues(t, keys[5], instruction.Program)
	assert.Equal(t, []byte{20, 0x00}, instruction.Data)
}

func TestOperatorSetSecondaryAdminInstructionBuilder_MissingFields(t *testing.T) {
	keys := testutil.GenerateSolanaKeys(t, 3)

	_, err := NewOperatorSetSecondaryAdminInstructionBuilder().
		Operator(keys[0]).
		NewAdmin(keys[2]).
		OperatorAdminRole(OperatorAdminRoleVaultAdmin).
		Instruction()
	testutil.AssertMissingField(t, err, "operator_set_secondary_admin", "admin")

	_, err = NewOperatorSetSecondaryAdminInstructionBuilder().
		Operator(keys[0]).
		Admin(keys[1]).
		NewAdmin(keys[2]).
		Instruction()
	testutil.AssertMissingField(t, err, "operator_set_secondary_admin", "operator_admin_role")

	_, err = NewOperatorSetSecondaryAdminInstructionBuilder().
		Operator(keys[0]).
		Admin(keys[1]).
		NewAdmin(keys[2]).
		OperatorAdminRole(OperatorAdminRole(7)).
		Instruction()
	assert.True(t, errors.Is(err, ErrInvalidOperatorAdminRole))
}

func TestOperatorSetSecondaryAdminInstruction_Descriptor(t *testing.T) {
	keys := testutil.GenerateSolanaKeys(t, 3)

	require.NoError(t, OperatorSetSecondaryAdminDescriptor.Validate())
	assert.Equal(t, OperatorSetSecondaryAdminInstructionDataSize, OperatorSetSecondaryAdminDescriptor.DataSize())

	fromDescriptor, err := OperatorSetSecondaryAdminDescriptor.Encode(
		map[string]ed25519.PublicKey{
			"operator":  keys[0],
			"admin":     keys[1],
			"new_admin": keys[2],
		},
		layout.Values{
			"operator_admin_role": layout.Variant(OperatorAdminRoleMetadataAdmin),
		},
	)
	require.NoError(t, err)

	direct := NewOperatorSetSecondaryAdminInstruction(
		&OperatorSetSecondaryAdminInstructionAccounts{
			Operator: keys[0],
			Admin:    keys[1],
			NewAdmin: keys[2],
		},
		&OperatorSetSecondaryAdminInstructionArgs{
			OperatorAdminRole: OperatorAdminRoleMetadataAdmin,
		},
	)
	assert.Equal(t, direct.Data, fromDescriptor.Data)
	assert.Equal(t, direct.Accounts, fromDescriptor.Accounts)
	assert.EqualValues(t, direct.Program, fromDescriptor.Program)

	decoded, err := OperatorSetSecondaryAdminDescriptor.Decode(direct)
	require.NoError(t, err)
	assert.Equal(t, layout.Variant(4), decoded.Args["operator_admin_role"])
}

func TestDecodeOperatorSetSecondaryAdminInstruction(t *testing.T) {
	keys := testutil.GenerateSolanaKeys(t, 4)

	accounts := OperatorSetSecondaryAdminInstructionAccounts{
		Operator: keys[0],
		Admin:    keys[1],
		NewAdmin: keys[2],
	}
	args := OperatorSetSecondaryAdminInstructionArgs{
		OperatorAdminRole: OperatorAdminRoleVaultAdmin,
	}

	instruction := NewOperatorSetSecondaryAdminInstruction(&accounts, &args)

	decoded, err := DecodeOperatorSetSecondaryAdminInstruction(instruction)
	require.NoError(t, err)
	assert.Equal(t, accounts, decoded.Accounts)
	assert.Equal(t, args, decoded.Args)
	assert.Nil(t, decoded.RemainingAccounts)

	withRemaining := NewOperatorSetSecondaryAdminInstruction(&accounts, &args, solana.NewAccountMeta(keys[3], false))
	decoded, err = DecodeOperatorSetSecondaryAdminInstruction(withRemaining)
	require.NoError(t, err)
	assert.Equal(t, []solana.AccountMeta{solana.NewAccountMeta(keys[3], false)}, decoded.RemainingAccounts)

	_, err = DecodeOperatorSetSecondaryAdminInstructionForProgram(keys[3], instruction)
	assert.Equal(t, solana.ErrIncorrectProgram, err)

	for _, tc := range []struct {
		data     []byte
		expected error
	}{
		{nil, ErrInvalidInstructionData},
		{[]byte{20}, ErrInvalidInstructionData},
		{[]byte{25, 0}, solana.ErrIncorrectInstruction},
	} {
		invalid := instruction
		invalid.Data = tc.data
		_, err = DecodeOperatorSetSecondaryAdminInstruction(invalid)
		assert.Equal(t, tc.expected, err)
	}

	invalid := instruction
	invalid.Data = []byte{20, 5}
	_, err = DecodeOperatorSetSecondaryAdminInstruction(invalid)
	assert.True(t, errors.Is(err, ErrInvalidOperatorAdminRole))

	invalid = instruction
	invalid.Accounts = instruction.Accounts[:2]
	_, err = DecodeOperatorSetSecondaryAdminInstruction(invalid)
	assert.Error(t, err)
}

func TestOperatorAddress(t *testing.T) {
	keys := testutil.GenerateSolanaKeys(t, 1)

	address, bump, err := GetOperatorAddress(&GetOperatorAddressArgs{Base: keys[0]})
	require.NoError(t, err)

	derived, err := solana.CreateProgramAddress(PROGRAM_ID, OperatorPrefix, keys[0], []byte{bump})
	require.NoError(t, err)
	assert.Equal(t, address, derived)

	config, _, err := GetConfigAddress()
	require.NoError(t, err)
	assert.NotEqual(t, address, config)
}
