package vault

import (
	"github.com/jito-foundation/restaking-client-go/pkg/solana/layout"
)

// UpdateVaultBalanceDescriptor is the layout of UpdateVaultBalance on the
// canonical deployment.
var UpdateVaultBalanceDescriptor = &layout.InstructionDescriptor{
	Name:          updateVaultBalanceInstructionName,
	Program:       PROGRAM_ID,
	Discriminator: uint8(InstructionTypeUpdateVaultBalance),
	Accounts: []layout.AccountSlot{
		{Name: "config"},
		{Name: "vault", IsWritable: true},
		{Name: "vault_token_account"},
		{Name: "vrt_mint", IsWritable: true},
		{Name: "vault_fee_token_account", IsWritable: true},
		{Name: "token_program", Default: SPL_TOKEN_PROGRAM_ID},
	},
}

// VaultStakerWithdrawalTicketDescriptor is the layout of the ticket account
// owned by the canonical deployment.
var VaultStakerWithdrawalTicketDescriptor = &layout.RecordDescriptor{
	Name:          "vault_staker_withdrawal_ticket",
	Owner:         PROGRAM_ID,
	Discriminator: VaultStakerWithdrawalTicketAccountDiscriminator,
	Fields: []layout.Field{
		layout.PublicKey("vault"),
		layout.PublicKey("staker"),
		layout.PublicKey("base"),
		layout.U64("vrt_amount"),
		layout.U64("slot_unstaked"),
		layout.U8("bump"),
	},
	Reserved: VaultStakerWithdrawalTicketAccountReservedSize,
}

func InstructionDescriptors() []*layout.InstructionDescriptor {
	return []*layout.InstructionDescriptor{
		UpdateVaultBalanceDescriptor,
	}
}

func RecordDescriptors() []*layout.RecordDescriptor {
	return []*layout.RecordDescriptor{
		VaultStakerWithdrawalTicketDescriptor,
	}
}
