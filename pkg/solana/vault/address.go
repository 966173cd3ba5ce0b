package vault

import (
	"crypto/ed25519"

	"github.com/jito-foundation/restaking-client-go/pkg/solana"
)

var (
	ConfigPrefix                      = []byte("config")
	VaultStakerWithdrawalTicketPrefix = []byte("vault_staker_withdrawal_ticket")
)

func GetConfigAddress() (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		ConfigPrefix,
	)
}

type GetVaultStakerWithdrawalTicketAddressArgs struct {
	Vault ed25519.PublicKey
	Base  ed25519.PublicKey
}

func GetVaultStakerWithdrawalTicketAddress(args *GetVaultStakerWithdrawalTicketAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		VaultStakerWithdrawalTicketPrefix,
		args.Vault,
		args.Base,
	)
}

// GetVaultStakerWithdrawalTicketSignerSeeds returns the seed path the vault
// program signs with for the ticket at the provided bump.
func GetVaultStakerWithdrawalTicketSignerSeeds(args *GetVaultStakerWithdrawalTicketAddressArgs, bump uint8) [][]byte {
	return [][]byte{
		VaultStakerWithdrawalTicketPrefix,
		args.Vault,
		args.Base,
		{bump},
	}
}
