package restaking

import (
	"crypto/ed25519"

	"github.com/jito-foundation/restaking-client-go/pkg/solana"
)

var (
	ConfigPrefix   = []byte("config")
	OperatorPrefix = []byte("operator")
)

func GetConfigAddress() (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		ConfigPrefix,
	)
}

type GetOperatorAddressArgs struct {
	Base ed25519.PublicKey
}

func GetOperatorAddress(args *GetOperatorAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		OperatorPrefix,
		args.Base,
	)
}
