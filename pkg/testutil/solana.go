package testutil

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jito-foundation/restaking-client-go/pkg/solana"
)

func GenerateSolanaKeys(t *testing.T, n int) []ed25519.PublicKey {
	keys := make([]ed25519.PublicKey, n)
	for i := 0; i < n; i++ {
		p, _, err := ed25519.GenerateKey(nil)
		require.NoError(t, err)
		keys[i] = p
	}
	return keys
}

// GenerateAccountInfos returns n live handles with random keys and no
// privileges.
func GenerateAccountInfos(t *testing.T, n int) []*solana.AccountInfo {
	keys := GenerateSolanaKeys(t, n)

	infos := make([]*solana.AccountInfo, n)
	for i, key := range keys {
		infos[i] = &solana.AccountInfo{PublicKey: key}
	}
	return infos
}

// NewProgramAccountInfo returns an executable handle for a program.
func NewProgramAccountInfo(program ed25519.PublicKey) *solana.AccountInfo {
	return &solana.AccountInfo{
		PublicKey:  program,
		Executable: true,
	}
}
