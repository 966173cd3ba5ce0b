package restaking

import (
	"crypto/ed25519"

	"github.com/pkg/errors"
)

var (
	ErrInvalidInstructionData = errors.New("unexpected instruction data")
)

var (
	PROGRAM_ADDRESS = mustBase58Decode("RestkWeAVL8fRGgzhfeoqFhsqKRchg6aa1XrcH96z4Q")
	PROGRAM_ID      = ed25519.PublicKey(PROGRAM_ADDRESS)
)
