package vault

import (
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"

	"github.com/jito-foundation/restaking-client-go/pkg/solana"
	"github.com/jito-foundation/restaking-client-go/pkg/solana/binary"
	"github.com/jito-foundation/restaking-client-go/pkg/solana/layout"
)

const VaultStakerWithdrawalTicketAccountReservedSize = 263

const (
	VaultStakerWithdrawalTicketAccountSize = (8 + // discriminator
		32 + // vault
		32 + // staker
		32 + // base
		8 + // vrt_amount
		8 + // slot_unstaked
		1 + // bump
		VaultStakerWithdrawalTicketAccountReservedSize) // reserved
)

var VaultStakerWithdrawalTicketAccountDiscriminator = uint64(AccountTypeVaultStakerWithdrawalTicket)

// VaultStakerWithdrawalTicketAccount is the decoded ticket. A zero
// Discriminator is written as VaultStakerWithdrawalTicketAccountDiscriminator.
type VaultStakerWithdrawalTicketAccount struct {
	Discriminator uint64
	Vault         ed25519.PublicKey
	Staker        ed25519.PublicKey
	Base          ed25519.PublicKey
	VrtAmount     uint64
	SlotUnstaked  uint64
	Bump          uint8
	Reserved      [VaultStakerWithdrawalTicketAccountReservedSize]byte
}

// Unmarshal decodes the ticket without checking the leading discriminator.
// Use UnmarshalVerified when the buffer's type is not already known.
func (obj *VaultStakerWithdrawalTicketAccount) Unmarshal(data []byte) error {
	if len(data) < VaultStakerWithdrawalTicketAccountSize {
		return errors.Wrapf(layout.ErrBufferTooShort, "vault_staker_withdrawal_ticket: expected %d bytes, got %d", VaultStakerWithdrawalTicketAccountSize, len(data))
	}

	var offset int

	binary.GetDiscriminator(data, &obj.Discriminator, &offset)
	binary.GetKey32(data[offset:], &obj.Vault, &offset)
	binary.GetKey32(data[offset:], &obj.Staker, &offset)
	binary.GetKey32(data[offset:], &obj.Base, &offset)
	binary.GetUint64(data[offset:], &obj.VrtAmount, &offset)
	binary.GetUint64(data[offset:], &obj.SlotUnstaked, &offset)
	binary.GetUint8(data[offset:], &obj.Bump, &offset)
	copy(obj.Reserved[:], data[offset:offset+VaultStakerWithdrawalTicketAccountReservedSize])

	return nil
}

// UnmarshalVerified decodes the ticket after checking the discriminator.
func (obj *VaultStakerWithdrawalTicketAccount) UnmarshalVerified(data []byte) error {
	var decoded VaultStakerWithdrawalTicketAccount
	if err := decoded.Unmarshal(data); err != nil {
		return err
	}
	if decoded.Discriminator != VaultStakerWithdrawalTicketAccountDiscriminator {
		return errors.Wrapf(layout.ErrDiscriminatorMismatch, "vault_staker_withdrawal_ticket: expected %d, got %d", VaultStakerWithdrawalTicketAccountDiscriminator, decoded.Discriminator)
	}

	*obj = decoded
	return nil
}

func (obj *VaultStakerWithdrawalTicketAccount) Marshal() []byte {
	var offset int
	data := make([]byte, VaultStakerWithdrawalTicketAccountSize)

	discriminator := obj.Discriminator
	if discriminator == 0 {
		discriminator = VaultStakerWithdrawalTicketAccountDiscriminator
	}

	binary.PutDiscriminator(data, discriminator, &offset)
	binary.PutKey32(data[offset:], obj.Vault, &offset)
	binary.PutKey32(data[offset:], obj.Staker, &offset)
	binary.PutKey32(data[offset:], obj.Base, &offset)
	binary.PutUint64(data[offset:], obj.VrtAmount, &offset)
	binary.PutUint64(data[offset:], obj.SlotUnstaked, &offset)
	binary.PutUint8(data[offset:], obj.Bump, &offset)
	binary.PutFixedBytes(data[offset:], obj.Reserved[:], VaultStakerWithdrawalTicketAccountReservedSize, &offset)

	return data
}

func (obj *VaultStakerWithdrawalTicketAccount) String() string {
	return fmt.Sprintf(
		"VaultStakerWithdrawalTicket{discriminator=%d,vault=%s,staker=%s,base=%s,vrt_amount=%d,slot_unstaked=%d,bump=%d}",
		obj.Discriminator,
		base58.Encode(obj.Vault),
		base58.Encode(obj.Staker),
		base58.Encode(obj.Base),
		obj.VrtAmount,
		obj.SlotUnstaked,
		obj.Bump,
	)
}

// VaultStakerWithdrawalTicketAccountFromAccountInfo decodes a ticket from a
// live account handle, requiring it to be owned by program. A nil program
// means the canonical deployment.
func VaultStakerWithdrawalTicketAccountFromAccountInfo(info *solana.AccountInfo, program ed25519.PublicKey) (*VaultStakerWithdrawalTicketAccount, error) {
	if info == nil {
		return nil, ErrInvalidAccountData
	}
	if len(program) == 0 {
		program = PROGRAM_ID
	}
	if !info.IsOwnedBy(program) {
		return nil, ErrInvalidAccountOwner
	}

	var obj VaultStakerWithdrawalTicketAccount
	if err := obj.Unmarshal(info.Data); err != nil {
		return nil, err
	}
	return &obj, nil
}
