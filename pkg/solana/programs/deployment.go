package programs

import (
	"bytes"
	"crypto/ed25519"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/jito-foundation/restaking-client-go/pkg/solana"
	"github.com/jito-foundation/restaking-client-go/pkg/solana/layout"
	"github.com/jito-foundation/restaking-client-go/pkg/solana/restaking"
	"github.com/jito-foundation/restaking-client-go/pkg/solana/vault"
)

// Deployment binds the vault and restaking programs at configured addresses.
// It is immutable and safe for concurrent use.
type Deployment struct {
	log *logrus.Entry

	Vault     ed25519.PublicKey
	Restaking ed25519.PublicKey

	verifyAccountDiscriminators bool
	registry                    *layout.Registry
}

// NewDeployment resolves the program addresses in config and registers every
// known instruction and account layout against them.
func NewDeployment(config *Config) (*Deployment, error) {
	vaultProgram, err := decodeProgramAddress(config.VaultProgramAddress)
	if err != nil {
		return nil, errors.Wrap(err, "invalid vault program address")
	}
	restakingProgram, err := decodeProgramAddress(config.RestakingProgramAddress)
	if err != nil {
		return nil, errors.Wrap(err, "invalid restaking program address")
	}

	var instructions []*layout.InstructionDescriptor
	var records []*layout.RecordDescriptor

	for _, d := range vault.InstructionDescriptors() {
		instructions = append(instructions, d.WithProgram(vaultProgram))
	}
	for _, d := range vault.RecordDescriptors() {
		records = append(records, d.WithOwner(vaultProgram))
	}
	for _, d := range restaking.InstructionDescriptors() {
		instructions = append(instructions, d.WithProgram(restakingProgram))
	}
	for _, d := range restaking.RecordDescriptors() {
		records = append(records, d.WithOwner(restakingProgram))
	}

	registry, err := layout.NewRegistry(instructions, records)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build layout registry")
	}

	log := logrus.StandardLogger().WithField("type", "solana/programs")
	log.WithFields(logrus.Fields{
		"vault":     config.VaultProgramAddress,
		"restaking": config.RestakingProgramAddress,
		"verify":    config.VerifyAccountDiscriminators,
	}).Debug("program deployment configured")

	return &Deployment{
		log:                         log,
		Vault:                       vaultProgram,
		Restaking:                   restakingProgram,
		verifyAccountDiscriminators: config.VerifyAccountDiscriminators,
		registry:                    registry,
	}, nil
}

func decodeProgramAddress(address string) (ed25519.PublicKey, error) {
	decoded, err := base58.Decode(address)
	if err != nil {
		return nil, err
	}
	if len(decoded) != ed25519.PublicKeySize {
		return nil, errors.Errorf("expected %d bytes, got %d", ed25519.PublicKeySize, len(decoded))
	}
	return decoded, nil
}

// Registry returns the layouts registered for the deployment.
func (d *Deployment) Registry() *layout.Registry {
	return d.registry
}

// UpdateVaultBalance returns a builder targeting the configured vault program.
func (d *Deployment) UpdateVaultBalance() *vault.UpdateVaultBalanceInstructionBuilder {
	return vault.NewUpdateVaultBalanceInstructionBuilder().ProgramID(d.Vault)
}

// OperatorSetSecondaryAdmin returns a builder targeting the configured
// restaking program.
func (d *Deployment) OperatorSetSecondaryAdmin() *restaking.OperatorSetSecondaryAdminInstructionBuilder {
	return restaking.NewOperatorSetSecondaryAdminInstructionBuilder().ProgramID(d.Restaking)
}

// DecodeInstruction identifies and decodes an instruction for either program.
func (d *Deployment) DecodeInstruction(instruction solana.Instruction) (*layout.DecodedInstruction, error) {
	decoded, err := d.registry.DecodeInstruction(instruction)
	if err != nil {
		d.log.WithError(err).WithField("program", base58.Encode(instruction.Program)).Trace("failed to decode instruction")
		return nil, err
	}
	return decoded, nil
}

// DecodeAccount identifies and decodes account data owned by either program.
func (d *Deployment) DecodeAccount(info *solana.AccountInfo) (*layout.RecordDescriptor, *layout.Record, error) {
	if info == nil {
		return nil, nil, solana.ErrIncorrectProgram
	}

	descriptor, record, err := d.registry.DecodeRecord(info.Owner, info.Data)
	if err != nil {
		d.log.WithError(err).WithField("account", base58.Encode(info.PublicKey)).Trace("failed to decode account")
		return nil, nil, err
	}
	return descriptor, record, nil
}

// DecodeVaultStakerWithdrawalTicket decodes a ticket owned by the configured
// vault program. The discriminator is only checked when configured to.
func (d *Deployment) DecodeVaultStakerWithdrawalTicket(info *solana.AccountInfo) (*vault.VaultStakerWithdrawalTicketAccount, error) {
	if info == nil {
		return nil, vault.ErrInvalidAccountData
	}
	if !bytes.Equal(info.Owner, d.Vault) {
		return nil, vault.ErrInvalidAccountOwner
	}

	var ticket vault.VaultStakerWithdrawalTicketAccount
	var err error
	if d.verifyAccountDiscriminators {
		err = ticket.UnmarshalVerified(info.Data)
	} else {
		err = ticket.Unmarshal(info.Data)
	}
	if err != nil {
		d.log.WithError(err).WithField("account", base58.Encode(info.PublicKey)).Trace("failed to decode ticket")
		return nil, err
	}
	return &ticket, nil
}
