package restaking

import (
	"github.com/jito-foundation/restaking-client-go/pkg/solana/layout"
)

// OperatorAdminRoleField is the layout of an OperatorAdminRole argument.
func OperatorAdminRoleField(name string) layout.Field {
	return layout.Enum(name, operatorAdminRoleNames...)
}

// OperatorSetSecondaryAdminDescriptor is the layout of
// OperatorSetSecondaryAdmin on the canonical deployment.
var OperatorSetSecondaryAdminDescriptor = &layout.InstructionDescriptor{
	Name:          operatorSetSecondaryAdminInstructionName,
	Program:       PROGRAM_ID,
	Discriminator: uint8(InstructionTypeOperatorSetSecondaryAdmin),
	Accounts: []layout.AccountSlot{
		{Name: "operator", IsWritable: true},
		{Name: "admin", IsSigner: true},
		{Name: "new_admin"},
	},
	Args: []layout.Field{
		OperatorAdminRoleField("operator_admin_role"),
	},
}

func InstructionDescriptors() []*layout.InstructionDescriptor {
	return []*layout.InstructionDescriptor{
		OperatorSetSecondaryAdminDescriptor,
	}
}

// RecordDescriptors is empty, as no restaking accounts are bound yet.
func RecordDescriptors() []*layout.RecordDescriptor {
	return nil
}
