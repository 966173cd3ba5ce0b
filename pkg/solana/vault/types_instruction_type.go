package vault

type InstructionType uint8

// Instruction discriminators are assigned by the program and are stable
// across releases.
const (
	InstructionTypeUpdateVaultBalance InstructionType = 25
)

type AccountType uint64

const (
	AccountTypeVaultStakerWithdrawalTicket AccountType = 5
)

func putInstructionType(dst []byte, v InstructionType, offset *int) {
	dst[*offset] = uint8(v)
	*offset += 1
}

func getInstructionType(src []byte, dst *InstructionType, offset *int) {
	*dst = InstructionType(src[*offset])
	*offset += 1
}
