package solana

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstructionError(t *testing.T) {
	e := InstructionError{Index: 2, Err: CustomError(3)}
	assert.Equal(t, InstructionErrorCustom, e.ErrorKey())
	assert.NotNil(t, e.CustomError())
	assert.Equal(t, CustomError(3), *e.CustomError())
	assert.Equal(t, "Error processing Instruction 2: custom program error: 3", e.Error())

	e = NewInstructionError(0, InstructionErrorPrivilegeEscalation)
	assert.Equal(t, InstructionErrorPrivilegeEscalation, e.ErrorKey())
	assert.Nil(t, e.CustomError())
	assert.Equal(t, "Error processing Instruction 0: PrivilegeEscalation", e.Error())

	assert.Empty(t, InstructionError{}.ErrorKey())
}

func TestMissingFieldError(t *testing.T) {
	err := NewMissingFieldError("operator_set_secondary_admin", "admin")
	assert.Equal(t, "operator_set_secondary_admin: admin is not set", err.Error())

	mfe, ok := err.(*MissingFieldError)
	assert.True(t, ok)
	assert.Equal(t, "admin", mfe.Field)

	assert.Equal(t, "vault is not set", (&MissingFieldError{Field: "vault"}).Error())
}

func TestInstructionError_Comparable(t *testing.T) {
	assert.Equal(t, NewInstructionError(1, InstructionErrorMissingAccount), NewInstructionError(1, InstructionErrorMissingAccount))
	assert.NotEqual(t, NewInstructionError(1, InstructionErrorMissingAccount), NewInstructionError(0, InstructionErrorMissingAccount))
	assert.Equal(t, InstructionErrorMissingAccount, NewInstructionError(1, InstructionErrorMissingAccount).Err)
}
