package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jito-foundation/restaking-client-go/pkg/solana"
)

// AssertInstructionErrorWithKey verifies that the provided error is an
// instruction error with the provided key.
func AssertInstructionErrorWithKey(t *testing.T, err error, key solana.InstructionErrorKey) {
	require.Error(t, err)
	instructionErr, ok := err.(solana.InstructionError)
	require.True(t, ok)
	assert.Equal(t, key, instructionErr.ErrorKey())
}

// AssertMissingField verifies that the provided error names a missing field
// of the provided instruction.
func AssertMissingField(t *testing.T, err error, instruction, field string) {
	require.Error(t, err)
	mfe, ok := err.(*solana.MissingFieldError)
	require.True(t, ok)
	assert.Equal(t, instruction, mfe.Instruction)
	assert.Equal(t, field, mfe.Field)
}
