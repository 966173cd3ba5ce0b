package restaking

import (
	"github.com/pkg/errors"
)

var ErrInvalidOperatorAdminRole = errors.New("invalid operator admin role")

// OperatorAdminRole selects which secondary admin of an operator is updated.
// Values are serialized as their declaration index.
type OperatorAdminRole uint8

const (
	OperatorAdminRoleNcnAdmin OperatorAdminRole = iota
	OperatorAdminRoleVaultAdmin
	OperatorAdminRoleVoterAdmin
	OperatorAdminRoleDelegateAdmin
	OperatorAdminRoleMetadataAdmin
)

var operatorAdminRoleNames = []string{
	"ncn_admin",
	"vault_admin",
	"voter_admin",
	"delegate_admin",
	"metadata_admin",
}

func (r OperatorAdminRole) IsValid() bool {
	return int(r) < len(operatorAdminRoleNames)
}

func (r OperatorAdminRole) String() string {
	if !r.IsValid() {
		return "unknown"
	}
	return operatorAdminRoleNames[r]
}

func putOperatorAdminRole(dst []byte, v OperatorAdminRole, offset *int) {
	dst[*offset] = uint8(v)
	*offset += 1
}

func getOperatorAdminRole(src []byte, dst *OperatorAdminRole, offset *int) error {
	v := OperatorAdminRole(src[*offset])
	if !v.IsValid() {
		return errors.Wrapf(ErrInvalidOperatorAdminRole, "%d", v)
	}
	*dst = v
	*offset += 1
	return nil
}
