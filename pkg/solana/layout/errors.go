package layout

import (
	"github.com/pkg/errors"
)

var (
	ErrBufferTooShort         = errors.New("buffer too short")
	ErrInvalidEnumVariant     = errors.New("invalid enum variant")
	ErrInvalidValue           = errors.New("invalid field value")
	ErrDiscriminatorMismatch  = errors.New("discriminator mismatch")
	ErrUnknownDiscriminator   = errors.New("unknown discriminator")
	ErrDuplicateDiscriminator = errors.New("duplicate discriminator")
	ErrNotEnoughAccounts      = errors.New("not enough accounts")
)
