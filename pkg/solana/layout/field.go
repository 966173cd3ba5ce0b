package layout

import (
	"crypto/ed25519"
	"fmt"

	"github.com/pkg/errors"

	"github.com/jito-foundation/restaking-client-go/pkg/solana"
	"github.com/jito-foundation/restaking-client-go/pkg/solana/binary"
)

// Kind is the wire type of a single field.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindU8
	KindU16
	KindU32
	KindU64
	KindI64
	KindPublicKey
	KindBytes
	KindEnum
	KindStruct
)

func (k Kind) String() string {
	switch k {
	case KindU8:
		return "u8"
	case KindU16:
		return "u16"
	case KindU32:
		return "u32"
	case KindU64:
		return "u64"
	case KindI64:
		return "i64"
	case KindPublicKey:
		return "pubkey"
	case KindBytes:
		return "bytes"
	case KindEnum:
		return "enum"
	case KindStruct:
		return "struct"
	}

	return "unknown"
}

// Variant is the value of an enum field. It is the zero-based index of the
// variant in declaration order, which is also its wire encoding.
type Variant uint8

// Values holds the dynamic form of a set of fields, keyed by field name.
//
// Expected Go types per kind:
//
//	u8      uint8
//	u16     uint16
//	u32     uint32
//	u64     uint64
//	i64     int64
//	pubkey  ed25519.PublicKey
//	bytes   []byte of exactly Length bytes
//	enum    Variant
//	struct  Values
type Values map[string]interface{}

// Field describes a single fixed width field.
type Field struct {
	Name string
	Kind Kind

	// Length is the size of a KindBytes field.
	Length int

	// Variants are the declared variant names of a KindEnum field, in wire
	// order.
	Variants []string

	// Fields are the members of a KindStruct field, in wire order.
	Fields []Field
}

func U8(name string) Field        { return Field{Name: name, Kind: KindU8} }
func U16(name string) Field       { return Field{Name: name, Kind: KindU16} }
func U32(name string) Field       { return Field{Name: name, Kind: KindU32} }
func U64(name string) Field       { return Field{Name: name, Kind: KindU64} }
func I64(name string) Field       { return Field{Name: name, Kind: KindI64} }
func PublicKey(name string) Field { return Field{Name: name, Kind: KindPublicKey} }

func Bytes(name string, length int) Field {
	return Field{Name: name, Kind: KindBytes, Length: length}
}

func Enum(name string, variants ...string) Field {
	return Field{Name: name, Kind: KindEnum, Variants: variants}
}

func Struct(name string, fields ...Field) Field {
	return Field{Name: name, Kind: KindStruct, Fields: fields}
}

// Size returns the encoded width of the field.
func (f Field) Size() int {
	switch f.Kind {
	case KindU8, KindEnum:
		return 1
	case KindU16:
		return 2
	case KindU32:
		return 4
	case KindU64, KindI64:
		return 8
	case KindPublicKey:
		return ed25519.PublicKeySize
	case KindBytes:
		return f.Length
	case KindStruct:
		return fieldsSize(f.Fields)
	}

	return 0
}

// VariantName returns the declared name of an enum variant.
func (f Field) VariantName(v Variant) (string, error) {
	if f.Kind != KindEnum {
		return "", errors.Errorf("%s is not an enum", f.Name)
	}
	if int(v) >= len(f.Variants) {
		return "", errors.Wrapf(ErrInvalidEnumVariant, "%s: %d", f.Name, v)
	}
	return f.Variants[v], nil
}

// VariantByName returns the variant with the provided declared name.
func (f Field) VariantByName(name string) (Variant, error) {
	for i, variant := range f.Variants {
		if variant == name {
			return Variant(i), nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidEnumVariant, "%s: %s", f.Name, name)
}

func (f Field) validate(path string) error {
	if len(f.Name) == 0 {
		return errors.Errorf("%sunnamed field", path)
	}

	switch f.Kind {
	case KindU8, KindU16, KindU32, KindU64, KindI64, KindPublicKey:
	case KindBytes:
		if f.Length <= 0 {
			return errors.Errorf("%s%s: invalid length %d", path, f.Name, f.Length)
		}
	case KindEnum:
		if len(f.Variants) == 0 || len(f.Variants) > 256 {
			return errors.Errorf("%s%s: invalid variant count %d", path, f.Name, len(f.Variants))
		}
	case KindStruct:
		return validateFields(f.Fields, path+f.Name+".")
	default:
		return errors.Errorf("%s%s: unknown kind %d", path, f.Name, f.Kind)
	}

	return nil
}

func validateFields(fields []Field, path string) error {
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if _, ok := seen[f.Name]; ok {
			return errors.Errorf("%s%s: duplicate field", path, f.Name)
		}
		seen[f.Name] = struct{}{}

		if err := f.validate(path); err != nil {
			return err
		}
	}
	return nil
}

func fieldsSize(fields []Field) int {
	var size int
	for _, f := range fields {
		size += f.Size()
	}
	return size
}

func encodeFields(dst []byte, fields []Field, values Values, path string, offset *int) error {
	for _, f := range fields {
		name := path + f.Name

		v, ok := values[f.Name]
		if !ok {
			return &solana.MissingFieldError{Field: name}
		}

		if err := encodeField(dst, f, v, name, offset); err != nil {
			return err
		}
	}
	return nil
}

func encodeField(dst []byte, f Field, v interface{}, name string, offset *int) error {
	switch f.Kind {
	case KindU8:
		typed, ok := v.(uint8)
		if !ok {
			return invalidValue(name, f, v)
		}
		binary.PutUint8(dst[*offset:], typed, offset)
	case KindU16:
		typed, ok := v.(uint16)
		if !ok {
			return invalidValue(name, f, v)
		}
		binary.PutUint16(dst[*offset:], typed, offset)
	case KindU32:
		typed, ok := v.(uint32)
		if !ok {
			return invalidValue(name, f, v)
		}
		binary.PutUint32(dst[*offset:], typed, offset)
	case KindU64:
		typed, ok := v.(uint64)
		if !ok {
			return invalidValue(name, f, v)
		}
		binary.PutUint64(dst[*offset:], typed, offset)
	case KindI64:
		typed, ok := v.(int64)
		if !ok {
			return invalidValue(name, f, v)
		}
		binary.PutInt64(dst[*offset:], typed, offset)
	case KindPublicKey:
		var key []byte
		switch typed := v.(type) {
		case ed25519.PublicKey:
			key = typed
		case []byte:
			key = typed
		default:
			return invalidValue(name, f, v)
		}
		if len(key) != ed25519.PublicKeySize {
			return errors.Wrapf(ErrInvalidValue, "%s: expected %d byte key, got %d", name, ed25519.PublicKeySize, len(key))
		}
		binary.PutKey32(dst[*offset:], key, offset)
	case KindBytes:
		typed, ok := v.([]byte)
		if !ok {
			return invalidValue(name, f, v)
		}
		if len(typed) != f.Length {
			return errors.Wrapf(ErrInvalidValue, "%s: expected %d bytes, got %d", name, f.Length, len(typed))
		}
		binary.PutFixedBytes(dst[*offset:], typed, f.Length, offset)
	case KindEnum:
		typed, ok := v.(Variant)
		if !ok {
			return invalidValue(name, f, v)
		}
		if int(typed) >= len(f.Variants) {
			return errors.Wrapf(ErrInvalidEnumVariant, "%s: %d", name, typed)
		}
		binary.PutUint8(dst[*offset:], uint8(typed), offset)
	case KindStruct:
		typed, ok := v.(Values)
		if !ok {
			return invalidValue(name, f, v)
		}
		return encodeFields(dst, f.Fields, typed, name+".", offset)
	default:
		return errors.Errorf("%s: unknown kind %d", name, f.Kind)
	}

	return nil
}

func decodeFields(src []byte, fields []Field, path string, offset *int) (Values, error) {
	values := make(Values, len(fields))
	for _, f := range fields {
		v, err := decodeField(src, f, path+f.Name, offset)
		if err != nil {
			return nil, err
		}
		values[f.Name] = v
	}
	return values, nil
}

func decodeField(src []byte, f Field, name string, offset *int) (interface{}, error) {
	switch f.Kind {
	case KindU8:
		var v uint8
		binary.GetUint8(src[*offset:], &v, offset)
		return v, nil
	case KindU16:
		var v uint16
		binary.GetUint16(src[*offset:], &v, offset)
		return v, nil
	case KindU32:
		var v uint32
		binary.GetUint32(src[*offset:], &v, offset)
		return v, nil
	case KindU64:
		var v uint64
		binary.GetUint64(src[*offset:], &v, offset)
		return v, nil
	case KindI64:
		var v int64
		binary.GetInt64(src[*offset:], &v, offset)
		return v, nil
	case KindPublicKey:
		var v ed25519.PublicKey
		binary.GetKey32(src[*offset:], &v, offset)
		return v, nil
	case KindBytes:
		var v []byte
		binary.GetFixedBytes(src[*offset:], &v, f.Length, offset)
		return v, nil
	case KindEnum:
		var v uint8
		binary.GetUint8(src[*offset:], &v, offset)
		if int(v) >= len(f.Variants) {
			return nil, errors.Wrapf(ErrInvalidEnumVariant, "%s: %d", name, v)
		}
		return Variant(v), nil
	case KindStruct:
		return decodeFields(src, f.Fields, name+".", offset)
	}

	return nil, errors.Errorf("%s: unknown kind %d", name, f.Kind)
}

func invalidValue(name string, f Field, v interface{}) error {
	return errors.Wrap(ErrInvalidValue, fmt.Sprintf("%s: expected %s, got %T", name, f.Kind, v))
}
