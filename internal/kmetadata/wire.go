package kmetadata

import (
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/uzzu/kotlin-dsl/internal/errors"
)

// Field numbers from metadata.proto and jvm_metadata.proto.
const (
	fieldStringTableRecord       protowire.Number = 1
	fieldStringTableLocalName    protowire.Number = 5
	fieldRecordRange             protowire.Number = 1
	fieldRecordPredefinedIndex   protowire.Number = 2
	fieldRecordOperation         protowire.Number = 3
	fieldRecordString            protowire.Number = 6
	fieldRecordSubstringIndex    protowire.Number = 4
	fieldRecordReplaceChar       protowire.Number = 5
	fieldPackageFunction         protowire.Number = 3
	fieldPackageProperty         protowire.Number = 4
	fieldPackageModuleName       protowire.Number = 101
	fieldFunctionName            protowire.Number = 2
	fieldFunctionReturnType      protowire.Number = 3
	fieldFunctionTypeParameter   protowire.Number = 4
	fieldFunctionReceiverType    protowire.Number = 5
	fieldFunctionValueParameter  protowire.Number = 6
	fieldFunctionFlags           protowire.Number = 9
	fieldFunctionSignature       protowire.Number = 100
	fieldPropertyName            protowire.Number = 2
	fieldPropertyReturnType      protowire.Number = 3
	fieldPropertyTypeParameter   protowire.Number = 4
	fieldPropertyReceiverType    protowire.Number = 5
	fieldPropertyGetterFlags     protowire.Number = 7
	fieldPropertyFlags           protowire.Number = 11
	fieldPropertySignature       protowire.Number = 100
	fieldPropertySignatureGetter protowire.Number = 3
	fieldSignatureName           protowire.Number = 1
	fieldSignatureDesc           protowire.Number = 2
	fieldValueParameterFlags     protowire.Number = 1
	fieldValueParameterName      protowire.Number = 2
	fieldValueParameterType      protowire.Number = 3
	fieldTypeParameterID         protowire.Number = 1
	fieldTypeParameterName       protowire.Number = 2
	fieldTypeParameterReified    protowire.Number = 3
	fieldTypeParameterVariance   protowire.Number = 4
	fieldTypeParameterUpperBound protowire.Number = 5
	fieldTypeArgument            protowire.Number = 2
	fieldTypeNullable            protowire.Number = 3
	fieldTypeClassName           protowire.Number = 6
	fieldTypeTypeParameter       protowire.Number = 7
	fieldArgumentProjection      protowire.Number = 1
	fieldArgumentType            protowire.Number = 2
)

// Proto defaults; fields equal to them are not written.
const (
	defaultFunctionFlags      = PublicFinal
	defaultPropertyFlags      = PublicFinalVal
	defaultTypeParamVariance  = VarianceInv
	defaultArgumentProjection = VarianceInv
)

func appendVarint(b []byte, num protowire.Number, v uint64) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendMessage(b []byte, num protowire.Number, msg []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, msg)
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	return appendVarint(b, num, protowire.EncodeBool(v))
}

// field is one decoded wire field.
type field struct {
	typ    protowire.Type
	varint uint64
	bytes  []byte
}

func (f field) int() (int, error) {
	if f.typ != protowire.VarintType {
		return 0, errors.Newf("expected varint, got wire type %d", f.typ)
	}

	return int(int32(f.varint)), nil
}

func (f field) message() ([]byte, error) {
	if f.typ != protowire.BytesType {
		return nil, errors.Newf("expected length-delimited, got wire type %d", f.typ)
	}

	return f.bytes, nil
}

// walk calls visit for every field of the message b, in wire order.
func walk(b []byte, visit func(num protowire.Number, f field) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return errors.Wrap(protowire.ParseError(n), "reading tag")
		}

		b = b[n:]
		f := field{typ: typ}

		switch typ {
		case protowire.VarintType:
			f.varint, n = protowire.ConsumeVarint(b)
		case protowire.BytesType:
			f.bytes, n = protowire.ConsumeBytes(b)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
		}

		if n < 0 {
			return errors.Wrapf(protowire.ParseError(n), "reading field %d", num)
		}

		b = b[n:]

		if err := visit(num, f); err != nil {
			return errors.Wrapf(err, "field %d", num)
		}
	}

	return nil
}
