package kmetadata

import (
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/uzzu/kotlin-dsl/internal/errors"
)

// stringTable interns d2 strings in first-use order.
type stringTable struct {
	strings []string
	index   map[string]int
}

func (t *stringTable) id(s string) uint64 {
	if i, ok := t.index[s]; ok {
		return uint64(i)
	}

	if t.index == nil {
		t.index = make(map[string]int)
	}

	t.index[s] = len(t.strings)
	t.strings = append(t.strings, s)

	return uint64(len(t.strings) - 1)
}

// bytes encodes the StringTableTypes message: one record covering every
// string, used verbatim.
func (t *stringTable) bytes() []byte {
	if len(t.strings) == 0 {
		return nil
	}

	record := appendVarint(nil, fieldRecordRange, uint64(len(t.strings)))

	return appendMessage(nil, fieldStringTableRecord, record)
}

// Encode serializes p into the d1 and d2 elements of kotlin.Metadata.
func Encode(p *Package) (d1, d2 []string, err error) {
	var e encoder

	body, err := e.pkg(p)
	if err != nil {
		return nil, nil, err
	}

	data := protowire.AppendBytes(nil, e.strings.bytes())
	data = append(data, body...)

	return BytesToStrings(data), e.strings.strings, nil
}

type encoder struct {
	strings stringTable
}

func (e *encoder) pkg(p *Package) ([]byte, error) {
	var b []byte

	for i := range p.Functions {
		f, err := e.function(&p.Functions[i])
		if err != nil {
			return nil, errors.Wrapf(err, "function %q", p.Functions[i].Name)
		}

		b = appendMessage(b, fieldPackageFunction, f)
	}

	for i := range p.Properties {
		prop, err := e.property(&p.Properties[i])
		if err != nil {
			return nil, errors.Wrapf(err, "property %q", p.Properties[i].Name)
		}

		b = appendMessage(b, fieldPackageProperty, prop)
	}

	if p.ModuleName != "" {
		b = appendVarint(b, fieldPackageModuleName, e.strings.id(p.ModuleName))
	}

	return b, nil
}

func (e *encoder) function(f *Function) ([]byte, error) {
	if f.Name == "" {
		return nil, errors.New("empty name")
	}

	var b []byte

	b = appendVarint(b, fieldFunctionName, e.strings.id(f.Name))

	ret, err := e.typ(&f.ReturnType)
	if err != nil {
		return nil, errors.Wrap(err, "return type")
	}

	b = appendMessage(b, fieldFunctionReturnType, ret)

	if b, err = e.typeParameters(b, fieldFunctionTypeParameter, f.TypeParameters); err != nil {
		return nil, err
	}

	if f.ReceiverType != nil {
		recv, err := e.typ(f.ReceiverType)
		if err != nil {
			return nil, errors.Wrap(err, "receiver type")
		}

		b = appendMessage(b, fieldFunctionReceiverType, recv)
	}

	for i := range f.ValueParameters {
		vp, err := e.valueParameter(&f.ValueParameters[i])
		if err != nil {
			return nil, errors.Wrapf(err, "parameter %d", i)
		}

		b = appendMessage(b, fieldFunctionValueParameter, vp)
	}

	if f.Flags != defaultFunctionFlags {
		b = appendVarint(b, fieldFunctionFlags, uint64(f.Flags))
	}

	if f.Signature.Name != "" {
		b = appendMessage(b, fieldFunctionSignature, e.signature(f.Signature))
	}

	return b, nil
}

func (e *encoder) property(p *Property) ([]byte, error) {
	if p.Name == "" {
		return nil, errors.New("empty name")
	}

	var b []byte

	b = appendVarint(b, fieldPropertyName, e.strings.id(p.Name))

	ret, err := e.typ(&p.ReturnType)
	if err != nil {
		return nil, errors.Wrap(err, "return type")
	}

	b = appendMessage(b, fieldPropertyReturnType, ret)

	if b, err = e.typeParameters(b, fieldPropertyTypeParameter, p.TypeParameters); err != nil {
		return nil, err
	}

	if p.ReceiverType != nil {
		recv, err := e.typ(p.ReceiverType)
		if err != nil {
			return nil, errors.Wrap(err, "receiver type")
		}

		b = appendMessage(b, fieldPropertyReceiverType, recv)
	}

	if p.GetterFlags != 0 {
		b = appendVarint(b, fieldPropertyGetterFlags, uint64(p.GetterFlags))
	}

	if p.Flags != defaultPropertyFlags {
		b = appendVarint(b, fieldPropertyFlags, uint64(p.Flags))
	}

	if p.Getter.Name != "" {
		sig := appendMessage(nil, fieldPropertySignatureGetter, e.signature(p.Getter))
		b = appendMessage(b, fieldPropertySignature, sig)
	}

	return b, nil
}

func (e *encoder) signature(s JvmMethodSignature) []byte {
	b := appendVarint(nil, fieldSignatureName, e.strings.id(s.Name))
	return appendVarint(b, fieldSignatureDesc, e.strings.id(s.Descriptor))
}

func (e *encoder) typeParameters(b []byte, num protowire.Number, params []TypeParameter) ([]byte, error) {
	for i := range params {
		tp, err := e.typeParameter(&params[i])
		if err != nil {
			return nil, errors.Wrapf(err, "type parameter %q", params[i].Name)
		}

		b = appendMessage(b, num, tp)
	}

	return b, nil
}

func (e *encoder) typeParameter(p *TypeParameter) ([]byte, error) {
	if p.Name == "" {
		return nil, errors.New("empty name")
	}

	if p.Variance < VarianceIn || p.Variance > VarianceInv {
		return nil, errors.Newf("invalid variance %d", p.Variance)
	}

	b := appendVarint(nil, fieldTypeParameterID, uint64(p.ID))
	b = appendVarint(b, fieldTypeParameterName, e.strings.id(p.Name))

	if p.Reified {
		b = appendBool(b, fieldTypeParameterReified, true)
	}

	if p.Variance != defaultTypeParamVariance {
		b = appendVarint(b, fieldTypeParameterVariance, uint64(p.Variance))
	}

	for i := range p.UpperBounds {
		ub, err := e.typ(&p.UpperBounds[i])
		if err != nil {
			return nil, errors.Wrap(err, "upper bound")
		}

		b = appendMessage(b, fieldTypeParameterUpperBound, ub)
	}

	return b, nil
}

func (e *encoder) valueParameter(p *ValueParameter) ([]byte, error) {
	if p.Name == "" {
		return nil, errors.New("empty name")
	}

	var b []byte

	if p.Flags != 0 {
		b = appendVarint(b, fieldValueParameterFlags, uint64(p.Flags))
	}

	b = appendVarint(b, fieldValueParameterName, e.strings.id(p.Name))

	t, err := e.typ(&p.Type)
	if err != nil {
		return nil, errors.Wrapf(err, "parameter %q", p.Name)
	}

	return appendMessage(b, fieldValueParameterType, t), nil
}

func (e *encoder) typ(t *Type) ([]byte, error) {
	if !t.IsTypeParameter && t.ClassName == "" {
		return nil, errors.New("type has neither class name nor type parameter")
	}

	var b []byte

	for i, a := range t.Arguments {
		arg, err := e.argument(a)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %d of %s", i, t)
		}

		b = appendMessage(b, fieldTypeArgument, arg)
	}

	if t.Nullable {
		b = appendBool(b, fieldTypeNullable, true)
	}

	if t.IsTypeParameter {
		b = appendVarint(b, fieldTypeTypeParameter, uint64(t.TypeParameterID))
	} else {
		b = appendVarint(b, fieldTypeClassName, e.strings.id(t.ClassName))
	}

	return b, nil
}

func (e *encoder) argument(a TypeProjection) ([]byte, error) {
	if a.Variance == VarianceStar {
		return appendVarint(nil, fieldArgumentProjection, uint64(VarianceStar)), nil
	}

	if a.Type == nil {
		return nil, errors.New("non-star projection without a type")
	}

	var b []byte

	if a.Variance != defaultArgumentProjection {
		b = appendVarint(b, fieldArgumentProjection, uint64(a.Variance))
	}

	t, err := e.typ(a.Type)
	if err != nil {
		return nil, err
	}

	return appendMessage(b, fieldArgumentType, t), nil
}
