package kmetadata

import (
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/uzzu/kotlin-dsl/internal/errors"
)

// DecodePackage parses the d1 and d2 elements of a file facade.
// Only string tables whose records use strings verbatim are supported,
// which is what Encode writes.
func DecodePackage(d1, d2 []string) (*Package, error) {
	data, err := StringsToBytes(d1)
	if err != nil {
		return nil, err
	}

	table, n := protowire.ConsumeBytes(data)
	if n < 0 {
		return nil, errors.Wrap(protowire.ParseError(n), "reading string table")
	}

	d := decoder{strings: d2}
	if err := d.stringTable(table); err != nil {
		return nil, errors.Wrap(err, "string table")
	}

	p, err := d.pkg(data[n:])
	if err != nil {
		return nil, errors.Wrap(err, "package")
	}

	return p, nil
}

type decoder struct {
	strings []string
}

func (d *decoder) stringTable(b []byte) error {
	return walk(b, func(num protowire.Number, f field) error {
		if num != fieldStringTableRecord {
			return nil
		}

		msg, err := f.message()
		if err != nil {
			return err
		}

		return walk(msg, func(num protowire.Number, _ field) error {
			switch num {
			case fieldRecordRange:
				return nil
			case fieldRecordPredefinedIndex, fieldRecordOperation, fieldRecordString,
				fieldRecordSubstringIndex, fieldRecordReplaceChar:
				return errors.Newf("unsupported string record field %d", num)
			}

			return nil
		})
	})
}

func (d *decoder) str(f field) (string, error) {
	i, err := f.int()
	if err != nil {
		return "", err
	}

	if i < 0 || i >= len(d.strings) {
		return "", errors.Newf("string index %d out of range [0,%d)", i, len(d.strings))
	}

	return d.strings[i], nil
}

func (d *decoder) pkg(b []byte) (*Package, error) {
	p := &Package{}

	err := walk(b, func(num protowire.Number, f field) error {
		switch num {
		case fieldPackageFunction:
			msg, err := f.message()
			if err != nil {
				return err
			}

			fn, err := d.function(msg)
			if err != nil {
				return err
			}

			p.Functions = append(p.Functions, *fn)
		case fieldPackageProperty:
			msg, err := f.message()
			if err != nil {
				return err
			}

			prop, err := d.property(msg)
			if err != nil {
				return err
			}

			p.Properties = append(p.Properties, *prop)
		case fieldPackageModuleName:
			s, err := d.str(f)
			if err != nil {
				return err
			}

			p.ModuleName = s
		}

		return nil
	})

	return p, err
}

func (d *decoder) function(b []byte) (*Function, error) {
	fn := &Function{Flags: defaultFunctionFlags}

	err := walk(b, func(num protowire.Number, f field) error {
		var err error

		switch num {
		case fieldFunctionName:
			fn.Name, err = d.str(f)
		case fieldFunctionReturnType:
			err = d.typeInto(f, &fn.ReturnType)
		case fieldFunctionTypeParameter:
			var tp *TypeParameter
			if tp, err = d.typeParameterField(f); err == nil {
				fn.TypeParameters = append(fn.TypeParameters, *tp)
			}
		case fieldFunctionReceiverType:
			fn.ReceiverType = &Type{}
			err = d.typeInto(f, fn.ReceiverType)
		case fieldFunctionValueParameter:
			var vp *ValueParameter
			if vp, err = d.valueParameter(f); err == nil {
				fn.ValueParameters = append(fn.ValueParameters, *vp)
			}
		case fieldFunctionFlags:
			var v int
			v, err = f.int()
			fn.Flags = Flags(v)
		case fieldFunctionSignature:
			var msg []byte
			if msg, err = f.message(); err == nil {
				fn.Signature, err = d.signature(msg)
			}
		}

		return err
	})

	return fn, err
}

func (d *decoder) property(b []byte) (*Property, error) {
	p := &Property{Flags: defaultPropertyFlags}

	err := walk(b, func(num protowire.Number, f field) error {
		var err error

		switch num {
		case fieldPropertyName:
			p.Name, err = d.str(f)
		case fieldPropertyReturnType:
			err = d.typeInto(f, &p.ReturnType)
		case fieldPropertyTypeParameter:
			var tp *TypeParameter
			if tp, err = d.typeParameterField(f); err == nil {
				p.TypeParameters = append(p.TypeParameters, *tp)
			}
		case fieldPropertyReceiverType:
			p.ReceiverType = &Type{}
			err = d.typeInto(f, p.ReceiverType)
		case fieldPropertyGetterFlags:
			var v int
			v, err = f.int()
			p.GetterFlags = Flags(v)
		case fieldPropertyFlags:
			var v int
			v, err = f.int()
			p.Flags = Flags(v)
		case fieldPropertySignature:
			var msg []byte
			if msg, err = f.message(); err != nil {
				return err
			}

			err = walk(msg, func(num protowire.Number, f field) error {
				if num != fieldPropertySignatureGetter {
					return nil
				}

				getter, err := f.message()
				if err != nil {
					return err
				}

				p.Getter, err = d.signature(getter)

				return err
			})
		}

		return err
	})

	return p, err
}

func (d *decoder) signature(b []byte) (JvmMethodSignature, error) {
	var s JvmMethodSignature

	err := walk(b, func(num protowire.Number, f field) error {
		var err error

		switch num {
		case fieldSignatureName:
			s.Name, err = d.str(f)
		case fieldSignatureDesc:
			s.Descriptor, err = d.str(f)
		}

		return err
	})

	return s, err
}

func (d *decoder) typeParameterField(f field) (*TypeParameter, error) {
	msg, err := f.message()
	if err != nil {
		return nil, err
	}

	tp := &TypeParameter{Variance: defaultTypeParamVariance}

	err = walk(msg, func(num protowire.Number, f field) error {
		var (
			err error
			v   int
		)

		switch num {
		case fieldTypeParameterID:
			tp.ID, err = f.int()
		case fieldTypeParameterName:
			tp.Name, err = d.str(f)
		case fieldTypeParameterReified:
			v, err = f.int()
			tp.Reified = v != 0
		case fieldTypeParameterVariance:
			v, err = f.int()
			tp.Variance = Variance(v)
		case fieldTypeParameterUpperBound:
			var ub Type
			if err = d.typeInto(f, &ub); err == nil {
				tp.UpperBounds = append(tp.UpperBounds, ub)
			}
		}

		return err
	})

	return tp, err
}

func (d *decoder) valueParameter(f field) (*ValueParameter, error) {
	msg, err := f.message()
	if err != nil {
		return nil, err
	}

	vp := &ValueParameter{}

	err = walk(msg, func(num protowire.Number, f field) error {
		var err error

		switch num {
		case fieldValueParameterFlags:
			var v int
			v, err = f.int()
			vp.Flags = Flags(v)
		case fieldValueParameterName:
			vp.Name, err = d.str(f)
		case fieldValueParameterType:
			err = d.typeInto(f, &vp.Type)
		}

		return err
	})

	return vp, err
}

func (d *decoder) typeInto(f field, t *Type) error {
	msg, err := f.message()
	if err != nil {
		return err
	}

	return walk(msg, func(num protowire.Number, f field) error {
		var (
			err error
			v   int
		)

		switch num {
		case fieldTypeArgument:
			var arg TypeProjection
			if arg, err = d.argument(f); err == nil {
				t.Arguments = append(t.Arguments, arg)
			}
		case fieldTypeNullable:
			v, err = f.int()
			t.Nullable = v != 0
		case fieldTypeClassName:
			t.ClassName, err = d.str(f)
		case fieldTypeTypeParameter:
			t.TypeParameterID, err = f.int()
			t.IsTypeParameter = true
		}

		return err
	})
}

func (d *decoder) argument(f field) (TypeProjection, error) {
	a := TypeProjection{Variance: defaultArgumentProjection}

	msg, err := f.message()
	if err != nil {
		return a, err
	}

	err = walk(msg, func(num protowire.Number, f field) error {
		var err error

		switch num {
		case fieldArgumentProjection:
			var v int
			v, err = f.int()
			a.Variance = Variance(v)
		case fieldArgumentType:
			a.Type = &Type{}
			err = d.typeInto(f, a.Type)
		}

		return err
	})

	return a, err
}
