package gen

import (
	"path/filepath"

	"github.com/uzzu/kotlin-dsl/internal/accessor"
	"github.com/uzzu/kotlin-dsl/internal/errors"
	"github.com/uzzu/kotlin-dsl/internal/jvm"
	"github.com/uzzu/kotlin-dsl/internal/kmetadata"
	"github.com/uzzu/kotlin-dsl/internal/schema"
)

// Artifact is one output file.
type Artifact struct {
	// Path is the full destination path.
	Path    string
	Content []byte
}

// emission is everything produced for one accessor.
type emission struct {
	// className is the JVM internal name of the facade.
	className string
	artifacts []Artifact
}

const accessorAccess = jvm.AccPublic | jvm.AccStatic | jvm.AccFinal

// facade accumulates one file facade: its class, the Kotlin metadata
// describing the class, and the source stub declarations.
type facade struct {
	internalName string
	fileName     string
	class        *jvm.ClassWriter
	metadata     kmetadata.Package
	declarations []string
}

func newFacade(a accessor.Accessor, moduleName string) *facade {
	f := &facade{
		internalName: accessor.InternalNameFor(a),
		fileName:     accessor.FileNameFor(a),
		metadata:     kmetadata.Package{ModuleName: moduleName},
	}

	f.class = jvm.NewClassWriter(jvm.AccPublic|jvm.AccFinal|jvm.AccSuper, f.internalName, jvm.ObjectInternal)
	f.class.SetSourceFile(f.fileName + ".kt")

	return f
}

// method adds a JVM-only method.
func (f *facade) method(access uint16, name, descriptor, signature string, body func(*jvm.Code)) error {
	if err := f.class.AddMethod(access, name, descriptor, signature, body); err != nil {
		return errors.Wrapf(err, "method %s%s", name, descriptor)
	}

	return nil
}

// property adds the getter of p and its metadata entry.
func (f *facade) property(p kmetadata.Property, signature string, body func(*jvm.Code)) error {
	if err := f.method(accessorAccess, p.Getter.Name, p.Getter.Descriptor, signature, body); err != nil {
		return err
	}

	f.metadata.Properties = append(f.metadata.Properties, p)

	return nil
}

// function adds the method behind fn and its metadata entry.
func (f *facade) function(fn kmetadata.Function, signature string, body func(*jvm.Code)) error {
	if err := f.method(accessorAccess, fn.Signature.Name, fn.Signature.Descriptor, signature, body); err != nil {
		return err
	}

	f.metadata.Functions = append(f.metadata.Functions, fn)

	return nil
}

// declare renders a source stub declaration.
func (f *facade) declare(template string, data any) error {
	text, err := renderDeclaration(template, data)
	if err != nil {
		return err
	}

	f.declarations = append(f.declarations, text)

	return nil
}

// finish writes the metadata annotation and renders the artifacts.
// The source stub is skipped when srcDir is empty.
func (f *facade) finish(config *GeneratorConfig, srcDir, binDir string) (*emission, error) {
	header, err := kmetadata.FileFacade(config.MetadataVersion, &f.metadata)
	if err != nil {
		return nil, errors.Wrap(err, "encoding metadata")
	}

	f.class.AddAnnotation(header.Annotation())

	class, err := f.class.Bytes()
	if err != nil {
		return nil, errors.Wrapf(err, "writing class %s", f.internalName)
	}

	out := &emission{className: f.internalName}
	out.artifacts = append(out.artifacts, Artifact{
		Path:    filepath.Join(binDir, filepath.FromSlash(f.internalName)+".class"),
		Content: class,
	})

	if srcDir != "" {
		src, err := renderSourceFile(f.declarations)
		if err != nil {
			return nil, errors.Wrapf(err, "rendering %s.kt", f.fileName)
		}

		out.artifacts = append(out.artifacts, Artifact{
			Path:    filepath.Join(srcDir, filepath.FromSlash(accessor.PackageInternal), f.fileName+".kt"),
			Content: src,
		})
	}

	return out, nil
}

// extensionProperty describes "val Receiver.name: Type" with a custom getter.
func extensionProperty(name string, receiver, typ schema.TypeOf, getter kmetadata.JvmMethodSignature) kmetadata.Property {
	return kmetadata.Property{
		Flags:        kmetadata.PublicFinalVal,
		GetterFlags:  kmetadata.CustomGetter,
		Name:         name,
		ReceiverType: kotlinTypePtr(receiver),
		ReturnType:   kotlinTypeOf(typ),
		Getter:       getter,
	}
}

// extensionFunction describes "fun Receiver.name(params): Return".
func extensionFunction(
	name string, receiver schema.TypeOf, ret kmetadata.Type, descriptor string, params ...kmetadata.ValueParameter,
) kmetadata.Function {
	return kmetadata.Function{
		Flags:           kmetadata.PublicFinal,
		Name:            name,
		ReceiverType:    kotlinTypePtr(receiver),
		ValueParameters: params,
		ReturnType:      ret,
		Signature:       kmetadata.JvmMethodSignature{Name: name, Descriptor: descriptor},
	}
}

func param(name string, t schema.TypeOf) kmetadata.ValueParameter {
	return kmetadata.ValueParameter{Name: name, Type: kotlinTypeOf(t)}
}

func optionalParam(name string, t schema.TypeOf) kmetadata.ValueParameter {
	p := param(name, t)
	p.Flags = kmetadata.FlagParamDeclaresDefaultValue

	return p
}
