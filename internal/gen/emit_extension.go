package gen

import (
	"github.com/uzzu/kotlin-dsl/internal/accessor"
	"github.com/uzzu/kotlin-dsl/internal/jvm"
	"github.com/uzzu/kotlin-dsl/internal/kmetadata"
	"github.com/uzzu/kotlin-dsl/internal/schema"
	"github.com/uzzu/kotlin-dsl/internal/support"
)

// Extension emits a getter looking the extension up by name and a
// configurator delegating to the extension container.
func (e *emitter) Extension(a accessor.ForExtension) (*emission, error) {
	refs, err := e.resolve(
		support.SymbolExtensionOf,
		support.SymbolGetExtensions,
		support.SymbolConfigureExtension,
	)
	if err != nil {
		return nil, err
	}

	extensionOf, getExtensions, configure := refs[0], refs[1], refs[2]

	f := e.facade(a)

	if err := e.typedGetter(f, a.Spec, extensionOf); err != nil {
		return nil, err
	}

	name := a.Spec.Name.Original

	err = e.typedConfigurator(f, a.Spec, func(c *jvm.Code) {
		c.ALoad(0)
		c.CheckCast(support.ExtensionAware)
		getExtensions.Invoke(c)
		c.LdcString(name)
		c.ALoad(1)
		configure.Invoke(c)
		c.Return()
	})
	if err != nil {
		return nil, err
	}

	if err := f.declare(tmplExtension, newTypedData(a.Spec)); err != nil {
		return nil, err
	}

	return e.finish(f)
}

// Convention emits a getter looking the convention object up by name and a
// configurator applying the action to it.
func (e *emitter) Convention(a accessor.ForConvention) (*emission, error) {
	refs, err := e.resolve(support.SymbolConventionPluginOf, support.SymbolActionExecute)
	if err != nil {
		return nil, err
	}

	conventionPluginOf, execute := refs[0], refs[1]

	f := e.facade(a)

	if err := e.typedGetter(f, a.Spec, conventionPluginOf); err != nil {
		return nil, err
	}

	name := a.Spec.Name.Original
	returnType, accessible := a.Spec.ReturnType.Type()

	err = e.typedConfigurator(f, a.Spec, func(c *jvm.Code) {
		c.ALoad(1)
		c.ALoad(0)
		c.LdcString(name)
		conventionPluginOf.Invoke(c)

		if accessible {
			c.CheckCast(returnType.InternalName())
		}

		execute.Invoke(c)
		c.Return()
	})
	if err != nil {
		return nil, err
	}

	if err := f.declare(tmplConvention, newTypedData(a.Spec)); err != nil {
		return nil, err
	}

	return e.finish(f)
}

// typedGetter emits "val Receiver.name: T" backed by lookup(receiver, name).
func (e *emitter) typedGetter(f *facade, spec schema.TypedAccessorSpec, lookup support.MethodRef) error {
	name := spec.Name.Original
	typ := visible(spec.ReturnType)
	returnType, accessible := spec.ReturnType.Type()

	getter := kmetadata.JvmMethodSignature{
		Name:       accessor.GetterNameFor(name),
		Descriptor: jvm.MethodDescriptor(descriptorOf(typ), descriptorOf(spec.Receiver)),
	}

	return f.property(
		extensionProperty(name, spec.Receiver, typ, getter),
		genericSignature(typ, spec.Receiver),
		func(c *jvm.Code) {
			c.ALoad(0)
			c.LdcString(name)
			lookup.Invoke(c)

			if accessible {
				c.CheckCast(returnType.InternalName())
			}

			c.AReturn()
		},
	)
}

// typedConfigurator emits "fun Receiver.name(configure: Action<T>): Unit".
func (e *emitter) typedConfigurator(f *facade, spec schema.TypedAccessorSpec, body func(*jvm.Code)) error {
	name := spec.Name.Original
	action := classOf(support.Action, visible(spec.ReturnType))
	descriptor := jvm.MethodDescriptor(jvm.VoidDescriptor, descriptorOf(spec.Receiver), descriptorOf(action))

	fn := extensionFunction(name, spec.Receiver, kmetadata.ClassType(kmetadata.ClassUnit), descriptor,
		param("configure", action))

	signature := jvm.MethodDescriptor(jvm.VoidDescriptor, signatureOf(spec.Receiver), signatureOf(action))

	return f.function(fn, signature, body)
}
