package gen

import (
	"github.com/uzzu/kotlin-dsl/internal/accessor"
	"github.com/uzzu/kotlin-dsl/internal/jvm"
	"github.com/uzzu/kotlin-dsl/internal/kmetadata"
	"github.com/uzzu/kotlin-dsl/internal/schema"
	"github.com/uzzu/kotlin-dsl/internal/support"
)

// ContainerElement emits "val Container.name: NamedDomainObjectProvider<T>".
func (e *emitter) ContainerElement(a accessor.ForContainerElement) (*emission, error) {
	return e.element(a, a.Spec, support.SymbolNamedElement, support.NamedDomainObjectProvider, "element")
}

// Task emits "val TaskContainer.name: TaskProvider<T>".
func (e *emitter) Task(a accessor.ForTask) (*emission, error) {
	return e.element(a, a.Spec, support.SymbolNamedTask, support.TaskProvider, "task")
}

// element emits a provider-returning getter: lookup.named(name, T::class.java).
func (e *emitter) element(
	a accessor.Accessor, spec schema.TypedAccessorSpec, lookup support.Symbol, handle, noun string,
) (*emission, error) {
	refs, err := e.resolve(lookup)
	if err != nil {
		return nil, err
	}

	named := refs[0]

	name := spec.Name.Original
	typ := visible(spec.ReturnType)
	provider := classOf(handle, typ)

	getter := kmetadata.JvmMethodSignature{
		Name:       accessor.GetterNameFor(name),
		Descriptor: jvm.MethodDescriptor(descriptorOf(provider), descriptorOf(spec.Receiver)),
	}

	f := e.facade(a)

	err = f.property(
		extensionProperty(name, spec.Receiver, provider, getter),
		genericSignature(provider, spec.Receiver),
		func(c *jvm.Code) {
			c.ALoad(0)
			c.LdcString(name)
			c.LdcClass(typ.InternalName())
			named.Invoke(c)
			c.AReturn()
		},
	)
	if err != nil {
		return nil, err
	}

	data := newTypedData(spec)
	data.Handle = sourceTypeOf(classOf(handle))
	data.Noun = noun

	if err := f.declare(tmplElement, data); err != nil {
		return nil, err
	}

	return e.finish(f)
}
