package support

import (
	"github.com/uzzu/kotlin-dsl/internal/errors"
	"github.com/uzzu/kotlin-dsl/internal/jvm"
)

// InvokeKind selects the invoke instruction for a MethodRef.
type InvokeKind int

const (
	InvokeStatic InvokeKind = iota
	InvokeInterface
	InvokeVirtual
)

// MethodRef is a resolved method reference.
type MethodRef struct {
	Owner      string
	Name       string
	Descriptor string
	Kind       InvokeKind
}

func (m MethodRef) String() string {
	return m.Owner + "." + m.Name + m.Descriptor
}

// Invoke emits the call instruction for m.
func (m MethodRef) Invoke(c *jvm.Code) {
	switch m.Kind {
	case InvokeStatic:
		c.InvokeStatic(m.Owner, m.Name, m.Descriptor)
	case InvokeInterface:
		c.InvokeInterface(m.Owner, m.Name, m.Descriptor)
	case InvokeVirtual:
		c.InvokeVirtual(m.Owner, m.Name, m.Descriptor)
	}
}

// Library resolves symbols to method references.
type Library interface {
	Resolve(s Symbol) (MethodRef, error)
}

// ErrUnresolved is returned for symbols a Library does not provide.
var ErrUnresolved = errors.New("unresolved support symbol")

// Table is a Library backed by a map.
type Table map[Symbol]MethodRef

// Resolve implements Library.
func (t Table) Resolve(s Symbol) (MethodRef, error) {
	m, ok := t[s]
	if !ok {
		return MethodRef{}, errors.Wrapf(ErrUnresolved, "%s", s)
	}

	return m, nil
}

// Without returns a copy of t lacking the given symbols.
func (t Table) Without(symbols ...Symbol) Table {
	out := make(Table, len(t))
	for k, v := range t {
		out[k] = v
	}

	for _, s := range symbols {
		delete(out, s)
	}

	return out
}

func desc(t string) string { return jvm.ObjectDescriptor(t) }

// Gradle returns the default library: the kotlin-dsl runtime helpers and
// the Gradle API.
func Gradle() Table {
	var (
		object = jvm.ObjectDesc
		str    = jvm.StringDesc
		class  = jvm.ClassDesc
		action = desc(Action)
	)

	return Table{
		SymbolExtensionOf: {
			Owner: Runtime, Name: "extensionOf",
			Descriptor: jvm.MethodDescriptor(object, object, str),
		},
		SymbolConventionPluginOf: {
			Owner: Runtime, Name: "conventionPluginOf",
			Descriptor: jvm.MethodDescriptor(object, object, str),
		},
		SymbolAddDependencyTo: {
			Owner: Runtime, Name: "addDependencyTo",
			Descriptor: jvm.MethodDescriptor(desc(Dependency), desc(DependencyHandler), str, object, action),
		},
		SymbolGetExtensions: {
			Owner: ExtensionAware, Name: "getExtensions",
			Descriptor: jvm.MethodDescriptor(desc(ExtensionContainer)),
			Kind:       InvokeInterface,
		},
		SymbolConfigureExtension: {
			Owner: ExtensionContainer, Name: "configure",
			Descriptor: jvm.MethodDescriptor(jvm.VoidDescriptor, str, action),
			Kind:       InvokeInterface,
		},
		SymbolActionExecute: {
			Owner: Action, Name: "execute",
			Descriptor: jvm.MethodDescriptor(jvm.VoidDescriptor, object),
			Kind:       InvokeInterface,
		},
		SymbolNamedElement: {
			Owner: NamedDomainObjectCollection, Name: "named",
			Descriptor: jvm.MethodDescriptor(desc(NamedDomainObjectProvider), str, class),
			Kind:       InvokeInterface,
		},
		SymbolNamedTask: {
			Owner: TaskContainer, Name: "named",
			Descriptor: jvm.MethodDescriptor(desc(TaskProvider), str, class),
			Kind:       InvokeInterface,
		},
		SymbolNamedConfiguration: {
			Owner: NamedDomainObjectContainer, Name: "named",
			Descriptor: jvm.MethodDescriptor(desc(NamedDomainObjectProvider), str),
			Kind:       InvokeInterface,
		},
		SymbolAddDependency: {
			Owner: DependencyHandler, Name: "add",
			Descriptor: jvm.MethodDescriptor(desc(Dependency), str, object),
			Kind:       InvokeInterface,
		},
		SymbolAddConstraint: {
			Owner: DependencyConstraintHandler, Name: "add",
			Descriptor: jvm.MethodDescriptor(desc(DependencyConstraint), str, object),
			Kind:       InvokeInterface,
		},
		SymbolAddConfiguredConstraint: {
			Owner: DependencyConstraintHandler, Name: "add",
			Descriptor: jvm.MethodDescriptor(desc(DependencyConstraint), str, object, action),
			Kind:       InvokeInterface,
		},
	}
}
