package accessor

import (
	"github.com/uzzu/kotlin-dsl/internal/errors"
	"github.com/uzzu/kotlin-dsl/internal/schema"
)

// Accessor is one generated binding. The set of implementations is closed.
type Accessor interface {
	// Kind returns the accessor shape.
	Kind() Kind
	// Name returns the accessor's logical name.
	Name() schema.AccessorNameSpec
	// String returns the canonical form used for naming.
	String() string

	sealed()
}

// ForExtension accessors read and configure a named extension of the receiver.
type ForExtension struct{ Spec schema.TypedAccessorSpec }

// ForConvention accessors read and configure a named convention object of the receiver.
type ForConvention struct{ Spec schema.TypedAccessorSpec }

// ForContainerElement accessors return a lazy handle to a named container element.
type ForContainerElement struct{ Spec schema.TypedAccessorSpec }

// ForTask accessors return a lazy handle to a named task.
type ForTask struct{ Spec schema.TypedAccessorSpec }

// ForConfiguration accessors expose a configuration and its dependency helpers.
// Receiver and return types are fixed, so only the name is carried.
type ForConfiguration struct{ Config schema.AccessorNameSpec }

func (ForExtension) Kind() Kind        { return KindExtension }
func (ForConvention) Kind() Kind       { return KindConvention }
func (ForContainerElement) Kind() Kind { return KindContainerElement }
func (ForTask) Kind() Kind             { return KindTask }
func (ForConfiguration) Kind() Kind    { return KindConfiguration }

func (a ForExtension) Name() schema.AccessorNameSpec        { return a.Spec.Name }
func (a ForConvention) Name() schema.AccessorNameSpec       { return a.Spec.Name }
func (a ForContainerElement) Name() schema.AccessorNameSpec { return a.Spec.Name }
func (a ForTask) Name() schema.AccessorNameSpec             { return a.Spec.Name }
func (a ForConfiguration) Name() schema.AccessorNameSpec    { return a.Config }

func (a ForExtension) String() string {
	return "ForExtension(spec=" + a.Spec.String() + ")"
}

func (a ForConvention) String() string {
	return "ForConvention(spec=" + a.Spec.String() + ")"
}

func (a ForContainerElement) String() string {
	return "ForContainerElement(spec=" + a.Spec.String() + ")"
}

func (a ForTask) String() string {
	return "ForTask(spec=" + a.Spec.String() + ")"
}

func (a ForConfiguration) String() string {
	return "ForConfiguration(name=" + a.Config.String() + ")"
}

func (ForExtension) sealed()        {}
func (ForConvention) sealed()       {}
func (ForContainerElement) sealed() {}
func (ForTask) sealed()             {}
func (ForConfiguration) sealed()    {}

// Visitor handles every accessor shape.
type Visitor[R any] interface {
	Extension(ForExtension) (R, error)
	Convention(ForConvention) (R, error)
	ContainerElement(ForContainerElement) (R, error)
	Task(ForTask) (R, error)
	Configuration(ForConfiguration) (R, error)
}

// Accept dispatches a to the matching Visitor method.
func Accept[R any](a Accessor, v Visitor[R]) (R, error) {
	switch a := a.(type) {
	case ForExtension:
		return v.Extension(a)
	case ForConvention:
		return v.Convention(a)
	case ForContainerElement:
		return v.ContainerElement(a)
	case ForTask:
		return v.Task(a)
	case ForConfiguration:
		return v.Configuration(a)
	default:
		var zero R
		return zero, errors.Newf("unsupported accessor %T", a)
	}
}

// Describe returns a short human label such as "extension java".
func Describe(a Accessor) string {
	return lowerFirst(a.Kind().String()) + " " + a.Name().Original
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}

	b := []byte(s)
	if b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}

	return string(b)
}
