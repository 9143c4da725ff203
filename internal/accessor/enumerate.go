package accessor

import (
	"iter"

	"github.com/uzzu/kotlin-dsl/internal/schema"
)

// All lazily enumerates the accessors of a schema in a fixed order:
// extensions, conventions, tasks, container elements, configurations.
func All(p *schema.ProjectSchema) iter.Seq[Accessor] {
	return func(yield func(Accessor) bool) {
		if p == nil {
			return
		}

		for _, spec := range p.Extensions {
			if !yield(ForExtension{Spec: spec}) {
				return
			}
		}

		for _, spec := range p.Conventions {
			if !yield(ForConvention{Spec: spec}) {
				return
			}
		}

		for _, spec := range p.Tasks {
			if !yield(ForTask{Spec: spec}) {
				return
			}
		}

		for _, spec := range p.ContainerElements {
			if !yield(ForContainerElement{Spec: spec}) {
				return
			}
		}

		for _, name := range p.Configurations {
			if !yield(ForConfiguration{Config: name}) {
				return
			}
		}
	}
}
