package gen

import (
	"github.com/uzzu/kotlin-dsl/internal/accessor"
	"github.com/uzzu/kotlin-dsl/internal/errors"
	"github.com/uzzu/kotlin-dsl/internal/support"
)

// emitter translates one accessor into its artifacts. It holds no mutable
// state and is shared by every worker.
type emitter struct {
	config *GeneratorConfig
	srcDir string
	binDir string
}

var _ accessor.Visitor[*emission] = (*emitter)(nil)

// emit dispatches a to the emitter for its kind.
func (e *emitter) emit(a accessor.Accessor) (out *emission, err error) {
	// Workers run outside any recover; a panic would skip the writer drain.
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, errors.Newf("emitting %s: panic: %v", accessor.Describe(a), r)
		}
	}()

	out, err = accessor.Accept[*emission](a, e)
	if err != nil {
		return nil, errors.Wrapf(err, "emitting %s", accessor.Describe(a))
	}

	return out, nil
}

// resolve looks up every symbol, failing on the first unresolved one.
func (e *emitter) resolve(symbols ...support.Symbol) ([]support.MethodRef, error) {
	refs := make([]support.MethodRef, 0, len(symbols))

	for _, s := range symbols {
		ref, err := e.config.Library.Resolve(s)
		if err != nil {
			return nil, err
		}

		refs = append(refs, ref)
	}

	return refs, nil
}

func (e *emitter) facade(a accessor.Accessor) *facade {
	return newFacade(a, e.config.ModuleName)
}

func (e *emitter) finish(f *facade) (*emission, error) {
	return f.finish(e.config, e.srcDir, e.binDir)
}
