package catalog

import (
	"errors"
	"fmt"

	"github.com/san-kum/sortvis/internal/algorithms"
)

// ErrUnknownAlgorithm is returned for ids that are not registered.
var ErrUnknownAlgorithm = errors.New("catalog: unknown algorithm")

// Registry maps algorithm ids to factories, in menu order.
type Registry struct {
	order      []string
	algorithms map[string]func() algorithms.Algorithm
}

func NewRegistry() *Registry {
	r := &Registry{
		algorithms: make(map[string]func() algorithms.Algorithm),
	}

	r.register("bubble", func() algorithms.Algorithm { return algorithms.NewBubbleSort() })
	r.register("quick", func() algorithms.Algorithm { return algorithms.NewQuickSort() })
	r.register("merge", func() algorithms.Algorithm { return algorithms.NewMergeSort() })
	r.register("insertion", func() algorithms.Algorithm { return algorithms.NewInsertionSort() })
	r.register("selection", func() algorithms.Algorithm { return algorithms.NewSelectionSort() })
	r.register("binary", func() algorithms.Algorithm { return algorithms.NewBinarySearch() })
	r.register("linear", func() algorithms.Algorithm { return algorithms.NewLinearSearch() })

	return r
}

func (r *Registry) register(id string, fn func() algorithms.Algorithm) {
	r.order = append(r.order, id)
	r.algorithms[id] = fn
}

func (r *Registry) Get(id string) (algorithms.Algorithm, error) {
	fn, ok := r.algorithms[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownAlgorithm, id, r.order)
	}
	return fn(), nil
}

func (r *Registry) Has(id string) bool {
	_, ok := r.algorithms[id]
	return ok
}

// IDs returns the registered ids in menu order.
func (r *Registry) IDs() []string {
	return append([]string(nil), r.order...)
}

// Infos returns the metadata of every algorithm in menu order.
func (r *Registry) Infos() []algorithms.Info {
	infos := make([]algorithms.Info, 0, len(r.order))
	for _, id := range r.order {
		infos = append(infos, r.algorithms[id]().Info())
	}
	return infos
}
