package strategy

import (
	"sort"

	apperrors "github.com/abray/logbench/internal/errors"
)

// executionOrder fixes the order in which strategies run and report:
// interpreted styles first, the bulk kernel last. Duration records are
// always emitted in this order.
var executionOrder = []string{"append-loop", "prealloc-loop", "map-func", "vectorized"}

// Factory provides access to registered strategy implementations by name.
type Factory interface {
	// Get returns the strategy registered under the given name.
	Get(name string) (Strategy, error)
	// GetAll returns every registered strategy in execution order.
	GetAll() []Strategy
	// List returns the registered names in execution order.
	List() []string
}

// registryFactory is the default Factory backed by a name registry.
type registryFactory struct {
	strategies map[string]Strategy
	order      []string
}

// NewDefaultFactory creates a Factory with all four strategies registered.
func NewDefaultFactory() Factory {
	return &registryFactory{
		strategies: map[string]Strategy{
			"append-loop":   AppendLoop{},
			"prealloc-loop": PreallocLoop{},
			"map-func":      MapFunc{},
			"vectorized":    Vectorized{},
		},
		order: executionOrder,
	}
}

// Get returns the strategy registered under name.
func (f *registryFactory) Get(name string) (Strategy, error) {
	s, ok := f.strategies[name]
	if !ok {
		names := f.List()
		sort.Strings(names)
		return nil, apperrors.NewConfigError("unknown strategy %q (available: %v)", name, names)
	}
	return s, nil
}

// GetAll returns every registered strategy in execution order.
func (f *registryFactory) GetAll() []Strategy {
	out := make([]Strategy, 0, len(f.order))
	for _, name := range f.order {
		out = append(out, f.strategies[name])
	}
	return out
}

// List returns the registered names in execution order.
func (f *registryFactory) List() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}
