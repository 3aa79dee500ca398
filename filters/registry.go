package filters

import (
	"maps"
	"slices"
	"sync"

	"github.com/soypat/filterer"
)

// Names of the filters registered by [NewDefaultRegistry].
const (
	NameBrightness150 = "150% brightness"
	NameRed5x         = "5x red"
	NameBlue10x       = "10x blue"
	NameGreen15x      = "15x green"
	NameSharper       = "sharper"
)

// Registry maps human readable names to configured filters.
// It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	filters map[string]filterer.Filter
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{filters: make(map[string]filterer.Filter)}
}

// NewDefaultRegistry returns a registry holding the predefined filters:
//
//	"150% brightness"  Brightness(1.5)
//	"5x red"           ColorBoost(Red, 5)
//	"10x blue"         ColorBoost(Blue, 10)
//	"15x green"        ColorBoost(Green, 15)
//	"sharper"          Sharpening
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NameBrightness150, NewBrightness(1.5))
	r.Register(NameRed5x, mustColorBoost(filterer.Red, 5))
	r.Register(NameBlue10x, mustColorBoost(filterer.Blue, 10))
	r.Register(NameGreen15x, mustColorBoost(filterer.Green, 15))
	r.Register(NameSharper, NewSharpening())
	return r
}

func mustColorBoost(c filterer.Channel, boost int) *ColorBoost {
	f, err := NewColorBoost(c, boost)
	if err != nil {
		panic(err)
	}
	return f
}

// Register adds f under name, replacing any filter already registered with that name.
// Register panics if f is nil.
func (r *Registry) Register(name string, f filterer.Filter) {
	if f == nil {
		panic("filters: Register of nil filter " + name)
	}
	r.mu.Lock()
	r.filters[name] = f
	r.mu.Unlock()
}

// Lookup returns the filter registered under name or a
// [*filterer.UnknownFilterError] if there is none. A nil Registry is empty.
func (r *Registry) Lookup(name string) (filterer.Filter, error) {
	if r == nil {
		return nil, &filterer.UnknownFilterError{Name: name}
	}
	r.mu.RLock()
	f, ok := r.filters[name]
	r.mu.RUnlock()
	if !ok {
		return nil, &filterer.UnknownFilterError{Name: name}
	}
	return f, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.filters))
}
