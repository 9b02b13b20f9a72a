package module

import (
	"fmt"
	"reflect"
	"slices"
	"sync"
)

// Registry records which modules have been mounted
type Registry struct {
	mu    sync.RWMutex
	names map[string]struct{}
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{names: map[string]struct{}{}}
}

// Add records name, repeats are harmless
func (r *Registry) Add(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.names[name] = struct{}{}
}

// Names lists recorded module names in sorted order
func (r *Registry) Names() []string {
	r.mu.RLock()
	out := make([]string, 0, len(r.names))
	for k := range r.names {
		out = append(out, k)
	}
	r.mu.RUnlock()
	slices.Sort(out)
	return out
}

func (r *Registry) clear() {
	r.mu.Lock()
	clear(r.names)
	r.mu.Unlock()
}

// process wide registry filled by MountAll
var global = NewRegistry()

// Names lists the modules mounted so far
func Names() []string { return global.Names() }

// Reset empties the registry, tests only
func Reset() { global.clear() }

// PortsOf finds a T in m's Ports bundle, either the bundle itself or one of its exported fields
func PortsOf[T any](m Module) (T, bool) {
	var zero T
	p := m.Ports()
	if p == nil {
		return zero, false
	}
	if v, ok := p.(T); ok {
		return v, true
	}

	rv := reflect.Indirect(reflect.ValueOf(p))
	if rv.Kind() != reflect.Struct {
		return zero, false
	}
	rt := rv.Type()
	for i := range rt.NumField() {
		if !rt.Field(i).IsExported() {
			continue
		}
		if v, ok := rv.Field(i).Interface().(T); ok {
			return v, true
		}
	}
	return zero, false
}

// MustPortsOf is PortsOf for bootstrap code where a missing port is a wiring bug
func MustPortsOf[T any](m Module) T {
	v, ok := PortsOf[T](m)
	if !ok {
		panic(fmt.Sprintf("module %s: requested port not found (%s)", m.Name(), reflect.TypeFor[T]()))
	}
	return v
}
