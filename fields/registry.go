package fields

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"
)

// ErrAlreadyRegistered is returned when a descriptor is registered twice for
// the same type.
var ErrAlreadyRegistered = errors.New("descriptor already registered")

// DefaultPlatformPackages lists the standard library packages whose types
// are commonly embedded or held in fields and must be treated as opaque.
// errors and fmt are left out: their error values hold only unexported
// fields and are compared field by field.
var DefaultPlatformPackages = []string{
	"bytes",
	"container/list",
	"context",
	"database/sql",
	"encoding/json",
	"io",
	"math/big",
	"net",
	"net/http",
	"net/url",
	"os",
	"reflect",
	"regexp",
	"strings",
	"sync",
	"sync/atomic",
	"time",
}

// store is shared between a registry and the views derived from it.
type store struct {
	mu         sync.RWMutex
	registered map[reflect.Type]Descriptor

	// reflection derived descriptors, never invalidated
	derived sync.Map // map[reflect.Type]Descriptor
}

// Registry maps struct types to their descriptors. It is safe for concurrent
// use.
type Registry struct {
	s        *store
	platform []string
}

// Default is the registry used by engines that were not given one. Code
// emitted by refeq-gen registers into it at package initialization.
var Default = NewRegistry()

// NewRegistry returns an empty registry with the default platform boundary.
func NewRegistry() *Registry {
	return &Registry{
		s:        &store{registered: make(map[reflect.Type]Descriptor)},
		platform: DefaultPlatformPackages,
	}
}

// WithPlatformPackages returns a view sharing r's descriptors with another
// platform boundary. A nil list selects DefaultPlatformPackages.
func (r *Registry) WithPlatformPackages(prefixes []string) *Registry {
	if prefixes == nil {
		prefixes = DefaultPlatformPackages
	}

	return &Registry{s: r.s, platform: slices.Clone(prefixes)}
}

// PlatformPackages returns the boundary of r.
func (r *Registry) PlatformPackages() []string {
	return slices.Clone(r.platform)
}

// Register adds an explicit descriptor. Field names must be unique and every
// field needs a type and an accessor.
func (r *Registry) Register(d Descriptor) error {
	if err := validate(d); err != nil {
		return err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.registered[d.Type]; ok {
		return fmt.Errorf("%w: %v", ErrAlreadyRegistered, d.Type)
	}

	r.s.registered[d.Type] = d

	return nil
}

// Unregister removes an explicit descriptor, reflection derivation applies
// again afterwards.
func (r *Registry) Unregister(t reflect.Type) {
	r.s.mu.Lock()
	delete(r.s.registered, t)
	r.s.mu.Unlock()
}

// Lookup returns the descriptor of struct type t. The boolean reports
// whether it was registered explicitly rather than derived.
func (r *Registry) Lookup(t reflect.Type) (Descriptor, bool, error) {
	r.s.mu.RLock()
	d, ok := r.s.registered[t]
	r.s.mu.RUnlock()

	if ok {
		return d, true, nil
	}

	if cached, ok := r.s.derived.Load(t); ok {
		return cached.(Descriptor), false, nil
	}

	d, err := derive(t)
	if err != nil {
		return Descriptor{}, false, err
	}

	actual, _ := r.s.derived.LoadOrStore(t, d)

	return actual.(Descriptor), false, nil
}

// Platform reports whether the package path is inside the platform
// boundary. The empty path of predeclared types always is.
func (r *Registry) Platform(pkgPath string) bool {
	if pkgPath == "" {
		return true
	}

	for _, p := range r.platform {
		if pkgPath == p || strings.HasPrefix(pkgPath, p+"/") {
			return true
		}
	}

	return false
}

// IsPlatformType reports whether t, or the type t points to, is declared in
// a platform package. Unnamed composite types are never platform types.
func (r *Registry) IsPlatformType(t reflect.Type) bool {
	if t == nil {
		return false
	}

	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t.Name() == "" {
		return false
	}

	return r.Platform(t.PkgPath())
}

func validate(d Descriptor) error {
	if d.Type == nil || d.Type.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %v is not a struct type", ErrIntrospection, d.Type)
	}

	seen := make(map[string]bool, len(d.Fields))

	for _, f := range d.Fields {
		switch {
		case f.Name == "":
			return fmt.Errorf("%w: %v has a field without a name", ErrIntrospection, d.Type)
		case seen[f.Name]:
			return fmt.Errorf("%w: %v.%s is listed twice", ErrIntrospection, d.Type, f.Name)
		case f.Type == nil || f.Get == nil:
			return fmt.Errorf("%w: %v.%s needs a type and an accessor", ErrIntrospection, d.Type, f.Name)
		}

		seen[f.Name] = true
	}

	return nil
}
