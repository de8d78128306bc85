package refeq

import (
	"io"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"reflection-assert/fields"
	"reflection-assert/options"
)

// Engine runs comparisons with a fixed chain. It is immutable once built
// and safe for concurrent use.
type Engine struct {
	opts     options.Options
	chain    []Comparator
	custom   bool
	registry *fields.Registry
	log      logrus.FieldLogger

	// strict compares map keys, it is the engine itself when no leniency
	// is configured
	strict *Engine
}

// EngineOption customizes an engine built by New.
type EngineOption func(*Engine)

// WithLogger traces chain resolution at debug level.
func WithLogger(log logrus.FieldLogger) EngineOption {
	return func(e *Engine) { e.log = log }
}

// WithRegistry selects the field descriptor registry, fields.Default is used
// otherwise.
func WithRegistry(r *fields.Registry) EngineOption {
	return func(e *Engine) { e.registry = r }
}

// WithChain replaces the default chain. The chain should end with a
// comparator resolving every pair, such as FieldsComparator; a pair left
// unresolved fails with ErrUnresolved.
func WithChain(chain ...Comparator) EngineOption {
	return func(e *Engine) {
		e.chain = slices.Clone(chain)
		e.custom = true
	}
}

var discard logrus.FieldLogger = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}()

// DefaultChain returns the comparators selected by opts: the enabled
// leniency comparators followed by the default chain.
func DefaultChain(opts options.Options) []Comparator {
	chain := make([]Comparator, 0, 8)

	if opts.LenientDates {
		chain = append(chain, LenientDatesComparator{})
	}

	if opts.IgnoreDefaults {
		chain = append(chain, IgnoreDefaultsComparator{})
	}

	if opts.LenientNumbers {
		chain = append(chain, LenientNumbersComparator{})
	}

	return append(chain,
		SimpleCasesComparator{},
		PointerComparator{},
		CollectionComparator{LenientOrder: opts.LenientOrder},
		MapComparator{},
		FieldsComparator{},
	)
}

// New builds an engine for opts.
func New(opts options.Options, eo ...EngineOption) *Engine {
	opts.PlatformPackages = slices.Clone(opts.PlatformPackages)

	e := &Engine{opts: opts, registry: fields.Default}
	for _, o := range eo {
		o(e)
	}

	if opts.PlatformPackages != nil {
		e.registry = e.registry.WithPlatformPackages(opts.PlatformPackages)
	}

	if !e.custom {
		e.chain = DefaultChain(opts)
	}

	if !e.custom && opts.Modes() == options.ModeNone {
		e.strict = e
	} else {
		e.strict = &Engine{
			opts:     options.Options{PlatformPackages: opts.PlatformPackages},
			chain:    DefaultChain(options.Options{}),
			registry: e.registry,
			log:      e.log,
		}
		e.strict.strict = e.strict
	}

	return e
}

// Options returns the options the engine was built with.
func (e *Engine) Options() options.Options { return e.opts }

// Registry returns the descriptor registry used for structs.
func (e *Engine) Registry() *fields.Registry { return e.registry }

// Chain returns a copy of the comparator chain.
func (e *Engine) Chain() []Comparator { return slices.Clone(e.chain) }

func (e *Engine) strictEngine() *Engine { return e.strict }

// FindDifference compares left and right and returns the first difference,
// nil when they are equivalent.
func (e *Engine) FindDifference(left, right any) (*Difference, error) {
	return e.findDifference(reflect.ValueOf(left), reflect.ValueOf(right))
}

// IsEqual reports whether left and right are equivalent.
func (e *Engine) IsEqual(left, right any) (bool, error) {
	d, err := e.FindDifference(left, right)
	if err != nil {
		return false, err
	}

	return d == nil, nil
}

func (e *Engine) findDifference(l, r reflect.Value) (*Difference, error) {
	return newSession(e).compare(l, r)
}

type cacheKey struct {
	modes    options.Mode
	custom   bool
	platform string
}

var engines sync.Map // map[cacheKey]*Engine

func engineFor(opts options.Options) *Engine {
	key := cacheKey{
		modes:    opts.Modes(),
		custom:   opts.PlatformPackages != nil,
		platform: strings.Join(opts.PlatformPackages, "\n"),
	}

	if e, ok := engines.Load(key); ok {
		return e.(*Engine)
	}

	e, _ := engines.LoadOrStore(key, New(opts))

	return e.(*Engine)
}

// FindDifference compares left and right with an engine for opts and
// returns the first difference, nil when they are equivalent.
func FindDifference(left, right any, opts options.Options) (*Difference, error) {
	return engineFor(opts).FindDifference(left, right)
}

// IsEqual reports whether left and right are equivalent under opts.
func IsEqual(left, right any, opts options.Options) (bool, error) {
	return engineFor(opts).IsEqual(left, right)
}
