package collections

import (
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"sort"

	"github.com/hasbyte1/go-indexed-collections/arr"
)

// KeyFunc computes a secondary-index key from an element. Returning nil
// leaves the element out of that index. Keys must be comparable.
type KeyFunc[T any] func(T) any

// Classifier computes group membership for an element:
//
//   - true places the element in the group's flat bucket;
//   - any other non-empty value places it in the keyed bucket for that value;
//   - nil, false, "" and numeric zero leave it out of the group.
//
// Use [Flat] and [Keyed] to adapt typed functions.
type Classifier[T any] func(T) any

// Fielder is implemented by element types that can be indexed by field name
// ([ByField], [ByFields]) without reflection. map[string]any elements are
// supported directly through dot-notation paths.
type Fielder interface {
	Field(name string) (any, bool)
}

// KeySpec describes the secondary indices of a List. Build it with
// [ByField], [ByFields] or [ByFuncs]; the zero value maintains no indices.
type KeySpec[T any] struct {
	fields []string
	funcs  map[string]KeyFunc[T]
}

// ByField maintains one index named name, keyed by the element's name field.
// T must be a map with string keys and any values (named map types
// included), a [Fielder], or an interface holding either.
func ByField[T any](name string) KeySpec[T] {
	return KeySpec[T]{fields: []string{name}}
}

// ByFields maintains one index per field name, in the given order.
func ByFields[T any](names ...string) KeySpec[T] {
	return KeySpec[T]{fields: slices.Clone(names)}
}

// ByFuncs maintains one index per entry of funcs.
func ByFuncs[T any](funcs map[string]KeyFunc[T]) KeySpec[T] {
	return KeySpec[T]{funcs: funcs}
}

// Config is the user-facing configuration of a List. It is resolved once by
// [New]; later changes to the maps or slices it references have no effect.
type Config[In, T any] struct {
	// Items are inserted right after construction, through the same path
	// as [List.Push].
	Items []In

	// By selects the secondary indices.
	By KeySpec[T]

	// Groups maps group names to classifiers.
	Groups map[string]Classifier[T]

	// As converts raw inputs into elements. The zero value stores inputs
	// unchanged, which requires In to be T (or an interface T implements).
	As Transform[In, T]

	// Equal decides which elements [List.Remove] matches. Defaults to ==,
	// and is required when T is not comparable.
	Equal func(a, b T) bool

	// Logger receives debug and warning records. Nil discards them.
	Logger *slog.Logger

	// Metrics observes every mutation. Nil disables collection.
	Metrics MetricsCollector
}

// ─────────────────────────────────────────────────────────────────────────────
// Resolution
// ─────────────────────────────────────────────────────────────────────────────

type extractor[T any] struct {
	name string
	fn   KeyFunc[T]
}

type classifier[T any] struct {
	name string
	fn   Classifier[T]
}

// resolved is the canonical, owned form of a Config.
type resolved[In, T any] struct {
	extractors  []extractor[T]
	classifiers []classifier[T]
	transform   Transform[In, T]
	equal       func(a, b T) bool
	log         *Logger
	metrics     MetricsCollector
}

func resolve[In, T any](cfg Config[In, T]) (*resolved[In, T], error) {
	r := &resolved[In, T]{
		transform: cfg.As,
		equal:     cfg.Equal,
		log:       NoopLogger(),
		metrics:   NoopMetricsCollector{},
	}
	if cfg.Logger != nil {
		r.log = &Logger{Logger: cfg.Logger}
	}
	if cfg.Metrics != nil {
		r.metrics = cfg.Metrics
	}

	if err := cfg.As.validate(); err != nil {
		return nil, err
	}

	extractors, err := resolveBy(cfg.By)
	if err != nil {
		return nil, err
	}
	r.extractors = extractors

	classifiers, err := resolveGroups(cfg.Groups)
	if err != nil {
		return nil, err
	}
	r.classifiers = classifiers

	if r.equal == nil {
		if !reflect.TypeFor[T]().Comparable() {
			return nil, &ConfigError{Field: "equal", Reason: fmt.Sprintf("%s is not comparable; an Equal func is required", typeName[T]())}
		}
		r.equal = defaultEqual[T]
	}
	return r, nil
}

func resolveBy[T any](spec KeySpec[T]) ([]extractor[T], error) {
	if len(spec.fields) > 0 && len(spec.funcs) > 0 {
		return nil, &ConfigError{Field: "by", Reason: "field names and funcs cannot be mixed"}
	}

	out := make([]extractor[T], 0, len(spec.fields)+len(spec.funcs))
	seen := make(map[string]bool, cap(out))
	for _, name := range spec.fields {
		if name == "" {
			return nil, &ConfigError{Field: "by", Reason: "empty index name"}
		}
		if seen[name] {
			return nil, &ConfigError{Field: "by", Name: name, Reason: "duplicate index name"}
		}
		seen[name] = true
		fn, err := fieldKey[T](name)
		if err != nil {
			return nil, err
		}
		out = append(out, extractor[T]{name: name, fn: fn})
	}

	names := make([]string, 0, len(spec.funcs))
	for name := range spec.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if name == "" {
			return nil, &ConfigError{Field: "by", Reason: "empty index name"}
		}
		fn := spec.funcs[name]
		if fn == nil {
			return nil, &ConfigError{Field: "by", Name: name, Reason: "key func is nil"}
		}
		out = append(out, extractor[T]{name: name, fn: fn})
	}
	return out, nil
}

func resolveGroups[T any](groups map[string]Classifier[T]) ([]classifier[T], error) {
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]classifier[T], 0, len(names))
	for _, name := range names {
		if name == "" {
			return nil, &ConfigError{Field: "groups", Reason: "empty group name"}
		}
		fn := groups[name]
		if fn == nil {
			return nil, &ConfigError{Field: "groups", Name: name, Reason: "classifier is nil"}
		}
		out = append(out, classifier[T]{name: name, fn: fn})
	}
	return out, nil
}

// fieldKey builds the KeyFunc for a field-name index. The element type is
// inspected once here; extraction itself never uses reflection.
func fieldKey[T any](name string) (KeyFunc[T], error) {
	path, err := arr.ParsePath(name)
	if err != nil {
		return nil, &ConfigError{Field: "by", Name: name, Reason: "malformed field path", Err: err}
	}

	var zero T
	switch any(zero).(type) {
	case map[string]any:
		return func(item T) any {
			m, _ := any(item).(map[string]any)
			v, _ := path.Lookup(m)
			return v
		}, nil
	case Fielder:
		return func(item T) any {
			v, _ := any(item).(Fielder).Field(name)
			return v
		}, nil
	}

	if t := reflect.TypeFor[T](); t.Kind() == reflect.Map && t.ConvertibleTo(mapType) {
		// Named map types such as `type Rec map[string]any`.
		return func(item T) any {
			m, _ := reflect.ValueOf(item).Convert(mapType).Interface().(map[string]any)
			v, _ := path.Lookup(m)
			return v
		}, nil
	}

	if reflect.TypeFor[T]().Kind() == reflect.Interface {
		// Only the dynamic type can tell.
		return func(item T) any {
			switch x := any(item).(type) {
			case map[string]any:
				v, _ := path.Lookup(x)
				return v
			case Fielder:
				v, _ := x.Field(name)
				return v
			}
			return nil
		}, nil
	}

	return nil, &ConfigError{
		Field:  "by",
		Name:   name,
		Reason: fmt.Sprintf("%s is neither map[string]any nor a Fielder", typeName[T]()),
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Type helpers
// ─────────────────────────────────────────────────────────────────────────────

var mapType = reflect.TypeFor[map[string]any]()

func defaultEqual[T any](a, b T) (eq bool) {
	// Interface element types can still hold uncomparable dynamic values.
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return any(a) == any(b)
}

// assignable reports whether the identity transform can store an In as a T.
func assignable[In, T any]() bool {
	in, t := reflect.TypeFor[In](), reflect.TypeFor[T]()
	if in == t {
		return true
	}
	return t.Kind() == reflect.Interface && in.Implements(t)
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
