package collections

import (
	"fmt"

	"github.com/hasbyte1/go-indexed-collections/arr"
)

type transformKind uint8

const (
	kindIdentity transformKind = iota
	kindFunc
	kindConstructor
)

func (k transformKind) String() string {
	switch k {
	case kindFunc:
		return "func"
	case kindConstructor:
		return "constructor"
	default:
		return "identity"
	}
}

// Transform converts raw inputs of type In into stored elements of type T.
//
// The zero value is the identity transform. The kind is fixed when the
// Transform is built:
//
//	collections.Identity[int, int]()                      // store inputs unchanged
//	collections.Func(parseCat)                            // one input → one element
//	collections.Constructor(2, func(a []string) (Pair, error) { … }) // two inputs → one element
type Transform[In, T any] struct {
	kind  transformKind
	arity int
	fn    func(In) (T, error)
	ctor  func(args []In) (T, error)
}

// Identity returns the transform that stores raw inputs unchanged.
// In must be assignable to T.
func Identity[In, T any]() Transform[In, T] {
	return Transform[In, T]{}
}

// Func returns a transform that applies fn to each raw input.
func Func[In, T any](fn func(In) (T, error)) Transform[In, T] {
	return Transform[In, T]{kind: kindFunc, arity: 1, fn: fn}
}

// Convert is [Func] for conversions that cannot fail.
func Convert[In, T any](fn func(In) T) Transform[In, T] {
	if fn == nil {
		return Transform[In, T]{kind: kindFunc, arity: 1}
	}
	return Func(func(in In) (T, error) { return fn(in), nil })
}

// Constructor returns a transform that builds one element from every arity
// consecutive raw inputs. A call whose input count is not a multiple of
// arity is rejected with [ErrIncompleteArgs].
func Constructor[In, T any](arity int, fn func(args []In) (T, error)) Transform[In, T] {
	return Transform[In, T]{kind: kindConstructor, arity: arity, ctor: fn}
}

// Kind returns "identity", "func" or "constructor".
func (t Transform[In, T]) Kind() string { return t.kind.String() }

// Arity returns the number of raw inputs consumed per element.
func (t Transform[In, T]) Arity() int {
	if t.kind == kindConstructor {
		return t.arity
	}
	return 1
}

func (t Transform[In, T]) validate() error {
	switch t.kind {
	case kindFunc:
		if t.fn == nil {
			return &ConfigError{Field: "as", Reason: "func transform is nil"}
		}
	case kindConstructor:
		if t.ctor == nil {
			return &ConfigError{Field: "as", Reason: "constructor is nil"}
		}
		if t.arity < 1 {
			return &ConfigError{Field: "as", Reason: fmt.Sprintf("constructor arity %d, must be at least 1", t.arity)}
		}
	default:
		if !assignable[In, T]() {
			return &ConfigError{Field: "as", Reason: fmt.Sprintf("identity transform cannot store %s as %s", typeName[In](), typeName[T]())}
		}
	}
	return nil
}

// apply turns one call's raw inputs into elements. Nothing is retained on
// failure.
func (t Transform[In, T]) apply(raw []In) ([]T, error) {
	switch t.kind {
	case kindFunc:
		out := make([]T, len(raw))
		for i, in := range raw {
			err := guard(StageTransform, "", i, func() error {
				v, err := t.fn(in)
				out[i] = v
				return err
			})
			if err != nil {
				return nil, err
			}
		}
		return out, nil

	case kindConstructor:
		groups, rest := arr.Chunk(raw, t.arity)
		if len(rest) > 0 {
			return nil, &ExtractionError{
				Stage:    StageTransform,
				Position: len(groups) * t.arity,
				Cause:    fmt.Errorf("%w: %d inputs for arity %d", ErrIncompleteArgs, len(raw), t.arity),
			}
		}
		out := make([]T, len(groups))
		for i, args := range groups {
			err := guard(StageTransform, "", i*t.arity, func() error {
				v, err := t.ctor(args)
				out[i] = v
				return err
			})
			if err != nil {
				return nil, err
			}
		}
		return out, nil

	default:
		out := make([]T, len(raw))
		for i, in := range raw {
			out[i] = identity[In, T](in)
		}
		return out, nil
	}
}

// identity stores in as T. validate has already checked assignability; the
// only failing assertion left is a nil interface, which maps to T's zero.
func identity[In, T any](in In) T {
	v, _ := any(in).(T)
	return v
}
