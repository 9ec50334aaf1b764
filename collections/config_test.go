package collections_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-indexed-collections/arr"
	"github.com/hasbyte1/go-indexed-collections/collections"
)

func requireConfigError(t *testing.T, err error, field, name string) *collections.ConfigError {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, collections.ErrInvalidConfig)

	var cfgErr *collections.ConfigError
	require.True(t, errors.As(err, &cfgErr), "want *ConfigError, got %T", err)
	assert.Equal(t, field, cfgErr.Field)
	assert.Equal(t, name, cfgErr.Name)
	return cfgErr
}

func TestConfig_IndexErrors(t *testing.T) {
	type M = map[string]any
	id := func(i int) any { return i }

	_, err := collections.New(collections.Config[M, M]{
		By:    collections.ByFields[M]("id", "id"),
		Equal: func(a, b M) bool { return false },
	})
	requireConfigError(t, err, "by", "id")

	_, err = collections.New(collections.Config[int, int]{
		By: collections.ByFuncs(map[string]collections.KeyFunc[int]{"": id}),
	})
	requireConfigError(t, err, "by", "")

	_, err = collections.New(collections.Config[int, int]{
		By: collections.ByField[int](""),
	})
	requireConfigError(t, err, "by", "")

	_, err = collections.New(collections.Config[int, int]{
		By: collections.ByFuncs(map[string]collections.KeyFunc[int]{"id": nil}),
	})
	requireConfigError(t, err, "by", "id")
}

func TestConfig_FieldIndexNeedsFielder(t *testing.T) {
	_, err := collections.New(collections.Config[int, int]{
		By: collections.ByField[int]("id"),
	})
	cfgErr := requireConfigError(t, err, "by", "id")
	assert.Contains(t, cfgErr.Error(), "neither map[string]any nor a Fielder")

	// A value receiver type does not satisfy Fielder; *Cat does.
	_, err = collections.New(collections.Config[Cat, Cat]{
		By: collections.ByField[Cat]("id"),
	})
	requireConfigError(t, err, "by", "id")
}

func TestConfig_MalformedPath(t *testing.T) {
	type M = map[string]any
	_, err := collections.New(collections.Config[M, M]{
		By:    collections.ByField[M]("owner..name"),
		Equal: func(a, b M) bool { return false },
	})
	requireConfigError(t, err, "by", "owner..name")
	assert.ErrorIs(t, err, arr.ErrInvalidPath)
}

func TestConfig_GroupErrors(t *testing.T) {
	even := collections.Flat(func(i int) bool { return i%2 == 0 })

	_, err := collections.New(collections.Config[int, int]{
		Groups: map[string]collections.Classifier[int]{"": even},
	})
	requireConfigError(t, err, "groups", "")

	_, err = collections.New(collections.Config[int, int]{
		Groups: map[string]collections.Classifier[int]{"even": even, "odd": nil},
	})
	requireConfigError(t, err, "groups", "odd")
}

func TestConfig_TransformErrors(t *testing.T) {
	_, err := collections.New(collections.Config[string, int]{})
	requireConfigError(t, err, "as", "")

	_, err = collections.New(collections.Config[string, int]{
		As: collections.Func[string, int](nil),
	})
	requireConfigError(t, err, "as", "")

	_, err = collections.New(collections.Config[string, int]{
		As: collections.Convert[string, int](nil),
	})
	requireConfigError(t, err, "as", "")

	_, err = collections.New(collections.Config[string, int]{
		As: collections.Constructor[string, int](2, nil),
	})
	requireConfigError(t, err, "as", "")

	_, err = collections.New(collections.Config[string, int]{
		As: collections.Constructor(0, func([]string) (int, error) { return 0, nil }),
	})
	requireConfigError(t, err, "as", "")
}

func TestConfig_IdentityToInterface(t *testing.T) {
	l, err := collections.New(collections.Config[*Cat, collections.Fielder]{}, &Cat{ID: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, l.Len())
}

func TestConfig_EqualRequiredForUncomparable(t *testing.T) {
	_, err := collections.New(collections.Config[[]int, []int]{})
	requireConfigError(t, err, "equal", "")

	l, err := collections.New(collections.Config[[]int, []int]{
		Equal: func(a, b []int) bool { return len(a) == len(b) },
	}, []int{1}, []int{1, 2})
	require.NoError(t, err)
	assert.Len(t, l.Remove([]int{9}), 1)
}

func TestConfig_ResolvedOnce(t *testing.T) {
	funcs := map[string]collections.KeyFunc[int]{"id": func(i int) any { return i }}
	l, err := collections.New(collections.Config[int, int]{By: collections.ByFuncs(funcs)}, 1)
	require.NoError(t, err)

	funcs["late"] = func(i int) any { return i }
	_, err = l.Push(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"id"}, l.IndexNames())
}

func TestTransform_KindAndArity(t *testing.T) {
	assert.Equal(t, "identity", collections.Identity[int, int]().Kind())
	assert.Equal(t, 1, collections.Identity[int, int]().Arity())

	conv := collections.Convert(func(s string) int { return len(s) })
	assert.Equal(t, "func", conv.Kind())
	assert.Equal(t, 1, conv.Arity())

	ctor := collections.Constructor(3, func([]string) (int, error) { return 0, nil })
	assert.Equal(t, "constructor", ctor.Kind())
	assert.Equal(t, 3, ctor.Arity())
}

func TestConfigError_Message(t *testing.T) {
	err := &collections.ConfigError{Field: "by", Name: "id", Reason: "duplicate index name"}
	assert.Equal(t, `collections: invalid by "id": duplicate index name`, err.Error())

	err = &collections.ConfigError{Field: "as", Reason: "constructor is nil", Err: errors.New("boom")}
	assert.Equal(t, "collections: invalid as: constructor is nil: boom", err.Error())
}
