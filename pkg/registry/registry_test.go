package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/arthur-debert/plugchain/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testItem struct {
	ID   int
	Name string
}

func TestNew(t *testing.T) {
	reg := New[testItem]()
	require.NotNil(t, reg)
	assert.Equal(t, 0, reg.Count())
	assert.Empty(t, reg.Values())
}

func TestRegister(t *testing.T) {
	reg := New[testItem]()

	t.Run("register valid item", func(t *testing.T) {
		require.NoError(t, reg.Register("item1", testItem{ID: 1}))
		assert.Equal(t, 1, reg.Count())
	})

	t.Run("register with empty name", func(t *testing.T) {
		for _, name := range []string{"", "   "} {
			err := reg.Register(name, testItem{ID: 2})
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), "name %q", name)
		}
	})

	t.Run("register duplicate", func(t *testing.T) {
		err := reg.Register("item1", testItem{ID: 3})
		assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
		assert.Equal(t, "item1", errors.GetErrorDetails(err)["name"])

		got, err := reg.Get("item1")
		require.NoError(t, err)
		assert.Equal(t, 1, got.ID, "original registration must survive")
	})
}

func TestGet(t *testing.T) {
	reg := New[testItem]()
	item := testItem{ID: 1, Name: "test"}
	require.NoError(t, reg.Register("item1", item))

	got, err := reg.Get("item1")
	require.NoError(t, err)
	assert.Equal(t, item, got)

	_, err = reg.Get("nonexistent")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestRemove(t *testing.T) {
	reg := New[testItem]()
	for i, name := range []string{"a", "b", "c"} {
		require.NoError(t, reg.Register(name, testItem{ID: i}))
	}

	require.NoError(t, reg.Remove("b"))
	assert.False(t, reg.Has("b"))
	assert.Equal(t, []testItem{{ID: 0}, {ID: 2}}, reg.Values())

	err := reg.Remove("b")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))

	require.NoError(t, reg.Register("b", testItem{ID: 9}))
	assert.Equal(t, []testItem{{ID: 0}, {ID: 2}, {ID: 9}}, reg.Values())
}

func TestListIsSortedValuesKeepOrder(t *testing.T) {
	reg := New[testItem]()
	for i, name := range []string{"charlie", "alpha", "bravo"} {
		require.NoError(t, reg.Register(name, testItem{ID: i, Name: name}))
	}

	assert.Equal(t, []string{"alpha", "bravo", "charlie"}, reg.List())

	var order []string
	for _, v := range reg.Values() {
		order = append(order, v.Name)
	}
	assert.Equal(t, []string{"charlie", "alpha", "bravo"}, order)
}

func TestHas(t *testing.T) {
	reg := New[testItem]()
	require.NoError(t, reg.Register("item1", testItem{ID: 1}))

	tests := []struct {
		name     string
		itemName string
		want     bool
	}{
		{"existing item", "item1", true},
		{"non-existing item", "item2", false},
		{"empty name", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reg.Has(tt.itemName))
		})
	}
}

func TestClear(t *testing.T) {
	reg := New[testItem]()
	for i := 0; i < 5; i++ {
		require.NoError(t, reg.Register(fmt.Sprintf("item%d", i), testItem{ID: i}))
	}
	require.Equal(t, 5, reg.Count())

	reg.Clear()

	assert.Equal(t, 0, reg.Count())
	assert.Empty(t, reg.List())
	assert.Empty(t, reg.Values())
}

func TestConcurrency(t *testing.T) {
	reg := New[testItem]()
	const goroutines = 10
	const itemsPerGoroutine = 100

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < itemsPerGoroutine; i++ {
				assert.NoError(t, reg.Register(fmt.Sprintf("g%d_item%d", id, i), testItem{ID: id*1000 + i}))
			}
		}(g)
	}
	wg.Wait()

	assert.Equal(t, goroutines*itemsPerGoroutine, reg.Count())
	assert.Len(t, reg.Values(), goroutines*itemsPerGoroutine)

	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < itemsPerGoroutine; i++ {
				_, err := reg.Get(fmt.Sprintf("g%d_item%d", id, i))
				assert.NoError(t, err)
			}
		}(g)
	}
	wg.Wait()
}

func TestMustRegister(t *testing.T) {
	reg := New[testItem]()

	assert.NotPanics(t, func() { MustRegister(reg, "item1", testItem{ID: 1}) })
	assert.True(t, reg.Has("item1"))
	assert.Panics(t, func() { MustRegister(reg, "item1", testItem{ID: 2}) })
}

func TestMustGet(t *testing.T) {
	reg := New[testItem]()
	require.NoError(t, reg.Register("item1", testItem{ID: 1}))

	assert.Equal(t, 1, MustGet(reg, "item1").ID)
	assert.Panics(t, func() { MustGet(reg, "nonexistent") })
}

func TestGetAll(t *testing.T) {
	reg := New[testItem]()
	require.NoError(t, reg.Register("a", testItem{ID: 1}))
	require.NoError(t, reg.Register("b", testItem{ID: 2}))

	got, err := GetAll(reg, "b", "a")
	require.NoError(t, err)
	assert.Equal(t, []testItem{{ID: 2}, {ID: 1}}, got)

	_, err = GetAll(reg, "a", "missing")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	assert.Equal(t, "missing", errors.GetErrorDetails(err)["name"])
}
