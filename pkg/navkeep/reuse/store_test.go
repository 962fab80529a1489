package reuse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type view struct{ id string }

func TestStore(t *testing.T) {
	s := NewStore[*view]()

	got, ok := s.Get("blog/1")
	assert.False(t, ok)
	assert.Nil(t, got)
	assert.False(t, s.Has("blog/1"))

	first := &view{id: "first"}
	s.Set("blog/1", first)
	assert.True(t, s.Has("blog/1"))
	got, ok = s.Get("blog/1")
	assert.True(t, ok)
	assert.Same(t, first, got)

	second := &view{id: "second"}
	s.Set("blog/1", second)
	got, _ = s.Get("blog/1")
	assert.Same(t, second, got)
	assert.Equal(t, 1, s.Len())
}

func TestStoreRootKey(t *testing.T) {
	s := NewStore[int]()
	assert.False(t, s.Has(""))

	s.Set("", 7)
	got, ok := s.Get("")
	assert.True(t, ok)
	assert.Equal(t, 7, got)
}

func TestStoreKeepsZeroHandles(t *testing.T) {
	s := NewStore[*view]()
	s.Set("blog/1", nil)

	got, ok := s.Get("blog/1")
	assert.True(t, ok)
	assert.Nil(t, got)
}

func TestStoreKeysSorted(t *testing.T) {
	s := NewStore[string]()
	s.Set("blog/2", "b")
	s.Set("about", "a")
	s.Set("blog/1", "c")

	assert.Equal(t, []string{"about", "blog/1", "blog/2"}, s.Keys())
}
