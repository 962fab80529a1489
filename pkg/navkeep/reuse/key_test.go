package reuse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/navkeep/navkeep/pkg/navkeep/route"
)

func snap(segments ...string) *route.Snapshot {
	return &route.Snapshot{Segments: segments}
}

func TestDeriveKey(t *testing.T) {
	assert.Equal(t, "blog/1", DeriveKey(snap("blog", "1")))
	assert.Equal(t, "blog", DeriveKey(snap("blog")))
	assert.Equal(t, "", DeriveKey(snap()))
	assert.Equal(t, "", DeriveKey(&route.Snapshot{}))
	assert.Equal(t, "", DeriveKey(nil))
}

func TestDeriveKeyIgnoresEverythingButSegments(t *testing.T) {
	a := &route.Snapshot{
		Segments: []string{"blog", "1"},
		Params:   route.Params{"id": "1"},
		Config:   &route.Config{Name: "a"},
		Data:     route.Data{"reuse": true},
	}
	b := &route.Snapshot{
		Segments: []string{"blog", "1"},
		Params:   route.Params{"slug": "x"},
		Config:   &route.Config{Name: "b"},
	}

	assert.Equal(t, DeriveKey(a), DeriveKey(b))
}

func TestDeriveKeyDistinguishesSegments(t *testing.T) {
	keys := map[string]*route.Snapshot{}
	for _, s := range []*route.Snapshot{
		snap("blog", "1"),
		snap("1", "blog"),
		snap("blog", "2"),
		snap("blog"),
		snap("blog", "1", "comments"),
	} {
		k := DeriveKey(s)
		_, dup := keys[k]
		assert.False(t, dup, "duplicate key %q", k)
		keys[k] = s
	}
}

func TestDeriveKeyDoesNotNormalize(t *testing.T) {
	assert.Equal(t, "Blog/1", DeriveKey(snap("Blog", "1")))
	assert.NotEqual(t, DeriveKey(snap("Blog", "1")), DeriveKey(snap("blog", "1")))
	assert.Equal(t, "blog%2F1", DeriveKey(snap("blog%2F1")))
}
