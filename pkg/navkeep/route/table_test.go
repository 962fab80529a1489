package route

import (
	"errors"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blogTable(t *testing.T) *Table {
	t.Helper()
	table, err := NewTable(
		Config{Name: "home", Path: ""},
		Config{Name: "blog", Path: "blog"},
		Config{Name: "blog-new", Path: "blog/new"},
		Config{Name: "blog-post", Path: "blog/:id", Data: Data{"reuse": true}},
		Config{Name: "comment", Path: "blog/:id/comments/:cid", Data: Data{"reuse": "yes"}},
	)
	require.NoError(t, err)
	return table
}

func TestTableMatch(t *testing.T) {
	table := blogTable(t)

	tests := []struct {
		url      string
		route    string
		segments []string
		params   Params
	}{
		{url: "/", route: "home", segments: []string{}, params: Params{}},
		{url: "/blog", route: "blog", segments: []string{"blog"}, params: Params{}},
		{url: "/blog/new", route: "blog-new", segments: []string{"blog", "new"}, params: Params{}},
		{url: "/blog/1", route: "blog-post", segments: []string{"blog", "1"}, params: Params{"id": "1"}},
		{url: "blog/2/", route: "blog-post", segments: []string{"blog", "2"}, params: Params{"id": "2"}},
		{url: "/blog/3?draft=1#top", route: "blog-post", segments: []string{"blog", "3"}, params: Params{"id": "3"}},
		{url: "/blog/4/comments/9", route: "comment", segments: []string{"blog", "4", "comments", "9"}, params: Params{"id": "4", "cid": "9"}},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			snap, err := table.Match(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.route, snap.RouteName())
			assert.Equal(t, tt.segments, snap.Segments)
			assert.Equal(t, tt.params, snap.Params)
		})
	}
}

func TestTableMatchSharesConfig(t *testing.T) {
	table := blogTable(t)

	a, err := table.Match("/blog/1")
	require.NoError(t, err)
	b, err := table.Match("/blog/2")
	require.NoError(t, err)

	assert.Same(t, a.Config, b.Config)
	assert.True(t, a.Data.Reuse())

	cfg, ok := table.Lookup("blog-post")
	require.True(t, ok)
	assert.Same(t, cfg, a.Config)
}

func TestTableMatchCopiesData(t *testing.T) {
	table := blogTable(t)

	snap, err := table.Match("/blog/1")
	require.NoError(t, err)
	snap.Data["reuse"] = false

	again, err := table.Match("/blog/1")
	require.NoError(t, err)
	assert.True(t, again.Data.Reuse())
}

func TestTableNoMatch(t *testing.T) {
	table := blogTable(t)

	snap, err := table.Match("/shop/1")
	assert.Nil(t, snap)
	assert.True(t, IsNoMatch(err))
	assert.True(t, IsTableError(err))
}

func TestNewTableValidation(t *testing.T) {
	_, err := NewTable(
		Config{Name: "", Path: "a"},
		Config{Name: "post", Path: "blog/:id"},
		Config{Name: "post", Path: "news/:id"},
		Config{Name: "slug", Path: "blog/:slug"},
		Config{Name: "bare", Path: "x/:"},
		Config{Name: "twice", Path: "y/:id/:id"},
	)
	require.Error(t, err)
	assert.True(t, IsTableError(err))

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	assert.Len(t, merr.Errors, 5)
}

func TestNewTableRejectsUnreachableLiteral(t *testing.T) {
	_, err := NewTable(
		Config{Name: "post", Path: "blog/:id"},
		Config{Name: "blog-new", Path: "blog/new"},
	)
	require.Error(t, err)
	assert.ErrorContains(t, err, `route "blog-new": path "blog/new" is shadowed by route "post"`)

	_, err = NewTable(
		Config{Name: "blog-new", Path: "blog/new"},
		Config{Name: "post", Path: "blog/:id"},
		Config{Name: "comments", Path: "blog/:id/comments"},
	)
	assert.NoError(t, err)
}

func TestTableRoutesOrder(t *testing.T) {
	table := blogTable(t)

	routes := table.Routes()
	require.Len(t, routes, table.Len())
	assert.Equal(t, "home", routes[0].Name)
	assert.Equal(t, "comment", routes[len(routes)-1].Name)
}

func TestSplitPath(t *testing.T) {
	assert.Equal(t, []string{}, SplitPath(""))
	assert.Equal(t, []string{}, SplitPath("/"))
	assert.Equal(t, []string{"a", "b"}, SplitPath("//a//b/"))
	assert.Equal(t, []string{"a"}, SplitPath("/a?x=/y"))
}
