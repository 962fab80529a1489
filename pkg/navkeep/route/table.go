package route

import (
	"fmt"
	"maps"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Table is an ordered set of route definitions. Match walks the definitions
// in declaration order and the first one whose pattern fits wins.
type Table struct {
	routes []*Config
	byName map[string]*Config
}

// NewTable validates the given definitions and builds a table from them.
// Every problem found is reported, not just the first.
func NewTable(configs ...Config) (*Table, error) {
	if err := Validate(configs); err != nil {
		return nil, NewTableError("validate", err)
	}

	t := &Table{
		routes: make([]*Config, 0, len(configs)),
		byName: make(map[string]*Config, len(configs)),
	}
	for _, c := range configs {
		cfg := c
		cfg.Data = maps.Clone(c.Data)
		t.routes = append(t.routes, &cfg)
		t.byName[cfg.Name] = &cfg
	}
	return t, nil
}

// Validate checks route definitions for empty or duplicate names, malformed
// parameter segments, and patterns that can never match because an earlier
// pattern accepts every URL they would (blog/:id before blog/new).
func Validate(configs []Config) error {
	var result *multierror.Error

	names := make(map[string]int, len(configs))
	patterns := make([][]string, 0, len(configs))

	for i, c := range configs {
		if c.Name == "" {
			result = multierror.Append(result, fmt.Errorf("route %d: name is empty", i))
		} else if prev, ok := names[c.Name]; ok {
			result = multierror.Append(result, fmt.Errorf("route %d: name %q already used by route %d", i, c.Name, prev))
		} else {
			names[c.Name] = i
		}

		segments := SplitPath(c.Path)
		params := make(map[string]bool)
		for j, seg := range segments {
			if !strings.HasPrefix(seg, ":") {
				continue
			}
			param := seg[1:]
			if param == "" {
				result = multierror.Append(result, fmt.Errorf("route %q: segment %d has no parameter name", c.Name, j))
				continue
			}
			if params[param] {
				result = multierror.Append(result, fmt.Errorf("route %q: parameter %q bound twice", c.Name, param))
			}
			params[param] = true
		}

		for k, prev := range patterns {
			if shadows(prev, segments) {
				result = multierror.Append(result, fmt.Errorf("route %q: path %q is shadowed by route %q", c.Name, c.Path, configs[k].Name))
				break
			}
		}
		patterns = append(patterns, segments)
	}

	return result.ErrorOrNil()
}

// Match resolves a URL into a snapshot of the first route whose pattern fits.
// Query strings and fragments are ignored.
func (t *Table) Match(url string) (*Snapshot, error) {
	segments := SplitPath(url)

	for _, cfg := range t.routes {
		params, ok := matchPattern(SplitPath(cfg.Path), segments)
		if !ok {
			continue
		}
		return &Snapshot{
			Segments: segments,
			Params:   params,
			Config:   cfg,
			Data:     maps.Clone(cfg.Data),
		}, nil
	}

	return nil, NewTableError("match", fmt.Errorf("%w: %s", ErrNoMatch, url))
}

// Lookup returns the definition registered under name.
func (t *Table) Lookup(name string) (*Config, bool) {
	cfg, ok := t.byName[name]
	return cfg, ok
}

// Routes returns the table's definitions in declaration order.
func (t *Table) Routes() []*Config {
	out := make([]*Config, len(t.routes))
	copy(out, t.routes)
	return out
}

// Len returns the number of routes in the table.
func (t *Table) Len() int {
	return len(t.routes)
}

// SplitPath breaks a URL or pattern into its non-empty path segments.
func SplitPath(path string) []string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}

	parts := strings.Split(path, "/")
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}

// shadows reports whether every URL matching later also matches earlier.
func shadows(earlier, later []string) bool {
	if len(earlier) != len(later) {
		return false
	}
	for i, seg := range earlier {
		if strings.HasPrefix(seg, ":") {
			continue
		}
		if seg != later[i] {
			return false
		}
	}
	return true
}

func matchPattern(pattern, segments []string) (Params, bool) {
	if len(pattern) != len(segments) {
		return nil, false
	}

	params := Params{}
	for i, p := range pattern {
		if strings.HasPrefix(p, ":") {
			params[p[1:]] = segments[i]
			continue
		}
		if p != segments[i] {
			return nil, false
		}
	}
	return params, true
}
