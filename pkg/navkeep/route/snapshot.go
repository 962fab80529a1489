package route

import (
	"maps"
	"reflect"
	"strings"

	"golang.org/x/text/cases"

	"github.com/navkeep/navkeep/pkg/navkeep/constants"
)

// Params holds the parameters bound while matching a URL against a route path.
type Params map[string]string

// Equal reports whether p and other hold the same key/value pairs.
// A nil map and an empty map are equal.
func (p Params) Equal(other Params) bool {
	return maps.Equal(p, other)
}

// Data is the static per-route data declared alongside a route definition.
type Data map[string]any

// Reuse reports whether the route opted in to keeping its view alive
// when navigated away from. Missing, nil or unrecognised values are false.
func (d Data) Reuse() bool {
	if d == nil {
		return false
	}
	return truthy(d[constants.ReuseDataKey])
}

func truthy(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		switch cases.Fold().String(strings.TrimSpace(val)) {
		case "true", "yes", "on", "1":
			return true
		}
		return false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Bool:
		return rv.Bool()
	default:
		return false
	}
}

// Config is a single static route definition. Snapshots keep a pointer to the
// Config they were resolved from, and that pointer is what identifies the route.
type Config struct {
	Name string `toml:"name" yaml:"name"` // View registration key
	Path string `toml:"path" yaml:"path"` // Pattern such as "blog/:id"; "" is the root route
	Data Data   `toml:"data" yaml:"data"` // Static data, including the reuse flag
}

// Snapshot is one resolved activation of a route. The table builds a new
// Snapshot for every navigation; callers treat it as read-only.
type Snapshot struct {
	Segments []string // URL path segments consumed by the route, in order
	Params   Params   // Parameters bound by ":name" segments
	Config   *Config  // Definition the snapshot was resolved from
	Data     Data     // Static data copied from Config
}

// URL renders the snapshot's segments as an absolute path.
func (s *Snapshot) URL() string {
	if s == nil {
		return "/"
	}
	return "/" + strings.Join(s.Segments, "/")
}

// RouteName returns the name of the route the snapshot resolved from,
// or an empty string when it has no Config.
func (s *Snapshot) RouteName() string {
	if s == nil || s.Config == nil {
		return ""
	}
	return s.Config.Name
}
