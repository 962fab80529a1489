// Package route models route definitions and the activation snapshots
// resolved from them.
//
// A Table is loaded from a TOML or YAML file and turns URLs into Snapshots:
//
//	[[route]]
//	name = "blog-post"
//	path = "blog/:id"
//	[route.data]
//	reuse = true
//
// The YAML form uses a top-level "routes" list with the same fields.
package route
