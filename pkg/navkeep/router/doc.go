// Package router runs views for URLs and keeps opted-in views alive between visits.
//
// URLs are resolved through a route.Table. Each route name is registered with a
// view function, and a single transition function decides where to go next.
// On every navigation the router asks the reuse policy three questions:
//
//   - can the current view just be updated in place (same route, same params)?
//   - should the view being left be detached and kept?
//   - is there a kept view for the URL being entered?
//
// # Basic Usage
//
//	table, _ := route.LoadTable("routes.toml")
//
//	r := router.New(table)
//
//	r.Register("blog", func(act *router.Activation) (any, any, error) {
//	    return listScreen(act.Input.(ListInput)), nil, nil
//	})
//
//	r.Register("blog-post", func(act *router.Activation) (any, any, error) {
//	    state, _ := act.State.(*PostState) // nil unless reattached or updated
//	    if state == nil {
//	        state = newPostState(act.Snapshot.Params["id"])
//	    }
//	    return postScreen(state), state, nil
//	})
//
//	r.OnTransition(func(from *route.Snapshot, result any, stack *router.Stack) (string, any) {
//	    switch from.RouteName() {
//	    case "blog":
//	        res := result.(ListResult)
//	        stack.Push(from.URL(), nil)
//	        return "/blog/" + res.SelectedID, nil
//	    case "blog-post":
//	        if entry, ok := stack.Pop(); ok {
//	            return entry.URL, entry.Input
//	        }
//	    }
//	    return router.Exit, nil
//	})
//
//	r.Run("/blog", ListInput{})
//
// # View State
//
// The second value a view returns is its state. When the view is left and its
// route sets reuse = true, that state is kept under the URL's path. Visiting
// the same URL later passes it back in Activation.State with ModeReattached.
// Views of routes without the flag always start fresh.
package router
