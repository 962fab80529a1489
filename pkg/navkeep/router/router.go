package router

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/navkeep/navkeep/pkg/navkeep/internal"
	"github.com/navkeep/navkeep/pkg/navkeep/reuse"
	"github.com/navkeep/navkeep/pkg/navkeep/route"
)

var (
	// ErrNoTransition is returned by Run when no transition function was set.
	ErrNoTransition = errors.New("router: no transition function set")

	// ErrViewNotRegistered is returned when a URL resolves to a route without a view.
	ErrViewNotRegistered = errors.New("router: view not registered")
)

// Exit is the URL a transition function returns to stop the router.
// The root route is addressed as "/".
const Exit = ""

// Mode describes how a view came to be on screen.
type Mode int

const (
	ModeFresh      Mode = iota // A new view was constructed
	ModeReattached             // A kept-alive view was reattached
	ModeUpdated                // The current view stayed and received new input
)

func (m Mode) String() string {
	switch m {
	case ModeFresh:
		return "fresh"
	case ModeReattached:
		return "reattached"
	case ModeUpdated:
		return "updated"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Activation is what a view receives each time the router shows it.
type Activation struct {
	Snapshot *route.Snapshot // Resolved route for the URL being shown
	Input    any             // Input returned by the transition function
	State    any             // Retained view state; nil when Mode is ModeFresh
	Mode     Mode
}

// ViewFunc runs a view. It returns the view's result, which is handed to the
// transition function, and the view's state, which the router keeps if the
// route is eligible for reuse when the view is left.
type ViewFunc func(act *Activation) (result any, state any, err error)

// TransitionFunc is called after each view completes to determine the next URL.
// It receives the snapshot of the view that just completed, its result, and
// the navigation stack.
//
// Return (url, input) to navigate. Return (Exit, nil) to stop the router.
type TransitionFunc func(from *route.Snapshot, result any, stack *Stack) (next string, input any)

// Step describes a single navigation, as reported to an OnNavigate hook.
type Step struct {
	From     *route.Snapshot // Snapshot being left; nil for the first view
	To       *route.Snapshot // Snapshot being shown
	Mode     Mode
	Detached bool // From's state was handed to the reuse policy
}

// Router resolves URLs through a route table, runs the registered views and
// consults a reuse policy on every navigation to decide whether views are
// updated in place, reattached, or constructed fresh.
type Router struct {
	table      *route.Table
	views      map[string]ViewFunc
	transition TransitionFunc
	onNavigate func(Step)
	policy     *reuse.Policy[any]
	stack      *Stack
	logger     *slog.Logger
}

// New creates a Router over the given table with its own reuse policy.
func New(table *route.Table) *Router {
	return &Router{
		table:  table,
		views:  make(map[string]ViewFunc),
		policy: reuse.NewPolicy[any](),
		stack:  NewStack(),
		logger: internal.GetInternalLogger(),
	}
}

// Register adds the view for the route with the given name.
func (r *Router) Register(name string, fn ViewFunc) *Router {
	r.views[name] = fn
	return r
}

// OnTransition sets the transition function that determines navigation flow.
// This function is called after each view completes.
func (r *Router) OnTransition(fn TransitionFunc) *Router {
	r.transition = fn
	return r
}

// OnNavigate sets a hook that is told about every navigation before the view runs.
func (r *Router) OnNavigate(fn func(Step)) *Router {
	r.onNavigate = fn
	return r
}

// UsePolicy replaces the router's reuse policy, e.g. to share a store or logger.
func (r *Router) UsePolicy(p *reuse.Policy[any]) *Router {
	if p != nil {
		r.policy = p
	}
	return r
}

// Run starts the router at the given URL with the given input.
// It continues running until the transition function returns Exit
// or an error occurs.
func (r *Router) Run(start string, input any) error {
	if r.transition == nil {
		return ErrNoTransition
	}

	var (
		current      *route.Snapshot
		currentState any
	)

	next := start
	nextInput := input

	for next != Exit {
		future, err := r.table.Match(next)
		if err != nil {
			return fmt.Errorf("router: navigate to %s: %w", next, err)
		}

		fn, ok := r.views[future.RouteName()]
		if !ok {
			return fmt.Errorf("%w: %q", ErrViewNotRegistered, future.RouteName())
		}

		act, step := r.activate(future, current, currentState, nextInput)
		if r.onNavigate != nil {
			r.onNavigate(step)
		}

		result, state, err := fn(act)
		if err != nil {
			return fmt.Errorf("router: view %q error: %w", future.RouteName(), err)
		}

		current = future
		currentState = state

		next, nextInput = r.transition(current, result, r.stack)
	}

	return nil
}

// activate decides how the view for future is brought on screen, handing the
// outgoing view's state to the policy when it is eligible for reuse.
func (r *Router) activate(future, current *route.Snapshot, currentState any, input any) (*Activation, Step) {
	step := Step{From: current, To: future}
	act := &Activation{Snapshot: future, Input: input}

	if reuse.ShouldReuseRoute(future, current) {
		step.Mode = ModeUpdated
		act.Mode = ModeUpdated
		act.State = currentState
		r.logger.Debug("router: updating view in place", "url", future.URL())
		return act, step
	}

	if current != nil && r.policy.ShouldDetach(current) {
		r.policy.Store(current, currentState)
		step.Detached = true
	}

	if r.policy.ShouldAttach(future) {
		if state, ok := r.policy.Retrieve(future); ok {
			step.Mode = ModeReattached
			act.Mode = ModeReattached
			act.State = state
			r.logger.Debug("router: reattaching view", "url", future.URL(), "key", reuse.DeriveKey(future))
			return act, step
		}
	}

	step.Mode = ModeFresh
	act.Mode = ModeFresh
	r.logger.Debug("router: constructing view", "url", future.URL())
	return act, step
}

// Stack returns the navigation stack for use in transition functions.
func (r *Router) Stack() *Stack {
	return r.stack
}

// Policy returns the reuse policy the router consults.
func (r *Router) Policy() *reuse.Policy[any] {
	return r.policy
}
