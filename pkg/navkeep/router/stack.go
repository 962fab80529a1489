package router

// StackEntry is one step of navigation history: the URL that was shown and
// the input it was shown with. View state is not kept here; routes that want
// their views back opt in to reuse instead.
type StackEntry struct {
	URL   string
	Input any
}

// Stack is the back-navigation history a transition function pushes to when
// moving forward and pops from when going back.
type Stack struct {
	entries []StackEntry
}

// NewStack creates an empty history.
func NewStack() *Stack {
	return &Stack{}
}

// Push records url and its input as the most recent history entry.
func (s *Stack) Push(url string, input any) {
	s.entries = append(s.entries, StackEntry{URL: url, Input: input})
}

// Pop removes the most recent entry. ok is false when the history is empty.
func (s *Stack) Pop() (entry StackEntry, ok bool) {
	n := len(s.entries)
	if n == 0 {
		return StackEntry{}, false
	}
	entry = s.entries[n-1]
	s.entries[n-1] = StackEntry{}
	s.entries = s.entries[:n-1]
	return entry, true
}

// Peek returns the most recent entry without removing it.
func (s *Stack) Peek() (StackEntry, bool) {
	if len(s.entries) == 0 {
		return StackEntry{}, false
	}
	return s.entries[len(s.entries)-1], true
}

// URLs lists the history from oldest to newest.
func (s *Stack) URLs() []string {
	urls := make([]string, len(s.entries))
	for i, e := range s.entries {
		urls[i] = e.URL
	}
	return urls
}

// IsEmpty returns true if there is no history to go back to.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of history entries.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear drops the whole history.
func (s *Stack) Clear() {
	clear(s.entries)
	s.entries = s.entries[:0]
}
