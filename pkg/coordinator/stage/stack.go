package stage

import "github.com/BrandonKowalski/coordinator/pkg/coordinator/screen"

// controllerStack holds the ordered contents of a Navigator, root first.
type controllerStack struct {
	entries []screen.Controller
}

// Push adds a controller on top.
func (s *controllerStack) Push(c screen.Controller) {
	s.entries = append(s.entries, c)
}

// Pop removes and returns the top controller.
// Returns nil if the stack is empty.
func (s *controllerStack) Pop() screen.Controller {
	if len(s.entries) == 0 {
		return nil
	}
	top := s.entries[len(s.entries)-1]
	s.entries[len(s.entries)-1] = nil
	s.entries = s.entries[:len(s.entries)-1]
	return top
}

// Peek returns the top controller without removing it.
// Returns nil if the stack is empty.
func (s *controllerStack) Peek() screen.Controller {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[len(s.entries)-1]
}

// IndexOf returns the position of c, compared by identity, or -1.
func (s *controllerStack) IndexOf(c screen.Controller) int {
	for i, entry := range s.entries {
		if entry == c {
			return i
		}
	}
	return -1
}

// Remove deletes c wherever it sits in the stack.
func (s *controllerStack) Remove(c screen.Controller) bool {
	i := s.IndexOf(c)
	if i < 0 {
		return false
	}
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	return true
}

// All returns a copy of the entries, root first.
func (s *controllerStack) All() []screen.Controller {
	return append([]screen.Controller(nil), s.entries...)
}

// IsEmpty returns true if the stack has no entries.
func (s *controllerStack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *controllerStack) Len() int {
	return len(s.entries)
}

// Clear removes all entries from the stack.
func (s *controllerStack) Clear() {
	clear(s.entries)
	s.entries = s.entries[:0]
}
