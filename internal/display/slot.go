package display

// Slot holds the live collection and, during a crossfade, the one being
// retired. Only the coordinator mutates it.
type Slot struct {
	current  *Collection
	retiring *Collection
}

// Current returns the live collection, or nil before the first rebuild.
func (s *Slot) Current() *Collection { return s.current }

// Retiring returns the collection mid exit transition, or nil.
func (s *Slot) Retiring() *Collection { return s.retiring }

// Empty reports whether nothing has been installed yet.
func (s *Slot) Empty() bool { return s.current == nil }

// install demotes the current collection to retiring and makes next current.
// The caller must have detached any previous retiring collection first.
func (s *Slot) install(next *Collection) (demoted *Collection) {
	if s.current != nil {
		s.current.phase = PhaseExiting
		s.retiring = s.current
		demoted = s.current
	}
	next.phase = PhaseEntering
	next.opacity = 0
	next.velocity = 0
	s.current = next
	return demoted
}

// detach discards the retiring collection and releases its panels.
func (s *Slot) detach() {
	r := s.retiring
	if r == nil {
		return
	}
	r.phase = PhaseGone
	r.opacity = 0
	s.retiring = nil
	release(r.panels)
}

// clear releases everything; used on teardown.
func (s *Slot) clear() {
	s.detach()
	if s.current != nil {
		s.current.phase = PhaseGone
		release(s.current.panels)
		s.current = nil
	}
}
