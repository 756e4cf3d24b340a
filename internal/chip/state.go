package chip

// SubmitFunc turns a submitted text value into a chip. Returning false
// rejects the input and leaves the state untouched.
type SubmitFunc[T Item] func(value TextValue) (T, bool)

// State is the ordered chip list of one chip text field plus the text still
// being composed. It is owned by a single view and is not safe for concurrent
// use.
type State[T Item] struct {
	chips  []T
	value  TextValue
	policy RemovePolicy

	listeners []listener[T]
	nextID    int
}

type listener[T Item] struct {
	id int
	fn func(Change[T])
}

// NewState creates a state holding the given chips in order.
func NewState[T Item](chips ...T) *State[T] {
	s := &State[T]{}
	if len(chips) > 0 {
		s.chips = make([]T, len(chips))
		copy(s.chips, chips)
	}
	return s
}

// SetPolicy sets how Remove treats repeated chips.
func (s *State[T]) SetPolicy(p RemovePolicy) {
	s.policy = p
}

// Policy returns the active remove policy.
func (s *State[T]) Policy() RemovePolicy {
	return s.policy
}

// Chips returns a copy of the chips in insertion order.
func (s *State[T]) Chips() []T {
	out := make([]T, len(s.chips))
	copy(out, s.chips)
	return out
}

// Len returns the number of chips.
func (s *State[T]) Len() int {
	return len(s.chips)
}

// At returns the chip at i, or the zero value when out of range.
func (s *State[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(s.chips) {
		var zero T
		return zero, false
	}
	return s.chips[i], true
}

// Index returns the position of the first chip equal to c, or -1.
func (s *State[T]) Index(c T) int {
	for i, existing := range s.chips {
		if existing == c {
			return i
		}
	}
	return -1
}

// Contains reports whether c is in the list.
func (s *State[T]) Contains(c T) bool {
	return s.Index(c) >= 0
}

// Text returns the text currently being composed.
func (s *State[T]) Text() string {
	return s.value.Text
}

// Value returns the current editor value.
func (s *State[T]) Value() TextValue {
	return s.value
}

// SetValue records an editor update. Chips are not touched.
func (s *State[T]) SetValue(v TextValue) {
	s.value = v
}

// Submit hands value to fn. An accepted chip is appended and the composed
// text cleared; a rejection leaves everything as it was.
func (s *State[T]) Submit(value TextValue, fn SubmitFunc[T]) (T, bool) {
	var zero T
	if fn == nil {
		return zero, false
	}
	c, ok := fn(value)
	if !ok {
		return zero, false
	}
	s.Add(c)
	s.value = TextValue{}
	return c, true
}

// SubmitText is Submit for callers that only care about the raw string.
func (s *State[T]) SubmitText(raw string, fn func(string) (T, bool)) (T, bool) {
	if fn == nil {
		var zero T
		return zero, false
	}
	return s.Submit(NewTextValue(raw), func(v TextValue) (T, bool) {
		return fn(v.Text)
	})
}

// Add appends c.
func (s *State[T]) Add(c T) {
	s.chips = append(s.chips, c)
	s.notify(Change[T]{Type: ChangeAdd, Index: len(s.chips) - 1, Chip: c})
}

// Insert places c at i, clamped to the list bounds.
func (s *State[T]) Insert(i int, c T) {
	i = clampInt(i, 0, len(s.chips))
	var zero T
	s.chips = append(s.chips, zero)
	copy(s.chips[i+1:], s.chips[i:])
	s.chips[i] = c
	s.notify(Change[T]{Type: ChangeAdd, Index: i, Chip: c})
}

// Remove drops chips equal to c according to the remove policy. It is a
// no-op when c is absent and reports whether anything was removed.
func (s *State[T]) Remove(c T) bool {
	removed := false
	for i := 0; i < len(s.chips); {
		if s.chips[i] != c {
			i++
			continue
		}
		s.removeAt(i)
		removed = true
		if s.policy == RemoveFirst {
			break
		}
	}
	return removed
}

// RemoveAt drops the chip at i and returns it.
func (s *State[T]) RemoveAt(i int) (T, bool) {
	if i < 0 || i >= len(s.chips) {
		var zero T
		return zero, false
	}
	return s.removeAt(i), true
}

func (s *State[T]) removeAt(i int) T {
	c := s.chips[i]
	s.chips = append(s.chips[:i], s.chips[i+1:]...)
	s.notify(Change[T]{Type: ChangeRemove, Index: i, Chip: c})
	return c
}

// Clear drops every chip. The composed text is kept.
func (s *State[T]) Clear() {
	if len(s.chips) == 0 {
		return
	}
	s.chips = nil
	s.notify(Change[T]{Type: ChangeClear, Index: -1})
}

// Subscribe registers fn for chip list changes and returns a function that
// removes it again.
func (s *State[T]) Subscribe(fn func(Change[T])) func() {
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, listener[T]{id: id, fn: fn})
	return func() {
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

func (s *State[T]) notify(c Change[T]) {
	for _, l := range s.listeners {
		l.fn(c)
	}
}
