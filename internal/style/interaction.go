// Package style resolves the visual attributes of chips and of the field
// around them from {enabled, interaction state}. Resolvers are stateless;
// every transition lives in the interaction source they are handed.
package style

import "strings"

// Interaction is the set of interaction flags currently active on an element.
type Interaction uint8

const (
	Focused Interaction = 1 << iota
	Pressed
	Hovered
)

// Idle is the empty interaction set.
const Idle Interaction = 0

// Has reports whether every flag in f is set.
func (i Interaction) Has(f Interaction) bool {
	return i&f == f
}

// With returns i with f set.
func (i Interaction) With(f Interaction) Interaction {
	return i | f
}

// Without returns i with f cleared.
func (i Interaction) Without(f Interaction) Interaction {
	return i &^ f
}

func (i Interaction) String() string {
	if i == Idle {
		return "idle"
	}
	var parts []string
	if i.Has(Focused) {
		parts = append(parts, "focused")
	}
	if i.Has(Pressed) {
		parts = append(parts, "pressed")
	}
	if i.Has(Hovered) {
		parts = append(parts, "hovered")
	}
	return strings.Join(parts, "+")
}

// InteractionState is a readable, subscribable interaction snapshot.
type InteractionState interface {
	Current() Interaction
	// Subscribe registers fn for changes and returns an unsubscribe func.
	Subscribe(fn func(Interaction)) func()
}

// InteractionSource is the mutable interaction state of one element. The
// host feeds it focus, press and hover events; observers are told about
// every change.
type InteractionSource struct {
	current   Interaction
	listeners []interactionListener
	nextID    int
}

type interactionListener struct {
	id int
	fn func(Interaction)
}

// NewInteractionSource returns an idle source.
func NewInteractionSource() *InteractionSource {
	return &InteractionSource{}
}

// Current returns the active flags.
func (s *InteractionSource) Current() Interaction {
	if s == nil {
		return Idle
	}
	return s.current
}

// Emit replaces the active flags, notifying observers if they changed.
func (s *InteractionSource) Emit(i Interaction) {
	if s == nil || s.current == i {
		return
	}
	s.current = i
	for _, l := range s.listeners {
		l.fn(i)
	}
}

// Set turns f on or off.
func (s *InteractionSource) Set(f Interaction, on bool) {
	if on {
		s.Emit(s.Current().With(f))
		return
	}
	s.Emit(s.Current().Without(f))
}

// Subscribe implements InteractionState.
func (s *InteractionSource) Subscribe(fn func(Interaction)) func() {
	if s == nil {
		return func() {}
	}
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, interactionListener{id: id, fn: fn})
	return func() {
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// Static is a fixed snapshot. Renderers use it to resolve a frame without
// keeping a live source around.
type Static Interaction

// Current implements InteractionState.
func (s Static) Current() Interaction {
	return Interaction(s)
}

// Subscribe implements InteractionState; a snapshot never changes.
func (s Static) Subscribe(func(Interaction)) func() {
	return func() {}
}
