package style

// Value is a resolved attribute that follows an interaction state. Get always
// re-resolves against the current snapshot; OnChange reports transitions of
// the resolved value, not of the raw flags.
type Value[V comparable] struct {
	enabled bool
	state   InteractionState
	resolve func(enabled bool, i Interaction) V
}

// Observe binds resolve to state.
func Observe[V comparable](enabled bool, state InteractionState, resolve func(enabled bool, i Interaction) V) *Value[V] {
	if state == nil {
		state = Static(Idle)
	}
	return &Value[V]{enabled: enabled, state: state, resolve: resolve}
}

// Constant wraps a value that does not depend on interaction.
func Constant[V comparable](v V) *Value[V] {
	return Observe(true, Static(Idle), func(bool, Interaction) V { return v })
}

// Get resolves the attribute for the current snapshot.
func (v *Value[V]) Get() V {
	return v.resolve(v.enabled, v.state.Current())
}

// OnChange calls fn whenever an interaction change alters the resolved
// value. It returns the unsubscribe func.
func (v *Value[V]) OnChange(fn func(V)) func() {
	last := v.Get()
	return v.state.Subscribe(func(i Interaction) {
		next := v.resolve(v.enabled, i)
		if next == last {
			return
		}
		last = next
		fn(next)
	})
}
