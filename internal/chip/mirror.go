package chip

// Mirror reconciles a text value owned outside the field (a controlled
// input) with the selection and composition the editor tracks internally.
//
// Owner pushes go through Reconcile and never notify. Editor updates go
// through SyncExternalValue, which notifies only when the text itself moved
// away from the last text seen, so selection or composition changes cannot
// feed back into the owner.
type Mirror struct {
	state    TextValue
	external string
	lastText string
	onChange func(TextValue)
}

// NewMirror creates a mirror seeded with initial. onChange may be nil.
func NewMirror(initial TextValue, onChange func(TextValue)) *Mirror {
	return &Mirror{
		state:    initial,
		external: initial.Text,
		lastText: initial.Text,
		onChange: onChange,
	}
}

// OnChange replaces the change callback.
func (m *Mirror) OnChange(fn func(TextValue)) {
	m.onChange = fn
}

// Value returns the current working value.
func (m *Mirror) Value() TextValue {
	return m.state
}

// LastText returns the last text content observed by the mirror.
func (m *Mirror) LastText() string {
	return m.lastText
}

// Reconcile adopts text pushed by the owner, keeping the tracked selection
// and composition (clamped to the new text). It reports whether the metadata
// had to be adjusted. No notification is fired.
func (m *Mirror) Reconcile(external string) (TextValue, bool) {
	if external != m.external {
		m.external = external
		m.lastText = external
	}
	working := m.state.WithText(external)
	resynced := !working.SameMetadata(m.state)
	m.state = working
	return working, resynced
}

// ReconcileValue is Reconcile for owners that also own the selection and
// composition. The owner's metadata wins; the boolean reports whether it
// differed from what the editor had.
func (m *Mirror) ReconcileValue(external TextValue) (TextValue, bool) {
	if external.Text != m.external {
		m.external = external.Text
		m.lastText = external.Text
	}
	working := external.WithText(external.Text)
	resynced := !working.SameMetadata(m.state)
	m.state = working
	return working, resynced
}

// SyncExternalValue folds next into the mirror. Selection and composition
// are adopted silently; onChange fires once per distinct text transition.
// It reports whether onChange was due.
func (m *Mirror) SyncExternalValue(next TextValue) bool {
	n := next.WithText(next.Text)
	m.state = n

	changed := m.lastText != n.Text
	m.lastText = n.Text
	if changed && m.onChange != nil {
		m.onChange(n)
	}
	return changed
}
