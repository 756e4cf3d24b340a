package chip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type changeRecorder struct {
	values []TextValue
}

func (r *changeRecorder) record(v TextValue) {
	r.values = append(r.values, v)
}

func TestMirror_SelectionOnlyChangesAreSuppressed(t *testing.T) {
	rec := &changeRecorder{}
	m := NewMirror(NewTextValue("abc"), rec.record)

	for _, sel := range []Range{{0, 0}, {1, 1}, {0, 3}, {3, 3}, {2, 1}} {
		fired := m.SyncExternalValue(TextValue{Text: "abc", Selection: sel})
		assert.False(t, fired, "selection %v should not notify", sel)
		assert.Equal(t, sel, m.Value().Selection)
	}
	require.Empty(t, rec.values)
}

func TestMirror_CompositionOnlyChangesAreSuppressed(t *testing.T) {
	rec := &changeRecorder{}
	m := NewMirror(NewTextValue("かな"), rec.record)

	m.SyncExternalValue(TextValue{Text: "かな", Selection: Range{2, 2}, Composition: &Range{0, 2}})
	require.NotNil(t, m.Value().Composition)
	m.SyncExternalValue(TextValue{Text: "かな", Selection: Range{2, 2}})
	require.Nil(t, m.Value().Composition)

	require.Empty(t, rec.values)
}

func TestMirror_TextChangeFiresOnce(t *testing.T) {
	rec := &changeRecorder{}
	m := NewMirror(NewTextValue("abc"), rec.record)

	m.SyncExternalValue(TextValue{Text: "abc", Selection: Range{0, 0}})
	m.SyncExternalValue(TextValue{Text: "abcd", Selection: Range{4, 4}})

	require.Len(t, rec.values, 1)
	assert.Equal(t, "abcd", rec.values[0].Text)
	assert.Equal(t, Range{4, 4}, rec.values[0].Selection)
}

func TestMirror_FirstObservationThenSilence(t *testing.T) {
	rec := &changeRecorder{}
	m := NewMirror(TextValue{}, rec.record)

	m.SyncExternalValue(TextValue{Text: "abc", Selection: Range{3, 3}})
	m.SyncExternalValue(TextValue{Text: "abc", Selection: Range{1, 1}})
	m.SyncExternalValue(TextValue{Text: "abc", Selection: Range{0, 2}})

	require.Len(t, rec.values, 1)
	assert.Equal(t, "abc", m.LastText())
}

func TestMirror_OncePerDistinctTransition(t *testing.T) {
	rec := &changeRecorder{}
	m := NewMirror(TextValue{}, rec.record)

	for _, text := range []string{"a", "a", "ab", "ab", "a", ""} {
		m.SyncExternalValue(NewTextValue(text))
	}

	var got []string
	for _, v := range rec.values {
		got = append(got, v.Text)
	}
	require.Equal(t, []string{"a", "ab", "a", ""}, got)
}

func TestMirror_ReconcileNeverNotifies(t *testing.T) {
	rec := &changeRecorder{}
	m := NewMirror(NewTextValue("abc"), rec.record)
	m.SyncExternalValue(TextValue{Text: "abc", Selection: Range{3, 3}})

	v, resynced := m.Reconcile("xy")
	require.Empty(t, rec.values)
	assert.True(t, resynced, "selection must be clamped into the shorter text")
	assert.Equal(t, "xy", v.Text)
	assert.Equal(t, Range{2, 2}, v.Selection)
	assert.Equal(t, "xy", m.LastText())

	// The owner already knows about "xy"; typing it back is not a change.
	require.False(t, m.SyncExternalValue(TextValue{Text: "xy", Selection: Range{1, 1}}))
	require.True(t, m.SyncExternalValue(TextValue{Text: "xyz", Selection: Range{3, 3}}))
	require.Len(t, rec.values, 1)
}

func TestMirror_ReconcileSameTextKeepsMetadata(t *testing.T) {
	m := NewMirror(NewTextValue("hello"), nil)
	m.SyncExternalValue(TextValue{Text: "hello", Selection: Range{1, 4}})

	v, resynced := m.Reconcile("hello")
	assert.False(t, resynced)
	assert.Equal(t, Range{1, 4}, v.Selection)
}

func TestMirror_ReconcileValueAdoptsOwnerMetadata(t *testing.T) {
	rec := &changeRecorder{}
	m := NewMirror(NewTextValue("abc"), rec.record)

	v, resynced := m.ReconcileValue(TextValue{Text: "abcdef", Selection: Range{1, 9}})
	require.True(t, resynced)
	assert.Equal(t, Range{1, 6}, v.Selection)
	assert.Equal(t, "abcdef", m.LastText())
	require.Empty(t, rec.values)
}

func TestTextValue_WithTextClamps(t *testing.T) {
	v := TextValue{Text: "hello", Selection: Range{2, 5}, Composition: &Range{4, 5}}
	short := v.WithText("hé")

	assert.Equal(t, Range{2, 2}, short.Selection)
	require.NotNil(t, short.Composition)
	assert.Equal(t, Range{2, 2}, *short.Composition)
	// Original is untouched.
	assert.Equal(t, Range{4, 5}, *v.Composition)
}

func TestTextValue_SameMetadata(t *testing.T) {
	a := TextValue{Text: "a", Selection: Range{1, 1}}
	b := TextValue{Text: "b", Selection: Range{1, 1}}
	assert.True(t, a.SameMetadata(b))
	assert.False(t, a.Equal(b))

	b.Composition = &Range{0, 1}
	assert.False(t, a.SameMetadata(b))

	a.Composition = &Range{0, 1}
	assert.True(t, a.SameMetadata(b))
}
