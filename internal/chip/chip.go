// Package chip holds the editing state behind a chip text field: the ordered
// list of committed chips, the text still being composed, and the mirror that
// keeps an externally owned text value in step with the editor.
package chip

// Chip is anything that can be shown as a chip label.
type Chip interface {
	Text() string
}

// Item constrains the chip payloads held by State. Removal matches chips with
// ==, so payloads must be comparable.
type Item interface {
	comparable
	Chip
}

// Label is a plain string chip for callers that need no extra payload.
type Label string

// Text implements Chip.
func (l Label) Text() string {
	return string(l)
}

// ChangeType identifies the kind of mutation reported to subscribers.
type ChangeType int

const (
	// ChangeAdd - a chip was appended or inserted.
	ChangeAdd ChangeType = iota
	// ChangeRemove - a chip was removed.
	ChangeRemove
	// ChangeClear - all chips were dropped.
	ChangeClear
)

func (c ChangeType) String() string {
	switch c {
	case ChangeAdd:
		return "add"
	case ChangeRemove:
		return "remove"
	case ChangeClear:
		return "clear"
	}
	return "unknown"
}

// Change describes a mutation of the chip list.
type Change[T Item] struct {
	Type  ChangeType
	Index int
	Chip  T
}

// RemovePolicy decides how many matches Remove drops.
type RemovePolicy int

const (
	// RemoveFirst drops the first chip equal to the argument.
	RemoveFirst RemovePolicy = iota
	// RemoveAll drops every chip equal to the argument.
	RemoveAll
)
