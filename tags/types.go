package tags

import "github.com/google/uuid"

// Tag is one committed value. ID distinguishes equal texts when
// duplicates are allowed.
type Tag struct {
	ID   uuid.UUID
	Text string
}

// DefaultDelimiter separates tags in the serialized value.
const DefaultDelimiter = ','

// Options configures an Editor. Use DefaultOptions as the starting point:
// the zero value disallows duplicates.
type Options struct {
	// Delimiter splits input fragments and joins the serialized value.
	// Zero means DefaultDelimiter.
	Delimiter rune

	// Lowercase then Uppercase are applied to every added tag; with both
	// set the result is uppercase.
	Lowercase bool
	Uppercase bool

	// Duplicates allows the same text to be committed more than once.
	Duplicates bool

	// OnDelete runs before a removal. Returning false vetoes it.
	OnDelete func(Tag) bool

	// OnChange fires once per effective mutation of the tag list.
	OnChange func(Change)

	// OnSelect fires when the selected tag changes.
	OnSelect func(SelectEvent)
}

func DefaultOptions() Options {
	return Options{
		Delimiter:  DefaultDelimiter,
		Duplicates: true,
	}
}

// Direction is a navigation direction across the tag list.
type Direction uint8

const (
	Previous Direction = iota
	Next
)

func (d Direction) String() string {
	switch d {
	case Previous:
		return "previous"
	case Next:
		return "next"
	default:
		return "unknown"
	}
}
