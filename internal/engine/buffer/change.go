package buffer

import "fmt"

// ChangeType categorizes the type of change made to the buffer.
type ChangeType uint8

const (
	ChangeInsert  ChangeType = iota // Text was inserted
	ChangeDelete                    // Text was deleted
	ChangeReplace                   // Text was replaced
)

// String returns a string representation of the change type.
func (ct ChangeType) String() string {
	switch ct {
	case ChangeInsert:
		return "insert"
	case ChangeDelete:
		return "delete"
	case ChangeReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// Change describes a single applied edit.
// Range is the affected range in the OLD text; NewRange is the resulting
// range in the NEW text. For inserts Range is empty; for deletes NewRange is.
type Change struct {
	Type     ChangeType
	Range    Range
	NewRange Range
	OldText  string
	NewText  string
}

// String returns a human-readable representation of the change.
func (c Change) String() string {
	switch c.Type {
	case ChangeInsert:
		return fmt.Sprintf("Insert %q at %d", c.NewText, c.Range.Start)
	case ChangeDelete:
		return fmt.Sprintf("Delete %q at %s", c.OldText, c.Range)
	case ChangeReplace:
		return fmt.Sprintf("Replace %q with %q at %s", c.OldText, c.NewText, c.Range)
	default:
		return "Unknown change"
	}
}

// Delta returns the byte delta of this change.
// Positive means the buffer grew, negative means it shrank.
func (c Change) Delta() int64 {
	return int64(len(c.NewText)) - int64(len(c.OldText))
}

// Observer is notified after every applied change.
// Observers run synchronously on the editing thread, in registration order.
type Observer func(Change)
