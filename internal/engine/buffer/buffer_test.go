package buffer

import (
	"errors"
	"testing"
)

func TestNewBuffer(t *testing.T) {
	b := New()

	if !b.IsEmpty() {
		t.Error("new buffer should be empty")
	}

	if b.Len() != 0 {
		t.Errorf("expected length 0, got %d", b.Len())
	}

	if b.LineCount() != 1 {
		t.Errorf("expected 1 line, got %d", b.LineCount())
	}
}

func TestNewFromString(t *testing.T) {
	text := "Hello, World!"
	b := NewFromString(text)

	if b.Text() != text {
		t.Errorf("expected %q, got %q", text, b.Text())
	}

	if b.Len() != int64(len(text)) {
		t.Errorf("expected length %d, got %d", len(text), b.Len())
	}
}

func TestBufferInsert(t *testing.T) {
	b := NewFromString("Hello World")

	end, err := b.Insert(5, ",")
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	if end != 6 {
		t.Errorf("expected end position 6, got %d", end)
	}

	if b.Text() != "Hello, World" {
		t.Errorf("expected 'Hello, World', got %q", b.Text())
	}
}

func TestBufferInsertOutOfRange(t *testing.T) {
	b := NewFromString("Hello")

	_, err := b.Insert(100, "X")
	if !errors.Is(err, ErrOffsetOutOfRange) {
		t.Errorf("expected ErrOffsetOutOfRange, got %v", err)
	}

	_, err = b.Insert(-1, "X")
	if !errors.Is(err, ErrOffsetOutOfRange) {
		t.Errorf("expected ErrOffsetOutOfRange, got %v", err)
	}
}

func TestBufferDelete(t *testing.T) {
	b := NewFromString("Hello, World!")

	if err := b.Delete(5, 7); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if b.Text() != "HelloWorld!" {
		t.Errorf("expected 'HelloWorld!', got %q", b.Text())
	}

	if err := b.Delete(3, 2); !errors.Is(err, ErrRangeInvalid) {
		t.Errorf("expected ErrRangeInvalid, got %v", err)
	}
}

func TestBufferReplace(t *testing.T) {
	b := NewFromString("Hello, World!")

	end, err := b.Replace(7, 12, "Gopher")
	if err != nil {
		t.Fatalf("replace failed: %v", err)
	}

	if end != 13 {
		t.Errorf("expected end position 13, got %d", end)
	}

	if b.Text() != "Hello, Gopher!" {
		t.Errorf("expected 'Hello, Gopher!', got %q", b.Text())
	}
}

func TestBufferLineQueries(t *testing.T) {
	b := NewFromString("line1\nline2\nline3")

	if b.LineCount() != 3 {
		t.Errorf("expected 3 lines, got %d", b.LineCount())
	}

	tests := []struct {
		line  uint32
		text  string
		start ByteOffset
		end   ByteOffset
	}{
		{0, "line1", 0, 5},
		{1, "line2", 6, 11},
		{2, "line3", 12, 17},
	}

	for _, tt := range tests {
		if got := b.LineText(tt.line); got != tt.text {
			t.Errorf("LineText(%d) = %q, want %q", tt.line, got, tt.text)
		}
		if got := b.LineStartOffset(tt.line); got != tt.start {
			t.Errorf("LineStartOffset(%d) = %d, want %d", tt.line, got, tt.start)
		}
		if got := b.LineEndOffset(tt.line); got != tt.end {
			t.Errorf("LineEndOffset(%d) = %d, want %d", tt.line, got, tt.end)
		}
	}
}

func TestBufferOffsetToPoint(t *testing.T) {
	b := NewFromString("ab\ncd\nef")

	tests := []struct {
		offset ByteOffset
		want   Point
	}{
		{0, Point{0, 0}},
		{2, Point{0, 2}},
		{3, Point{1, 0}},
		{5, Point{1, 2}},
		{8, Point{2, 2}},
		{100, Point{2, 2}}, // clamps
	}

	for _, tt := range tests {
		if got := b.OffsetToPoint(tt.offset); got != tt.want {
			t.Errorf("OffsetToPoint(%d) = %s, want %s", tt.offset, got, tt.want)
		}
	}
}

func TestBufferObserver(t *testing.T) {
	b := NewFromString("abc")

	var changes []Change
	b.OnChange(func(c Change) {
		changes = append(changes, c)
	})

	if _, err := b.Insert(1, "xy"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if err := b.Delete(0, 1); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := b.Replace(0, 2, "Q"); err != nil {
		t.Fatalf("replace failed: %v", err)
	}

	if len(changes) != 3 {
		t.Fatalf("expected 3 changes, got %d", len(changes))
	}

	if changes[0].Type != ChangeInsert || changes[0].NewText != "xy" {
		t.Errorf("unexpected insert change: %s", changes[0])
	}
	if changes[1].Type != ChangeDelete || changes[1].OldText != "a" {
		t.Errorf("unexpected delete change: %s", changes[1])
	}
	if changes[2].Type != ChangeReplace || changes[2].NewText != "Q" {
		t.Errorf("unexpected replace change: %s", changes[2])
	}

	if changes[0].Delta() != 2 || changes[1].Delta() != -1 || changes[2].Delta() != -1 {
		t.Error("unexpected change deltas")
	}
}

func TestBufferEmptyEditsDoNotNotify(t *testing.T) {
	b := NewFromString("abc")

	notified := false
	b.OnChange(func(Change) { notified = true })

	if _, err := b.Insert(1, ""); err != nil {
		t.Fatalf("empty insert failed: %v", err)
	}
	if err := b.Delete(2, 2); err != nil {
		t.Fatalf("empty delete failed: %v", err)
	}

	if notified {
		t.Error("no-op edits should not notify observers")
	}
}

func TestRangeHelpers(t *testing.T) {
	r := NewRange(2, 5)

	if r.Len() != 3 || r.IsEmpty() || !r.IsValid() {
		t.Errorf("unexpected range properties for %s", r)
	}

	if !r.Contains(2) || r.Contains(5) {
		t.Error("Contains should be inclusive start, exclusive end")
	}

	if !r.Overlaps(NewRange(4, 8)) || r.Overlaps(NewRange(5, 8)) {
		t.Error("unexpected overlap results")
	}

	if !r.ContainsRange(NewRange(3, 5)) || r.ContainsRange(NewRange(3, 6)) {
		t.Error("unexpected ContainsRange results")
	}

	if got := r.Shift(2); got != NewRange(4, 7) {
		t.Errorf("Shift(2) = %s, want [4:7)", got)
	}
}
