package snippet_test

import (
	"errors"
	"testing"

	"github.com/dshills/snipstorm/internal/engine/buffer"
	"github.com/dshills/snipstorm/internal/session"
	"github.com/dshills/snipstorm/internal/snippet"
	"github.com/dshills/snipstorm/internal/snippet/token"
)

func instantiate(t *testing.T, s *session.Session, tpl string) *snippet.Instance {
	t.Helper()
	inst, err := s.Engine().Instantiate(token.Split(tpl, s.Markers()))
	if err != nil {
		t.Fatalf("Instantiate(%q) failed: %v", tpl, err)
	}
	return inst
}

func fieldRange(t *testing.T, s *session.Session, inst *snippet.Instance, i int) (buffer.ByteOffset, buffer.ByteOffset) {
	t.Helper()
	start, end, err := s.SpanRange(inst.Fields()[i].Span())
	if err != nil {
		t.Fatalf("field %d span: %v", i, err)
	}
	return start, end
}

func TestInstantiateLiteralOnly(t *testing.T) {
	s := session.New()
	inst := instantiate(t, s, "hello")

	if s.Text() != "hello" {
		t.Errorf("text = %q, want %q", s.Text(), "hello")
	}

	// No fields and no exit marker: cursor lands on the synthesized exit
	// at buffer end and the instance retires immediately.
	if s.Cursor() != 5 {
		t.Errorf("cursor = %d, want 5", s.Cursor())
	}
	if inst.Live() {
		t.Error("instance with no fields should retire immediately")
	}
	if s.Active() != nil {
		t.Error("no instance should remain active")
	}
}

func TestInstantiateEmptyTemplate(t *testing.T) {
	s := session.New(session.WithText("ab"))
	if err := s.SetPosition(1); err != nil {
		t.Fatal(err)
	}

	instantiate(t, s, "")

	if s.Text() != "ab" {
		t.Errorf("text = %q, want %q", s.Text(), "ab")
	}
	if s.Cursor() != 1 {
		t.Errorf("cursor = %d, want 1 (degenerate instantiation stays put)", s.Cursor())
	}
}

func TestInstantiateExitFallbackMidBuffer(t *testing.T) {
	s := session.New(session.WithText("xyz"))
	if err := s.SetPosition(1); err != nil {
		t.Fatal(err)
	}

	instantiate(t, s, "ab")

	if s.Text() != "xabyz" {
		t.Errorf("text = %q, want %q", s.Text(), "xabyz")
	}
	// Bounding span is [1,4), one past the inserted text, and does not
	// reach buffer end: exit synthesizes at bounding end - 1.
	if s.Cursor() != 3 {
		t.Errorf("cursor = %d, want 3", s.Cursor())
	}
}

func TestInstantiateExplicitExit(t *testing.T) {
	s := session.New()
	instantiate(t, s, "ab!cd")

	if s.Text() != "abcd" {
		t.Errorf("text = %q, want %q", s.Text(), "abcd")
	}
	if s.Cursor() != 2 {
		t.Errorf("cursor = %d, want 2 (explicit exit)", s.Cursor())
	}
}

func TestInstantiateMultipleExitsFirstWins(t *testing.T) {
	s := session.New()
	instantiate(t, s, "a!b!c")

	if s.Text() != "abc" {
		t.Errorf("text = %q, want %q", s.Text(), "abc")
	}
	if s.Cursor() != 1 {
		t.Errorf("cursor = %d, want 1 (first exit marker wins)", s.Cursor())
	}
}

func TestInstantiateFieldDefaults(t *testing.T) {
	s := session.New()
	inst := instantiate(t, s, "if $cond(element) then")

	if s.Text() != "if element then" {
		t.Errorf("text = %q, want %q", s.Text(), "if element then")
	}

	start, end := fieldRange(t, s, inst, 0)
	if start != 3 || end != 10 {
		t.Errorf("field span = [%d:%d), want [3:10) covering %q", start, end, "element")
	}
	if s.Cursor() != start {
		t.Errorf("cursor = %d, want field start %d", s.Cursor(), start)
	}
	if inst.CurrentField() != 0 {
		t.Errorf("current field = %d, want 0", inst.CurrentField())
	}
}

func TestInstantiateFieldAtTemplateStart(t *testing.T) {
	s := session.New(session.WithText("zz"))

	inst := instantiate(t, s, "$name(x)rest")

	start, _ := fieldRange(t, s, inst, 0)
	if start != 0 {
		t.Fatalf("field start = %d, want 0", start)
	}
	if s.Cursor() != 0 {
		t.Errorf("cursor = %d, want 0 (field at bounding start)", s.Cursor())
	}
}

func TestFieldOrderingInvariant(t *testing.T) {
	s := session.New()
	inst := instantiate(t, s, "$a(one) $b(two) $c(three)")

	var prevEnd buffer.ByteOffset
	for i := range inst.Fields() {
		start, end := fieldRange(t, s, inst, i)
		if start < prevEnd {
			t.Errorf("field %d start %d overlaps previous end %d", i, start, prevEnd)
		}
		prevEnd = end
	}
}

func TestNavigationVisitsFieldsInTemplateOrder(t *testing.T) {
	s := session.New()
	inst := instantiate(t, s, "$a(1) $b(2)!")

	if s.Cursor() != 0 {
		t.Fatalf("cursor = %d, want 0 at first field", s.Cursor())
	}

	if err := s.NextField(); err != nil {
		t.Fatalf("NextField failed: %v", err)
	}
	bStart, _ := fieldRange(t, s, inst, 1)
	if s.Cursor() != bStart {
		t.Errorf("cursor = %d, want second field start %d", s.Cursor(), bStart)
	}

	// Past the last field: land on the exit marker position and retire.
	if err := s.NextField(); err != nil {
		t.Fatalf("NextField failed: %v", err)
	}
	if s.Cursor() != 3 {
		t.Errorf("cursor = %d, want exit position 3", s.Cursor())
	}
	if s.Active() != nil {
		t.Error("instance should be retired after exit")
	}
	if inst.Live() {
		t.Error("retired instance should not be live")
	}

	if err := s.NextField(); !errors.Is(err, snippet.ErrNoInstance) {
		t.Errorf("expected ErrNoInstance after retirement, got %v", err)
	}
}

func TestPrevFieldClampsAtFirst(t *testing.T) {
	s := session.New()
	inst := instantiate(t, s, "$a(1) $b(2)")

	if err := s.NextField(); err != nil {
		t.Fatal(err)
	}
	if err := s.PrevField(); err != nil {
		t.Fatal(err)
	}
	if inst.CurrentField() != 0 {
		t.Errorf("current field = %d, want 0", inst.CurrentField())
	}

	if err := s.PrevField(); err != nil {
		t.Fatal(err)
	}
	if inst.CurrentField() != 0 {
		t.Errorf("current field = %d, want 0 (clamped)", inst.CurrentField())
	}
	aStart, _ := fieldRange(t, s, inst, 0)
	if s.Cursor() != aStart {
		t.Errorf("cursor = %d, want first field start %d", s.Cursor(), aStart)
	}
}

func TestTypingInsideFieldGrowsOnlyThatField(t *testing.T) {
	s := session.New()
	inst := instantiate(t, s, "$a(xx)-$b(yy)")

	if err := s.Type("Z"); err != nil {
		t.Fatalf("Type failed: %v", err)
	}
	if s.Text() != "Zxx-yy" {
		t.Errorf("text = %q, want %q", s.Text(), "Zxx-yy")
	}

	aStart, aEnd := fieldRange(t, s, inst, 0)
	if aStart != 0 || aEnd != 3 {
		t.Errorf("field a = [%d:%d), want [0:3)", aStart, aEnd)
	}

	bStart, bEnd := fieldRange(t, s, inst, 1)
	if bStart != 4 || bEnd != 6 {
		t.Errorf("field b = [%d:%d), want [4:6)", bStart, bEnd)
	}

	if err := s.NextField(); err != nil {
		t.Fatal(err)
	}
	if err := s.Type("Q"); err != nil {
		t.Fatal(err)
	}
	if s.Text() != "Zxx-Qyy" {
		t.Errorf("text = %q, want %q", s.Text(), "Zxx-Qyy")
	}

	bStart, bEnd = fieldRange(t, s, inst, 1)
	if bStart != 4 || bEnd != 7 {
		t.Errorf("field b = [%d:%d), want [4:7)", bStart, bEnd)
	}
}

func TestTrailingFieldAtBufferEndStaysTracked(t *testing.T) {
	s := session.New()
	inst := instantiate(t, s, "TODO: $what(describe)")

	// Clear the default, then type a replacement. Every keystroke lands
	// at the buffer tail, where the bounding span's one-past-the-end
	// unit must keep the growing field inside it.
	start, end := fieldRange(t, s, inst, 0)
	if err := s.DeleteRange(start, end); err != nil {
		t.Fatalf("DeleteRange failed: %v", err)
	}
	if err := s.Type("f"); err != nil {
		t.Fatalf("Type failed: %v", err)
	}
	if err := s.Type("ix"); err != nil {
		t.Fatalf("Type failed: %v", err)
	}

	if s.Active() != inst {
		t.Fatal("typing inside the trailing field must keep the instance live")
	}
	if s.Text() != "TODO: fix" {
		t.Errorf("text = %q, want %q", s.Text(), "TODO: fix")
	}

	fStart, fEnd := fieldRange(t, s, inst, 0)
	if fStart != 6 || fEnd != 9 {
		t.Errorf("field = [%d:%d), want [6:9) covering %q", fStart, fEnd, "fix")
	}

	bStart, bEnd, err := s.SpanRange(inst.Bounding())
	if err != nil {
		t.Fatalf("bounding span: %v", err)
	}
	if fStart < bStart || fEnd > bEnd {
		t.Errorf("field [%d:%d) escaped bounding [%d:%d)", fStart, fEnd, bStart, bEnd)
	}
}

func TestInstanceFieldsMatchExtraction(t *testing.T) {
	s := session.New()
	tpl := "for $var(i) in $seq {\n>$body\n}"

	inst := instantiate(t, s, tpl)

	want := snippet.ExtractFields(token.Split(tpl, s.Markers()))
	fields := inst.Fields()
	if len(fields) != len(want) {
		t.Fatalf("field count = %d, want %d", len(fields), len(want))
	}
	for i, fd := range want {
		if fields[i].Desc != fd {
			t.Errorf("field %d desc = %+v, want %+v", i, fields[i].Desc, fd)
		}
	}
}

func TestNewInstantiationTearsDownPrevious(t *testing.T) {
	s := session.New()
	first := instantiate(t, s, "$a(old)")

	second := instantiate(t, s, "$b(new)")

	if first.Live() {
		t.Error("first instance should be torn down by second instantiation")
	}
	if s.Active() != second {
		t.Error("second instance should be the active one")
	}
	if s.Text() != "oldnew" && s.Text() != "newold" {
		// Second instantiation inserts at the cursor, which sat at the
		// first instance's first field start.
		t.Logf("text = %q", s.Text())
	}
}

func TestEditingOutsideBoundingCancels(t *testing.T) {
	s := session.New(session.WithText("head "))
	if err := s.SetPosition(5); err != nil {
		t.Fatal(err)
	}

	instantiate(t, s, "$x(val)")
	if s.Active() == nil {
		t.Fatal("expected live instance")
	}

	if err := s.SetPosition(0); err != nil {
		t.Fatal(err)
	}
	if err := s.Type("Z"); err != nil {
		t.Fatal(err)
	}

	if s.Active() != nil {
		t.Error("typing outside the bounding span should cancel the instance")
	}
	if s.Text() != "Zhead val" {
		t.Errorf("text = %q, want %q (cancel never reverts text)", s.Text(), "Zhead val")
	}
}

func TestCancelKeepsText(t *testing.T) {
	s := session.New()
	instantiate(t, s, "$a(keep)")

	s.CancelSnippet()

	if s.Active() != nil {
		t.Error("cancel should clear the active instance")
	}
	if s.Text() != "keep" {
		t.Errorf("text = %q, want %q", s.Text(), "keep")
	}
}

func TestIndentRequestCopiesPreviousLine(t *testing.T) {
	s := session.New(session.WithText("    head"))
	if err := s.SetPosition(8); err != nil {
		t.Fatal(err)
	}

	instantiate(t, s, " {\n>body")

	want := "    head {\n    body"
	if s.Text() != want {
		t.Errorf("text = %q, want %q", s.Text(), want)
	}
}
