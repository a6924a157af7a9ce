package main

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/dshills/snipstorm/internal/engine/buffer"
	"github.com/dshills/snipstorm/internal/session"
	"github.com/dshills/snipstorm/internal/snippet/dispatch"
)

// editor is a minimal terminal front end around a session. It exists to
// exercise expansion interactively; it is not a general-purpose editor.
type editor struct {
	screen tcell.Screen
	sess   *session.Session
	log    zerolog.Logger
	status string
}

func newEditor(sess *session.Session, log zerolog.Logger) (*editor, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return &editor{
		screen: screen,
		sess:   sess,
		log:    log,
		status: "type a trigger word, then Space",
	}, nil
}

// Close restores the terminal.
func (ed *editor) Close() {
	ed.screen.Fini()
}

// Run drives the event loop until the user quits.
func (ed *editor) Run() error {
	for {
		ed.draw()

		ev := ed.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			ed.screen.Sync()
		case *tcell.EventKey:
			if quit := ed.handleKey(ev); quit {
				return nil
			}
		}
	}
}

func (ed *editor) handleKey(ev *tcell.EventKey) bool {
	var err error

	switch ev.Key() {
	case tcell.KeyCtrlQ, tcell.KeyCtrlC:
		return true

	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			ed.expandWordBeforeCursor()
		} else {
			err = ed.sess.Type(string(ev.Rune()))
		}

	case tcell.KeyEnter:
		err = ed.sess.Type(ed.sess.Newline())

	case tcell.KeyTab:
		if ed.sess.Active() != nil {
			err = ed.sess.NextField()
		} else {
			err = ed.sess.Type("\t")
		}

	case tcell.KeyBacktab:
		if ed.sess.Active() != nil {
			err = ed.sess.PrevField()
		}

	case tcell.KeyEscape:
		ed.sess.CancelSnippet()
		ed.status = "snippet cancelled"

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		err = ed.sess.Backspace()

	case tcell.KeyLeft:
		if cur := ed.sess.Cursor(); cur > 0 {
			err = ed.sess.SetPosition(cur - 1)
		}

	case tcell.KeyRight:
		if cur := ed.sess.Cursor(); cur < ed.sess.EndOffset() {
			err = ed.sess.SetPosition(cur + 1)
		}
	}

	if err != nil {
		ed.status = err.Error()
		ed.log.Error().Err(err).Msg("edit failed")
	}
	return false
}

// expandWordBeforeCursor removes the word ending at the cursor and hands
// it to the dispatcher. On no-match the word comes back as a literal, so
// the space the user typed is appended; on expansion the space is
// swallowed.
func (ed *editor) expandWordBeforeCursor() {
	word, start := ed.wordBeforeCursor()
	if word == "" {
		if err := ed.sess.Type(" "); err != nil {
			ed.status = err.Error()
		}
		return
	}

	if err := ed.sess.DeleteRange(start, start+buffer.ByteOffset(len(word))); err != nil {
		ed.status = err.Error()
		return
	}

	res, err := ed.sess.Expand(word)
	switch {
	case err != nil:
		ed.status = fmt.Sprintf("expand %q: %v", word, err)
		ed.log.Error().Err(err).Str("trigger", word).Msg("expand failed")
		_ = ed.sess.Type(" ")
	case res == dispatch.Expanded:
		ed.status = fmt.Sprintf("expanded %q", word)
		ed.log.Debug().Str("trigger", word).Msg("expanded")
	default:
		ed.status = fmt.Sprintf("no snippet for %q", word)
		_ = ed.sess.Type(" ")
	}
}

// wordBeforeCursor returns the trigger-shaped word immediately before the
// cursor and its start offset.
func (ed *editor) wordBeforeCursor() (string, buffer.ByteOffset) {
	text := ed.sess.Text()
	end := int(ed.sess.Cursor())
	start := end
	for start > 0 && isTriggerByte(text[start-1]) {
		start--
	}
	return text[start:end], buffer.ByteOffset(start)
}

func isTriggerByte(b byte) bool {
	r := rune(b)
	return unicode.IsLetter(r) || unicode.IsDigit(r) || b == '_' || b == '-'
}

func (ed *editor) draw() {
	ed.screen.Clear()
	width, height := ed.screen.Size()
	if height < 2 {
		ed.screen.Show()
		return
	}

	style := tcell.StyleDefault
	fieldStyle := style.Reverse(true)
	fieldStart, fieldEnd := ed.currentFieldRange()

	for y, dl := range splitLines(ed.sess.Text()) {
		if y >= height-1 {
			break
		}
		offset := dl.start
		x := 0
		for _, r := range dl.text {
			if x >= width {
				break
			}
			st := style
			if offset >= fieldStart && offset < fieldEnd {
				st = fieldStyle
			}
			w := 1
			if r == '\t' {
				r = ' '
				w = 4
			}
			for i := 0; i < w; i++ {
				ed.screen.SetContent(x, y, r, nil, st)
				x++
			}
			offset += buffer.ByteOffset(len(string(r)))
		}
	}

	ed.drawStatus(width, height-1)
	ed.showCursor()
	ed.screen.Show()
}

// drawLine is one display line and the byte offset of its first
// character.
type drawLine struct {
	text  string
	start buffer.ByteOffset
}

// splitLines breaks buffer text into display lines, tracking each line's
// starting byte offset. CRLF terminators count their full two bytes and
// the carriage return is stripped from the display text, so span
// highlights line up regardless of the line ending in use.
func splitLines(text string) []drawLine {
	var lines []drawLine
	var start buffer.ByteOffset
	for _, raw := range strings.Split(text, "\n") {
		lines = append(lines, drawLine{
			text:  strings.TrimSuffix(raw, "\r"),
			start: start,
		})
		start += buffer.ByteOffset(len(raw)) + 1
	}
	return lines
}

// currentFieldRange returns the extent of the active field, or an empty
// range when no snippet is live.
func (ed *editor) currentFieldRange() (buffer.ByteOffset, buffer.ByteOffset) {
	inst := ed.sess.Active()
	if inst == nil || inst.CurrentField() < 0 {
		return 0, 0
	}
	fields := inst.Fields()
	start, end, err := ed.sess.SpanRange(fields[inst.CurrentField()].Span())
	if err != nil {
		return 0, 0
	}
	return start, end
}

func (ed *editor) drawStatus(width, y int) {
	state := "idle"
	if inst := ed.sess.Active(); inst != nil {
		state = fmt.Sprintf("field %d/%d", inst.CurrentField()+1, inst.FieldCount())
	}
	line := fmt.Sprintf(" %s | %s | %s", ed.sess.Mode(), state, ed.status)

	style := tcell.StyleDefault.Reverse(true)
	for x := 0; x < width; x++ {
		r := ' '
		if x < len(line) {
			r = rune(line[x])
		}
		ed.screen.SetContent(x, y, r, nil, style)
	}
}

func (ed *editor) showCursor() {
	pt := ed.sess.CursorPoint()
	x := 0
	line := ed.sess.Line(pt.Line)
	for i := 0; i < int(pt.Column) && i < len(line); i++ {
		if line[i] == '\t' {
			x += 4
		} else {
			x++
		}
	}
	ed.screen.ShowCursor(x, int(pt.Line))
}
