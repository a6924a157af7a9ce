package snippet

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dshills/snipstorm/internal/engine/buffer"
	"github.com/dshills/snipstorm/internal/engine/span"
	"github.com/dshills/snipstorm/internal/snippet/token"
)

// Engine instantiates templates on a surface and navigates their fields.
// It enforces the one-live-instance rule: Instantiate unilaterally tears
// down whatever instance was live before.
type Engine struct {
	surface Surface
	active  *Instance
}

// NewEngine creates an engine bound to a surface.
func NewEngine(s Surface) *Engine {
	return &Engine{surface: s}
}

// Active returns the live instance, or nil.
func (e *Engine) Active() *Instance {
	return e.active
}

// pendingField records a field's extent during the token walk, before any
// spans exist.
type pendingField struct {
	desc  FieldDesc
	start buffer.ByteOffset
	end   buffer.ByteOffset
}

// Instantiate materializes a template at the surface's current position.
//
// Tokens are walked in order: literals insert verbatim, line breaks insert
// the surface's newline, indent requests invoke the host's reindentation,
// the first exit marker records the exit position (later ones are
// ignored), and fields insert their default text. Spans are created only
// after all text is in place, bounding span first so boundary absorption
// resolves in favor of fields.
//
// On failure the already-inserted text is left in place; no spans are
// created and no instance is live.
func (e *Engine) Instantiate(tokens []token.Token) (*Instance, error) {
	e.teardown()

	s := e.surface
	start := s.Position()
	exitOff := buffer.ByteOffset(-1)
	descs := ExtractFields(tokens)
	var pending []pendingField

	for _, t := range tokens {
		switch t.Kind {
		case token.KindLiteral:
			if err := s.InsertText(t.Text); err != nil {
				return nil, fmt.Errorf("inserting literal: %w", err)
			}

		case token.KindLineBreak:
			if err := s.InsertText(s.Newline()); err != nil {
				return nil, fmt.Errorf("inserting line break: %w", err)
			}

		case token.KindIndent:
			// Valid templates place indent requests directly after a
			// line break, so the reindented line never contains
			// earlier-recorded offsets.
			if err := s.ReindentCurrentLine(); err != nil {
				return nil, fmt.Errorf("reindenting: %w", err)
			}

		case token.KindExit:
			if exitOff < 0 {
				exitOff = s.Position()
			}

		case token.KindField:
			fs := s.Position()
			if err := s.InsertText(t.Default); err != nil {
				return nil, fmt.Errorf("inserting field default: %w", err)
			}
			pending = append(pending, pendingField{
				desc:  descs[len(pending)],
				start: fs,
				end:   s.Position(),
			})
		}
	}

	end := s.Position()

	// The bounding span reaches one unit past the final inserted
	// character so trailing-field edits remain observable. At the buffer
	// tail that unit lies past the current end; the span arena is plain
	// offset arithmetic, so the boundary keeps tracking ahead of the
	// text and an insertion at the tail stays interior to the bounding
	// span instead of escaping a trailing field from it. A template that
	// inserted nothing collapses to a point: bounding, exit, and cursor
	// all coincide.
	boundEnd := end
	if end > start {
		boundEnd = end + 1
	}

	if exitOff < 0 {
		exitOff = start
		if end > start {
			exitOff = boundEnd - 1
		}
	}

	bounding, err := s.CreateSpan(start, boundEnd, span.BiasNone)
	if err != nil {
		return nil, fmt.Errorf("creating bounding span: %w", err)
	}
	exit, err := s.CreateSpan(exitOff, exitOff, span.BiasNone)
	if err != nil {
		s.ReleaseSpan(bounding)
		return nil, fmt.Errorf("creating exit point: %w", err)
	}

	inst := &Instance{
		id:       uuid.New(),
		bounding: bounding,
		exit:     exit,
		current:  -1,
		live:     true,
	}

	for _, pf := range pending {
		h, err := s.CreateSpan(pf.start, pf.end, span.BiasAbsorb)
		if err != nil {
			e.releaseSpans(inst)
			return nil, fmt.Errorf("creating field span: %w", err)
		}
		inst.fields = append(inst.fields, Field{Desc: pf.desc, span: h})
	}

	e.active = inst

	if len(inst.fields) == 0 {
		// Nothing to navigate: land on the exit position and retire.
		if err := s.SetPosition(exitOff); err != nil {
			return nil, fmt.Errorf("moving to exit: %w", err)
		}
		e.teardown()
		return inst, nil
	}

	fieldStart, _, err := s.SpanRange(inst.fields[0].span)
	if err != nil {
		return nil, fmt.Errorf("reading first field: %w", err)
	}
	if fieldStart == start {
		inst.current = 0
		if err := s.SetPosition(fieldStart); err != nil {
			return nil, fmt.Errorf("moving to first field: %w", err)
		}
		return inst, nil
	}

	// Let navigation pick the first stop from the template start.
	if err := s.SetPosition(start); err != nil {
		return nil, fmt.Errorf("moving to template start: %w", err)
	}
	if err := e.Next(); err != nil {
		return nil, err
	}
	return inst, nil
}

// Cancel discards the live instance without reverting inserted text.
func (e *Engine) Cancel() {
	e.teardown()
}

// teardown releases all tracking for the live instance, collapsing its
// spans back to plain text.
func (e *Engine) teardown() {
	if e.active == nil {
		return
	}
	e.releaseSpans(e.active)
	e.active = nil
}

func (e *Engine) releaseSpans(inst *Instance) {
	for _, f := range inst.fields {
		e.surface.ReleaseSpan(f.span)
	}
	e.surface.ReleaseSpan(inst.exit)
	e.surface.ReleaseSpan(inst.bounding)
	inst.live = false
}
