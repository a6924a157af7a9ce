package dispatch

import (
	"fmt"

	"github.com/dshills/snipstorm/internal/snippet"
	"github.com/dshills/snipstorm/internal/snippet/token"
)

// Result reports the outcome of an expansion attempt.
type Result uint8

const (
	// Expanded means a template was selected and instantiated.
	Expanded Result = iota

	// NoMatch means no entry applied and the trigger word's literal text
	// was inserted unmodified instead.
	NoMatch
)

// String returns the result name.
func (r Result) String() string {
	if r == Expanded {
		return "expanded"
	}
	return "no-match"
}

// GatherFacts computes the context facts for an expansion attempt at the
// surface's current position. Facts are gathered once per attempt; every
// condition in the walk sees the same values.
func GatherFacts(s snippet.Surface, trigger string) Facts {
	p := s.Position()
	return Facts{
		InsideComment: s.InsideComment(p),
		AtLineStart:   s.AtLineStart(p),
		Trigger:       trigger,
	}
}

// Expander resolves trigger words against a dispatch table and drives
// template instantiation on its surface.
type Expander struct {
	surface snippet.Surface
	engine  *snippet.Engine
	table   *Table
	mode    string
	markers token.Markers
}

// NewExpander creates an expander for one surface and mode.
func NewExpander(s snippet.Surface, e *snippet.Engine, t *Table, mode string, m token.Markers) *Expander {
	return &Expander{surface: s, engine: e, table: t, mode: mode, markers: m}
}

// SetMode switches the mode used for table lookups.
func (x *Expander) SetMode(mode string) {
	x.mode = mode
}

// Mode returns the mode used for table lookups.
func (x *Expander) Mode() string {
	return x.mode
}

// Expand resolves trigger and performs exactly one of template
// instantiation or literal insertion; never both, never neither.
//
// The dispatch list is walked newest-first; each condition is evaluated at
// most once. A faulting condition hard-fails the attempt: no further
// entries are evaluated, the literal trigger text is inserted so typing is
// never blocked, and the error is returned alongside NoMatch.
func (x *Expander) Expand(trigger string) (Result, error) {
	list, ok := x.table.Lookup(x.mode, trigger)
	if !ok || len(list) == 0 {
		return x.insertLiteral(trigger, nil)
	}

	facts := GatherFacts(x.surface, trigger)

	for _, entry := range list {
		matched, err := evalEntry(entry, facts)
		if err != nil {
			return x.insertLiteral(trigger, fmt.Errorf("condition %s for %q: %w", entry.Cond, trigger, err))
		}
		if !matched {
			continue
		}

		tokens := token.Split(entry.Template, x.markers)
		if _, err := x.engine.Instantiate(tokens); err != nil {
			// Instantiation was chosen and attempted; partial text is
			// left in place, never reverted.
			return Expanded, fmt.Errorf("instantiating template for %q: %w", trigger, err)
		}
		return Expanded, nil
	}

	return x.insertLiteral(trigger, nil)
}

func (x *Expander) insertLiteral(trigger string, cause error) (Result, error) {
	if err := x.surface.InsertText(trigger); err != nil {
		return NoMatch, fmt.Errorf("inserting literal %q: %w", trigger, err)
	}
	return NoMatch, cause
}

// evalEntry evaluates one entry's condition, converting a predicate panic
// into an error so a faulting predicate cannot corrupt the expansion
// state.
func evalEntry(entry Entry, facts Facts) (matched bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			matched = false
			err = fmt.Errorf("predicate panic: %v", r)
		}
	}()
	return entry.Cond.Eval(facts)
}
