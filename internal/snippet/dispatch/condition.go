package dispatch

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNilPredicate indicates a Func condition constructed without a
// predicate.
var ErrNilPredicate = errors.New("nil predicate")

// Facts are the read-only context facts a condition evaluates against.
// They are computed once per expansion attempt.
type Facts struct {
	// InsideComment is true when the insertion point is inside a comment.
	InsideComment bool

	// AtLineStart is true when only whitespace precedes the insertion
	// point on its line.
	AtLineStart bool

	// Trigger is the word that fired the expansion.
	Trigger string
}

// Predicate is a callable condition over context facts.
type Predicate func(Facts) (bool, error)

// CondKind discriminates the condition variant.
type CondKind uint8

const (
	CondAlways CondKind = iota
	CondNever
	CondInsideComment
	CondAtLineStart
	CondTriggerIs
	CondNot
	CondAll
	CondAny
	CondFunc
)

// Condition is a closed, evaluable condition over Facts.
// The zero value is CondAlways.
type Condition struct {
	kind CondKind
	word string
	subs []Condition
	fn   Predicate
}

// Always matches unconditionally.
func Always() Condition { return Condition{kind: CondAlways} }

// Never matches nothing.
func Never() Condition { return Condition{kind: CondNever} }

// InsideComment matches when the insertion point is inside a comment.
func InsideComment() Condition { return Condition{kind: CondInsideComment} }

// AtLineStart matches when only whitespace precedes the insertion point on
// its line.
func AtLineStart() Condition { return Condition{kind: CondAtLineStart} }

// TriggerIs matches when the triggering word equals word.
func TriggerIs(word string) Condition {
	return Condition{kind: CondTriggerIs, word: word}
}

// Not negates a condition.
func Not(c Condition) Condition {
	return Condition{kind: CondNot, subs: []Condition{c}}
}

// All matches when every sub-condition matches. All() matches.
func All(conds ...Condition) Condition {
	return Condition{kind: CondAll, subs: conds}
}

// Any matches when at least one sub-condition matches. Any() never matches.
func Any(conds ...Condition) Condition {
	return Condition{kind: CondAny, subs: conds}
}

// Func wraps a callable predicate. The predicate is invoked at most once
// per expansion attempt; a returned error aborts the attempt.
func Func(fn Predicate) Condition {
	return Condition{kind: CondFunc, fn: fn}
}

// Kind returns the condition's variant.
func (c Condition) Kind() CondKind {
	return c.kind
}

// Eval evaluates the condition against the given facts.
func (c Condition) Eval(f Facts) (bool, error) {
	switch c.kind {
	case CondAlways:
		return true, nil
	case CondNever:
		return false, nil
	case CondInsideComment:
		return f.InsideComment, nil
	case CondAtLineStart:
		return f.AtLineStart, nil
	case CondTriggerIs:
		return f.Trigger == c.word, nil
	case CondNot:
		ok, err := c.subs[0].Eval(f)
		return !ok, err
	case CondAll:
		for _, sub := range c.subs {
			ok, err := sub.Eval(f)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil
	case CondAny:
		for _, sub := range c.subs {
			ok, err := sub.Eval(f)
			if err != nil || ok {
				return ok, err
			}
		}
		return false, nil
	case CondFunc:
		if c.fn == nil {
			return false, ErrNilPredicate
		}
		return c.fn(f)
	default:
		return false, fmt.Errorf("unknown condition kind %d", c.kind)
	}
}

// String returns a stable textual form of the condition. Func conditions
// have no serial form and render as "func".
func (c Condition) String() string {
	switch c.kind {
	case CondAlways:
		return "always"
	case CondNever:
		return "never"
	case CondInsideComment:
		return "inside-comment"
	case CondAtLineStart:
		return "at-line-start"
	case CondTriggerIs:
		return "trigger-is:" + c.word
	case CondNot:
		return "!" + c.subs[0].String()
	case CondAll:
		return joinConds(c.subs, " && ")
	case CondAny:
		return joinConds(c.subs, " || ")
	case CondFunc:
		return "func"
	default:
		return "unknown"
	}
}

func joinConds(conds []Condition, sep string) string {
	parts := make([]string, len(conds))
	for i, c := range conds {
		parts[i] = c.String()
	}
	return strings.Join(parts, sep)
}
