package config

import (
	"fmt"
	"strings"

	"github.com/dshills/snipstorm/internal/snippet/dispatch"
)

// ParseCondition converts a condition string into a dispatch condition.
//
// Supported forms:
//
//	always | never | inside-comment | at-line-start
//	trigger-is:<word>
//	!<term>
//	<term> && <term> && ...
//	<term> || <term> || ...
//
// An empty string means "always". Mixing && and || in one expression is
// not supported; use separate registrations instead.
func ParseCondition(s string) (dispatch.Condition, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return dispatch.Always(), nil
	}

	hasAnd := strings.Contains(s, "&&")
	hasOr := strings.Contains(s, "||")
	if hasAnd && hasOr {
		return dispatch.Condition{}, fmt.Errorf("%w: %q mixes && and ||", ErrBadCondition, s)
	}

	switch {
	case hasAnd:
		terms, err := parseTerms(strings.Split(s, "&&"))
		if err != nil {
			return dispatch.Condition{}, err
		}
		return dispatch.All(terms...), nil
	case hasOr:
		terms, err := parseTerms(strings.Split(s, "||"))
		if err != nil {
			return dispatch.Condition{}, err
		}
		return dispatch.Any(terms...), nil
	default:
		return parseTerm(s)
	}
}

func parseTerms(parts []string) ([]dispatch.Condition, error) {
	terms := make([]dispatch.Condition, 0, len(parts))
	for _, p := range parts {
		c, err := parseTerm(p)
		if err != nil {
			return nil, err
		}
		terms = append(terms, c)
	}
	return terms, nil
}

func parseTerm(s string) (dispatch.Condition, error) {
	s = strings.TrimSpace(s)

	if rest, ok := strings.CutPrefix(s, "!"); ok {
		inner, err := parseTerm(rest)
		if err != nil {
			return dispatch.Condition{}, err
		}
		return dispatch.Not(inner), nil
	}

	if word, ok := strings.CutPrefix(s, "trigger-is:"); ok {
		if word == "" {
			return dispatch.Condition{}, fmt.Errorf("%w: trigger-is requires a word", ErrBadCondition)
		}
		return dispatch.TriggerIs(word), nil
	}

	switch s {
	case "always":
		return dispatch.Always(), nil
	case "never":
		return dispatch.Never(), nil
	case "inside-comment":
		return dispatch.InsideComment(), nil
	case "at-line-start":
		return dispatch.AtLineStart(), nil
	}
	return dispatch.Condition{}, fmt.Errorf("%w: unknown term %q", ErrBadCondition, s)
}
