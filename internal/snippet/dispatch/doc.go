// Package dispatch selects which template a trigger word expands to.
//
// Each trigger word carries an ordered list of (condition, template)
// entries per editing mode. Registration PREPENDS: the newest entry is
// tried first, so more specific rules added later take priority without
// replacing earlier ones. Expansion walks the list, evaluates each
// condition at most once against context facts gathered once per attempt,
// and instantiates the first template whose condition holds. When nothing
// matches, the trigger word itself is inserted unmodified — an unmatched
// abbreviation must never block the user's typing.
//
// Conditions are a closed tagged variant over named context facts plus an
// escape hatch for callable predicates; there is no ad-hoc expression
// evaluation.
package dispatch
