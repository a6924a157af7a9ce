package dispatch

import (
	"errors"
	"testing"
)

func TestConditionEval(t *testing.T) {
	facts := Facts{InsideComment: true, AtLineStart: false, Trigger: "if"}

	tests := []struct {
		name string
		cond Condition
		want bool
	}{
		{"always", Always(), true},
		{"never", Never(), false},
		{"inside comment", InsideComment(), true},
		{"at line start", AtLineStart(), false},
		{"trigger matches", TriggerIs("if"), true},
		{"trigger differs", TriggerIs("for"), false},
		{"not", Not(AtLineStart()), true},
		{"all true", All(Always(), InsideComment()), true},
		{"all short-circuits false", All(Never(), InsideComment()), false},
		{"all empty matches", All(), true},
		{"any true", Any(Never(), InsideComment()), true},
		{"any empty never matches", Any(), false},
		{"func", Func(func(f Facts) (bool, error) { return f.Trigger == "if", nil }), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.cond.Eval(facts)
			if err != nil {
				t.Fatalf("Eval failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Eval = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConditionEvalErrors(t *testing.T) {
	boom := errors.New("boom")
	failing := Func(func(Facts) (bool, error) { return false, boom })

	if _, err := failing.Eval(Facts{}); !errors.Is(err, boom) {
		t.Errorf("expected predicate error, got %v", err)
	}

	if _, err := All(Always(), failing).Eval(Facts{}); !errors.Is(err, boom) {
		t.Errorf("expected error through All, got %v", err)
	}

	if _, err := Func(nil).Eval(Facts{}); !errors.Is(err, ErrNilPredicate) {
		t.Errorf("expected ErrNilPredicate, got %v", err)
	}
}

func TestConditionString(t *testing.T) {
	tests := []struct {
		cond Condition
		want string
	}{
		{Always(), "always"},
		{Never(), "never"},
		{InsideComment(), "inside-comment"},
		{AtLineStart(), "at-line-start"},
		{TriggerIs("if"), "trigger-is:if"},
		{Not(InsideComment()), "!inside-comment"},
		{All(AtLineStart(), Not(InsideComment())), "at-line-start && !inside-comment"},
		{Any(AtLineStart(), InsideComment()), "at-line-start || inside-comment"},
		{Func(func(Facts) (bool, error) { return true, nil }), "func"},
	}

	for _, tt := range tests {
		if got := tt.cond.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestZeroConditionIsAlways(t *testing.T) {
	var c Condition
	ok, err := c.Eval(Facts{})
	if err != nil || !ok {
		t.Errorf("zero Condition should match unconditionally, got %v, %v", ok, err)
	}
}
