package solveerr

import "testing"

func TestErrorFormatsWrongRowCount(t *testing.T) {
	e := Error{Scope: InputScope, Condition: WrongRowCountCondition, Values: []interface{}{5, 3}}
	got := e.Error()
	want := "Invalid input: expected 5 rows, got 3"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorFormatsUnrecognizedToken(t *testing.T) {
	e := Error{Scope: InputScope, Condition: UnrecognizedTokenCondition, Values: []interface{}{"X", 1, 2}}
	got := e.Error()
	want := `Invalid input: unrecognized clue token "X" at row 1, col 2`
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestNewBuildsGeneralMessage(t *testing.T) {
	e := New(StoreScope, "connection refused: %s", "host down")
	got := e.Error()
	want := "Store failure: connection refused: host down"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestMessageOverridesStructuredFields(t *testing.T) {
	e := Error{Message: "custom message", Scope: InternalScope, Condition: GeneralCondition}
	if got := e.Error(); got != "custom message" {
		t.Errorf("Error() = %q, want %q", got, "custom message")
	}
}
