package core

import (
	"errors"
	"testing"
)

func TestInvalidPointsError(t *testing.T) {
	err := &InvalidPointsError{Points: -3}

	expected := "point budget must be positive, got -3"
	if err.Error() != expected {
		t.Errorf("InvalidPointsError.Error() = %q, want %q", err.Error(), expected)
	}

	var target *InvalidPointsError
	if !errors.As(error(err), &target) {
		t.Error("errors.As should match InvalidPointsError")
	}
}

func TestOutcomeValues(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    string
	}{
		{OutcomeFinished, "finished"},
		{OutcomeStalemate, "stalemate"},
		{OutcomeRoundLimit, "round limit"},
	}

	for _, tt := range tests {
		if string(tt.outcome) != tt.want {
			t.Errorf("Outcome = %q, want %q", tt.outcome, tt.want)
		}
	}
}
