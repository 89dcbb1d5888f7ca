package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil error", err: nil, expected: ""},
		{name: "simple error", err: stderrors.New("something went wrong"), expected: "Error: something went wrong"},
		{
			name:     "schedule error",
			err:      &MalformedScheduleError{Week: 2, Date: "2024-01-15", BlockIndex: 1, Reason: "end time must be after start time"},
			expected: "Error: malformed schedule (week 2, 2024-01-15, block 1): end time must be after start time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Format(tt.err); result != tt.expected {
				t.Errorf("Format(%v) = %q, want %q", tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatf(t *testing.T) {
	got := Formatf("failed to load %s", "payload.yaml")
	if got != "Error: failed to load payload.yaml" {
		t.Errorf("Formatf() = %q", got)
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "recurring rule with pattern",
			err:      &InvalidPatternError{Rule: RuleRecurring, Index: 1, Pattern: "monthly", Reason: "day of month 32 outside 1..31"},
			expected: "invalid recurring exclusion rule #1 (monthly): day of month 32 outside 1..31",
		},
		{
			name:     "one-off rule",
			err:      &InvalidPatternError{Rule: RuleOneOff, Index: 0, Reason: "kind must be an exclusion day type"},
			expected: "invalid one-off exclusion rule #0: kind must be an exclusion day type",
		},
		{
			name:     "day level schedule error",
			err:      &MalformedScheduleError{Week: 1, Date: "2024-01-20", BlockIndex: -1, Reason: "date outside week bounds"},
			expected: "malformed schedule (week 1, 2024-01-20): date outside week bounds",
		},
		{
			name:     "week level schedule error",
			err:      &MalformedScheduleError{Week: 3, BlockIndex: -1, Reason: "week start after week end"},
			expected: "malformed schedule (week 3): week start after week end",
		},
		{
			name:     "unresolved reference",
			err:      &UnresolvedContentReferenceError{ContentID: "content-404"},
			expected: `unresolved content reference: "content-404"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorKindsSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("generate: %w", &MalformedScheduleError{Week: 1, BlockIndex: 0, Reason: "bad"})

	var mse *MalformedScheduleError
	if !stderrors.As(wrapped, &mse) {
		t.Fatal("errors.As did not find MalformedScheduleError")
	}
	if mse.Week != 1 {
		t.Errorf("Week = %d, want 1", mse.Week)
	}

	var ipe *InvalidPatternError
	if stderrors.As(wrapped, &ipe) {
		t.Error("errors.As matched InvalidPatternError for a schedule error")
	}
}

// TestFatal runs Fatal in a subprocess and checks the exit code and stderr
func TestFatal(t *testing.T) {
	if os.Getenv("GO_TEST_FATAL") == "1" {
		Fatal(stderrors.New("test error"))
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestFatal$")
	cmd.Env = append(os.Environ(), "GO_TEST_FATAL=1")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if e, ok := err.(*exec.ExitError); ok && !e.Success() {
		if e.ExitCode() != 1 {
			t.Errorf("Fatal() exit code = %d, want 1", e.ExitCode())
		}
		if !strings.Contains(stderr.String(), "Error: test error") {
			t.Errorf("Fatal() stderr = %q, want to contain %q", stderr.String(), "Error: test error")
		}
	} else {
		t.Errorf("Fatal() did not exit with error: %v", err)
	}
}

func TestFatal_NilError(t *testing.T) {
	if os.Getenv("GO_TEST_FATAL_NIL") == "1" {
		Fatal(nil)
		os.Exit(0)
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestFatal_NilError$")
	cmd.Env = append(os.Environ(), "GO_TEST_FATAL_NIL=1")

	if err := cmd.Run(); err != nil {
		t.Errorf("Fatal(nil) should not exit, but got error: %v", err)
	}
}
