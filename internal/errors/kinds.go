package errors

import "fmt"

// Rule kinds reported by InvalidPatternError.
const (
	RuleOneOff    = "one-off"
	RuleRecurring = "recurring"
)

// InvalidPatternError reports an exclusion rule that cannot be expanded.
// It is raised before any date is resolved.
type InvalidPatternError struct {
	Rule    string // RuleOneOff or RuleRecurring
	Index   int    // position in the rule list as declared
	Pattern string
	Reason  string
}

func (e *InvalidPatternError) Error() string {
	if e.Pattern == "" {
		return fmt.Sprintf("invalid %s exclusion rule #%d: %s", e.Rule, e.Index, e.Reason)
	}
	return fmt.Sprintf("invalid %s exclusion rule #%d (%s): %s", e.Rule, e.Index, e.Pattern, e.Reason)
}

// MalformedScheduleError reports a structural problem in the input schedule.
// BlockIndex is -1 when the problem is with the day or week itself.
type MalformedScheduleError struct {
	Week       int
	Date       string
	BlockIndex int
	Reason     string
}

func (e *MalformedScheduleError) Error() string {
	loc := fmt.Sprintf("week %d", e.Week)
	if e.Date != "" {
		loc += ", " + e.Date
	}
	if e.BlockIndex >= 0 {
		loc += fmt.Sprintf(", block %d", e.BlockIndex)
	}
	return fmt.Sprintf("malformed schedule (%s): %s", loc, e.Reason)
}

// UnresolvedContentReferenceError is returned by callers that check content
// identifiers before flattening. The engine never dereferences identifiers.
type UnresolvedContentReferenceError struct {
	ContentID string
}

func (e *UnresolvedContentReferenceError) Error() string {
	return fmt.Sprintf("unresolved content reference: %q", e.ContentID)
}
