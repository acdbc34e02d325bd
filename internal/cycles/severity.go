package cycles

import "fmt"

// Severity grades how disruptive a cycle is, based on the strongest edge
// participating in it. A cycle held together by required edges blocks the
// build order outright; one made only of optional edges is advisory.
type Severity int

const (
	SeverityLow Severity = iota + 1
	SeverityMedium
	SeverityHigh
)

// MarshalText renders the severity as its reporting word in JSON output.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// String returns the reporting word for the severity.
func (s Severity) String() string {
	switch s {
	case SeverityHigh:
		return "high"
	case SeverityMedium:
		return "medium"
	case SeverityLow:
		return "low"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}
