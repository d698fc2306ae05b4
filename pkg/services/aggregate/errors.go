package aggregate

import "fmt"

// EmptyGroupError is returned when an average is requested over zero records.
type EmptyGroupError struct {
	Group string
}

func (e *EmptyGroupError) Error() string {
	if e.Group == "" {
		return "average requested over an empty group"
	}
	return fmt.Sprintf("average requested over empty group %q", e.Group)
}

type MonthError struct {
	Month int
}

func (e *MonthError) Error() string {
	return fmt.Sprintf("month must be between 1 and 12, got %d", e.Month)
}
