package report

import "fmt"

type UnknownReportError struct {
	Name string
}

func (e *UnknownReportError) Error() string {
	return fmt.Sprintf("unknown report %q", e.Name)
}

// ParameterError reports a request parameter that a report needs but did not get, or cannot use.
type ParameterError struct {
	Name   string
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("parameter %s: %s", e.Name, e.Reason)
}
