package noise

import "fmt"

// ParameterError reports a module parameter outside its valid domain, such as
// a non-positive frequency or curve control points out of order.
type ParameterError struct {
	Module string
	Param  string
	Value  float64
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("noise: %s %s=%v: %s", e.Module, e.Param, e.Value, e.Reason)
}
