package dfa

import "fmt"

// CompileError reports a subset-construction failure, typically an NDFA
// handed to Compile without disjoint range labels.
type CompileError struct {
	State   uint32
	Message string
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return fmt.Sprintf("dfa: compile error at NDFA state %d: %s", e.State, e.Message)
}
