package graph

import "fmt"

// ErrorCode identifies a topology or path-query failure.
type ErrorCode int

const (
	// No error occurred
	ErrCodeNone ErrorCode = iota
	// Grid rows or columns are not positive
	ErrCodeInvalidDimension
	// A node id lies outside [0, rows*cols)
	ErrCodeNodeOutOfRange
)

// GraphError is returned by BuildGrid and the path queries.
type GraphError struct {
	Code    ErrorCode
	Node    int
	Message string
}

func (e *GraphError) Error() string {
	return fmt.Sprintf("graph error: %s", e.Message)
}

// Is matches any GraphError carrying the same code, so callers can use
// errors.Is(err, graph.ErrNodeOutOfRange).
func (e *GraphError) Is(target error) bool {
	t, ok := target.(*GraphError)
	return ok && t.Code == e.Code
}

var (
	ErrInvalidDimension = &GraphError{Code: ErrCodeInvalidDimension, Message: "invalid dimension"}
	ErrNodeOutOfRange   = &GraphError{Code: ErrCodeNodeOutOfRange, Message: "node out of range"}
)

// NewInvalidDimensionError reports a non-positive grid size.
func NewInvalidDimensionError(rows, cols int) *GraphError {
	return &GraphError{
		Code:    ErrCodeInvalidDimension,
		Message: fmt.Sprintf("grid %dx%d must have positive rows and columns", rows, cols),
	}
}

// NewNodeOutOfRangeError reports a node id outside the grid.
func NewNodeOutOfRangeError(node, size int) *GraphError {
	return &GraphError{
		Code:    ErrCodeNodeOutOfRange,
		Node:    node,
		Message: fmt.Sprintf("node %d outside [0, %d)", node, size),
	}
}
