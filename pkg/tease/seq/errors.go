package seq

import "fmt"

// Op identifies the operation an evaluation failure belongs to.
type Op string

const (
	OpCollect Op = "collect"
	OpFold    Op = "fold"
	OpChunk   Op = "chunk"
	OpGroupBy Op = "group_by"
	OpSortBy  Op = "sort_by"
	OpUnzip   Op = "unzip"
)

// OpError tags a recovered evaluation failure with the operation that
// produced it.
type OpError struct {
	Op    Op
	Cause error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("seq: %s: %v", e.Op, e.Cause)
}

func (e *OpError) Unwrap() error {
	return e.Cause
}

// opFailure normalizes a recovered panic value into an *OpError. A panic
// already tagged upstream (SortBy's comparator) keeps its original Op.
func opFailure(op Op, recovered any) *OpError {
	if tagged, ok := recovered.(*OpError); ok {
		return tagged
	}
	return &OpError{Op: op, Cause: causeOf(recovered)}
}

func causeOf(recovered any) error {
	if err, ok := recovered.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", recovered)
}
