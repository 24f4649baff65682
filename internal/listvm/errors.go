package listvm

// Operation names one of the three remote operations.
type Operation int

const (
	OpLoad Operation = iota
	OpAdd
	OpRemove
)

func (o Operation) String() string {
	switch o {
	case OpLoad:
		return "load"
	case OpAdd:
		return "add"
	case OpRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// Messages shown to the user. The cause is only logged.
const (
	MessageLoadFailed   = "error loading data"
	MessageAddFailed    = "error adding item"
	MessageRemoveFailed = "error deleting item"
)

// OperationFailed is the only error kind the view knows about.
type OperationFailed struct {
	Op      Operation
	Message string
}

func (e *OperationFailed) Error() string { return e.Message }

func newOperationFailed(op Operation) *OperationFailed {
	msg := MessageLoadFailed
	switch op {
	case OpAdd:
		msg = MessageAddFailed
	case OpRemove:
		msg = MessageRemoveFailed
	}
	return &OperationFailed{Op: op, Message: msg}
}
