package Trees

// InvalidArgumentError is returned when an operation receives an argument it can't work with,
// such as a nil Visitor.
type InvalidArgumentError struct {
	Op, Arg string
}

func (e *InvalidArgumentError) Error() string {
	return "Trees: " + e.Op + ": invalid argument " + e.Arg
}
