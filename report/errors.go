package report

import "fmt"

// Enumeration of the different kinds of compilation errors.  Every failure
// inside the backend is folded into exactly one of these kinds so that callers
// can react to the class of failure without parsing message text.
const (
	// KindInvalidArgument indicates a bad, missing, or non-textual input
	// argument: an empty MIR payload, a missing output path, etc.
	KindInvalidArgument = iota

	// KindInvalidMir indicates that the MIR document failed to decode into
	// the expected module shape.
	KindInvalidMir

	// KindCodegen indicates a failure during lowering or code generation: an
	// unsupported type or opcode, an unresolved value reference, a missing
	// branch target, a literal that fails to parse, and so on.
	KindCodegen

	// KindIO indicates a failure to write the output artifact.
	KindIO
)

// CompileError is the error type produced by every stage of the backend.  It
// pairs a human-readable message with one of the enumerated error kinds.
type CompileError struct {
	// The kind of the error.  This must be one of the enumerated error kinds.
	Kind int

	// The error message.
	Message string
}

func (ce *CompileError) Error() string {
	return ce.Message
}

// Raise creates a new compile error of the given kind.
func Raise(kind int, msg string, args ...interface{}) *CompileError {
	return &CompileError{Kind: kind, Message: fmt.Sprintf(msg, args...)}
}

// KindOf extracts the error kind from an error.  Errors that are not compile
// errors are treated as codegen errors: they can only have escaped from
// somewhere inside the lowering pipeline.
func KindOf(err error) int {
	if ce, ok := err.(*CompileError); ok {
		return ce.Kind
	}

	return KindCodegen
}
