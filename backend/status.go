package backend

import (
	"strings"
	"unicode/utf8"

	"lumen/report"
)

// Status is the numeric result of a status-code entry point.  Zero is
// success; each failure class has its own negative code so callers can react
// without parsing diagnostic text.
type Status int

// Enumeration of status codes.
const (
	StatusOK              Status = 0
	StatusMissingArgument Status = -1
	StatusInvalidText     Status = -2
	StatusEmptyInput      Status = -3
	StatusInvalidMir      Status = -4
	StatusCodegenFailure  Status = -5
	StatusWriteFailure    Status = -6
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusMissingArgument:
		return "missing argument"
	case StatusInvalidText:
		return "invalid text"
	case StatusEmptyInput:
		return "empty input"
	case StatusInvalidMir:
		return "invalid MIR"
	case StatusCodegenFailure:
		return "codegen failure"
	case StatusWriteFailure:
		return "write failure"
	default:
		return "unknown status"
	}
}

// Validate is the status-code form of ValidateText.  Diagnostics go to the
// operator-visible stream, not the return value.
func Validate(mirText string) Status {
	if status := checkText(mirText); status != StatusOK {
		return status
	}

	if err := ValidateText(mirText); err != nil {
		report.ReportError(err)
		return statusOf(err)
	}

	return StatusOK
}

// CompileToObject is the status-code form of CompileText.
func CompileToObject(mirText, outputPath string) Status {
	return CompileToObjectWithOpt(mirText, outputPath, "speed")
}

// CompileToObjectWithOpt is the status-code form of CompileTextWithOpt.
func CompileToObjectWithOpt(mirText, outputPath, optLevel string) Status {
	if status := checkText(mirText); status != StatusOK {
		return status
	}

	if outputPath == "" {
		return StatusMissingArgument
	}

	if err := CompileTextWithOpt(mirText, outputPath, optLevel); err != nil {
		report.ReportError(err)
		return statusOf(err)
	}

	return StatusOK
}

// checkText classifies unusable MIR payloads.
func checkText(mirText string) Status {
	if !utf8.ValidString(mirText) {
		return StatusInvalidText
	}

	if strings.TrimSpace(mirText) == "" {
		return StatusEmptyInput
	}

	return StatusOK
}

// statusOf folds an error into its status code.
func statusOf(err error) Status {
	switch err {
	case errOutputPathMissing:
		return StatusMissingArgument
	case errPayloadNotText:
		return StatusInvalidText
	case errPayloadMissing:
		return StatusEmptyInput
	}

	switch report.KindOf(err) {
	case report.KindInvalidArgument:
		return StatusMissingArgument
	case report.KindInvalidMir:
		return StatusInvalidMir
	case report.KindIO:
		return StatusWriteFailure
	default:
		return StatusCodegenFailure
	}
}
