package backend

import (
	"strings"
	"unicode/utf8"

	"lumen/llc"
	"lumen/lower"
	"lumen/mir"
	"lumen/report"
)

// This package is the call boundary of the backend.  Each entry point is a
// thin synchronous call: it decodes, lowers, and emits with no persistent
// state, so independent calls may run concurrently as long as they target
// distinct output paths.

// The argument errors are sentinels so the status-code wrappers can fold each
// one into its own status.
var (
	errPayloadNotText    = report.Raise(report.KindInvalidArgument, "mir payload is not valid text")
	errPayloadMissing    = report.Raise(report.KindInvalidArgument, "mir payload required")
	errOutputPathMissing = report.Raise(report.KindInvalidArgument, "output path required")
)

// ValidateText decodes a MIR document and reports whether it is well formed.
// No artifact is produced.
func ValidateText(mirText string) error {
	if err := checkPayload(mirText); err != nil {
		return err
	}

	return mir.Validate(mirText)
}

// CompileText compiles a MIR document to a relocatable object file at the
// given path using the default optimization level.
func CompileText(mirText, outputPath string) error {
	return CompileTextWithOpt(mirText, outputPath, llc.DefaultOptLevel.String())
}

// CompileTextWithOpt compiles a MIR document to a relocatable object file at
// the given path with an explicit optimization-level token.  Object bytes are
// written only after every function lowers successfully.
func CompileTextWithOpt(mirText, outputPath, optLevel string) error {
	if err := checkPayload(mirText); err != nil {
		return err
	}

	if outputPath == "" {
		return errOutputPathMissing
	}

	mod, err := mir.Decode(mirText)
	if err != nil {
		return err
	}

	llMod, err := lower.NewLowerer().Lower(mod)
	if err != nil {
		return err
	}

	llcPath, err := llc.FindLLC()
	if err != nil {
		return err
	}

	return llc.CompileModule(llcPath, llMod, outputPath, llc.ParseOptLevel(optLevel))
}

// checkPayload rejects MIR payloads that are not usable text.
func checkPayload(mirText string) error {
	if !utf8.ValidString(mirText) {
		return errPayloadNotText
	}

	if strings.TrimSpace(mirText) == "" {
		return errPayloadMissing
	}

	return nil
}
