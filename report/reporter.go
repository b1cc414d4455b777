package report

import "sync"

// Reporter is responsible for reporting errors, warnings, and other kinds of
// messages to the user during program execution.  The reporter respects the
// set log level and is synchronized: its methods can be safely called from
// multiple goroutines running independent compilations.
type Reporter struct {
	// The mutex used to synchronize different report method calls.
	m *sync.Mutex

	// The selected log level of the reporter.  This must be one of the
	// enumerated log levels below.
	logLevel int
}

// Enumeration of the different possible log levels.
const (
	LogLevelSilent  = iota // Displays no output.
	LogLevelError          // Displays only errors to the user.
	LogLevelWarn           // Displays only warnings and errors to the user.
	LogLevelVerbose        // Displays all messages to the user (default).
)

// rep is the global reporter instance.
var rep = &Reporter{m: &sync.Mutex{}, logLevel: LogLevelVerbose}

// SetLogLevel sets the log level of the global reporter.
func SetLogLevel(logLevel int) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.logLevel = logLevel
}

// LogLevelFromString converts a named log level into its enumerated value.
// Unrecognized names select the verbose level.
func LogLevelFromString(name string) int {
	switch name {
	case "silent":
		return LogLevelSilent
	case "error":
		return LogLevelError
	case "warn":
		return LogLevelWarn
	default:
		return LogLevelVerbose
	}
}

// ReportError reports a compilation error.  The error is displayed on the
// operator-visible stream; it is never rethrown and never exits the process.
func ReportError(err error) {
	rep.m.Lock()
	defer rep.m.Unlock()

	if rep.logLevel > LogLevelSilent {
		displayError(errorTag(err), err.Error())
	}
}

// ReportWarning reports a compilation warning.
func ReportWarning(msg string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	if rep.logLevel > LogLevelError {
		displayWarning(msg, args...)
	}
}

// ReportInfo reports an informational message.
func ReportInfo(tag, msg string) {
	rep.m.Lock()
	defer rep.m.Unlock()

	if rep.logLevel > LogLevelWarn {
		displayInfo(tag, msg)
	}
}

// errorTag selects the banner tag used to display an error.
func errorTag(err error) string {
	switch KindOf(err) {
	case KindInvalidArgument:
		return "Argument Error"
	case KindInvalidMir:
		return "MIR Error"
	case KindIO:
		return "Output Error"
	default:
		return "Codegen Error"
	}
}
