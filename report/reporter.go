package report

import (
	"fmt"
	"os"
)

// Enumeration of the different possible log levels.
const (
	LogLevelSilent  = iota // Displays no output.
	LogLevelError          // Displays only errors to the user.
	LogLevelWarn           // Displays only warnings and errors to the user.
	LogLevelVerbose        // Displays all compilation messages to the user (default).
)

// reporter is responsible for reporting errors, warnings, and other kinds of
// messages to the user during a compilation run.  The reporter respects the
// set log level.  Compilation is single threaded, so no synchronization is
// required.
type reporter struct {
	// The selected log level of the reporter.  This must be one of the
	// enumerated log levels above.
	logLevel int

	// The number of errors reported so far.
	errorCount int
}

// rep is the global reporter instance.
var rep = reporter{logLevel: LogLevelVerbose}

// InitReporter initializes the global error reporter to the given log level.
func InitReporter(logLevel int) {
	rep = reporter{logLevel: logLevel}
}

// ErrorCount returns how many errors have been reported so far.
func ErrorCount() int {
	return rep.errorCount
}

/* -------------------------------------------------------------------------- */

// ReportICE reports an internal compiler error.  These are errors that result
// from a bug or an unexpected condition inside the compiler itself: they are
// not intended to ever happen.  They are always displayed regardless of log
// level.
func ReportICE(message string, args ...interface{}) {
	displayICE(fmt.Sprintf(message, args...))
	os.Exit(-1)
}

// ReportFatal reports a fatal error.  These are expected errors that should
// stop the toolchain immediately: a missing build profile, an unreadable
// manifest, and so on.
func ReportFatal(message string, args ...interface{}) {
	if rep.logLevel > LogLevelSilent {
		displayFatal(fmt.Sprintf(message, args...))
	}

	os.Exit(1)
}

// ReportLowerErrors reports a batch of lowering errors collected over one
// translation unit.  The unit name is used to label the diagnostics; src is
// the unit's source text and may be empty, in which case no source excerpts
// are printed.
func ReportLowerErrors(unitName, src string, errs []*LowerError) {
	if rep.logLevel <= LogLevelSilent {
		rep.errorCount += len(errs)
		return
	}

	for _, err := range errs {
		rep.errorCount++
		displayCompileMessage(err.Kind.String(), unitName, src, err.Span, err.Message)
	}
}

// ReportTypeErrors reports a batch of type errors collected over one
// translation unit.  Arguments are of the same form as ReportLowerErrors.
func ReportTypeErrors(unitName, src string, errs []*TypeError) {
	if rep.logLevel <= LogLevelSilent {
		rep.errorCount += len(errs)
		return
	}

	for _, err := range errs {
		rep.errorCount++
		displayCompileMessage(err.Kind.String(), unitName, src, err.Span, err.Message)
	}
}

// ReportInfo reports a tagged informational message.
func ReportInfo(tag, message string, args ...interface{}) {
	if rep.logLevel >= LogLevelVerbose {
		displayInfo(tag, fmt.Sprintf(message, args...))
	}
}
